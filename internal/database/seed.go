package database

import (
	"backend/internal/model"
	"backend/pkg/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// defaultGrants maps each role to the modules it may open. Multiple rows
// per role are expected; the table declares no uniqueness.
var defaultGrants = map[string][]string{
	model.RoleAdmin: {
		model.ModuleInventoryManagement,
		model.ModuleScheduling,
		model.ModuleMaintenanceTracker,
		model.ModuleSales,
		model.ModulePublicCalculator,
		model.ModulePrivateCalculator,
	},
	model.RoleOperator: {
		model.ModuleInventoryManagement,
		model.ModuleScheduling,
		model.ModulePrivateCalculator,
	},
	model.RoleSalesperson: {
		model.ModuleSales,
		model.ModulePrivateCalculator,
	},
	model.RoleMaintenanceStaff: {
		model.ModuleMaintenanceTracker,
		model.ModuleScheduling,
	},
	model.RolePublicUser: {
		model.ModulePublicCalculator,
	},
}

// defaultPricing gives each tree type a public price-per-board-foot
// reference row so the cost estimator works out of the box.
var defaultPricing = map[string]string{
	model.TreeTypeOak:   "4.25",
	model.TreeTypePine:  "1.80",
	model.TreeTypeCedar: "3.10",
	model.TreeTypeMaple: "3.75",
}

// Seed inserts the role/module grant matrix and calculator pricing rows if
// their tables are empty. Safe to run on every startup.
func Seed(db *gorm.DB) error {
	log := logger.Get()

	var grants int64
	if err := db.Model(&model.RoleModule{}).Count(&grants).Error; err != nil {
		return err
	}
	if grants == 0 {
		rows := make([]model.RoleModule, 0, 16)
		for role, modules := range defaultGrants {
			for _, m := range modules {
				rows = append(rows, model.RoleModule{Role: role, ModuleName: m})
			}
		}
		if err := db.Create(&rows).Error; err != nil {
			return err
		}
		log.Info("Seeded role/module grants", zap.Int("rows", len(rows)))
	}

	var pricing int64
	if err := db.Model(&model.BoardFootCalculator{}).Where("is_public = ?", true).Count(&pricing).Error; err != nil {
		return err
	}
	if pricing == 0 {
		for treeType, price := range defaultPricing {
			row := model.BoardFootCalculator{
				TreeType:          treeType,
				PricePerBoardFoot: decimal.RequireFromString(price),
				IsPublic:          true,
			}
			if err := db.Create(&row).Error; err != nil {
				return err
			}
		}
		log.Info("Seeded board foot pricing", zap.Int("tree_types", len(defaultPricing)))
	}

	return nil
}
