package model

// UserRole enum constants
const (
	RoleAdmin            = "ADMIN"
	RoleOperator         = "OPERATOR"
	RoleSalesperson      = "SALESPERSON"
	RoleMaintenanceStaff = "MAINTENANCE_STAFF"
	RolePublicUser       = "PUBLIC_USER"
)

// Position enum constants
const (
	PositionOperator         = "OPERATOR"
	PositionSalesperson      = "SALESPERSON"
	PositionMaintenanceStaff = "MAINTENANCE_STAFF"
)

// ItemType enum constants
const (
	ItemTypeMaterial = "MATERIAL"
	ItemTypeProduct  = "PRODUCT"
	ItemTypeResource = "RESOURCE"
)

// OrderStatus enum constants
const (
	OrderStatusPending   = "PENDING"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

// TreeType enum constants
const (
	TreeTypeOak   = "OAK"
	TreeTypePine  = "PINE"
	TreeTypeCedar = "CEDAR"
	TreeTypeMaple = "MAPLE"
)

// ModuleName enum constants
const (
	ModuleInventoryManagement = "INVENTORY_MANAGEMENT"
	ModuleScheduling          = "SCHEDULING"
	ModuleMaintenanceTracker  = "MAINTENANCE_TRACKER"
	ModuleSales               = "SALES_MODULE"
	ModulePublicCalculator    = "PUBLIC_BOARD_FOOT_CALCULATOR"
	ModulePrivateCalculator   = "PRIVATE_BOARD_FOOT_CALCULATOR"
)

var (
	UserRoles = []string{RoleAdmin, RoleOperator, RoleSalesperson, RoleMaintenanceStaff, RolePublicUser}
	Positions = []string{PositionOperator, PositionSalesperson, PositionMaintenanceStaff}
	ItemTypes = []string{ItemTypeMaterial, ItemTypeProduct, ItemTypeResource}

	OrderStatuses = []string{OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled}
	TreeTypes     = []string{TreeTypeOak, TreeTypePine, TreeTypeCedar, TreeTypeMaple}
	ModuleNames   = []string{
		ModuleInventoryManagement,
		ModuleScheduling,
		ModuleMaintenanceTracker,
		ModuleSales,
		ModulePublicCalculator,
		ModulePrivateCalculator,
	}
)

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// ValidUserRole reports whether v is a member of the UserRole domain.
func ValidUserRole(v string) bool { return contains(UserRoles, v) }

// ValidPosition reports whether v is a member of the Position domain.
func ValidPosition(v string) bool { return contains(Positions, v) }

// ValidItemType reports whether v is a member of the ItemType domain.
func ValidItemType(v string) bool { return contains(ItemTypes, v) }

// ValidOrderStatus reports whether v is a member of the OrderStatus domain.
func ValidOrderStatus(v string) bool { return contains(OrderStatuses, v) }

// ValidTreeType reports whether v is a member of the TreeType domain.
func ValidTreeType(v string) bool { return contains(TreeTypes, v) }

// ValidModuleName reports whether v is a member of the ModuleName domain.
func ValidModuleName(v string) bool { return contains(ModuleNames, v) }
