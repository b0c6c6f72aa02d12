package middleware

import (
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"backend/internal/model"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

func GetJWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if os.Getenv("GIN_MODE") == "release" {
			panic("FATAL: JWT_SECRET environment variable is required in production mode")
		}
		secret = "default_super_secret_key" // Development fallback only — DO NOT use in production
	}
	return []byte(secret)
}

// parseToken validates the bearer token and returns its claims.
func parseToken(c *gin.Context) (jwt.MapClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Authorization is missing"))
		return nil, false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid authorization format. Expected 'Bearer <token>'"))
		return nil, false
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return GetJWTSecret(), nil
	})
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid token"))
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid token claims"))
		return nil, false
	}
	return claims, true
}

// RequireRole validates the JWT and checks the user's role against the
// allowed list.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseToken(c)
		if !ok {
			return
		}

		userRole, ok := claims["role"].(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Role not found in token"))
			return
		}

		roleAllowed := false
		for _, role := range allowedRoles {
			if userRole == role {
				roleAllowed = true
				break
			}
		}
		if !roleAllowed {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Access denied: insufficient permissions"))
			return
		}

		c.Set("userID", claims["sub"])
		c.Set("userRole", userRole)
		c.Next()
	}
}

// --- Module-grant middleware ---

// grantCacheEntry stores cached module grants for a role with TTL
type grantCacheEntry struct {
	modules   map[string]bool
	expiresAt time.Time
}

var (
	grantCache    sync.Map // role -> grantCacheEntry
	grantCacheTTL = 5 * time.Minute
)

// grantDB holds the database reference for grant queries — set via InitModuleMiddleware
var grantDB *gorm.DB

// InitModuleMiddleware sets the DB reference for RequireModule middleware
func InitModuleMiddleware(db *gorm.DB) {
	grantDB = db
}

// RequireModule validates the JWT and checks the role_modules table for a
// grant on the named module. ADMIN always passes.
func RequireModule(moduleName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseToken(c)
		if !ok {
			return
		}

		userRole, ok := claims["role"].(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Role not found in token"))
			return
		}

		c.Set("userID", claims["sub"])
		c.Set("userRole", userRole)

		if userRole == model.RoleAdmin {
			c.Next()
			return
		}

		modules, err := grantedModules(c, userRole)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to verify module access"))
			return
		}

		if !modules[moduleName] {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Access denied: module '"+moduleName+"' not granted"))
			return
		}

		c.Next()
	}
}

// grantedModules returns cached or freshly fetched module grants for a role.
func grantedModules(c *gin.Context, role string) (map[string]bool, error) {
	if entry, ok := grantCache.Load(role); ok {
		cached := entry.(grantCacheEntry)
		if time.Now().Before(cached.expiresAt) {
			return cached.modules, nil
		}
	}

	var rows []model.RoleModule
	if err := grantDB.WithContext(c.Request.Context()).Where("role = ?", role).Find(&rows).Error; err != nil {
		return nil, err
	}

	modules := make(map[string]bool, len(rows))
	for _, row := range rows {
		modules[row.ModuleName] = true
	}

	grantCache.Store(role, grantCacheEntry{modules: modules, expiresAt: time.Now().Add(grantCacheTTL)})
	return modules, nil
}
