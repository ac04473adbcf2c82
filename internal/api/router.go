package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/shopcraft/backoffice/internal/api/handler"
	"github.com/shopcraft/backoffice/internal/api/middleware"
	"github.com/shopcraft/backoffice/internal/core/domain"
	"github.com/shopcraft/backoffice/internal/core/ports"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth      *handler.AuthHandler
	Product   *handler.ProductHandler
	Category  *handler.CategoryHandler
	User      *handler.UserHandler
	Dashboard *handler.DashboardHandler
	Health    *handler.HealthHandler
}

// NewRouter builds the Echo instance with the full route table mounted.
// UploadDir is served read-only under /uploads.
func NewRouter(h Handlers, codec ports.TokenCodec, users ports.UserRepository, uploadDir string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = ErrorHandler

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echoprometheus.NewMiddleware("backoffice"))

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)
	e.Static("/uploads", uploadDir)

	e.GET("/health", h.Health.Live)
	e.GET("/health/ready", h.Health.Ready)

	authn := middleware.Auth(codec, users)
	anon := middleware.OptionalAuth(codec, users)
	staff := middleware.RBAC(domain.RoleAdmin, domain.RoleSuperAdmin)
	superOnly := middleware.RBAC(domain.RoleSuperAdmin)

	apiGroup := e.Group("/api")

	auth := apiGroup.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/register", h.Auth.Register)
	auth.POST("/refresh-token", h.Auth.Refresh)
	auth.POST("/logout", h.Auth.Logout)
	auth.GET("/me", h.Auth.Me, authn)

	apiGroup.GET("/products", h.Product.PublicList, anon)
	apiGroup.GET("/products/:slug", h.Product.PublicGet, anon)
	apiGroup.GET("/categories", h.Category.PublicList, anon)

	products := apiGroup.Group("/admin/products", authn, staff)
	products.GET("", h.Product.List)
	products.POST("", h.Product.Create)
	products.GET("/:uuid", h.Product.Get)
	products.PUT("/:uuid", h.Product.Update)
	products.DELETE("/:uuid", h.Product.Delete)

	// Categories are readable by any staff member but writable only by
	// super admins.
	categories := apiGroup.Group("/admin/categories", authn)
	categories.GET("", h.Category.List, staff)
	categories.GET("/:id", h.Category.Get, staff)
	categories.POST("", h.Category.Create, superOnly)
	categories.PUT("/:id", h.Category.Update, superOnly)
	categories.DELETE("/:id", h.Category.Delete, superOnly)

	usersGroup := apiGroup.Group("/admin/users", authn, superOnly)
	usersGroup.GET("", h.User.List)
	usersGroup.GET("/admins", h.User.Admins)
	usersGroup.GET("/customers", h.User.Customers)
	usersGroup.GET("/:uuid", h.User.Get)
	usersGroup.PUT("/:uuid", h.User.Update)
	usersGroup.PATCH("/:uuid/promote", h.User.Promote)
	usersGroup.PATCH("/:uuid/demote", h.User.Demote)
	usersGroup.DELETE("/:uuid", h.User.Delete)

	apiGroup.GET("/dashboard/stats", h.Dashboard.Stats, authn, staff)

	return e
}
