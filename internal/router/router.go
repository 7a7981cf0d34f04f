package router

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/scholar-hours-api/internal/handler"
	"github.com/noah-isme/scholar-hours-api/internal/middleware"
	"github.com/noah-isme/scholar-hours-api/internal/models"
	"github.com/noah-isme/scholar-hours-api/internal/service"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	Auth       *service.AuthService
	Metrics    *service.MetricsService
	AuthH      *handler.AuthHandler
	ScholarH   *handler.ScholarHandler
	ActivityH  *handler.ActivityHandler
	CategoryH  *handler.CategoryHandler
	ReportH    *handler.ReportHandler
	DashboardH *handler.DashboardHandler
	MetricsH   *handler.MetricsHandler
}

// Register wires the HTTP routes into the gin engine under prefix.
func Register(r *gin.Engine, prefix string, deps Dependencies) {
	if deps.MetricsH != nil {
		r.GET("/health", deps.MetricsH.Health)
		r.GET("/ready", deps.MetricsH.Ready)
		r.GET("/metrics", deps.MetricsH.Prometheus)
	}

	api := r.Group(prefix)

	auth := api.Group("/auth")
	auth.POST("/login", deps.AuthH.Login)
	auth.POST("/refresh", deps.AuthH.Refresh)

	protected := api.Group("")
	protected.Use(middleware.JWT(deps.Auth))

	protected.POST("/auth/logout", deps.AuthH.Logout)
	protected.GET("/auth/me", deps.AuthH.Me)
	protected.GET("/categories", deps.CategoryH.List)

	admin := protected.Group("")
	admin.Use(middleware.RequireRoles(models.RoleAdmin))
	admin.GET("/scholars", deps.ScholarH.List)
	admin.POST("/scholars", deps.ScholarH.Create)
	admin.GET("/scholars/:id", deps.ScholarH.Get)
	admin.PUT("/scholars/:id", deps.ScholarH.Update)
	admin.GET("/scholars/:id/stats", deps.ScholarH.Stats)
	admin.GET("/activities", deps.ActivityH.List)
	admin.GET("/activities/recent", deps.ActivityH.ListRecent)
	admin.POST("/activities/:id/approve", deps.ActivityH.Approve)
	admin.POST("/activities/:id/reject", deps.ActivityH.Reject)
	admin.POST("/categories", deps.CategoryH.Create)
	admin.GET("/reports/monthly", deps.ReportH.Monthly)
	admin.GET("/reports/monthly/export", deps.ReportH.Export)
	admin.GET("/dashboard/stats", deps.DashboardH.Stats)

	scholar := protected.Group("")
	scholar.Use(middleware.RequireRoles(models.RoleScholar))
	scholar.POST("/activities", deps.ActivityH.Create)
	scholar.GET("/scholar/profile", deps.ScholarH.Profile)
	scholar.GET("/scholar/stats", deps.ScholarH.MyStats)
	scholar.GET("/scholar/activities", deps.ActivityH.ListMine)
	scholar.GET("/scholar/activities/recent", deps.ActivityH.ListMineRecent)
}
