package routes

import (
	"kympulse/handlers"
	"kympulse/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterMigrationRoutes registers the one-shot migration endpoints. They accept
// every method so non-POST requests get a 405 from the handler itself.
func RegisterMigrationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("")
	{
		admin.Use(middleware.CORSMiddleware(hb.AllowedOrigins))
		admin.Use(middleware.AdminTokenMiddleware(hb.AdminTokenHash))
		admin.Any("/migrarProfesionales", hb.MigrateProfessionalsHandler)
		admin.Any("/vincularServiciosConProfesionales", hb.LinkServicesHandler)
		admin.Any("/resetProfessionalLinks", hb.ResetLinksHandler)
	}
}

// RegisterCaptureRoutes registers the public capture page.
func RegisterCaptureRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	pulse := r.Group("/pulse")
	{
		pulse.Use(middleware.RateLimitMiddleware(hb.MaxRequestsPerMin))
		pulse.GET("", hb.PulsePageHandler)
		pulse.POST("/encuesta", hb.SurveyHandler)
	}
}

// RegisterHealthRoute registers the health-check and metrics endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
	if hb.Metrics != nil {
		r.GET("/metrics", gin.WrapH(hb.Metrics.Handler()))
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(hb.Metrics))
	}

	RegisterMigrationRoutes(r, hb)
	RegisterCaptureRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
