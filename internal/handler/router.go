package handler

import (
	"github.com/gin-gonic/gin"
)

// Handlers bundles every HTTP handler mounted by RegisterRoutes. Nil handlers are skipped.
type Handlers struct {
	Dashboard *DashboardHandler
	Settings  *SettingsHandler
	Requests  *RequestHandler
	Evidence  *EvidenceHandler
	Metrics   *MetricsHandler
}

// RegisterRoutes mounts probes at the root and the API under prefix. /metrics is only
// mounted when the metrics handler carries an exporter.
func RegisterRoutes(r *gin.Engine, prefix string, h Handlers) {
	if h.Metrics != nil {
		r.GET("/health", h.Metrics.Health)
		r.GET("/ready", h.Metrics.Ready)
		if h.Metrics.metrics != nil {
			r.GET("/metrics", h.Metrics.Prometheus)
		}
	}

	api := r.Group(prefix)
	if h.Dashboard != nil {
		api.GET("/dashboard", h.Dashboard.Stats)
		api.GET("/deadline", h.Dashboard.Deadline)
	}
	if h.Settings != nil {
		api.GET("/settings/warning-days", h.Settings.GetWarningDays)
		api.PUT("/settings/warning-days", h.Settings.UpdateWarningDays)
	}
	if h.Requests != nil {
		requests := api.Group("/permintaan")
		requests.GET("", h.Requests.List)
		requests.POST("", h.Requests.Create)
		requests.GET("/export", h.Requests.Export)
		requests.GET("/:id", h.Requests.Get)
		requests.PUT("/:id", h.Requests.Update)
		requests.DELETE("/:id", h.Requests.Delete)
	}
	if h.Evidence != nil {
		evidence := api.Group("/bukti")
		evidence.GET("", h.Evidence.List)
		evidence.POST("", h.Evidence.Create)
		evidence.GET("/:id", h.Evidence.Get)
		evidence.PUT("/:id", h.Evidence.Update)
		evidence.DELETE("/:id", h.Evidence.Delete)
	}
}
