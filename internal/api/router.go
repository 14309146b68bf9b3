package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Bimsara-Yehan/Data-Analysis/docs"
	"github.com/Bimsara-Yehan/Data-Analysis/internal/api/handler"
	"github.com/Bimsara-Yehan/Data-Analysis/pkg/router"
)

// RegisterRoutes wires the churn analytics API onto the router.
func RegisterRoutes(r *router.Router, h *handler.Handler) {
	r.POST("/api/v1/analysis", h.Analyze)
	r.GET("/api/v1/analysis", h.ListAnalyses)
	r.GET("/api/v1/analysis/*", h.GetAnalysis)

	r.GET("/api/v1/dimensions", h.Dimensions)
	r.GET("/api/v1/summary", h.Summary)
	r.GET("/api/v1/impacts", h.Impacts)

	r.POST("/api/v1/predict", h.Predict)

	r.POST("/api/v1/export", h.Export)
	r.GET("/api/v1/download/*", h.Download)

	r.POST("/api/v1/reload", h.Reload)
	r.GET("/health", h.Health)

	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))
}
