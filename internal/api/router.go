package api

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"booking-report-backend/internal/mw"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(handler *Handler, rateLimit float64, burst int) *gin.Engine {
	r := gin.Default()

	r.GET("/", handler.Index)

	api := r.Group("/api")
	api.Use(mw.RateLimiter(rate.Limit(rateLimit), burst))
	{
		api.POST("/reports", handler.GenerateReport)
		api.GET("/reports", handler.ListReports)
		api.GET("/reports/:id/frontdesk.pdf", handler.DownloadFrontDesk)
		api.GET("/reports/:id/housekeeping.pdf", handler.DownloadHousekeeping)

		api.DELETE("/tokens", handler.ClearTokens)
	}

	return r
}
