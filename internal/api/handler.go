package api

import (
	"time"

	"github.com/patrickmn/go-cache"

	"booking-report-backend/internal/report"
	"booking-report-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	reports      *report.Service
	logs         store.Store
	documents    *cache.Cache
	documentTTL  time.Duration
	passwordHash string
}

// NewHandler creates a new API handler. Rendered documents are held in the
// given cache for documentTTL, after which the download links expire.
func NewHandler(reports *report.Service, logs store.Store, documents *cache.Cache, documentTTL time.Duration, passwordHash string) *Handler {
	return &Handler{
		reports:      reports,
		logs:         logs,
		documents:    documents,
		documentTTL:  documentTTL,
		passwordHash: passwordHash,
	}
}

// storedDocuments is the cache entry for one generated report.
type storedDocuments struct {
	frontDesk    []byte
	housekeeping []byte
}
