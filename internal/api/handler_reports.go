package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"booking-report-backend/internal/auth"
	"booking-report-backend/internal/model"
)

const dateLayout = "2006-01-02"

// generateRequest is the POST /api/reports body. The credential fields are
// optional overrides of the configured ones.
type generateRequest struct {
	Date          string `json:"date" binding:"required"`
	Password      string `json:"password" binding:"required"`
	LongLifeToken string `json:"longLifeToken"`
	RefreshToken  string `json:"refreshToken"`
	InviteCode    string `json:"inviteCode"`
}

// generateResponse summarizes one finished report run.
type generateResponse struct {
	ID              string   `json:"id"`
	TargetDate      string   `json:"targetDate"`
	AuthSource      string   `json:"authSource"`
	Bookings        int      `json:"bookings"`
	Arrivals        int      `json:"arrivals"`
	Departures      int      `json:"departures"`
	StayThrough     int      `json:"stayThrough"`
	Warnings        []string `json:"warnings,omitempty"`
	FrontDeskURL    string   `json:"frontDeskUrl"`
	HousekeepingURL string   `json:"housekeepingUrl"`
}

// GenerateReport handles POST /api/reports.
func (h *Handler) GenerateReport(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if !auth.VerifyPassword(h.passwordHash, req.Password) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "incorrect password, please try again"})
		return
	}

	target, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid date, use YYYY-MM-DD"})
		return
	}

	gen, err := h.reports.Generate(c.Request.Context(), target, auth.Credentials{
		LongLifeToken: req.LongLifeToken,
		RefreshToken:  req.RefreshToken,
		InviteCode:    req.InviteCode,
	})
	if err != nil {
		status := http.StatusBadGateway
		switch {
		case errors.Is(err, auth.ErrNoCredentials):
			status = http.StatusUnauthorized
		default:
			var malformed *model.MalformedRecordError
			if errors.As(err, &malformed) {
				status = http.StatusUnprocessableEntity
			}
		}
		c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
		return
	}

	h.documents.Set(gen.ID, storedDocuments{
		frontDesk:    gen.FrontDesk,
		housekeeping: gen.Housekeeping,
	}, h.documentTTL)

	if err := h.logs.SaveReportLog(c.Request.Context(), model.ReportLog{
		ID:          gen.ID,
		TargetDate:  gen.TargetDate,
		AuthSource:  string(gen.AuthSource),
		Bookings:    gen.Bookings,
		Arrivals:    gen.Arrivals,
		Departures:  gen.Departures,
		StayThrough: gen.StayThrough,
		GeneratedAt: gen.GeneratedAt,
	}); err != nil {
		log.Printf("Warning: could not record report log: %v", err)
	}

	c.JSON(http.StatusOK, generateResponse{
		ID:              gen.ID,
		TargetDate:      gen.TargetDate,
		AuthSource:      string(gen.AuthSource),
		Bookings:        gen.Bookings,
		Arrivals:        gen.Arrivals,
		Departures:      gen.Departures,
		StayThrough:     gen.StayThrough,
		Warnings:        gen.Warnings,
		FrontDeskURL:    fmt.Sprintf("/api/reports/%s/frontdesk.pdf", gen.ID),
		HousekeepingURL: fmt.Sprintf("/api/reports/%s/housekeeping.pdf", gen.ID),
	})
}

// DownloadFrontDesk handles GET /api/reports/:id/frontdesk.pdf.
func (h *Handler) DownloadFrontDesk(c *gin.Context) {
	h.download(c, "frontdesk", func(d storedDocuments) []byte { return d.frontDesk })
}

// DownloadHousekeeping handles GET /api/reports/:id/housekeeping.pdf.
func (h *Handler) DownloadHousekeeping(c *gin.Context) {
	h.download(c, "housekeeping", func(d storedDocuments) []byte { return d.housekeeping })
}

func (h *Handler) download(c *gin.Context, kind string, pick func(storedDocuments) []byte) {
	id := c.Param("id")
	entry, found := h.documents.Get(id)
	if !found {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "report not found or expired, generate it again"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s_%s.pdf"`, kind, id))
	c.Data(http.StatusOK, "application/pdf", pick(entry.(storedDocuments)))
}

// ListReports handles GET /api/reports.
func (h *Handler) ListReports(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	logs, err := h.logs.ListReportLogs(c.Request.Context(), limit)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to list report history"})
		return
	}
	c.JSON(http.StatusOK, logs)
}
