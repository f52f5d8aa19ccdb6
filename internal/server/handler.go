// Package server exposes the event pipeline over HTTP.
package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/localpulse/city-events/internal/aggregator"
	"github.com/localpulse/city-events/internal/calendar"
	"github.com/localpulse/city-events/internal/digest"
	"github.com/localpulse/city-events/internal/event"
	"github.com/localpulse/city-events/internal/filter"
	"github.com/localpulse/city-events/internal/metrics"
	"github.com/localpulse/city-events/internal/report"
)

// Handler owns the gin engine and routes requests into the pipeline.
type Handler struct {
	agg         *aggregator.Aggregator
	log         *zap.Logger
	defaultCity string
	router      *gin.Engine
}

// New creates the HTTP handler with all routes registered.
func New(agg *aggregator.Aggregator, log *zap.Logger, defaultCity string) *Handler {
	h := &Handler{
		agg:         agg,
		log:         log,
		defaultCity: defaultCity,
		router:      gin.New(),
	}
	h.router.Use(gin.Recovery())
	h.registerRoutes()
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/", h.index)
	h.router.GET("/health", h.healthCheck)
	h.router.POST("/search", h.search)
	h.router.POST("/filter-events", h.filterEvents)
	h.router.POST("/download-pdf", h.downloadPDF)
	h.router.POST("/download-ics", h.downloadICS)
	h.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// healthCheck handles GET /health
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// index serves the minimal search page.
func (h *Handler) index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

// searchResponse is the payload for POST /search.
type searchResponse struct {
	City        string        `json:"city"`
	Events      []event.Event `json:"events"`
	Digest      string        `json:"digest"`
	TotalEvents int           `json:"total_events"`
}

// search handles POST /search. The city comes in as a form field and
// defaults when absent; a blank value is the one user-visible
// validation error in the system.
func (h *Handler) search(c *gin.Context) {
	city := strings.TrimSpace(c.DefaultPostForm("city", h.defaultCity))
	if city == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a city name"})
		return
	}

	metrics.Searches.Inc()
	h.log.Info("searching events", zap.String("city", city))

	events := h.agg.Aggregate(c.Request.Context(), city)

	c.JSON(http.StatusOK, searchResponse{
		City:        city,
		Events:      events,
		Digest:      digest.Build(events),
		TotalEvents: len(events),
	})
}

// filterRequest is the payload for POST /filter-events.
type filterRequest struct {
	Events  []event.Event `json:"events"`
	Filters filter.Spec   `json:"filters"`
}

// filterEvents handles POST /filter-events.
func (h *Handler) filterEvents(c *gin.Context) {
	var req filterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": err.Error(),
		})
		return
	}

	f, err := req.Filters.Parse()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": err.Error(),
		})
		return
	}

	filtered := f.Apply(req.Events)
	c.JSON(http.StatusOK, gin.H{
		"events": filtered,
		"total":  len(filtered),
	})
}

// reportRequest is the payload for the document download routes.
type reportRequest struct {
	City   string        `json:"city"`
	Events []event.Event `json:"events"`
	Digest string        `json:"digest"`
}

// downloadPDF handles POST /download-pdf.
func (h *Handler) downloadPDF(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": err.Error(),
		})
		return
	}
	if req.City == "" {
		req.City = "Unknown City"
	}

	data, err := report.Generate(req.City, req.Events, req.Digest)
	if err != nil {
		h.log.Error("PDF generation failed", zap.String("city", req.City), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": err.Error(),
		})
		return
	}

	filename := report.Filename(req.City, time.Now())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// downloadICS handles POST /download-ics.
func (h *Handler) downloadICS(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": err.Error(),
		})
		return
	}
	if req.City == "" {
		req.City = "Unknown City"
	}

	now := time.Now()
	filename := calendar.Filename(req.City, now)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(calendar.Generate(req.City, req.Events, now)))
}
