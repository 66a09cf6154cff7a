package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GbrlSouza/API-Times-Brasileiros/internal/catalog"
	"github.com/GbrlSouza/API-Times-Brasileiros/internal/config"
	"github.com/GbrlSouza/API-Times-Brasileiros/internal/logger"
	"github.com/GbrlSouza/API-Times-Brasileiros/internal/service"
)

// Handler holds the HTTP request handlers.
type Handler struct {
	clubs     *service.ClubService
	cfg       *config.Config
	logger    logger.Logger
	startTime time.Time
}

// NewHandler creates a new handler instance.
func NewHandler(clubs *service.ClubService, cfg *config.Config, log logger.Logger) *Handler {
	return &Handler{
		clubs:     clubs,
		cfg:       cfg,
		logger:    log,
		startTime: time.Now(),
	}
}

// Root handles the service descriptor endpoint.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    h.cfg.Service.Name,
		"version": h.cfg.Service.Version,
		"docs":    "/openapi.json",
		"endpoints": []string{
			"/clubs",
			"/clubs/:slug",
			"/views/grid",
			"/views/timeline",
			"/views/states/:uf",
		},
	})
}

// ListClubs handles the paginated, filtered listing.
func (h *Handler) ListClubs(c *gin.Context) {
	req := catalog.ListRequest{
		Query:  c.Query("q"),
		State:  c.Query("state"),
		Status: c.Query("status"),
		Letter: c.Query("letter"),
		Offset: parseIntOrZero(c.Query("offset")),
		Limit:  h.clampLimit(parseIntOrZero(c.Query("limit"))),
	}

	c.JSON(http.StatusOK, h.clubs.List(req))
}

// GetClub handles the detail endpoint: projection plus media enrichment.
func (h *Handler) GetClub(c *gin.Context) {
	slug := c.Param("slug")

	detail, err := h.clubs.Get(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrClubNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Club not found"})
			return
		}

		h.logger.Error("Club detail resolution failed",
			logger.String("slug", slug),
			logger.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Grid handles the grid view: short-name filter plus optional sort.
func (h *Handler) Grid(c *gin.Context) {
	data := h.clubs.Grid(c.Query("q"), c.Query("sort"))
	c.JSON(http.StatusOK, gin.H{
		"count": len(data),
		"data":  data,
	})
}

// Timeline handles the founding-year timeline view.
func (h *Handler) Timeline(c *gin.Context) {
	groups := h.clubs.Timeline(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// ByState handles the per-state view.
func (h *Handler) ByState(c *gin.Context) {
	uf := c.Param("uf")
	data := h.clubs.ByState(uf)
	c.JSON(http.StatusOK, gin.H{
		"state": uf,
		"count": len(data),
		"data":  data,
	})
}

// Health handles health check requests.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": h.cfg.Service.Name,
		"version": h.cfg.Service.Version,
		"uptime":  time.Since(h.startTime).Round(time.Second).String(),
	})
}

// HeadHealth is the lightweight health check for load balancers.
func (h *Handler) HeadHealth(c *gin.Context) {
	c.Status(http.StatusOK)
}

// OpenAPI serves the static API description document.
func (h *Handler) OpenAPI(c *gin.Context) {
	c.JSON(http.StatusOK, openAPIDocument(h.cfg.Service.Name, h.cfg.Service.Version))
}

// parseIntOrZero parses a query value, treating absence or non-numeric
// input as zero.
func parseIntOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// clampLimit applies the configured default and cap to a parsed limit.
func (h *Handler) clampLimit(limit int) int {
	if limit <= 0 {
		return h.cfg.Catalog.DefaultLimit
	}
	if limit > h.cfg.Catalog.MaxLimit {
		return h.cfg.Catalog.MaxLimit
	}
	return limit
}
