package rest

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lensport/catalog-sync-v2/internal/api/middleware"
	"github.com/lensport/catalog-sync-v2/internal/api/shared/constants"
	"github.com/lensport/catalog-sync-v2/internal/api/shared/dto"
	"github.com/lensport/catalog-sync-v2/internal/api/shared/executor"
	"github.com/lensport/catalog-sync-v2/internal/domain"
	"github.com/lensport/catalog-sync-v2/internal/harness"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// SyncVendor triggers a sync run for one vendor
	// POST /api/v1/vendors/:slug/sync
	SyncVendor(c *gin.Context)

	// TestVendorIntegration runs one vendor's connectivity test
	// POST /api/v1/vendors/:slug/integration/test
	TestVendorIntegration(c *gin.Context)

	// TestAllIntegrations tests every enabled integration concurrently
	// POST /api/v1/integrations/test-all
	TestAllIntegrations(c *gin.Context)

	// GetVendorState retrieves a vendor's last applied sync state
	// GET /api/v1/vendors/:slug/state
	GetVendorState(c *gin.Context)

	// ListVendorRuns retrieves a vendor's audit trail, newest first
	// GET /api/v1/vendors/:slug/runs?limit=<limit>&offset=<offset>
	ListVendorRuns(c *gin.Context)

	// GetRun retrieves a single sync run by its ULID
	// GET /api/v1/runs/:id
	GetRun(c *gin.Context)

	// UpsertVendorIntegration creates or replaces a vendor's integration
	// configuration
	// PUT /api/v1/vendors/:slug/integration
	UpsertVendorIntegration(c *gin.Context)

	// ListVendors lists every registered vendor adapter with its stored
	// configuration
	// GET /api/v1/vendors
	ListVendors(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /healthz
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// SyncVendor triggers a sync run for one vendor
func (h *handler) SyncVendor(c *gin.Context) {
	vendor := c.Param("slug")
	if vendor == "" {
		respondBadRequest(c, "Vendor slug is required")
		return
	}

	var req dto.SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	// Validate request body
	if err := req.Validate(); err != nil {
		respondDomainError(c, err, "Invalid sync request")
		return
	}

	// The actor falls back to the authenticated subject, then to the
	// service default
	actor := req.Actor
	if actor == "" {
		if subject, ok := c.Get(middleware.AUTH_SUBJECT_KEY); ok {
			if s, ok := subject.(string); ok {
				actor = s
			}
		}
	}
	if actor == "" {
		actor = constants.DEFAULT_ACTOR
	}

	summary, err := h.executor.Sync(c.Request.Context(), vendor, domain.SyncMode(req.Mode), req.Source, actor)
	if err != nil {
		respondDomainError(c, err, "Sync run failed")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// TestVendorIntegration runs one vendor's connectivity test
func (h *handler) TestVendorIntegration(c *gin.Context) {
	vendor := c.Param("slug")
	if vendor == "" {
		respondBadRequest(c, "Vendor slug is required")
		return
	}

	// The body is optional; an empty body tests with the stored
	// configuration
	var req dto.TestIntegrationRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
			return
		}
		if err := req.Validate(); err != nil {
			respondDomainError(c, err, "Invalid test request")
			return
		}
	}

	overrides := harness.Overrides{
		Timeout:    time.Duration(req.TimeoutMS) * time.Millisecond,
		SkipRecord: req.SkipRecord,
	}

	result, err := h.executor.TestIntegration(c.Request.Context(), vendor, overrides)
	if err != nil {
		respondDomainError(c, err, "Failed to test integration")
		return
	}

	c.JSON(http.StatusOK, result)
}

// TestAllIntegrations tests every enabled integration concurrently
func (h *handler) TestAllIntegrations(c *gin.Context) {
	result, err := h.executor.TestAllIntegrations(c.Request.Context())
	if err != nil {
		respondDomainError(c, err, "Failed to test integrations")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetVendorState retrieves a vendor's last applied sync state
func (h *handler) GetVendorState(c *gin.Context) {
	vendor := c.Param("slug")
	if vendor == "" {
		respondBadRequest(c, "Vendor slug is required")
		return
	}

	state, err := h.executor.GetVendorState(c.Request.Context(), vendor)
	if err != nil {
		respondDomainError(c, err, "Failed to get vendor state")
		return
	}

	if state == nil {
		respondNotFound(c, "Vendor has no sync state")
		return
	}

	c.JSON(http.StatusOK, state)
}

// ListVendorRuns retrieves a vendor's audit trail, newest first
func (h *handler) ListVendorRuns(c *gin.Context) {
	vendor := c.Param("slug")
	if vendor == "" {
		respondBadRequest(c, "Vendor slug is required")
		return
	}

	// Parse query parameters
	queryParams, err := ParseListRunsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListRuns(c.Request.Context(), vendor, queryParams.Limit, queryParams.Offset)
	if err != nil {
		respondDomainError(c, err, "Failed to list sync runs")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetRun retrieves a single sync run by its ULID
func (h *handler) GetRun(c *gin.Context) {
	runID := c.Param("id")
	if runID == "" {
		respondBadRequest(c, "Run ID is required")
		return
	}

	run, err := h.executor.GetRun(c.Request.Context(), runID)
	if err != nil {
		respondDomainError(c, err, "Failed to get sync run")
		return
	}

	if run == nil {
		respondNotFound(c, "Sync run not found")
		return
	}

	c.JSON(http.StatusOK, run)
}

// UpsertVendorIntegration creates or replaces a vendor's integration
// configuration
func (h *handler) UpsertVendorIntegration(c *gin.Context) {
	vendor := c.Param("slug")
	if vendor == "" {
		respondBadRequest(c, "Vendor slug is required")
		return
	}

	var req dto.UpsertIntegrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	// Validate request body
	if err := req.Validate(); err != nil {
		respondDomainError(c, err, "Invalid integration request")
		return
	}

	integration, err := h.executor.UpsertIntegration(c.Request.Context(), vendor, req)
	if err != nil {
		respondDomainError(c, err, "Failed to upsert integration")
		return
	}

	c.JSON(http.StatusOK, integration)
}

// ListVendors lists every registered vendor adapter with its stored
// configuration
func (h *handler) ListVendors(c *gin.Context) {
	response, err := h.executor.ListVendors(c.Request.Context())
	if err != nil {
		respondDomainError(c, err, "Failed to list vendors")
		return
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "catalog-sync-api",
	})
}
