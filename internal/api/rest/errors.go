package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/lensport/catalog-sync-v2/internal/api/shared/errors"
	"github.com/lensport/catalog-sync-v2/internal/domain"
	"github.com/lensport/catalog-sync-v2/internal/logger"
)

// statusForCode maps an API error code to its HTTP status
func statusForCode(code apierrors.ErrorCode) int {
	switch code {
	case apierrors.ErrCodeBadRequest, apierrors.ErrCodeValidationFailed, apierrors.ErrCodeInvalidVendor:
		return http.StatusBadRequest
	case apierrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apierrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case apierrors.ErrCodeNotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// respondAPIError sends a structured error with its mapped status
func respondAPIError(c *gin.Context, apiErr *apierrors.APIError) {
	c.JSON(statusForCode(apiErr.Code), apiErr)
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, apierrors.NewValidationError(message))
}

// respondInternalError responds with an internal server error and logs it
func respondInternalError(c *gin.Context, err error, message string) {
	logger.Error(err, zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message))
}

// respondDomainError maps sync-core errors onto API error codes. Unknown and
// unconfigured vendors are client errors, a missing connectivity test is 501,
// anything else is a 500.
func respondDomainError(c *gin.Context, err error, message string) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		if statusForCode(apiErr.Code) >= http.StatusInternalServerError {
			logger.Error(err, zap.String("path", c.Request.URL.Path))
		}
		respondAPIError(c, apiErr)
		return
	}

	switch {
	case domain.IsAdapterNotFound(err), domain.IsVendorNotConfigured(err):
		respondAPIError(c, apierrors.NewInvalidVendorError(message, err.Error()))
	case errors.Is(err, domain.ErrTestNotImplemented):
		respondAPIError(c, apierrors.NewNotImplementedError(message, err.Error()))
	default:
		respondInternalError(c, err, message)
	}
}
