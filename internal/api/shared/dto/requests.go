package dto

import (
	"fmt"

	"github.com/lensport/catalog-sync-v2/internal/api/shared/constants"
	apierrors "github.com/lensport/catalog-sync-v2/internal/api/shared/errors"
	"github.com/lensport/catalog-sync-v2/internal/domain"
	"github.com/lensport/catalog-sync-v2/internal/store/schema"
)

// SyncRequest is the request body for triggering a sync run
type SyncRequest struct {
	Mode   string             `json:"mode"`
	Source domain.BatchSource `json:"source"`
	Actor  string             `json:"actor,omitempty"`
}

// Validate validates the sync request
func (r *SyncRequest) Validate() error {
	if r.Mode == "" {
		return apierrors.NewValidationError("mode is required")
	}
	if !domain.IsValidMode(domain.SyncMode(r.Mode)) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid mode %q, must be %q or %q", r.Mode, domain.ModeDryRun, domain.ModeApply))
	}
	if _, err := r.Source.Kind(); err != nil {
		return apierrors.NewValidationError(err.Error())
	}
	if len(r.Source.Items) > constants.MAX_INJECTED_ITEMS_PER_REQUEST {
		return apierrors.NewValidationError(fmt.Sprintf("inline batch exceeds %d items", constants.MAX_INJECTED_ITEMS_PER_REQUEST))
	}
	return nil
}

// TestIntegrationRequest is the optional request body for a single
// integration test. An empty body tests with the stored configuration.
type TestIntegrationRequest struct {
	TimeoutMS  int64 `json:"timeout_ms,omitempty"`
	SkipRecord bool  `json:"skip_record,omitempty"`
}

// Validate validates the test request
func (r *TestIntegrationRequest) Validate() error {
	if r.TimeoutMS < 0 {
		return apierrors.NewValidationError("timeout_ms must not be negative")
	}
	if r.TimeoutMS > constants.MAX_TEST_TIMEOUT_MS {
		return apierrors.NewValidationError(fmt.Sprintf("timeout_ms exceeds maximum of %d", constants.MAX_TEST_TIMEOUT_MS))
	}
	return nil
}

// UpsertIntegrationRequest is the request body for configuring a vendor
// integration
type UpsertIntegrationRequest struct {
	Kind       string  `json:"kind"`
	SourcePath *string `json:"source_path,omitempty"`
	BaseURL    *string `json:"base_url,omitempty"`
	AuthKind   string  `json:"auth_kind,omitempty"`
	SecretEnv  *string `json:"secret_env,omitempty"`
	Enabled    *bool   `json:"enabled,omitempty"`
}

// Validate validates the integration request
func (r *UpsertIntegrationRequest) Validate() error {
	switch schema.IntegrationKind(r.Kind) {
	case schema.IntegrationKindScraper:
		if r.SourcePath == nil || *r.SourcePath == "" {
			return apierrors.NewValidationError("scraper integrations require source_path")
		}
	case schema.IntegrationKindAPI:
		if r.BaseURL == nil || *r.BaseURL == "" {
			return apierrors.NewValidationError("api integrations require base_url")
		}
	default:
		return apierrors.NewValidationError(fmt.Sprintf("invalid kind %q, must be %q or %q", r.Kind, schema.IntegrationKindScraper, schema.IntegrationKindAPI))
	}

	switch r.AuthKindValue() {
	case schema.AuthKindNone:
	case schema.AuthKindAPIKey, schema.AuthKindBearer:
		if r.SecretEnv == nil || *r.SecretEnv == "" {
			return apierrors.NewValidationError(fmt.Sprintf("auth_kind %q requires secret_env", r.AuthKind))
		}
	default:
		return apierrors.NewValidationError(fmt.Sprintf("invalid auth_kind %q, must be %q, %q or %q", r.AuthKind, schema.AuthKindNone, schema.AuthKindAPIKey, schema.AuthKindBearer))
	}

	return nil
}

// AuthKindValue returns the requested auth kind, defaulting to none
func (r *UpsertIntegrationRequest) AuthKindValue() schema.AuthKind {
	if r.AuthKind == "" {
		return schema.AuthKindNone
	}
	return schema.AuthKind(r.AuthKind)
}

// EnabledValue returns the requested enabled flag, defaulting to true
func (r *UpsertIntegrationRequest) EnabledValue() bool {
	if r.Enabled == nil {
		return true
	}
	return *r.Enabled
}
