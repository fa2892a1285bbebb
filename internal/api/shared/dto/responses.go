package dto

import (
	"encoding/json"
	"time"
)

// SyncRunResponse is the REST representation of one audit-trail run
type SyncRunResponse struct {
	RunID      string          `json:"run_id"`
	Vendor     string          `json:"vendor"`
	Mode       string          `json:"mode"`
	Status     string          `json:"status"`
	Actor      string          `json:"actor"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt *time.Time      `json:"finished_at,omitempty"`
	DurationMS *int64          `json:"duration_ms,omitempty"`
	TotalItems int             `json:"total_items"`
	Summary    json.RawMessage `json:"summary,omitempty"`
	Error      *string         `json:"error,omitempty"`
}

// RunListResponse is one page of the audit trail, newest first
type RunListResponse struct {
	Runs  []SyncRunResponse `json:"runs"`
	Total uint64            `json:"total"`
	// Offset is the offset of the next page, omitted on the last page
	Offset *uint64 `json:"offset,omitempty"`
}

// VendorStateResponse summarizes a vendor's last applied sync
type VendorStateResponse struct {
	Vendor         string          `json:"vendor"`
	LastRunAt      time.Time       `json:"last_run_at"`
	LastDurationMS int64           `json:"last_duration_ms"`
	TotalItems     int             `json:"total_items"`
	LastBatchHash  string          `json:"last_batch_hash"`
	LastSource     json.RawMessage `json:"last_source,omitempty"`
	LastError      *string         `json:"last_error,omitempty"`
	LastActor      string          `json:"last_actor"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// IntegrationResponse is the REST representation of a vendor integration.
// Secrets are referenced by environment variable name, never returned.
type IntegrationResponse struct {
	Vendor        string     `json:"vendor"`
	Kind          string     `json:"kind"`
	SourcePath    *string    `json:"source_path,omitempty"`
	BaseURL       *string    `json:"base_url,omitempty"`
	AuthKind      string     `json:"auth_kind"`
	SecretEnv     *string    `json:"secret_env,omitempty"`
	Enabled       bool       `json:"enabled"`
	LastTestAt    *time.Time `json:"last_test_at,omitempty"`
	LastTestOk    *bool      `json:"last_test_ok,omitempty"`
	LastTestError *string    `json:"last_test_error,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// VendorResponse pairs a registered adapter with its stored configuration
type VendorResponse struct {
	Slug       string     `json:"slug"`
	Category   string     `json:"category"`
	Configured bool       `json:"configured"`
	Enabled    bool       `json:"enabled"`
	Kind       *string    `json:"kind,omitempty"`
	LastTestAt *time.Time `json:"last_test_at,omitempty"`
	LastTestOk *bool      `json:"last_test_ok,omitempty"`
}

// VendorListResponse lists every registered vendor adapter
type VendorListResponse struct {
	Vendors []VendorResponse `json:"vendors"`
	Total   int              `json:"total"`
}
