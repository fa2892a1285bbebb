package schema

import (
	"time"

	"gorm.io/datatypes"
)

// RunMode distinguishes dry runs from applied runs
type RunMode string

const (
	// RunModeDryRun computes the diff without mutating the catalog
	RunModeDryRun RunMode = "dry_run"
	// RunModeApply persists the computed changeset
	RunModeApply RunMode = "apply"
)

// RunStatus is the lifecycle state of a sync run
type RunStatus string

const (
	// RunStatusPending marks a run that has started but not finished
	RunStatusPending RunStatus = "pending"
	// RunStatusSuccess marks a run that finished cleanly
	RunStatusSuccess RunStatus = "success"
	// RunStatusFailed marks a run that finished with an error
	RunStatusFailed RunStatus = "failed"
)

// VendorSyncRun represents the vendor_sync_runs table - the append-only audit
// trail of every sync attempt, dry runs included
type VendorSyncRun struct {
	// RunID is the time-sortable ULID primary key
	RunID string `gorm:"column:run_id;primaryKey;type:char(26)"`
	// Vendor is the vendor slug the run targeted
	Vendor string `gorm:"column:vendor;not null;type:text;index:idx_vendor_sync_runs_vendor_started_at,priority:1"`
	// Mode records whether the run was a dry run or an apply
	Mode RunMode `gorm:"column:mode;not null;type:text"`
	// Status is pending until the run finalizes exactly once
	Status RunStatus `gorm:"column:status;not null;default:'pending';type:text"`
	// Actor identifies who triggered the run
	Actor string `gorm:"column:actor;not null;type:text"`
	// StartedAt is the run start timestamp
	StartedAt time.Time `gorm:"column:started_at;not null;type:timestamptz;index:idx_vendor_sync_runs_vendor_started_at,priority:2,sort:desc"`
	// FinishedAt is the finalization timestamp, nil while pending
	FinishedAt *time.Time `gorm:"column:finished_at;type:timestamptz"`
	// DurationMS is the wall-clock duration, nil while pending
	DurationMS *int64 `gorm:"column:duration_ms"`
	// TotalItems is the batch size the run processed
	TotalItems int `gorm:"column:total_items;not null;default:0"`
	// Summary is the structured diff outcome (created/updated/removed/
	// unchanged/skipped counts plus batch hash)
	Summary datatypes.JSON `gorm:"column:summary;type:jsonb"`
	// Error holds the failure message for failed runs
	Error *string `gorm:"column:error;type:text"`
}

// TableName specifies the table name for the VendorSyncRun model
func (VendorSyncRun) TableName() string {
	return "vendor_sync_runs"
}
