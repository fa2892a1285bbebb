package schema

import (
	"time"
)

// IntegrationKind is how a vendor's catalog is fetched
type IntegrationKind string

const (
	// IntegrationKindScraper marks vendors ingested from feed files
	IntegrationKindScraper IntegrationKind = "scraper"
	// IntegrationKindAPI marks vendors fetched live from a partner API
	IntegrationKindAPI IntegrationKind = "api"
)

// AuthKind is the credential scheme of an API integration
type AuthKind string

const (
	// AuthKindNone marks endpoints without authentication
	AuthKindNone AuthKind = "none"
	// AuthKindAPIKey marks endpoints authenticated with an API key header
	AuthKindAPIKey AuthKind = "api_key"
	// AuthKindBearer marks endpoints authenticated with a bearer token
	AuthKindBearer AuthKind = "bearer"
)

// VendorIntegration represents the vendor_integrations table - per-vendor
// fetch configuration managed through the API and read-only to the
// reconciliation core. Secrets are referenced by environment variable name,
// never stored.
type VendorIntegration struct {
	// Vendor is the vendor slug (primary key, one row per vendor)
	Vendor string `gorm:"column:vendor;primaryKey;type:text"`
	// Kind is how the vendor's catalog is fetched (scraper, api)
	Kind IntegrationKind `gorm:"column:kind;not null;type:text"`
	// SourcePath is the feed location for scraper vendors
	SourcePath *string `gorm:"column:source_path;type:text"`
	// BaseURL is the API base URL for api vendors
	BaseURL *string `gorm:"column:base_url;type:text"`
	// AuthKind is the credential scheme for api vendors (none, api_key, bearer)
	AuthKind AuthKind `gorm:"column:auth_kind;not null;default:'none';type:text"`
	// SecretEnv names the environment variable holding the credential
	SecretEnv *string `gorm:"column:secret_env;type:text"`
	// Enabled gates the vendor out of test-all sweeps and scheduled syncs.
	// No gorm-level default: a zero value here must mean disabled, not "use
	// the column default".
	Enabled bool `gorm:"column:enabled;not null"`
	// LastTestAt is the timestamp of the most recent connectivity test
	LastTestAt *time.Time `gorm:"column:last_test_at;type:timestamptz"`
	// LastTestOk records whether the most recent connectivity test passed
	LastTestOk *bool `gorm:"column:last_test_ok"`
	// LastTestError holds the most recent connectivity test failure
	LastTestError *string `gorm:"column:last_test_error;type:text"`
	// CreatedAt is the timestamp when this row was first written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this row last changed
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the VendorIntegration model
func (VendorIntegration) TableName() string {
	return "vendor_integrations"
}
