package domain

import (
	"errors"
	"fmt"
)

// ErrTestNotImplemented is returned when an adapter exists but has no
// connectivity test path
var ErrTestNotImplemented = errors.New("integration test not implemented")

// AdapterNotFoundError indicates no adapter is registered for the vendor
// slug. Callers treat this as "vendor not supported".
type AdapterNotFoundError struct {
	Vendor string
}

func (e *AdapterNotFoundError) Error() string {
	return fmt.Sprintf("no adapter registered for vendor %q", e.Vendor)
}

// VendorNotConfiguredError indicates the vendor slug has no adapter or no
// enabled integration, so a run cannot be started for it.
type VendorNotConfiguredError struct {
	Vendor string
}

func (e *VendorNotConfiguredError) Error() string {
	return fmt.Sprintf("vendor %q is not configured", e.Vendor)
}

// InputValidationError indicates a single raw record failed the vendor's
// input schema. The item is skipped; the batch continues.
type InputValidationError struct {
	Vendor    string
	CatalogID string // may be empty when the record carries no usable identifier
	Reason    string
}

func (e *InputValidationError) Error() string {
	if e.CatalogID != "" {
		return fmt.Sprintf("invalid %s record %q: %s", e.Vendor, e.CatalogID, e.Reason)
	}
	return fmt.Sprintf("invalid %s record: %s", e.Vendor, e.Reason)
}

// OutputValidationError indicates an adapter produced a CanonicalProduct
// violating the canonical invariants. This is an adapter bug and aborts the
// run; it is never silently dropped.
type OutputValidationError struct {
	Vendor    string
	CatalogID string
	Reason    string
}

func (e *OutputValidationError) Error() string {
	return fmt.Sprintf("adapter %s produced invalid product %q: %s", e.Vendor, e.CatalogID, e.Reason)
}

// ExecutionError wraps an unexpected failure during fetch or normalization
type ExecutionError struct {
	Vendor string
	Op     string
	Err    error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Vendor, e.Op, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// IsInputValidation reports whether err is (or wraps) an InputValidationError
func IsInputValidation(err error) bool {
	var target *InputValidationError
	return errors.As(err, &target)
}

// IsOutputValidation reports whether err is (or wraps) an OutputValidationError
func IsOutputValidation(err error) bool {
	var target *OutputValidationError
	return errors.As(err, &target)
}

// IsAdapterNotFound reports whether err is (or wraps) an AdapterNotFoundError
func IsAdapterNotFound(err error) bool {
	var target *AdapterNotFoundError
	return errors.As(err, &target)
}

// IsVendorNotConfigured reports whether err is (or wraps) a VendorNotConfiguredError
func IsVendorNotConfigured(err error) bool {
	var target *VendorNotConfiguredError
	return errors.As(err, &target)
}
