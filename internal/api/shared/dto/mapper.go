package dto

import (
	"encoding/json"

	"github.com/lensport/catalog-sync-v2/internal/store/schema"
)

// MapSyncRunToDTO converts a sync run row to its REST representation
func MapSyncRunToDTO(run *schema.VendorSyncRun) *SyncRunResponse {
	return &SyncRunResponse{
		RunID:      run.RunID,
		Vendor:     run.Vendor,
		Mode:       string(run.Mode),
		Status:     string(run.Status),
		Actor:      run.Actor,
		StartedAt:  run.StartedAt,
		FinishedAt: run.FinishedAt,
		DurationMS: run.DurationMS,
		TotalItems: run.TotalItems,
		Summary:    json.RawMessage(run.Summary),
		Error:      run.Error,
	}
}

// MapSyncRunsToDTO converts a page of sync run rows
func MapSyncRunsToDTO(runs []*schema.VendorSyncRun) []SyncRunResponse {
	out := make([]SyncRunResponse, len(runs))
	for i, run := range runs {
		out[i] = *MapSyncRunToDTO(run)
	}
	return out
}

// MapSyncStateToDTO converts a sync state row to its REST representation
func MapSyncStateToDTO(state *schema.VendorSyncState) *VendorStateResponse {
	return &VendorStateResponse{
		Vendor:         state.Vendor,
		LastRunAt:      state.LastRunAt,
		LastDurationMS: state.LastDurationMS,
		TotalItems:     state.TotalItems,
		LastBatchHash:  state.LastBatchHash,
		LastSource:     json.RawMessage(state.LastSource),
		LastError:      state.LastError,
		LastActor:      state.LastActor,
		UpdatedAt:      state.UpdatedAt,
	}
}

// MapIntegrationToDTO converts an integration row to its REST representation
func MapIntegrationToDTO(integration *schema.VendorIntegration) *IntegrationResponse {
	return &IntegrationResponse{
		Vendor:        integration.Vendor,
		Kind:          string(integration.Kind),
		SourcePath:    integration.SourcePath,
		BaseURL:       integration.BaseURL,
		AuthKind:      string(integration.AuthKind),
		SecretEnv:     integration.SecretEnv,
		Enabled:       integration.Enabled,
		LastTestAt:    integration.LastTestAt,
		LastTestOk:    integration.LastTestOk,
		LastTestError: integration.LastTestError,
		CreatedAt:     integration.CreatedAt,
		UpdatedAt:     integration.UpdatedAt,
	}
}
