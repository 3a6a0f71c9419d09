package models

import "encoding/json"

// Sync states shared by all control-panel backed service records.
const (
	SyncStatusNotSynced = "NOT_SYNCED"
	SyncStatusSynced    = "SYNCED"
	SyncStatusError     = "ERROR"
)

// Recognized sync metadata keys. The metadata map is deliberately open ended;
// the syncers own which keys exist.
const (
	MetaKeySubscriptionID         = "subscriptionId"
	MetaKeyExternalSubscriptionID = "externalSubscriptionId"
	MetaKeySubscriptionSyncedAt   = "subscriptionSyncedAt"
)

// DecodeSyncMetadata parses the JSON metadata column of a service record.
// An empty or unparseable column yields an empty map so callers never deal
// with partially decoded state.
func DecodeSyncMetadata(raw string) map[string]string {
	meta := make(map[string]string)
	if raw == "" {
		return meta
	}
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		return make(map[string]string)
	}
	return meta
}

// EncodeSyncMetadata serializes a metadata map back into its column form.
func EncodeSyncMetadata(meta map[string]string) string {
	if len(meta) == 0 {
		return ""
	}
	b, err := json.Marshal(meta)
	if err != nil {
		return ""
	}
	return string(b)
}
