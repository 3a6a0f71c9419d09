package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeSyncMetadata(t *testing.T) {
	meta := DecodeSyncMetadata(`{"subscriptionId":"555","subscriptionSyncedAt":"2026-01-02T03:04:05Z"}`)
	assert.Equal(t, "555", meta[MetaKeySubscriptionID])
	assert.Equal(t, "2026-01-02T03:04:05Z", meta[MetaKeySubscriptionSyncedAt])
}

func TestDecodeSyncMetadataEmptyAndBroken(t *testing.T) {
	assert.Empty(t, DecodeSyncMetadata(""))
	// A corrupted column must yield an empty map, never a partial one.
	assert.Empty(t, DecodeSyncMetadata(`{"subscriptionId":`))
}

func TestEncodeSyncMetadataRoundTrip(t *testing.T) {
	in := map[string]string{
		MetaKeySubscriptionID:         "42",
		MetaKeyExternalSubscriptionID: "42",
	}
	out := DecodeSyncMetadata(EncodeSyncMetadata(in))
	assert.Equal(t, in, out)

	assert.Equal(t, "", EncodeSyncMetadata(nil))
}
