package controlpanel

import (
	"fmt"
	"testing"
)

func TestRemoteErrorClassification(t *testing.T) {
	tests := []struct {
		status    int
		timeout   bool
		notFound  bool
		conflict  bool
		transient bool
	}{
		{status: 404, notFound: true},
		{status: 410, notFound: true},
		{status: 409, conflict: true},
		{status: 408, transient: true},
		{status: 429, transient: true},
		{status: 500, transient: true},
		{status: 503, transient: true},
		{status: 0, timeout: true, transient: true},
		{status: 400},
		{status: 422},
	}

	for _, tt := range tests {
		err := &RemoteError{Op: "test", Status: tt.status, Timeout: tt.timeout}
		if got := IsRemoteNotFound(err); got != tt.notFound {
			t.Fatalf("status %d: IsRemoteNotFound = %v, want %v", tt.status, got, tt.notFound)
		}
		if got := IsRemoteConflict(err); got != tt.conflict {
			t.Fatalf("status %d: IsRemoteConflict = %v, want %v", tt.status, got, tt.conflict)
		}
		if got := IsRemoteTransient(err); got != tt.transient {
			t.Fatalf("status %d: IsRemoteTransient = %v, want %v", tt.status, got, tt.transient)
		}
	}
}

func TestClassificationSurvivesWrapping(t *testing.T) {
	inner := &RemoteError{Op: "create subscription", Status: 409, Message: "exists"}
	wrapped := fmt.Errorf("sync hosting 7: %w", inner)

	if !IsRemoteConflict(wrapped) {
		t.Fatalf("wrapped conflict not recognized")
	}
	if IsRemoteNotFound(wrapped) {
		t.Fatalf("conflict misclassified as not-found")
	}
}

func TestLocalErrorHelpers(t *testing.T) {
	if !IsNotFound(&NotFoundError{Kind: "hosting", ID: 3}) {
		t.Fatalf("NotFoundError not recognized")
	}
	if !IsConfigError(&ConfigError{Reason: "x"}) {
		t.Fatalf("ConfigError not recognized")
	}
	if !IsMappingNotFound(&MappingNotFoundError{ControlPanelID: 1}) {
		t.Fatalf("MappingNotFoundError not recognized")
	}
	if IsMappingNotFound(&ConfigError{Reason: "x"}) {
		t.Fatalf("cross-type match")
	}
}
