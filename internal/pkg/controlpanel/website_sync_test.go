package controlpanel

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestEnsureWebsiteCreatesWhenMissing(t *testing.T) {
	client := newFakeClient()
	syncer := NewWebsiteSyncer(client)

	res, err := syncer.Ensure(context.Background(), "acc-1", "", "example.com", "555")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.AlreadyExisted || res.DomainUpdated {
		t.Fatalf("fresh create flagged as existing/updated: %+v", res)
	}
	if res.ExternalWebsiteID == "" {
		t.Fatalf("expected a website id")
	}
	if got := client.sites["acc-1"][0].SubscriptionID; got != "555" {
		t.Fatalf("subscription binding = %q, want 555", got)
	}
}

func TestEnsureWebsiteDomainMatchIsCaseAndSpaceInsensitive(t *testing.T) {
	client := newFakeClient()
	client.sites["acc-1"] = []Website{{ID: "web-1", Domain: "Example.com "}}
	syncer := NewWebsiteSyncer(client)

	res, err := syncer.Ensure(context.Background(), "acc-1", "", "example.com", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.AlreadyExisted {
		t.Fatalf("expected existing website to be adopted")
	}
	if res.ExternalWebsiteID != "web-1" {
		t.Fatalf("adopted id = %q, want web-1", res.ExternalWebsiteID)
	}
	if client.createSiteCalls != 0 {
		t.Fatalf("matching website must not be duplicated")
	}
}

func TestEnsureWebsiteStaleRecordedIDFallsThrough(t *testing.T) {
	client := newFakeClient()
	client.sites["acc-1"] = []Website{{ID: "web-2", Domain: "example.com"}}
	syncer := NewWebsiteSyncer(client)

	// web-gone was deleted out-of-band; the syncer must rediscover web-2.
	res, err := syncer.Ensure(context.Background(), "acc-1", "web-gone", "example.com", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ExternalWebsiteID != "web-2" || !res.AlreadyExisted {
		t.Fatalf("stale id not replaced by rediscovered website: %+v", res)
	}
}

func TestEnsureWebsiteUnchangedDomainIsNoOp(t *testing.T) {
	client := newFakeClient()
	client.sites["acc-1"] = []Website{{ID: "web-1", Domain: "example.com"}}
	syncer := NewWebsiteSyncer(client)

	res, err := syncer.Ensure(context.Background(), "acc-1", "web-1", "Example.COM", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.AlreadyExisted || res.DomainUpdated {
		t.Fatalf("unexpected result for unchanged domain: %+v", res)
	}
	if client.aliasCalls != 0 || client.updateSiteCalls != 0 || client.listSiteCalls != 0 {
		t.Fatalf("no-op path issued extra remote calls")
	}
}

func TestEnsureWebsiteDomainDriftAddsAlias(t *testing.T) {
	client := newFakeClient()
	client.sites["acc-1"] = []Website{{ID: "web-1", Domain: "old.example.com"}}
	syncer := NewWebsiteSyncer(client)

	res, err := syncer.Ensure(context.Background(), "acc-1", "web-1", "new.example.com", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.DomainUpdated {
		t.Fatalf("expected domain update to be reported")
	}
	if client.aliasCalls != 1 || client.updateSiteCalls != 0 {
		t.Fatalf("alias path not taken: alias=%d update=%d", client.aliasCalls, client.updateSiteCalls)
	}
}

func TestEnsureWebsiteAliasRejectedFallsBackToPrimaryUpdate(t *testing.T) {
	client := newFakeClient()
	client.sites["acc-1"] = []Website{{ID: "web-1", Domain: "old.example.com"}}
	client.aliasErr = &RemoteError{Op: "add domain alias", Status: 422, Message: "aliases not supported"}
	syncer := NewWebsiteSyncer(client)

	res, err := syncer.Ensure(context.Background(), "acc-1", "web-1", "new.example.com", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.DomainUpdated {
		t.Fatalf("expected fallback primary-domain update")
	}
	if client.updateSiteCalls != 1 {
		t.Fatalf("updateSiteCalls = %d, want 1", client.updateSiteCalls)
	}
	if got := client.sites["acc-1"][0].Domain; got != "new.example.com" {
		t.Fatalf("remote domain = %q, want new.example.com", got)
	}
}

func TestEnsureWebsiteFailedDomainUpdateIsAWarningNotAFailure(t *testing.T) {
	client := newFakeClient()
	client.sites["acc-1"] = []Website{{ID: "web-1", Domain: "old.example.com"}}
	client.aliasErr = &RemoteError{Op: "add domain alias", Status: 422, Message: "nope"}
	client.updateSiteErr = &RemoteError{Op: "update website", Status: 500, Message: "boom"}
	syncer := NewWebsiteSyncer(client)

	res, err := syncer.Ensure(context.Background(), "acc-1", "web-1", "new.example.com", "")
	if err != nil {
		t.Fatalf("a failed domain update must not fail the operation, got %v", err)
	}
	if res.DomainUpdated {
		t.Fatalf("domain update wrongly reported as applied")
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", res.Warnings)
	}
	if res.ExternalWebsiteID != "web-1" {
		t.Fatalf("website id must still be returned")
	}
}

func TestEnsureWebsiteConflictRetriesListOnce(t *testing.T) {
	client := newFakeClient()
	// The panel rejects the create as a duplicate because another actor
	// created the site between our list and our create.
	client.createSiteErr = &RemoteError{Op: "create website", Status: 409, Message: "duplicate"}
	client.conflictSite = &Website{ID: "web-9", Domain: "example.com"}
	syncer := NewWebsiteSyncer(client)

	res, err := syncer.Ensure(context.Background(), "acc-1", "", "example.com", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.AlreadyExisted || res.ExternalWebsiteID != "web-9" {
		t.Fatalf("concurrently created site not adopted: %+v", res)
	}
	if client.listSiteCalls != 2 || client.createSiteCalls != 1 {
		t.Fatalf("unexpected call pattern: list=%d create=%d", client.listSiteCalls, client.createSiteCalls)
	}
}

func TestEnsureWebsiteConflictWithoutMatchSurfacesError(t *testing.T) {
	client := newFakeClient()
	client.createSiteErr = &RemoteError{Op: "create website", Status: 409, Message: "duplicate"}
	syncer := NewWebsiteSyncer(client)

	_, err := syncer.Ensure(context.Background(), "acc-1", "", "example.com", "")
	if err == nil {
		t.Fatalf("expected the conflict to surface after the re-list found nothing")
	}
	if !IsRemoteConflict(err) {
		t.Fatalf("surfaced error should keep the conflict classification, got %v", err)
	}
	if client.listSiteCalls != 2 {
		t.Fatalf("listSiteCalls = %d, want 2 (pre-create and conflict retry)", client.listSiteCalls)
	}
}

func TestWebsiteNoteRoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	note := FormatWebsiteNote("web-42", "acc-9", at)

	if !strings.Contains(note, "[SYNC] External Website ID: web-42") {
		t.Fatalf("unexpected note format: %s", note)
	}
	if got := ParseWebsiteNoteID("customer prefers blue\n" + note); got != "web-42" {
		t.Fatalf("parsed id = %q, want web-42", got)
	}
}

func TestParseWebsiteNoteIDLastMarkerWins(t *testing.T) {
	notes := FormatWebsiteNote("web-old", "acc-9", time.Now()) + "\n" +
		FormatWebsiteNote("web-new", "acc-9", time.Now())
	if got := ParseWebsiteNoteID(notes); got != "web-new" {
		t.Fatalf("parsed id = %q, want web-new", got)
	}
	if got := ParseWebsiteNoteID("no marker here"); got != "" {
		t.Fatalf("parsed id = %q, want empty", got)
	}
}
