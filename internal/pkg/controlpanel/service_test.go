package controlpanel

import (
	"context"
	"sync"
	"testing"

	"github.com/DennisWallner/HostDesk/app/models"
)

func seedHostingWorld(repo *fakeRepo) {
	repo.panels[1] = &models.ControlPanel{
		ID: 1, Name: "Panel One", Type: models.ControlPanelTypeEnhance,
		BaseURL: "https://panel.example.com/api", APIKey: "secret", OrgID: "org-1", IsActive: true,
	}
	repo.customers[1] = &models.Customer{ID: 1, Name: "Alice", Email: "alice@example.com"}
	repo.hostings[1] = &models.Hosting{
		ID: 1, CustomerID: 1, HostingPackageID: 5, ControlPanelID: 1,
		Domain: "alice.example.com", SyncStatus: models.SyncStatusNotSynced,
	}
	repo.mappings = append(repo.mappings, &models.ControlPanelPlanMapping{
		ID: 1, ControlPanelID: 1, LocalPlanType: models.PlanTypeHosting,
		LocalPlanID: 5, ExternalPlanID: "101", IsActive: true,
	})
}

func TestSyncHostingEndToEnd(t *testing.T) {
	repo := newFakeRepo()
	client := newFakeClient()
	seedHostingWorld(repo)
	svc := newTestService(repo, client)

	// First sync: account and subscription are created.
	res, err := svc.SyncHosting(context.Background(), 1)
	if err != nil {
		t.Fatalf("first sync: %v", err)
	}
	if res.Action != ActionCreated {
		t.Fatalf("first action = %q, want %q", res.Action, ActionCreated)
	}
	if res.AccountID == "" || res.SubscriptionID == "" {
		t.Fatalf("incomplete result: %+v", res)
	}

	stored := repo.hostings[1]
	if stored.SyncStatus != models.SyncStatusSynced {
		t.Fatalf("sync status = %q, want SYNCED", stored.SyncStatus)
	}
	if stored.ExternalAccountID != res.AccountID {
		t.Fatalf("account id not persisted")
	}
	if got := stored.Metadata()[models.MetaKeySubscriptionID]; got != res.SubscriptionID {
		t.Fatalf("metadata subscriptionId = %q, want %q", got, res.SubscriptionID)
	}
	if stored.LastSyncedAt == nil {
		t.Fatalf("last synced timestamp not persisted")
	}

	// Second sync, nothing changed: idempotent steady state.
	res2, err := svc.SyncHosting(context.Background(), 1)
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if res2.Action != ActionUpdated {
		t.Fatalf("second action = %q, want %q", res2.Action, ActionUpdated)
	}
	if client.createSubCalls != 1 || client.updateSubCalls != 0 {
		t.Fatalf("steady state mutated remote state: create=%d update=%d", client.createSubCalls, client.updateSubCalls)
	}

	// Admin switches the package to one mapped to plan 202: upgrade.
	repo.hostings[1].HostingPackageID = 6
	repo.mappings = append(repo.mappings, &models.ControlPanelPlanMapping{
		ID: 2, ControlPanelID: 1, LocalPlanType: models.PlanTypeHosting,
		LocalPlanID: 6, ExternalPlanID: "202", IsActive: true,
	})

	res3, err := svc.SyncHosting(context.Background(), 1)
	if err != nil {
		t.Fatalf("third sync: %v", err)
	}
	if res3.Action != ActionUpgrade {
		t.Fatalf("third action = %q, want %q", res3.Action, ActionUpgrade)
	}
	if res3.SubscriptionID != res.SubscriptionID {
		t.Fatalf("plan change must keep the subscription, got new id %q", res3.SubscriptionID)
	}
	if got := client.subs[res.AccountID][0].PlanID; got != "202" {
		t.Fatalf("remote plan = %q, want 202", got)
	}
}

func TestSyncHostingMissingMappingAbortsBeforeRemoteCalls(t *testing.T) {
	repo := newFakeRepo()
	client := newFakeClient()
	seedHostingWorld(repo)
	repo.mappings = nil
	svc := newTestService(repo, client)

	_, err := svc.SyncHosting(context.Background(), 1)
	if !IsMappingNotFound(err) {
		t.Fatalf("expected mapping-not-found, got %v", err)
	}
	if client.findAccountCalls+client.createAccCalls+client.listSubCalls+client.createSubCalls != 0 {
		t.Fatalf("remote client was invoked despite missing mapping")
	}
}

func TestSyncHostingDisabledPanelFailsFast(t *testing.T) {
	repo := newFakeRepo()
	client := newFakeClient()
	seedHostingWorld(repo)
	repo.panels[1].IsActive = false
	svc := newTestService(repo, client)

	_, err := svc.SyncHosting(context.Background(), 1)
	if !IsConfigError(err) {
		t.Fatalf("expected config error for disabled panel, got %v", err)
	}
}

func TestSyncHostingUnknownRecord(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, newFakeClient())

	_, err := svc.SyncHosting(context.Background(), 42)
	if !IsNotFound(err) {
		t.Fatalf("expected local not-found error, got %v", err)
	}
}

func TestSyncHostingConcurrentCallsCreateOnce(t *testing.T) {
	repo := newFakeRepo()
	client := newFakeClient()
	seedHostingWorld(repo)
	svc := newTestService(repo, client)

	const n = 8
	var wg sync.WaitGroup
	results := make([]SubscriptionResult, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.SyncHosting(context.Background(), 1)
		}(i)
	}
	wg.Wait()

	created := 0
	for i := 0; i < n; i++ {
		if errs[i] != nil {
			t.Fatalf("sync %d failed: %v", i, errs[i])
		}
		if results[i].Action == ActionCreated {
			created++
		}
	}
	if created != 1 {
		t.Fatalf("created actions = %d, want exactly 1", created)
	}
	if client.createSubCalls != 1 {
		t.Fatalf("createSubCalls = %d, want 1 (duplicate remote subscription)", client.createSubCalls)
	}
	// Every caller must have converged on the same subscription.
	want := results[0].SubscriptionID
	for i := 1; i < n; i++ {
		if results[i].SubscriptionID != want {
			t.Fatalf("divergent subscription ids: %q vs %q", results[i].SubscriptionID, want)
		}
	}
}

func TestSyncHostingLocalWriteFailureIsAWarning(t *testing.T) {
	repo := newFakeRepo()
	client := newFakeClient()
	seedHostingWorld(repo)
	repo.saveHostingErr = errDeadlock
	svc := newTestService(repo, client)

	res, err := svc.SyncHosting(context.Background(), 1)
	if err != nil {
		t.Fatalf("remote success with failed local write must not fail: %v", err)
	}
	if res.Action != ActionCreated {
		t.Fatalf("action = %q, want %q", res.Action, ActionCreated)
	}
	if len(res.Warnings) == 0 {
		t.Fatalf("expected a persistence warning")
	}
}

func TestSyncVPSUsesVPSMapping(t *testing.T) {
	repo := newFakeRepo()
	client := newFakeClient()
	repo.panels[1] = &models.ControlPanel{
		ID: 1, Name: "Panel One", Type: models.ControlPanelTypeEnhance,
		BaseURL: "https://panel.example.com/api", APIKey: "secret", OrgID: "org-1", IsActive: true,
	}
	repo.customers[2] = &models.Customer{ID: 2, Name: "Bob", Email: "bob@example.com"}
	repo.vpss[7] = &models.VPS{ID: 7, CustomerID: 2, VPSPackageID: 3, ControlPanelID: 1, Hostname: "v7.example.com"}
	repo.mappings = append(repo.mappings, &models.ControlPanelPlanMapping{
		ID: 1, ControlPanelID: 1, LocalPlanType: models.PlanTypeVPS,
		LocalPlanID: 3, ExternalPlanID: "900", IsActive: true,
	})
	svc := newTestService(repo, client)

	res, err := svc.SyncVPS(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Action != ActionCreated {
		t.Fatalf("action = %q, want %q", res.Action, ActionCreated)
	}
	if got := client.subs[res.AccountID][0].PlanID; got != "900" {
		t.Fatalf("remote plan = %q, want 900", got)
	}
	if repo.vpss[7].SyncStatus != models.SyncStatusSynced {
		t.Fatalf("vps sync status = %q, want SYNCED", repo.vpss[7].SyncStatus)
	}
}

func TestSyncWebsiteEndToEnd(t *testing.T) {
	repo := newFakeRepo()
	client := newFakeClient()
	seedHostingWorld(repo)
	hostingID := uint(1)
	repo.websites[3] = &models.Website{
		ID: 3, CustomerID: 1, HostingID: &hostingID, ControlPanelID: 1,
		Domain: "alice.example.com",
	}
	svc := newTestService(repo, client)

	// Sync the hosting first so the website can bind to its subscription.
	hres, err := svc.SyncHosting(context.Background(), 1)
	if err != nil {
		t.Fatalf("hosting sync: %v", err)
	}

	res, err := svc.SyncWebsite(context.Background(), 3)
	if err != nil {
		t.Fatalf("website sync: %v", err)
	}
	if res.AlreadyExisted {
		t.Fatalf("fresh website flagged as existing")
	}
	if got := client.sites[hres.AccountID][0].SubscriptionID; got != hres.SubscriptionID {
		t.Fatalf("website not bound to hosting subscription: %q vs %q", got, hres.SubscriptionID)
	}

	stored := repo.websites[3]
	if stored.ExternalWebsiteID != res.ExternalWebsiteID {
		t.Fatalf("external website id not persisted")
	}
	if ParseWebsiteNoteID(stored.Notes) != res.ExternalWebsiteID {
		t.Fatalf("sync note marker not appended: %q", stored.Notes)
	}
	if stored.SyncStatus != models.SyncStatusSynced {
		t.Fatalf("sync status = %q, want SYNCED", stored.SyncStatus)
	}

	// Second sync is a pure no-op beyond the direct get.
	res2, err := svc.SyncWebsite(context.Background(), 3)
	if err != nil {
		t.Fatalf("second website sync: %v", err)
	}
	if !res2.AlreadyExisted || res2.DomainUpdated {
		t.Fatalf("unexpected second result: %+v", res2)
	}
	if client.createSiteCalls != 1 {
		t.Fatalf("createSiteCalls = %d, want 1", client.createSiteCalls)
	}
}

func TestSyncWebsiteLegacyNoteFallback(t *testing.T) {
	repo := newFakeRepo()
	client := newFakeClient()
	seedHostingWorld(repo)
	client.sites["acc-x"] = []Website{{ID: "web-legacy", Domain: "alice.example.com"}}
	repo.customers[1].Email = "alice@example.com"
	repo.websites[4] = &models.Website{
		ID: 4, CustomerID: 1, ControlPanelID: 1,
		Domain:            "alice.example.com",
		ExternalAccountID: "acc-x",
		// Linkage recorded only in free text, the way older records did it.
		Notes: "migrated from v1\n" + FormatWebsiteNote("web-legacy", "acc-x", mustTime()),
	}
	svc := newTestService(repo, client)

	res, err := svc.SyncWebsite(context.Background(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ExternalWebsiteID != "web-legacy" || !res.AlreadyExisted {
		t.Fatalf("legacy note id not honored: %+v", res)
	}
	if repo.websites[4].ExternalWebsiteID != "web-legacy" {
		t.Fatalf("legacy id not migrated into the structured column")
	}
	if client.listSiteCalls != 0 {
		t.Fatalf("recorded id should resolve via direct get, not list")
	}
}
