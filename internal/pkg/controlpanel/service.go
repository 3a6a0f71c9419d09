package controlpanel

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/DennisWallner/HostDesk/app/models"
	metrics "github.com/DennisWallner/HostDesk/internal/pkg/metrics/counter"
	"gorm.io/gorm"
)

// Service orchestrates control-panel reconciliation for the admin API: it
// resolves panel config and plan mapping, serializes work per local record,
// runs the syncers and persists the resulting sync state.
type Service struct {
	repo      Repository
	resolver  *Resolver
	locks     *lockTable
	clientFor func(Config) Client
	now       func() time.Time
	// observe, when set, is notified once per sync attempt against a panel.
	observe func(panelID uint, failed bool)
}

// NewService creates a sync service from an injected repository.
func NewService(repo Repository) *Service {
	return &Service{
		repo:      repo,
		resolver:  NewResolver(repo),
		locks:     newLockTable(),
		clientFor: NewRestClient,
		now:       time.Now,
	}
}

// NewServiceFromDB creates a sync service from a GORM DB handle with per-panel
// sync counters enabled.
func NewServiceFromDB(db *gorm.DB) *Service {
	svc := NewService(NewRepository(db))
	svc.observe = func(panelID uint, failed bool) {
		_ = metrics.AddSyncAttempt(panelID)
		if failed {
			_ = metrics.AddSyncError(panelID)
		}
	}
	return svc
}

// SyncHosting reconciles one hosting record with its control panel.
func (s *Service) SyncHosting(ctx context.Context, hostingID uint) (SubscriptionResult, error) {
	h, err := s.repo.GetHosting(hostingID)
	if err != nil {
		return SubscriptionResult{}, localLookupErr("hosting", hostingID, err)
	}
	return s.syncSubscriptionRecord(ctx, subscriptionTarget{
		kind:        "hosting",
		id:          h.ID,
		panelID:     h.ControlPanelID,
		planType:    models.PlanTypeHosting,
		localPlanID: h.HostingPackageID,
	})
}

// SyncVPS reconciles one VPS record with its control panel.
func (s *Service) SyncVPS(ctx context.Context, vpsID uint) (SubscriptionResult, error) {
	v, err := s.repo.GetVPS(vpsID)
	if err != nil {
		return SubscriptionResult{}, localLookupErr("vps", vpsID, err)
	}
	return s.syncSubscriptionRecord(ctx, subscriptionTarget{
		kind:        "vps",
		id:          v.ID,
		panelID:     v.ControlPanelID,
		planType:    models.PlanTypeVPS,
		localPlanID: v.VPSPackageID,
	})
}

// subscriptionTarget is the slice of a hosting/VPS row the shared
// subscription sync flow needs up front.
type subscriptionTarget struct {
	kind        string
	id          uint
	panelID     uint
	planType    string
	localPlanID uint
}

func (s *Service) syncSubscriptionRecord(ctx context.Context, target subscriptionTarget) (res SubscriptionResult, retErr error) {
	if err := syncAllowed(); err != nil {
		return SubscriptionResult{}, err
	}

	cfg, err := s.panelConfig(target.panelID)
	if err != nil {
		return SubscriptionResult{}, err
	}
	if s.observe != nil {
		defer func() { s.observe(cfg.PanelID, retErr != nil) }()
	}

	// Mapping resolution fails fast, before any remote call and before the
	// record lock is taken.
	mapping, err := s.resolver.Resolve(cfg.PanelID, target.planType, target.localPlanID)
	if err != nil {
		return SubscriptionResult{}, err
	}

	unlock := s.locks.Acquire(fmt.Sprintf("%s:%d", target.kind, target.id))
	defer unlock()

	// Re-read under the lock so a second concurrent sync observes what the
	// first one wrote.
	var (
		customerID        uint
		externalAccountID string
		meta              map[string]string
	)
	var hosting *models.Hosting
	var vps *models.VPS
	switch target.kind {
	case "hosting":
		hosting, err = s.repo.GetHosting(target.id)
		if err != nil {
			return SubscriptionResult{}, localLookupErr("hosting", target.id, err)
		}
		customerID, externalAccountID, meta = hosting.CustomerID, hosting.ExternalAccountID, hosting.Metadata()
	default:
		vps, err = s.repo.GetVPS(target.id)
		if err != nil {
			return SubscriptionResult{}, localLookupErr("vps", target.id, err)
		}
		customerID, externalAccountID, meta = vps.CustomerID, vps.ExternalAccountID, vps.Metadata()
	}

	customer, err := s.repo.GetCustomer(customerID)
	if err != nil {
		return SubscriptionResult{}, localLookupErr("customer", customerID, err)
	}

	client := s.clientFor(cfg)

	accountID, err := NewCustomerSyncer(client).EnsureAccount(ctx, customer, externalAccountID)
	if err != nil {
		s.markSubscriptionError(hosting, vps)
		return SubscriptionResult{}, err
	}

	tierFor := func(externalPlanID string) (int, bool) {
		if externalPlanID == mapping.ExternalPlanID && mapping.SortOrder != nil {
			return *mapping.SortOrder, true
		}
		return s.resolver.TierFor(cfg.PanelID, target.planType, externalPlanID)
	}

	result, err := NewSubscriptionSyncer(client).Ensure(ctx, accountID, meta, mapping.ExternalPlanID, tierFor)
	if err != nil {
		s.markSubscriptionError(hosting, vps)
		return result, err
	}

	// The remote state is now correct; a failing local write is a soft
	// inconsistency the next sync heals by re-listing.
	now := s.now()
	var saveErr error
	if hosting != nil {
		hosting.ExternalAccountID = accountID
		hosting.SyncMetadata = models.EncodeSyncMetadata(meta)
		hosting.SyncStatus = models.SyncStatusSynced
		hosting.LastSyncedAt = &now
		saveErr = s.repo.SaveHostingSyncState(hosting)
	} else {
		vps.ExternalAccountID = accountID
		vps.SyncMetadata = models.EncodeSyncMetadata(meta)
		vps.SyncStatus = models.SyncStatusSynced
		vps.LastSyncedAt = &now
		saveErr = s.repo.SaveVPSSyncState(vps)
	}
	if saveErr != nil {
		log.Printf("%s %d: remote sync succeeded but local state write failed: %v", target.kind, target.id, saveErr)
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("sync state could not be persisted locally (%v); the next sync will self-heal", saveErr))
	}

	return result, nil
}

// SyncWebsite reconciles one website record with its control panel.
func (s *Service) SyncWebsite(ctx context.Context, websiteID uint) (res WebsiteResult, retErr error) {
	if err := syncAllowed(); err != nil {
		return WebsiteResult{}, err
	}

	w, err := s.repo.GetWebsite(websiteID)
	if err != nil {
		return WebsiteResult{}, localLookupErr("website", websiteID, err)
	}

	cfg, err := s.panelConfig(w.ControlPanelID)
	if err != nil {
		return WebsiteResult{}, err
	}
	if s.observe != nil {
		defer func() { s.observe(cfg.PanelID, retErr != nil) }()
	}

	unlock := s.locks.Acquire(fmt.Sprintf("website:%d", w.ID))
	defer unlock()

	w, err = s.repo.GetWebsite(websiteID)
	if err != nil {
		return WebsiteResult{}, localLookupErr("website", websiteID, err)
	}

	customer, err := s.repo.GetCustomer(w.CustomerID)
	if err != nil {
		return WebsiteResult{}, localLookupErr("customer", w.CustomerID, err)
	}

	client := s.clientFor(cfg)

	accountID, err := NewCustomerSyncer(client).EnsureAccount(ctx, customer, w.ExternalAccountID)
	if err != nil {
		s.markWebsiteError(w)
		return WebsiteResult{}, err
	}

	recordedID := w.ExternalWebsiteID
	if recordedID == "" {
		recordedID = ParseWebsiteNoteID(w.Notes)
	}

	// When the website hangs off a hosting record, bind new sites to that
	// record's subscription. Best effort; a missing subscription id just
	// creates an unbound website.
	subscriptionID := ""
	if w.HostingID != nil {
		if hosting, err := s.repo.GetHosting(*w.HostingID); err == nil {
			subscriptionID = hosting.Metadata()[models.MetaKeySubscriptionID]
		}
	}

	result, err := NewWebsiteSyncer(client).Ensure(ctx, accountID, recordedID, w.Domain, subscriptionID)
	if err != nil {
		s.markWebsiteError(w)
		return result, err
	}

	now := s.now()
	linkChanged := w.ExternalWebsiteID != result.ExternalWebsiteID || result.DomainUpdated
	w.ExternalAccountID = accountID
	w.ExternalWebsiteID = result.ExternalWebsiteID
	w.SyncStatus = models.SyncStatusSynced
	w.LastSyncedAt = &now
	if linkChanged {
		note := FormatWebsiteNote(result.ExternalWebsiteID, accountID, now)
		if w.Notes == "" {
			w.Notes = note
		} else {
			w.Notes = w.Notes + "\n" + note
		}
	}
	if saveErr := s.repo.SaveWebsiteSyncState(w); saveErr != nil {
		log.Printf("website %d: remote sync succeeded but local state write failed: %v", w.ID, saveErr)
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("sync state could not be persisted locally (%v); the next sync will self-heal", saveErr))
	}

	return result, nil
}

func (s *Service) panelConfig(panelID uint) (Config, error) {
	panel, err := s.repo.GetControlPanel(panelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Config{}, &ConfigError{Reason: fmt.Sprintf("control panel %d does not exist", panelID)}
		}
		return Config{}, err
	}
	return ResolveConfig(panel)
}

// markSubscriptionError records a failed sync on whichever record was being
// synced. Best effort; the sync error itself is what gets surfaced.
func (s *Service) markSubscriptionError(hosting *models.Hosting, vps *models.VPS) {
	if hosting != nil {
		hosting.SyncStatus = models.SyncStatusError
		if err := s.repo.SaveHostingSyncState(hosting); err != nil {
			log.Printf("hosting %d: could not record sync error state: %v", hosting.ID, err)
		}
		return
	}
	if vps != nil {
		vps.SyncStatus = models.SyncStatusError
		if err := s.repo.SaveVPSSyncState(vps); err != nil {
			log.Printf("vps %d: could not record sync error state: %v", vps.ID, err)
		}
	}
}

func (s *Service) markWebsiteError(w *models.Website) {
	w.SyncStatus = models.SyncStatusError
	if err := s.repo.SaveWebsiteSyncState(w); err != nil {
		log.Printf("website %d: could not record sync error state: %v", w.ID, err)
	}
}

func syncAllowed() error {
	settings := models.GetAppSettings()
	if settings != nil && !settings.IsSyncEnabled() {
		return &ConfigError{Reason: "control panel sync is disabled in settings"}
	}
	return nil
}

func localLookupErr(kind string, id uint, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Kind: kind, ID: id}
	}
	return fmt.Errorf("load %s %d: %w", kind, id, err)
}
