package controlpanel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/DennisWallner/HostDesk/app/models"
	"gorm.io/gorm"
)

var errDeadlock = errors.New("deadlock found when trying to get lock")

func mustTime() time.Time {
	return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
}

// fakeClient is an in-memory control panel with call counters.
type fakeClient struct {
	mu sync.Mutex

	nextID   int
	accounts []Account               // account store
	subs     map[string][]Subscription // by account id
	sites    map[string][]Website      // by account id

	findAccountCalls int
	createAccCalls   int
	listSubCalls     int
	createSubCalls   int
	updateSubCalls   int
	getSiteCalls     int
	listSiteCalls    int
	createSiteCalls  int
	updateSiteCalls  int
	aliasCalls       int

	aliasErr      error
	updateSiteErr error
	createSiteErr error    // returned on the next CreateWebsite, then cleared
	conflictSite  *Website // appended to the store when createSiteErr fires
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		subs:  make(map[string][]Subscription),
		sites: make(map[string][]Website),
	}
}

func (f *fakeClient) newID() string {
	f.nextID++
	return fmt.Sprintf("%d", 554+f.nextID)
}

func (f *fakeClient) FindAccountByEmail(_ context.Context, email string) (*Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findAccountCalls++
	for i := range f.accounts {
		if strings.EqualFold(f.accounts[i].Email, strings.TrimSpace(email)) {
			acc := f.accounts[i]
			return &acc, nil
		}
	}
	return nil, &RemoteError{Op: "find account", Status: 404, Message: "no such account"}
}

func (f *fakeClient) CreateAccount(_ context.Context, in NewAccount) (*Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createAccCalls++
	acc := Account{ID: "acc-" + f.newID(), Name: in.Name, Email: in.Email, Phone: in.Phone, Company: in.Company}
	f.accounts = append(f.accounts, acc)
	return &acc, nil
}

func (f *fakeClient) ListSubscriptions(_ context.Context, accountID string) ([]Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listSubCalls++
	return append([]Subscription(nil), f.subs[accountID]...), nil
}

func (f *fakeClient) CreateSubscription(_ context.Context, accountID, planID string) (*Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createSubCalls++
	sub := Subscription{ID: f.newID(), PlanID: planID, Status: "active"}
	f.subs[accountID] = append(f.subs[accountID], sub)
	return &sub, nil
}

func (f *fakeClient) UpdateSubscription(_ context.Context, accountID, subscriptionID, newPlanID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateSubCalls++
	for i := range f.subs[accountID] {
		if f.subs[accountID][i].ID == subscriptionID {
			f.subs[accountID][i].PlanID = newPlanID
			return nil
		}
	}
	return &RemoteError{Op: "update subscription", Status: 404, Message: "no such subscription"}
}

func (f *fakeClient) GetWebsite(_ context.Context, accountID, websiteID string) (*Website, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getSiteCalls++
	for i := range f.sites[accountID] {
		if f.sites[accountID][i].ID == websiteID {
			site := f.sites[accountID][i]
			return &site, nil
		}
	}
	return nil, &RemoteError{Op: "get website", Status: 404, Message: "no such website"}
}

func (f *fakeClient) ListWebsites(_ context.Context, accountID string) ([]Website, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listSiteCalls++
	return append([]Website(nil), f.sites[accountID]...), nil
}

func (f *fakeClient) CreateWebsite(_ context.Context, accountID, domain, subscriptionID string) (*Website, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createSiteCalls++
	if f.createSiteErr != nil {
		err := f.createSiteErr
		f.createSiteErr = nil
		if f.conflictSite != nil {
			f.sites[accountID] = append(f.sites[accountID], *f.conflictSite)
			f.conflictSite = nil
		}
		return nil, err
	}
	site := Website{ID: "web-" + f.newID(), Domain: domain, SubscriptionID: subscriptionID, Status: "active"}
	f.sites[accountID] = append(f.sites[accountID], site)
	return &site, nil
}

func (f *fakeClient) UpdateWebsite(_ context.Context, accountID, websiteID string, upd WebsiteUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateSiteCalls++
	if f.updateSiteErr != nil {
		return f.updateSiteErr
	}
	for i := range f.sites[accountID] {
		if f.sites[accountID][i].ID == websiteID {
			if upd.Domain != nil {
				f.sites[accountID][i].Domain = *upd.Domain
			}
			return nil
		}
	}
	return &RemoteError{Op: "update website", Status: 404, Message: "no such website"}
}

func (f *fakeClient) AddDomainAlias(_ context.Context, accountID, websiteID, domain string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.aliasCalls++
	if f.aliasErr != nil {
		return f.aliasErr
	}
	for i := range f.sites[accountID] {
		if f.sites[accountID][i].ID == websiteID {
			f.sites[accountID][i].AliasDomains = append(f.sites[accountID][i].AliasDomains, domain)
			return nil
		}
	}
	return &RemoteError{Op: "add domain alias", Status: 404, Message: "no such website"}
}

// fakeRepo is an in-memory Repository.
type fakeRepo struct {
	mu sync.Mutex

	panels    map[uint]*models.ControlPanel
	mappings  []*models.ControlPanelPlanMapping
	customers map[uint]*models.Customer
	hostings  map[uint]*models.Hosting
	vpss      map[uint]*models.VPS
	websites  map[uint]*models.Website

	saveHostingErr error
	saveWebsiteErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		panels:    make(map[uint]*models.ControlPanel),
		customers: make(map[uint]*models.Customer),
		hostings:  make(map[uint]*models.Hosting),
		vpss:      make(map[uint]*models.VPS),
		websites:  make(map[uint]*models.Website),
	}
}

func (r *fakeRepo) GetControlPanel(id uint) (*models.ControlPanel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.panels[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) FindActivePlanMapping(panelID uint, planType string, localPlanID uint) (*models.ControlPanelPlanMapping, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.mappings {
		if m.ControlPanelID == panelID && m.LocalPlanType == planType && m.LocalPlanID == localPlanID && m.IsActive {
			cp := *m
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) FindPlanMappingByExternalID(panelID uint, planType, externalPlanID string) (*models.ControlPanelPlanMapping, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.mappings {
		if m.ControlPanelID == panelID && m.LocalPlanType == planType && m.ExternalPlanID == externalPlanID && m.IsActive {
			cp := *m
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetCustomer(id uint) (*models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.customers[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetHosting(id uint) (*models.Hosting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h, ok := r.hostings[id]; ok {
		cp := *h
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetVPS(id uint) (*models.VPS, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.vpss[id]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetWebsite(id uint) (*models.Website, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w, ok := r.websites[id]; ok {
		cp := *w
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) SaveHostingSyncState(h *models.Hosting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveHostingErr != nil {
		return r.saveHostingErr
	}
	stored, ok := r.hostings[h.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.ExternalAccountID = h.ExternalAccountID
	stored.SyncStatus = h.SyncStatus
	stored.SyncMetadata = h.SyncMetadata
	stored.LastSyncedAt = h.LastSyncedAt
	return nil
}

func (r *fakeRepo) SaveVPSSyncState(v *models.VPS) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.vpss[v.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.ExternalAccountID = v.ExternalAccountID
	stored.SyncStatus = v.SyncStatus
	stored.SyncMetadata = v.SyncMetadata
	stored.LastSyncedAt = v.LastSyncedAt
	return nil
}

func (r *fakeRepo) SaveWebsiteSyncState(w *models.Website) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveWebsiteErr != nil {
		return r.saveWebsiteErr
	}
	stored, ok := r.websites[w.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.ExternalAccountID = w.ExternalAccountID
	stored.ExternalWebsiteID = w.ExternalWebsiteID
	stored.SyncStatus = w.SyncStatus
	stored.Notes = w.Notes
	stored.LastSyncedAt = w.LastSyncedAt
	return nil
}

// newTestService wires a Service onto the fakes with the HTTP client factory
// replaced by the fake client.
func newTestService(repo *fakeRepo, client *fakeClient) *Service {
	svc := NewService(repo)
	svc.clientFor = func(Config) Client { return client }
	return svc
}
