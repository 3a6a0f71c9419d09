package controlpanel

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// WebsiteSyncer ensures a local website record has a matching website in the
// control panel, bound to the correct domain. The panel is the source of
// truth and may be edited directly by operators, so every path here is safe
// to re-run after arbitrary out-of-band changes.
type WebsiteSyncer struct {
	client Client
	now    func() time.Time
}

// NewWebsiteSyncer creates a website syncer on top of a panel client.
func NewWebsiteSyncer(client Client) *WebsiteSyncer {
	return &WebsiteSyncer{client: client, now: time.Now}
}

// Ensure finds or creates the remote website for domain under accountID.
// recordedID is the previously recorded external website id, empty when none
// is known. subscriptionID optionally binds a newly created website to an
// existing subscription.
func (s *WebsiteSyncer) Ensure(ctx context.Context, accountID, recordedID, domain, subscriptionID string) (WebsiteResult, error) {
	result := WebsiteResult{AccountID: accountID}

	wanted := normalizeDomain(domain)
	if wanted == "" {
		return result, &ConfigError{Reason: "website domain is missing"}
	}

	if recordedID != "" {
		site, err := s.client.GetWebsite(ctx, accountID, recordedID)
		switch {
		case err == nil:
			return s.reconcileExisting(ctx, accountID, site, wanted)
		case IsRemoteNotFound(err):
			// The recorded id no longer resolves; rediscover below as if no
			// id had been recorded.
		default:
			return result, fmt.Errorf("get website %s: %w", recordedID, err)
		}
	}

	adopted, err := s.findByDomain(ctx, accountID, wanted)
	if err != nil {
		return result, err
	}
	if adopted != nil {
		result.ExternalWebsiteID = adopted.ID
		result.AlreadyExisted = true
		return result, nil
	}

	created, err := s.client.CreateWebsite(ctx, accountID, wanted, subscriptionID)
	if err == nil {
		result.ExternalWebsiteID = created.ID
		return result, nil
	}
	if !IsRemoteConflict(err) {
		return result, fmt.Errorf("create website %s: %w", wanted, err)
	}

	// The panel claims the website already exists; it may have been created
	// concurrently. One more list-and-match before giving up.
	adopted, listErr := s.findByDomain(ctx, accountID, wanted)
	if listErr != nil {
		return result, fmt.Errorf("create website %s conflicted and re-list failed: %w", wanted, listErr)
	}
	if adopted == nil {
		return result, fmt.Errorf("create website %s: %w", wanted, err)
	}
	result.ExternalWebsiteID = adopted.ID
	result.AlreadyExisted = true
	return result, nil
}

// reconcileExisting handles a website whose recorded id still resolves. A
// drifted domain is first added as an alias; panels that reject the alias get
// a primary-domain update instead. A failed update degrades to a warning, the
// website itself still exists.
func (s *WebsiteSyncer) reconcileExisting(ctx context.Context, accountID string, site *Website, wanted string) (WebsiteResult, error) {
	result := WebsiteResult{AccountID: accountID, ExternalWebsiteID: site.ID, AlreadyExisted: true}

	if websiteServesDomain(site, wanted) {
		return result, nil
	}

	if err := s.client.AddDomainAlias(ctx, accountID, site.ID, wanted); err == nil {
		result.DomainUpdated = true
		return result, nil
	}

	upd := WebsiteUpdate{Domain: &wanted}
	if err := s.client.UpdateWebsite(ctx, accountID, site.ID, upd); err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("website %s exists but its domain could not be updated to %s: %v", site.ID, wanted, err))
		return result, nil
	}
	result.DomainUpdated = true
	return result, nil
}

func (s *WebsiteSyncer) findByDomain(ctx context.Context, accountID, wanted string) (*Website, error) {
	sites, err := s.client.ListWebsites(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list websites: %w", err)
	}
	for i := range sites {
		if websiteServesDomain(&sites[i], wanted) {
			return &sites[i], nil
		}
	}
	return nil, nil
}

func websiteServesDomain(site *Website, wanted string) bool {
	if normalizeDomain(site.Domain) == wanted {
		return true
	}
	for _, alias := range site.AliasDomains {
		if normalizeDomain(alias) == wanted {
			return true
		}
	}
	return false
}

func normalizeDomain(domain string) string {
	return strings.ToLower(strings.TrimSpace(domain))
}

// The website linkage used to live only inside the record's free-text notes.
// The marker format is kept so records written before the structured column
// existed still resolve.
var websiteNoteRe = regexp.MustCompile(`\[SYNC\] External Website ID: ([^,\s]+), Customer External ID: ([^,\s]+), Synced at: ([^\s]+)`)

// FormatWebsiteNote renders the sync marker appended to a website's notes.
func FormatWebsiteNote(websiteID, accountID string, at time.Time) string {
	return fmt.Sprintf("[SYNC] External Website ID: %s, Customer External ID: %s, Synced at: %s",
		websiteID, accountID, at.UTC().Format(time.RFC3339))
}

// ParseWebsiteNoteID extracts the external website id from a notes field, or
// "" when no sync marker is present. The last marker wins.
func ParseWebsiteNoteID(notes string) string {
	matches := websiteNoteRe.FindAllStringSubmatch(notes, -1)
	if len(matches) == 0 {
		return ""
	}
	return matches[len(matches)-1][1]
}
