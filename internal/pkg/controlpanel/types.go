package controlpanel

// Sync actions reported back to the caller for UI display.
const (
	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionUpgrade   = "upgrade"
	ActionDowngrade = "downgrade"
	ActionRecreated = "recreated"
)

// SubscriptionResult is the outcome of ensuring a remote subscription.
type SubscriptionResult struct {
	AccountID      string   `json:"account_id"`
	SubscriptionID string   `json:"subscription_id"`
	Action         string   `json:"action"`
	// Warnings carry soft inconsistencies (e.g. the remote call succeeded but
	// the local write-back failed); the next sync self-heals them.
	Warnings []string `json:"warnings,omitempty"`
}

// WebsiteResult is the outcome of ensuring a remote website.
type WebsiteResult struct {
	AccountID         string   `json:"account_id"`
	ExternalWebsiteID string   `json:"external_website_id"`
	AlreadyExisted    bool     `json:"already_existed"`
	DomainUpdated     bool     `json:"domain_updated"`
	Warnings          []string `json:"warnings,omitempty"`
}
