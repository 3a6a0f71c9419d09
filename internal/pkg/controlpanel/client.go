package controlpanel

import "context"

// Account is a customer account inside the control panel.
type Account struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
}

// NewAccount is the payload for account creation. Creating an account also
// provisions a panel login for the customer's email.
type NewAccount struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
}

// Subscription is a plan booking under an account.
type Subscription struct {
	ID     string `json:"id"`
	PlanID string `json:"plan_id"`
	Status string `json:"status,omitempty"`
}

// Website is a site under an account, bound to a primary domain and
// optionally to a subscription.
type Website struct {
	ID             string   `json:"id"`
	Domain         string   `json:"domain"`
	AliasDomains   []string `json:"alias_domains,omitempty"`
	SubscriptionID string   `json:"subscription_id,omitempty"`
	Status         string   `json:"status,omitempty"`
}

// WebsiteUpdate carries mutable website fields; nil means unchanged.
type WebsiteUpdate struct {
	Domain *string `json:"domain,omitempty"`
}

// Client is the capability surface of a hosting control panel the syncers
// depend on. The concrete HTTP implementation is configuration, not logic;
// tests substitute a fake.
//
// Lookup calls signal a missing remote entity with a RemoteError whose
// NotFound() is true, never with a nil result.
type Client interface {
	FindAccountByEmail(ctx context.Context, email string) (*Account, error)
	CreateAccount(ctx context.Context, in NewAccount) (*Account, error)

	ListSubscriptions(ctx context.Context, accountID string) ([]Subscription, error)
	CreateSubscription(ctx context.Context, accountID, planID string) (*Subscription, error)
	UpdateSubscription(ctx context.Context, accountID, subscriptionID, newPlanID string) error

	GetWebsite(ctx context.Context, accountID, websiteID string) (*Website, error)
	ListWebsites(ctx context.Context, accountID string) ([]Website, error)
	CreateWebsite(ctx context.Context, accountID, domain, subscriptionID string) (*Website, error)
	UpdateWebsite(ctx context.Context, accountID, websiteID string, upd WebsiteUpdate) error
	AddDomainAlias(ctx context.Context, accountID, websiteID, domain string) error
}
