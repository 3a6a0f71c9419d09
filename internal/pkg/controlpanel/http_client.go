package controlpanel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
)

// restClient talks to an Enhance-style control panel REST API. All entity ids
// travel as strings; numeric plan ids are only interpreted by the syncers.
type restClient struct {
	cfg        Config
	httpClient *http.Client
}

// NewRestClient creates the production HTTP client for a resolved panel config.
func NewRestClient(cfg Config) Client {
	return &restClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type accountPayload struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

type subscriptionPayload struct {
	ID     json.Number `json:"id"`
	PlanID json.Number `json:"planId"`
	Status string      `json:"status"`
}

type websitePayload struct {
	ID             string   `json:"id"`
	Domain         string   `json:"domain"`
	AliasDomains   []string `json:"aliasDomains"`
	SubscriptionID string   `json:"subscriptionId"`
	Status         string   `json:"status"`
}

type listEnvelope[T any] struct {
	Items []T `json:"items"`
}

func (c *restClient) FindAccountByEmail(ctx context.Context, email string) (*Account, error) {
	q := url.Values{}
	q.Set("email", strings.ToLower(strings.TrimSpace(email)))
	path := fmt.Sprintf("/orgs/%s/customers?%s", url.PathEscape(c.cfg.OrgID), q.Encode())

	var out listEnvelope[accountPayload]
	if err := c.doJSON(ctx, http.MethodGet, "find account", path, nil, &out); err != nil {
		return nil, err
	}
	for _, a := range out.Items {
		if strings.EqualFold(strings.TrimSpace(a.Email), strings.TrimSpace(email)) {
			acc := accountFromPayload(a)
			return &acc, nil
		}
	}
	return nil, &RemoteError{Op: "find account", Status: 404, Message: "no account with email " + email}
}

func (c *restClient) CreateAccount(ctx context.Context, in NewAccount) (*Account, error) {
	path := fmt.Sprintf("/orgs/%s/customers", url.PathEscape(c.cfg.OrgID))
	var created accountPayload
	if err := c.doJSON(ctx, http.MethodPost, "create account", path, in, &created); err != nil {
		return nil, err
	}

	// The panel account is useless to the customer without a login.
	loginPath := fmt.Sprintf("/orgs/%s/logins", url.PathEscape(created.ID))
	login := map[string]string{"email": in.Email, "name": in.Name}
	if err := c.doJSON(ctx, http.MethodPost, "create login", loginPath, login, nil); err != nil {
		return nil, err
	}

	acc := accountFromPayload(created)
	return &acc, nil
}

func (c *restClient) ListSubscriptions(ctx context.Context, accountID string) ([]Subscription, error) {
	path := fmt.Sprintf("/orgs/%s/subscriptions", url.PathEscape(accountID))
	var out listEnvelope[subscriptionPayload]
	if err := c.doJSON(ctx, http.MethodGet, "list subscriptions", path, nil, &out); err != nil {
		return nil, err
	}
	subs := make([]Subscription, 0, len(out.Items))
	for _, s := range out.Items {
		subs = append(subs, subscriptionFromPayload(s))
	}
	return subs, nil
}

func (c *restClient) CreateSubscription(ctx context.Context, accountID, planID string) (*Subscription, error) {
	path := fmt.Sprintf("/orgs/%s/customers/%s/subscriptions",
		url.PathEscape(c.cfg.OrgID), url.PathEscape(accountID))
	body := map[string]string{"planId": planID}
	var created subscriptionPayload
	if err := c.doJSON(ctx, http.MethodPost, "create subscription", path, body, &created); err != nil {
		return nil, err
	}
	sub := subscriptionFromPayload(created)
	return &sub, nil
}

func (c *restClient) UpdateSubscription(ctx context.Context, accountID, subscriptionID, newPlanID string) error {
	path := fmt.Sprintf("/orgs/%s/customers/%s/subscriptions/%s",
		url.PathEscape(c.cfg.OrgID), url.PathEscape(accountID), url.PathEscape(subscriptionID))
	body := map[string]string{"planId": newPlanID}
	return c.doJSON(ctx, http.MethodPatch, "update subscription", path, body, nil)
}

func (c *restClient) GetWebsite(ctx context.Context, accountID, websiteID string) (*Website, error) {
	path := fmt.Sprintf("/orgs/%s/websites/%s", url.PathEscape(accountID), url.PathEscape(websiteID))
	var out websitePayload
	if err := c.doJSON(ctx, http.MethodGet, "get website", path, nil, &out); err != nil {
		return nil, err
	}
	site := websiteFromPayload(out)
	return &site, nil
}

func (c *restClient) ListWebsites(ctx context.Context, accountID string) ([]Website, error) {
	path := fmt.Sprintf("/orgs/%s/websites", url.PathEscape(accountID))
	var out listEnvelope[websitePayload]
	if err := c.doJSON(ctx, http.MethodGet, "list websites", path, nil, &out); err != nil {
		return nil, err
	}
	sites := make([]Website, 0, len(out.Items))
	for _, w := range out.Items {
		sites = append(sites, websiteFromPayload(w))
	}
	return sites, nil
}

func (c *restClient) CreateWebsite(ctx context.Context, accountID, domain, subscriptionID string) (*Website, error) {
	path := fmt.Sprintf("/orgs/%s/websites", url.PathEscape(accountID))
	body := map[string]string{"domain": strings.ToLower(strings.TrimSpace(domain))}
	if subscriptionID != "" {
		body["subscriptionId"] = subscriptionID
	}
	var created websitePayload
	if err := c.doJSON(ctx, http.MethodPost, "create website", path, body, &created); err != nil {
		return nil, err
	}
	site := websiteFromPayload(created)
	return &site, nil
}

func (c *restClient) UpdateWebsite(ctx context.Context, accountID, websiteID string, upd WebsiteUpdate) error {
	path := fmt.Sprintf("/orgs/%s/websites/%s", url.PathEscape(accountID), url.PathEscape(websiteID))
	body := map[string]string{}
	if upd.Domain != nil {
		body["domain"] = strings.ToLower(strings.TrimSpace(*upd.Domain))
	}
	return c.doJSON(ctx, http.MethodPatch, "update website", path, body, nil)
}

func (c *restClient) AddDomainAlias(ctx context.Context, accountID, websiteID, domain string) error {
	path := fmt.Sprintf("/orgs/%s/websites/%s/domains", url.PathEscape(accountID), url.PathEscape(websiteID))
	body := map[string]string{"domain": strings.ToLower(strings.TrimSpace(domain))}
	return c.doJSON(ctx, http.MethodPost, "add domain alias", path, body, nil)
}

// doJSON performs one JSON round-trip against the panel API and maps failures
// onto RemoteError so callers can classify them.
func (c *restClient) doJSON(ctx context.Context, method, op, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RemoteError{Op: op, Message: err.Error(), Timeout: isTimeout(err)}
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RemoteError{Op: op, Status: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &RemoteError{Op: op, Status: resp.StatusCode, Message: "unparseable response: " + err.Error()}
	}
	return nil
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func accountFromPayload(a accountPayload) Account {
	return Account{
		ID:      strings.TrimSpace(a.ID),
		Name:    a.Name,
		Email:   a.Email,
		Phone:   a.Phone,
		Company: a.Company,
	}
}

func subscriptionFromPayload(s subscriptionPayload) Subscription {
	return Subscription{
		ID:     s.ID.String(),
		PlanID: s.PlanID.String(),
		Status: s.Status,
	}
}

func websiteFromPayload(w websitePayload) Website {
	return Website{
		ID:             strings.TrimSpace(w.ID),
		Domain:         w.Domain,
		AliasDomains:   w.AliasDomains,
		SubscriptionID: w.SubscriptionID,
		Status:         w.Status,
	}
}
