package controlpanel

import (
	"context"
	"fmt"

	"github.com/DennisWallner/HostDesk/app/models"
)

// CustomerSyncer ensures a local customer has an account in the control
// panel. It never persists anything itself; the caller writes the returned
// account id back together with the rest of the sync state, so a failure in
// the following step cannot silently lose the id.
type CustomerSyncer struct {
	client Client
}

// NewCustomerSyncer creates a customer syncer on top of a panel client.
func NewCustomerSyncer(client Client) *CustomerSyncer {
	return &CustomerSyncer{client: client}
}

// EnsureAccount returns the external account id for a customer, creating the
// remote account (and its login) when none exists. A previously recorded id
// is trusted without re-verification.
func (s *CustomerSyncer) EnsureAccount(ctx context.Context, customer *models.Customer, existingID string) (string, error) {
	if existingID != "" {
		return existingID, nil
	}
	if customer == nil {
		return "", fmt.Errorf("customer record is missing")
	}

	email := customer.NormalizedEmail()
	if email == "" {
		return "", &ConfigError{Reason: fmt.Sprintf("customer %d has no email address", customer.ID)}
	}

	found, err := s.client.FindAccountByEmail(ctx, email)
	if err == nil {
		return found.ID, nil
	}
	if !IsRemoteNotFound(err) {
		return "", fmt.Errorf("find account for customer %d: %w", customer.ID, err)
	}

	created, err := s.client.CreateAccount(ctx, NewAccount{
		Name:    customer.Name,
		Email:   email,
		Phone:   customer.Phone,
		Company: customer.Company,
	})
	if err != nil {
		return "", fmt.Errorf("create account for customer %d: %w", customer.ID, err)
	}
	return created.ID, nil
}
