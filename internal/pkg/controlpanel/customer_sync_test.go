package controlpanel

import (
	"context"
	"testing"

	"github.com/DennisWallner/HostDesk/app/models"
)

func TestEnsureAccountTrustsExistingID(t *testing.T) {
	client := newFakeClient()
	syncer := NewCustomerSyncer(client)

	id, err := syncer.EnsureAccount(context.Background(), nil, "acc-known")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "acc-known" {
		t.Fatalf("id = %q, want acc-known", id)
	}
	if client.findAccountCalls != 0 || client.createAccCalls != 0 {
		t.Fatalf("existing id must not trigger remote calls")
	}
}

func TestEnsureAccountAdoptsByEmail(t *testing.T) {
	client := newFakeClient()
	client.accounts = append(client.accounts, Account{ID: "acc-7", Email: "alice@example.com"})
	syncer := NewCustomerSyncer(client)

	customer := &models.Customer{ID: 1, Name: "Alice", Email: "Alice@Example.com "}
	id, err := syncer.EnsureAccount(context.Background(), customer, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "acc-7" {
		t.Fatalf("id = %q, want acc-7", id)
	}
	if client.createAccCalls != 0 {
		t.Fatalf("matching account must be adopted, not duplicated")
	}
}

func TestEnsureAccountCreatesWhenMissing(t *testing.T) {
	client := newFakeClient()
	syncer := NewCustomerSyncer(client)

	customer := &models.Customer{ID: 1, Name: "Alice", Email: "alice@example.com", Company: "Alice GmbH"}
	id, err := syncer.EnsureAccount(context.Background(), customer, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatalf("expected a new account id")
	}
	if client.createAccCalls != 1 {
		t.Fatalf("createAccCalls = %d, want 1", client.createAccCalls)
	}
	if client.accounts[0].Company != "Alice GmbH" {
		t.Fatalf("customer fields not passed through to account creation")
	}
}

func TestEnsureAccountRequiresEmail(t *testing.T) {
	client := newFakeClient()
	syncer := NewCustomerSyncer(client)

	_, err := syncer.EnsureAccount(context.Background(), &models.Customer{ID: 3}, "")
	if !IsConfigError(err) {
		t.Fatalf("expected a config error for a customer without email, got %v", err)
	}
	if client.findAccountCalls != 0 {
		t.Fatalf("no remote call expected for invalid customer")
	}
}
