package controlpanel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testRestClient(t *testing.T, handler http.Handler) (Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewRestClient(Config{
		PanelID: 1,
		BaseURL: srv.URL,
		APIKey:  "test-key",
		OrgID:   "org-1",
		Timeout: 2 * time.Second,
	})
	return client, srv
}

func TestRestClientFindAccountByEmail(t *testing.T) {
	var gotAuth string
	client, _ := testRestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/orgs/org-1/customers" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]string{
				{"id": "acc-1", "name": "Alice", "email": "alice@example.com"},
				{"id": "acc-2", "name": "Bob", "email": "bob@example.com"},
			},
		})
	}))

	acc, err := client.FindAccountByEmail(context.Background(), "Alice@Example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acc.ID != "acc-1" {
		t.Fatalf("account id = %q, want acc-1", acc.ID)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("authorization header = %q", gotAuth)
	}
}

func TestRestClientFindAccountByEmailNotFound(t *testing.T) {
	client, _ := testRestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"items": []map[string]string{}})
	}))

	_, err := client.FindAccountByEmail(context.Background(), "nobody@example.com")
	if !IsRemoteNotFound(err) {
		t.Fatalf("expected not-found classification, got %v", err)
	}
}

func TestRestClientCreateAccountProvisionsLogin(t *testing.T) {
	var paths []string
	client, _ := testRestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		switch r.URL.Path {
		case "/orgs/org-1/customers":
			_ = json.NewEncoder(w).Encode(map[string]string{"id": "acc-9", "name": "Alice", "email": "alice@example.com"})
		case "/orgs/acc-9/logins":
			w.WriteHeader(http.StatusCreated)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))

	acc, err := client.CreateAccount(context.Background(), NewAccount{Name: "Alice", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acc.ID != "acc-9" {
		t.Fatalf("account id = %q, want acc-9", acc.ID)
	}
	if len(paths) != 2 || paths[1] != "POST /orgs/acc-9/logins" {
		t.Fatalf("login not provisioned, calls: %v", paths)
	}
}

func TestRestClientListSubscriptionsNumericIDs(t *testing.T) {
	client, _ := testRestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The panel serves ids and plan ids as JSON numbers.
		_, _ = w.Write([]byte(`{"items":[{"id":555,"planId":101,"status":"active"}]}`))
	}))

	subs, err := client.ListSubscriptions(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("len(subs) = %d, want 1", len(subs))
	}
	if subs[0].ID != "555" || subs[0].PlanID != "101" {
		t.Fatalf("numeric ids not normalized: %+v", subs[0])
	}
}

func TestRestClientErrorClassification(t *testing.T) {
	status := http.StatusConflict
	client, _ := testRestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "duplicate subscription", status)
	}))

	_, err := client.CreateSubscription(context.Background(), "acc-1", "101")
	if !IsRemoteConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}

	status = http.StatusServiceUnavailable
	if _, err := client.ListSubscriptions(context.Background(), "acc-1"); !IsRemoteTransient(err) {
		t.Fatalf("expected transient, got %v", err)
	}

	status = http.StatusNotFound
	if _, err := client.GetWebsite(context.Background(), "acc-1", "web-1"); !IsRemoteNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestRestClientContextCancellation(t *testing.T) {
	client, _ := testRestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.ListSubscriptions(ctx, "acc-1")
	if err == nil {
		t.Fatalf("expected a deadline error")
	}
	if !IsRemoteTransient(err) {
		t.Fatalf("timeout must classify as transient, got %v", err)
	}
}
