package controlpanel

import (
	"testing"
	"time"

	"github.com/DennisWallner/HostDesk/app/models"
)

func activePanel() *models.ControlPanel {
	return &models.ControlPanel{
		ID: 1, Name: "Panel", Type: models.ControlPanelTypeEnhance,
		BaseURL: "https://panel.example.com/api/", APIKey: "row-key", OrgID: "org-row", IsActive: true,
	}
}

func TestResolveConfigFromRow(t *testing.T) {
	cfg, err := ResolveConfig(activePanel())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://panel.example.com/api" {
		t.Fatalf("base url not trimmed: %q", cfg.BaseURL)
	}
	if cfg.APIKey != "row-key" || cfg.OrgID != "org-row" {
		t.Fatalf("row values not used: %+v", cfg)
	}
	if cfg.Timeout != defaultRequestTimeout {
		t.Fatalf("timeout = %v, want default", cfg.Timeout)
	}
}

func TestResolveConfigEnvFallbacks(t *testing.T) {
	t.Setenv("CONTROL_PANEL_API_KEY", "env-key")
	t.Setenv("CONTROL_PANEL_ORG_ID", "env-org")

	panel := activePanel()
	panel.APIKey = ""
	panel.OrgID = ""

	cfg, err := ResolveConfig(panel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "env-key" || cfg.OrgID != "env-org" {
		t.Fatalf("env fallbacks not applied: %+v", cfg)
	}
}

func TestResolveConfigOrgIDFromConfigBlob(t *testing.T) {
	panel := activePanel()
	panel.OrgID = ""
	panel.ConfigJSON = `{"orgId":"org-blob","timeoutSeconds":5}`

	cfg, err := ResolveConfig(panel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OrgID != "org-blob" {
		t.Fatalf("org id = %q, want org-blob", cfg.OrgID)
	}
	if cfg.Timeout != 5*time.Second {
		t.Fatalf("timeout = %v, want 5s", cfg.Timeout)
	}
}

func TestResolveConfigFailures(t *testing.T) {
	if _, err := ResolveConfig(nil); !IsConfigError(err) {
		t.Fatalf("nil panel: got %v", err)
	}

	disabled := activePanel()
	disabled.IsActive = false
	if _, err := ResolveConfig(disabled); !IsConfigError(err) {
		t.Fatalf("disabled panel: got %v", err)
	}

	noURL := activePanel()
	noURL.BaseURL = "  "
	if _, err := ResolveConfig(noURL); !IsConfigError(err) {
		t.Fatalf("missing base url: got %v", err)
	}

	broken := activePanel()
	broken.ConfigJSON = `{"orgId":`
	if _, err := ResolveConfig(broken); !IsConfigError(err) {
		t.Fatalf("broken config blob: got %v", err)
	}
}
