package controlpanel

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/DennisWallner/HostDesk/app/models"
	"github.com/DennisWallner/HostDesk/internal/pkg/env"
)

const defaultRequestTimeout = 20 * time.Second

// Config is the validated connection configuration for one control panel
// instance. It is resolved once per panel, not re-read per request.
type Config struct {
	PanelID uint
	Type    string
	BaseURL string
	APIKey  string
	OrgID   string
	Timeout time.Duration
}

// panelConfigJSON is the loosely-typed blob stored on the ControlPanel row.
// Only known fields are read; everything else is ignored.
type panelConfigJSON struct {
	OrgID          string `json:"orgId"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
}

// ResolveConfig builds the effective configuration for a panel, falling back
// to environment variables for secrets not stored on the row.
func ResolveConfig(panel *models.ControlPanel) (Config, error) {
	if panel == nil {
		return Config{}, &ConfigError{Reason: "control panel not configured"}
	}
	if !panel.IsActive {
		return Config{}, &ConfigError{Reason: "control panel is disabled"}
	}

	var blob panelConfigJSON
	if raw := strings.TrimSpace(panel.ConfigJSON); raw != "" {
		// A broken blob is a configuration error, not something to guess over.
		if err := json.Unmarshal([]byte(raw), &blob); err != nil {
			return Config{}, &ConfigError{Reason: "invalid config_json: " + err.Error()}
		}
	}

	cfg := Config{
		PanelID: panel.ID,
		Type:    panel.Type,
		BaseURL: strings.TrimRight(strings.TrimSpace(panel.BaseURL), "/"),
		APIKey:  strings.TrimSpace(panel.APIKey),
		OrgID:   strings.TrimSpace(panel.OrgID),
		Timeout: defaultRequestTimeout,
	}
	if cfg.BaseURL == "" {
		return Config{}, &ConfigError{Reason: "base URL is missing"}
	}
	if cfg.APIKey == "" {
		cfg.APIKey = strings.TrimSpace(env.GetEnv("CONTROL_PANEL_API_KEY", ""))
	}
	if cfg.APIKey == "" {
		return Config{}, &ConfigError{Reason: "API key is missing (set it on the panel or via CONTROL_PANEL_API_KEY)"}
	}
	if cfg.OrgID == "" {
		cfg.OrgID = strings.TrimSpace(blob.OrgID)
	}
	if cfg.OrgID == "" {
		cfg.OrgID = strings.TrimSpace(env.GetEnv("CONTROL_PANEL_ORG_ID", ""))
	}
	if cfg.OrgID == "" {
		return Config{}, &ConfigError{Reason: "org id is missing (set it on the panel or via CONTROL_PANEL_ORG_ID)"}
	}
	if blob.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(blob.TimeoutSeconds) * time.Second
	}

	return cfg, nil
}
