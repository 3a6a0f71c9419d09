package models

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Setting represents a system setting
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"column:setting_key;size:255;not null;uniqueIndex" json:"key" validate:"required,min=1,max=255"`
	Value     string    `gorm:"type:text" json:"value"`
	Type      string    `gorm:"size:50;not null" json:"type" validate:"required"` // string, boolean, integer
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppSettings represents the application settings structure
type AppSettings struct {
	SiteTitle             string `json:"site_title" validate:"required,min=1,max=255"`
	DefaultControlPanelID uint   `json:"default_control_panel_id"`
	SyncEnabled           bool   `json:"sync_enabled"`
	ReminderEnabled       bool   `json:"reminder_enabled"`
	ReminderIntervalHours int    `json:"reminder_interval_hours" validate:"min=1,max=168"`
	mu                    sync.RWMutex
}

// Global settings instance
var (
	appSettings *AppSettings
	settingsMu  sync.RWMutex
)

// GetAppSettings returns the current application settings
func GetAppSettings() *AppSettings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return appSettings
}

// LoadSettings loads settings from database into memory
func LoadSettings(db *gorm.DB) error {
	settingsMu.Lock()
	defer settingsMu.Unlock()

	// Initialize with defaults
	appSettings = &AppSettings{
		SiteTitle:             "HostDesk",
		DefaultControlPanelID: 0,
		SyncEnabled:           true,
		ReminderEnabled:       true,
		ReminderIntervalHours: 24,
	}

	// Load settings from database
	var settings []Setting
	if err := db.Find(&settings).Error; err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// Apply loaded settings
	for _, setting := range settings {
		switch setting.Key {
		case "site_title":
			appSettings.SiteTitle = setting.Value
		case "default_control_panel_id":
			if id, err := strconv.ParseUint(setting.Value, 10, 32); err == nil {
				appSettings.DefaultControlPanelID = uint(id)
			}
		case "sync_enabled":
			appSettings.SyncEnabled = setting.Value == "true"
		case "reminder_enabled":
			appSettings.ReminderEnabled = setting.Value == "true"
		case "reminder_interval_hours":
			if n, err := strconv.Atoi(setting.Value); err == nil && n > 0 {
				appSettings.ReminderIntervalHours = n
			}
		}
	}

	return nil
}

// SaveSettings saves current settings to database
func SaveSettings(db *gorm.DB, settings *AppSettings) error {
	settingsMu.Lock()
	defer settingsMu.Unlock()

	// Validate settings
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// Convert settings to database format
	settingsMap := map[string]interface{}{
		"site_title":               settings.SiteTitle,
		"default_control_panel_id": fmt.Sprintf("%d", settings.DefaultControlPanelID),
		"sync_enabled":             fmt.Sprintf("%t", settings.SyncEnabled),
		"reminder_enabled":         fmt.Sprintf("%t", settings.ReminderEnabled),
		"reminder_interval_hours":  fmt.Sprintf("%d", settings.ReminderIntervalHours),
	}

	// Save each setting
	for key, value := range settingsMap {
		var setting Setting
		result := db.Where("setting_key = ?", key).First(&setting)

		if result.Error != nil {
			if result.Error == gorm.ErrRecordNotFound {
				// Create new setting
				setting = Setting{
					Key:   key,
					Value: fmt.Sprintf("%v", value),
					Type:  getSettingType(key),
				}
				if err := db.Create(&setting).Error; err != nil {
					return fmt.Errorf("failed to create setting %s: %w", key, err)
				}
			} else {
				return fmt.Errorf("failed to query setting %s: %w", key, result.Error)
			}
		} else {
			// Update existing setting
			setting.Value = fmt.Sprintf("%v", value)
			if err := db.Save(&setting).Error; err != nil {
				return fmt.Errorf("failed to update setting %s: %w", key, err)
			}
		}
	}

	// Update global settings
	appSettings = settings
	return nil
}

// getSettingType returns the type of a setting based on its key
func getSettingType(key string) string {
	switch key {
	case "site_title":
		return "string"
	case "sync_enabled", "reminder_enabled":
		return "boolean"
	case "default_control_panel_id", "reminder_interval_hours":
		return "integer"
	default:
		return "string"
	}
}

// Validate validates the settings
func (s *AppSettings) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// IsSyncEnabled returns whether control panel sync is enabled
func (s *AppSettings) IsSyncEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.SyncEnabled
}

// IsReminderEnabled returns whether invoice reminders are enabled
func (s *AppSettings) IsReminderEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ReminderEnabled
}

// GetReminderInterval returns the reminder scheduler interval
func (s *AppSettings) GetReminderInterval() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Duration(s.ReminderIntervalHours) * time.Hour
}
