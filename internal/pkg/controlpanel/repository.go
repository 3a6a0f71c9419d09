package controlpanel

import (
	"time"

	"github.com/DennisWallner/HostDesk/app/models"
	"gorm.io/gorm"
)

// Repository provides the DB operations used by the sync service.
type Repository interface {
	GetControlPanel(id uint) (*models.ControlPanel, error)
	FindActivePlanMapping(panelID uint, planType string, localPlanID uint) (*models.ControlPanelPlanMapping, error)
	FindPlanMappingByExternalID(panelID uint, planType, externalPlanID string) (*models.ControlPanelPlanMapping, error)

	GetCustomer(id uint) (*models.Customer, error)
	GetHosting(id uint) (*models.Hosting, error)
	GetVPS(id uint) (*models.VPS, error)
	GetWebsite(id uint) (*models.Website, error)

	SaveHostingSyncState(h *models.Hosting) error
	SaveVPSSyncState(v *models.VPS) error
	SaveWebsiteSyncState(w *models.Website) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a sync repository backed by GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) GetControlPanel(id uint) (*models.ControlPanel, error) {
	var panel models.ControlPanel
	if err := r.db.First(&panel, id).Error; err != nil {
		return nil, err
	}
	return &panel, nil
}

func (r *gormRepository) FindActivePlanMapping(panelID uint, planType string, localPlanID uint) (*models.ControlPanelPlanMapping, error) {
	var m models.ControlPanelPlanMapping
	err := r.db.
		Where("control_panel_id = ? AND local_plan_type = ? AND local_plan_id = ? AND is_active = ?",
			panelID, planType, localPlanID, true).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *gormRepository) FindPlanMappingByExternalID(panelID uint, planType, externalPlanID string) (*models.ControlPanelPlanMapping, error) {
	var m models.ControlPanelPlanMapping
	err := r.db.
		Where("control_panel_id = ? AND local_plan_type = ? AND external_plan_id = ? AND is_active = ?",
			panelID, planType, externalPlanID, true).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *gormRepository) GetCustomer(id uint) (*models.Customer, error) {
	var c models.Customer
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *gormRepository) GetHosting(id uint) (*models.Hosting, error) {
	var h models.Hosting
	if err := r.db.Preload("Customer").Preload("HostingPackage").First(&h, id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *gormRepository) GetVPS(id uint) (*models.VPS, error) {
	var v models.VPS
	if err := r.db.Preload("Customer").Preload("VPSPackage").First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *gormRepository) GetWebsite(id uint) (*models.Website, error) {
	var w models.Website
	if err := r.db.Preload("Customer").Preload("Hosting").First(&w, id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

// SaveHostingSyncState persists only the sync-owned columns so concurrent
// edits of unrelated fields are not clobbered.
func (r *gormRepository) SaveHostingSyncState(h *models.Hosting) error {
	return r.db.Model(&models.Hosting{}).Where("id = ?", h.ID).
		Updates(syncColumns(h.ExternalAccountID, h.SyncStatus, h.SyncMetadata, h.LastSyncedAt)).Error
}

func (r *gormRepository) SaveVPSSyncState(v *models.VPS) error {
	return r.db.Model(&models.VPS{}).Where("id = ?", v.ID).
		Updates(syncColumns(v.ExternalAccountID, v.SyncStatus, v.SyncMetadata, v.LastSyncedAt)).Error
}

func (r *gormRepository) SaveWebsiteSyncState(w *models.Website) error {
	updates := map[string]interface{}{
		"external_account_id": w.ExternalAccountID,
		"external_website_id": w.ExternalWebsiteID,
		"sync_status":         w.SyncStatus,
		"notes":               w.Notes,
		"last_synced_at":      w.LastSyncedAt,
	}
	return r.db.Model(&models.Website{}).Where("id = ?", w.ID).Updates(updates).Error
}

func syncColumns(accountID, status, metadata string, syncedAt *time.Time) map[string]interface{} {
	return map[string]interface{}{
		"external_account_id": accountID,
		"sync_status":         status,
		"sync_metadata":       metadata,
		"last_synced_at":      syncedAt,
	}
}
