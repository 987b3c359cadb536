package repository

import (
	"gorm.io/gorm"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
)

type SettingsRepository struct{ DB *gorm.DB }

func NewSettingsRepository(db *gorm.DB) *SettingsRepository { return &SettingsRepository{DB: db} }

func (r *SettingsRepository) StoreConfig() (*entity.StoreConfig, error) {
	var cfg entity.StoreConfig
	if err := r.DB.First(&cfg, "id = ?", 1).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *SettingsRepository) SaveStoreConfig(cfg *entity.StoreConfig) error {
	cfg.ID = 1
	return r.DB.Save(cfg).Error
}
