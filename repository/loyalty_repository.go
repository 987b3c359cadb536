package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
)

type LoyaltyRepository struct{ DB *gorm.DB }

func NewLoyaltyRepository(db *gorm.DB) *LoyaltyRepository { return &LoyaltyRepository{DB: db} }

func (r *LoyaltyRepository) Config() (*entity.LoyaltyConfig, error) {
	var cfg entity.LoyaltyConfig
	if err := r.DB.First(&cfg, "id = ?", 1).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *LoyaltyRepository) SaveConfig(cfg *entity.LoyaltyConfig) error {
	cfg.ID = 1
	return r.DB.Save(cfg).Error
}

func (r *LoyaltyRepository) Users() ([]entity.LoyaltyUser, error) {
	var rows []entity.LoyaltyUser
	err := r.DB.Order("accumulated DESC").Find(&rows).Error
	return rows, err
}

func (r *LoyaltyRepository) FindUser(tx *gorm.DB, phone string) (*entity.LoyaltyUser, error) {
	var u entity.LoyaltyUser
	err := tx.First(&u, "phone = ?", phone).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *LoyaltyRepository) SaveUser(tx *gorm.DB, u *entity.LoyaltyUser) error {
	return tx.Save(u).Error
}
