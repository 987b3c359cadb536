package services

import (
	"time"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/repository"
)

// BackupFile is the on-demand JSON snapshot the admin can download.
// Table slots are excluded on purpose: open orders are live state, not
// configuration.
type BackupFile struct {
	ExportedAt    time.Time              `json:"exportedAt"`
	Products      []entity.Product       `json:"products"`
	Categories    []entity.Category      `json:"categories"`
	Coupons       []entity.Coupon        `json:"coupons"`
	DailySpecials []entity.DailySpecial  `json:"dailySpecials"`
	LoyaltyConfig *entity.LoyaltyConfig  `json:"loyaltyConfig"`
	LoyaltyUsers  []entity.LoyaltyUser   `json:"loyaltyUsers"`
	StoreConfig   *entity.StoreConfig    `json:"storeConfig"`
}

type BackupService struct {
	Catalog  *repository.CatalogRepository
	Coupons  *repository.CouponRepository
	Loyalty  *repository.LoyaltyRepository
	Settings *repository.SettingsRepository
}

func NewBackupService(catalog *repository.CatalogRepository, coupons *repository.CouponRepository, loyalty *repository.LoyaltyRepository, settings *repository.SettingsRepository) *BackupService {
	return &BackupService{Catalog: catalog, Coupons: coupons, Loyalty: loyalty, Settings: settings}
}

func (s *BackupService) Export() (*BackupFile, error) {
	products, err := s.Catalog.Products()
	if err != nil {
		return nil, err
	}
	categories, err := s.Catalog.Categories()
	if err != nil {
		return nil, err
	}
	coupons, err := s.Coupons.All()
	if err != nil {
		return nil, err
	}
	specials, err := s.Catalog.DailySpecials()
	if err != nil {
		return nil, err
	}
	loyaltyCfg, err := s.Loyalty.Config()
	if err != nil {
		return nil, err
	}
	loyaltyUsers, err := s.Loyalty.Users()
	if err != nil {
		return nil, err
	}
	storeCfg, err := s.Settings.StoreConfig()
	if err != nil {
		return nil, err
	}

	return &BackupFile{
		ExportedAt:    time.Now(),
		Products:      products,
		Categories:    categories,
		Coupons:       coupons,
		DailySpecials: specials,
		LoyaltyConfig: loyaltyCfg,
		LoyaltyUsers:  loyaltyUsers,
		StoreConfig:   storeCfg,
	}, nil
}
