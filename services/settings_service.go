package services

import (
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/repository"
)

type SettingsService struct {
	Repo *repository.SettingsRepository
}

func NewSettingsService(repo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{Repo: repo}
}

func (s *SettingsService) StoreConfig() (*entity.StoreConfig, error) {
	return s.Repo.StoreConfig()
}

func (s *SettingsService) SaveStoreConfig(cfg *entity.StoreConfig) error {
	return s.Repo.SaveStoreConfig(cfg)
}
