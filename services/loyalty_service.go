package services

import (
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/repository"
)

type LoyaltyService struct {
	Repo *repository.LoyaltyRepository
}

func NewLoyaltyService(repo *repository.LoyaltyRepository) *LoyaltyService {
	return &LoyaltyService{Repo: repo}
}

func (s *LoyaltyService) Config() (*entity.LoyaltyConfig, error) {
	return s.Repo.Config()
}

func (s *LoyaltyService) SaveConfig(cfg *entity.LoyaltyConfig) error {
	return s.Repo.SaveConfig(cfg)
}

func (s *LoyaltyService) Users() ([]entity.LoyaltyUser, error) {
	return s.Repo.Users()
}
