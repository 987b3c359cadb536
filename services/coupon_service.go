package services

import (
	"errors"

	"github.com/google/uuid"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/repository"
)

type CouponService struct {
	Repo *repository.CouponRepository
}

func NewCouponService(repo *repository.CouponRepository) *CouponService {
	return &CouponService{Repo: repo}
}

func (s *CouponService) List() ([]entity.Coupon, error) {
	return s.Repo.All()
}

func (s *CouponService) Create(code string, percentage int, scopeType, scopeValue string) (*entity.Coupon, error) {
	code = NormalizeCode(code)
	if code == "" {
		return nil, errors.New("coupon code is required")
	}
	if percentage < 0 || percentage > 100 {
		return nil, errors.New("percentage must be between 0 and 100")
	}
	switch scopeType {
	case "", "all":
		scopeType, scopeValue = "all", ""
	case "category", "product":
		if scopeValue == "" {
			return nil, errors.New("scope value is required for scoped coupons")
		}
	default:
		return nil, errors.New("unknown scope type")
	}

	c := &entity.Coupon{
		ID:         uuid.NewString(),
		Code:       code,
		Percentage: percentage,
		IsActive:   true,
		ScopeType:  scopeType,
		ScopeValue: scopeValue,
	}
	if err := s.Repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CouponService) SetActive(id string, active bool) error {
	return s.Repo.SetActive(id, active)
}

func (s *CouponService) Delete(id string) error {
	return s.Repo.Delete(id)
}
