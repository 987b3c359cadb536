package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
)

type CouponRepository struct{ DB *gorm.DB }

func NewCouponRepository(db *gorm.DB) *CouponRepository { return &CouponRepository{DB: db} }

func (r *CouponRepository) All() ([]entity.Coupon, error) {
	var rows []entity.Coupon
	err := r.DB.Order("code").Find(&rows).Error
	return rows, err
}

func (r *CouponRepository) Active() ([]entity.Coupon, error) {
	var rows []entity.Coupon
	err := r.DB.Where("is_active = ?", true).Find(&rows).Error
	return rows, err
}

// FindActiveByCode matches case-insensitively; callers normalize the code
// first but UPPER() guards against legacy rows stored mixed-case.
func (r *CouponRepository) FindActiveByCode(code string) (*entity.Coupon, error) {
	var c entity.Coupon
	err := r.DB.Where("UPPER(code) = ? AND is_active = ?", code, true).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CouponRepository) Create(c *entity.Coupon) error {
	return r.DB.Create(c).Error
}

func (r *CouponRepository) SetActive(id string, active bool) error {
	return r.DB.Model(&entity.Coupon{}).Where("id = ?", id).Update("is_active", active).Error
}

func (r *CouponRepository) Delete(id string) error {
	return r.DB.Delete(&entity.Coupon{}, "id = ?", id).Error
}
