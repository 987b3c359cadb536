package services

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/repository"
)

type DiscountService struct {
	CouponRepo  *repository.CouponRepository
	LoyaltyRepo *repository.LoyaltyRepository
}

func NewDiscountService(cr *repository.CouponRepository, lr *repository.LoyaltyRepository) *DiscountService {
	return &DiscountService{CouponRepo: cr, LoyaltyRepo: lr}
}

// NormalizeCode trims and uppercases a coupon code; "jg10" and "JG10" are
// the same coupon.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateCoupon resolves an active coupon by code. A miss is a business
// rejection (ErrCouponNotFound), not a storage failure.
func (s *DiscountService) ValidateCoupon(code string) (*entity.Coupon, error) {
	code = NormalizeCode(code)
	if code == "" {
		return nil, ErrCouponNotFound
	}
	c, err := s.CouponRepo.FindActiveByCode(code)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCouponNotFound
	}
	return c, nil
}

// scopeMatches implements the shared scope semantics of coupons and loyalty:
// "all", or membership of the item's category / product id in the
// comma-joined scope set.
func scopeMatches(scopeType, scopeValue string, item entity.CartItem) bool {
	switch scopeType {
	case "all":
		return true
	case "category":
		return inScopeSet(scopeValue, item.Category)
	case "product":
		return inScopeSet(scopeValue, item.ID)
	default:
		return false
	}
}

func inScopeSet(scopeValue, want string) bool {
	for _, v := range strings.Split(scopeValue, ",") {
		if v == want {
			return true
		}
	}
	return false
}

func couponApplies(c entity.Coupon, item entity.CartItem) bool {
	if !c.IsActive {
		return false
	}
	return scopeMatches(c.ScopeType, c.ScopeValue, item)
}

// ComputeDiscount picks, per line, the applicable coupon with the highest
// percentage (ties break arbitrarily) and sums price*qty*pct/100 over all
// lines. The checkout flow only ever passes one coupon, but the engine
// handles the general case.
func ComputeDiscount(items []entity.CartItem, coupons []entity.Coupon) decimal.Decimal {
	discount := decimal.Zero
	for _, item := range items {
		best := -1
		for i, c := range coupons {
			if !couponApplies(c, item) {
				continue
			}
			if best < 0 || c.Percentage > coupons[best].Percentage {
				best = i
			}
		}
		if best < 0 {
			continue
		}
		pct := decimal.NewFromInt(int64(coupons[best].Percentage)).Div(decimal.NewFromInt(100))
		discount = discount.Add(item.LineTotal().Mul(pct))
	}
	return discount
}

// LoyaltyEligible sums price*qty over lines matching the loyalty scope.
func LoyaltyEligible(items []entity.CartItem, cfg entity.LoyaltyConfig) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		if scopeMatches(cfg.ScopeType, cfg.ScopeValue, item) {
			sum = sum.Add(item.LineTotal())
		}
	}
	return sum
}

// PointRatio scales loyalty accrual in proportion to the discount given:
// finalTotal/subtotal, 0 when the subtotal is 0.
func PointRatio(subtotal, finalTotal decimal.Decimal) decimal.Decimal {
	if subtotal.IsZero() {
		return decimal.Zero
	}
	return finalTotal.Div(subtotal)
}

// Accrue adds the scaled eligible amount to the customer's loyalty record,
// creating it on first purchase. Runs inside the checkout transaction.
func (s *DiscountService) Accrue(tx *gorm.DB, phone, name string, items []entity.CartItem, subtotal, finalTotal decimal.Decimal) error {
	cfg, err := s.LoyaltyRepo.Config()
	if err != nil {
		return err
	}
	if !cfg.IsActive || phone == "" {
		return nil
	}

	amount := LoyaltyEligible(items, *cfg).Mul(PointRatio(subtotal, finalTotal))

	user, err := s.LoyaltyRepo.FindUser(tx, phone)
	if err != nil {
		return err
	}
	if user == nil {
		user = &entity.LoyaltyUser{Phone: phone, Name: name, Accumulated: amount}
	} else {
		user.Accumulated = user.Accumulated.Add(amount)
	}
	return s.LoyaltyRepo.SaveUser(tx, user)
}
