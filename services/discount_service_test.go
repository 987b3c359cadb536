package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
)

func line(id, category, price string, qty int) entity.CartItem {
	return entity.CartItem{
		ID:       id,
		Category: category,
		Price:    decimal.RequireFromString(price),
		Quantity: qty,
	}
}

func TestComputeDiscountPicksHighestPercentage(t *testing.T) {
	items := []entity.CartItem{line("c1", "Cafeteria", "10.00", 1)}
	coupons := []entity.Coupon{
		{Code: "CAT10", Percentage: 10, IsActive: true, ScopeType: "category", ScopeValue: "Cafeteria"},
		{Code: "CAT20", Percentage: 20, IsActive: true, ScopeType: "category", ScopeValue: "Cafeteria"},
	}

	d := ComputeDiscount(items, coupons)
	assert.True(t, d.Equal(decimal.RequireFromString("2.00")), "discount = %s", d)
}

func TestComputeDiscountScopes(t *testing.T) {
	items := []entity.CartItem{
		line("c1", "Cafeteria", "10.00", 1),
		line("s1", "Snacks", "4.00", 2),
	}

	// category-scoped coupon only touches the matching line
	d := ComputeDiscount(items, []entity.Coupon{
		{Code: "CAFE50", Percentage: 50, IsActive: true, ScopeType: "category", ScopeValue: "Cafeteria"},
	})
	assert.True(t, d.Equal(decimal.RequireFromString("5.00")))

	// product scope matches by id inside the comma-joined set
	d = ComputeDiscount(items, []entity.Coupon{
		{Code: "PROD25", Percentage: 25, IsActive: true, ScopeType: "product", ScopeValue: "x9,s1"},
	})
	assert.True(t, d.Equal(decimal.RequireFromString("2.00")))

	// inactive coupons never apply
	d = ComputeDiscount(items, []entity.Coupon{
		{Code: "OFF", Percentage: 90, IsActive: false, ScopeType: "all"},
	})
	assert.True(t, d.IsZero())
}

func TestCheckoutScenarioFiftyPercent(t *testing.T) {
	// cart = 2x 5.50, coupon TEST50 (50%, scope all, active)
	items := []entity.CartItem{line("c1", "Cafeteria", "5.50", 2)}
	coupon := entity.Coupon{Code: "TEST50", Percentage: 50, IsActive: true, ScopeType: "all"}

	subtotal := Subtotal(items)
	discount := ComputeDiscount(items, []entity.Coupon{coupon})
	finalTotal := subtotal.Sub(discount)

	assert.True(t, subtotal.Equal(decimal.RequireFromString("11.00")))
	assert.True(t, discount.Equal(decimal.RequireFromString("5.50")))
	assert.True(t, finalTotal.Equal(decimal.RequireFromString("5.50")))
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "JG10", NormalizeCode("jg10"))
	assert.Equal(t, "JG10", NormalizeCode("  JG10  "))
	assert.Equal(t, NormalizeCode("jg10"), NormalizeCode("JG10"))
}

func TestLoyaltyEligibleScope(t *testing.T) {
	items := []entity.CartItem{
		line("c1", "Cafeteria", "10.00", 1),
		line("s1", "Snacks", "4.00", 2),
	}

	all := entity.LoyaltyConfig{ScopeType: "all"}
	assert.True(t, LoyaltyEligible(items, all).Equal(decimal.RequireFromString("18.00")))

	cat := entity.LoyaltyConfig{ScopeType: "category", ScopeValue: "Snacks"}
	assert.True(t, LoyaltyEligible(items, cat).Equal(decimal.RequireFromString("8.00")))
}

func TestPointRatio(t *testing.T) {
	ratio := PointRatio(decimal.RequireFromString("11.00"), decimal.RequireFromString("5.50"))
	assert.True(t, ratio.Equal(decimal.RequireFromString("0.5")))

	// no division by zero on an empty subtotal
	assert.True(t, PointRatio(decimal.Zero, decimal.Zero).IsZero())
}

func TestLoyaltyAccrualScaledByDiscount(t *testing.T) {
	// eligible 11.00 gross, 50% coupon applied overall → accrue 5.50
	items := []entity.CartItem{line("c1", "Cafeteria", "5.50", 2)}
	cfg := entity.LoyaltyConfig{IsActive: true, ScopeType: "all"}

	subtotal := Subtotal(items)
	finalTotal := subtotal.Sub(ComputeDiscount(items, []entity.Coupon{
		{Code: "TEST50", Percentage: 50, IsActive: true, ScopeType: "all"},
	}))

	accrued := LoyaltyEligible(items, cfg).Mul(PointRatio(subtotal, finalTotal))
	require.True(t, accrued.Equal(decimal.RequireFromString("5.50")), "accrued = %s", accrued)
}
