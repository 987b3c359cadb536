package services

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/repository"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/slots"
)

type recordingPublisher struct{ events []slots.Event }

func (p *recordingPublisher) Publish(evt slots.Event) { p.events = append(p.events, evt) }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// A plain file::memory: DSN gives every pooled connection its own empty
	// database; a named shared-cache DB keeps the schema visible across
	// connections while staying isolated per test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", url.QueryEscape(t.Name()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Category{}, &entity.Product{},
		&entity.Coupon{},
		&entity.LoyaltyConfig{}, &entity.LoyaltyUser{},
		&entity.StoreConfig{},
		&entity.TableSlot{},
	))
	require.NoError(t, db.Create(&entity.StoreConfig{
		ID: 1, TablesEnabled: true, DeliveryEnabled: true, CounterEnabled: true,
		WaiterCanFinalize: true, WaiterCanCancelItems: true,
	}).Error)
	require.NoError(t, db.Create(&entity.LoyaltyConfig{ID: 1, ScopeType: "all"}).Error)
	return db
}

func newCheckout(t *testing.T, db *gorm.DB, pub EventPublisher) *CheckoutService {
	t.Helper()
	tableRepo := repository.NewTableRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	loyaltyRepo := repository.NewLoyaltyRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	discount := NewDiscountService(couponRepo, loyaltyRepo)
	return NewCheckoutService(db, tableRepo, catalogRepo, settingsRepo, discount, pub)
}

func seedCoffee(t *testing.T, db *gorm.DB) entity.Product {
	t.Helper()
	p := entity.Product{
		ID: "c1", Name: "Café Expresso", Category: "Cafeteria",
		Price: decimal.RequireFromString("5.50"), IsAvailable: true,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func TestCheckoutDineIn(t *testing.T) {
	db := newTestDB(t)
	seedCoffee(t, db)
	pub := &recordingPublisher{}
	svc := newCheckout(t, db, pub)

	order, err := svc.Checkout(&CheckoutIn{
		CustomerName: "Joana",
		OrderType:    "table",
		TableNumber:  4,
		Items:        []CheckoutItemIn{{ProductID: "c1", Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, order.TableID)
	assert.Equal(t, entity.OrderTable, order.OrderType)
	assert.Equal(t, entity.StatusPending, order.Status)
	// the entered name is used verbatim, not a "Mesa 4" default
	assert.Equal(t, "Joana", order.CustomerName)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("11.00")))
	assert.True(t, order.FinalTotal.Equal(order.Total.Sub(order.Discount)))

	// the occupied row was persisted and announced
	row := repositorySlot(t, db, 4)
	require.NotNil(t, row.CurrentOrder)
	assert.Equal(t, entity.TableOccupied, row.Status)
	require.Len(t, pub.events, 1)
	assert.Equal(t, slots.EventInsert, pub.events[0].Type)
}

func TestCheckoutCouponCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	seedCoffee(t, db)
	require.NoError(t, db.Create(&entity.Coupon{
		ID: "cp1", Code: "TEST50", Percentage: 50, IsActive: true, ScopeType: "all",
	}).Error)
	svc := newCheckout(t, db, &recordingPublisher{})

	order, err := svc.Checkout(&CheckoutIn{
		CustomerName: "Joana",
		OrderType:    "takeaway",
		CouponCode:   "test50",
		Items:        []CheckoutItemIn{{ProductID: "c1", Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderCounter, order.OrderType)
	assert.Equal(t, 950, order.TableID)
	assert.Equal(t, "TEST50", order.CouponCode)
	assert.True(t, order.Discount.Equal(decimal.RequireFromString("5.50")))
	assert.True(t, order.FinalTotal.Equal(decimal.RequireFromString("5.50")))
}

func TestCheckoutUnknownCoupon(t *testing.T) {
	db := newTestDB(t)
	seedCoffee(t, db)
	svc := newCheckout(t, db, &recordingPublisher{})

	_, err := svc.Checkout(&CheckoutIn{
		CustomerName: "Joana",
		OrderType:    "counter",
		CouponCode:   "NOPE",
		Items:        []CheckoutItemIn{{ProductID: "c1"}},
	})
	assert.ErrorIs(t, err, ErrCouponNotFound)

	// nothing was written
	var count int64
	require.NoError(t, db.Model(&entity.TableSlot{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCheckoutValidation(t *testing.T) {
	db := newTestDB(t)
	seedCoffee(t, db)
	svc := newCheckout(t, db, &recordingPublisher{})

	_, err := svc.Checkout(&CheckoutIn{
		OrderType: "counter",
		Items:     []CheckoutItemIn{{ProductID: "c1"}},
	})
	assert.EqualError(t, err, "customer name is required")

	_, err = svc.Checkout(&CheckoutIn{
		CustomerName: "Joana", OrderType: "table",
		Items: []CheckoutItemIn{{ProductID: "c1"}},
	})
	assert.EqualError(t, err, "table number is required")

	_, err = svc.Checkout(&CheckoutIn{
		CustomerName: "Joana", OrderType: "delivery",
		Items: []CheckoutItemIn{{ProductID: "c1"}},
	})
	assert.EqualError(t, err, "delivery address is required")

	_, err = svc.Checkout(&CheckoutIn{
		CustomerName: "Joana", OrderType: "counter",
	})
	assert.EqualError(t, err, "order has no items")
}

func TestCheckoutStoreClosed(t *testing.T) {
	db := newTestDB(t)
	seedCoffee(t, db)
	require.NoError(t, db.Model(&entity.StoreConfig{}).Where("id = ?", 1).Updates(map[string]any{
		"tables_enabled": false, "delivery_enabled": false, "counter_enabled": false,
	}).Error)
	svc := newCheckout(t, db, &recordingPublisher{})

	_, err := svc.Checkout(&CheckoutIn{
		CustomerName: "Joana",
		OrderType:    "counter",
		Items:        []CheckoutItemIn{{ProductID: "c1"}},
	})
	assert.ErrorIs(t, err, ErrStoreClosed)
}

func TestCheckoutAccruesLoyalty(t *testing.T) {
	db := newTestDB(t)
	seedCoffee(t, db)
	require.NoError(t, db.Model(&entity.LoyaltyConfig{}).Where("id = ?", 1).
		Update("is_active", true).Error)
	svc := newCheckout(t, db, &recordingPublisher{})

	_, err := svc.Checkout(&CheckoutIn{
		CustomerName:  "Joana",
		CustomerPhone: "558591076984",
		OrderType:     "counter",
		Items:         []CheckoutItemIn{{ProductID: "c1", Quantity: 2}},
	})
	require.NoError(t, err)

	var user entity.LoyaltyUser
	require.NoError(t, db.First(&user, "phone = ?", "558591076984").Error)
	assert.Equal(t, "Joana", user.Name)
	assert.True(t, user.Accumulated.Equal(decimal.RequireFromString("11.00")), "accumulated = %s", user.Accumulated)
}

func repositorySlot(t *testing.T, db *gorm.DB, id int) *entity.TableSlot {
	t.Helper()
	row, err := repository.NewTableRepository(db).Get(id)
	require.NoError(t, err)
	require.NotNil(t, row)
	return row
}
