package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/repository"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/slots"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/utils"
)

type CheckoutService struct {
	DB       *gorm.DB
	Repo     *repository.TableRepository
	Catalog  *repository.CatalogRepository
	Settings *repository.SettingsRepository
	Discount *DiscountService
	Pub      EventPublisher
}

func NewCheckoutService(db *gorm.DB, repo *repository.TableRepository, catalog *repository.CatalogRepository, settings *repository.SettingsRepository, discount *DiscountService, pub EventPublisher) *CheckoutService {
	return &CheckoutService{DB: db, Repo: repo, Catalog: catalog, Settings: settings, Discount: discount, Pub: pub}
}

type CheckoutItemIn struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
	Note      string `json:"note"`
}

type CheckoutIn struct {
	CustomerName  string           `json:"customerName"`
	CustomerPhone string           `json:"customerPhone"`
	OrderType     string           `json:"orderType"`
	TableNumber   int              `json:"tableNumber"`
	Address       string           `json:"address"`
	PaymentMethod string           `json:"paymentMethod"`
	CouponCode    string           `json:"couponCode"`
	Observation   string           `json:"observation"`
	Items         []CheckoutItemIn `json:"items"`
}

// Checkout validates the request, resolves a slot and persists the occupied
// table row. All validation happens before anything is written; a failure
// leaves no partial state.
//
// Slot selection is read-then-write with no reservation: two checkouts
// racing for the last free slot can pick the same id and the last persisted
// write wins. The realtime stream delivers the authoritative row shortly
// after.
func (s *CheckoutService) Checkout(in *CheckoutIn) (*entity.Order, error) {
	typ, err := normalizeOrderType(in.OrderType)
	if err != nil {
		return nil, err
	}

	cfg, err := s.Settings.StoreConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Closed() {
		return nil, ErrStoreClosed
	}
	if err := channelEnabled(*cfg, typ); err != nil {
		return nil, err
	}

	if in.CustomerName == "" {
		return nil, errors.New("customer name is required")
	}
	if len(in.Items) == 0 {
		return nil, errors.New("order has no items")
	}
	if typ == entity.OrderTable && (in.TableNumber < 1 || in.TableNumber > slots.DineInCount) {
		return nil, errors.New("table number is required")
	}
	if typ == entity.OrderDelivery && in.Address == "" {
		return nil, errors.New("delivery address is required")
	}

	items, err := s.resolveItems(in.Items)
	if err != nil {
		return nil, err
	}

	subtotal := Subtotal(items)
	discount := decimal.Zero
	couponCode := ""
	if in.CouponCode != "" {
		coupon, err := s.Discount.ValidateCoupon(in.CouponCode)
		if err != nil {
			return nil, err
		}
		discount = ComputeDiscount(items, []entity.Coupon{*coupon})
		couponCode = coupon.Code
	}
	finalTotal := subtotal.Sub(discount)

	rows, err := s.Repo.All()
	if err != nil {
		return nil, err
	}
	set := slots.Merge(rows)
	slotID, err := slots.Allocate(set, typ, in.TableNumber)
	if err != nil {
		return nil, err
	}

	payment := in.PaymentMethod
	if payment == "" {
		payment = "Pix"
	}

	order := entity.Order{
		ID:            utils.NewOrderCode(),
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		Items:         items,
		Total:         subtotal,
		Discount:      discount,
		FinalTotal:    finalTotal,
		PaymentMethod: payment,
		Timestamp:     time.Now(),
		TableID:       slotID,
		Status:        entity.StatusPending,
		OrderType:     typ,
		CouponCode:    couponCode,
		Observation:   in.Observation,
	}
	if typ == entity.OrderDelivery {
		order.Address = in.Address
	}

	prior, err := s.Repo.Get(slotID)
	if err != nil {
		return nil, err
	}

	row := entity.OccupiedSlot(slotID, order)
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Discount.Accrue(tx, in.CustomerPhone, in.CustomerName, items, subtotal, finalTotal); err != nil {
			return err
		}
		return s.Repo.Upsert(tx, &row)
	})
	if err != nil {
		return nil, err
	}

	evtType := slots.EventUpdate
	if prior == nil {
		evtType = slots.EventInsert
	}
	s.Pub.Publish(slots.Event{Type: evtType, New: &row, Old: prior})

	return row.CurrentOrder, nil
}

func (s *CheckoutService) resolveItems(in []CheckoutItemIn) ([]entity.CartItem, error) {
	ids := make([]string, 0, len(in))
	for _, it := range in {
		ids = append(ids, it.ProductID)
	}
	products, err := s.Catalog.ProductsByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var items []entity.CartItem
	for _, it := range in {
		p, ok := byID[it.ProductID]
		if !ok {
			return nil, ErrProductNotFound
		}
		if !p.IsAvailable {
			return nil, ErrProductUnavailable
		}
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}

		merged := false
		for i := range items {
			if items[i].ID == p.ID && items[i].Note == it.Note {
				items[i].Quantity += qty
				merged = true
				break
			}
		}
		if !merged {
			items = append(items, entity.CartItem{
				ID:       p.ID,
				Name:     p.Name,
				Price:    p.Price,
				Category: p.Category,
				Image:    p.Image,
				Quantity: qty,
				Note:     it.Note,
			})
		}
	}
	return items, nil
}

// "takeaway" is the storefront's label for the counter channel.
func normalizeOrderType(raw string) (entity.OrderType, error) {
	switch raw {
	case "table":
		return entity.OrderTable, nil
	case "delivery":
		return entity.OrderDelivery, nil
	case "counter", "takeaway":
		return entity.OrderCounter, nil
	default:
		return "", errors.New("unknown order type")
	}
}

func channelEnabled(cfg entity.StoreConfig, typ entity.OrderType) error {
	switch typ {
	case entity.OrderTable:
		if !cfg.TablesEnabled {
			return ErrChannelDisabled
		}
	case entity.OrderDelivery:
		if !cfg.DeliveryEnabled {
			return ErrChannelDisabled
		}
	case entity.OrderCounter:
		if !cfg.CounterEnabled {
			return ErrChannelDisabled
		}
	}
	return nil
}
