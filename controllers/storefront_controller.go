package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/pkg/resp"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/services"
)

// StorefrontController serves the public ordering surface: menu, coupon
// validation, checkout and the customer status panel.
type StorefrontController struct {
	Catalog  *services.CatalogService
	Discount *services.DiscountService
	Checkout *services.CheckoutService
	Settings *services.SettingsService
	Tables   *services.TableService
}

func NewStorefrontController(catalog *services.CatalogService, discount *services.DiscountService, checkout *services.CheckoutService, settings *services.SettingsService, tables *services.TableService) *StorefrontController {
	return &StorefrontController{Catalog: catalog, Discount: discount, Checkout: checkout, Settings: settings, Tables: tables}
}

// GET /menu
func (h *StorefrontController) Menu(c *gin.Context) {
	cfg, err := h.Settings.StoreConfig()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	products, err := h.Catalog.Menu()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	categories, err := h.Catalog.Categories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	specials, err := h.Catalog.DailySpecials()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"products":      products,
		"categories":    categories,
		"dailySpecials": specials,
		"storeConfig":   cfg,
		"closed":        cfg.Closed(),
	})
}

// POST /coupons/validate
func (h *StorefrontController) ValidateCoupon(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	coupon, err := h.Discount.ValidateCoupon(req.Code)
	if err != nil {
		if errors.Is(err, services.ErrCouponNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, coupon)
}

// POST /checkout
func (h *StorefrontController) PlaceOrder(c *gin.Context) {
	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Checkout.Checkout(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrStoreClosed), errors.Is(err, services.ErrChannelDisabled):
			resp.Forbidden(c, err.Error())
		case errors.Is(err, services.ErrCouponNotFound), errors.Is(err, services.ErrProductNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrProductUnavailable):
			resp.Conflict(c, err.Error())
		default:
			resp.BadRequest(c, err.Error())
		}
		return
	}
	resp.Created(c, order)
}

// GET /status-panel — the public TV/customer board, only when enabled.
func (h *StorefrontController) StatusPanel(c *gin.Context) {
	cfg, err := h.Settings.StoreConfig()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !cfg.StatusPanelEnabled {
		resp.Forbidden(c, "status panel is disabled")
		return
	}
	tables, err := h.Tables.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, tables)
}
