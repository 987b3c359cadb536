package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/pkg/resp"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/services"
)

type CouponController struct{ Svc *services.CouponService }

func NewCouponController(s *services.CouponService) *CouponController {
	return &CouponController{Svc: s}
}

// GET /admin/coupons
func (h *CouponController) List(c *gin.Context) {
	coupons, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, coupons)
}

// POST /admin/coupons
func (h *CouponController) Create(c *gin.Context) {
	var req struct {
		Code       string `json:"code" binding:"required"`
		Percentage int    `json:"percentage" binding:"required"`
		ScopeType  string `json:"scopeType"`
		ScopeValue string `json:"scopeValue"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	coupon, err := h.Svc.Create(req.Code, req.Percentage, req.ScopeType, req.ScopeValue)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, coupon)
}

// PATCH /admin/coupons/:id/active
func (h *CouponController) SetActive(c *gin.Context) {
	var req struct {
		IsActive *bool `json:"isActive" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SetActive(c.Param("id"), *req.IsActive); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"isActive": *req.IsActive})
}

// DELETE /admin/coupons/:id
func (h *CouponController) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Param("id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
