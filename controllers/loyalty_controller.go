package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/pkg/resp"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/services"
)

type LoyaltyController struct{ Svc *services.LoyaltyService }

func NewLoyaltyController(s *services.LoyaltyService) *LoyaltyController {
	return &LoyaltyController{Svc: s}
}

// GET /loyalty/config — also read by the storefront cart.
func (h *LoyaltyController) Config(c *gin.Context) {
	cfg, err := h.Svc.Config()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cfg)
}

// PUT /admin/loyalty/config
func (h *LoyaltyController) SaveConfig(c *gin.Context) {
	var req entity.LoyaltyConfig
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SaveConfig(&req); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, req)
}

// GET /admin/loyalty/users
func (h *LoyaltyController) Users(c *gin.Context) {
	users, err := h.Svc.Users()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, users)
}
