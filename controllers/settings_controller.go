package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/pkg/resp"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/services"
)

type SettingsController struct{ Svc *services.SettingsService }

func NewSettingsController(s *services.SettingsService) *SettingsController {
	return &SettingsController{Svc: s}
}

// GET /store-config
func (h *SettingsController) Get(c *gin.Context) {
	cfg, err := h.Svc.StoreConfig()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cfg)
}

// PUT /admin/store-config
func (h *SettingsController) Save(c *gin.Context) {
	var req entity.StoreConfig
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SaveStoreConfig(&req); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, req)
}
