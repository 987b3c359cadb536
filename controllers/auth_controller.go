package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/pkg/resp"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/services"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/utils"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, admin, err := h.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"token": token, "admin": admin})
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	admin, err := h.Svc.GetProfile(utils.CurrentAdminID(c))
	if err != nil {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	resp.OK(c, admin)
}
