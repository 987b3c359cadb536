package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/pkg/resp"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/services"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/utils"
)

type CatalogController struct{ Svc *services.CatalogService }

func NewCatalogController(s *services.CatalogService) *CatalogController {
	return &CatalogController{Svc: s}
}

type productIn struct {
	ID          string          `json:"id"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	ImageBase64 string          `json:"imageBase64"`
	Savings     string          `json:"savings"`
	IsAvailable bool            `json:"isAvailable"`
}

// GET /admin/products
func (h *CatalogController) Products(c *gin.Context) {
	products, err := h.Svc.Products()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, products)
}

// POST /admin/products — create or update.
func (h *CatalogController) SaveProduct(c *gin.Context) {
	var req productIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	image := req.Image
	if req.ImageBase64 != "" {
		path, err := utils.SaveBase64Image(req.ImageBase64, "./uploads/products")
		if err != nil {
			resp.BadRequest(c, "invalid image data")
			return
		}
		image = path
	}

	p := entity.Product{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       image,
		Savings:     req.Savings,
		IsAvailable: req.IsAvailable,
	}
	if err := h.Svc.SaveProduct(&p); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, p)
}

// DELETE /admin/products/:id
func (h *CatalogController) DeleteProduct(c *gin.Context) {
	if err := h.Svc.DeleteProduct(c.Param("id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// POST /admin/categories
func (h *CatalogController) CreateCategory(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.CreateCategory(req.Name)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, cat)
}

// DELETE /admin/categories/:id — products keep their category string.
func (h *CatalogController) DeleteCategory(c *gin.Context) {
	if err := h.Svc.DeleteCategory(c.Param("id")); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// PUT /admin/specials/:day
func (h *CatalogController) UpsertSpecial(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		resp.BadRequest(c, "invalid day")
		return
	}
	var req struct {
		ProductID string `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpsertDailySpecial(day, req.ProductID); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"day": day, "productId": req.ProductID})
}

// DELETE /admin/specials/:day
func (h *CatalogController) DeleteSpecial(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		resp.BadRequest(c, "invalid day")
		return
	}
	if err := h.Svc.DeleteDailySpecial(day); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
