package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/entity"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/pkg/resp"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/services"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/slots"
)

type TableController struct {
	Svc      *services.TableService
	Settings *services.SettingsService
}

func NewTableController(s *services.TableService, settings *services.SettingsService) *TableController {
	return &TableController{Svc: s, Settings: settings}
}

// GET /tables
func (h *TableController) List(c *gin.Context) {
	tables, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, tables)
}

// POST /orders — admin quick-add: opens an order on a channel with its
// first item. Aborts with 409 when the channel band has no free slot.
func (h *TableController) Open(c *gin.Context) {
	var req struct {
		OrderType   string `json:"orderType" binding:"required"`
		TableNumber int    `json:"tableNumber"`
		ProductID   string `json:"productId" binding:"required"`
		Note        string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var typ entity.OrderType
	switch req.OrderType {
	case "table":
		typ = entity.OrderTable
	case "delivery":
		typ = entity.OrderDelivery
	case "counter", "takeaway":
		typ = entity.OrderCounter
	default:
		resp.BadRequest(c, "unknown order type")
		return
	}

	slotID, err := h.Svc.AllocateManual(typ, req.TableNumber)
	if err != nil {
		if errors.Is(err, services.ErrNoFreeSlot) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}

	row, err := h.Svc.AddItem(slotID, req.ProductID, req.Note)
	if err != nil {
		h.writeTableError(c, err)
		return
	}
	resp.Created(c, row)
}

// POST /tables/:id/items
func (h *TableController) AddItem(c *gin.Context) {
	id, ok := h.slotID(c)
	if !ok {
		return
	}
	var req struct {
		ProductID string `json:"productId" binding:"required"`
		Note      string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	row, err := h.Svc.AddItem(id, req.ProductID, req.Note)
	if err != nil {
		h.writeTableError(c, err)
		return
	}
	resp.OK(c, row)
}

// DELETE /tables/:id/items/:index
func (h *TableController) RemoveItem(c *gin.Context) {
	id, ok := h.slotID(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		resp.BadRequest(c, "invalid item index")
		return
	}
	if err := h.Svc.RemoveItem(id, index); err != nil {
		h.writeTableError(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}

// PATCH /tables/:id/status
func (h *TableController) SetStatus(c *gin.Context) {
	id, ok := h.slotID(c)
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status" binding:"required,oneof=pending preparing ready delivered"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SetStatus(id, entity.OrderStatus(req.Status)); err != nil {
		h.writeTableError(c, err)
		return
	}
	resp.OK(c, gin.H{"status": req.Status})
}

// DELETE /tables/:id — frees the slot, discarding its order.
func (h *TableController) Free(c *gin.Context) {
	id, ok := h.slotID(c)
	if !ok {
		return
	}
	if err := h.Svc.Free(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"freed": true})
}

// Waiter variants honor the store settings toggles server-side.

// DELETE /waiter/tables/:id
func (h *TableController) WaiterFree(c *gin.Context) {
	cfg, err := h.Settings.StoreConfig()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !cfg.WaiterCanFinalize {
		resp.Forbidden(c, services.ErrNotAllowed.Error())
		return
	}
	h.Free(c)
}

// DELETE /waiter/tables/:id/items/:index
func (h *TableController) WaiterRemoveItem(c *gin.Context) {
	cfg, err := h.Settings.StoreConfig()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !cfg.WaiterCanCancelItems {
		resp.Forbidden(c, services.ErrNotAllowed.Error())
		return
	}
	h.RemoveItem(c)
}

func (h *TableController) slotID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid table id")
		return 0, false
	}
	return id, true
}

func (h *TableController) writeTableError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrSlotFree):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrItemIndex), errors.Is(err, slots.ErrBadTableNum):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
