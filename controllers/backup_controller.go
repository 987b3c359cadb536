package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/pkg/resp"
	"github.com/auricleciorocha30-byte/JG-Conveni-ncia/services"
)

type BackupController struct{ Svc *services.BackupService }

func NewBackupController(s *services.BackupService) *BackupController {
	return &BackupController{Svc: s}
}

// GET /admin/backup — downloadable JSON snapshot.
func (h *BackupController) Export(c *gin.Context) {
	file, err := h.Svc.Export()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	filename := fmt.Sprintf("backup-%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.JSON(http.StatusOK, file)
}

// POST /admin/backup — restore is not implemented yet.
// TODO: restore path needs a conflict strategy for existing catalog rows.
func (h *BackupController) Import(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"ok": false, "error": "backup import is not implemented"})
}
