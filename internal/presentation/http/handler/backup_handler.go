package handler

import (
	"fmt"
	"io"
	"time"

	"github.com/adiwira/kasirpos/internal/application/service"
	"github.com/adiwira/kasirpos/internal/presentation/http/dto/response"
	"github.com/adiwira/kasirpos/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// maxBackupSize bounds the restore request body. Backups carry the logo as
// an inline data string, so the limit is generous.
const maxBackupSize = 16 << 20

// BackupHandler handles backup export and restore HTTP requests
type BackupHandler struct {
	backupService *service.BackupService
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(backupService *service.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// Export downloads the full persisted state as one JSON document
func (h *BackupHandler) Export(c *gin.Context) {
	doc := h.backupService.Export(c.Request.Context())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=kasirpos-backup-%s.json", time.Now().Format("20060102-150405")))
	c.JSON(200, doc)
}

// Restore applies an uploaded backup document
func (h *BackupHandler) Restore(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBackupSize))
	if err != nil {
		response.Error(c, apperror.ErrBadRequest)
		return
	}

	if err := h.backupService.Restore(c.Request.Context(), data); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Backup restored successfully", nil)
}
