package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mkassaw/invoicing_backend/internal/core/ports/services"
	"github.com/mkassaw/invoicing_backend/internal/dto"
	"github.com/mkassaw/invoicing_backend/internal/middleware"
)

// attachmentHandler handles HTTP requests related to attachments.
type attachmentHandler struct {
	attachmentService portssvc.AttachmentSvcFacade
}

// newAttachmentHandler creates a new attachmentHandler.
func newAttachmentHandler(as portssvc.AttachmentSvcFacade) *attachmentHandler {
	return &attachmentHandler{attachmentService: as}
}

// registerAttachmentRoutes registers routes related to attachments.
func registerAttachmentRoutes(rg *gin.RouterGroup, attachmentService portssvc.AttachmentSvcFacade) {
	h := newAttachmentHandler(attachmentService)

	attachments := rg.Group("/attachment")
	{
		attachments.POST("", h.createAttachment)
		attachments.DELETE("/:id", h.deleteAttachment)
	}
}

func (h *attachmentHandler) createAttachment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAttachmentRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondValidation(c, "the given data was invalid", map[string][]string{
			"file": {"failed on the required rule"},
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		respondInternal(c)
		return
	}
	defer file.Close()

	attachment, err := h.attachmentService.CreateAttachment(c.Request.Context(), req, portssvc.AttachmentUpload{
		FileName: fileHeader.Filename,
		Size:     fileHeader.Size,
		Content:  file,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	logger.Info("Attachment created", slog.Int64("attachment_id", attachment.AttachmentID))
	respondMessageData(c, http.StatusCreated, "attachment created", dto.ToAttachmentResponse(attachment))
}

func (h *attachmentHandler) deleteAttachment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.attachmentService.DeleteAttachment(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "attachment deleted")
}
