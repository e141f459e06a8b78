package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srgjo27/villa_booking/internal/adapter/handler/middleware"
	"github.com/srgjo27/villa_booking/internal/core/services"
)

type NoteHandler struct {
	svc *services.NoteService
}

func NewNoteHandler(svc *services.NoteService) *NoteHandler {
	return &NoteHandler{svc: svc}
}

type NoteRequest struct {
	Content string `json:"content"`
}

func (h *NoteHandler) Create(c *gin.Context) {
	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid json body")
		return
	}
	if err := h.svc.Relay(c.Request.Context(), req.Content, middleware.EmailFrom(c)); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Note saved"})
}
