package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/srgjo27/villa_booking/internal/adapter/handler/middleware"
	"github.com/srgjo27/villa_booking/internal/core/domain"
	"github.com/srgjo27/villa_booking/internal/core/ports"
	"github.com/srgjo27/villa_booking/internal/core/services"
)

type BookingHandler struct {
	svc       *services.BookingService
	quotation *services.QuotationService
}

func NewBookingHandler(svc *services.BookingService, quotation *services.QuotationService) *BookingHandler {
	return &BookingHandler{svc: svc, quotation: quotation}
}

// DeriveRequest replays form edits on a snapshot without saving.
type DeriveRequest struct {
	Booking    domain.Booking `json:"booking"`
	TaxEnabled bool           `json:"taxEnabled"`
	Submitted  bool           `json:"submitted"`
	Edits      []EditRequest  `json:"edits"`
	Event      *domain.Event  `json:"event,omitempty"`
}

func (h *BookingHandler) List(c *gin.Context) {
	filter := ports.ListFilter{
		Status: domain.BookingStatus(c.Query("status")),
		From:   c.Query("from"),
		To:     c.Query("to"),
	}
	if s := c.Query("starred"); s != "" {
		starred, err := strconv.ParseBool(s)
		if err != nil {
			respondBadRequest(c, "starred must be true or false")
			return
		}
		filter.Starred = &starred
	}
	if s := c.Query("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil {
			respondBadRequest(c, "limit must be a number")
			return
		}
		filter.Limit = limit
	}
	if filter.Status != "" && !filter.Status.Valid() {
		respondBadRequest(c, fmt.Sprintf("unknown status %q", filter.Status))
		return
	}

	bookings, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *BookingHandler) New(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.New())
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	if v := c.Query("version"); v != "" {
		version, err := strconv.Atoi(v)
		if err != nil {
			respondBadRequest(c, "version must be a number")
			return
		}
		b, err := h.svc.Version(c.Request.Context(), id, version)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
		return
	}

	b, err := h.svc.Current(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) History(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	history, err := h.svc.History(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

func (h *BookingHandler) Derive(c *gin.Context) {
	var req DeriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid json body")
		return
	}
	edits, err := decodeEdits(req.Edits)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	resp := h.svc.Preview(services.PreviewRequest{
		Booking:    req.Booking,
		TaxEnabled: req.TaxEnabled,
		Submitted:  req.Submitted,
		Edits:      edits,
		Event:      req.Event,
	})
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) Save(c *gin.Context) {
	actor, ok := middleware.EmployeeFrom(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "No token provided", nil)
		return
	}

	var req services.SaveBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid json body")
		return
	}

	resp, err := h.svc.Save(c.Request.Context(), req, actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	status := http.StatusOK
	if resp.Created {
		status = http.StatusCreated
	}
	c.JSON(status, resp)
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) Quotation(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	pdf, filename, err := h.quotation.Render(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		respondBadRequest(c, "invalid booking id")
		return 0, false
	}
	return id, true
}
