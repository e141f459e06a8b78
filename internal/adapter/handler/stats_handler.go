package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/srgjo27/villa_booking/internal/core/domain"
	"github.com/srgjo27/villa_booking/internal/core/services"
	"github.com/srgjo27/villa_booking/internal/platform/clock"
)

type StatsHandler struct {
	svc   *services.StatsService
	clock clock.Clock
}

func NewStatsHandler(svc *services.StatsService, clk clock.Clock) *StatsHandler {
	return &StatsHandler{svc: svc, clock: clk}
}

// Get defaults month and year to the current ones.
func (h *StatsHandler) Get(c *gin.Context) {
	now := h.clock.Now()
	filter := domain.StatsFilter{Month: int(now.Month()), Year: now.Year()}

	if s := c.Query("month"); s != "" {
		m, err := parseMonth(s)
		if err != nil {
			respondDomainError(c, domain.ErrInvalidMonth)
			return
		}
		filter.Month = m
	}
	if s := c.Query("year"); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil {
			respondDomainError(c, domain.ErrInvalidYear)
			return
		}
		filter.Year = y
	}
	if s := c.Query("employee"); s != "" {
		filter.Employee = &s
	}
	if s := c.Query("referral"); s != "" {
		filter.Referral = &s
	}

	dashboard, err := h.svc.Dashboard(c.Request.Context(), filter)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// parseMonth accepts 1-12 or an English month name.
func parseMonth(s string) (int, error) {
	if m, err := strconv.Atoi(s); err == nil {
		return m, nil
	}
	for _, layout := range []string{"January", "Jan"} {
		if t, err := time.Parse(layout, s); err == nil {
			return int(t.Month()), nil
		}
	}
	return 0, domain.ErrInvalidMonth
}
