package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/srgjo27/villa_booking/internal/adapter/handler"
	"github.com/srgjo27/villa_booking/internal/core/domain"
	"github.com/srgjo27/villa_booking/internal/core/ports"
	"github.com/srgjo27/villa_booking/internal/core/ports/mocks"
	"github.com/srgjo27/villa_booking/internal/core/services"
	"github.com/srgjo27/villa_booking/internal/platform/clock"
)

const secret = "router-secret"

var now = time.Date(2024, 4, 10, 6, 0, 0, 0, time.UTC)

type fixture struct {
	router   *gin.Engine
	bookings *mocks.BookingRepository
	cache    *mocks.HistoryCache
	stats    *mocks.StatsRepository
	notes    *mocks.NoteRepository
}

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

func newFixture(t *testing.T) *fixture {
	gin.SetMode(gin.TestMode)
	logger := zaptest.NewLogger(t)
	clk := clock.NewFixed(now)

	f := &fixture{
		bookings: mocks.NewBookingRepository(t),
		cache:    mocks.NewHistoryCache(t),
		stats:    mocks.NewStatsRepository(t),
		notes:    mocks.NewNoteRepository(t),
	}

	bookingSvc := services.NewBookingService(f.bookings, f.cache, clk, logger)
	f.router = handler.NewRouter(
		handler.RouterConfig{Logger: logger, JWTSecret: secret, NotesRatePerMin: 60},
		handler.NewBookingHandler(bookingSvc, services.NewQuotationService(bookingSvc, clk, logger)),
		handler.NewStatsHandler(services.NewStatsService(f.stats, logger), clk),
		handler.NewNoteHandler(services.NewNoteService(f.notes, logger)),
		handler.NewHealthHandler(okPinger{}),
	)
	return f
}

func token(t *testing.T) string {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "emp-1",
		"name":  "Asha",
		"email": "asha@villas.in",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch v := body.(type) {
		case string:
			buf.WriteString(v)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(v))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token(t))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func validBooking() domain.Booking {
	b := domain.NewBooking()
	b.Client = domain.Client{Name: "Ravi Kumar", Phone: "9876543210"}
	b.StartDateTime = "2024-05-01T10:00:00.000Z"
	b.EndDateTime = "2024-05-03T10:00:00.000Z"
	b.Costs = []domain.Cost{{Name: "Stay", Amount: 2000}}
	return b
}

func TestHealth(t *testing.T) {
	f := newFixture(t)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestBookings_RequireToken(t *testing.T) {
	f := newFixture(t)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings/new", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNewBooking(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/api/bookings/new", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var b domain.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	assert.Equal(t, domain.StatusInquiry, b.Status)
	assert.Equal(t, domain.PaymentCash, b.PaymentMethod)
}

func TestGetBooking_NotFound(t *testing.T) {
	f := newFixture(t)
	f.cache.On("Get", mock.Anything, int64(77)).Return(nil, false, nil)
	f.bookings.On("LoadHistory", mock.Anything, int64(77)).Return(nil, domain.ErrBookingNotFound)

	w := f.do(t, http.MethodGet, "/api/bookings/77", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"not_found"`)
}

func TestGetBooking_Version(t *testing.T) {
	f := newFixture(t)
	first := validBooking()
	second := validBooking()
	second.Status = domain.StatusConfirmed
	f.cache.On("Get", mock.Anything, int64(4)).Return([]domain.Booking{first, second}, true, nil)

	w := f.do(t, http.MethodGet, "/api/bookings/4?version=0", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Inquiry"`)

	w = f.do(t, http.MethodGet, "/api/bookings/4", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Confirmed"`)

	w = f.do(t, http.MethodGet, "/api/bookings/4?version=9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBooking_BadID(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodGet, "/api/bookings/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHistory(t *testing.T) {
	f := newFixture(t)
	f.cache.On("Get", mock.Anything, int64(4)).Return([]domain.Booking{validBooking(), validBooking()}, true, nil)

	w := f.do(t, http.MethodGet, "/api/bookings/4/history", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var h domain.History
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &h))
	assert.Len(t, h.Snapshots, 2)
	assert.Equal(t, 1, h.Index)
}

func TestDerive_AppliesEdits(t *testing.T) {
	f := newFixture(t)

	body := map[string]any{
		"booking":    validBooking(),
		"taxEnabled": true,
		"submitted":  true,
		"edits": []map[string]any{
			{"type": "setClientPhone", "payload": map[string]any{"phone": "+91 98765-43210"}},
			{"type": "addPayment", "payload": map[string]any{"payment": map[string]any{"amount": 500}}},
			{"type": "setReferral", "payload": map[string]any{"referral": "Other", "other": ""}},
		},
	}

	w := f.do(t, http.MethodPost, "/api/bookings/derive", body)

	require.Equal(t, http.StatusOK, w.Code)
	var resp services.PreviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "919876543210", resp.Booking.Client.Phone)
	assert.Equal(t, 360.0, resp.Booking.Tax)
	assert.Equal(t, 500.0, resp.Booking.Paid)
	assert.Equal(t, 1860.0, resp.Booking.Outstanding)
	assert.Equal(t, domain.PaymentCash, resp.Booking.Payments[0].PaymentMethod)
	assert.Equal(t, "Referral name is required", resp.Errors[domain.FieldOtherReferral])
}

func TestDerive_UnknownEdit(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/api/bookings/derive", map[string]any{
		"booking": validBooking(),
		"edits":   []map[string]any{{"type": "launchRocket"}},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "launchRocket")
}

func TestSave_Create(t *testing.T) {
	f := newFixture(t)
	f.bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.CreatedBy != nil && b.CreatedBy.ID == "emp-1" && b.CreatedBy.Name == "Asha"
	})).Return(int64(31), nil)

	w := f.do(t, http.MethodPost, "/api/bookings", map[string]any{"booking": validBooking()})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"bookingId":31,"created":true}`, w.Body.String())
}

func TestSave_ValidationFailure(t *testing.T) {
	f := newFixture(t)
	b := validBooking()
	b.Client.Name = ""

	w := f.do(t, http.MethodPost, "/api/bookings", map[string]any{"booking": b})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Code)
	assert.Equal(t, "Name is required", resp.Fields["name"])
}

func TestSave_PersistenceFailure(t *testing.T) {
	f := newFixture(t)
	f.bookings.On("Create", mock.Anything, mock.Anything).Return(int64(0), errors.New("connection refused"))

	w := f.do(t, http.MethodPost, "/api/bookings", map[string]any{"booking": validBooking()})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Your changes are kept")
}

func TestSave_BadJSON(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/api/bookings", `{"booking":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	f.bookings.On("Delete", mock.Anything, int64(3)).Return(nil)
	f.cache.On("Invalidate", mock.Anything, int64(3)).Return(nil)

	w := f.do(t, http.MethodDelete, "/api/bookings/3", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestList(t *testing.T) {
	f := newFixture(t)
	starred := true
	f.bookings.On("List", mock.Anything, ports.ListFilter{Status: domain.StatusConfirmed, Starred: &starred, Limit: 20}).
		Return([]domain.Booking{validBooking()}, nil)

	w := f.do(t, http.MethodGet, "/api/bookings?status=Confirmed&starred=true&limit=20", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"bookings":[`)

	w = f.do(t, http.MethodGet, "/api/bookings?starred=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodGet, "/api/bookings?status=Cancelled", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuotation(t *testing.T) {
	f := newFixture(t)
	b := validBooking()
	b.BookingID = 6
	f.cache.On("Get", mock.Anything, int64(6)).Return([]domain.Booking{b}, true, nil)

	w := f.do(t, http.MethodGet, "/api/bookings/6/quotation", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "quotation-6.pdf")
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	filter := domain.StatsFilter{Month: 4, Year: 2024}
	f.stats.On("BookingStats", mock.Anything, filter).
		Return(domain.Stats{Monthly: domain.StatsBucket{"inquiriesCount": 8, "confirmedCount": 2}}, nil)
	f.stats.On("CheckinStats", mock.Anything, filter).Return(domain.Stats{}, nil)

	w := f.do(t, http.MethodGet, "/api/stats", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"monthlyConversionRate":25`)

	w = f.do(t, http.MethodGet, "/api/stats?month=13", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotes(t *testing.T) {
	f := newFixture(t)
	f.notes.On("Insert", mock.Anything, domain.Note{Text: "late checkout", Email: "asha@villas.in"}).Return(nil)

	w := f.do(t, http.MethodPost, "/api/notes", map[string]string{"content": "late checkout"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = f.do(t, http.MethodPost, "/api/notes", map[string]string{"content": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotes_InvalidToken(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader(`{"content":"x"}`))
	req.Header.Set("Authorization", "Bearer nope")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Invalid token"}`, w.Body.String())
}
