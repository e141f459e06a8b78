package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"github.com/srgjo27/villa_booking/internal/core/domain"
	"github.com/srgjo27/villa_booking/internal/core/ports/mocks"
	"github.com/srgjo27/villa_booking/internal/core/services"
)

func TestRelay_TrimsAndStores(t *testing.T) {
	repo := mocks.NewNoteRepository(t)
	svc := services.NewNoteService(repo, zaptest.NewLogger(t))
	ctx := context.Background()

	repo.On("Insert", ctx, domain.Note{Text: "call back at 5", Email: "desk@villas.in"}).Return(nil)

	assert.NoError(t, svc.Relay(ctx, "  call back at 5 \n", "desk@villas.in"))
}

func TestRelay_Rejects(t *testing.T) {
	repo := mocks.NewNoteRepository(t)
	svc := services.NewNoteService(repo, zaptest.NewLogger(t))
	ctx := context.Background()

	assert.ErrorIs(t, svc.Relay(ctx, "   ", "desk@villas.in"), domain.ErrEmptyNote)
	assert.ErrorIs(t, svc.Relay(ctx, "hello", ""), domain.ErrMissingEmail)
}
