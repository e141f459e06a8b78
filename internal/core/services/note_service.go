package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/srgjo27/villa_booking/internal/core/domain"
	"github.com/srgjo27/villa_booking/internal/core/ports"
)

type NoteService struct {
	noteRepo ports.NoteRepository
	logger   *zap.Logger
}

func NewNoteService(noteRepo ports.NoteRepository, logger *zap.Logger) *NoteService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoteService{noteRepo: noteRepo, logger: logger}
}

// Relay stores content under the email of the caller's token.
func (s *NoteService) Relay(ctx context.Context, content, email string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.ErrEmptyNote
	}
	if email == "" {
		return domain.ErrMissingEmail
	}

	if err := s.noteRepo.Insert(ctx, domain.Note{Text: content, Email: email}); err != nil {
		s.logger.Error("insert note failed", zap.String("email", email), zap.Error(err))
		return err
	}
	s.logger.Info("note stored", zap.String("email", email), zap.Int("length", len(content)))
	return nil
}
