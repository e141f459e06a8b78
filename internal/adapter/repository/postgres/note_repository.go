package postgres

import (
	"context"
	"database/sql"

	"github.com/srgjo27/villa_booking/internal/core/domain"
)

type NoteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Insert(ctx context.Context, note domain.Note) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO notes (text, email) VALUES ($1, $2)`, note.Text, note.Email)
	return err
}
