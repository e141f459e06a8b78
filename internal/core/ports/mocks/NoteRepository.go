package mocks

import (
	"context"

	"github.com/srgjo27/villa_booking/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// NoteRepository is a mock type for the ports.NoteRepository type
type NoteRepository struct {
	mock.Mock
}

func (_m *NoteRepository) Insert(ctx context.Context, note domain.Note) error {
	ret := _m.Called(ctx, note)
	return ret.Error(0)
}

// NewNoteRepository creates a new instance of NoteRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewNoteRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *NoteRepository {
	m := &NoteRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
