// Package memory implements in-memory persistence for the SOLID examples
// application. It is the default roster backend and preserves the original
// semantics of the examples: one private ordered sequence.
package memory

import (
	"context"
	"sync"

	"github.com/alem-hub/solid-go/internal/domain/shared"
	"github.com/alem-hub/solid-go/internal/domain/student"
)

// StudentRepository implements student.Repository with a mutex-guarded slice.
type StudentRepository struct {
	mu       sync.RWMutex
	students []*student.Student
}

// NewStudentRepository creates an empty in-memory roster.
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{students: make([]*student.Student, 0)}
}

// Insert appends a student to the roster.
func (r *StudentRepository) Insert(ctx context.Context, s *student.Student) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.students = append(r.students, s.Clone())
	return nil
}

// RemoveAt deletes the student at the given position and returns it.
func (r *StudentRepository) RemoveAt(ctx context.Context, index int) (*student.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.students) {
		return nil, shared.ErrIndexOutOfRange
	}

	removed := r.students[index]
	r.students = append(r.students[:index], r.students[index+1:]...)
	return removed, nil
}

// List returns copies of all students in insertion order.
func (r *StudentRepository) List(ctx context.Context) ([]*student.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*student.Student, 0, len(r.students))
	for _, s := range r.students {
		out = append(out, s.Clone())
	}
	return out, nil
}

// Len returns the roster length.
func (r *StudentRepository) Len(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.students), nil
}

// Compile-time interface check.
var _ student.Repository = (*StudentRepository)(nil)
