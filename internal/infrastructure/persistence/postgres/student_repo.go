package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/alem-hub/solid-go/internal/domain/shared"
	"github.com/alem-hub/solid-go/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// StudentRepository implements student.Repository for PostgreSQL.
// The roster order is (enrolled_at, id); positional operations translate
// an index into OFFSET on that order.
type StudentRepository struct {
	conn *Connection
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(conn *Connection) *StudentRepository {
	return &StudentRepository{conn: conn}
}

// Insert appends a student to the roster.
func (r *StudentRepository) Insert(ctx context.Context, s *student.Student) error {
	query := `
		INSERT INTO students (id, name, enrolled_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.conn.Exec(ctx, query, s.ID, s.Name.String(), s.EnrolledAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return shared.WrapError("student", "Insert", shared.ErrAlreadyExists, "duplicate student ID", err)
		}
		return fmt.Errorf("failed to insert student: %w", err)
	}

	return nil
}

// RemoveAt deletes the student at the given roster position and returns it.
// Runs serializable so the position lookup and the delete see one roster.
func (r *StudentRepository) RemoveAt(ctx context.Context, index int) (*student.Student, error) {
	if index < 0 {
		return nil, shared.ErrIndexOutOfRange
	}

	var removed *student.Student
	err := r.conn.WithTx(ctx, SerializableTxOptions(), func(tx pgx.Tx) error {
		query := `
			SELECT id, name, enrolled_at
			FROM students
			ORDER BY enrolled_at, id
			OFFSET $1
			LIMIT 1
		`

		var s student.Student
		var name string
		row := tx.QueryRow(ctx, query, index)
		if err := row.Scan(&s.ID, &name, &s.EnrolledAt); err != nil {
			if IsNoRows(err) {
				return shared.ErrIndexOutOfRange
			}
			return fmt.Errorf("failed to locate roster position %d: %w", index, err)
		}
		s.Name = student.Name(name)

		if _, err := tx.Exec(ctx, `DELETE FROM students WHERE id = $1`, s.ID); err != nil {
			return fmt.Errorf("failed to delete student %s: %w", s.ID, err)
		}

		removed = &s
		return nil
	})
	if err != nil {
		return nil, err
	}

	return removed, nil
}

// List returns the roster in enrollment order.
func (r *StudentRepository) List(ctx context.Context) ([]*student.Student, error) {
	query := `
		SELECT id, name, enrolled_at
		FROM students
		ORDER BY enrolled_at, id
	`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	var roster []*student.Student
	for rows.Next() {
		var s student.Student
		var name string
		if err := rows.Scan(&s.ID, &name, &s.EnrolledAt); err != nil {
			return nil, fmt.Errorf("failed to scan student row: %w", err)
		}
		s.Name = student.Name(name)
		roster = append(roster, &s)
	}

	return roster, rows.Err()
}

// Len returns the roster length.
func (r *StudentRepository) Len(ctx context.Context) (int, error) {
	var count int
	err := r.conn.QueryRow(ctx, `SELECT count(*) FROM students`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return count, nil
}

// Compile-time interface check.
var _ student.Repository = (*StudentRepository)(nil)
