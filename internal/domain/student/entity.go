package student

import (
	"strings"
	"time"
	"unicode"

	"github.com/alem-hub/solid-go/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// MaxNameLength - максимальная длина имени студента в рунах.
const MaxNameLength = 100

// Name представляет имя студента.
type Name string

// NewName создаёт имя из сырой строки с валидацией.
// Пробелы по краям обрезаются.
func NewName(raw string) (Name, error) {
	n := Name(strings.TrimSpace(raw))
	if !n.IsValid() {
		return "", shared.ErrInvalidStudentName
	}
	return n, nil
}

// IsValid проверяет корректность имени: непустое, не длиннее MaxNameLength
// рун и без управляющих символов.
func (n Name) IsValid() bool {
	s := string(n)
	if s == "" {
		return false
	}
	runes := 0
	for _, r := range s {
		if unicode.IsControl(r) {
			return false
		}
		runes++
	}
	return runes <= MaxNameLength
}

// String возвращает строковое представление имени.
func (n Name) String() string {
	return string(n)
}

// ══════════════════════════════════════════════════════════════════════════════
// ENTITY
// ══════════════════════════════════════════════════════════════════════════════

// Student представляет студента в списке.
type Student struct {
	// ID - уникальный идентификатор (генерируется IDGenerator).
	ID string

	// Name - имя студента.
	Name Name

	// EnrolledAt - время добавления в список. Порядок списка определяется
	// этим полем, при равенстве - идентификатором.
	EnrolledAt time.Time
}

// NewStudent создаёт нового студента.
func NewStudent(id string, name Name) (*Student, error) {
	if id == "" {
		return nil, shared.NewDomainError("student", "New", shared.ErrInvalidID, "empty student ID")
	}
	if !name.IsValid() {
		return nil, shared.ErrInvalidStudentName
	}
	return &Student{
		ID:         id,
		Name:       name,
		EnrolledAt: time.Now().UTC(),
	}, nil
}

// Clone возвращает независимую копию студента.
func (s *Student) Clone() *Student {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
