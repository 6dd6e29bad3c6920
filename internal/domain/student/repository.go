package student

import (
	"context"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACES
// Эти интерфейсы определяют контракт для работы с хранилищем списка.
// Реализации находятся в infrastructure/persistence.
// ══════════════════════════════════════════════════════════════════════════════

// Repository определяет операции хранилища списка студентов.
// Список упорядочен по времени добавления (EnrolledAt, затем ID);
// index - позиция в этом порядке, начиная с нуля.
type Repository interface {
	// Insert добавляет студента в конец списка.
	Insert(ctx context.Context, s *Student) error

	// RemoveAt удаляет студента на позиции index и возвращает его.
	// Возвращает shared.ErrIndexOutOfRange, если index выходит за границы.
	RemoveAt(ctx context.Context, index int) (*Student, error)

	// List возвращает всех студентов в порядке добавления.
	List(ctx context.Context) ([]*Student, error)

	// Len возвращает текущую длину списка.
	Len(ctx context.Context) (int, error)
}

// IDGenerator генерирует уникальные идентификаторы студентов.
// Реализация на базе UUID находится в infrastructure/service.
type IDGenerator interface {
	GenerateID() string
}
