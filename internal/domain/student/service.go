package student

import (
	"context"
	"fmt"

	"github.com/alem-hub/solid-go/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ROSTER SERVICE
// ══════════════════════════════════════════════════════════════════════════════

// Service ведёт список студентов. Единственная ответственность сервиса -
// учёт списка: валидация имён, добавление, удаление по позиции и выдача
// защитной копии. Хранение, генерация идентификаторов и доставка событий
// делегированы зависимостям, которые передаются через конструктор.
type Service struct {
	repo Repository
	ids  IDGenerator
	bus  shared.EventPublisher
}

// NewService создаёт сервис списка студентов.
// bus может быть nil - тогда события не публикуются.
func NewService(repo Repository, ids IDGenerator, bus shared.EventPublisher) (*Service, error) {
	if repo == nil {
		return nil, shared.NewDomainError("student", "NewService", shared.ErrNilDependency, "repository is nil")
	}
	if ids == nil {
		return nil, shared.NewDomainError("student", "NewService", shared.ErrNilDependency, "id generator is nil")
	}
	return &Service{repo: repo, ids: ids, bus: bus}, nil
}

// Add добавляет студента с указанным именем в конец списка.
// Возвращает shared.ErrInvalidStudentName для некорректного имени.
func (s *Service) Add(ctx context.Context, rawName string) (*Student, error) {
	name, err := NewName(rawName)
	if err != nil {
		return nil, err
	}

	st, err := NewStudent(s.ids.GenerateID(), name)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to insert student: %w", err)
	}

	if s.bus != nil {
		n, lenErr := s.repo.Len(ctx)
		if lenErr != nil {
			n = 0
		}
		// Доставка событий не влияет на результат операции.
		_ = s.bus.Publish(NewEnrolledEvent(st, n-1))
	}

	return st.Clone(), nil
}

// Delete удаляет студента на позиции index.
// Политика для index вне границ: явная ошибка shared.ErrIndexOutOfRange,
// никогда не panic и никогда не молчаливый no-op.
func (s *Service) Delete(ctx context.Context, index int) (*Student, error) {
	if index < 0 {
		return nil, shared.ErrIndexOutOfRange
	}

	removed, err := s.repo.RemoveAt(ctx, index)
	if err != nil {
		return nil, err
	}

	if s.bus != nil {
		_ = s.bus.Publish(NewRemovedEvent(removed, index))
	}

	return removed, nil
}

// Get возвращает защитную копию списка в порядке добавления.
// Изменение результата не влияет на состояние сервиса.
func (s *Service) Get(ctx context.Context) ([]Student, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	roster := make([]Student, 0, len(list))
	for _, st := range list {
		roster = append(roster, *st.Clone())
	}
	return roster, nil
}

// Names возвращает имена студентов в порядке добавления.
func (s *Service) Names(ctx context.Context) ([]string, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	names := make([]string, 0, len(list))
	for _, st := range list {
		names = append(names, st.Name.String())
	}
	return names, nil
}

// Count возвращает текущую длину списка.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Len(ctx)
}
