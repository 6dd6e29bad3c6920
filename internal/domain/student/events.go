package student

import (
	"github.com/alem-hub/solid-go/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN EVENTS
// ══════════════════════════════════════════════════════════════════════════════

// EnrolledEvent создаётся при добавлении студента в список.
type EnrolledEvent struct {
	shared.BaseEvent
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// Payload реализует интерфейс shared.Event.
func (e EnrolledEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"name":     e.Name,
		"position": e.Position,
	}
}

// NewEnrolledEvent создаёт событие о добавлении студента.
// position - позиция студента в списке после добавления.
func NewEnrolledEvent(s *Student, position int) EnrolledEvent {
	return EnrolledEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventStudentEnrolled, s.ID),
		Name:      s.Name.String(),
		Position:  position,
	}
}

// RemovedEvent создаётся при удалении студента из списка.
type RemovedEvent struct {
	shared.BaseEvent
	Name  string `json:"name"`
	Index int    `json:"index"`
}

// Payload реализует интерфейс shared.Event.
func (e RemovedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"name":  e.Name,
		"index": e.Index,
	}
}

// NewRemovedEvent создаёт событие об удалении студента.
// index - позиция, с которой студент был удалён.
func NewRemovedEvent(s *Student, index int) RemovedEvent {
	return RemovedEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventStudentRemoved, s.ID),
		Name:      s.Name.String(),
		Index:     index,
	}
}
