// Package logging содержит абстракцию журнала для компонентов интерфейса.
//
// Это демонстрация принципа инверсии зависимостей (Dependency Inversion):
// компонент Recorder держит ссылку на способность Logger, а не на конкретную
// реализацию. Сборка конкретного варианта происходит снаружи, в cmd/ -
// замена реализации не требует изменений в компоненте.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/alem-hub/solid-go/internal/domain/shared"
)

// Logger - способность записывать сообщения журнала.
type Logger interface {
	// Log записывает одно сообщение.
	Log(message string)
}

// ConsoleLogger - консольный вариант Logger: одна строка на сообщение,
// текст передаётся без изменений.
type ConsoleLogger struct {
	out io.Writer
}

// NewConsoleLogger создаёт консольный журнал. Если out == nil,
// используется os.Stdout.
func NewConsoleLogger(out io.Writer) *ConsoleLogger {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleLogger{out: out}
}

// Log реализует Logger.
func (l *ConsoleLogger) Log(message string) {
	fmt.Fprintf(l.out, "LOG: %s\n", message)
}

// Recorder - компонент-потребитель журнала. Аналог UI-компонента:
// метод Record вызывается обработчиком действия пользователя.
// Компонент знает только способность Logger.
type Recorder struct {
	logger Logger
}

// NewRecorder создаёт компонент с внедрённым журналом.
func NewRecorder(logger Logger) (*Recorder, error) {
	if logger == nil {
		return nil, shared.ErrNilLogger
	}
	return &Recorder{logger: logger}, nil
}

// Record записывает сообщение через внедрённый журнал.
func (r *Recorder) Record(message string) {
	r.logger.Log(message)
}
