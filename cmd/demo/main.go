// Package main - консольная демонстрация SOLID Go.
//
// Последовательно прогоняет все пять примеров и печатает результат
// в stdout. Полезно для быстрой проверки без запуска HTTP-сервера:
//
//	go run ./cmd/demo
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alem-hub/solid-go/internal/domain/logging"
	"github.com/alem-hub/solid-go/internal/domain/notification"
	"github.com/alem-hub/solid-go/internal/domain/pricing"
	"github.com/alem-hub/solid-go/internal/domain/report"
	"github.com/alem-hub/solid-go/internal/domain/student"
	"github.com/alem-hub/solid-go/internal/infrastructure/messaging"
	"github.com/alem-hub/solid-go/internal/infrastructure/persistence/memory"
	"github.com/alem-hub/solid-go/internal/infrastructure/service"
	"github.com/alem-hub/solid-go/pkg/logger"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Демонстрации нужен только лог уровня warn и выше,
	// чтобы не засорять вывод примеров.
	log := logger.New(logger.Options{Output: os.Stderr, Level: logger.LevelWarn})

	// ─────────────────────────────────────────────────────────────────────────
	// 1. SINGLE RESPONSIBILITY: журнал студентов
	// ─────────────────────────────────────────────────────────────────────────
	fmt.Println("=== Single Responsibility: журнал студентов ===")

	bus := messaging.NewInMemoryBus(log)
	defer bus.Close()

	roster, err := student.NewService(memory.NewStudentRepository(), service.NewUUIDGenerator(), bus)
	if err != nil {
		return err
	}

	for _, name := range []string{"Aruzhan", "Bekzat", "Carla"} {
		if _, err := roster.Add(ctx, name); err != nil {
			return err
		}
	}
	if _, err := roster.Delete(ctx, 1); err != nil {
		return err
	}

	names, err := roster.Names(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("roster after delete: %v\n\n", names)

	// ─────────────────────────────────────────────────────────────────────────
	// 2. OPEN/CLOSED: стратегии скидок
	// ─────────────────────────────────────────────────────────────────────────
	fmt.Println("=== Open/Closed: стратегии скидок ===")

	inventory := pricing.NewInventoryService()
	percent, err := pricing.NewPercentageDiscount(25)
	if err != nil {
		return err
	}

	// Новая стратегия - новый тип, а не правка InventoryService.
	strategies := []pricing.DiscountStrategy{
		pricing.NoDiscount{},
		pricing.SeasonalDiscount{},
		percent,
	}
	for _, s := range strategies {
		out, err := inventory.ApplyDiscount(100, s)
		if err != nil {
			return err
		}
		fmt.Printf("%-12s 100.00 -> %.2f\n", s.Name(), float64(out))
	}
	fmt.Println()

	// ─────────────────────────────────────────────────────────────────────────
	// 3. LISKOV SUBSTITUTION: каналы уведомлений
	// ─────────────────────────────────────────────────────────────────────────
	fmt.Println("=== Liskov Substitution: каналы уведомлений ===")

	msg, err := notification.NewMessage("aruzhan@alem.school", "Your report is ready")
	if err != nil {
		return err
	}

	// Обе реализации взаимозаменяемы: цикл не знает, какой канал перед ним.
	channels := []notification.Channel{
		notification.NewEmailChannel(os.Stdout),
		notification.NewSMSChannel(os.Stdout),
	}
	for _, ch := range channels {
		result := notification.Notify(ctx, ch, msg)
		fmt.Printf("channel=%s success=%v\n", result.Channel, result.Success)
	}
	fmt.Println()

	// ─────────────────────────────────────────────────────────────────────────
	// 4. INTERFACE SEGREGATION: отчёты
	// ─────────────────────────────────────────────────────────────────────────
	fmt.Println("=== Interface Segregation: отчёты ===")

	// Render принимает узкий Generator: SummaryReport не обязан уметь PDF.
	fmt.Println(report.Render(report.SummaryReport{}))
	fmt.Println(report.Render(report.FullReport{}))
	if err := (report.FullReport{}).GeneratePDF(os.Stdout); err != nil {
		return err
	}
	fmt.Println()

	// ─────────────────────────────────────────────────────────────────────────
	// 5. DEPENDENCY INVERSION: журналирование через абстракцию
	// ─────────────────────────────────────────────────────────────────────────
	fmt.Println("=== Dependency Inversion: журналирование ===")

	// Recorder зависит от интерфейса logging.Logger, а не от конкретного
	// логгера: консольный и структурированный подставляются одинаково.
	console, err := logging.NewRecorder(logging.NewConsoleLogger(os.Stdout))
	if err != nil {
		return err
	}
	console.Record("application started")

	structured, err := logging.NewRecorder(service.NewStructuredLogger(logger.New(logger.Options{Output: os.Stdout})))
	if err != nil {
		return err
	}
	structured.Record("application started")

	return nil
}
