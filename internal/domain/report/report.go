// Package report содержит доменную модель отчётов.
//
// Это демонстрация принципа разделения интерфейсов (Interface Segregation):
// Generator - минимальная способность, PDFGenerator - её надмножество.
// Потребитель запрашивает только тот набор операций, который ему нужен:
// Render зависит лишь от Generator и никогда не видит GeneratePDF.
package report

import (
	"fmt"
	"io"
)

// Generator - минимальная способность отчёта.
type Generator interface {
	// Generate возвращает текст отчёта.
	Generate() string
}

// PDFGenerator расширяет Generator экспортом в PDF.
// Только потребители, которым нужен PDF, зависят от этого интерфейса.
type PDFGenerator interface {
	Generator

	// GeneratePDF записывает PDF-представление отчёта в w.
	// Выполняется ровно одна запись.
	GeneratePDF(w io.Writer) error
}

// SummaryReport - краткий отчёт. Реализует только Generator.
type SummaryReport struct{}

// Generate реализует Generator.
func (SummaryReport) Generate() string {
	return "Summary Report"
}

// FullReport - подробный отчёт с экспортом в PDF.
type FullReport struct{}

// Generate реализует Generator.
func (FullReport) Generate() string {
	return "Detailed Report"
}

// GeneratePDF реализует PDFGenerator. Настоящего рендеринга PDF здесь нет -
// записывается одна строка-заглушка.
func (r FullReport) GeneratePDF(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%%PDF(stub) %s\n", r.Generate()); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// Render - минимальный потребитель отчётов: ему достаточно Generator.
// Сигнатура - компайл-тайм доказательство сегрегации: SummaryReport
// подходит сюда, не реализуя GeneratePDF.
func Render(g Generator) string {
	return g.Generate()
}

// Интерфейсные проверки.
var (
	_ Generator    = SummaryReport{}
	_ PDFGenerator = FullReport{}
)
