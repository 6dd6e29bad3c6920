package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/alem-hub/solid-go/internal/domain/notification"
	"github.com/alem-hub/solid-go/internal/domain/pricing"
	"github.com/alem-hub/solid-go/internal/domain/report"
	"github.com/alem-hub/solid-go/internal/domain/shared"
	"github.com/alem-hub/solid-go/internal/domain/student"
	"github.com/alem-hub/solid-go/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// JSON HELPERS
// ══════════════════════════════════════════════════════════════════════════════

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// domainStatus maps domain errors to HTTP status codes.
func domainStatus(err error) int {
	switch {
	case errors.Is(err, shared.ErrOutOfRange),
		errors.Is(err, shared.ErrInvalidInput),
		errors.Is(err, shared.ErrEmptyValue),
		errors.Is(err, shared.ErrNegativeValue),
		errors.Is(err, shared.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, shared.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// HEALTH & STATUS HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

// handleRoot serves the root endpoint with basic API information.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	info := map[string]interface{}{
		"name":    "SOLID Examples API",
		"version": "v1",
		"endpoints": map[string]string{
			"health":   "/health",
			"students": "/api/v1/students",
			"quote":    "/api/v1/quote",
			"notify":   "/api/v1/notify",
			"reports":  "/api/v1/reports/summary",
			"log":      "/api/v1/log",
		},
	}

	writeJSON(w, http.StatusOK, info)
}

// handleHealth handles the health check endpoint.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"status": "healthy",
		"uptime": s.Uptime().String(),
	}

	if s.deps.HealthCheck != nil {
		if err := s.deps.HealthCheck(r.Context()); err != nil {
			resp["status"] = "unhealthy"
			resp["error"] = err.Error()
			writeJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// ══════════════════════════════════════════════════════════════════════════════
// ROSTER HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

type studentResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

func toStudentResponse(s student.Student) studentResponse {
	return studentResponse{
		ID:         s.ID,
		Name:       s.Name.String(),
		EnrolledAt: s.EnrolledAt,
	}
}

// handleAddStudent appends a student to the roster.
func (s *Server) handleAddStudent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	added, err := s.deps.Roster.Add(r.Context(), req.Name)
	if err != nil {
		writeError(w, domainStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, toStudentResponse(*added))
}

// handleListStudents returns the roster in enrollment order.
func (s *Server) handleListStudents(w http.ResponseWriter, r *http.Request) {
	roster, err := s.deps.Roster.Get(r.Context())
	if err != nil {
		writeError(w, domainStatus(err), err.Error())
		return
	}

	students := make([]studentResponse, 0, len(roster))
	for _, st := range roster {
		students = append(students, toStudentResponse(st))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"students": students,
		"count":    len(students),
	})
}

// handleDeleteStudent removes the student at the given roster position.
// An out-of-range index is an explicit 400, never a silent no-op.
func (s *Server) handleDeleteStudent(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "index must be an integer")
		return
	}

	removed, err := s.deps.Roster.Delete(r.Context(), index)
	if err != nil {
		writeError(w, domainStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"removed": toStudentResponse(*removed),
		"index":   index,
	})
}

// ══════════════════════════════════════════════════════════════════════════════
// PRICING HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// handleQuote applies a discount strategy to a price.
// Strategies are selected by name; adding a strategy means adding a case
// to this lookup, never touching the pricing dispatcher itself.
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	priceRaw := r.URL.Query().Get("price")
	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "price must be a number")
		return
	}

	strategyName := r.URL.Query().Get("strategy")
	if strategyName == "" {
		strategyName = "none"
	}

	var strategy pricing.DiscountStrategy
	switch strategyName {
	case "none":
		strategy = pricing.NoDiscount{}
	case "seasonal":
		strategy = pricing.SeasonalDiscount{}
	case "percent":
		percent := s.deps.DefaultPercent
		if raw := r.URL.Query().Get("percent"); raw != "" {
			percent, err = strconv.ParseFloat(raw, 64)
			if err != nil {
				writeError(w, http.StatusBadRequest, "percent must be a number")
				return
			}
		}
		strategy, err = pricing.NewPercentageDiscount(percent)
		if err != nil {
			writeError(w, domainStatus(err), err.Error())
			return
		}
	default:
		writeError(w, http.StatusBadRequest, "unknown strategy: "+strategyName)
		return
	}

	discounted, err := s.deps.Inventory.ApplyDiscount(pricing.Price(price), strategy)
	if err != nil {
		writeError(w, domainStatus(err), err.Error())
		return
	}

	s.logger.Debug("quote computed",
		logger.Strategy(strategy.Name()),
		logger.PriceIn(price),
		logger.PriceOut(discounted.Float64()),
	)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"price":      price,
		"strategy":   strategy.Name(),
		"discounted": discounted.Float64(),
	})
}

// ══════════════════════════════════════════════════════════════════════════════
// NOTIFICATION HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// handleNotify sends a message through the requested channel variant.
func (s *Server) handleNotify(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Channel   string `json:"channel"`
		Recipient string `json:"recipient"`
		Body      string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ct, err := notification.ParseChannelType(req.Channel)
	if err != nil {
		writeError(w, domainStatus(err), err.Error())
		return
	}

	ch, ok := s.deps.Channels[ct]
	if !ok {
		writeError(w, http.StatusBadRequest, "channel not configured: "+req.Channel)
		return
	}

	msg, err := notification.NewMessage(req.Recipient, req.Body)
	if err != nil {
		writeError(w, domainStatus(err), err.Error())
		return
	}

	result := notification.Notify(r.Context(), ch, msg)
	if !result.Success {
		writeError(w, http.StatusBadGateway, result.Error.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"channel":      result.Channel.String(),
		"delivered_at": result.DeliveredAt,
	})
}

// ══════════════════════════════════════════════════════════════════════════════
// REPORT HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

// handleSummaryReport serves the minimal report. The handler depends only on
// report.Generator; it compiles without GeneratePDF ever existing.
func (s *Server) handleSummaryReport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"report": report.Render(s.deps.Summary),
	})
}

// handleFullReport serves the detailed report as text.
func (s *Server) handleFullReport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"report": report.Render(s.deps.Full),
	})
}

// handleFullReportPDF streams the detailed report's PDF rendition.
func (s *Server) handleFullReportPDF(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/pdf")
	w.WriteHeader(http.StatusOK)

	if err := s.deps.Full.GeneratePDF(w); err != nil {
		s.logger.Error("failed to stream PDF report", logger.Err(err))
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// RECORDER HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// handleRecord is the "click handler": it invokes the Recorder component,
// which knows only the Logger capability.
func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message cannot be empty")
		return
	}

	s.deps.Recorder.Record(req.Message)

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "recorded"})
}
