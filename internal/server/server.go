package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/iwvelando/energy-estimate/internal/config"
	"github.com/iwvelando/energy-estimate/internal/estimate"
	"github.com/iwvelando/energy-estimate/internal/seasonal"
	"github.com/iwvelando/energy-estimate/pkg/chart"
	"github.com/iwvelando/energy-estimate/pkg/constants"
	"github.com/iwvelando/energy-estimate/pkg/mathutil"
	"github.com/iwvelando/energy-estimate/pkg/output"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the web UI and estimate API.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxBodySize: maxBodySize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Estimate API endpoint
	mux.HandleFunc("/api/estimate", h.handleEstimate)

	// Bracket tables for the UI to display domain bounds
	mux.HandleFunc("/api/brackets", h.handleBrackets)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	fileServer := http.FileServer(http.FS(sub))
	mux.Handle("/", fileServer)

	return mux
}

type estimateRequest struct {
	Year         int      `json:"year"`
	SquareFeet   int      `json:"squareFeet"`
	RegionScalar *float64 `json:"regionScalar,omitempty"`
}

type estimateResponse struct {
	Annual        float64   `json:"annual"`
	Monthly       float64   `json:"monthly"`
	AnnualLow     float64   `json:"annualLow"`
	AnnualHigh    float64   `json:"annualHigh"`
	MonthlyLow    float64   `json:"monthlyLow"`
	MonthlyHigh   float64   `json:"monthlyHigh"`
	YearBracket   string    `json:"yearBracket"`
	AreaBracket   string    `json:"areaBracket"`
	RegionScalar  float64   `json:"regionScalar"`
	Months        []string  `json:"months"`
	MonthlySeries []float64 `json:"monthlySeries"`
	AxisTitle     string    `json:"axisTitle"`
	CSV           string    `json:"csv"`
	Warnings      []string  `json:"warnings,omitempty"`
	Duration      string    `json:"duration"`
}

type bracketEntry struct {
	Label    string   `json:"label"`
	Lower    *float64 `json:"lower,omitempty"`
	Upper    *float64 `json:"upper,omitempty"`
	UnitCost float64  `json:"unitCost"`
	RSE      float64  `json:"rse"`
}

type bracketsResponse struct {
	Year              []bracketEntry `json:"year"`
	Area              []bracketEntry `json:"area"`
	ReferenceUnitCost float64        `json:"referenceUnitCost"`
}

func (h *handler) handleEstimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}

	var req estimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), "server.handleEstimate")
			return
		}
		// Non-numeric year or area surfaces here as a decode failure; the
		// client renders it as an input validation message.
		h.respondError(w, http.StatusBadRequest,
			fmt.Sprintf("invalid request: %v", err), "server.handleEstimate")
		return
	}

	cfg := config.Configuration{}
	if req.RegionScalar != nil {
		cfg.Estimate.RegionScalar = *req.RegionScalar
	}
	warnings := cfg.NormalizeRegionScalar()

	result, err := estimate.Compute(h.logger, req.Year, req.SquareFeet, cfg.Estimate.RegionScalar)
	if err != nil {
		if errors.Is(err, estimate.ErrUnresolvableInput) {
			h.respondError(w, http.StatusUnprocessableEntity,
				"insufficient or invalid input: year or floor area is outside the estimable range", "server.handleEstimate")
			return
		}
		h.respondError(w, http.StatusInternalServerError,
			fmt.Sprintf("failed to compute estimate: %v", err), "server.handleEstimate")
		return
	}

	series, err := chart.MonthlySeries(seasonal.Decompose(result.Monthly))
	if err != nil {
		h.respondError(w, http.StatusInternalServerError,
			fmt.Sprintf("failed to build chart series: %v", err), "server.handleEstimate")
		return
	}

	elapsed := time.Since(start)

	response := estimateResponse{
		Annual:        mathutil.Round(result.Annual),
		Monthly:       mathutil.Round(result.Monthly),
		AnnualLow:     mathutil.Round(result.AnnualLow),
		AnnualHigh:    mathutil.Round(result.AnnualHigh),
		MonthlyLow:    mathutil.Round(result.MonthlyLow),
		MonthlyHigh:   mathutil.Round(result.MonthlyHigh),
		YearBracket:   result.YearBracket.Label,
		AreaBracket:   result.AreaBracket.Label,
		RegionScalar:  cfg.Estimate.RegionScalar,
		Months:        series.Labels,
		MonthlySeries: series.Values,
		AxisTitle:     series.AxisTitle,
		CSV:           output.CsvString(output.Report{Result: result, Series: series}),
		Warnings:      warnings,
		Duration:      elapsed.String(),
	}

	h.logger.Info("estimate computed",
		zap.String("op", "server.handleEstimate"),
		zap.Int("year", req.Year),
		zap.Int("squareFeet", req.SquareFeet),
		zap.Float64("regionScalar", cfg.Estimate.RegionScalar),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleBrackets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	response := bracketsResponse{
		Year:              toBracketEntries(estimate.YearBrackets),
		Area:              toBracketEntries(estimate.AreaBrackets),
		ReferenceUnitCost: estimate.ReferenceUnitCost,
	}
	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func toBracketEntries(set estimate.BracketSet) []bracketEntry {
	entries := make([]bracketEntry, 0, len(set))
	for _, bracket := range set {
		entries = append(entries, bracketEntry{
			Label:    bracket.Label,
			Lower:    bracket.Lower,
			Upper:    bracket.Upper,
			UnitCost: bracket.UnitCost,
			RSE:      bracket.RSE,
		})
	}
	return entries
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("estimate request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
