package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"trend-system/internal/middleware"
	"trend-system/internal/services/llm"
	"trend-system/internal/services/trends"
	"trend-system/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// TrendsHandler serves the trend analysis form and its results
type TrendsHandler struct {
	service  *trends.Service
	guard    session.Guard
	validate *validator.Validate
}

func NewTrendsHandler(service *trends.Service, guard session.Guard) *TrendsHandler {
	return &TrendsHandler{
		service:  service,
		guard:    guard,
		validate: newValidator(),
	}
}

// RegisterRoutes registers all trend routes
func (h *TrendsHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/trends", func(r chi.Router) {
		r.Get("/platforms", h.Platforms)
		r.Get("/schema", h.Schema)
		r.Post("/analyze", h.Analyze)
	})
}

// Platforms returns the platform catalog and form defaults
func (h *TrendsHandler) Platforms(w http.ResponseWriter, r *http.Request) {
	sel := trends.NewSelection()
	writeJSON(w, http.StatusOK, PlatformsResponse{
		Platforms:    sel.Platforms,
		Topic:        sel.Topic,
		OutputFormat: sel.OutputFormat,
	})
}

// Schema returns the structured-output schema sent for an output format
func (h *TrendsHandler) Schema(w http.ResponseWriter, r *http.Request) {
	format := trends.FormatPerPlatform
	if v := r.URL.Query().Get("output_format"); v != "" {
		format = trends.OutputFormat(v)
	}
	if !format.Valid() {
		writeError(w, http.StatusBadRequest, ErrCodeValidation, "output_format must be one of: aggregated per-platform")
		return
	}

	writeJSON(w, http.StatusOK, llm.JSONSchema(trends.BuildSchema(format)))
}

// Analyze runs one trend analysis for the submitted form
func (h *TrendsHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var body AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeValidation, "invalid request body")
		return
	}
	if err := h.validate.Struct(body); err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeValidation, validationMessage(err))
		return
	}

	sel, err := toSelection(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeValidation, err.Error())
		return
	}

	req, err := trends.Normalize(sel)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrCodeNoPlatformSelected, trends.NoPlatformSelectedMessage)
		return
	}

	// The query runs to completion even if the client goes away.
	ctx := context.WithoutCancel(r.Context())

	var analysis *trends.Analysis
	err = session.Run(ctx, h.guard, middleware.GetSessionID(r.Context()), func() error {
		var err error
		analysis, err = h.service.Analyze(ctx, req)
		return err
	})

	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, AnalyzeResponse{
			OutputFormat: req.OutputFormat,
			Result:       analysis.Result,
			NoData:       analysis.NoData,
			Advisory:     analysis.Advisory,
		})
	case errors.Is(err, session.ErrBusy):
		writeError(w, http.StatusConflict, ErrCodeInProgress, err.Error())
	case errors.Is(err, trends.ErrNoPlatformSelected):
		writeError(w, http.StatusBadRequest, ErrCodeNoPlatformSelected, trends.NoPlatformSelectedMessage)
	case errors.Is(err, trends.ErrAnalysisFailed):
		writeError(w, http.StatusBadGateway, ErrCodeAnalysisFailed, err.Error())
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Analysis request failed")
		writeError(w, http.StatusInternalServerError, ErrCodeInternal, "Internal server error")
	}
}

// toSelection maps submitted platform keys onto the catalog toggles.
func toSelection(body AnalyzeRequest) (trends.Selection, error) {
	sel := trends.NewSelection()
	for i := range sel.Platforms {
		sel.Platforms[i].Selected = false
	}

	for _, key := range body.Platforms {
		p, ok := trends.LookupPlatform(key)
		if !ok {
			return trends.Selection{}, fmt.Errorf("unknown platform %q", key)
		}
		for i := range sel.Platforms {
			if sel.Platforms[i].ID == p.ID {
				sel.Platforms[i].Selected = true
			}
		}
	}

	sel.Topic = body.Topic
	sel.Month = body.Month
	sel.Day = body.Day
	if body.OutputFormat != "" {
		sel.OutputFormat = trends.OutputFormat(body.OutputFormat)
	}
	return sel, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, NewErrorResponse(code, message))
}
