package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/sentio/internal/common"
	"github.com/ternarybob/sentio/internal/feeds"
	"github.com/ternarybob/sentio/internal/pipeline"
	"github.com/ternarybob/sentio/internal/signals"
)

// AnalyzeRequest is the body of POST /api/analyze. All fields are validated
// with go-playground/validator tags; texts are trimmed before analysis.
type AnalyzeRequest struct {
	Texts []string `json:"texts" validate:"required,min=1,max=50,dive,max=1000"`
}

// AnalyzeResponse is the envelope for analysis results
type AnalyzeResponse struct {
	Count            int                       `json:"count"`
	Results          []pipeline.AnalysisResult `json:"results"`
	ProcessingTimeMs float64                   `json:"processing_time_ms"`
}

// AnalyzeHandler serves the analysis endpoints
type AnalyzeHandler struct {
	pipe     *pipeline.Pipeline
	validate *validator.Validate
	topRisks int
	maxBatch int
	logger   arbor.ILogger
}

// NewAnalyzeHandler creates the analysis handler
func NewAnalyzeHandler(pipe *pipeline.Pipeline, cfg *common.Config) *AnalyzeHandler {
	maxBatch := cfg.Analysis.MaxBatchSize
	if maxBatch <= 0 {
		maxBatch = 50
	}

	return &AnalyzeHandler{
		pipe:     pipe,
		validate: validator.New(),
		topRisks: cfg.Analysis.TopRisks,
		maxBatch: maxBatch,
		logger:   common.GetLogger(),
	}
}

// AnalyzeHandler handles POST /api/analyze - analyze 1-50 headlines
func (h *AnalyzeHandler) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	var request AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(&request); err != nil {
		WriteError(w, http.StatusBadRequest, "texts must contain 1-50 entries of at most 1000 characters")
		return
	}

	if len(request.Texts) > h.maxBatch {
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("texts must contain at most %d entries", h.maxBatch))
		return
	}

	texts := make([]string, 0, len(request.Texts))
	for _, text := range request.Texts {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			WriteError(w, http.StatusBadRequest, "texts must not contain empty entries")
			return
		}
		texts = append(texts, trimmed)
	}

	start := time.Now()
	results, err := h.pipe.AnalyzeTexts(r.Context(), texts)
	if err != nil {
		h.logger.Error().Err(err).Int("texts", len(texts)).Msg("Analysis failed")
		WriteError(w, http.StatusInternalServerError, "Analysis failed")
		return
	}

	WriteJSON(w, http.StatusOK, AnalyzeResponse{
		Count:            len(results),
		Results:          results,
		ProcessingTimeMs: float64(time.Since(start).Microseconds()) / 1000.0,
	})
}

// SampleHandler handles GET /api/sample - run the pipeline on bundled samples
func (h *AnalyzeHandler) SampleHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	start := time.Now()
	results, err := h.pipe.Analyze(r.Context(), feeds.SampleHeadlines())
	if err != nil {
		h.logger.Error().Err(err).Msg("Sample analysis failed")
		WriteError(w, http.StatusInternalServerError, "Analysis failed")
		return
	}

	WriteJSON(w, http.StatusOK, AnalyzeResponse{
		Count:            len(results),
		Results:          results,
		ProcessingTimeMs: float64(time.Since(start).Microseconds()) / 1000.0,
	})
}

// SummaryHandler handles GET /api/summary - rollup statistics over samples
func (h *AnalyzeHandler) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	results, err := h.pipe.Analyze(r.Context(), feeds.SampleHeadlines())
	if err != nil {
		h.logger.Error().Err(err).Msg("Summary analysis failed")
		WriteError(w, http.StatusInternalServerError, "Analysis failed")
		return
	}

	WriteJSON(w, http.StatusOK, signals.Summarize(pipeline.Risks(results), h.topRisks))
}
