package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fixture-predictor/internal/usecase"
)

func (h *Handler) CreatePrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "CreatePrediction")
	defer span.End()

	var req predictionRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		h.fail(ctx, w, err)
		return
	}

	record, err := h.predictionService.PredictAndRecord(ctx, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "create prediction failed",
			"home_team", req.HomeTeam,
			"away_team", req.AwayTeam,
			"error", err,
		)
		h.fail(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, predictionToDTO(record))
}

func (h *Handler) CreatePredictionBatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "CreatePredictionBatch")
	defer span.End()

	var req predictionBatchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		h.fail(ctx, w, err)
		return
	}

	inputs := make([]usecase.PredictInput, 0, len(req.Predictions))
	for _, item := range req.Predictions {
		inputs = append(inputs, item.toInput())
	}

	results, err := h.predictionService.PredictBatch(ctx, inputs)
	if err != nil {
		h.logger.WarnContext(ctx, "batch prediction failed", "size", len(inputs), "error", err)
		h.fail(ctx, w, err)
		return
	}

	items := make([]batchItemDTO, 0, len(results))
	for i, result := range results {
		item := batchItemDTO{Index: i}
		if result.Err != nil {
			mapped := mapError(result.Err)
			item.Error, item.Reason = result.Err.Error(), mapped.Reason
			if mapped == internalError {
				h.logger.ErrorContext(ctx, "batch item failed", "index", i, "error", result.Err)
				item.Error = "internal server error"
			}
		} else {
			dto := predictionToDTO(result.Record)
			item.Prediction = &dto
		}
		items = append(items, item)
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

// PreviewPrediction runs the pipeline for a pair of team codes without
// recording anything.
func (h *Handler) PreviewPrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "PreviewPrediction")
	defer span.End()

	homeCode, err := queryTeamCode(r, "homeCode")
	if err != nil {
		h.fail(ctx, w, err)
		return
	}
	awayCode, err := queryTeamCode(r, "awayCode")
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	result := h.predictionService.PredictMatch(ctx, homeCode, awayCode)
	writeSuccess(ctx, w, http.StatusOK, resultToDTO(result))
}

func (h *Handler) ListPredictions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListPredictions")
	defer span.End()

	limit, err := queryLimit(r)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	records, err := h.predictionService.ListRecent(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list predictions failed", "limit", limit, "error", err)
		h.fail(ctx, w, err)
		return
	}

	items := make([]predictionDTO, 0, len(records))
	for _, p := range records {
		items = append(items, predictionToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListModels(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListModels")
	defer span.End()

	label, roles := h.predictionService.ModelStatus()
	writeSuccess(ctx, w, http.StatusOK, modelsToDTO(label, roles))
}
