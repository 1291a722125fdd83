package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fixture-predictor/internal/platform/logging"
	"github.com/riskibarqy/fixture-predictor/internal/usecase"
)

type Handler struct {
	teamService       *usecase.TeamService
	matchService      *usecase.MatchService
	predictionService *usecase.PredictionService
	statsService      *usecase.StatsService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	matchService *usecase.MatchService,
	predictionService *usecase.PredictionService,
	statsService *usecase.StatsService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:       teamService,
		matchService:      matchService,
		predictionService: predictionService,
		statsService:      statsService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// fail writes err to the client and logs anything that maps to a 5xx.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, err error) {
	if mapError(err).HTTPStatus >= http.StatusInternalServerError {
		recordSpanError(ctx, err)
		h.logger.ErrorContext(ctx, "request failed", "error", err)
	}
	writeError(ctx, w, err)
}

// decodeRequest reads a strict JSON body into dst and validates it.
func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

func queryLimit(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: limit must be positive integer", usecase.ErrInvalidInput)
	}
	return v, nil
}

func queryTeamCode(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", usecase.ErrInvalidInput, key)
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", usecase.ErrInvalidInput, key)
	}
	return v, nil
}
