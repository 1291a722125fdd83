package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/fixture-predictor/internal/usecase"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListTeams")
	defer span.End()

	teams, err := h.teamService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		h.fail(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListMatches")
	defer span.End()

	limit, err := queryLimit(r)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	records, err := h.matchService.ListRecent(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "limit", limit, "error", err)
		h.fail(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(records))
	for _, m := range records {
		items = append(items, matchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "CreateMatch")
	defer span.End()

	var req createMatchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		h.fail(ctx, w, err)
		return
	}

	playedAt, err := parsePlayedAt(req.PlayedAt)
	if err != nil {
		h.fail(ctx, w, err)
		return
	}

	created, err := h.matchService.Create(ctx, usecase.CreateMatchInput{
		HomeCode:    *req.HomeCode,
		AwayCode:    *req.AwayCode,
		PlayedAt:    playedAt,
		GoalsHome:   req.GoalsHome,
		GoalsAway:   req.GoalsAway,
		CornersHome: req.CornersHome,
		CornersAway: req.CornersAway,
		YellowHome:  req.YellowHome,
		YellowAway:  req.YellowAway,
		RedHome:     req.RedHome,
		RedAway:     req.RedAway,
		Outcome:     req.Outcome,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed",
			"home_code", *req.HomeCode,
			"away_code", *req.AwayCode,
			"error", err,
		)
		h.fail(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(created))
}

// parsePlayedAt accepts a calendar date or an RFC 3339 timestamp. Empty
// means now.
func parsePlayedAt(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: playedAt must be YYYY-MM-DD or RFC 3339", usecase.ErrInvalidInput)
	}
	return t, nil
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetStats")
	defer span.End()

	summary, err := h.statsService.Summary(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get stats failed", "error", err)
		h.fail(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statsToDTO(summary))
}
