package stream

import (
	"context"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"

	"github.com/riskibarqy/fixture-predictor/internal/domain/prediction"
)

const DefaultStreamKey = "predictions.created"

type streamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// PredictionPublisher appends stored predictions to a Redis stream.
type PredictionPublisher struct {
	client    streamAdder
	streamKey string
	maxLen    int64
}

func NewPredictionPublisher(client streamAdder, streamKey string, maxLen int64) *PredictionPublisher {
	if streamKey == "" {
		streamKey = DefaultStreamKey
	}
	return &PredictionPublisher{
		client:    client,
		streamKey: streamKey,
		maxLen:    maxLen,
	}
}

type pairPayload struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

type predictionEvent struct {
	PredictionID string      `json:"prediction_id"`
	HomeTeamID   int64       `json:"home_team_id"`
	AwayTeamID   int64       `json:"away_team_id"`
	HomeWin      float64     `json:"home_win"`
	Draw         float64     `json:"draw"`
	AwayWin      float64     `json:"away_win"`
	Score        pairPayload `json:"score"`
	Corners      pairPayload `json:"corners"`
	YellowCards  pairPayload `json:"yellow_cards"`
	RedCards     pairPayload `json:"red_cards"`
	ModelLabel   string      `json:"model_label"`
	CreatedAt    time.Time   `json:"created_at"`
}

func (p *PredictionPublisher) PublishPrediction(ctx context.Context, record prediction.Record) error {
	res := record.Result
	data, err := sonic.Marshal(predictionEvent{
		PredictionID: record.PublicID,
		HomeTeamID:   record.HomeTeamID,
		AwayTeamID:   record.AwayTeamID,
		HomeWin:      res.HomeWin,
		Draw:         res.Draw,
		AwayWin:      res.AwayWin,
		Score:        pairPayload(res.Score),
		Corners:      pairPayload(res.Corners),
		YellowCards:  pairPayload(res.YellowCards),
		RedCards:     pairPayload(res.RedCards),
		ModelLabel:   record.ModelLabel,
		CreatedAt:    record.CreatedAt,
	})
	if err != nil {
		return crerr.Wrap(err, "marshal prediction event")
	}

	args := &redis.XAddArgs{
		Stream: p.streamKey,
		Values: map[string]any{
			"data":          string(data),
			"prediction_id": record.PublicID,
			"home_team_id":  strconv.FormatInt(record.HomeTeamID, 10),
			"away_team_id":  strconv.FormatInt(record.AwayTeamID, 10),
		},
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}

	if err := p.client.XAdd(ctx, args).Err(); err != nil {
		return crerr.Wrapf(err, "xadd %s", p.streamKey)
	}
	return nil
}
