package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/fixture-predictor/internal/domain/prediction"
	"github.com/riskibarqy/fixture-predictor/internal/domain/team"
	"github.com/riskibarqy/fixture-predictor/internal/inference"
	idgen "github.com/riskibarqy/fixture-predictor/internal/platform/id"
	"github.com/riskibarqy/fixture-predictor/internal/platform/logging"
)

const (
	DefaultRecentPredictionsLimit = 50
	defaultBatchWorkers           = 4
	maxBatchSize                  = 100
)

type PredictInput struct {
	HomeName string
	AwayName string
	HomeCode int
	AwayCode int
}

// BatchItem is one entry of a batch prediction. Err is set when the
// request itself was invalid; the prediction still never fails.
type BatchItem struct {
	Input  PredictInput
	Record prediction.Record
	Err    error
}

type PredictionService struct {
	resolver     *HistoryResolver
	bank         *inference.Bank
	teams        team.Registry
	predictions  prediction.Repository
	publisher    prediction.Publisher
	idGen        idgen.Generator
	logger       *logging.Logger
	batchWorkers int
	now          func() time.Time
}

// NewPredictionService wires the prediction pipeline. publisher may be nil.
func NewPredictionService(
	resolver *HistoryResolver,
	bank *inference.Bank,
	teams team.Registry,
	predictions prediction.Repository,
	publisher prediction.Publisher,
	idGen idgen.Generator,
	logger *logging.Logger,
	batchWorkers int,
) *PredictionService {
	if logger == nil {
		logger = logging.Default()
	}
	if batchWorkers <= 0 {
		batchWorkers = defaultBatchWorkers
	}
	return &PredictionService{
		resolver:     resolver,
		bank:         bank,
		teams:        teams,
		predictions:  predictions,
		publisher:    publisher,
		idGen:        idGen,
		logger:       logger,
		batchWorkers: batchWorkers,
		now:          time.Now,
	}
}

// PredictMatch never fails: unknown teams and missing history degrade to
// the deterministic no-history result, anything else to the catastrophic
// constant.
func (s *PredictionService) PredictMatch(ctx context.Context, homeCode, awayCode int) (result prediction.Result) {
	ctx, span := startSpan(ctx, "PredictionService.PredictMatch", pairAttrs(homeCode, awayCode)...)
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "prediction pipeline panicked, returning default result",
				"home_code", homeCode,
				"away_code", awayCode,
				"panic", fmt.Sprint(r),
			)
			result = prediction.CatastrophicResult()
		}
	}()

	resolution, err := s.resolver.Resolve(ctx, homeCode, awayCode)
	if err != nil {
		s.logger.ErrorContext(ctx, "resolve fixture history failed, returning default result",
			"home_code", homeCode,
			"away_code", awayCode,
			"error", err,
		)
		return prediction.CatastrophicResult()
	}

	return s.predictResolved(ctx, resolution)
}

// PredictWithHistoricalData runs the historical path for a fixture whose
// head-to-head record was found. Other resolutions are rejected.
func (s *PredictionService) PredictWithHistoricalData(ctx context.Context, resolution Resolution) (prediction.Result, error) {
	if resolution.Status != StatusFound || resolution.Context == nil {
		return prediction.Result{}, fmt.Errorf("%w: fixture %d-%d has no head-to-head context (status=%s)",
			ErrInvalidInput, resolution.HomeCode, resolution.AwayCode, resolution.Status)
	}

	_, span := startSpan(ctx, "PredictionService.PredictWithHistoricalData", pairAttrs(resolution.HomeCode, resolution.AwayCode)...)
	defer span.End()

	return s.bank.PredictWithHistoricalData(resolution.Fixture()), nil
}

func (s *PredictionService) predictResolved(ctx context.Context, resolution Resolution) prediction.Result {
	if resolution.Status != StatusFound || resolution.Context == nil {
		s.logger.DebugContext(ctx, "no head-to-head history, using code-derived prediction",
			"home_code", resolution.HomeCode,
			"away_code", resolution.AwayCode,
			"status", string(resolution.Status),
		)
		return s.bank.PredictWithoutHistory(resolution.HomeCode, resolution.AwayCode)
	}

	return s.bank.PredictWithHistoricalData(resolution.Fixture())
}

// PredictAndRecord validates the named teams, predicts by code and stores
// the result. Publishing is best effort.
func (s *PredictionService) PredictAndRecord(ctx context.Context, input PredictInput) (prediction.Record, error) {
	ctx, span := startSpan(ctx, "PredictionService.PredictAndRecord")
	defer span.End()

	input.HomeName = strings.TrimSpace(input.HomeName)
	input.AwayName = strings.TrimSpace(input.AwayName)
	if input.HomeName == "" || input.AwayName == "" {
		return prediction.Record{}, fmt.Errorf("%w: home and away team names are required", ErrInvalidInput)
	}
	if input.HomeCode < 0 || input.AwayCode < 0 {
		return prediction.Record{}, fmt.Errorf("%w: team codes must be >= 0", ErrInvalidInput)
	}

	home, err := s.teamByName(ctx, input.HomeName)
	if err != nil {
		return prediction.Record{}, err
	}
	away, err := s.teamByName(ctx, input.AwayName)
	if err != nil {
		return prediction.Record{}, err
	}

	result := s.PredictMatch(ctx, input.HomeCode, input.AwayCode)

	publicID, err := s.idGen.NewID()
	if err != nil {
		return prediction.Record{}, fmt.Errorf("generate prediction id: %w", err)
	}

	record := prediction.Record{
		PublicID:   publicID,
		HomeTeamID: home.ID,
		AwayTeamID: away.ID,
		Result:     result,
		ModelLabel: s.bank.Label(),
		CreatedAt:  s.now().UTC(),
	}
	if err := record.Validate(); err != nil {
		return prediction.Record{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	stored, err := s.predictions.Create(ctx, record)
	if err != nil {
		return prediction.Record{}, fmt.Errorf("store prediction: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishPrediction(ctx, stored); err != nil {
			s.logger.WarnContext(ctx, "publish prediction failed",
				"prediction_id", stored.PublicID,
				"error", err,
			)
		}
	}

	return stored, nil
}

func (s *PredictionService) teamByName(ctx context.Context, name string) (team.Team, error) {
	item, found, err := s.teams.FindByName(ctx, name)
	if err != nil {
		return team.Team{}, fmt.Errorf("find team name=%s: %w", name, err)
	}
	if !found {
		return team.Team{}, fmt.Errorf("%w %q", ErrUnknownTeam, name)
	}
	return item, nil
}

// PredictBatch runs PredictAndRecord for every input on a worker pool.
// Items are returned in input order.
func (s *PredictionService) PredictBatch(ctx context.Context, inputs []PredictInput) ([]BatchItem, error) {
	ctx, span := startSpan(ctx, "PredictionService.PredictBatch")
	defer span.End()

	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: at least one prediction is required", ErrInvalidInput)
	}
	if len(inputs) > maxBatchSize {
		return nil, fmt.Errorf("%w: at most %d predictions per batch", ErrInvalidInput, maxBatchSize)
	}

	pool, err := ants.NewPool(min(s.batchWorkers, len(inputs)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	items := make([]BatchItem, len(inputs))
	var workers sync.WaitGroup
	for i, input := range inputs {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			record, err := s.PredictAndRecord(ctx, input)
			items[i] = BatchItem{Input: input, Record: record, Err: err}
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit prediction to worker pool: %w", err)
		}
	}
	workers.Wait()

	return items, nil
}

func (s *PredictionService) ListRecent(ctx context.Context, limit int) ([]prediction.Record, error) {
	ctx, span := startSpan(ctx, "PredictionService.ListRecent")
	defer span.End()

	if limit <= 0 || limit > DefaultRecentPredictionsLimit {
		limit = DefaultRecentPredictionsLimit
	}

	items, err := s.predictions.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent predictions: %w", err)
	}
	return items, nil
}

// ModelStatus reports which model roles are loaded.
func (s *PredictionService) ModelStatus() (string, []inference.RoleStatus) {
	return s.bank.Label(), s.bank.Status()
}
