package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/fixture-predictor/internal/domain/match"
	"github.com/riskibarqy/fixture-predictor/internal/domain/prediction"
	"github.com/riskibarqy/fixture-predictor/internal/domain/team"
	"github.com/riskibarqy/fixture-predictor/internal/inference"
	matchmock "github.com/riskibarqy/fixture-predictor/internal/mocks/domain/match"
	predictionmock "github.com/riskibarqy/fixture-predictor/internal/mocks/domain/prediction"
	teammock "github.com/riskibarqy/fixture-predictor/internal/mocks/domain/team"
	"github.com/riskibarqy/fixture-predictor/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

type fixedIDGenerator struct {
	id  string
	err error
}

func (g fixedIDGenerator) NewID() (string, error) { return g.id, g.err }

type predictionFixture struct {
	registry    *teammock.Registry
	matches     *matchmock.Repository
	predictions *predictionmock.Repository
	publisher   *predictionmock.Publisher
	service     *PredictionService
}

func newPredictionFixture(t *testing.T) predictionFixture {
	t.Helper()

	f := predictionFixture{
		registry:    teammock.NewRegistry(t),
		matches:     matchmock.NewRepository(t),
		predictions: predictionmock.NewRepository(t),
		publisher:   predictionmock.NewPublisher(t),
	}
	f.service = NewPredictionService(
		NewHistoryResolver(f.registry, f.matches, nil),
		inference.NewHeuristicBank(logging.NewNop()),
		f.registry,
		f.predictions,
		f.publisher,
		fixedIDGenerator{id: "pred-1"},
		logging.NewNop(),
		2,
	)
	f.service.now = func() time.Time { return time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC) }
	return f
}

func TestPredictionService_PredictMatch_UnknownTeamsUseCodeFormula(t *testing.T) {
	t.Parallel()

	f := newPredictionFixture(t)
	f.registry.On("FindByCode", mock.Anything, mock.Anything).Return(team.Team{}, false, nil).Twice()

	got := f.service.PredictMatch(t.Context(), 4, 0)
	if got.Probabilities != prediction.FromCodes(4, 0) {
		t.Fatalf("unexpected probabilities: %+v", got.Probabilities)
	}
	if got == prediction.CatastrophicResult() {
		t.Fatalf("unknown teams must not produce the catastrophic result")
	}
}

func TestPredictionService_PredictMatch_HistoricalPath(t *testing.T) {
	t.Parallel()

	f := newPredictionFixture(t)
	expectTeams(f.registry, teamEmelec, teamBarcelona)
	f.matches.On("FindLatest", mock.Anything, int64(3), int64(1)).Return(match.Record{
		ID: 1, HomeTeamID: 3, AwayTeamID: 1, PlayedAt: time.Now(),
		GoalsHome: 2, GoalsAway: 1, CornersHome: 6, CornersAway: 4,
		YellowHome: 2, YellowAway: 3, RedAway: 1, Outcome: match.OutcomeHome,
	}, true, nil).Once()

	got := f.service.PredictMatch(t.Context(), 4, 0)
	if got.Score != (prediction.Pair{Home: 2, Away: 1}) {
		t.Fatalf("unexpected score: %+v", got.Score)
	}
	if got.RedCards != (prediction.Pair{Home: 0, Away: 1}) {
		t.Fatalf("unexpected red cards: %+v", got.RedCards)
	}
}

func TestPredictionService_PredictWithHistoricalData(t *testing.T) {
	t.Parallel()

	f := newPredictionFixture(t)
	ctxRecord := match.Record{
		ID: 1, HomeTeamID: 3, AwayTeamID: 1,
		GoalsHome: 2, GoalsAway: 1, CornersHome: 6, CornersAway: 4,
		YellowHome: 2, YellowAway: 3, Outcome: match.OutcomeHome,
	}.AsContext()

	t.Run("found context", func(t *testing.T) {
		got, err := f.service.PredictWithHistoricalData(t.Context(), Resolution{
			Status: StatusFound, HomeCode: 4, AwayCode: 0,
			Home: teamEmelec, Away: teamBarcelona, Context: &ctxRecord,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Score != (prediction.Pair{Home: 2, Away: 1}) {
			t.Fatalf("unexpected score: %+v", got.Score)
		}
	})

	for _, status := range []ResolutionStatus{StatusNoHistory, StatusTeamNotFound} {
		t.Run(string(status), func(t *testing.T) {
			_, err := f.service.PredictWithHistoricalData(t.Context(), Resolution{Status: status, HomeCode: 4, AwayCode: 0})
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got=%v", err)
			}
		})
	}
}

func TestPredictionService_PredictMatch_RepositoryErrorIsCatastrophic(t *testing.T) {
	t.Parallel()

	f := newPredictionFixture(t)
	f.registry.On("FindByCode", mock.Anything, 4).Return(team.Team{}, false, errors.New("db down")).Once()

	if got := f.service.PredictMatch(t.Context(), 4, 0); got != prediction.CatastrophicResult() {
		t.Fatalf("expected catastrophic result, got=%+v", got)
	}
}

func TestPredictionService_PredictMatch_RecoversPanic(t *testing.T) {
	t.Parallel()

	service := NewPredictionService(nil, inference.NewHeuristicBank(nil), nil, nil, nil, nil, nil, 0)
	if got := service.PredictMatch(t.Context(), 4, 0); got != prediction.CatastrophicResult() {
		t.Fatalf("expected catastrophic result, got=%+v", got)
	}
}

func TestPredictionService_PredictAndRecord(t *testing.T) {
	t.Parallel()

	t.Run("stores and publishes", func(t *testing.T) {
		f := newPredictionFixture(t)
		f.registry.On("FindByName", mock.Anything, "Emelec").Return(teamEmelec, true, nil).Once()
		f.registry.On("FindByName", mock.Anything, "Barcelona SC").Return(teamBarcelona, true, nil).Once()
		f.registry.On("FindByCode", mock.Anything, mock.Anything).Return(team.Team{}, false, nil).Twice()
		f.predictions.
			On("Create", mock.Anything, mock.MatchedBy(func(r prediction.Record) bool {
				return r.PublicID == "pred-1" && r.HomeTeamID == 3 && r.AwayTeamID == 1 && r.ModelLabel == inference.LabelNoModel
			})).
			Return(func(_ context.Context, r prediction.Record) (prediction.Record, error) {
				r.ID = 7
				return r, nil
			}).
			Once()
		f.publisher.On("PublishPrediction", mock.Anything, mock.MatchedBy(func(r prediction.Record) bool { return r.ID == 7 })).
			Return(errors.New("stream unavailable")).
			Once()

		got, err := f.service.PredictAndRecord(t.Context(), PredictInput{
			HomeName: " Emelec ", AwayName: "Barcelona SC", HomeCode: 4, AwayCode: 0,
		})
		if err != nil {
			t.Fatalf("predict and record: %v", err)
		}
		if got.ID != 7 || got.Result.Probabilities != prediction.FromCodes(4, 0) {
			t.Fatalf("unexpected record: %+v", got)
		}
	})

	t.Run("unknown team name", func(t *testing.T) {
		f := newPredictionFixture(t)
		f.registry.On("FindByName", mock.Anything, "Emelec").Return(teamEmelec, true, nil).Once()
		f.registry.On("FindByName", mock.Anything, "Nowhere FC").Return(team.Team{}, false, nil).Once()

		_, err := f.service.PredictAndRecord(t.Context(), PredictInput{HomeName: "Emelec", AwayName: "Nowhere FC", HomeCode: 4, AwayCode: 0})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("missing names", func(t *testing.T) {
		f := newPredictionFixture(t)
		_, err := f.service.PredictAndRecord(t.Context(), PredictInput{HomeName: "Emelec", HomeCode: 4})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestPredictionService_PredictBatch_KeepsInputOrder(t *testing.T) {
	t.Parallel()

	f := newPredictionFixture(t)
	f.service.publisher = nil
	f.registry.On("FindByName", mock.Anything, "Emelec").Return(teamEmelec, true, nil)
	f.registry.On("FindByName", mock.Anything, "Barcelona SC").Return(teamBarcelona, true, nil)
	f.registry.On("FindByName", mock.Anything, "Nowhere FC").Return(team.Team{}, false, nil)
	f.registry.On("FindByCode", mock.Anything, mock.Anything).Return(team.Team{}, false, nil)
	f.predictions.On("Create", mock.Anything, mock.Anything).
		Return(func(_ context.Context, r prediction.Record) (prediction.Record, error) { return r, nil })

	inputs := []PredictInput{
		{HomeName: "Emelec", AwayName: "Barcelona SC", HomeCode: 4, AwayCode: 0},
		{HomeName: "Nowhere FC", AwayName: "Emelec", HomeCode: 99, AwayCode: 4},
		{HomeName: "Barcelona SC", AwayName: "Emelec", HomeCode: 0, AwayCode: 4},
	}

	got, err := f.service.PredictBatch(t.Context(), inputs)
	if err != nil {
		t.Fatalf("predict batch: %v", err)
	}
	if len(got) != len(inputs) {
		t.Fatalf("unexpected item count: %d", len(got))
	}
	for i, item := range got {
		if item.Input != inputs[i] {
			t.Fatalf("item %d out of order: %+v", i, item.Input)
		}
	}
	if !errors.Is(got[1].Err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown team, got %v", got[1].Err)
	}
	if got[0].Err != nil || got[2].Err != nil {
		t.Fatalf("unexpected errors: %v, %v", got[0].Err, got[2].Err)
	}
	if got[0].Record.Result.Probabilities != prediction.FromCodes(4, 0) {
		t.Fatalf("unexpected probabilities: %+v", got[0].Record.Result.Probabilities)
	}
}

func TestPredictionService_PredictBatch_RejectsEmpty(t *testing.T) {
	t.Parallel()

	f := newPredictionFixture(t)
	if _, err := f.service.PredictBatch(t.Context(), nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
