package modelstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/fixture-predictor/internal/inference"
	"github.com/riskibarqy/fixture-predictor/internal/platform/logging"
)

const defaultLoadWorkers = 4

// ArtifactStatus reports how one artifact file was resolved.
type ArtifactStatus struct {
	Name   string
	Path   string
	Loaded bool
	Err    error
}

// Options configures Load.
type Options struct {
	Dir      string
	Manifest Manifest
	Workers  int
	Logger   *logging.Logger
}

// Load reads every artifact named in the manifest concurrently and builds
// the model bank. A missing or invalid artifact leaves its role
// unavailable; Load itself only fails on a cancelled context.
func Load(ctx context.Context, opts Options) (*inference.Bank, []ArtifactStatus, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultLoadWorkers
	}

	m := opts.Manifest
	names := []string{
		m.Corners, m.CornersScaler, m.Yellow,
		m.RedHomeClassifier, m.RedHomeRegressor,
		m.RedAwayClassifier, m.RedAwayRegressor,
		m.Score,
	}

	docs := make([]*document, len(names))
	statuses := make([]ArtifactStatus, len(names))

	p := pool.New().WithMaxGoroutines(workers)
	for i, name := range names {
		p.Go(func() {
			status := ArtifactStatus{Name: name}
			defer func() { statuses[i] = status }()

			if strings.TrimSpace(name) == "" {
				return
			}
			if err := ctx.Err(); err != nil {
				status.Err = err
				return
			}

			status.Path = filepath.Join(opts.Dir, name)
			doc, err := readDocument(status.Path)
			if err != nil {
				status.Err = err
				return
			}
			docs[i] = &doc
			status.Loaded = true
		})
	}
	p.Wait()

	if err := ctx.Err(); err != nil {
		return nil, statuses, crerr.Wrap(err, "load model artifacts")
	}

	for _, status := range statuses {
		switch {
		case status.Loaded || status.Name == "":
		case os.IsNotExist(status.Err):
			logger.InfoContext(ctx, "model artifact not found, role will use heuristics", "artifact", status.Name)
		default:
			logger.WarnContext(ctx, "model artifact could not be read", "artifact", status.Name, "error", status.Err)
		}
	}

	b := builder{docs: docs, statuses: statuses, logger: logger, ctx: ctx}
	roles := inference.Roles{
		Corners: b.corners(0, 1),
		Yellow:  b.regressor(inference.RoleYellow, 2),
		RedHome: b.redCard(inference.RoleRedHome, 3, 4),
		RedAway: b.redCard(inference.RoleRedAway, 5, 6),
		Score:   b.regressor(inference.RoleScore, 7),
	}

	bank := inference.NewBank(roles, logger)
	logger.InfoContext(ctx, "model bank ready", "dir", opts.Dir, "label", bank.Label())
	return bank, b.statuses, nil
}

type builder struct {
	ctx      context.Context
	docs     []*document
	statuses []ArtifactStatus
	logger   *logging.Logger
}

func (b builder) reject(role string, idx int, err error) {
	b.statuses[idx].Loaded = false
	b.statuses[idx].Err = err
	b.logger.WarnContext(b.ctx, "model artifact rejected, role will use heuristics",
		"role", role,
		"artifact", b.statuses[idx].Name,
		"error", err,
	)
}

func (b builder) regressor(role string, idx int) inference.Slot[inference.Regressor] {
	if b.docs[idx] == nil {
		return inference.Unavailable[inference.Regressor]()
	}
	model, err := b.docs[idx].regressor()
	if err != nil {
		b.reject(role, idx, err)
		return inference.Unavailable[inference.Regressor]()
	}
	return inference.Loaded(model)
}

func (b builder) corners(modelIdx, scalerIdx int) inference.Slot[inference.CornersHandle] {
	if b.docs[modelIdx] == nil || b.docs[scalerIdx] == nil {
		return inference.Unavailable[inference.CornersHandle]()
	}

	model, err := b.docs[modelIdx].regressor()
	if err != nil {
		b.reject(inference.RoleCorners, modelIdx, err)
		return inference.Unavailable[inference.CornersHandle]()
	}
	scaler, err := b.docs[scalerIdx].scaler()
	if err != nil {
		b.reject(inference.RoleCorners, scalerIdx, err)
		return inference.Unavailable[inference.CornersHandle]()
	}

	return inference.Loaded(inference.CornersHandle{Model: model, Scaler: scaler})
}

func (b builder) redCard(role string, classifierIdx, regressorIdx int) inference.Slot[inference.RedCardHandle] {
	if b.docs[classifierIdx] == nil || b.docs[regressorIdx] == nil {
		return inference.Unavailable[inference.RedCardHandle]()
	}

	classifier, err := b.docs[classifierIdx].classifier()
	if err != nil {
		b.reject(role, classifierIdx, err)
		return inference.Unavailable[inference.RedCardHandle]()
	}
	regressor, err := b.docs[regressorIdx].regressor()
	if err != nil {
		b.reject(role, regressorIdx, err)
		return inference.Unavailable[inference.RedCardHandle]()
	}

	return inference.Loaded(inference.RedCardHandle{Classifier: classifier, Regressor: regressor})
}
