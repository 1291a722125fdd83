package inference

import (
	"strings"

	"github.com/riskibarqy/fixture-predictor/internal/platform/logging"
)

// Role names, also used as model labels.
const (
	RoleCorners  = "corners"
	RoleYellow   = "yellow_cards"
	RoleRedHome  = "red_cards_home"
	RoleRedAway  = "red_cards_away"
	RoleScore    = "score"
	LabelNoModel = "heuristic"
)

// Roles is the set of optional model handles backing each dimension.
type Roles struct {
	Corners Slot[CornersHandle]
	Yellow  Slot[Regressor]
	RedHome Slot[RedCardHandle]
	RedAway Slot[RedCardHandle]
	Score   Slot[Regressor]
}

// RoleStatus reports whether a role is backed by a loaded model.
type RoleStatus struct {
	Role   string
	Loaded bool
}

// Bank is built once at start-up and is read-only afterwards. Loaded
// handles must tolerate concurrent Predict calls.
type Bank struct {
	roles     Roles
	assembler Assembler
	logger    *logging.Logger
}

func NewBank(roles Roles, logger *logging.Logger) *Bank {
	if logger == nil {
		logger = logging.Default()
	}
	return &Bank{
		roles:  roles,
		logger: logger,
	}
}

// NewHeuristicBank returns a bank with every role unavailable.
func NewHeuristicBank(logger *logging.Logger) *Bank {
	return NewBank(Roles{}, logger)
}

func (b *Bank) Status() []RoleStatus {
	return []RoleStatus{
		{Role: RoleCorners, Loaded: b.roles.Corners.IsLoaded()},
		{Role: RoleYellow, Loaded: b.roles.Yellow.IsLoaded()},
		{Role: RoleRedHome, Loaded: b.roles.RedHome.IsLoaded()},
		{Role: RoleRedAway, Loaded: b.roles.RedAway.IsLoaded()},
		{Role: RoleScore, Loaded: b.roles.Score.IsLoaded()},
	}
}

// Label names the loaded roles, e.g. "models:corners+score".
func (b *Bank) Label() string {
	loaded := make([]string, 0, 5)
	for _, s := range b.Status() {
		if s.Loaded {
			loaded = append(loaded, s.Role)
		}
	}
	if len(loaded) == 0 {
		return LabelNoModel
	}
	return "models:" + strings.Join(loaded, "+")
}

func (b *Bank) logFallback(role string, fx Fixture, err error) {
	if err == nil {
		b.logger.Debug("model role unavailable, using heuristic",
			"role", role,
			"home_code", fx.HomeCode,
			"away_code", fx.AwayCode,
		)
		return
	}
	b.logger.Warn("model inference failed, using heuristic",
		"role", role,
		"home_code", fx.HomeCode,
		"away_code", fx.AwayCode,
		"error", err,
	)
}
