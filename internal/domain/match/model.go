package match

import (
	"fmt"
	"strings"
	"time"
)

// Outcome labels a finished match from the home side's point of view.
type Outcome string

const (
	OutcomeHome Outcome = "L"
	OutcomeDraw Outcome = "E"
	OutcomeAway Outcome = "V"
)

func ParseOutcome(value string) (Outcome, error) {
	switch Outcome(strings.ToUpper(strings.TrimSpace(value))) {
	case OutcomeHome:
		return OutcomeHome, nil
	case OutcomeDraw:
		return OutcomeDraw, nil
	case OutcomeAway:
		return OutcomeAway, nil
	default:
		return "", fmt.Errorf("invalid outcome %q: valid values are L, E, V", value)
	}
}

// Invert maps the label onto the opposite orientation. Draws are unchanged.
func (o Outcome) Invert() Outcome {
	switch o {
	case OutcomeHome:
		return OutcomeAway
	case OutcomeAway:
		return OutcomeHome
	default:
		return o
	}
}

// OutcomeFromGoals derives the label from a final score.
func OutcomeFromGoals(home, away int) Outcome {
	switch {
	case home > away:
		return OutcomeHome
	case home < away:
		return OutcomeAway
	default:
		return OutcomeDraw
	}
}

// Record is a stored match. Home and away roles are fixed when the record
// is created and are not interchangeable.
type Record struct {
	ID          int64
	HomeTeamID  int64
	AwayTeamID  int64
	PlayedAt    time.Time
	GoalsHome   int
	GoalsAway   int
	CornersHome int
	CornersAway int
	YellowHome  int
	YellowAway  int
	RedHome     int
	RedAway     int
	Outcome     Outcome
	CreatedAt   time.Time
}

func (r Record) Validate() error {
	if r.HomeTeamID <= 0 || r.AwayTeamID <= 0 {
		return fmt.Errorf("home and away team ids are required")
	}
	if r.HomeTeamID == r.AwayTeamID {
		return fmt.Errorf("home and away team must differ")
	}
	if r.PlayedAt.IsZero() {
		return fmt.Errorf("match date is required")
	}
	for _, v := range []int{
		r.GoalsHome, r.GoalsAway,
		r.CornersHome, r.CornersAway,
		r.YellowHome, r.YellowAway,
		r.RedHome, r.RedAway,
	} {
		if v < 0 {
			return fmt.Errorf("match counters must be >= 0")
		}
	}
	if _, err := ParseOutcome(string(r.Outcome)); err != nil {
		return err
	}

	return nil
}

// Context is the head-to-head record seen from the requested fixture's
// orientation.
type Context struct {
	MatchID     int64
	PlayedAt    time.Time
	GoalsHome   int
	GoalsAway   int
	CornersHome int
	CornersAway int
	YellowHome  int
	YellowAway  int
	RedHome     int
	RedAway     int
	Outcome     Outcome
	Reversed    bool
}

// AsContext returns the record as-is for a fixture with the same orientation.
func (r Record) AsContext() Context {
	return Context{
		MatchID:     r.ID,
		PlayedAt:    r.PlayedAt,
		GoalsHome:   r.GoalsHome,
		GoalsAway:   r.GoalsAway,
		CornersHome: r.CornersHome,
		CornersAway: r.CornersAway,
		YellowHome:  r.YellowHome,
		YellowAway:  r.YellowAway,
		RedHome:     r.RedHome,
		RedAway:     r.RedAway,
		Outcome:     r.Outcome,
	}
}

// Reversed returns the record seen from the opposite orientation: every
// home/away field is swapped and the outcome label is inverted.
func (r Record) Reversed() Context {
	return Context{
		MatchID:     r.ID,
		PlayedAt:    r.PlayedAt,
		GoalsHome:   r.GoalsAway,
		GoalsAway:   r.GoalsHome,
		CornersHome: r.CornersAway,
		CornersAway: r.CornersHome,
		YellowHome:  r.YellowAway,
		YellowAway:  r.YellowHome,
		RedHome:     r.RedAway,
		RedAway:     r.RedHome,
		Outcome:     r.Outcome.Invert(),
		Reversed:    true,
	}
}

// OutcomeCounts tallies stored records by label.
type OutcomeCounts struct {
	Total      int
	WithResult int
	HomeWins   int
	Draws      int
	AwayWins   int
}
