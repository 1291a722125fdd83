package postgres

import "time"

type matchTableModel struct {
	ID          int64      `db:"id"`
	HomeTeamID  int64      `db:"home_team_id"`
	AwayTeamID  int64      `db:"away_team_id"`
	PlayedAt    time.Time  `db:"played_at"`
	GoalsHome   int        `db:"goals_home"`
	GoalsAway   int        `db:"goals_away"`
	CornersHome int        `db:"corners_home"`
	CornersAway int        `db:"corners_away"`
	YellowHome  int        `db:"yellow_home"`
	YellowAway  int        `db:"yellow_away"`
	RedHome     int        `db:"red_home"`
	RedAway     int        `db:"red_away"`
	Outcome     string     `db:"outcome"`
	CreatedAt   time.Time  `db:"created_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

type matchInsertModel struct {
	HomeTeamID  int64     `db:"home_team_id"`
	AwayTeamID  int64     `db:"away_team_id"`
	PlayedAt    time.Time `db:"played_at"`
	GoalsHome   int       `db:"goals_home"`
	GoalsAway   int       `db:"goals_away"`
	CornersHome int       `db:"corners_home"`
	CornersAway int       `db:"corners_away"`
	YellowHome  int       `db:"yellow_home"`
	YellowAway  int       `db:"yellow_away"`
	RedHome     int       `db:"red_home"`
	RedAway     int       `db:"red_away"`
	Outcome     string    `db:"outcome"`
	CreatedAt   time.Time `db:"created_at"`
}

type outcomeCountsRow struct {
	Total      int `db:"total"`
	WithResult int `db:"with_result"`
	HomeWins   int `db:"home_wins"`
	Draws      int `db:"draws"`
	AwayWins   int `db:"away_wins"`
}
