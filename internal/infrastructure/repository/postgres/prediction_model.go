package postgres

import "time"

type predictionTableModel struct {
	ID          int64      `db:"id"`
	PublicID    string     `db:"public_id"`
	HomeTeamID  int64      `db:"home_team_id"`
	AwayTeamID  int64      `db:"away_team_id"`
	HomeWinProb float64    `db:"home_win_prob"`
	DrawProb    float64    `db:"draw_prob"`
	AwayWinProb float64    `db:"away_win_prob"`
	GoalsHome   int        `db:"goals_home"`
	GoalsAway   int        `db:"goals_away"`
	CornersHome int        `db:"corners_home"`
	CornersAway int        `db:"corners_away"`
	YellowHome  int        `db:"yellow_home"`
	YellowAway  int        `db:"yellow_away"`
	RedHome     int        `db:"red_home"`
	RedAway     int        `db:"red_away"`
	ModelLabel  string     `db:"model_label"`
	CreatedAt   time.Time  `db:"created_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

type predictionInsertModel struct {
	PublicID    string    `db:"public_id"`
	HomeTeamID  int64     `db:"home_team_id"`
	AwayTeamID  int64     `db:"away_team_id"`
	HomeWinProb float64   `db:"home_win_prob"`
	DrawProb    float64   `db:"draw_prob"`
	AwayWinProb float64   `db:"away_win_prob"`
	GoalsHome   int       `db:"goals_home"`
	GoalsAway   int       `db:"goals_away"`
	CornersHome int       `db:"corners_home"`
	CornersAway int       `db:"corners_away"`
	YellowHome  int       `db:"yellow_home"`
	YellowAway  int       `db:"yellow_away"`
	RedHome     int       `db:"red_home"`
	RedAway     int       `db:"red_away"`
	ModelLabel  string    `db:"model_label"`
	CreatedAt   time.Time `db:"created_at"`
}
