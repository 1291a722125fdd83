package httpapi

import (
	"time"

	"github.com/riskibarqy/fixture-predictor/internal/domain/match"
	"github.com/riskibarqy/fixture-predictor/internal/domain/prediction"
	"github.com/riskibarqy/fixture-predictor/internal/domain/team"
	"github.com/riskibarqy/fixture-predictor/internal/inference"
	"github.com/riskibarqy/fixture-predictor/internal/usecase"
)

type createMatchRequest struct {
	HomeCode    *int   `json:"homeCode" validate:"required,gte=0"`
	AwayCode    *int   `json:"awayCode" validate:"required,gte=0"`
	PlayedAt    string `json:"playedAt" validate:"omitempty,max=40"`
	GoalsHome   int    `json:"goalsHome" validate:"gte=0,lte=50"`
	GoalsAway   int    `json:"goalsAway" validate:"gte=0,lte=50"`
	CornersHome int    `json:"cornersHome" validate:"gte=0,lte=50"`
	CornersAway int    `json:"cornersAway" validate:"gte=0,lte=50"`
	YellowHome  int    `json:"yellowCardsHome" validate:"gte=0,lte=20"`
	YellowAway  int    `json:"yellowCardsAway" validate:"gte=0,lte=20"`
	RedHome     int    `json:"redCardsHome" validate:"gte=0,lte=11"`
	RedAway     int    `json:"redCardsAway" validate:"gte=0,lte=11"`
	Outcome     string `json:"outcome" validate:"omitempty,oneof=L E V l e v"`
}

type predictionRequest struct {
	HomeTeam string `json:"homeTeam" validate:"required,max=100"`
	AwayTeam string `json:"awayTeam" validate:"required,max=100"`
	HomeCode *int   `json:"homeCode" validate:"required,gte=0"`
	AwayCode *int   `json:"awayCode" validate:"required,gte=0"`
}

func (r predictionRequest) toInput() usecase.PredictInput {
	return usecase.PredictInput{
		HomeName: r.HomeTeam,
		AwayName: r.AwayTeam,
		HomeCode: *r.HomeCode,
		AwayCode: *r.AwayCode,
	}
}

type predictionBatchRequest struct {
	Predictions []predictionRequest `json:"predictions" validate:"required,min=1,max=100,dive"`
}

type teamDTO struct {
	ID      int64  `json:"id"`
	Code    int    `json:"code"`
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl,omitempty"`
}

type matchDTO struct {
	ID          int64     `json:"id"`
	HomeTeamID  int64     `json:"homeTeamId"`
	AwayTeamID  int64     `json:"awayTeamId"`
	PlayedAt    time.Time `json:"playedAt"`
	GoalsHome   int       `json:"goalsHome"`
	GoalsAway   int       `json:"goalsAway"`
	CornersHome int       `json:"cornersHome"`
	CornersAway int       `json:"cornersAway"`
	YellowHome  int       `json:"yellowCardsHome"`
	YellowAway  int       `json:"yellowCardsAway"`
	RedHome     int       `json:"redCardsHome"`
	RedAway     int       `json:"redCardsAway"`
	Outcome     string    `json:"outcome"`
}

type pairDTO struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

type probabilitiesDTO struct {
	HomeWin float64 `json:"homeWin"`
	Draw    float64 `json:"draw"`
	AwayWin float64 `json:"awayWin"`
}

type resultDTO struct {
	Probabilities probabilitiesDTO `json:"probabilities"`
	Score         pairDTO          `json:"score"`
	Corners       pairDTO          `json:"corners"`
	YellowCards   pairDTO          `json:"yellowCards"`
	RedCards      pairDTO          `json:"redCards"`
}

type predictionDTO struct {
	ID         string    `json:"id"`
	HomeTeamID int64     `json:"homeTeamId"`
	AwayTeamID int64     `json:"awayTeamId"`
	Result     resultDTO `json:"result"`
	ModelLabel string    `json:"modelLabel"`
	CreatedAt  time.Time `json:"createdAt"`
}

type batchItemDTO struct {
	Index      int            `json:"index"`
	Prediction *predictionDTO `json:"prediction,omitempty"`
	Error      string         `json:"error,omitempty"`
	Reason     string         `json:"reason,omitempty"`
}

type statsDTO struct {
	Teams       int `json:"teams"`
	Matches     int `json:"matches"`
	Predictions int `json:"predictions"`
	WithResult  int `json:"matchesWithResult"`
	HomeWins    int `json:"homeWins"`
	Draws       int `json:"draws"`
	AwayWins    int `json:"awayWins"`
}

type modelRoleDTO struct {
	Role   string `json:"role"`
	Loaded bool   `json:"loaded"`
}

type modelsDTO struct {
	Label string         `json:"label"`
	Roles []modelRoleDTO `json:"roles"`
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:      v.ID,
		Code:    v.Code,
		Name:    v.Name,
		LogoURL: v.LogoURL,
	}
}

func matchToDTO(v match.Record) matchDTO {
	return matchDTO{
		ID:          v.ID,
		HomeTeamID:  v.HomeTeamID,
		AwayTeamID:  v.AwayTeamID,
		PlayedAt:    v.PlayedAt,
		GoalsHome:   v.GoalsHome,
		GoalsAway:   v.GoalsAway,
		CornersHome: v.CornersHome,
		CornersAway: v.CornersAway,
		YellowHome:  v.YellowHome,
		YellowAway:  v.YellowAway,
		RedHome:     v.RedHome,
		RedAway:     v.RedAway,
		Outcome:     string(v.Outcome),
	}
}

func pairToDTO(v prediction.Pair) pairDTO {
	return pairDTO{Home: v.Home, Away: v.Away}
}

func resultToDTO(v prediction.Result) resultDTO {
	return resultDTO{
		Probabilities: probabilitiesDTO{
			HomeWin: v.HomeWin,
			Draw:    v.Draw,
			AwayWin: v.AwayWin,
		},
		Score:       pairToDTO(v.Score),
		Corners:     pairToDTO(v.Corners),
		YellowCards: pairToDTO(v.YellowCards),
		RedCards:    pairToDTO(v.RedCards),
	}
}

func predictionToDTO(v prediction.Record) predictionDTO {
	return predictionDTO{
		ID:         v.PublicID,
		HomeTeamID: v.HomeTeamID,
		AwayTeamID: v.AwayTeamID,
		Result:     resultToDTO(v.Result),
		ModelLabel: v.ModelLabel,
		CreatedAt:  v.CreatedAt,
	}
}

func statsToDTO(v usecase.Summary) statsDTO {
	return statsDTO{
		Teams:       v.Teams,
		Matches:     v.Matches,
		Predictions: v.Predictions,
		WithResult:  v.WithResult,
		HomeWins:    v.HomeWins,
		Draws:       v.Draws,
		AwayWins:    v.AwayWins,
	}
}

func modelsToDTO(label string, roles []inference.RoleStatus) modelsDTO {
	items := make([]modelRoleDTO, 0, len(roles))
	for _, role := range roles {
		items = append(items, modelRoleDTO{Role: role.Role, Loaded: role.Loaded})
	}
	return modelsDTO{Label: label, Roles: items}
}
