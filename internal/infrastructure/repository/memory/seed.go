package memory

import (
	"time"

	"github.com/riskibarqy/fixture-predictor/internal/domain/match"
	"github.com/riskibarqy/fixture-predictor/internal/domain/team"
)

// SeedTeams returns the LigaPro Ecuador clubs with their external codes.
func SeedTeams() []team.Team {
	return []team.Team{
		{ID: 1, Code: 0, Name: "Barcelona SC", LogoURL: "img/Barcelona_Sporting_Club_Logo.png"},
		{ID: 2, Code: 2, Name: "El Nacional", LogoURL: "img/Nacional.png"},
		{ID: 3, Code: 4, Name: "Emelec", LogoURL: "img/EscudoCSEmelec.png"},
		{ID: 4, Code: 5, Name: "LDU de Quito", LogoURL: "img/Liga_Deportiva_Universitaria_de_Quito.png"},
		{ID: 5, Code: 6, Name: "Mushuc Runa SC", LogoURL: "img/MushucRuna.png"},
		{ID: 6, Code: 7, Name: "Independiente del Valle", LogoURL: "img/Independiente_del_Valle_Logo_2022.png"},
		{ID: 7, Code: 8, Name: "CD Tecnico Universitario", LogoURL: "img/Tecnico_Universitario.png"},
		{ID: 8, Code: 9, Name: "Delfin", LogoURL: "img/Delfin_SC_logo.png"},
		{ID: 9, Code: 10, Name: "Deportivo Cuenca", LogoURL: "img/Depcuenca.png"},
		{ID: 10, Code: 12, Name: "Aucas", LogoURL: "img/SD_Aucas_logo.png"},
		{ID: 11, Code: 13, Name: "Universidad Catolica", LogoURL: "img/Ucatolica.png"},
		{ID: 12, Code: 14, Name: "CSD Macara", LogoURL: "img/Macara_6.png"},
		{ID: 13, Code: 15, Name: "Orense SC", LogoURL: "img/Orense_SC_logo.png"},
		{ID: 14, Code: 17, Name: "Manta FC", LogoURL: "img/Manta_F.C.png"},
		{ID: 15, Code: 20, Name: "Libertad", LogoURL: "img/Libertad_FC_Ecuador.png"},
		{ID: 16, Code: 22, Name: "Vinotinto", LogoURL: "img/Vinotinto.png"},
	}
}

// SeedMatches returns sample head-to-head records dated relative to now.
// Team ids refer to SeedTeams.
func SeedMatches(now time.Time) []match.Record {
	daysAgo := func(d int) time.Time {
		return now.AddDate(0, 0, -d).UTC()
	}

	return []match.Record{
		{
			ID: 1, HomeTeamID: 3, AwayTeamID: 1, PlayedAt: daysAgo(30),
			GoalsHome: 2, GoalsAway: 1, CornersHome: 6, CornersAway: 4,
			YellowHome: 2, YellowAway: 3, RedHome: 0, RedAway: 1,
			Outcome: match.OutcomeHome,
		},
		{
			ID: 2, HomeTeamID: 1, AwayTeamID: 3, PlayedAt: daysAgo(15),
			GoalsHome: 1, GoalsAway: 1, CornersHome: 5, CornersAway: 5,
			YellowHome: 1, YellowAway: 2,
			Outcome: match.OutcomeDraw,
		},
		{
			ID: 3, HomeTeamID: 4, AwayTeamID: 6, PlayedAt: daysAgo(20),
			GoalsHome: 3, GoalsAway: 0, CornersHome: 8, CornersAway: 3,
			YellowHome: 1, YellowAway: 2,
			Outcome: match.OutcomeHome,
		},
		{
			ID: 4, HomeTeamID: 6, AwayTeamID: 4, PlayedAt: daysAgo(10),
			GoalsHome: 2, GoalsAway: 2, CornersHome: 7, CornersAway: 6,
			YellowHome: 2, YellowAway: 1,
			Outcome: match.OutcomeDraw,
		},
		{
			ID: 5, HomeTeamID: 10, AwayTeamID: 9, PlayedAt: daysAgo(25),
			GoalsHome: 1, GoalsAway: 2, CornersHome: 4, CornersAway: 7,
			YellowHome: 3, YellowAway: 1,
			Outcome: match.OutcomeAway,
		},
		{
			ID: 6, HomeTeamID: 9, AwayTeamID: 10, PlayedAt: daysAgo(5),
			GoalsHome: 0, GoalsAway: 1, CornersHome: 3, CornersAway: 5,
			YellowHome: 2, YellowAway: 2,
			Outcome: match.OutcomeAway,
		},
	}
}
