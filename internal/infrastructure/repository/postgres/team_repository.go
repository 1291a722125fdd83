package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/fixture-predictor/internal/domain/team"
	qb "github.com/riskibarqy/fixture-predictor/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.IsNull("deleted_at")).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}

	return out, nil
}

func (r *TeamRepository) FindByCode(ctx context.Context, code int) (team.Team, bool, error) {
	return r.findOne(ctx, "code", qb.Eq("code", code))
}

func (r *TeamRepository) FindByName(ctx context.Context, name string) (team.Team, bool, error) {
	return r.findOne(ctx, "name", qb.EqFold("name", strings.TrimSpace(name)))
}

func (r *TeamRepository) findOne(ctx context.Context, by string, cond qb.Condition) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(cond, qb.IsNull("deleted_at")).
		OrderBy("id").
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team by %s query: %w", by, err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team by %s: %w", by, err)
	}

	return teamFromRow(row), true, nil
}

// Upsert inserts teams keyed by code, updating name and logo on conflict.
func (r *TeamRepository) Upsert(ctx context.Context, items []team.Team) error {
	for _, item := range items {
		if item.Code < 0 || strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("invalid team code=%d name=%q", item.Code, item.Name)
		}

		query, args, err := qb.InsertModel("teams", teamInsertModel{
			Code:    item.Code,
			Name:    item.Name,
			LogoURL: sql.NullString{String: item.LogoURL, Valid: item.LogoURL != ""},
		}, `ON CONFLICT (code) WHERE deleted_at IS NULL
DO UPDATE SET
    name = EXCLUDED.name,
    logo_url = EXCLUDED.logo_url,
    updated_at = NOW()`)
		if err != nil {
			return fmt.Errorf("build upsert team query: %w", err)
		}
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("upsert team code=%d: name %q already taken: %w", item.Code, item.Name, err)
			}
			return fmt.Errorf("upsert team code=%d: %w", item.Code, err)
		}
	}

	return nil
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:      row.ID,
		Code:    row.Code,
		Name:    row.Name,
		LogoURL: row.LogoURL.String,
	}
}
