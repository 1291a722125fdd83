package postgres

import (
	"database/sql"
	"time"
)

type teamTableModel struct {
	ID        int64          `db:"id"`
	Code      int            `db:"code"`
	Name      string         `db:"name"`
	LogoURL   sql.NullString `db:"logo_url"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
	DeletedAt *time.Time     `db:"deleted_at"`
}

type teamInsertModel struct {
	Code    int            `db:"code"`
	Name    string         `db:"name"`
	LogoURL sql.NullString `db:"logo_url"`
}
