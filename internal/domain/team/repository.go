package team

import "context"

// Registry resolves external team codes and names to internal identities.
type Registry interface {
	List(ctx context.Context) ([]Team, error)
	FindByCode(ctx context.Context, code int) (Team, bool, error)
	FindByName(ctx context.Context, name string) (Team, bool, error)
}
