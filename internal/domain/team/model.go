package team

import "fmt"

// Team is a club known to the registry. Code is the external code clients
// send in prediction requests; ID is the stable internal identity.
type Team struct {
	ID      int64
	Code    int
	Name    string
	LogoURL string
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id must be > 0")
	}
	if t.Code < 0 {
		return fmt.Errorf("team code must be >= 0")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
