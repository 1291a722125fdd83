package modelstore

import (
	"os"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
)

// Manifest maps each model role to an artifact file name relative to the
// store directory. An empty entry disables the role.
type Manifest struct {
	Corners           string `toml:"corners"`
	CornersScaler     string `toml:"corners_scaler"`
	Yellow            string `toml:"yellow_cards"`
	RedHomeClassifier string `toml:"red_cards_home_classifier"`
	RedHomeRegressor  string `toml:"red_cards_home_regressor"`
	RedAwayClassifier string `toml:"red_cards_away_classifier"`
	RedAwayRegressor  string `toml:"red_cards_away_regressor"`
	Score             string `toml:"score"`
}

type manifestFile struct {
	Models Manifest `toml:"models"`
}

func DefaultManifest() Manifest {
	return Manifest{
		Corners:           "corners_total.json",
		CornersScaler:     "corners_scaler.json",
		Yellow:            "yellow_cards.json",
		RedHomeClassifier: "red_cards_home_classifier.json",
		RedHomeRegressor:  "red_cards_home_regressor.json",
		RedAwayClassifier: "red_cards_away_classifier.json",
		RedAwayRegressor:  "red_cards_away_regressor.json",
		Score:             "score.json",
	}
}

// LoadManifest reads a TOML manifest. A missing file yields the defaults;
// keys absent from the file keep their default names.
func LoadManifest(path string) (Manifest, error) {
	manifest := DefaultManifest()
	if strings.TrimSpace(path) == "" {
		return manifest, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return manifest, nil
		}
		return Manifest{}, crerr.Wrapf(err, "read model manifest %q", path)
	}

	file := manifestFile{Models: manifest}
	if err := toml.Unmarshal(data, &file); err != nil {
		return Manifest{}, crerr.Wrapf(err, "parse model manifest %q", path)
	}
	return file.Models, nil
}
