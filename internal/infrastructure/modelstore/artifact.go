package modelstore

import (
	"os"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/fixture-predictor/internal/inference"
)

// Artifact kinds.
const (
	KindLinear   = "linear"
	KindLogistic = "logistic"
	KindScaler   = "scaler"
	KindEnsemble = "ensemble"
	KindConstant = "constant"
)

// document is the on-disk JSON form of a fitted model.
type document struct {
	Kind         string      `json:"kind"`
	Features     int         `json:"n_features,omitempty"`
	Coefficients [][]float64 `json:"coefficients,omitempty"`
	Intercept    []float64   `json:"intercept,omitempty"`
	Mean         []float64   `json:"mean,omitempty"`
	Scale        []float64   `json:"scale,omitempty"`
	Values       []float64   `json:"values,omitempty"`
	Members      []document  `json:"members,omitempty"`
}

func readDocument(path string) (document, error) {
	f, err := os.Open(path)
	if err != nil {
		return document{}, err
	}
	defer f.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(f); err != nil {
		return document{}, crerr.Wrapf(err, "read artifact %q", path)
	}

	var doc document
	if err := sonic.ConfigStd.Unmarshal(buf.B, &doc); err != nil {
		return document{}, crerr.Wrapf(err, "decode artifact %q", path)
	}
	return doc, nil
}

func (d document) regressor() (inference.Regressor, error) {
	switch d.Kind {
	case KindLinear:
		if len(d.Coefficients) == 0 {
			return nil, crerr.New("linear artifact has no coefficients")
		}
		intercept := d.Intercept
		if len(intercept) == 0 {
			intercept = make([]float64, len(d.Coefficients))
		}
		if len(intercept) != len(d.Coefficients) {
			return nil, crerr.Newf("linear artifact has %d coefficient rows but %d intercepts", len(d.Coefficients), len(intercept))
		}
		if d.Features > 0 {
			for i, row := range d.Coefficients {
				if len(row) != d.Features {
					return nil, crerr.Newf("linear artifact row %d has %d coefficients, want %d", i, len(row), d.Features)
				}
			}
		}
		return &linear{coefficients: d.Coefficients, intercept: intercept}, nil
	case KindEnsemble:
		if len(d.Members) == 0 {
			return nil, crerr.New("ensemble artifact has no members")
		}
		members := make([]inference.Regressor, 0, len(d.Members))
		for i, member := range d.Members {
			m, err := member.regressor()
			if err != nil {
				return nil, crerr.Wrapf(err, "ensemble member %d", i)
			}
			members = append(members, m)
		}
		return &ensemble{members: members}, nil
	case KindConstant:
		if len(d.Values) == 0 {
			return nil, crerr.New("constant artifact has no values")
		}
		return &constant{features: d.Features, values: d.Values}, nil
	default:
		return nil, crerr.Newf("artifact kind %q is not a regressor", d.Kind)
	}
}

func (d document) classifier() (inference.Classifier, error) {
	switch d.Kind {
	case KindLogistic:
		if len(d.Coefficients) != 1 {
			return nil, crerr.Newf("logistic artifact must have exactly one coefficient row, got %d", len(d.Coefficients))
		}
		var intercept float64
		if len(d.Intercept) > 0 {
			intercept = d.Intercept[0]
		}
		return &logistic{coefficients: d.Coefficients[0], intercept: intercept}, nil
	case KindConstant:
		if len(d.Values) == 0 {
			return nil, crerr.New("constant artifact has no values")
		}
		return &constant{features: d.Features, values: d.Values}, nil
	default:
		return nil, crerr.Newf("artifact kind %q is not a classifier", d.Kind)
	}
}

func (d document) scaler() (inference.Scaler, error) {
	if d.Kind != KindScaler {
		return nil, crerr.Newf("artifact kind %q is not a scaler", d.Kind)
	}
	if len(d.Mean) == 0 || len(d.Mean) != len(d.Scale) {
		return nil, crerr.Newf("scaler artifact has %d means and %d scales", len(d.Mean), len(d.Scale))
	}
	return &standardScaler{mean: d.Mean, scale: d.Scale}, nil
}
