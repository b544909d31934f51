package refdata

import (
	"math"

	"cogentcore.org/core/base/ordmap"

	"github.com/weaming/colorchecker-go/spectral"
)

// Table is an ordered reflectance table: patch name → reflectance, in
// chart order.
type Table = ordmap.Map[string, spectral.Function]

// 合成色卡在 380–780 nm、5 nm 的网格上生成
var chartShape = spectral.DefaultShape

// NeutralChart returns six spectrally flat grey patches whose reflectances
// are 10^-D for the optical densities of a ColorChecker's neutral row.
func NeutralChart() *Table {
	steps := []struct {
		name    string
		density float64
	}{
		{"white 9.5 (.05 D)", 0.05},
		{"neutral 8 (.23 D)", 0.23},
		{"neutral 6.5 (.44 D)", 0.44},
		{"neutral 5 (.70 D)", 0.70},
		{"neutral 3.5 (1.05 D)", 1.05},
		{"black 2 (1.5 D)", 1.5},
	}
	t := ordmap.New[string, spectral.Function]()
	for _, s := range steps {
		f, err := spectral.Constant(chartShape, math.Pow(10, -s.density))
		if err != nil {
			panic(err)
		}
		t.Add(s.name, f)
	}
	return t
}

func gaussian(mu, sigma float64) func(float64) float64 {
	return func(wl float64) float64 {
		d := (wl - mu) / sigma
		return math.Exp(-d * d / 2)
	}
}

func logistic(mid, width float64) func(float64) float64 {
	return func(wl float64) float64 {
		return 1 / (1 + math.Exp(-(wl-mid)/width))
	}
}

// GaussianChart returns six smooth synthetic chromatic patches built from
// Gaussian bands and logistic edges, each between 0.05 and 0.85.
func GaussianChart() *Table {
	shapes := []struct {
		name string
		f    func(float64) float64
	}{
		{"blue", gaussian(450, 30)},
		{"green", gaussian(530, 35)},
		{"red", logistic(600, 12)},
		{"yellow", logistic(500, 12)},
		{"magenta", func(wl float64) float64 { return 1 - gaussian(540, 40)(wl) }},
		{"cyan", func(wl float64) float64 { return 1 - logistic(580, 15)(wl) }},
	}
	t := ordmap.New[string, spectral.Function]()
	for _, s := range shapes {
		f, err := spectral.Generate(chartShape, func(wl float64) float64 {
			return 0.05 + 0.8*s.f(wl)
		})
		if err != nil {
			panic(err)
		}
		t.Add(s.name, f)
	}
	return t
}

// CloneTable returns a copy of t that can be modified independently.
func CloneTable(t *Table) *Table {
	out := ordmap.New[string, spectral.Function]()
	for _, kv := range t.Order {
		out.Add(kv.Key, kv.Value)
	}
	return out
}
