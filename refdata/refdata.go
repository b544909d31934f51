// Package refdata provides the named reference tables the colorimetric
// pipeline consumes: standard observers, illuminants, reflectance charts and
// RGB colorspaces.
//
// A Registry only does exact-name lookups. Aliases are registered as extra
// names for the same entry. Tables are read-only once registered and can be
// shared between goroutines and checkers.
package refdata

import (
	"slices"

	"cogentcore.org/core/base/ordmap"

	"github.com/weaming/colorchecker-go/colorimetry"
	"github.com/weaming/colorchecker-go/colorspace"
	"github.com/weaming/colorchecker-go/spectral"
)

// 内置数据名称
const (
	CIE1931Name       = "CIE 1931 2 Degree Standard Observer"
	CIE1931Alias      = "cie_2_1931"
	NeutralChartName  = "Synthetic Neutral 6"
	GaussianChartName = "Synthetic Gaussian 6"
)

// Registry holds name-keyed reference tables.
type Registry struct {
	observers   *ordmap.Map[string, spectral.MultiFunction]
	illuminants *ordmap.Map[string, spectral.Function]
	checkers    *ordmap.Map[string, *Table]
	colorspaces *ordmap.Map[string, *colorspace.RGBColorspace]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		observers:   ordmap.New[string, spectral.MultiFunction](),
		illuminants: ordmap.New[string, spectral.Function](),
		checkers:    ordmap.New[string, *Table](),
		colorspaces: ordmap.New[string, *colorspace.RGBColorspace](),
	}
}

// Default returns a registry with the built-in tables.
func Default() *Registry {
	r := NewRegistry()
	r.AddObserver(CIE1931Name, CIE1931(), CIE1931Alias)

	r.AddIlluminant("A", IlluminantA())
	r.AddIlluminant("D65", D65())
	r.AddIlluminant("E", EqualEnergy())

	r.AddChecker(NeutralChartName, NeutralChart())
	r.AddChecker(GaussianChartName, GaussianChart())

	for _, cs := range colorspace.All() {
		r.AddColorspace(cs)
	}
	return r
}

// AddObserver registers colour matching functions under name and aliases,
// replacing any previous entry.
func (r *Registry) AddObserver(name string, cmfs spectral.MultiFunction, aliases ...string) {
	for _, n := range append([]string{name}, aliases...) {
		r.observers.Add(n, cmfs)
	}
}

// AddIlluminant registers a spectral power distribution.
func (r *Registry) AddIlluminant(name string, spd spectral.Function, aliases ...string) {
	for _, n := range append([]string{name}, aliases...) {
		r.illuminants.Add(n, spd)
	}
}

// AddChecker registers a reflectance table. The registry keeps its own copy.
func (r *Registry) AddChecker(name string, t *Table) {
	r.checkers.Add(name, CloneTable(t))
}

// AddColorspace registers cs under its name and aliases.
func (r *Registry) AddColorspace(cs *colorspace.RGBColorspace, aliases ...string) {
	for _, n := range append([]string{cs.Name}, aliases...) {
		r.colorspaces.Add(n, cs)
	}
}

// Observer looks up colour matching functions.
func (r *Registry) Observer(name string) (spectral.MultiFunction, error) {
	m, ok := r.observers.ValueByKeyTry(name)
	if !ok {
		return spectral.MultiFunction{}, &colorimetry.NotFoundError{Kind: "observer", Name: name}
	}
	return m, nil
}

// Illuminant looks up an illuminant.
func (r *Registry) Illuminant(name string) (spectral.Function, error) {
	f, ok := r.illuminants.ValueByKeyTry(name)
	if !ok {
		return spectral.Function{}, &colorimetry.NotFoundError{Kind: "illuminant", Name: name}
	}
	return f, nil
}

// Checker looks up a reflectance table and returns a copy of it.
func (r *Registry) Checker(name string) (*Table, error) {
	t, ok := r.checkers.ValueByKeyTry(name)
	if !ok {
		return nil, &colorimetry.NotFoundError{Kind: "checker", Name: name}
	}
	return CloneTable(t), nil
}

// Colorspace looks up an RGB colorspace.
func (r *Registry) Colorspace(name string) (*colorspace.RGBColorspace, error) {
	cs, ok := r.colorspaces.ValueByKeyTry(name)
	if !ok {
		return nil, &colorimetry.NotFoundError{Kind: "colorspace", Name: name}
	}
	return cs, nil
}

func sortedKeys[V any](m *ordmap.Map[string, V]) []string {
	keys := m.Keys()
	slices.Sort(keys)
	return keys
}

// ObserverNames returns the sorted observer names, aliases included.
func (r *Registry) ObserverNames() []string { return sortedKeys(r.observers) }

// IlluminantNames returns the sorted illuminant names.
func (r *Registry) IlluminantNames() []string { return sortedKeys(r.illuminants) }

// CheckerNames returns the sorted checker names.
func (r *Registry) CheckerNames() []string { return sortedKeys(r.checkers) }

// ColorspaceNames returns the sorted colorspace names.
func (r *Registry) ColorspaceNames() []string { return sortedKeys(r.colorspaces) }
