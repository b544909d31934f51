package refdata

import (
	"fmt"
	"io"

	"cogentcore.org/core/base/ordmap"
	"github.com/pelletier/go-toml/v2"

	"github.com/weaming/colorchecker-go/spectral"
)

// tableFile is the TOML layout accepted by Decode:
//
//	[[observer]]
//	name = "..."
//	aliases = ["..."]
//	wavelengths = [380.0, 385.0, ...]
//	x = [...]
//	y = [...]
//	z = [...]
//
//	[[illuminant]]
//	name = "..."
//	start = 380.0
//	end = 780.0
//	interval = 5.0
//	values = [...]
//
//	[[checker]]
//	name = "..."
//	[[checker.patch]]
//	name = "..."
//	wavelengths = [...]
//	values = [...]
//
// Distributions give either explicit wavelengths or a uniform
// start/end/interval grid.
type tableFile struct {
	Observers   []observerEntry `toml:"observer"`
	Illuminants []functionEntry `toml:"illuminant"`
	Checkers    []checkerEntry  `toml:"checker"`
}

type observerEntry struct {
	Name        string    `toml:"name"`
	Aliases     []string  `toml:"aliases"`
	Wavelengths []float64 `toml:"wavelengths"`
	X           []float64 `toml:"x"`
	Y           []float64 `toml:"y"`
	Z           []float64 `toml:"z"`
}

type functionEntry struct {
	Name        string    `toml:"name"`
	Aliases     []string  `toml:"aliases"`
	Wavelengths []float64 `toml:"wavelengths"`
	Start       float64   `toml:"start"`
	End         float64   `toml:"end"`
	Interval    float64   `toml:"interval"`
	Values      []float64 `toml:"values"`
}

type checkerEntry struct {
	Name    string          `toml:"name"`
	Patches []functionEntry `toml:"patch"`
}

func (e functionEntry) function() (spectral.Function, error) {
	wl := e.Wavelengths
	if len(wl) == 0 {
		s := spectral.Shape{Start: e.Start, End: e.End, Interval: e.Interval}
		if err := s.Validate(); err != nil {
			return spectral.Function{}, err
		}
		wl = s.Wavelengths()
	}
	return spectral.New(wl, e.Values)
}

// Decode reads TOML reference tables from rd and registers them. Nothing is
// registered if any entry is invalid.
func (r *Registry) Decode(rd io.Reader) error {
	var file tableFile
	dec := toml.NewDecoder(rd)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return fmt.Errorf("decode tables: %w", err)
	}

	staged := NewRegistry()
	for _, o := range file.Observers {
		if o.Name == "" {
			return fmt.Errorf("observer without name")
		}
		m, err := spectral.NewMultiFromChannels([3]string{"x_bar", "y_bar", "z_bar"}, o.Wavelengths, o.X, o.Y, o.Z)
		if err != nil {
			return fmt.Errorf("observer %q: %w", o.Name, err)
		}
		staged.AddObserver(o.Name, m, o.Aliases...)
	}
	for _, il := range file.Illuminants {
		if il.Name == "" {
			return fmt.Errorf("illuminant without name")
		}
		f, err := il.function()
		if err != nil {
			return fmt.Errorf("illuminant %q: %w", il.Name, err)
		}
		staged.AddIlluminant(il.Name, f, il.Aliases...)
	}
	for _, c := range file.Checkers {
		if c.Name == "" {
			return fmt.Errorf("checker without name")
		}
		t := ordmap.New[string, spectral.Function]()
		for _, p := range c.Patches {
			if _, dup := t.ValueByKeyTry(p.Name); dup || p.Name == "" {
				return fmt.Errorf("checker %q: invalid or duplicate patch name %q", c.Name, p.Name)
			}
			f, err := p.function()
			if err != nil {
				return fmt.Errorf("checker %q: patch %q: %w", c.Name, p.Name, err)
			}
			t.Add(p.Name, f)
		}
		if t.Len() == 0 {
			return fmt.Errorf("checker %q has no patches", c.Name)
		}
		staged.checkers.Add(c.Name, t)
	}

	r.merge(staged)
	return nil
}

func (r *Registry) merge(o *Registry) {
	for _, kv := range o.observers.Order {
		r.observers.Add(kv.Key, kv.Value)
	}
	for _, kv := range o.illuminants.Order {
		r.illuminants.Add(kv.Key, kv.Value)
	}
	for _, kv := range o.checkers.Order {
		r.checkers.Add(kv.Key, kv.Value)
	}
	for _, kv := range o.colorspaces.Order {
		r.colorspaces.Add(kv.Key, kv.Value)
	}
}
