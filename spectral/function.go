package spectral

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// Function is an immutable spectral distribution: strictly increasing
// wavelengths, each with one finite value. The zero Function is empty and
// only useful as a "not set" marker.
type Function struct {
	wavelengths []float64
	values      []float64
}

// New builds a Function from parallel slices, which are copied.
func New(wavelengths, values []float64) (Function, error) {
	if len(wavelengths) == 0 {
		return Function{}, &DomainError{Param: "samples", Value: 0, Reason: "need at least one sample"}
	}
	if len(wavelengths) != len(values) {
		return Function{}, &DomainError{Param: "samples", Value: len(values),
			Reason: "wavelength and value counts differ"}
	}
	if err := checkWavelengths(wavelengths); err != nil {
		return Function{}, err
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Function{}, &DomainError{Param: "value", Value: v,
				Reason: fmt.Sprintf("non-finite sample at %g nm", wavelengths[i])}
		}
	}
	return Function{
		wavelengths: slices.Clone(wavelengths),
		values:      slices.Clone(values),
	}, nil
}

// FromMap builds a Function from a wavelength → value table.
func FromMap(m map[float64]float64) (Function, error) {
	wl := make([]float64, 0, len(m))
	for w := range m {
		wl = append(wl, w)
	}
	sort.Float64s(wl)
	vals := make([]float64, len(wl))
	for i, w := range wl {
		vals[i] = m[w]
	}
	return New(wl, vals)
}

// Constant returns a Function equal to v on every wavelength of s.
func Constant(s Shape, v float64) (Function, error) {
	if err := s.Validate(); err != nil {
		return Function{}, err
	}
	vals := make([]float64, s.Count())
	for i := range vals {
		vals[i] = v
	}
	return New(s.Wavelengths(), vals)
}

// Generate samples f on every wavelength of s.
func Generate(s Shape, f func(wl float64) float64) (Function, error) {
	if err := s.Validate(); err != nil {
		return Function{}, err
	}
	wl := s.Wavelengths()
	vals := make([]float64, len(wl))
	for i, w := range wl {
		vals[i] = f(w)
	}
	return New(wl, vals)
}

func checkWavelengths(wl []float64) error {
	for i, w := range wl {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return &DomainError{Param: "wavelength", Value: w, Reason: "not finite"}
		}
		if i > 0 && w <= wl[i-1] {
			return &DomainError{Param: "wavelength", Value: w,
				Reason: "wavelengths must be strictly increasing without duplicates"}
		}
	}
	return nil
}

// IsZero reports whether f holds no samples.
func (f Function) IsZero() bool {
	return len(f.wavelengths) == 0
}

// Len returns the number of samples.
func (f Function) Len() int {
	return len(f.wavelengths)
}

// Wavelengths returns a copy of the sample wavelengths.
func (f Function) Wavelengths() []float64 {
	return slices.Clone(f.wavelengths)
}

// Values returns a copy of the sample values.
func (f Function) Values() []float64 {
	return slices.Clone(f.values)
}

// Domain returns the first and last sample wavelength.
func (f Function) Domain() (lo, hi float64) {
	if f.IsZero() {
		return math.NaN(), math.NaN()
	}
	return f.wavelengths[0], f.wavelengths[len(f.wavelengths)-1]
}

// Value evaluates f at wl: linear interpolation between the bracketing
// samples inside the domain, the nearest boundary value outside of it.
// A wavelength that hits a sample exactly returns the stored value.
func (f Function) Value(wl float64) float64 {
	n := len(f.wavelengths)
	if n == 0 {
		return math.NaN()
	}
	if wl <= f.wavelengths[0] {
		return f.values[0]
	}
	if wl >= f.wavelengths[n-1] {
		return f.values[n-1]
	}
	i := sort.SearchFloat64s(f.wavelengths, wl)
	if f.wavelengths[i] == wl {
		return f.values[i]
	}
	w0, w1 := f.wavelengths[i-1], f.wavelengths[i]
	v0, v1 := f.values[i-1], f.values[i]
	t := (wl - w0) / (w1 - w0)
	return v0 + t*(v1-v0)
}

// OnShape reports whether f is sampled exactly on the grid of s.
func (f Function) OnShape(s Shape) bool {
	n := s.Count()
	if len(f.wavelengths) != n {
		return false
	}
	for i, w := range f.wavelengths {
		if w != s.At(i) {
			return false
		}
	}
	return true
}

// Resample returns a new Function whose samples are exactly the
// wavelengths of s. f itself is never modified.
func (f Function) Resample(s Shape) (Function, error) {
	if err := s.Validate(); err != nil {
		return Function{}, err
	}
	if f.IsZero() {
		return Function{}, &DomainError{Param: "samples", Value: 0, Reason: "cannot resample an empty function"}
	}
	if f.OnShape(s) {
		return f, nil
	}
	wl := s.Wavelengths()
	vals := make([]float64, len(wl))
	for i, w := range wl {
		vals[i] = f.Value(w)
	}
	return Function{wavelengths: wl, values: vals}, nil
}

// Scale returns f multiplied by k.
func (f Function) Scale(k float64) Function {
	vals := make([]float64, len(f.values))
	for i, v := range f.values {
		vals[i] = v * k
	}
	return Function{wavelengths: f.wavelengths, values: vals}
}

// Equal reports whether f and g hold identical samples.
func (f Function) Equal(g Function) bool {
	return slices.Equal(f.wavelengths, g.wavelengths) && slices.Equal(f.values, g.values)
}

// Sample returns the i-th wavelength and value.
func (f Function) Sample(i int) (wl, v float64) {
	return f.wavelengths[i], f.values[i]
}
