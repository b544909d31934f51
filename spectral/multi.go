package spectral

import (
	"github.com/weaming/colorchecker-go/matrix"
)

// MultiFunction is a three-channel spectral distribution sharing one set of
// wavelengths, such as the x̄, ȳ, z̄ colour matching functions of a standard
// observer.
type MultiFunction struct {
	Labels   [3]string
	channels [3]Function
}

// NewMulti builds a MultiFunction from wavelengths and per-wavelength
// triples.
func NewMulti(labels [3]string, wavelengths []float64, values []matrix.Vector3) (MultiFunction, error) {
	if len(values) != len(wavelengths) {
		return MultiFunction{}, &DomainError{Param: "samples", Value: len(values),
			Reason: "wavelength and value counts differ"}
	}
	m := MultiFunction{Labels: labels}
	for c := 0; c < 3; c++ {
		col := make([]float64, len(values))
		for i, v := range values {
			col[i] = v[c]
		}
		f, err := New(wavelengths, col)
		if err != nil {
			return MultiFunction{}, err
		}
		m.channels[c] = f
	}
	return m, nil
}

// NewMultiFromChannels builds a MultiFunction from three parallel value
// slices.
func NewMultiFromChannels(labels [3]string, wavelengths, x, y, z []float64) (MultiFunction, error) {
	m := MultiFunction{Labels: labels}
	for c, vals := range [3][]float64{x, y, z} {
		f, err := New(wavelengths, vals)
		if err != nil {
			return MultiFunction{}, err
		}
		m.channels[c] = f
	}
	return m, nil
}

// IsZero reports whether m holds no samples.
func (m MultiFunction) IsZero() bool {
	return m.channels[0].IsZero()
}

// Len returns the number of samples per channel.
func (m MultiFunction) Len() int {
	return m.channels[0].Len()
}

// Channel returns channel c (0, 1 or 2).
func (m MultiFunction) Channel(c int) Function {
	return m.channels[c]
}

// Wavelengths returns a copy of the sample wavelengths.
func (m MultiFunction) Wavelengths() []float64 {
	return m.channels[0].Wavelengths()
}

// Value evaluates all three channels at wl.
func (m MultiFunction) Value(wl float64) matrix.Vector3 {
	return matrix.Vector3{
		m.channels[0].Value(wl),
		m.channels[1].Value(wl),
		m.channels[2].Value(wl),
	}
}

// Sample returns the i-th wavelength and triple.
func (m MultiFunction) Sample(i int) (float64, matrix.Vector3) {
	wl, x := m.channels[0].Sample(i)
	_, y := m.channels[1].Sample(i)
	_, z := m.channels[2].Sample(i)
	return wl, matrix.Vector3{x, y, z}
}

// OnShape reports whether m is sampled exactly on the grid of s.
func (m MultiFunction) OnShape(s Shape) bool {
	return m.channels[0].OnShape(s)
}

// Resample resamples every channel onto s.
func (m MultiFunction) Resample(s Shape) (MultiFunction, error) {
	if m.IsZero() {
		return MultiFunction{}, &DomainError{Param: "samples", Value: 0, Reason: "cannot resample an empty function"}
	}
	out := MultiFunction{Labels: m.Labels}
	for c := range m.channels {
		f, err := m.channels[c].Resample(s)
		if err != nil {
			return MultiFunction{}, err
		}
		out.channels[c] = f
	}
	return out, nil
}

// Equal reports whether m and o hold identical samples.
func (m MultiFunction) Equal(o MultiFunction) bool {
	for c := range m.channels {
		if !m.channels[c].Equal(o.channels[c]) {
			return false
		}
	}
	return true
}
