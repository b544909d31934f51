// Package spectral holds wavelength-indexed data: sampling grids
// ([Shape]), single-valued distributions ([Function]) and the
// three-channel colour matching functions of an observer ([MultiFunction]).
package spectral

import (
	"fmt"
	"math"
)

// gridEpsilon absorbs floating point noise when (End-Start)/Interval is
// meant to be an integer.
const gridEpsilon = 1e-9

// MaxSamples bounds the number of wavelengths a Shape may describe.
const MaxSamples = 1_000_000

// DefaultShape is the 380-780 nm, 5 nm grid used unless a caller
// picks another one.
var DefaultShape = Shape{Start: 380, End: 780, Interval: 5}

// Shape is a uniform wavelength grid {Start, Start+Interval, ..., End}.
//
// When Interval does not divide End-Start evenly the grid stops at the last
// wavelength not exceeding End.
type Shape struct {
	Start    float64
	End      float64
	Interval float64
}

// DomainError reports an invalid spectral parameter.
type DomainError struct {
	Param  string
	Value  any
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("spectral: invalid %s %v: %s", e.Param, e.Value, e.Reason)
}

// Validate returns a *DomainError if the shape is unusable.
func (s Shape) Validate() error {
	switch {
	case math.IsNaN(s.Interval) || s.Interval <= 0 || math.IsInf(s.Interval, 0):
		return &DomainError{Param: "interval", Value: s.Interval, Reason: "must be positive and finite"}
	case math.IsNaN(s.Start) || math.IsNaN(s.End) || math.IsInf(s.Start, 0) || math.IsInf(s.End, 0):
		return &DomainError{Param: "shape", Value: s, Reason: "bounds must be finite"}
	case s.Start >= s.End:
		return &DomainError{Param: "shape", Value: s, Reason: "start must be below end"}
	}
	if n := (s.End - s.Start) / s.Interval; math.IsInf(n, 0) || n >= MaxSamples {
		return &DomainError{Param: "interval", Value: s.Interval,
			Reason: fmt.Sprintf("grid exceeds %d samples", MaxSamples)}
	}
	return nil
}

// Count returns the number of grid wavelengths, floor((End-Start)/Interval)+1.
// It assumes a valid shape, so the count never exceeds MaxSamples.
func (s Shape) Count() int {
	return int(math.Floor((s.End-s.Start)/s.Interval+gridEpsilon)) + 1
}

// At returns the i-th grid wavelength.
func (s Shape) At(i int) float64 {
	return s.Start + float64(i)*s.Interval
}

// Wavelengths returns the grid as a fresh slice.
func (s Shape) Wavelengths() []float64 {
	n := s.Count()
	wl := make([]float64, n)
	for i := range wl {
		wl[i] = s.At(i)
	}
	return wl
}

// Contains reports whether wl lies within [Start, End].
func (s Shape) Contains(wl float64) bool {
	return wl >= s.Start && wl <= s.End
}

func (s Shape) String() string {
	return fmt.Sprintf("SpectralShape(%g, %g, %g)", s.Start, s.End, s.Interval)
}
