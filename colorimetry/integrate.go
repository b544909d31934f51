// Package colorimetry turns spectral data into CIE XYZ tristimulus values
// and converts those into RGB, xyY and L*a*b*.
//
// All integrations run on one spectral.Shape: the reflectance, the
// illuminant and the colour matching functions are resampled onto it before
// summation, so every sum runs over the identical wavelength grid. Results
// follow the relative colorimetry convention with Y = 1 for the perfect
// reflecting diffuser.
package colorimetry

import (
	"fmt"
	"math"

	"github.com/weaming/colorchecker-go/matrix"
	"github.com/weaming/colorchecker-go/spectral"
)

// Integrator holds the illuminant-weighted matching functions for one
// shape. It is read-only after construction and safe for concurrent use.
type Integrator struct {
	shape   spectral.Shape
	weights []matrix.Vector3
	k       float64
}

// NewIntegrator prepares illuminant-weighted integration:
//
//	k   = 100 / Σ S(λ)·ȳ(λ)
//	XYZ = k · Σ S(λ)·R(λ)·CMF(λ) / 100
//
// A zero illuminant stands for the equal-energy illuminant (S ≡ 1).
func NewIntegrator(cmfs spectral.MultiFunction, illuminant spectral.Function, shape spectral.Shape) (*Integrator, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	cmf, err := cmfs.Resample(shape)
	if err != nil {
		return nil, fmt.Errorf("resample matching functions: %w", err)
	}
	var spd spectral.Function
	if !illuminant.IsZero() {
		spd, err = illuminant.Resample(shape)
		if err != nil {
			return nil, fmt.Errorf("resample illuminant: %w", err)
		}
	}

	n := cmf.Len()
	in := &Integrator{shape: shape, weights: make([]matrix.Vector3, n)}
	ySum := 0.0
	for i := 0; i < n; i++ {
		_, c := cmf.Sample(i)
		s := 1.0
		if !spd.IsZero() {
			_, s = spd.Sample(i)
		}
		in.weights[i] = c.Scale(s)
		ySum += in.weights[i][1]
	}
	if ySum == 0 || math.IsNaN(ySum) || math.IsInf(ySum, 0) {
		return nil, &spectral.DomainError{Param: "illuminant", Value: ySum,
			Reason: "Σ S·ȳ must be finite and non-zero"}
	}
	in.k = 100 / ySum
	return in, nil
}

// NewRawIntegrator prepares the plain sum XYZ = Σ R(λ)·CMF(λ) / 100,
// without illuminant and without normalisation.
func NewRawIntegrator(cmfs spectral.MultiFunction, shape spectral.Shape) (*Integrator, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	cmf, err := cmfs.Resample(shape)
	if err != nil {
		return nil, fmt.Errorf("resample matching functions: %w", err)
	}
	in := &Integrator{shape: shape, weights: make([]matrix.Vector3, cmf.Len()), k: 1}
	for i := range in.weights {
		_, in.weights[i] = cmf.Sample(i)
	}
	return in, nil
}

// Shape returns the integration grid.
func (in *Integrator) Shape() spectral.Shape {
	return in.shape
}

// Normalisation returns the constant k applied before the final /100.
func (in *Integrator) Normalisation() float64 {
	return in.k
}

// XYZ integrates the reflectance r.
func (in *Integrator) XYZ(r spectral.Function) (matrix.Vector3, error) {
	rr, err := r.Resample(in.shape)
	if err != nil {
		return matrix.Vector3{}, err
	}
	var sum matrix.Vector3
	for i, w := range in.weights {
		_, v := rr.Sample(i)
		sum = sum.Add(w.Scale(v))
	}
	return sum.Scale(in.k / 100), nil
}

// Integrate is the unweighted (no explicit light source) integration. It
// assumes the equal-energy illuminant, so a perfect reflector yields Y = 1.
func Integrate(r spectral.Function, cmfs spectral.MultiFunction, shape spectral.Shape) (matrix.Vector3, error) {
	in, err := NewIntegrator(cmfs, spectral.Function{}, shape)
	if err != nil {
		return matrix.Vector3{}, err
	}
	return in.XYZ(r)
}

// IntegrateRaw returns Σ R(λ)·CMF(λ) / 100 over the grid of shape.
func IntegrateRaw(r spectral.Function, cmfs spectral.MultiFunction, shape spectral.Shape) (matrix.Vector3, error) {
	in, err := NewRawIntegrator(cmfs, shape)
	if err != nil {
		return matrix.Vector3{}, err
	}
	return in.XYZ(r)
}

// Render integrates r lit by illuminant, normalised so that the
// illuminant's own white surface has Y = 1.
func Render(r, illuminant spectral.Function, cmfs spectral.MultiFunction, shape spectral.Shape) (matrix.Vector3, error) {
	if illuminant.IsZero() {
		return matrix.Vector3{}, &spectral.DomainError{Param: "illuminant", Value: 0, Reason: "no samples"}
	}
	in, err := NewIntegrator(cmfs, illuminant, shape)
	if err != nil {
		return matrix.Vector3{}, err
	}
	return in.XYZ(r)
}

// WhitePoint returns the XYZ of the perfect reflecting diffuser under
// illuminant (Y = 1). A zero illuminant gives the equal-energy white.
func WhitePoint(illuminant spectral.Function, cmfs spectral.MultiFunction, shape spectral.Shape) (matrix.Vector3, error) {
	in, err := NewIntegrator(cmfs, illuminant, shape)
	if err != nil {
		return matrix.Vector3{}, err
	}
	return in.WhitePoint(), nil
}

// WhitePoint returns the XYZ of a reflectance ≡ 1 on the integrator's grid.
func (in *Integrator) WhitePoint() matrix.Vector3 {
	var sum matrix.Vector3
	for _, w := range in.weights {
		sum = sum.Add(w)
	}
	return sum.Scale(in.k / 100)
}
