package checker

import (
	"fmt"

	"github.com/weaming/colorchecker-go/colorimetry"
	"github.com/weaming/colorchecker-go/colorspace"
	"github.com/weaming/colorchecker-go/matrix"
	"github.com/weaming/colorchecker-go/spectral"
)

// Patch is one reflectance sample of a chart together with its cached
// tristimulus and RGB values. RGB is only present while the XYZ it was
// derived from is current.
type Patch struct {
	name        string
	reflectance spectral.Function

	xyz      matrix.Vector3
	hasXYZ   bool
	weighted bool

	rgb     matrix.Vector3
	encoded matrix.Vector3
	hasRGB  bool
}

// NewPatch creates a patch without computed values.
func NewPatch(name string, reflectance spectral.Function) *Patch {
	return &Patch{name: name, reflectance: reflectance}
}

// Name returns the patch name.
func (p *Patch) Name() string { return p.name }

// Reflectance returns the patch's spectral reflectance.
func (p *Patch) Reflectance() spectral.Function { return p.reflectance }

// XYZ returns the stored tristimulus values and whether they are current.
func (p *Patch) XYZ() (matrix.Vector3, bool) { return p.xyz, p.hasXYZ }

// RGB returns the stored linear RGB and whether it is current.
func (p *Patch) RGB() (matrix.Vector3, bool) { return p.rgb, p.hasRGB }

// EncodedRGB returns the stored display-encoded RGB.
func (p *Patch) EncodedRGB() (matrix.Vector3, bool) { return p.encoded, p.hasRGB }

// Weighted reports whether the current XYZ was rendered under an
// illuminant.
func (p *Patch) Weighted() bool { return p.hasXYZ && p.weighted }

// ComputeUnweighted integrates the reflectance against cmfs and stores the
// result. Any RGB derived from the previous XYZ is dropped.
func (p *Patch) ComputeUnweighted(cmfs spectral.MultiFunction, shape spectral.Shape) (matrix.Vector3, error) {
	in, err := colorimetry.NewIntegrator(cmfs, spectral.Function{}, shape)
	if err != nil {
		return matrix.Vector3{}, err
	}
	return p.compute(in, false)
}

// ComputeWeighted renders the reflectance under illuminant and stores the
// result.
func (p *Patch) ComputeWeighted(cmfs spectral.MultiFunction, illuminant spectral.Function, shape spectral.Shape) (matrix.Vector3, error) {
	if illuminant.IsZero() {
		return matrix.Vector3{}, &colorimetry.StateError{Op: "render", Patch: p.name, Reason: "no illuminant"}
	}
	in, err := colorimetry.NewIntegrator(cmfs, illuminant, shape)
	if err != nil {
		return matrix.Vector3{}, err
	}
	return p.compute(in, true)
}

// compute integrates with in and stores the result; weighted must match
// the illuminant in was built with.
func (p *Patch) compute(in *colorimetry.Integrator, weighted bool) (matrix.Vector3, error) {
	xyz, err := p.integrate(in)
	if err != nil {
		return matrix.Vector3{}, err
	}
	p.setXYZ(xyz, weighted)
	return xyz, nil
}

// integrate is compute without storing.
func (p *Patch) integrate(in *colorimetry.Integrator) (matrix.Vector3, error) {
	xyz, err := in.XYZ(p.reflectance)
	if err != nil {
		return matrix.Vector3{}, fmt.Errorf("patch %q: %w", p.name, err)
	}
	return xyz, nil
}

func (p *Patch) setXYZ(xyz matrix.Vector3, weighted bool) {
	p.xyz, p.hasXYZ, p.weighted = xyz, true, weighted
	p.clearRGB()
}

func (p *Patch) setRGB(rgb, encoded matrix.Vector3) {
	p.rgb, p.encoded, p.hasRGB = rgb, encoded, true
}

func (p *Patch) clearRGB() {
	p.rgb, p.encoded, p.hasRGB = matrix.Vector3{}, matrix.Vector3{}, false
}

// invalidate forgets XYZ and everything derived from it.
func (p *Patch) invalidate() {
	p.xyz, p.hasXYZ, p.weighted = matrix.Vector3{}, false, false
	p.clearRGB()
}

func (p *Patch) requireXYZ(op string) error {
	if !p.hasXYZ {
		return &colorimetry.StateError{Op: op, Patch: p.name, Reason: "XYZ not computed"}
	}
	return nil
}

// ToRGB returns m·XYZ without storing it.
func (p *Patch) ToRGB(m matrix.Matrix3x3) (matrix.Vector3, error) {
	if err := p.requireXYZ("to RGB"); err != nil {
		return matrix.Vector3{}, err
	}
	return colorimetry.XYZToRGB(p.xyz, m), nil
}

// Convert computes linear and display-encoded RGB in cs without storing
// them.
func (p *Patch) Convert(cs *colorspace.RGBColorspace) (rgb, encoded matrix.Vector3, err error) {
	rgb, err = p.ToRGB(cs.XYZToRGB)
	if err != nil {
		return rgb, encoded, err
	}
	return rgb, cs.EncodeRGB(rgb), nil
}

// ConvertTo is Convert followed by storing the result on the patch.
func (p *Patch) ConvertTo(cs *colorspace.RGBColorspace) error {
	rgb, enc, err := p.Convert(cs)
	if err != nil {
		return err
	}
	p.setRGB(rgb, enc)
	return nil
}

// ToSRGB returns display-encoded sRGB, unclipped.
func (p *Patch) ToSRGB() (matrix.Vector3, error) {
	if err := p.requireXYZ("to sRGB"); err != nil {
		return matrix.Vector3{}, err
	}
	return colorimetry.XYZToSRGB(p.xyz), nil
}

// ToXyY returns the chromaticity and luminance of the patch.
func (p *Patch) ToXyY() (matrix.Vector3, error) {
	if err := p.requireXYZ("to xyY"); err != nil {
		return matrix.Vector3{}, err
	}
	return colorimetry.XYZToXyY(p.xyz), nil
}

// ToLab returns CIE L*a*b* relative to white.
func (p *Patch) ToLab(white matrix.Vector3) (matrix.Vector3, error) {
	if err := p.requireXYZ("to Lab"); err != nil {
		return matrix.Vector3{}, err
	}
	return colorimetry.XYZToLab(p.xyz, white), nil
}
