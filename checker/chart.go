package checker

import (
	"cogentcore.org/core/base/ordmap"

	"github.com/weaming/colorchecker-go/colorimetry"
	"github.com/weaming/colorchecker-go/colorspace"
)

// Chart is a read-only view of a rendered checker: patch chromaticities
// and the chromaticity of the light they were rendered under.
type Chart struct {
	Name       string
	Illuminant colorspace.Chromaticity
	Patches    *Vectors // xyY
}

// Chart returns the xyY of every patch together with the illuminant
// chromaticity. Without an illuminant the chart refers to D65.
func (c *Checker) Chart() (*Chart, error) {
	patches, err := c.AsXyY()
	if err != nil {
		return nil, err
	}
	ch := &Chart{Name: c.FullName(), Illuminant: colorspace.WhiteD65, Patches: patches}
	if !c.illuminant.IsZero() && !c.cmfs.IsZero() {
		w, err := colorimetry.WhitePoint(c.illuminant, c.cmfs, c.shape)
		if err != nil {
			return nil, err
		}
		xyY := colorimetry.XYZToXyY(w)
		ch.Illuminant = colorspace.Chromaticity{xyY[0], xyY[1]}
	}
	return ch, nil
}

// Compare returns ΔE*ab for every patch of a against the patch with the
// same name in b. Both are taken to L*a*b* relative to the D65 white so
// that renders under different illuminants share one reference.
func Compare(a, b *Checker) (*ordmap.Map[string, float64], error) {
	labA, err := a.LabRelativeTo(colorspace.D65WhitePoint)
	if err != nil {
		return nil, err
	}
	labB, err := b.LabRelativeTo(colorspace.D65WhitePoint)
	if err != nil {
		return nil, err
	}
	out := ordmap.New[string, float64]()
	for _, kv := range labA.Order {
		other, ok := labB.ValueByKeyTry(kv.Key)
		if !ok {
			return nil, &colorimetry.NotFoundError{Kind: "patch", Name: kv.Key}
		}
		out.Add(kv.Key, colorimetry.DeltaE76(kv.Value, other))
	}
	return out, nil
}
