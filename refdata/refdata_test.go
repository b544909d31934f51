package refdata

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weaming/colorchecker-go/colorimetry"
	"github.com/weaming/colorchecker-go/spectral"
)

func TestDefaultRegistryNames(t *testing.T) {
	r := Default()

	assert.Equal(t, []string{CIE1931Name, CIE1931Alias}, r.ObserverNames())
	assert.Equal(t, []string{"A", "D65", "E"}, r.IlluminantNames())
	assert.Equal(t, []string{GaussianChartName, NeutralChartName}, r.CheckerNames())

	cs := r.ColorspaceNames()
	assert.True(t, slices.IsSorted(cs))
	assert.Contains(t, cs, "sRGB")
	assert.Contains(t, cs, "ProPhoto RGB")
}

func TestAliasSharesEntry(t *testing.T) {
	r := Default()
	a, err := r.Observer(CIE1931Name)
	require.NoError(t, err)
	b, err := r.Observer(CIE1931Alias)
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestLookupNotFound(t *testing.T) {
	r := Default()
	lookups := map[string]func() error{
		"observer":   func() error { _, err := r.Observer("nope"); return err },
		"illuminant": func() error { _, err := r.Illuminant("nope"); return err },
		"checker":    func() error { _, err := r.Checker("nope"); return err },
		"colorspace": func() error { _, err := r.Colorspace("nope"); return err },
	}
	for kind, f := range lookups {
		var nf *colorimetry.NotFoundError
		require.True(t, errors.As(f(), &nf), kind)
		assert.Equal(t, kind, nf.Kind)
		assert.Equal(t, "nope", nf.Name)
	}
}

func TestCheckerIsCopied(t *testing.T) {
	r := Default()
	a, err := r.Checker(NeutralChartName)
	require.NoError(t, err)
	a.Add("extra", spectral.Function{})

	b, err := r.Checker(NeutralChartName)
	require.NoError(t, err)
	assert.Equal(t, 6, b.Len())
	assert.Equal(t, 7, a.Len())
}

func TestNeutralChart(t *testing.T) {
	c := NeutralChart()
	require.Equal(t, 6, c.Len())
	assert.Equal(t, "white 9.5 (.05 D)", c.Order[0].Key)
	wl, v := c.Order[0].Value.Sample(0)
	assert.Equal(t, 380.0, wl)
	tolassert.EqualTol(t, 0.891251, v, 1e-6)
	_, v = c.Order[5].Value.Sample(0)
	tolassert.EqualTol(t, 0.031623, v, 1e-6)
}

func TestGaussianChartRange(t *testing.T) {
	for _, kv := range GaussianChart().Order {
		for _, v := range kv.Value.Values() {
			assert.GreaterOrEqual(t, v, 0.05, kv.Key)
			assert.LessOrEqual(t, v, 0.85+1e-12, kv.Key)
		}
	}
}

func TestIlluminantWhitePoints(t *testing.T) {
	r := Default()
	cmfs, err := r.Observer(CIE1931Name)
	require.NoError(t, err)

	cases := []struct {
		name string
		x, z float64
	}{
		{"A", 1.0983, 0.3556},
		{"D65", 0.9502, 1.0872},
		{"E", 0.9998, 0.9990},
	}
	for _, c := range cases {
		spd, err := r.Illuminant(c.name)
		require.NoError(t, err)
		w, err := colorimetry.WhitePoint(spd, cmfs, spectral.DefaultShape)
		require.NoError(t, err)
		tolassert.EqualTol(t, c.x, w[0], 1e-3)
		tolassert.EqualTol(t, 1, w[1], 1e-12)
		tolassert.EqualTol(t, c.z, w[2], 1e-3)
	}
}

func TestIlluminantANormalised(t *testing.T) {
	a := IlluminantA()
	tolassert.EqualTol(t, 100, a.Value(560), 1e-9)
	assert.Less(t, a.Value(400), a.Value(700))
}

func TestBlackbody(t *testing.T) {
	bb, err := Blackbody(6500, spectral.DefaultShape)
	require.NoError(t, err)
	tolassert.EqualTol(t, 100, bb.Value(560), 1e-9)
	assert.Equal(t, spectral.DefaultShape.Count(), bb.Len())

	// a hot radiator is bluer than a cool one
	cool, err := Blackbody(2000, spectral.DefaultShape)
	require.NoError(t, err)
	assert.Less(t, cool.Value(420), bb.Value(420))

	for _, bad := range []float64{0, -10} {
		_, err := Blackbody(bad, spectral.DefaultShape)
		var de *spectral.DomainError
		assert.True(t, errors.As(err, &de))
	}
}

const tablesTOML = `
[[observer]]
name = "tiny"
aliases = ["t"]
wavelengths = [400.0, 500.0, 600.0]
x = [0.1, 0.2, 0.3]
y = [0.5, 1.0, 0.5]
z = [0.3, 0.2, 0.1]

[[illuminant]]
name = "ramp"
wavelengths = [400.0, 500.0, 600.0]
values = [1.0, 2.0, 3.0]

[[illuminant]]
name = "flat"
start = 400.0
end = 600.0
interval = 100.0
values = [1.0, 1.0, 1.0]

[[checker]]
name = "two"

[[checker.patch]]
name = "dark"
start = 400.0
end = 600.0
interval = 100.0
values = [0.1, 0.1, 0.1]

[[checker.patch]]
name = "light"
wavelengths = [400.0, 600.0]
values = [0.9, 0.8]
`

func TestDecode(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Decode(strings.NewReader(tablesTOML)))

	assert.Equal(t, []string{"t", "tiny"}, r.ObserverNames())
	assert.Equal(t, []string{"flat", "ramp"}, r.IlluminantNames())
	assert.Equal(t, []string{"two"}, r.CheckerNames())

	obs, err := r.Observer("t")
	require.NoError(t, err)
	assert.Equal(t, 3, obs.Len())
	tolassert.EqualTol(t, 0.75, obs.Value(450)[1], 1e-12)

	flat, err := r.Illuminant("flat")
	require.NoError(t, err)
	assert.Equal(t, []float64{400, 500, 600}, flat.Wavelengths())

	two, err := r.Checker("two")
	require.NoError(t, err)
	assert.Equal(t, []string{"dark", "light"}, two.Keys())
	light, _ := two.ValueByKeyTry("light")
	tolassert.EqualTol(t, 0.85, light.Value(500), 1e-12)
}

func TestDecodeRejectsAll(t *testing.T) {
	bad := []string{
		// mismatched channel lengths
		`[[observer]]
name = "broken"
wavelengths = [400.0, 500.0]
x = [0.1]
y = [0.1, 0.2]
z = [0.1, 0.2]`,
		// unknown key
		`[[illuminant]]
name = "x"
colour = "red"`,
		// invalid grid
		`[[illuminant]]
name = "x"
start = 500.0
end = 400.0
interval = 10.0
values = [1.0]`,
		// duplicate patch
		`[[checker]]
name = "dup"
[[checker.patch]]
name = "p"
wavelengths = [400.0]
values = [0.5]
[[checker.patch]]
name = "p"
wavelengths = [400.0]
values = [0.5]`,
		// no patches
		`[[checker]]
name = "empty"`,
	}
	for _, doc := range bad {
		r := NewRegistry()
		// a valid entry before the broken one must not be kept
		doc = "[[illuminant]]\nname = \"ok\"\nwavelengths = [500.0]\nvalues = [1.0]\n\n" + doc
		assert.Error(t, r.Decode(strings.NewReader(doc)), doc)
		assert.Empty(t, r.IlluminantNames())
		assert.Empty(t, r.ObserverNames())
		assert.Empty(t, r.CheckerNames())
	}
}
