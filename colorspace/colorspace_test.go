package colorspace

import (
	"math"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weaming/colorchecker-go/matrix"
)

func TestPublishedMatricesArePairs(t *testing.T) {
	for _, cs := range All() {
		d := cs.RGBToXYZ.Multiply(cs.XYZToRGB).MaxAbsDiff(matrix.Identity3x3())
		assert.Less(t, d, 1e-6, cs.Name)
	}
}

func TestPublishedMatricesMatchPrimaries(t *testing.T) {
	for _, cs := range All() {
		npm, err := NormalisedPrimaryMatrix(cs.Primaries, cs.WhitePoint)
		require.NoError(t, err, cs.Name)
		assert.Less(t, npm.MaxAbsDiff(cs.RGBToXYZ), 5e-4, cs.Name)
	}
}

func TestWhiteMapsToEqualRGB(t *testing.T) {
	for _, cs := range All() {
		if cs.WhitePoint != WhiteD65 {
			continue
		}
		rgb := ConvertXYZToRGB(D65WhitePoint, cs.XYZToRGB)
		for c := 0; c < 3; c++ {
			tolassert.EqualTol(t, 1.0, rgb[c], 1e-3)
		}
	}
	rgb := ConvertXYZToRGB(D50WhitePoint, ProPhotoRGB.XYZToRGB)
	for c := 0; c < 3; c++ {
		tolassert.EqualTol(t, 1.0, rgb[c], 1e-3)
	}
	rgb = ConvertXYZToRGB(D65WhitePoint, ProPhotoRGB.XYZToRGBFromD65())
	for c := 0; c < 3; c++ {
		tolassert.EqualTol(t, 1.0, rgb[c], 1e-3)
	}
}

func TestBradfordRoundTrip(t *testing.T) {
	tolassert.EqualTol(t, 0.0, BradfordD50ToD65.Multiply(BradfordD65ToD50).MaxAbsDiff(matrix.Identity3x3()), 1e-5)
	for _, cs := range All() {
		round := cs.RGBToXYZToD65().Multiply(cs.XYZToRGBFromD65())
		tolassert.EqualTol(t, 0.0, round.MaxAbsDiff(matrix.Identity3x3()), 1e-4)
	}
	white := ProPhotoRGB.RGBToXYZToD65().Apply(matrix.Vector3{1, 1, 1})
	for c := 0; c < 3; c++ {
		tolassert.EqualTol(t, D65WhitePoint[c], white[c], 1e-3)
	}
}

func TestSRGBGammaContinuity(t *testing.T) {
	below := SRGBGamma(math.Nextafter(SRGBThreshold, 0))
	at := SRGBGamma(SRGBThreshold)
	tolassert.EqualTol(t, below, at, 1e-6)
	tolassert.EqualTol(t, 0.040449936, at, 1e-6)

	prev := math.Inf(-1)
	for i := -100; i <= 1200; i++ {
		v := float64(i) / 1000
		e := SRGBGamma(v)
		assert.Greater(t, e, prev, "SRGBGamma not increasing at %g", v)
		prev = e
	}
	assert.Equal(t, 0.0, SRGBGamma(0))
	tolassert.EqualTol(t, 1.0, SRGBGamma(1), 1e-12)
}

func TestTransferRoundTrips(t *testing.T) {
	for _, cs := range All() {
		for _, v := range []float64{0, 0.001, 0.0031308, 0.01, 0.018, 0.18, 0.5, 0.9, 1} {
			tolassert.EqualTol(t, v, cs.Decode(cs.Encode(v)), 1e-8)
		}
		rgb := matrix.Vector3{0.2, 0.4, 0.6}
		back := cs.DecodeRGB(cs.EncodeRGB(rgb))
		for c := range rgb {
			tolassert.EqualTol(t, rgb[c], back[c], 1e-9)
		}
	}
}

func TestGammaSymmetric(t *testing.T) {
	assert.Equal(t, -ApplyGamma(0.25, 2.2), ApplyGamma(-0.25, 2.2))
	assert.Equal(t, -RemoveGamma(0.25, 2.2), RemoveGamma(-0.25, 2.2))
	tolassert.EqualTol(t, 0.5, Gamma(2)(0.25), 1e-12)
	tolassert.EqualTol(t, 0.25, InverseGamma(2)(0.5), 1e-12)
}

func TestOETFContinuity(t *testing.T) {
	tolassert.EqualTol(t, BT709OETF(math.Nextafter(bt709Beta, 0)), BT709OETF(bt709Beta), 1e-9)
	tolassert.EqualTol(t, ROMMOETF(math.Nextafter(1.0/512, 0)), ROMMOETF(1.0/512), 1e-9)
}

func TestChromaticityXYZ(t *testing.T) {
	xyz := WhiteD65.XYZ(1)
	tolassert.EqualTol(t, 0.95047, xyz[0], 1e-4)
	tolassert.EqualTol(t, 1.08883, xyz[2], 1e-3)
	assert.Equal(t, matrix.Vector3{}, Chromaticity{0.3, 0}.XYZ(1))
}

func TestConvertToUint8(t *testing.T) {
	assert.Equal(t, [3]uint8{0, 128, 255}, ConvertToUint8(matrix.Vector3{-0.2, 0.5, 1.3}))
}
