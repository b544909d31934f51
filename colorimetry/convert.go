package colorimetry

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/weaming/colorchecker-go/colorspace"
	"github.com/weaming/colorchecker-go/matrix"
)

// ReferenceChromaticity is the xy returned by XYZToXyY for black
// (X+Y+Z = 0): CIE D65.
var ReferenceChromaticity = colorspace.WhiteD65

var referenceWhite = ReferenceChromaticity.XYZ(1)

// XYZToRGB 线性转换 RGB = M · XYZ，不做裁剪
func XYZToRGB(xyz matrix.Vector3, m matrix.Matrix3x3) matrix.Vector3 {
	return colorspace.ConvertXYZToRGB(xyz, m)
}

// XYZToEncodedRGB 先做线性转换，再应用色彩空间的 OETF
func XYZToEncodedRGB(xyz matrix.Vector3, cs *colorspace.RGBColorspace) matrix.Vector3 {
	return cs.EncodeRGB(XYZToRGB(xyz, cs.XYZToRGB))
}

// XYZToSRGB 转换到显示编码的 sRGB，不做裁剪
func XYZToSRGB(xyz matrix.Vector3) matrix.Vector3 {
	return colorspace.ApplySRGBGamma(XYZToRGB(xyz, colorspace.SRGB.XYZToRGB))
}

// XYZToXyY projects XYZ to chromaticity plus luminance. Black falls back
// to ReferenceChromaticity with Y unchanged.
func XYZToXyY(xyz matrix.Vector3) matrix.Vector3 {
	x, y, Y := colorful.XyzToXyyWhiteRef(xyz[0], xyz[1], xyz[2], referenceWhite)
	return matrix.Vector3{x, y, Y}
}

// XyYToXYZ is the inverse of XYZToXyY; y = 0 yields X = Z = 0.
func XyYToXYZ(xyY matrix.Vector3) matrix.Vector3 {
	X, Y, Z := colorful.XyyToXyz(xyY[0], xyY[1], xyY[2])
	return matrix.Vector3{X, Y, Z}
}

// XYZToLab returns CIE 1976 L*a*b* (L* in 0..100) relative to white.
func XYZToLab(xyz, white matrix.Vector3) matrix.Vector3 {
	l, a, b := colorful.XyzToLabWhiteRef(xyz[0], xyz[1], xyz[2], white)
	return matrix.Vector3{100 * l, 100 * a, 100 * b}
}

// DeltaE76 CIE 1976 色差 ΔE*ab
func DeltaE76(lab1, lab2 matrix.Vector3) float64 {
	d := lab1.Sub(lab2)
	return math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
}
