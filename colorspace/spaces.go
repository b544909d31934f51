package colorspace

import (
	"github.com/weaming/colorchecker-go/matrix"
)

// 标准色彩空间定义

// Chromaticity CIE xy 色度坐标
type Chromaticity [2]float64

// XYZ 返回亮度为 Y 的 XYZ 三刺激值
func (c Chromaticity) XYZ(Y float64) matrix.Vector3 {
	if c[1] == 0 {
		return matrix.Vector3{0, 0, 0}
	}
	return matrix.Vector3{c[0] * Y / c[1], Y, (1 - c[0] - c[1]) * Y / c[1]}
}

// 常用白点色度 (CIE 1931 2°)
var (
	WhiteD65 = Chromaticity{0.3127, 0.3290}
	WhiteD50 = Chromaticity{0.3457, 0.3585}
)

// D65 白点 (CIE 标准光源 D65)
var D65WhitePoint = matrix.Vector3{0.95047, 1.0, 1.08883}

// D50 白点
var D50WhitePoint = matrix.Vector3{0.96422, 1.0, 0.82521}

// Bradford 色适应矩阵 (D65 → D50)
var BradfordD65ToD50 = matrix.Matrix3x3{
	1.0478112, 0.0228866, -0.0501270,
	0.0295424, 0.9904844, -0.0170491,
	-0.0092345, 0.0150436, 0.7521316,
}

// Bradford 色适应矩阵 (D50 → D65)
var BradfordD50ToD65 = matrix.Matrix3x3{
	0.9555766, -0.0230393, 0.0631636,
	-0.0282895, 1.0099416, 0.0210077,
	0.0122982, -0.0204830, 1.3299098,
}

// RGBColorspace 描述一个 RGB 色彩空间：原色、白点、已发布的 XYZ ↔ RGB 矩阵
// 以及传递函数。矩阵是静态参考数据，不在运行时求逆得到。
type RGBColorspace struct {
	Name       string
	Primaries  [3]Chromaticity
	WhitePoint Chromaticity
	WhiteName  string

	// XYZToRGB 将相对于 WhitePoint 的 XYZ 转换为线性 RGB
	XYZToRGB matrix.Matrix3x3
	// RGBToXYZ 将线性 RGB 转换为 XYZ
	RGBToXYZ matrix.Matrix3x3

	// Encode 光电转换函数 (OETF)：线性 → 显示编码
	Encode TransferFunc
	// Decode Encode 的逆
	Decode TransferFunc
}

// EncodeRGB 对 RGB 向量逐分量应用 OETF
func (cs *RGBColorspace) EncodeRGB(rgb matrix.Vector3) matrix.Vector3 {
	return rgb.Map(cs.Encode)
}

// DecodeRGB 对 RGB 向量逐分量应用 OETF 的逆
func (cs *RGBColorspace) DecodeRGB(rgb matrix.Vector3) matrix.Vector3 {
	return rgb.Map(cs.Decode)
}

// XYZToRGBFromD65 返回用于 D65 相对 XYZ 输入的矩阵。
// 非 D65 白点（ProPhoto RGB 的 D50）先做 Bradford 适应。
func (cs *RGBColorspace) XYZToRGBFromD65() matrix.Matrix3x3 {
	if cs.WhitePoint == WhiteD50 {
		return cs.XYZToRGB.Multiply(BradfordD65ToD50)
	}
	return cs.XYZToRGB
}

// RGBToXYZToD65 是 XYZToRGBFromD65 的逆：线性 RGB → D65 相对 XYZ
func (cs *RGBColorspace) RGBToXYZToD65() matrix.Matrix3x3 {
	if cs.WhitePoint == WhiteD50 {
		return BradfordD50ToD65.Multiply(cs.RGBToXYZ)
	}
	return cs.RGBToXYZ
}

func (cs *RGBColorspace) String() string {
	return cs.Name
}

// SRGB IEC 61966-2-1 sRGB
var SRGB = &RGBColorspace{
	Name:       "sRGB",
	Primaries:  [3]Chromaticity{{0.64, 0.33}, {0.30, 0.60}, {0.15, 0.06}},
	WhitePoint: WhiteD65,
	WhiteName:  "D65",
	XYZToRGB: matrix.Matrix3x3{
		3.2404542, -1.5371385, -0.4985314,
		-0.9692660, 1.8760108, 0.0415560,
		0.0556434, -0.2040259, 1.0572252,
	},
	RGBToXYZ: matrix.Matrix3x3{
		0.4124564, 0.3575761, 0.1804375,
		0.2126729, 0.7151522, 0.0721750,
		0.0193339, 0.1191920, 0.9503041,
	},
	Encode: SRGBGamma,
	Decode: SRGBInverseGamma,
}

// BT709 ITU-R BT.709：与 sRGB 相同的原色，不同的 OETF
var BT709 = &RGBColorspace{
	Name:       "ITU-R BT.709",
	Primaries:  SRGB.Primaries,
	WhitePoint: WhiteD65,
	WhiteName:  "D65",
	XYZToRGB:   SRGB.XYZToRGB,
	RGBToXYZ:   SRGB.RGBToXYZ,
	Encode:     BT709OETF,
	Decode:     BT709InverseOETF,
}

// AdobeRGB Adobe RGB (1998)
var AdobeRGB = &RGBColorspace{
	Name:       "Adobe RGB (1998)",
	Primaries:  [3]Chromaticity{{0.64, 0.33}, {0.21, 0.71}, {0.15, 0.06}},
	WhitePoint: WhiteD65,
	WhiteName:  "D65",
	XYZToRGB: matrix.Matrix3x3{
		2.0413690, -0.5649464, -0.3446944,
		-0.9692660, 1.8760108, 0.0415560,
		0.0134474, -0.1183897, 1.0154096,
	},
	RGBToXYZ: matrix.Matrix3x3{
		0.5767309, 0.1855540, 0.1881852,
		0.2973769, 0.6273491, 0.0752741,
		0.0270343, 0.0706872, 0.9911085,
	},
	Encode: Gamma(AdobeRGBGamma),
	Decode: InverseGamma(AdobeRGBGamma),
}

// ProPhotoRGB ROMM RGB，白点 D50
var ProPhotoRGB = &RGBColorspace{
	Name:       "ProPhoto RGB",
	Primaries:  [3]Chromaticity{{0.7347, 0.2653}, {0.1596, 0.8404}, {0.0366, 0.0001}},
	WhitePoint: WhiteD50,
	WhiteName:  "D50",
	XYZToRGB: matrix.Matrix3x3{
		1.3459433, -0.2556075, -0.0511118,
		-0.5445989, 1.5081673, 0.0205351,
		0.0000000, 0.0000000, 1.2118128,
	},
	RGBToXYZ: matrix.Matrix3x3{
		0.7976749, 0.1351917, 0.0313534,
		0.2880402, 0.7118741, 0.0000857,
		0.0000000, 0.0000000, 0.8252100,
	},
	Encode: ROMMOETF,
	Decode: ROMMInverseOETF,
}

// BT2020 ITU-R BT.2020
var BT2020 = &RGBColorspace{
	Name:       "ITU-R BT.2020",
	Primaries:  [3]Chromaticity{{0.708, 0.292}, {0.170, 0.797}, {0.131, 0.046}},
	WhitePoint: WhiteD65,
	WhiteName:  "D65",
	XYZToRGB: matrix.Matrix3x3{
		1.7166512, -0.3556708, -0.2533663,
		-0.6666844, 1.6164812, 0.0157685,
		0.0176399, -0.0427706, 0.9421031,
	},
	RGBToXYZ: matrix.Matrix3x3{
		0.6369580, 0.1446169, 0.1688810,
		0.2627002, 0.6779981, 0.0593017,
		0.0000000, 0.0280727, 1.0609851,
	},
	Encode: BT709OETF,
	Decode: BT709InverseOETF,
}

// DisplayP3 Display P3：P3 原色，D65 白点，sRGB 曲线
var DisplayP3 = &RGBColorspace{
	Name:       "Display P3",
	Primaries:  [3]Chromaticity{{0.680, 0.320}, {0.265, 0.690}, {0.150, 0.060}},
	WhitePoint: WhiteD65,
	WhiteName:  "D65",
	XYZToRGB: matrix.Matrix3x3{
		2.4934969, -0.9313836, -0.4027108,
		-0.8294890, 1.7626641, 0.0236247,
		0.0358458, -0.0761724, 0.9568845,
	},
	RGBToXYZ: matrix.Matrix3x3{
		0.4865709, 0.2656677, 0.1982173,
		0.2289746, 0.6917385, 0.0792869,
		0.0000000, 0.0451134, 1.0439444,
	},
	Encode: SRGBGamma,
	Decode: SRGBInverseGamma,
}

// All 返回所有内置色彩空间
func All() []*RGBColorspace {
	return []*RGBColorspace{SRGB, BT709, AdobeRGB, ProPhotoRGB, BT2020, DisplayP3}
}

// NormalisedPrimaryMatrix 由原色和白点推导 RGB → XYZ 矩阵 (SMPTE RP 177)。
// 仅用于核对已发布的矩阵，转换本身始终使用已发布值。
func NormalisedPrimaryMatrix(primaries [3]Chromaticity, white Chromaticity) (matrix.Matrix3x3, error) {
	var p matrix.Matrix3x3
	for i, c := range primaries {
		z := 1 - c[0] - c[1]
		p[i] = c[0]
		p[3+i] = c[1]
		p[6+i] = z
	}
	inv, err := p.Inverse()
	if err != nil {
		return matrix.Matrix3x3{}, err
	}
	w := white.XYZ(1)
	s := inv.Apply(w)
	return p.Multiply(matrix.Diagonal3x3(s)), nil
}
