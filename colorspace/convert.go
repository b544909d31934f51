package colorspace

import (
	"math"

	"github.com/weaming/colorchecker-go/matrix"
)

// TransferFunc 单分量传递函数
type TransferFunc func(float64) float64

// AdobeRGBGamma Adobe RGB (1998) 的 gamma：563/256
const AdobeRGBGamma = 563.0 / 256.0

// SRGBThreshold sRGB OETF 线性段与幂函数段的分界
const SRGBThreshold = 0.0031308

// BT.709 / BT.2020 OETF 常数
const (
	bt709Alpha = 1.09929682680944
	bt709Beta  = 0.018053968510807
)

// ApplyGamma 应用 gamma 校正，负值按符号对称处理
func ApplyGamma(value, gamma float64) float64 {
	if value < 0 {
		return -math.Pow(-value, 1.0/gamma)
	}
	return math.Pow(value, 1.0/gamma)
}

// RemoveGamma 移除 gamma 校正（线性化）
func RemoveGamma(value, gamma float64) float64 {
	if value < 0 {
		return -math.Pow(-value, gamma)
	}
	return math.Pow(value, gamma)
}

// Gamma 返回纯幂函数 OETF
func Gamma(gamma float64) TransferFunc {
	return func(v float64) float64 { return ApplyGamma(v, gamma) }
}

// InverseGamma 返回 Gamma(gamma) 的逆
func InverseGamma(gamma float64) TransferFunc {
	return func(v float64) float64 { return RemoveGamma(v, gamma) }
}

// SRGBGamma sRGB gamma 曲线（精确版本）
func SRGBGamma(linear float64) float64 {
	if linear < SRGBThreshold {
		return 12.92 * linear
	}
	return 1.055*math.Pow(linear, 1.0/2.4) - 0.055
}

// SRGBInverseGamma sRGB 逆 gamma 曲线
func SRGBInverseGamma(srgb float64) float64 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return math.Pow((srgb+0.055)/1.055, 2.4)
}

// BT709OETF ITU-R BT.709 / BT.2020 光电转换
func BT709OETF(linear float64) float64 {
	if linear < bt709Beta {
		return 4.5 * linear
	}
	return bt709Alpha*math.Pow(linear, 0.45) - (bt709Alpha - 1)
}

// BT709InverseOETF BT709OETF 的逆
func BT709InverseOETF(v float64) float64 {
	if v < 4.5*bt709Beta {
		return v / 4.5
	}
	return math.Pow((v+bt709Alpha-1)/bt709Alpha, 1/0.45)
}

// ROMMOETF ProPhoto (ROMM) RGB 编码曲线
func ROMMOETF(linear float64) float64 {
	if linear < 1.0/512 {
		return 16 * linear
	}
	return math.Pow(linear, 1/1.8)
}

// ROMMInverseOETF ROMMOETF 的逆
func ROMMInverseOETF(v float64) float64 {
	if v < 16.0/512 {
		return v / 16
	}
	return math.Pow(v, 1.8)
}

// ConvertXYZToRGB 将 XYZ 转换到 RGB 色彩空间
func ConvertXYZToRGB(xyz matrix.Vector3, xyzToRGB matrix.Matrix3x3) matrix.Vector3 {
	return xyzToRGB.Apply(xyz)
}

// ApplySRGBGamma 对 RGB 向量应用 sRGB gamma 曲线
func ApplySRGBGamma(rgb matrix.Vector3) matrix.Vector3 {
	return rgb.Map(SRGBGamma)
}

// ConvertToUint8 将浮点 RGB 转换为 8-bit 整数
func ConvertToUint8(rgb matrix.Vector3) [3]uint8 {
	return [3]uint8{
		uint8(math.Min(255, math.Max(0, rgb[0]*255+0.5))),
		uint8(math.Min(255, math.Max(0, rgb[1]*255+0.5))),
		uint8(math.Min(255, math.Max(0, rgb[2]*255+0.5))),
	}
}
