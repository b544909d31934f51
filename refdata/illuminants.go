package refdata

import (
	"math"

	"github.com/weaming/colorchecker-go/spectral"
)

// 光源在 300–830 nm、5 nm 的网格上生成
var illuminantShape = spectral.Shape{Start: 300, End: 830, Interval: 5}

// 普朗克辐射常数
const (
	planckC1 = 3.741771852e-16 // W·m²
	planckC2 = 1.4387768775e-2 // m·K
)

// EqualEnergy returns CIE illuminant E (S ≡ 100).
func EqualEnergy() spectral.Function {
	f, err := spectral.Constant(illuminantShape, 100)
	if err != nil {
		panic(err)
	}
	return f
}

// IlluminantA returns CIE standard illuminant A as defined in CIE 015:
//
//	S(λ) = 100 · (560/λ)^5 · (exp(1.435e7/(2848·560)) − 1) / (exp(1.435e7/(2848·λ)) − 1)
func IlluminantA() spectral.Function {
	const c2 = 1.435e7 // nm·K
	num := math.Exp(c2/(2848*560)) - 1
	f, err := spectral.Generate(illuminantShape, func(wl float64) float64 {
		return 100 * math.Pow(560/wl, 5) * num / (math.Exp(c2/(2848*wl)) - 1)
	})
	if err != nil {
		panic(err)
	}
	return f
}

// Blackbody returns the Planckian radiator at temperature cct (kelvin) on
// shape, normalised to 100 at 560 nm.
func Blackbody(cct float64, shape spectral.Shape) (spectral.Function, error) {
	if !(cct > 0) || math.IsInf(cct, 0) {
		return spectral.Function{}, &spectral.DomainError{Param: "temperature", Value: cct, Reason: "must be positive"}
	}
	planck := func(wl float64) float64 {
		l := wl * 1e-9
		return planckC1 / math.Pow(l, 5) / (math.Exp(planckC2/(l*cct)) - 1)
	}
	ref := planck(560)
	return spectral.Generate(shape, func(wl float64) float64 {
		return 100 * planck(wl) / ref
	})
}
