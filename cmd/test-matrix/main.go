package main

import (
	"fmt"
	"os"

	"github.com/weaming/colorchecker-go/colorspace"
	"github.com/weaming/colorchecker-go/matrix"
)

func printMatrix(name string, m matrix.Matrix3x3) {
	fmt.Printf("%s:\n", name)
	for i := 0; i < 3; i++ {
		r := m.Row(i)
		fmt.Printf("  [%.7f, %.7f, %.7f]\n", r[0], r[1], r[2])
	}
	fmt.Println()
}

// checkColorspace 比较已发布矩阵与由原色推导的矩阵，并检查互逆性
func checkColorspace(cs *colorspace.RGBColorspace) bool {
	fmt.Printf("=== %s (白点 %s) ===\n\n", cs.Name, cs.WhiteName)
	printMatrix("RGB → XYZ (已发布)", cs.RGBToXYZ)
	printMatrix("XYZ → RGB (已发布)", cs.XYZToRGB)

	ok := true
	npm, err := colorspace.NormalisedPrimaryMatrix(cs.Primaries, cs.WhitePoint)
	if err != nil {
		fmt.Printf("  ✗ 无法由原色推导矩阵: %v\n\n", err)
		return false
	}
	d := npm.MaxAbsDiff(cs.RGBToXYZ)
	fmt.Printf("  原色推导矩阵最大偏差: %.2e\n", d)
	if d > 5e-4 {
		ok = false
	}

	round := cs.XYZToRGB.Multiply(cs.RGBToXYZ).MaxAbsDiff(matrix.Identity3x3())
	fmt.Printf("  XYZ→RGB · RGB→XYZ 与单位矩阵偏差: %.2e\n", round)
	if round > 1e-5 {
		ok = false
	}

	white := cs.XYZToRGB.Apply(cs.WhitePoint.XYZ(1))
	fmt.Printf("  白点 → RGB: [%.6f, %.6f, %.6f]\n", white[0], white[1], white[2])

	if cs.WhitePoint != colorspace.WhiteD65 {
		adapted := cs.XYZToRGBFromD65().Apply(colorspace.WhiteD65.XYZ(1))
		fmt.Printf("  D65 白点 (Bradford 适应后) → RGB: [%.6f, %.6f, %.6f]\n", adapted[0], adapted[1], adapted[2])
		back := cs.RGBToXYZToD65().Multiply(cs.XYZToRGBFromD65()).MaxAbsDiff(matrix.Identity3x3())
		fmt.Printf("  Bradford 往返与单位矩阵偏差: %.2e\n", back)
		if back > 1e-4 {
			ok = false
		}
	}

	if ok {
		fmt.Printf("  ✓ 通过\n\n")
	} else {
		fmt.Printf("  ✗ 偏差过大\n\n")
	}
	return ok
}

func main() {
	failed := 0
	for _, cs := range colorspace.All() {
		if !checkColorspace(cs) {
			failed++
		}
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "错误: %d 个色彩空间未通过检查\n", failed)
		os.Exit(1)
	}
}
