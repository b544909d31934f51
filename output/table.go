package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/weaming/colorchecker-go/matrix"
	"github.com/weaming/colorchecker-go/processor"
	"github.com/weaming/colorchecker-go/refdata"
)

// Swatch 返回 sRGB 编码值裁剪到 [0,1] 后的十六进制颜色
func Swatch(srgb matrix.Vector3) string {
	return colorful.Color{R: srgb[0], G: srgb[1], B: srgb[2]}.Clamped().Hex()
}

func vec(v matrix.Vector3) string {
	return fmt.Sprintf("%.6f %.6f %.6f", v[0], v[1], v[2])
}

// WriteTable 以对齐的文本表输出结果；终端支持颜色时附带色块预览
func WriteTable(w io.Writer, res *processor.Result) error {
	out := termenv.NewOutput(w)
	c := res.Checker

	mode := "unweighted"
	if res.Weighted {
		mode = c.IlluminantName()
	}
	fmt.Fprintf(w, "%s\n", c.FullName())
	fmt.Fprintf(w, "observer: %s  mode: %s  shape: %s  colorspace: %s\n\n",
		c.ObserverName(), mode, c.Shape(), res.Colorspace.Name)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := []string{"", "patch", "X Y Z", "x y Y", "L* a* b*", "RGB (linear)", "RGB (encoded)", "hex"}
	if res.DeltaE != nil {
		header = append(header, "ΔE*ab "+res.CompareIlluminant)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for i, kv := range res.XYZ.Order {
		hex := Swatch(res.SRGB.Order[i].Value)
		swatch := out.String("  ").Background(out.Color(hex)).String()
		row := []string{
			swatch,
			kv.Key,
			vec(kv.Value),
			vec(res.XyY.Order[i].Value),
			fmt.Sprintf("%.3f %.3f %.3f", res.Lab.Order[i].Value[0], res.Lab.Order[i].Value[1], res.Lab.Order[i].Value[2]),
			vec(res.RGB.Order[i].Value),
			vec(res.Encoded.Order[i].Value),
			hex,
		}
		if res.DeltaE != nil {
			row = append(row, fmt.Sprintf("%.3f", res.DeltaE.Order[i].Value))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// WriteList 列出可用的参考数据名称
func WriteList(w io.Writer, reg *refdata.Registry) error {
	sections := []struct {
		title string
		names []string
	}{
		{"checkers", reg.CheckerNames()},
		{"observers", reg.ObserverNames()},
		{"illuminants", reg.IlluminantNames()},
		{"colorspaces", reg.ColorspaceNames()},
	}
	for _, s := range sections {
		if _, err := fmt.Fprintf(w, "%s:\n", s.title); err != nil {
			return err
		}
		for _, n := range s.names {
			fmt.Fprintf(w, "  %s\n", n)
		}
	}
	return nil
}
