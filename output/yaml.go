package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/weaming/colorchecker-go/processor"
)

type yamlReport struct {
	Name       string      `yaml:"name"`
	Observer   string      `yaml:"observer"`
	Illuminant string      `yaml:"illuminant,omitempty"`
	Weighted   bool        `yaml:"weighted"`
	Shape      [3]float64  `yaml:"shape,flow"`
	Colorspace string      `yaml:"colorspace"`
	Compare    string      `yaml:"compare,omitempty"`
	Patches    []yamlPatch `yaml:"patches"`
}

type yamlPatch struct {
	Name    string     `yaml:"name"`
	XYZ     [3]float64 `yaml:"xyz,flow"`
	XyY     [3]float64 `yaml:"xyY,flow"`
	Lab     [3]float64 `yaml:"lab,flow"`
	RGB     [3]float64 `yaml:"rgb,flow"`
	Encoded [3]float64 `yaml:"encoded,flow"`
	Hex     string     `yaml:"hex"`
	DeltaE  *float64   `yaml:"delta_e,omitempty"`
}

// WriteYAML 以 YAML 输出结果，数值保持完整精度
func WriteYAML(w io.Writer, res *processor.Result) error {
	c := res.Checker
	s := c.Shape()
	rep := yamlReport{
		Name:       c.FullName(),
		Observer:   c.ObserverName(),
		Illuminant: c.IlluminantName(),
		Weighted:   res.Weighted,
		Shape:      [3]float64{s.Start, s.End, s.Interval},
		Colorspace: res.Colorspace.Name,
		Compare:    res.CompareIlluminant,
	}
	for i, kv := range res.XYZ.Order {
		p := yamlPatch{
			Name:    kv.Key,
			XYZ:     kv.Value,
			XyY:     res.XyY.Order[i].Value,
			Lab:     res.Lab.Order[i].Value,
			RGB:     res.RGB.Order[i].Value,
			Encoded: res.Encoded.Order[i].Value,
			Hex:     Swatch(res.SRGB.Order[i].Value),
		}
		if res.DeltaE != nil {
			de := res.DeltaE.Order[i].Value
			p.DeltaE = &de
		}
		rep.Patches = append(rep.Patches, p)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}
	return enc.Close()
}
