// Package processor 串联色卡计算的完整流程：选择色卡、观察者与光源，
// 计算 XYZ，转换到 RGB，可选地与第二个光源下的结果比较
package processor

import (
	"fmt"

	"cogentcore.org/core/base/ordmap"

	"github.com/weaming/colorchecker-go/checker"
	"github.com/weaming/colorchecker-go/colorspace"
	"github.com/weaming/colorchecker-go/spectral"
)

// ProcessOptions 处理选项
type ProcessOptions struct {
	Checker    string
	Observer   string
	Illuminant string // 为空时只做无光源积分
	ColorSpace string
	Shape      spectral.Shape
	Unweighted bool
	Compare    string // 第二个光源，为空时不比较
}

// Result 处理结果，所有表按色块顺序排列
type Result struct {
	Checker    *checker.Checker
	Colorspace *colorspace.RGBColorspace
	Weighted   bool

	XYZ     *checker.Vectors
	XyY     *checker.Vectors
	Lab     *checker.Vectors
	RGB     *checker.Vectors
	Encoded *checker.Vectors
	SRGB    *checker.Vectors // 用于色块预览

	CompareIlluminant string
	DeltaE            *ordmap.Map[string, float64]
}

// Process 按选项执行计算
func Process(tables checker.Tables, opts ProcessOptions, logger *checker.Logger) (*Result, error) {
	if logger == nil {
		logger = checker.Discard()
	}

	// 1. 光谱网格
	if err := opts.Shape.Validate(); err != nil {
		return nil, err
	}

	// 2. 色卡
	c, err := checker.Load(tables, opts.Checker, logger)
	if err != nil {
		return nil, err
	}
	if err := c.SetShape(opts.Shape); err != nil {
		return nil, err
	}
	logger.Info("色卡: %s (%d 个色块)", c.Name(), c.Len())

	// 3. 观察者，同时计算无光源 XYZ
	if err := c.SelectObserver(tables, opts.Observer); err != nil {
		return nil, err
	}

	// 4. 光源下渲染；不加权时只校验光源名称，结果不带光源
	weighted := opts.Illuminant != "" && !opts.Unweighted
	switch {
	case weighted:
		if err := c.SelectIlluminant(tables, opts.Illuminant); err != nil {
			return nil, err
		}
		if err := c.Recompute(true); err != nil {
			return nil, err
		}
	case opts.Illuminant != "":
		if _, err := tables.Illuminant(opts.Illuminant); err != nil {
			return nil, err
		}
	}

	// 5. 转换到目标色彩空间
	if err := c.SelectColorspace(tables, opts.ColorSpace); err != nil {
		return nil, err
	}

	res := &Result{Checker: c, Colorspace: c.Colorspace(), Weighted: weighted}
	if err := res.collect(); err != nil {
		return nil, err
	}

	// 6. 与另一光源比较
	if opts.Compare != "" {
		if err := res.compare(tables, opts); err != nil {
			return nil, fmt.Errorf("比较 %s: %w", opts.Compare, err)
		}
	}
	return res, nil
}

func (r *Result) collect() error {
	var err error
	c := r.Checker
	if r.XYZ, err = c.AsXYZ(); err != nil {
		return err
	}
	if r.XyY, err = c.AsXyY(); err != nil {
		return err
	}
	if r.Lab, err = c.AsLab(); err != nil {
		return err
	}
	if r.RGB, err = c.AsRGB(); err != nil {
		return err
	}
	if r.Encoded, err = c.AsEncodedRGB(); err != nil {
		return err
	}
	r.SRGB, err = c.AsSRGB()
	return err
}

func (r *Result) compare(tables checker.Tables, opts ProcessOptions) error {
	other, err := checker.Load(tables, opts.Checker, checker.Discard())
	if err != nil {
		return err
	}
	if err := other.SetShape(opts.Shape); err != nil {
		return err
	}
	if err := other.SelectObserver(tables, opts.Observer); err != nil {
		return err
	}
	if err := other.SelectIlluminant(tables, opts.Compare); err != nil {
		return err
	}
	if err := other.Recompute(true); err != nil {
		return err
	}
	r.DeltaE, err = checker.Compare(r.Checker, other)
	if err != nil {
		return err
	}
	r.CompareIlluminant = opts.Compare
	return nil
}
