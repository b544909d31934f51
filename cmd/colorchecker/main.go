package main

import (
	"flag"
	"fmt"
	"os"

	"cogentcore.org/core/base/errors"

	"github.com/weaming/colorchecker-go/checker"
	"github.com/weaming/colorchecker-go/output"
	"github.com/weaming/colorchecker-go/processor"
	"github.com/weaming/colorchecker-go/refdata"
)

const version = "1.0.0"

func main() {
	config, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}

	if config.Format != "table" && config.Format != "yaml" {
		fmt.Fprintf(os.Stderr, "错误: 不支持的输出格式: %s\n", config.Format)
		os.Exit(1)
	}

	if err := run(config); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (*output.Config, error) {
	config := output.DefaultConfig()
	fs := flag.NewFlagSet("colorchecker", flag.ExitOnError)

	fs.StringVar(&config.ConfigFile, "config", "", "TOML 配置文件，命令行参数优先")
	fs.StringVar(&config.Checker, "checker", config.Checker, "色卡名称")
	fs.StringVar(&config.Observer, "observer", config.Observer, "标准观察者 (颜色匹配函数)")
	fs.StringVar(&config.Illuminant, "illuminant", config.Illuminant, "光源，为空时只做无光源积分")
	fs.StringVar(&config.ColorSpace, "cs", config.ColorSpace, "RGB 色彩空间")
	fs.StringVar(&config.Shape, "shape", config.Shape, "光谱网格 start,end,interval (nm)")
	fs.BoolVar(&config.Unweighted, "unweighted", false, "不按光源加权（等能光源）")
	fs.StringVar(&config.Compare, "compare", "", "在第二个光源下渲染并输出 ΔE*ab")
	fs.BoolVar(&config.List, "list", false, "列出可用的色卡、观察者、光源和色彩空间")
	fs.StringVar(&config.Format, "format", config.Format, "输出格式: table, yaml")
	fs.BoolVar(&config.Verbose, "v", false, "详细输出")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "colorchecker version %s\n", version)
		fmt.Fprintf(os.Stderr, "\n由光谱反射率计算色卡的 XYZ / xyY / RGB\n\n")
		fmt.Fprintf(os.Stderr, "用法: colorchecker [选项]\n\n")
		fmt.Fprintf(os.Stderr, "选项:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\n示例:\n")
		fmt.Fprintf(os.Stderr, "  colorchecker -illuminant D65 -cs sRGB\n")
		fmt.Fprintf(os.Stderr, "  colorchecker -checker \"Synthetic Neutral 6\" -illuminant A -compare D65\n")
		fmt.Fprintf(os.Stderr, "  colorchecker -config render.toml -format yaml\n")
	}

	fs.Parse(os.Args[1:])

	if config.ConfigFile == "" {
		return &config, nil
	}

	// 先读配置文件，再用显式给出的命令行参数覆盖
	fileConfig := output.DefaultConfig()
	f, err := os.Open(config.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("无法打开配置文件: %w", err)
	}
	defer f.Close()
	if err := output.LoadConfig(f, &fileConfig); err != nil {
		return nil, err
	}
	fileConfig.ConfigFile = config.ConfigFile
	fileConfig.List = config.List
	overrideFromFlags(fs, &fileConfig)
	return &fileConfig, nil
}

// overrideFromFlags 将命令行中显式设置的参数写入 cfg
func overrideFromFlags(fs *flag.FlagSet, cfg *output.Config) {
	fs.Visit(func(fl *flag.Flag) {
		v := fl.Value.String()
		switch fl.Name {
		case "checker":
			cfg.Checker = v
		case "observer":
			cfg.Observer = v
		case "illuminant":
			cfg.Illuminant = v
		case "cs":
			cfg.ColorSpace = v
		case "shape":
			cfg.Shape = v
		case "unweighted":
			cfg.Unweighted = v == "true"
		case "compare":
			cfg.Compare = v
		case "format":
			cfg.Format = v
		case "v":
			cfg.Verbose = v == "true"
		}
	})
}

func loadTables(config *output.Config, logger *checker.Logger) (*refdata.Registry, error) {
	reg := refdata.Default()
	for _, path := range config.Tables {
		logger.Step("加载参考数据", path)
		if err := decodeTables(reg, path); err != nil {
			logger.Done("失败")
			return nil, err
		}
		logger.Done("完成")
	}
	return reg, nil
}

func decodeTables(reg *refdata.Registry, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("无法打开参考数据: %w", err)
	}
	defer func() { errors.Log(f.Close()) }()
	if err := reg.Decode(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func run(config *output.Config) error {
	// 进度信息写到标准错误，结果写到标准输出
	logger := checker.Discard()
	if config.Verbose {
		logger = checker.NewLogger(os.Stderr)
	}

	reg, err := loadTables(config, logger)
	if err != nil {
		return err
	}
	if config.List {
		return output.WriteList(os.Stdout, reg)
	}

	shape, err := output.ParseShape(config.Shape)
	if err != nil {
		return err
	}
	if config.Verbose {
		logger.Info("色卡: %s, 观察者: %s, 光源: %s, 色彩空间: %s",
			config.Checker, config.Observer, config.Illuminant, config.ColorSpace)
	}

	res, err := processor.Process(reg, processor.ProcessOptions{
		Checker:    config.Checker,
		Observer:   config.Observer,
		Illuminant: config.Illuminant,
		ColorSpace: config.ColorSpace,
		Shape:      shape,
		Unweighted: config.Unweighted,
		Compare:    config.Compare,
	}, logger)
	if err != nil {
		return err
	}

	switch config.Format {
	case "yaml":
		err = output.WriteYAML(os.Stdout, res)
	default:
		err = output.WriteTable(os.Stdout, res)
	}
	if err == nil && config.Verbose {
		logger.Total()
	}
	return err
}
