package main

import (
	"errors"
	"fmt"

	"atlaspack/rectpack"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

// Options 打包参数，可以来自 TOML 配置文件，命令行显式指定的参数优先。
type Options struct {
	InputDir              string `toml:"input"`        // 输入目录
	OutputDir             string `toml:"output"`       // 输出目录
	AtlasMaxWidth         int    `toml:"width"`        // 图集最大宽度
	AtlasMaxHeight        int    `toml:"height"`       // 图集最大高度
	SpritePadding         int    `toml:"padding"`      // 精灵之间的间距
	IsFilesSort           bool   `toml:"natural_sort"` // 是否按文件名自然排序
	IsTrimTransparent     bool   `toml:"trim"`         // 是否修剪透明边
	TransparencyThreshold uint32 `toml:"threshold"`    // 透明度阈值
	IsAutoSize            bool   `toml:"auto_size"`    // 图集是否收缩到实际使用的区域
	PowerOfTwo            bool   `toml:"pow_of_two"`   // 图集尺寸是否取2的幂
	SortMethod            string `toml:"sort"`         // 打包前的排序方式
	SortReverse           bool   `toml:"sort_reverse"` // 是否反向排序
}

func defaultOptions() Options {
	return Options{
		InputDir:          "input",
		OutputDir:         "output",
		AtlasMaxWidth:     rectpack.DefaultSize,
		AtlasMaxHeight:    rectpack.DefaultSize,
		IsFilesSort:       true,
		IsTrimTransparent: true,
		IsAutoSize:        true,
		SortMethod:        "area",
	}
}

// loadOptions 从 TOML 文件读取配置覆盖 opts 中的值，文件里出现未知的键时报错。
func loadOptions(path string, opts *Options) error {
	md, err := toml.DecodeFile(path, opts)
	if err != nil {
		return fmt.Errorf("读取配置文件 %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("配置文件 %s 包含未知的键: %v", path, undecoded)
	}
	return nil
}

// bindFlags 把 opts 的各个字段注册为命令行参数，opts 中的值作为默认值。
func bindFlags(flags *pflag.FlagSet, opts *Options) {
	flags.StringVar(&opts.InputDir, "input", opts.InputDir, "输入目录")
	flags.StringVar(&opts.OutputDir, "output", opts.OutputDir, "输出目录")
	flags.IntVar(&opts.AtlasMaxWidth, "width", opts.AtlasMaxWidth, "图集最大宽度")
	flags.IntVar(&opts.AtlasMaxHeight, "height", opts.AtlasMaxHeight, "图集最大高度")
	flags.IntVar(&opts.SpritePadding, "padding", opts.SpritePadding, "精灵间距")
	flags.BoolVar(&opts.IsFilesSort, "natural-sort", opts.IsFilesSort, "按文件名自然排序")
	flags.BoolVar(&opts.IsTrimTransparent, "trim", opts.IsTrimTransparent, "修剪透明部分")
	flags.Uint32Var(&opts.TransparencyThreshold, "threshold", opts.TransparencyThreshold, "透明度阈值 (0-255)")
	flags.BoolVar(&opts.IsAutoSize, "auto-size", opts.IsAutoSize, "图集收缩到实际使用的区域")
	flags.BoolVar(&opts.PowerOfTwo, "pow-of-two", opts.PowerOfTwo, "图集尺寸取2的幂")
	flags.StringVar(&opts.SortMethod, "sort", opts.SortMethod, "排序方式 (area, perimeter, diff, minside, maxside, ratio, none)")
	flags.BoolVar(&opts.SortReverse, "sort-reverse", opts.SortReverse, "反向排序")
}

// overlayFlags 把命令行中显式指定过的参数从 src 复制到 dst。
func overlayFlags(flags *pflag.FlagSet, dst *Options, src Options) {
	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}
	set("input", func() { dst.InputDir = src.InputDir })
	set("output", func() { dst.OutputDir = src.OutputDir })
	set("width", func() { dst.AtlasMaxWidth = src.AtlasMaxWidth })
	set("height", func() { dst.AtlasMaxHeight = src.AtlasMaxHeight })
	set("padding", func() { dst.SpritePadding = src.SpritePadding })
	set("natural-sort", func() { dst.IsFilesSort = src.IsFilesSort })
	set("trim", func() { dst.IsTrimTransparent = src.IsTrimTransparent })
	set("threshold", func() { dst.TransparencyThreshold = src.TransparencyThreshold })
	set("auto-size", func() { dst.IsAutoSize = src.IsAutoSize })
	set("pow-of-two", func() { dst.PowerOfTwo = src.PowerOfTwo })
	set("sort", func() { dst.SortMethod = src.SortMethod })
	set("sort-reverse", func() { dst.SortReverse = src.SortReverse })
}

func (o *Options) validate() error {
	var errs []error
	if o.AtlasMaxWidth <= 0 || o.AtlasMaxHeight <= 0 {
		errs = append(errs, fmt.Errorf("图集尺寸必须大于0 (当前 %dx%d)", o.AtlasMaxWidth, o.AtlasMaxHeight))
	}
	if o.SpritePadding < 0 {
		errs = append(errs, fmt.Errorf("间距不能为负数 (当前 %d)", o.SpritePadding))
	}
	if o.TransparencyThreshold > 255 {
		errs = append(errs, fmt.Errorf("透明度阈值必须在 0-255 之间 (当前 %d)", o.TransparencyThreshold))
	}
	if _, err := rectpack.ResolveSort(o.SortMethod); err != nil {
		errs = append(errs, err)
	}
	if o.InputDir == "" {
		errs = append(errs, errors.New("未指定输入目录"))
	}
	return errors.Join(errs...)
}
