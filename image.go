package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/maruel/natural"
	"golang.org/x/sync/errgroup"
)

// sprite 描述一张待打包的源图片
type sprite struct {
	path   string
	name   string          // 文件名，作为元数据中的键
	source image.Rectangle // 原图边界
	trim   image.Rectangle // 打包时保留的区域，未裁切时等于 source
}

func (s sprite) trimmed() bool {
	return s.trim != s.source
}

// findImages 列出目录中的 PNG 文件
func findImages(dir string, naturalSort bool) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("输入目录 %s: %w", dir, err)
	}
	paths, err := filepath.Glob(filepath.Join(dir, "*.png"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("输入目录 %s 中没有找到任何图片文件", dir)
	}
	if naturalSort {
		sort.Sort(natural.StringSlice(paths))
	}
	return paths, nil
}

// loadSprites 并行读取图片尺寸，开启裁切时完整解码并计算非透明区域。
func loadSprites(ctx context.Context, paths []string, opts *Options) ([]sprite, error) {
	sprites := make([]sprite, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s := sprite{path: path, name: filepath.Base(path)}
			if opts.IsTrimTransparent {
				src, err := imaging.Open(path)
				if err != nil {
					return fmt.Errorf("无法解码图片 %s: %w", path, err)
				}
				s.source = src.Bounds()
				s.trim = imageBBox(src, opts.TransparencyThreshold)
			} else {
				cfg, err := decodeConfig(path)
				if err != nil {
					return err
				}
				s.source = image.Rect(0, 0, cfg.Width, cfg.Height)
				s.trim = s.source
			}
			sprites[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sprites, nil
}

// decodeConfig 只解码图片头部以获取尺寸
func decodeConfig(path string) (image.Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return image.Config{}, err
	}
	defer file.Close()
	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return image.Config{}, fmt.Errorf("无法解码图片 %s: %w", path, err)
	}
	return cfg, nil
}

// imageBBox 返回 alpha 大于 alphaThreshold 的像素所在的最小边界。
// 图片完全透明时返回原边界，避免产生空尺寸。
func imageBBox(img image.Image, alphaThreshold uint32) image.Rectangle {
	bounds := img.Bounds()
	if bounds.Empty() {
		return image.Rectangle{}
	}
	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X, bounds.Min.Y
	found := false
	visit := func(x, y int) {
		found = true
		minX, minY = min(minX, x), min(minY, y)
		maxX, maxY = max(maxX, x), max(maxY, y)
	}
	switch src := img.(type) {
	case *image.NRGBA:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			i := src.PixOffset(bounds.Min.X, y)
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				if uint32(src.Pix[i+3]) > alphaThreshold {
					visit(x, y)
				}
				i += 4
			}
		}
	default:
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				_, _, _, a := img.At(x, y).RGBA()
				if a>>8 > alphaThreshold { // RGBA() 返回16位
					visit(x, y)
				}
			}
		}
	}
	if !found {
		return bounds
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
