package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"runtime"
	"sync"

	"atlaspack/rectpack"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"
)

var errSpriteTooLarge = errors.New("图片超出图集尺寸")

// atlasLayout 是一个图集中所有精灵的摆放结果，rect.ID 是精灵的下标
type atlasLayout struct {
	packer *rectpack.Packer
	rects  []rectpack.Rect
}

// packSprites 把精灵依次装入图集，一个图集放不下的精灵进入下一个图集。
// 间距加在每个精灵的右侧和下方，图集本身也放宽同样的间距，
// 所以贴着图集右边和下边的精灵不会因为间距被挤出去。
func packSprites(ctx context.Context, sprites []sprite, opts *Options) ([]atlasLayout, error) {
	logger := loggerFromContext(ctx)
	compare, err := rectpack.ResolveSort(opts.SortMethod)
	if err != nil {
		return nil, err
	}

	pad := opts.SpritePadding
	sizes := make([]rectpack.Size, len(sprites))
	for i, s := range sprites {
		sizes[i] = rectpack.NewSizeID(i, s.trim.Dx()+pad, s.trim.Dy()+pad)
	}
	rectpack.SortSizes(sizes, compare, opts.SortReverse)

	var layouts []atlasLayout
	for len(sizes) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		packer, err := rectpack.NewPacker(opts.AtlasMaxWidth+pad, opts.AtlasMaxHeight+pad)
		if err != nil {
			return nil, err
		}
		packed, rest := packer.InsertAll(sizes...)
		if len(packed) == 0 {
			s := sprites[rest[0].ID]
			return nil, fmt.Errorf("%w: %s (%dx%d) > %dx%d", errSpriteTooLarge,
				s.name, s.trim.Dx(), s.trim.Dy(), opts.AtlasMaxWidth, opts.AtlasMaxHeight)
		}
		for i := range packed {
			packed[i].Width -= pad
			packed[i].Height -= pad
		}
		logger.Debug("图集已填满", "index", len(layouts), "packed", len(packed), "remaining", len(rest),
			"occupancy", fmt.Sprintf("%.2f%%", packer.Occupancy()*100))
		layouts = append(layouts, atlasLayout{packer: packer, rects: packed})
		sizes = rest
	}
	return layouts, nil
}

// size 返回图集图片的尺寸
func (l atlasLayout) size(opts *Options) rectpack.Size {
	size := rectpack.NewSize(opts.AtlasMaxWidth, opts.AtlasMaxHeight)
	if opts.IsAutoSize {
		// 装箱时每个精灵都带着右下方的间距
		bounds := l.packer.Bounds()
		size = rectpack.NewSize(bounds.Width-opts.SpritePadding, bounds.Height-opts.SpritePadding)
	}
	if opts.PowerOfTwo {
		size.Width = nextPowerOfTwo(size.Width)
		size.Height = nextPowerOfTwo(size.Height)
	}
	return size
}

// composeAtlas 把布局中的精灵绘制到一张图集图片上，并生成对应的精灵信息
func composeAtlas(ctx context.Context, layout atlasLayout, sprites []sprite, opts *Options) (*image.NRGBA, map[string]SpriteInfo, error) {
	size := layout.size(opts)
	dst := imaging.New(size.Width, size.Height, color.NRGBA{0, 0, 0, 0})
	infos := make(map[string]SpriteInfo, len(layout.rects))

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, r := range layout.rects {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s := sprites[r.ID]
			src, err := imaging.Open(s.path)
			if err != nil {
				return fmt.Errorf("%s: %w", s.path, err)
			}
			info := newSpriteInfo(s, r)

			mu.Lock()
			defer mu.Unlock()
			draw.Draw(dst, image.Rect(r.X, r.Y, r.Right(), r.Bottom()), src, s.trim.Min, draw.Src)
			infos[s.name] = info
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return dst, infos, nil
}

func newSpriteInfo(s sprite, r rectpack.Rect) SpriteInfo {
	info := SpriteInfo{
		Filename:   s.name,
		Region:     Region{X: r.X, Y: r.Y, W: r.Width, H: r.Height},
		SourceSize: Extent{W: s.source.Dx(), H: s.source.Dy()},
	}
	if s.trimmed() {
		info.Trimmed = true
		info.SourceRect = &Region{
			X: s.trim.Min.X - s.source.Min.X,
			Y: s.trim.Min.Y - s.source.Min.Y,
			W: s.trim.Dx(),
			H: s.trim.Dy(),
		}
	}
	return info
}
