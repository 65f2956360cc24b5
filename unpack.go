package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// unpack 根据元数据把图集还原为单独的图片，裁切过的图片会恢复原始尺寸。
func unpack(ctx context.Context, metaPath, outputDir string) (int, error) {
	logger := loggerFromContext(ctx)
	data, err := readMetadata(metaPath)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return 0, fmt.Errorf("创建输出目录失败: %w", err)
	}

	count := 0
	atlasDir := filepath.Dir(metaPath)
	for _, atlas := range data.Atlases {
		atlasImagePath := filepath.Join(atlasDir, atlas.AtlasName)
		atlasImg, err := imaging.Open(atlasImagePath)
		if err != nil {
			return count, fmt.Errorf("打开图集图片 %s: %w", atlasImagePath, err)
		}
		logger.Debug("解包图集", "atlas", atlas.AtlasName, "sprites", len(atlas.SpriteList))

		for name, sprite := range atlas.SpriteList {
			if err := ctx.Err(); err != nil {
				return count, err
			}
			outputPath := filepath.Join(outputDir, filepath.Base(name))
			if err := imaging.Save(extractSprite(atlasImg, sprite), outputPath); err != nil {
				return count, fmt.Errorf("保存 %s: %w", outputPath, err)
			}
			count++
		}
	}
	return count, nil
}

// extractSprite 从图集中取出精灵，裁切过的精灵会放回原始尺寸的透明画布上
func extractSprite(atlas image.Image, sprite SpriteInfo) *image.NRGBA {
	region := sprite.Region
	sub := imaging.Crop(atlas, image.Rect(region.X, region.Y, region.X+region.W, region.Y+region.H))
	if !sprite.Trimmed || sprite.SourceRect == nil {
		return sub
	}
	full := imaging.New(sprite.SourceSize.W, sprite.SourceSize.H, color.NRGBA{0, 0, 0, 0})
	at := image.Pt(sprite.SourceRect.X, sprite.SourceRect.Y)
	draw.Draw(full, image.Rectangle{Min: at, Max: at.Add(sub.Bounds().Size())}, sub, image.Point{}, draw.Src)
	return full
}
