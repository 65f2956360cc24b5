package main

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	transparent = color.NRGBA{0, 0, 0, 0}
	red         = color.NRGBA{255, 0, 0, 255}
	green       = color.NRGBA{0, 255, 0, 255}
	blue        = color.NRGBA{0, 0, 255, 255}
)

// solidImage 创建 w x h 的透明图片，并把 fill 区域涂成 c
func solidImage(w, h int, fill image.Rectangle, c color.NRGBA) *image.NRGBA {
	img := imaging.New(w, h, transparent)
	draw.Draw(img, fill, image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func savePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, imaging.Save(img, path))
	return path
}

func TestImageBBox(t *testing.T) {
	tests := []struct {
		name      string
		img       image.Image
		threshold uint32
		want      image.Rectangle
	}{
		{
			name: "nrgba with border",
			img:  solidImage(20, 20, image.Rect(5, 5, 15, 12), red),
			want: image.Rect(5, 5, 15, 12),
		},
		{
			name: "fully transparent keeps bounds",
			img:  imaging.New(8, 6, transparent),
			want: image.Rect(0, 0, 8, 6),
		},
		{
			name: "opaque",
			img:  imaging.New(8, 6, blue),
			want: image.Rect(0, 0, 8, 6),
		},
		{
			name: "rgba uses generic path",
			img: func() image.Image {
				img := image.NewRGBA(image.Rect(0, 0, 10, 10))
				img.Set(3, 4, color.RGBA{0, 0, 0, 255})
				img.Set(6, 8, color.RGBA{0, 0, 0, 255})
				return img
			}(),
			want: image.Rect(3, 4, 7, 9),
		},
		{
			name: "threshold ignores faint pixels",
			img: func() image.Image {
				img := solidImage(10, 10, image.Rect(2, 2, 4, 4), red)
				img.SetNRGBA(9, 9, color.NRGBA{255, 0, 0, 10})
				return img
			}(),
			threshold: 16,
			want:      image.Rect(2, 2, 4, 4),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, imageBBox(tt.img, tt.threshold))
		})
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	for n, want := range map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 64: 64, 65: 128, 1000: 1024} {
		assert.Equal(t, want, nextPowerOfTwo(n), "n=%d", n)
	}
}

func TestFindImagesNaturalSort(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"img10.png", "img2.png", "img1.png"} {
		savePNG(t, dir, name, imaging.New(1, 1, red))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	paths, err := findImages(dir, true)
	require.NoError(t, err)
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	assert.Equal(t, []string{"img1.png", "img2.png", "img10.png"}, names)
}

func TestFindImagesErrors(t *testing.T) {
	_, err := findImages(filepath.Join(t.TempDir(), "missing"), true)
	assert.Error(t, err)

	_, err = findImages(t.TempDir(), true)
	assert.ErrorContains(t, err, "没有找到")
}

func TestLoadSprites(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		savePNG(t, dir, "a.png", solidImage(20, 20, image.Rect(5, 5, 15, 12), red)),
		savePNG(t, dir, "b.png", imaging.New(12, 8, blue)),
	}

	opts := defaultOptions()
	sprites, err := loadSprites(context.Background(), paths, &opts)
	require.NoError(t, err)
	require.Len(t, sprites, 2)
	assert.Equal(t, "a.png", sprites[0].name)
	assert.Equal(t, image.Rect(0, 0, 20, 20), sprites[0].source)
	assert.Equal(t, image.Rect(5, 5, 15, 12), sprites[0].trim)
	assert.True(t, sprites[0].trimmed())
	assert.False(t, sprites[1].trimmed())

	opts.IsTrimTransparent = false
	sprites, err = loadSprites(context.Background(), paths, &opts)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 20, 20), sprites[0].trim)
	assert.False(t, sprites[0].trimmed())
}

func TestLoadSpritesBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("not a png"), 0644))
	opts := defaultOptions()
	for _, trim := range []bool{true, false} {
		opts.IsTrimTransparent = trim
		_, err := loadSprites(context.Background(), []string{path}, &opts)
		assert.Error(t, err, "trim=%v", trim)
	}
}
