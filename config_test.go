package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadOptions(t *testing.T) {
	path := writeFile(t, t.TempDir(), "atlaspack.toml", `
input = "sprites"
width = 1024
height = 512
padding = 2
trim = false
threshold = 16
sort = "maxside"
`)
	opts := defaultOptions()
	require.NoError(t, loadOptions(path, &opts))

	assert.Equal(t, "sprites", opts.InputDir)
	assert.Equal(t, "output", opts.OutputDir, "keys missing from the file keep their defaults")
	assert.Equal(t, 1024, opts.AtlasMaxWidth)
	assert.Equal(t, 512, opts.AtlasMaxHeight)
	assert.Equal(t, 2, opts.SpritePadding)
	assert.False(t, opts.IsTrimTransparent)
	assert.Equal(t, uint32(16), opts.TransparencyThreshold)
	assert.Equal(t, "maxside", opts.SortMethod)
	assert.True(t, opts.IsFilesSort)
}

func TestLoadOptionsUnknownKey(t *testing.T) {
	path := writeFile(t, t.TempDir(), "atlaspack.toml", "widht = 10\n")
	opts := defaultOptions()
	err := loadOptions(path, &opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "widht")
}

func TestLoadOptionsMissingFile(t *testing.T) {
	opts := defaultOptions()
	assert.Error(t, loadOptions(filepath.Join(t.TempDir(), "nope.toml"), &opts))
}

func TestOverlayFlags(t *testing.T) {
	flags := pflag.NewFlagSet("pack", pflag.ContinueOnError)
	src := defaultOptions()
	bindFlags(flags, &src)
	require.NoError(t, flags.Parse([]string{"--width=256", "--trim=false", "--sort", "none"}))

	dst := defaultOptions()
	dst.AtlasMaxWidth = 1024
	dst.AtlasMaxHeight = 512
	dst.SpritePadding = 4
	overlayFlags(flags, &dst, src)

	assert.Equal(t, 256, dst.AtlasMaxWidth)
	assert.Equal(t, 512, dst.AtlasMaxHeight)
	assert.Equal(t, 4, dst.SpritePadding)
	assert.False(t, dst.IsTrimTransparent)
	assert.Equal(t, "none", dst.SortMethod)
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr string
	}{
		{"defaults", func(*Options) {}, ""},
		{"zero width", func(o *Options) { o.AtlasMaxWidth = 0 }, "图集尺寸"},
		{"negative height", func(o *Options) { o.AtlasMaxHeight = -1 }, "图集尺寸"},
		{"negative padding", func(o *Options) { o.SpritePadding = -2 }, "间距"},
		{"threshold too large", func(o *Options) { o.TransparencyThreshold = 300 }, "透明度阈值"},
		{"unknown sort", func(o *Options) { o.SortMethod = "random" }, "unknown sort"},
		{"no input", func(o *Options) { o.InputDir = "" }, "输入目录"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOptions()
			tt.mutate(&opts)
			err := opts.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
