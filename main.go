package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "atlaspack",
		Short:         "把图片打包成纹理图集",
		Version:       VERSION,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "输出调试日志")
	root.AddCommand(newPackCmd(), newUnpackCmd())
	return root
}

func newPackCmd() *cobra.Command {
	var configPath string
	flagOpts := defaultOptions()
	cmd := &cobra.Command{
		Use:   "pack",
		Short: "把输入目录中的 PNG 图片打包成图集",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := defaultOptions()
			if configPath != "" {
				if err := loadOptions(configPath, &opts); err != nil {
					return err
				}
			}
			overlayFlags(cmd.Flags(), &opts, flagOpts)
			if err := opts.validate(); err != nil {
				return err
			}
			return runPack(cmd, &opts)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML 配置文件")
	bindFlags(cmd.Flags(), &flagOpts)
	return cmd
}

func newUnpackCmd() *cobra.Command {
	var outputDir string
	cmd := &cobra.Command{
		Use:   "unpack <atlases.json>",
		Short: "根据元数据把图集还原为单独的图片",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			prog := newProgress(loggerFromContext(ctx))
			count, err := unpack(ctx, args[0], outputDir)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("图集解包完成，%d 张图片输出到 %s", count, outputDir))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputDir, "output", "o", "unpacked", "输出目录")
	return cmd
}

// runPack 读取图片、打包、写出图集和元数据
func runPack(cmd *cobra.Command, opts *Options) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	paths, err := findImages(opts.InputDir, opts.IsFilesSort)
	if err != nil {
		return err
	}
	logger.Infof("找到 %d 个图片文件", len(paths))

	prog := newProgress(logger)
	sprites, err := loadSprites(ctx, paths, opts)
	if err != nil {
		return err
	}
	prog.done("图片预处理完成")

	prog = newProgress(logger)
	layouts, err := packSprites(ctx, sprites, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("打包完成，共 %d 个图集", len(layouts)))

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}

	prog = newProgress(logger)
	atlases := make([]AtlasInfo, 0, len(layouts))
	summaries := make([]atlasSummary, 0, len(layouts))
	for i, layout := range layouts {
		img, infos, err := composeAtlas(ctx, layout, sprites, opts)
		if err != nil {
			return fmt.Errorf("生成图集 #%d 失败: %w", i, err)
		}
		name := "atlas.png"
		if len(layouts) > 1 {
			name = fmt.Sprintf("atlas_%d.png", i)
		}
		outputPath := filepath.Join(opts.OutputDir, name)
		if err := imaging.Save(img, outputPath); err != nil {
			return fmt.Errorf("保存图集 %s: %w", outputPath, err)
		}
		bounds := img.Bounds()
		atlases = append(atlases, AtlasInfo{
			AtlasName:  name,
			SpriteList: infos,
			TotalSize:  Extent{W: bounds.Dx(), H: bounds.Dy()},
		})
		summaries = append(summaries, atlasSummary{
			path:      outputPath,
			width:     bounds.Dx(),
			height:    bounds.Dy(),
			sprites:   len(infos),
			occupancy: spriteArea(infos) / float64(bounds.Dx()*bounds.Dy()),
		})
	}
	prog.done("图集写入完成")

	metaPath := filepath.Join(opts.OutputDir, "atlases.json")
	if err := writeMetadata(metaPath, newMultiAtlasData(atlases)); err != nil {
		return fmt.Errorf("生成JSON元数据失败: %w", err)
	}
	printSummary(cmd.OutOrStdout(), summaries, metaPath)
	return nil
}

func spriteArea(infos map[string]SpriteInfo) float64 {
	area := 0
	for _, info := range infos {
		area += info.Region.W * info.Region.H
	}
	return float64(area)
}
