package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorDim    = lipgloss.Color("240")

	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
)

// atlasSummary 是输出结果时需要的图集统计
type atlasSummary struct {
	path      string
	width     int
	height    int
	sprites   int
	occupancy float64
}

// printSummary 输出每个图集的尺寸、精灵数量和空间利用率
func printSummary(w io.Writer, summaries []atlasSummary, metaPath string) {
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("成功生成 %d 个图集", len(summaries))))
	for i, s := range summaries {
		occupancy := styleSuccess
		if s.occupancy < 0.5 {
			occupancy = styleWarning
		}
		fmt.Fprintf(w, "  #%d %s  %s  %s 个精灵  利用率 %s\n",
			i+1,
			s.path,
			styleNumber.Render(fmt.Sprintf("%dx%d", s.width, s.height)),
			styleNumber.Render(fmt.Sprint(s.sprites)),
			occupancy.Render(fmt.Sprintf("%.2f%%", s.occupancy*100)),
		)
	}
	fmt.Fprintln(w, styleDim.Render("元数据: "+metaPath))
}
