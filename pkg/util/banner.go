package util

import (
	"fmt"
	"strings"

	"github.com/common-nighthawk/go-figure"
)

// 定义颜色常量
const (
	ColorReset  = "\x1b[0m"
	ColorRed    = "\x1b[1;31m"
	ColorGreen  = "\x1b[1;32m"
	ColorYellow = "\x1b[1;33m"
	ColorBlue   = "\x1b[1;34m"
	ColorCyan   = "\x1b[1;36m"
)

// 字符串转 ANSI 颜色码
func colorCode(name string) string {
	switch strings.ToLower(name) {
	case "red":
		return ColorRed
	case "green":
		return ColorGreen
	case "yellow":
		return ColorYellow
	case "blue":
		return ColorBlue
	case "cyan":
		return ColorCyan
	default:
		return ColorReset
	}
}

// Banner 渲染整体统一颜色的 ASCII banner 文本
func Banner(text string, color string) string {
	fig := figure.NewFigure(text, "", true)
	lines := fig.Slicify() // 获取每行 ASCII 字符

	ansiColor := colorCode(color)
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(ansiColor)
		b.WriteString(line)
		b.WriteString(ColorReset)
		b.WriteString("\n")
	}
	return b.String()
}

// PrintBanner 打印 banner 到标准输出
func PrintBanner(text string, color string) {
	fmt.Print(Banner(text, color))
}
