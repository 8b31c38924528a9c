package prometheus

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// 文本格式转义规则:HELP 行只转义反斜杠和换行,标签值额外转义双引号。
var (
	helpEscaper  = strings.NewReplacer(`\`, `\\`, "\n", `\n`)
	labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
)

func escapeHelp(s string) string       { return helpEscaper.Replace(s) }
func escapeLabelValue(s string) string { return labelEscaper.Replace(s) }

// Collect 把当前全部指标编码为 Prometheus 文本格式 0.0.4。
// 指标按注册顺序、序列按首次打点顺序输出;没打过点的指标只输出头部行;
// 空注册表返回空串。采集永远成功,不返回错误。
func (r *Registry) Collect() string {
	var b strings.Builder
	snaps := r.Snapshot()
	for i := range snaps {
		writeFamily(&b, &snaps[i])
	}
	return b.String()
}

// writeFamily 输出一个指标:HELP 行(帮助文本非空时)、TYPE 行、全部采样行。
func writeFamily(b *strings.Builder, ms *MetricSnapshot) {
	if ms.Help != "" {
		fmt.Fprintf(b, "# HELP %s %s\n", ms.Name, escapeHelp(ms.Help))
	}
	fmt.Fprintf(b, "# TYPE %s %s\n", ms.Name, ms.Type)
	for i := range ms.Series {
		s := &ms.Series[i]
		if ms.Type == TypeHistogram {
			writeHistogramSeries(b, ms, s)
		} else {
			writeSample(b, ms.Name, s.LabelText, formatValue(s.Value))
		}
	}
}

// writeHistogramSeries 输出一条直方图序列:各分桶的 _bucket 行(le 追加在
// 原有标签之后)、_sum 行与 _count 行。分桶计数为累计值,随 le 单调不减。
func writeHistogramSeries(b *strings.Builder, ms *MetricSnapshot, s *SeriesSnapshot) {
	for i, bound := range ms.Buckets {
		le := `le="` + formatValue(bound) + `"`
		labels := s.LabelText
		if labels == "" {
			labels = le
		} else {
			labels += "," + le
		}
		writeSample(b, ms.Name+"_bucket", labels, strconv.FormatUint(s.BucketCounts[i], 10))
	}
	writeSample(b, ms.Name+"_sum", s.LabelText, formatValue(s.Sum))
	writeSample(b, ms.Name+"_count", s.LabelText, strconv.FormatUint(s.Count, 10))
}

// writeSample 输出一行采样,无标签时省略花括号。
func writeSample(b *strings.Builder, name, labelText, value string) {
	if labelText == "" {
		fmt.Fprintf(b, "%s %s\n", name, value)
	} else {
		fmt.Fprintf(b, "%s{%s} %s\n", name, labelText, value)
	}
}

// formatValue 数值按 Go 的 'g' 格式输出,特殊值写作 NaN、+Inf、-Inf,
// 与官方文本解析器的认读一致。
func formatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, +1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
