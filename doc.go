// Package prometheus 提供进程内指标注册表与 Prometheus 文本格式(0.0.4)导出。
//
// 支持 counter、gauge、histogram 三种指标类型。指标注册时只声明名称与标签名,
// 具体时间序列在首次打点时按标签值惰性创建:
//
//	reg := prometheus.NewRegistry()
//	requests := reg.MustNewCounter("http_requests_total", "Total HTTP requests.", "method")
//
//	requests.Inc("GET")
//	requests.Add(2, "POST")
//
//	http.Handle("/metrics", reg.Handler())
//
// 不依赖全局状态,每个 Registry 相互独立;包级函数操作 DefaultRegistry,
// 方便只需要一个注册表的程序。
package prometheus
