package prometheus

import (
	"io"
	"net/http"
)

// ContentType 文本格式 0.0.4 的响应头。
const ContentType = "text/plain; version=0.0.4"

// Handler 返回暴露 /metrics 的处理器,响应体即 Collect 的输出。
func (r *Registry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		body := r.Collect()
		w.Header().Set("Content-Type", ContentType)
		_, _ = io.WriteString(w, body)
	})
}
