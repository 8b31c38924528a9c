package prometheus

import "errors"

// 注册与打点阶段的哨兵错误,调用方通过 errors.Is 判定具体类别。
// 采集阶段(Snapshot/Collect)永远不返回错误。
var (
	// ErrDuplicateMetric 指标名已在同一个 Registry 中注册过
	ErrDuplicateMetric = errors.New("duplicate metric name")

	// ErrEmptyMetricName 指标名为空
	ErrEmptyMetricName = errors.New("empty metric name")

	// ErrInvalidLabelName 标签名为空、重复、含非法字符,或在直方图上使用了保留名 le
	ErrInvalidLabelName = errors.New("invalid label name")

	// ErrInvalidBuckets 直方图分桶边界非严格递增或含 NaN
	ErrInvalidBuckets = errors.New("invalid histogram buckets")

	// ErrLabelCountMismatch 打点时给出的标签值个数与注册时声明的标签名个数不一致
	ErrLabelCountMismatch = errors.New("label count mismatch")

	// ErrNegativeCounterValue 试图让 counter 减小
	ErrNegativeCounterValue = errors.New("counter cannot be decreased")
)
