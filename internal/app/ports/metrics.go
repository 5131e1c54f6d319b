package ports

import "galaxytrader/internal/domain/trading"

// ActionMetrics counts mutator outcomes by result code.
type ActionMetrics interface {
	RecordCommit(code trading.ResultCode)
	RecordRejected(code trading.ResultCode)
}
