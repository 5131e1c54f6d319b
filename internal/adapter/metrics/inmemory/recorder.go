package inmemory

import (
	"sync"

	"galaxytrader/internal/domain/trading"
)

type Snapshot struct {
	CommitTotal   uint64            `json:"commit_total"`
	RejectedTotal uint64            `json:"rejected_total"`
	ByResultCode  map[string]uint64 `json:"by_result_code"`
}

// Recorder counts mutator outcomes in memory for the /ops/kpi endpoint.
type Recorder struct {
	mu       sync.Mutex
	commits  uint64
	rejected uint64
	byCode   map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{byCode: map[string]uint64{}}
}

func (r *Recorder) RecordCommit(code trading.ResultCode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commits++
	r.byCode[string(code)]++
}

func (r *Recorder) RecordRejected(code trading.ResultCode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejected++
	r.byCode[string(code)]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		CommitTotal:   r.commits,
		RejectedTotal: r.rejected,
		ByResultCode:  make(map[string]uint64, len(r.byCode)),
	}
	for k, v := range r.byCode {
		out.ByResultCode[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
