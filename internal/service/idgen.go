package service

import (
	"sync/atomic"
	"time"
)

// idGenerator issues int64 ids for portfolio sub-list entries. Ids are
// seeded from wall-clock milliseconds but strictly increase even when two
// entries are added within the same millisecond, so ids are never reused
// or duplicated within a process.
type idGenerator struct {
	last atomic.Int64
}

// Next returns the next id.
func (g *idGenerator) Next() int64 {
	for {
		now := time.Now().UnixMilli()
		last := g.last.Load()
		if now <= last {
			now = last + 1
		}
		if g.last.CompareAndSwap(last, now) {
			return now
		}
	}
}
