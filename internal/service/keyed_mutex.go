package service

import (
	"hash/fnv"
	"sync"
)

const lockStripes = 64

// keyedMutex serializes work on the same key using a fixed set of striped
// mutexes. Distinct keys may share a stripe.
type keyedMutex struct {
	stripes [lockStripes]sync.Mutex
}

func (k *keyedMutex) lock(key string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	m := &k.stripes[h.Sum32()%lockStripes]
	m.Lock()
	return m.Unlock
}
