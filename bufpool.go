package shuffle

import (
	"bytes"
	"sync"
)

// scratchPool reuses encode buffers across calls. Encoded results are always
// copied out before a buffer goes back to the pool.
var scratchPool = sync.Pool{
	New: func() any {
		// Most keys and values crossing a shuffle are small.
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// maxPooledScratch bounds the buffers kept in the pool so that one huge value
// does not pin its memory for the life of the process.
const maxPooledScratch = 64 * 1024

func getScratch() *bytes.Buffer {
	buf := scratchPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putScratch(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledScratch {
		return
	}
	scratchPool.Put(buf)
}
