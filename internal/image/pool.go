package image

import "sync"

// Pool is a thread-safe pool for reusing ImageBuf instances.
//
// Pool groups buffers by their dimensions and format. The benchmark runner
// draws working copies for in-place kernels from it so that repeated
// iterations do not allocate a fresh buffer each time.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*ImageBuf
	maxSize int // max buffers per bucket
}

// poolKey identifies a bucket of identical image specifications.
type poolKey struct {
	width  int
	height int
	format Format
}

// NewPool creates a new image buffer pool with the given maximum buffers per bucket.
// A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*ImageBuf),
		maxSize: maxPerBucket,
	}
}

// Get retrieves an image buffer from the pool or creates a new one.
// Reused buffers are returned with stale contents; callers overwrite them.
func (p *Pool) Get(width, height int, format Format) (*ImageBuf, error) {
	key := poolKey{width: width, height: height, format: format}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		return buf, nil
	}
	p.mu.Unlock()

	return NewImageBuf(width, height, format)
}

// Copy returns a pooled buffer holding a copy of src.
func (p *Pool) Copy(src *ImageBuf) (*ImageBuf, error) {
	buf, err := p.Get(src.width, src.height, src.format)
	if err != nil {
		return nil, err
	}
	copy(buf.data, src.data)
	return buf, nil
}

// Put returns an image buffer to the pool for reuse.
// If buf is nil or the bucket is at capacity, the buffer is discarded.
func (p *Pool) Put(buf *ImageBuf) {
	if buf == nil {
		return
	}

	key := poolKey{
		width:  buf.width,
		height: buf.height,
		format: buf.format,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}
