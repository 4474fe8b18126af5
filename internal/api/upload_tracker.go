package api

import "io"

// uploadTracker converts transferred byte counts into monotonically
// non-decreasing 0-100 callbacks. It tracks file payload bytes only; the
// multipart framing overhead is negligible for progress purposes.
type uploadTracker struct {
	total    int64
	sent     int64
	lastPct  int
	callback func(percent int)
}

func newUploadTracker(total int64, callback func(percent int)) *uploadTracker {
	return &uploadTracker{total: total, lastPct: -1, callback: callback}
}

// wrap returns a reader that reports progress as r is consumed
func (t *uploadTracker) wrap(r io.Reader) io.Reader {
	return &trackingReader{tracker: t, reader: r}
}

func (t *uploadTracker) add(n int64) {
	if t.callback == nil || t.total <= 0 {
		return
	}
	t.sent += n
	pct := int(t.sent * 100 / t.total)
	if pct > 100 {
		pct = 100
	}
	if pct > t.lastPct {
		t.lastPct = pct
		t.callback(pct)
	}
}

// finish reports 100 once the whole form has been written, covering empty
// files and rounding shortfalls.
func (t *uploadTracker) finish() {
	if t.callback == nil {
		return
	}
	if t.lastPct < 100 {
		t.lastPct = 100
		t.callback(100)
	}
}

type trackingReader struct {
	tracker *uploadTracker
	reader  io.Reader
}

func (r *trackingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	if n > 0 {
		r.tracker.add(int64(n))
	}
	return n, err
}
