package physics

import (
	"github.com/marblekit/marblepath/internal/geom"
)

// Trail is a fixed-capacity ring buffer of past positions. Pushing onto a
// full trail evicts the oldest point in O(1).
type Trail struct {
	buf  []geom.Vec2
	head int // index of the oldest point
	size int
}

func NewTrail(capacity int) *Trail {
	if capacity < 1 {
		capacity = 1
	}
	return &Trail{buf: make([]geom.Vec2, capacity)}
}

func (t *Trail) Len() int { return t.size }

func (t *Trail) Cap() int { return len(t.buf) }

func (t *Trail) Push(p geom.Vec2) {
	if t.size < len(t.buf) {
		t.buf[(t.head+t.size)%len(t.buf)] = p
		t.size++
		return
	}
	t.buf[t.head] = p
	t.head = (t.head + 1) % len(t.buf)
}

// At returns the i-th point, oldest first.
func (t *Trail) At(i int) geom.Vec2 {
	return t.buf[(t.head+i)%len(t.buf)]
}

// Points returns the trail oldest-to-newest as a fresh slice.
func (t *Trail) Points() []geom.Vec2 {
	pts := make([]geom.Vec2, t.size)
	for i := 0; i < t.size; i++ {
		pts[i] = t.At(i)
	}
	return pts
}

func (t *Trail) Clear() {
	t.head = 0
	t.size = 0
}

func (t *Trail) Clone() *Trail {
	c := &Trail{buf: make([]geom.Vec2, len(t.buf)), head: t.head, size: t.size}
	copy(c.buf, t.buf)
	return c
}
