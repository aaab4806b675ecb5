// property_test.go — Randomized checks of the ring against a trimmed FIFO model.
package ring_test

import (
	"math/rand"
	"testing"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/core/ring"
)

// window models "the last n pushed values" with a FIFO trimmed to n.
type window struct {
	n int
	q *queue.Queue
}

func newWindow(n, initial int) *window {
	w := &window{n: n, q: queue.New()}
	for i := 0; i < n; i++ {
		w.q.Add(initial)
	}
	return w
}

func (w *window) push(v int) {
	w.q.Add(v)
	for w.q.Length() > w.n {
		w.q.Remove()
	}
}

func (w *window) fill(v int) {
	for i := 0; i < w.n; i++ {
		w.q.Remove()
		w.q.Add(v)
	}
}

// age returns the value pushed i positions ago.
func (w *window) age(i int) int {
	return w.q.Get(w.q.Length() - 1 - i).(int)
}

func checkWindow(t *testing.T, step int, h api.History[int], w *window) {
	t.Helper()
	for i := 0; i < w.n; i++ {
		got, err := h.At(i)
		if err != nil {
			t.Fatalf("step %d: At(%d): %v", step, i, err)
		}
		if want := w.age(i); got != want {
			t.Fatalf("step %d: At(%d) = %d, want %d", step, i, got, want)
		}
	}
}

func TestRingPropertyBased(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 64} {
		rng := rand.New(rand.NewSource(int64(n)))
		r, err := ring.NewFilled(n, -1)
		if err != nil {
			t.Fatal(err)
		}
		w := newWindow(n, -1)
		for step := 0; step < 2000; step++ {
			v := rng.Intn(100000)
			switch op := rng.Intn(10); {
			case op == 0:
				r.Fill(v)
				w.fill(v)
			case op == 1:
				r.Emplace(func(slot *int) { *slot = v })
				w.push(v)
			default:
				r.Push(v)
				w.push(v)
			}
			if r.Size() != n {
				t.Fatalf("Size() = %d, want %d", r.Size(), n)
			}
			checkWindow(t, step, r, w)
		}
	}
}

// TestRingEviction pushes m > n values and checks only the last n survive.
func TestRingEviction(t *testing.T) {
	const n, m = 16, 1000
	f := ring.NewFixed[int, last16]()
	w := newWindow(n, 0)
	for i := 0; i < m; i++ {
		f.Push(i)
		w.push(i)
	}
	checkWindow(t, m, f, w)
	for i := 0; i < n; i++ {
		if v, _ := f.At(i); v != m-1-i {
			t.Fatalf("At(%d) = %d, want %d", i, v, m-1-i)
		}
	}
}

type last16 struct{}

func (last16) Len() int { return 16 }
