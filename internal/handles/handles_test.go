//go:build !ios && !android && (amd64 || arm64)

package handles

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestRegisterAndLookup(t *testing.T) {
	type hooks struct {
		Name string
		Ctx  uintptr
	}

	h := &hooks{Name: "flutter", Ctx: 42}
	id := Register(h)
	defer Unregister(id)

	if id == 0 {
		t.Fatal("Register should never return 0")
	}

	got, ok := Lookup(id).(*hooks)
	if !ok {
		t.Fatalf("Lookup returned wrong type: %T", Lookup(id))
	}
	if got != h {
		t.Errorf("Lookup returned a different value: %+v", got)
	}
}

func TestUnregister(t *testing.T) {
	id := Register("payload")

	if Lookup(id) == nil {
		t.Fatal("expected value before Unregister")
	}

	Unregister(id)

	if Lookup(id) != nil {
		t.Error("expected nil after Unregister")
	}

	// Unregistering twice is harmless.
	Unregister(id)
}

func TestTake(t *testing.T) {
	id := Register(7)

	if v := Take(id); v != 7 {
		t.Fatalf("Take = %v, want 7", v)
	}
	if v := Take(id); v != nil {
		t.Errorf("second Take = %v, want nil", v)
	}
	if Lookup(id) != nil {
		t.Error("id still present after Take")
	}
}

func TestTakeIsExclusive(t *testing.T) {
	const takers = 64

	id := Register(struct{}{})

	var (
		wg   sync.WaitGroup
		wins atomic.Int32
	)
	wg.Add(takers)
	for i := 0; i < takers; i++ {
		go func() {
			defer wg.Done()
			if Take(id) != nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	if wins.Load() != 1 {
		t.Errorf("%d goroutines took the same id, want 1", wins.Load())
	}
}

func TestLookupUnknown(t *testing.T) {
	if Lookup(0) != nil {
		t.Error("id 0 must never resolve")
	}
	if Lookup(999999999) != nil {
		t.Error("unknown id should resolve to nil")
	}
}

func TestConcurrentAccess(t *testing.T) {
	const goroutines = 100
	const ops = 100

	before := Count()

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(g int) {
			defer wg.Done()
			for j := 0; j < ops; j++ {
				id := Register([2]int{g, j})
				if Lookup(id) == nil {
					t.Errorf("Lookup returned nil for id %d", id)
				}
				Unregister(id)
			}
		}(i)
	}
	wg.Wait()

	if Count() != before {
		t.Errorf("Count = %d after balanced register/unregister, want %d", Count(), before)
	}
}

func TestIDsAreUnique(t *testing.T) {
	seen := make(map[uintptr]bool)
	for i := 0; i < 1000; i++ {
		id := Register(i)
		if seen[id] {
			t.Errorf("id %d issued twice", id)
		}
		seen[id] = true
	}
	for id := range seen {
		Unregister(id)
	}
}
