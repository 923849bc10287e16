package catalog

import (
	"math/rand"
	"testing"
)

func TestPagerStartsAtNewest(t *testing.T) {
	t.Parallel()

	p := NewPager(3)
	idx, ok := p.Current()
	if !ok || idx != 0 {
		t.Fatalf("Current() = %d, %v; want 0, true", idx, ok)
	}
	if p.CanGoPrevious() {
		t.Fatal("CanGoPrevious at index 0")
	}
	if !p.CanGoNext() {
		t.Fatal("!CanGoNext at index 0 of 3")
	}
}

func TestPagerBoundariesAreNoOps(t *testing.T) {
	t.Parallel()

	p := NewPager(2)
	p.Previous() // already at 0
	if idx, _ := p.Current(); idx != 0 {
		t.Fatalf("Previous at 0 moved to %d", idx)
	}

	p.Next()
	p.Next() // already at last
	if idx, _ := p.Current(); idx != 1 {
		t.Fatalf("Next at end moved to %d", idx)
	}
	if p.CanGoNext() {
		t.Fatal("CanGoNext at last index")
	}
	if !p.CanGoPrevious() {
		t.Fatal("!CanGoPrevious at last index")
	}
}

func TestPagerEmpty(t *testing.T) {
	t.Parallel()

	p := NewPager(0)
	if _, ok := p.Current(); ok {
		t.Fatal("empty pager has a current entry")
	}
	p.Next()
	p.Previous()
	p.Jump(0)
	if _, ok := p.Current(); ok {
		t.Fatal("empty pager gained a current entry")
	}
	if p.CanGoPrevious() || p.CanGoNext() {
		t.Fatal("empty pager reports movable")
	}
}

func TestPagerJump(t *testing.T) {
	t.Parallel()

	p := NewPager(5)
	p.Jump(3)
	if idx, _ := p.Current(); idx != 3 {
		t.Fatalf("Jump(3) landed at %d", idx)
	}

	// out-of-range jumps leave the position alone
	p.Jump(5)
	p.Jump(-1)
	if idx, _ := p.Current(); idx != 3 {
		t.Fatalf("out-of-range jump moved to %d", idx)
	}
}

func TestPagerStaysInBoundsUnderRandomWalk(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{0, 1, 2, 7, 40} {
		p := NewPager(n)
		for i := 0; i < 2000; i++ {
			switch rng.Intn(3) {
			case 0:
				p.Previous()
			case 1:
				p.Next()
			case 2:
				p.Jump(rng.Intn(2*n+2) - 1)
			}
			idx, ok := p.Current()
			if n == 0 {
				if ok {
					t.Fatalf("n=0: current became defined")
				}
				continue
			}
			if !ok || idx < 0 || idx >= n {
				t.Fatalf("n=%d: index %d out of bounds", n, idx)
			}
			if p.CanGoPrevious() != (idx > 0) {
				t.Fatalf("n=%d idx=%d: CanGoPrevious mismatch", n, idx)
			}
			if p.CanGoNext() != (idx < n-1) {
				t.Fatalf("n=%d idx=%d: CanGoNext mismatch", n, idx)
			}
		}
	}
}
