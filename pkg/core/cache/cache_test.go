package cache

import (
	"errors"
	"fmt"
	"sync"
	"testing"
)

func TestCache_GetSet(t *testing.T) {
	c := New[string, int](DefaultConfig())

	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) reported a hit")
	}
	c.Set("a", 1)
	c.Set("a", 2)
	if v, ok := c.Get("a"); !ok || v != 2 {
		t.Errorf("Get(a) = %v, %v; want 2, true", v, ok)
	}
	if c.Size() != 1 {
		t.Errorf("Size() = %d, want 1", c.Size())
	}

	hits, misses, rate := c.Stats()
	if hits != 1 || misses != 1 || rate != 50 {
		t.Errorf("Stats() = %d, %d, %v", hits, misses, rate)
	}
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](Config{MaxItems: 2})
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a") // b is now the oldest
	c.Set("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	for _, k := range []string{"a", "c"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("%s missing", k)
		}
	}
}

func TestCache_DeleteAndClear(t *testing.T) {
	c := New[int, string](Config{MaxItems: 4})
	c.Set(1, "one")
	c.Set(2, "two")
	c.Delete(1)
	if _, ok := c.Get(1); ok {
		t.Error("1 still present after Delete")
	}
	c.Clear()
	if c.Size() != 0 {
		t.Errorf("Size() after Clear = %d", c.Size())
	}
}

func TestCache_GetOrSet(t *testing.T) {
	c := New[string, float64](DefaultConfig())
	calls := 0
	compute := func() (float64, error) {
		calls++
		return 20, nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.GetOrSet("(2+3)*4", compute)
		if err != nil || v != 20 {
			t.Fatalf("GetOrSet() = %v, %v", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("compute called %d times, want 1", calls)
	}

	_, err := c.GetOrSet("(1+2", func() (float64, error) { return 0, errors.New("mismatched parentheses") })
	if err == nil {
		t.Error("expected error")
	}
	if _, ok := c.Get("(1+2"); ok {
		t.Error("errors must not be cached")
	}
}

func TestCache_Concurrent(t *testing.T) {
	c := New[string, int](Config{MaxItems: 16})
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := fmt.Sprintf("k%d", (g*i)%32)
				c.Set(key, i)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()
	if c.Size() > 16 {
		t.Errorf("Size() = %d exceeds MaxItems", c.Size())
	}
}

func BenchmarkCache_Get(b *testing.B) {
	c := New[string, int](DefaultConfig())
	c.Set("2+3*4", 14)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("2+3*4")
	}
}
