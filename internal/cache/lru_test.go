// internal/cache/lru_test.go
//
// Run: go test ./internal/cache -v

package cache

import "testing"

func TestEviction(t *testing.T) {
	c := New(2)
	c.Add("a", 1)
	c.Add("b", 2)
	c.Get("a") // a is now MRU
	c.Add("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Fatal("LRU entry not evicted")
	}
	if v, ok := c.Get("a"); !ok || v.(int) != 1 {
		t.Fatalf("a = %v, %v", v, ok)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d", c.Len())
	}
}

func TestPurge(t *testing.T) {
	c := New(4)
	c.Add("a", 1)
	c.Add("b", 2)
	c.Purge()
	if c.Len() != 0 {
		t.Fatalf("Len after purge = %d", c.Len())
	}
	c.Add("a", 9)
	if v, _ := c.Get("a"); v.(int) != 9 {
		t.Fatal("cache unusable after purge")
	}
}
