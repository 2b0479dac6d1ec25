package set

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	s := New[string]()
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.entries == nil {
		t.Error("entries map not initialized")
	}
	if s.Size() != 0 {
		t.Errorf("expected size 0, got %d", s.Size())
	}

	s = New("a", "b", "a")
	assert.Equal(t, 2, s.Size())
}

func TestAdd(t *testing.T) {
	s := New[string]()

	assert.True(t, s.Add("hash1"))
	assert.True(t, s.Add("hash2"))
	assert.False(t, s.Add("hash1"), "adding an existing value should report false")
	assert.Equal(t, 2, s.Size())
}

func TestHas(t *testing.T) {
	s := New("hash1")

	assert.True(t, s.Has("hash1"))
	assert.False(t, s.Has("nonexistent"))
}

func TestDelete(t *testing.T) {
	s := New("key1", "key2")

	s.Delete("nonexistent")
	assert.Equal(t, 2, s.Size())

	s.Delete("key1")
	assert.Equal(t, 1, s.Size())
	assert.False(t, s.Has("key1"))
}

func TestValues(t *testing.T) {
	s := New(3, 1, 2)
	assert.ElementsMatch(t, []int{1, 2, 3}, s.Values())
	assert.Empty(t, New[int]().Values())
}

func TestMissing(t *testing.T) {
	tests := []struct {
		name       string
		known      []string
		candidates []string
		want       []string
	}{
		{
			name:       "nothing new",
			known:      []string{"a", "b"},
			candidates: []string{"b", "a"},
			want:       []string{},
		},
		{
			name:       "one new",
			known:      []string{"a", "b"},
			candidates: []string{"a", "c", "b"},
			want:       []string{"c"},
		},
		{
			name:       "keeps candidate order and drops duplicates",
			known:      []string{},
			candidates: []string{"z", "y", "z"},
			want:       []string{"z", "y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.known...)
			assert.Equal(t, tt.want, s.Missing(tt.candidates))
		})
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := New[int]()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.Add(n)
			s.Has(n)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, s.Size())
}
