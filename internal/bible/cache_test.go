package bible

import (
	"fmt"
	"testing"

	"scripture-llm/internal/domain"
)

func TestChapterCache_HitAndMiss(t *testing.T) {
	c := NewChapterCache(10)
	key := ChapterKey{Translation: "WEB", Book: 43, Chapter: 3}

	if _, ok := c.Get(key); ok {
		t.Fatal("expected miss on empty cache")
	}

	verses := []domain.Verse{{Number: 16, Text: "For God so loved the world"}}
	c.Put(key, verses)

	got, ok := c.Get(key)
	if !ok {
		t.Fatal("expected hit after put")
	}
	if len(got) != 1 || got[0].Number != 16 {
		t.Fatalf("unexpected cached verses: %+v", got)
	}
}

func TestChapterCache_BoundAndFIFOEviction(t *testing.T) {
	c := NewChapterCache(3)
	for i := 1; i <= 5; i++ {
		key := ChapterKey{Translation: "WEB", Book: i, Chapter: 1}
		c.Put(key, []domain.Verse{{Number: 1, Text: fmt.Sprintf("book %d", i)}})
		if c.Len() > 3 {
			t.Fatalf("cache exceeded bound after insert %d: len=%d", i, c.Len())
		}
	}

	// Los dos insertados primero ya no están; los tres últimos sí.
	if _, ok := c.Get(ChapterKey{Translation: "WEB", Book: 1, Chapter: 1}); ok {
		t.Fatal("expected oldest entry to be evicted")
	}
	if _, ok := c.Get(ChapterKey{Translation: "WEB", Book: 2, Chapter: 1}); ok {
		t.Fatal("expected second oldest entry to be evicted")
	}
	for i := 3; i <= 5; i++ {
		if _, ok := c.Get(ChapterKey{Translation: "WEB", Book: i, Chapter: 1}); !ok {
			t.Fatalf("expected book %d to survive", i)
		}
	}
}

func TestChapterCache_ReadsDoNotPromote(t *testing.T) {
	c := NewChapterCache(2)
	k1 := ChapterKey{Translation: "WEB", Book: 1, Chapter: 1}
	k2 := ChapterKey{Translation: "WEB", Book: 2, Chapter: 1}
	k3 := ChapterKey{Translation: "WEB", Book: 3, Chapter: 1}

	c.Put(k1, nil)
	c.Put(k2, nil)
	// Releer k1 no lo promueve: el desalojo es por orden de inserción.
	c.Get(k1)
	c.Put(k3, nil)

	if _, ok := c.Get(k1); ok {
		t.Fatal("expected k1 evicted despite recent read")
	}
	if _, ok := c.Get(k2); !ok {
		t.Fatal("expected k2 to survive")
	}
}

func TestChapterCache_PutSameKeyDoesNotGrow(t *testing.T) {
	c := NewChapterCache(2)
	key := ChapterKey{Translation: "WEB", Book: 1, Chapter: 1}
	c.Put(key, nil)
	c.Put(key, []domain.Verse{{Number: 1, Text: "updated"}})
	if c.Len() != 1 {
		t.Fatalf("expected len 1, got %d", c.Len())
	}
	got, _ := c.Get(key)
	if len(got) != 1 || got[0].Text != "updated" {
		t.Fatalf("expected updated entry, got %+v", got)
	}
}
