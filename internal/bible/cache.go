package bible

import (
	"sync"

	"scripture-llm/internal/domain"
)

// ChapterKey identifica un capítulo cacheado.
type ChapterKey struct {
	Translation string
	Book        int
	Chapter     int
}

// ChapterCache es un cache acotado de capítulos con desalojo FIFO por orden
// de inserción. Las lecturas repetidas NO promueven la entrada (no es LRU).
// Inserción y desalojo son atómicos bajo el mismo mutex para que el cache
// nunca crezca más allá de su capacidad.
type ChapterCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[ChapterKey][]domain.Verse
	order    []ChapterKey
}

const defaultChapterCacheCapacity = 250

// NewChapterCache construye un cache vacío. capacity <= 0 usa el default.
func NewChapterCache(capacity int) *ChapterCache {
	if capacity <= 0 {
		capacity = defaultChapterCacheCapacity
	}
	return &ChapterCache{
		capacity: capacity,
		entries:  make(map[ChapterKey][]domain.Verse, capacity),
	}
}

// Get devuelve los versículos cacheados para la clave exacta, si existen.
func (c *ChapterCache) Get(key ChapterKey) ([]domain.Verse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	verses, ok := c.entries[key]
	return verses, ok
}

// Put guarda un capítulo y desaloja la entrada más vieja si se excede la capacidad.
func (c *ChapterCache) Put(key ChapterKey, verses []domain.Verse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		c.order = append(c.order, key)
	}
	c.entries[key] = verses

	for len(c.order) > c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
}

// Len devuelve la cantidad de capítulos cacheados.
func (c *ChapterCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
