package service

import (
	"sync"

	"scripture-llm/internal/domain"
)

// DailyCache guarda el resultado del versículo del día por fecha calendario.
// Una sola entrada viva: al cambiar el día la anterior se descarta.
type DailyCache struct {
	mu    sync.Mutex
	day   string
	verse *domain.DailyVerse
}

// NewDailyCache construye un cache vacío.
func NewDailyCache() *DailyCache {
	return &DailyCache{}
}

// Get devuelve el resultado cacheado para el día dado, si coincide.
func (c *DailyCache) Get(day string) (*domain.DailyVerse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.day != day || c.verse == nil {
		return nil, false
	}
	return c.verse, true
}

// Put reemplaza la entrada con el resultado del día dado.
func (c *DailyCache) Put(day string, verse *domain.DailyVerse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.day = day
	c.verse = verse
}
