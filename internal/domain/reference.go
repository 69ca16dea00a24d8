package domain

import "fmt"

// ParsedReference es el locator canónico derivado de una referencia escrita a mano.
// Se construye por request y es inmutable una vez creado.
type ParsedReference struct {
	BookNumber     int    `json:"book_number"`
	BookName       string `json:"book_name"`
	Chapter        int    `json:"chapter"`
	StartVerse     int    `json:"start_verse"`
	EndVerse       int    `json:"end_verse"`
	IsOldTestament bool   `json:"is_old_testament"`
	IsNewTestament bool   `json:"is_new_testament"`
}

// Display devuelve la referencia en forma legible, p. ej. "1 Corinthians 4:3-6".
func (r ParsedReference) Display() string {
	if r.EndVerse > r.StartVerse {
		return fmt.Sprintf("%s %d:%d-%d", r.BookName, r.Chapter, r.StartVerse, r.EndVerse)
	}
	return fmt.Sprintf("%s %d:%d", r.BookName, r.Chapter, r.StartVerse)
}
