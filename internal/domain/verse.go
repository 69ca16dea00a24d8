package domain

// Verse es un versículo ya normalizado (sin markup ni anotaciones léxicas).
type Verse struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// SliceVerses recorta el rango [start, end] de un capítulo completo.
// Los números de versículo fuera de rango simplemente no aparecen.
func SliceVerses(verses []Verse, start, end int) []Verse {
	out := make([]Verse, 0, end-start+1)
	for _, v := range verses {
		if v.Number >= start && v.Number <= end {
			out = append(out, v)
		}
	}
	return out
}

// JoinVerses concatena el texto de los versículos en un solo pasaje.
func JoinVerses(verses []Verse) string {
	text := ""
	for i, v := range verses {
		if i > 0 {
			text += " "
		}
		text += v.Text
	}
	return text
}
