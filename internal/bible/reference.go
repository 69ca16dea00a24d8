package bible

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"scripture-llm/internal/domain"
)

// referenceRe captura todo lo que precede al sufijo final <cap>:<verso>[-<verso>].
// El segmento de libro se queda con el máximo posible para que nombres
// multi-palabra ("song of solomon", "1 corinthians") resuelvan bien; el ancla
// al final de la cadena garantiza que los números capturados son el sufijo.
var referenceRe = regexp.MustCompile(`^(.+?)\s*(\d+)\s*:\s*(\d+)(?:\s*-\s*(\d+))?$`)

// ParseReference convierte una referencia escrita a mano en un ParsedReference.
// Gramática: <libro> <capítulo>:<verso>[-<versoFinal>], case-insensitive; el
// libro puede llevar numeral inicial, letras y espacios.
func ParseReference(raw string) (domain.ParsedReference, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	m := referenceRe.FindStringSubmatch(trimmed)
	if m == nil {
		return domain.ParsedReference{}, domain.E(domain.KindInvalidFormat,
			fmt.Sprintf("could not parse reference %q, expected e.g. \"John 3:16\" or \"Romans 8:28-30\"", raw))
	}

	alias := NormalizeBookAlias(m[1])
	bookNumber, ok := LookupBook(alias)
	if !ok {
		return domain.ParsedReference{}, domain.E(domain.KindUnknownBook,
			fmt.Sprintf("unknown book %q", strings.TrimSpace(m[1])))
	}

	chapter, _ := strconv.Atoi(m[2])
	startVerse, _ := strconv.Atoi(m[3])
	endVerse := startVerse
	if m[4] != "" {
		endVerse, _ = strconv.Atoi(m[4])
	}

	if chapter < 1 || startVerse < 1 || endVerse < startVerse {
		return domain.ParsedReference{}, domain.E(domain.KindInvalidFormat,
			fmt.Sprintf("reference %q has an invalid chapter or verse range", raw))
	}

	return domain.ParsedReference{
		BookNumber:     bookNumber,
		BookName:       BookName(bookNumber),
		Chapter:        chapter,
		StartVerse:     startVerse,
		EndVerse:       endVerse,
		IsOldTestament: IsOldTestament(bookNumber),
		IsNewTestament: !IsOldTestament(bookNumber),
	}, nil
}
