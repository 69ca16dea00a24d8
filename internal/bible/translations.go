package bible

import "strings"

// Traducciones aceptadas por el proveedor de texto. Cualquier código fuera de
// esta lista se rechaza antes de tocar la red. WLC y TR son los textos en
// idioma original (hebreo y griego) usados para el enriquecimiento léxico.
var supportedTranslations = []string{"KJV", "WEB", "ASV", "YLT", "DARBY", "WLC", "TR"}

const (
	// HebrewSource es el texto hebreo (Códice de Leningrado) para el AT.
	HebrewSource = "WLC"
	// GreekSource es el texto griego (Textus Receptus) para el NT.
	GreekSource = "TR"
)

// SupportedTranslations devuelve la lista fija de códigos aceptados.
func SupportedTranslations() []string {
	out := make([]string, len(supportedTranslations))
	copy(out, supportedTranslations)
	return out
}

// IsSupportedTranslation valida un código contra la lista fija.
func IsSupportedTranslation(code string) bool {
	for _, t := range supportedTranslations {
		if t == code {
			return true
		}
	}
	return false
}

// NormalizeTranslation pasa el código a mayúsculas y aplica el default cuando
// viene vacío. No valida; eso es del caller vía IsSupportedTranslation.
func NormalizeTranslation(code, fallback string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return fallback
	}
	return code
}

// OriginalLanguageSource elige el texto original según el testamento del libro.
func OriginalLanguageSource(bookNumber int) string {
	if IsOldTestament(bookNumber) {
		return HebrewSource
	}
	return GreekSource
}
