package domain

import "strings"

// Los payloads estructurados que esperamos embebidos en la salida del LLM.
// Cada shape valida sus campos obligatorios justo después del parseo JSON;
// un shape inválido se reporta como KindMalformedPayload, nunca se propaga
// un objeto a medio validar.

// KeyWord es una palabra clave en idioma original (griego/hebreo).
type KeyWord struct {
	Original        string `json:"original"`
	Transliteration string `json:"transliteration,omitempty"`
	Meaning         string `json:"meaning,omitempty"`
	Usage           string `json:"usage,omitempty"`
}

// KeyWordList es el payload bajo la clave "keyWords".
type KeyWordList struct {
	KeyWords []KeyWord `json:"keyWords"`
}

func (l KeyWordList) Validate() error {
	if l.KeyWords == nil {
		return E(KindMalformedPayload, `missing "keyWords" array`)
	}
	for _, k := range l.KeyWords {
		if strings.TrimSpace(k.Original) == "" {
			return E(KindMalformedPayload, `key word without "original"`)
		}
	}
	return nil
}

// PassagePick es una sugerencia de pasaje para una búsqueda temática.
type PassagePick struct {
	Reference string `json:"reference"`
	Summary   string `json:"summary,omitempty"`
	Relevance string `json:"relevance,omitempty"`
}

// PassageList es el payload bajo la clave "passages".
type PassageList struct {
	Passages []PassagePick `json:"passages"`
}

func (l PassageList) Validate() error {
	if l.Passages == nil {
		return E(KindMalformedPayload, `missing "passages" array`)
	}
	for _, p := range l.Passages {
		if strings.TrimSpace(p.Reference) == "" {
			return E(KindMalformedPayload, `passage without "reference"`)
		}
	}
	return nil
}

// CrossReference relaciona el pasaje consultado con otro pasaje.
type CrossReference struct {
	Reference  string `json:"reference"`
	Connection string `json:"connection,omitempty"`
}

// CrossReferenceList es el payload bajo la clave "crossReferences".
type CrossReferenceList struct {
	CrossReferences []CrossReference `json:"crossReferences"`
}

func (l CrossReferenceList) Validate() error {
	if l.CrossReferences == nil {
		return E(KindMalformedPayload, `missing "crossReferences" array`)
	}
	for _, c := range l.CrossReferences {
		if strings.TrimSpace(c.Reference) == "" {
			return E(KindMalformedPayload, `cross reference without "reference"`)
		}
	}
	return nil
}

// DailyVerse es el versículo del día con su devocional corto.
type DailyVerse struct {
	Reference  string `json:"reference"`
	Text       string `json:"text,omitempty"`
	Reflection string `json:"reflection,omitempty"`
}

// DailyVersePayload es el payload bajo la clave "verse".
type DailyVersePayload struct {
	Verse *DailyVerse `json:"verse"`
}

func (p DailyVersePayload) Validate() error {
	if p.Verse == nil {
		return E(KindMalformedPayload, `missing "verse" object`)
	}
	if strings.TrimSpace(p.Verse.Reference) == "" {
		return E(KindMalformedPayload, `daily verse without "reference"`)
	}
	return nil
}

// WordStudy es el estudio de una palabra concreta dentro de un versículo.
type WordStudy struct {
	Word            string   `json:"word"`
	Original        string   `json:"original,omitempty"`
	Transliteration string   `json:"transliteration,omitempty"`
	Definition      string   `json:"definition,omitempty"`
	OtherUses       []string `json:"otherUses,omitempty"`
}

// WordStudyPayload es el payload bajo la clave "wordStudy".
type WordStudyPayload struct {
	WordStudy *WordStudy `json:"wordStudy"`
}

func (p WordStudyPayload) Validate() error {
	if p.WordStudy == nil {
		return E(KindMalformedPayload, `missing "wordStudy" object`)
	}
	if strings.TrimSpace(p.WordStudy.Word) == "" {
		return E(KindMalformedPayload, `word study without "word"`)
	}
	return nil
}
