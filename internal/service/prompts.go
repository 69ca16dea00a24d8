package service

import (
	"fmt"
	"strings"

	"scripture-llm/internal/domain"
)

// PromptBuilder arma los prompts que se mandan al LLM. El contenido es opaco
// para el resto del sistema: solo la respuesta se interpreta.
type PromptBuilder struct{}

// jsonFenceInstruction pide el payload en un fence json con la clave esperada.
func jsonFenceInstruction(key, shape string) string {
	return fmt.Sprintf(
		"Return a fenced ```json code block containing a single JSON object with a %q key: %s. You may add brief prose outside the block.\n",
		key, shape)
}

// BuildInterpretationPrompt arma el prompt del análisis completo de un pasaje.
func (PromptBuilder) BuildInterpretationPrompt(ref domain.ParsedReference, passage string, words []domain.KeyWord) string {
	var sb strings.Builder
	sb.WriteString("You are a careful biblical scholar writing for lay readers.\n\n")
	sb.WriteString(fmt.Sprintf("Passage: %s\n", ref.Display()))
	sb.WriteString(fmt.Sprintf("Text: %s\n\n", passage))

	if len(words) > 0 {
		sb.WriteString("Original-language key words already identified:\n")
		for _, w := range words {
			sb.WriteString(fmt.Sprintf("- %s (%s): %s\n", w.Original, w.Transliteration, w.Meaning))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Explain the historical context, the main point of the passage, and one practical application. Keep it under 400 words.\n")
	return sb.String()
}

// BuildKeyWordsPrompt pide las palabras clave en idioma original del pasaje.
func (PromptBuilder) BuildKeyWordsPrompt(ref domain.ParsedReference, passage, originalText string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Identify the 3-5 most significant original-language words in %s.\n", ref.Display()))
	sb.WriteString(fmt.Sprintf("English text: %s\n", passage))
	if originalText != "" {
		language := "Greek"
		if ref.IsOldTestament {
			language = "Hebrew"
		}
		sb.WriteString(fmt.Sprintf("%s text: %s\n", language, originalText))
	}
	sb.WriteString("\n")
	sb.WriteString(jsonFenceInstruction("keyWords",
		`an array of {"original", "transliteration", "meaning", "usage"}`))
	return sb.String()
}

// BuildSearchPrompt pide pasajes relevantes para una consulta temática libre.
func (PromptBuilder) BuildSearchPrompt(query string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Suggest up to 5 Bible passages that speak to: %q.\n\n", query))
	sb.WriteString(jsonFenceInstruction("passages",
		`an array of {"reference", "summary", "relevance"}`))
	return sb.String()
}

// BuildCrossReferencesPrompt pide pasajes relacionados con la referencia dada.
func (PromptBuilder) BuildCrossReferencesPrompt(ref domain.ParsedReference, passage string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("List up to 6 cross references for %s.\n", ref.Display()))
	sb.WriteString(fmt.Sprintf("Text: %s\n\n", passage))
	sb.WriteString(jsonFenceInstruction("crossReferences",
		`an array of {"reference", "connection"}`))
	return sb.String()
}

// BuildDailyPrompt pide el versículo del día con una reflexión corta.
func (PromptBuilder) BuildDailyPrompt(day string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Pick an encouraging Bible verse for the day %s and write a 2-3 sentence reflection on it.\n\n", day))
	sb.WriteString(jsonFenceInstruction("verse",
		`an object {"reference", "text", "reflection"}`))
	return sb.String()
}

// BuildWordStudyPrompt pide el estudio de una palabra concreta del pasaje.
func (PromptBuilder) BuildWordStudyPrompt(ref domain.ParsedReference, word, passage, originalText string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Study the word %q as used in %s.\n", word, ref.Display()))
	sb.WriteString(fmt.Sprintf("English text: %s\n", passage))
	if originalText != "" {
		sb.WriteString(fmt.Sprintf("Original-language text: %s\n", originalText))
	}
	sb.WriteString("\n")
	sb.WriteString(jsonFenceInstruction("wordStudy",
		`an object {"word", "original", "transliteration", "definition", "otherUses"}`))
	return sb.String()
}
