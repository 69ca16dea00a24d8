package service

import (
	"encoding/json"
	"regexp"
	"strings"
)

// ExtractedPayload separa el JSON embebido en la salida del LLM de la prosa
// que lo acompaña. Data es nil cuando no se encontró ningún JSON usable; en
// ese caso Residual es el texto original sin tocar.
type ExtractedPayload struct {
	Data     json.RawMessage
	Residual string
}

// fenceRe captura bloques fenced con su tag de lenguaje opcional.
var fenceRe = regexp.MustCompile("(?s)```([a-zA-Z0-9]*)[ \t]*\r?\n?(.*?)```")

// ExtractStructured localiza y parsea el payload estructurado dentro de la
// respuesta libre del LLM. Orden de intentos, gana el primero que funcione:
//
//  1. fence con tag json (case-insensitive) que parsea como objeto
//  2. cualquier fence cuyo cuerpo contenga la clave esperada entre comillas
//  3. un objeto delimitado por llaves en el texto completo que contenga la clave
//  4. el texto completo recortado, parseado directo
//
// Si todo falla devuelve Data nil y el texto original: es una condición
// recuperable, el caller decide cómo reportarla.
func ExtractStructured(text, expectedKey string) ExtractedPayload {
	quotedKey := `"` + expectedKey + `"`
	matches := fenceRe.FindAllStringSubmatchIndex(text, -1)

	// Paso 1: fences marcados explícitamente como json.
	for _, m := range matches {
		tag := strings.ToLower(text[m[2]:m[3]])
		if tag != "json" {
			continue
		}
		body := strings.TrimSpace(text[m[4]:m[5]])
		if isJSONObject(body) {
			return ExtractedPayload{
				Data:     json.RawMessage(body),
				Residual: removeSpan(text, m[0], m[1]),
			}
		}
	}

	// Paso 2: cualquier fence que mencione la clave esperada.
	for _, m := range matches {
		body := strings.TrimSpace(text[m[4]:m[5]])
		if !strings.Contains(body, quotedKey) {
			continue
		}
		if isJSONObject(body) {
			return ExtractedPayload{
				Data:     json.RawMessage(body),
				Residual: removeSpan(text, m[0], m[1]),
			}
		}
	}

	// Paso 3: objeto con llaves balanceadas en el texto plano.
	for start := 0; ; {
		open := strings.IndexByte(text[start:], '{')
		if open == -1 {
			break
		}
		open += start
		candidate := balancedObjectAt(text, open)
		if candidate == "" {
			start = open + 1
			continue
		}
		if strings.Contains(candidate, quotedKey) && isJSONObject(candidate) {
			return ExtractedPayload{
				Data:     json.RawMessage(candidate),
				Residual: removeSpan(text, open, open+len(candidate)),
			}
		}
		start = open + 1
	}

	// Paso 4: la respuesta entera podría ser JSON sin decoración.
	trimmed := strings.TrimSpace(text)
	if isJSONObject(trimmed) {
		return ExtractedPayload{Data: json.RawMessage(trimmed), Residual: ""}
	}

	return ExtractedPayload{Data: nil, Residual: text}
}

// isJSONObject acepta solo objetos JSON completos, no arrays ni escalares.
func isJSONObject(s string) bool {
	if !strings.HasPrefix(s, "{") {
		return false
	}
	var obj map[string]json.RawMessage
	return json.Unmarshal([]byte(s), &obj) == nil
}

// removeSpan quita el tramo [from, to) del texto y recorta el whitespace
// que queda alrededor, para que el caller pueda presentar solo la prosa.
func removeSpan(text string, from, to int) string {
	return strings.TrimSpace(strings.TrimSpace(text[:from]) + "\n" + strings.TrimSpace(text[to:]))
}

// balancedObjectAt devuelve el objeto con llaves balanceadas que empieza en
// start, respetando strings y escapes, o "" si no cierra.
func balancedObjectAt(input string, start int) string {
	if start >= len(input) || input[start] != '{' {
		return ""
	}

	inString := false
	escape := false
	depth := 0

	for i := start; i < len(input); i++ {
		ch := input[i]

		if inString {
			if escape {
				escape = false
				continue
			}
			if ch == '\\' {
				escape = true
				continue
			}
			if ch == '"' {
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return input[start : i+1]
			}
			if depth < 0 {
				return ""
			}
		}
	}

	return ""
}
