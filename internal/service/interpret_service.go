package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"scripture-llm/internal/bible"
	"scripture-llm/internal/domain"
	"scripture-llm/internal/llm"
	"scripture-llm/internal/repository"
)

// InterpretService orquesta el pipeline por request: parseo de referencia →
// fetch de texto → (opcional) texto en idioma original → LLM → extracción
// estructurada. Cada etapa alimenta a la siguiente, en secuencia estricta.
type InterpretService struct {
	fetcher            bible.Fetcher
	llmClient          llm.Client
	usage              repository.UsageRepository
	daily              *DailyCache
	prompts            PromptBuilder
	rates              CostRates
	model              string
	defaultTranslation string
	logger             *zap.Logger
}

func NewInterpretService(
	fetcher bible.Fetcher,
	llmClient llm.Client,
	usage repository.UsageRepository,
	daily *DailyCache,
	rates CostRates,
	model string,
	defaultTranslation string,
	logger *zap.Logger,
) *InterpretService {
	return &InterpretService{
		fetcher:            fetcher,
		llmClient:          llmClient,
		usage:              usage,
		daily:              daily,
		rates:              rates,
		model:              model,
		defaultTranslation: defaultTranslation,
		logger:             logger,
	}
}

// AnalysisResult es la respuesta completa del análisis de un pasaje.
type AnalysisResult struct {
	Reference      string             `json:"reference"`
	Translation    string             `json:"translation"`
	Verses         []domain.Verse     `json:"verses"`
	PassageText    string             `json:"passage_text"`
	KeyWords       []domain.KeyWord   `json:"key_words"`
	Interpretation string             `json:"interpretation"`
	Usage          domain.TokenUsage  `json:"usage"`
	CostUSD        float64            `json:"cost_usd"`
}

// SearchResult son los pasajes sugeridos para una consulta temática.
type SearchResult struct {
	Query      string               `json:"query"`
	Passages   []domain.PassagePick `json:"passages"`
	Commentary string               `json:"commentary,omitempty"`
	CostUSD    float64              `json:"cost_usd"`
}

// CrossReferenceResult son los pasajes relacionados a una referencia.
type CrossReferenceResult struct {
	Reference       string                  `json:"reference"`
	CrossReferences []domain.CrossReference `json:"cross_references"`
	Commentary      string                  `json:"commentary,omitempty"`
	CostUSD         float64                 `json:"cost_usd"`
}

// ComparisonEntry es el texto del rango pedido en una traducción.
type ComparisonEntry struct {
	Translation string `json:"translation"`
	Text        string `json:"text"`
}

// ComparisonResult es el mismo rango en varias traducciones. No usa el LLM.
type ComparisonResult struct {
	Reference string            `json:"reference"`
	Entries   []ComparisonEntry `json:"entries"`
}

// WordStudyResult es el estudio de una palabra dentro de un pasaje.
type WordStudyResult struct {
	Reference  string            `json:"reference"`
	Word       string            `json:"word"`
	Study      *domain.WordStudy `json:"study"`
	Commentary string            `json:"commentary,omitempty"`
	CostUSD    float64           `json:"cost_usd"`
}

// Analyze corre el pipeline completo para una referencia.
// El enriquecimiento de palabras clave es best-effort: si falla se degrada a
// una lista vacía sin tumbar el request.
func (s *InterpretService) Analyze(ctx context.Context, reference, translation string) (*AnalysisResult, error) {
	ref, span, passage, translation, err := s.resolvePassage(ctx, reference, translation)
	if err != nil {
		return nil, err
	}

	words := s.fetchKeyWords(ctx, ref, passage)

	resp, err := s.callLLM(ctx, "analyze", s.prompts.BuildInterpretationPrompt(ref, passage, words))
	if err != nil {
		return nil, err
	}

	return &AnalysisResult{
		Reference:      ref.Display(),
		Translation:    translation,
		Verses:         span,
		PassageText:    passage,
		KeyWords:       words,
		Interpretation: strings.TrimSpace(resp.Text),
		Usage:          resp.Usage,
		CostUSD:        s.rates.Cost(resp.Usage),
	}, nil
}

// Search pide pasajes para una consulta libre y valida el payload "passages".
func (s *InterpretService) Search(ctx context.Context, query string) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.E(domain.KindInvalidFormat, "query is required")
	}

	resp, err := s.callLLM(ctx, "search", s.prompts.BuildSearchPrompt(query))
	if err != nil {
		return nil, err
	}

	extracted := ExtractStructured(resp.Text, "passages")
	var list domain.PassageList
	if err := decodePayload(extracted, &list); err != nil {
		return nil, err
	}

	return &SearchResult{
		Query:      query,
		Passages:   list.Passages,
		Commentary: extracted.Residual,
		CostUSD:    s.rates.Cost(resp.Usage),
	}, nil
}

// CrossReferences pide pasajes relacionados y valida el payload "crossReferences".
func (s *InterpretService) CrossReferences(ctx context.Context, reference string) (*CrossReferenceResult, error) {
	ref, _, passage, _, err := s.resolvePassage(ctx, reference, "")
	if err != nil {
		return nil, err
	}

	resp, err := s.callLLM(ctx, "cross-references", s.prompts.BuildCrossReferencesPrompt(ref, passage))
	if err != nil {
		return nil, err
	}

	extracted := ExtractStructured(resp.Text, "crossReferences")
	var list domain.CrossReferenceList
	if err := decodePayload(extracted, &list); err != nil {
		return nil, err
	}

	return &CrossReferenceResult{
		Reference:       ref.Display(),
		CrossReferences: list.CrossReferences,
		Commentary:      extracted.Residual,
		CostUSD:         s.rates.Cost(resp.Usage),
	}, nil
}

// Compare trae el mismo rango en varias traducciones. Valida TODAS las
// traducciones antes del primer fetch para no gastar red en requests inválidos.
func (s *InterpretService) Compare(ctx context.Context, reference string, translations []string) (*ComparisonResult, error) {
	ref, err := bible.ParseReference(reference)
	if err != nil {
		return nil, err
	}
	if len(translations) == 0 {
		return nil, domain.E(domain.KindInvalidFormat, "at least one translation is required")
	}

	codes := make([]string, 0, len(translations))
	for _, t := range translations {
		code := bible.NormalizeTranslation(t, s.defaultTranslation)
		if !bible.IsSupportedTranslation(code) {
			return nil, domain.E(domain.KindUnsupportedTranslation,
				fmt.Sprintf("translation %q is not supported", t))
		}
		codes = append(codes, code)
	}

	entries := make([]ComparisonEntry, 0, len(codes))
	for _, code := range codes {
		verses, err := s.fetcher.FetchChapter(ctx, code, ref.BookNumber, ref.Chapter)
		if err != nil {
			return nil, err
		}
		span := domain.SliceVerses(verses, ref.StartVerse, ref.EndVerse)
		entries = append(entries, ComparisonEntry{Translation: code, Text: domain.JoinVerses(span)})
	}

	return &ComparisonResult{Reference: ref.Display(), Entries: entries}, nil
}

// Daily devuelve el versículo del día, cacheado por fecha calendario.
func (s *InterpretService) Daily(ctx context.Context, now time.Time) (*domain.DailyVerse, error) {
	day := now.UTC().Format("2006-01-02")
	if verse, ok := s.daily.Get(day); ok {
		return verse, nil
	}

	resp, err := s.callLLM(ctx, "daily", s.prompts.BuildDailyPrompt(day))
	if err != nil {
		return nil, err
	}

	extracted := ExtractStructured(resp.Text, "verse")
	var payload domain.DailyVersePayload
	if err := decodePayload(extracted, &payload); err != nil {
		return nil, err
	}

	s.daily.Put(day, payload.Verse)
	return payload.Verse, nil
}

// WordStudy estudia una palabra concreta del pasaje. El texto en idioma
// original se agrega best-effort.
func (s *InterpretService) WordStudy(ctx context.Context, reference, word string) (*WordStudyResult, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, domain.E(domain.KindInvalidFormat, "word is required")
	}

	ref, _, passage, _, err := s.resolvePassage(ctx, reference, "")
	if err != nil {
		return nil, err
	}

	originalText := s.fetchOriginalText(ctx, ref)

	resp, err := s.callLLM(ctx, "word-study", s.prompts.BuildWordStudyPrompt(ref, word, passage, originalText))
	if err != nil {
		return nil, err
	}

	extracted := ExtractStructured(resp.Text, "wordStudy")
	var payload domain.WordStudyPayload
	if err := decodePayload(extracted, &payload); err != nil {
		return nil, err
	}

	return &WordStudyResult{
		Reference:  ref.Display(),
		Word:       word,
		Study:      payload.WordStudy,
		Commentary: extracted.Residual,
		CostUSD:    s.rates.Cost(resp.Usage),
	}, nil
}

// Usage devuelve el agregado de consumo del día.
func (s *InterpretService) Usage(ctx context.Context, now time.Time) (domain.UsageSummary, error) {
	return s.usage.DailySummary(ctx, now.UTC())
}

// resolvePassage valida y resuelve referencia + traducción y trae el rango
// pedido. Toda la validación ocurre antes de cualquier llamada de red.
func (s *InterpretService) resolvePassage(ctx context.Context, reference, translation string) (domain.ParsedReference, []domain.Verse, string, string, error) {
	ref, err := bible.ParseReference(reference)
	if err != nil {
		return domain.ParsedReference{}, nil, "", "", err
	}

	code := bible.NormalizeTranslation(translation, s.defaultTranslation)
	if !bible.IsSupportedTranslation(code) {
		return domain.ParsedReference{}, nil, "", "", domain.E(domain.KindUnsupportedTranslation,
			fmt.Sprintf("translation %q is not supported", translation))
	}

	verses, err := s.fetcher.FetchChapter(ctx, code, ref.BookNumber, ref.Chapter)
	if err != nil {
		return domain.ParsedReference{}, nil, "", "", err
	}

	span := domain.SliceVerses(verses, ref.StartVerse, ref.EndVerse)
	if len(span) == 0 {
		return domain.ParsedReference{}, nil, "", "", domain.E(domain.KindInvalidFormat,
			fmt.Sprintf("%s has no verses %d-%d in chapter %d", ref.BookName, ref.StartVerse, ref.EndVerse, ref.Chapter))
	}

	return ref, span, domain.JoinVerses(span), code, nil
}

// fetchKeyWords corre el enriquecimiento léxico best-effort: texto original +
// LLM + payload "keyWords". Cualquier falla degrada a lista vacía.
func (s *InterpretService) fetchKeyWords(ctx context.Context, ref domain.ParsedReference, passage string) []domain.KeyWord {
	originalText := s.fetchOriginalText(ctx, ref)

	resp, err := s.callLLM(ctx, "analyze/key-words", s.prompts.BuildKeyWordsPrompt(ref, passage, originalText))
	if err != nil {
		s.logger.Warn("key word enrichment failed", zap.Error(err), zap.String("reference", ref.Display()))
		return nil
	}

	extracted := ExtractStructured(resp.Text, "keyWords")
	var list domain.KeyWordList
	if err := decodePayload(extracted, &list); err != nil {
		s.logger.Warn("key word payload rejected", zap.Error(err), zap.String("reference", ref.Display()))
		return nil
	}
	return list.KeyWords
}

// fetchOriginalText trae el rango en hebreo/griego según el testamento.
// Best-effort: en error devuelve cadena vacía.
func (s *InterpretService) fetchOriginalText(ctx context.Context, ref domain.ParsedReference) string {
	source := bible.OriginalLanguageSource(ref.BookNumber)
	verses, err := s.fetcher.FetchChapter(ctx, source, ref.BookNumber, ref.Chapter)
	if err != nil {
		s.logger.Warn("original language fetch failed",
			zap.Error(err), zap.String("source", source), zap.String("reference", ref.Display()))
		return ""
	}
	return domain.JoinVerses(domain.SliceVerses(verses, ref.StartVerse, ref.EndVerse))
}

// callLLM hace la llamada al modelo y registra consumo y costo. Un intento
// por llamada, sin retry. La falla del registro de consumo solo se loguea.
func (s *InterpretService) callLLM(ctx context.Context, endpoint, prompt string) (llm.Response, error) {
	resp, err := s.llmClient.Generate(ctx, prompt)
	if err != nil {
		return llm.Response{}, err
	}

	rec := domain.UsageRecord{
		ID:           uuid.NewString(),
		Endpoint:     endpoint,
		Model:        s.model,
		InputTokens:  resp.Usage.InputTokens,
		OutputTokens: resp.Usage.OutputTokens,
		CostUSD:      s.rates.Cost(resp.Usage),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.usage.Record(ctx, rec); err != nil {
		s.logger.Warn("usage record failed", zap.Error(err), zap.String("endpoint", endpoint))
	}
	return resp, nil
}

// decodePayload convierte el payload extraído al shape esperado y lo valida.
// Data nil es la condición recuperable "no hubo JSON": el caller la reporta
// como falla de extracción, no como crash.
func decodePayload(p ExtractedPayload, out interface{ Validate() error }) error {
	if p.Data == nil {
		return domain.E(domain.KindExtractionFailed, "failed to parse AI response")
	}
	if err := json.Unmarshal(p.Data, out); err != nil {
		return domain.Wrap(domain.KindMalformedPayload, "ai payload does not match the expected shape", err)
	}
	return out.Validate()
}
