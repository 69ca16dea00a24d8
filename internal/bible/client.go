package bible

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"scripture-llm/internal/domain"
)

// Fetcher define el contrato de lectura de capítulos. El cliente HTTP real y
// los mocks de test lo implementan.
type Fetcher interface {
	FetchChapter(ctx context.Context, translation string, book, chapter int) ([]domain.Verse, error)
}

// Client lee capítulos del proveedor de texto bíblico (API estilo bolls.life)
// con timeout acotado y cache FIFO por delante.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	cache      *ChapterCache
	logger     *zap.Logger
}

const defaultFetchTimeout = 10 * time.Second

// NewClient construye el cliente. timeout <= 0 usa el default de 10s.
func NewClient(baseURL string, timeout time.Duration, cache *ChapterCache, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
		httpClient: &http.Client{},
		cache:      cache,
		logger:     logger,
	}
}

// verseDTO es la forma del upstream: al menos número de versículo y texto crudo.
type verseDTO struct {
	Verse int    `json:"verse"`
	Text  string `json:"text"`
}

// FetchChapter devuelve el capítulo completo, normalizado y en orden.
// Cache hit exacto → cero requests al upstream. En miss: fetch, store y
// desalojo atómico. Dos misses concurrentes para la misma clave pueden
// duplicar el fetch; eso es tolerable y no se coalescen en vuelo.
func (c *Client) FetchChapter(ctx context.Context, translation string, book, chapter int) ([]domain.Verse, error) {
	key := ChapterKey{Translation: translation, Book: book, Chapter: chapter}
	if verses, ok := c.cache.Get(key); ok {
		return verses, nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/get-text/%s/%d/%d/", c.baseURL, translation, book, chapter)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, eris.Wrap(err, "bible: create request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.Wrap(domain.KindTimeout,
				fmt.Sprintf("bible text provider did not answer within %s", c.timeout), err)
		}
		return nil, domain.Wrap(domain.KindUpstreamUnavailable, "bible text provider unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.E(domain.KindUpstreamUnavailable,
			fmt.Sprintf("bible text provider returned status %d", resp.StatusCode))
	}

	var dtos []verseDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, domain.Wrap(domain.KindUpstreamUnavailable, "bible text provider sent unparseable body", err)
	}

	verses := make([]domain.Verse, 0, len(dtos))
	for _, d := range dtos {
		verses = append(verses, domain.Verse{Number: d.Verse, Text: CleanVerseText(d.Text)})
	}

	c.cache.Put(key, verses)

	if c.logger != nil {
		c.logger.Debug("chapter fetched",
			zap.String("translation", translation),
			zap.Int("book", book),
			zap.Int("chapter", chapter),
			zap.Int("verses", len(verses)),
		)
	}
	return verses, nil
}

var (
	// Anotaciones léxicas tipo Strong's vienen embebidas en el texto: <S>1234</S>.
	// Se quitan con su contenido; un strip genérico de tags dejaría el número suelto.
	strongsRe = regexp.MustCompile(`(?s)<S>.*?</S>`)
	supRe     = regexp.MustCompile(`(?is)<sup>.*?</sup>`)
	tagRe     = regexp.MustCompile(`<[^>]+>`)
	spaceRe   = regexp.MustCompile(`\s+`)
)

// CleanVerseText quita markup inline y anotaciones léxicas del texto del
// versículo y colapsa los espacios internos. Se aplica uniformemente a todo
// versículo antes de devolverlo a cualquier caller.
func CleanVerseText(raw string) string {
	s := strongsRe.ReplaceAllString(raw, "")
	s = supRe.ReplaceAllString(s, "")
	s = tagRe.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	s = spaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
