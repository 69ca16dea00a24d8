package config

import (
	"github.com/caarlos0/env/v10"

	"scripture-llm/internal/domain"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort                 string  `env:"HTTP_PORT" envDefault:"8080"`
	AnthropicAPIKey          string  `env:"ANTHROPIC_API_KEY"`
	LLMModel                 string  `env:"LLM_MODEL" envDefault:"claude-sonnet-4-5-20250929"`
	LLMMaxTokens             int64   `env:"LLM_MAX_TOKENS" envDefault:"2048"`
	BibleAPIBaseURL          string  `env:"BIBLE_API_BASE_URL" envDefault:"https://bolls.life"`
	BibleFetchTimeoutSeconds int     `env:"BIBLE_FETCH_TIMEOUT_SECONDS" envDefault:"10"`
	DefaultTranslation       string  `env:"DEFAULT_TRANSLATION" envDefault:"WEB"`
	ChapterCacheSize         int     `env:"CHAPTER_CACHE_SIZE" envDefault:"250"`
	RateLimitWindowSeconds   int     `env:"RATE_LIMIT_WINDOW_SECONDS" envDefault:"60"`
	RateLimitMax             int     `env:"RATE_LIMIT_MAX" envDefault:"30"`
	InputCostPerMTok         float64 `env:"INPUT_COST_PER_MTOK" envDefault:"3.0"`
	OutputCostPerMTok        float64 `env:"OUTPUT_COST_PER_MTOK" envDefault:"15.0"`
	DatabaseURL              string  `env:"DATABASE_URL"`
	RedisAddr                string  `env:"REDIS_ADDR"`
	RedisPassword            string  `env:"REDIS_PASSWORD"`
	RedisDB                  int     `env:"REDIS_DB" envDefault:"0"`
}

// LoadConfig carga la configuración desde variables de entorno.
// La API key del LLM es la única credencial obligatoria.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if cfg.AnthropicAPIKey == "" {
		return nil, domain.E(domain.KindConfigurationMissing, "ANTHROPIC_API_KEY is required")
	}
	return &cfg, nil
}
