package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"scripture-llm/internal/domain"
)

// UsageRepository define el contrato de persistencia del consumo de tokens.
type UsageRepository interface {
	Record(ctx context.Context, rec domain.UsageRecord) error
	DailySummary(ctx context.Context, day time.Time) (domain.UsageSummary, error)
}

// PgUsageRepository implementa UsageRepository usando pgxpool.
type PgUsageRepository struct {
	pool *pgxpool.Pool
}

func NewPgUsageRepository(pool *pgxpool.Pool) *PgUsageRepository {
	return &PgUsageRepository{pool: pool}
}

func (r *PgUsageRepository) Record(ctx context.Context, rec domain.UsageRecord) error {
	const query = `
		INSERT INTO usage_records (id, endpoint, model, input_tokens, output_tokens, cost_usd, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		rec.ID,
		rec.Endpoint,
		rec.Model,
		rec.InputTokens,
		rec.OutputTokens,
		rec.CostUSD,
		rec.CreatedAt,
	)
	if err != nil {
		return eris.Wrap(err, "usage: record")
	}
	return nil
}

func (r *PgUsageRepository) DailySummary(ctx context.Context, day time.Time) (domain.UsageSummary, error) {
	const query = `
		SELECT COUNT(*),
		       COALESCE(SUM(input_tokens), 0),
		       COALESCE(SUM(output_tokens), 0),
		       COALESCE(SUM(cost_usd), 0)
		FROM usage_records
		WHERE created_at >= $1 AND created_at < $2
	`
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	s := domain.UsageSummary{Day: start.Format("2006-01-02")}
	err := r.pool.QueryRow(ctx, query, start, end).Scan(
		&s.Calls,
		&s.InputTokens,
		&s.OutputTokens,
		&s.CostUSD,
	)
	if err != nil {
		return domain.UsageSummary{}, eris.Wrap(err, "usage: daily summary")
	}
	return s, nil
}

// DisabledUsageRepository descarta los registros cuando no hay base configurada.
type DisabledUsageRepository struct{}

func NewDisabledUsageRepository() *DisabledUsageRepository {
	return &DisabledUsageRepository{}
}

func (*DisabledUsageRepository) Record(ctx context.Context, rec domain.UsageRecord) error {
	return nil
}

func (*DisabledUsageRepository) DailySummary(ctx context.Context, day time.Time) (domain.UsageSummary, error) {
	return domain.UsageSummary{Day: day.UTC().Format("2006-01-02")}, nil
}
