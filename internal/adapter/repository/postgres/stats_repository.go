package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/srgjo27/villa_booking/internal/core/domain"
)

// StatsRepository calls the aggregation functions installed in the database.
type StatsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) BookingStats(ctx context.Context, filter domain.StatsFilter) (domain.Stats, error) {
	return r.call(ctx, "get_booking_stats", filter)
}

func (r *StatsRepository) CheckinStats(ctx context.Context, filter domain.StatsFilter) (domain.Stats, error) {
	return r.call(ctx, "get_checkin_stats", filter)
}

func (r *StatsRepository) call(ctx context.Context, fn string, filter domain.StatsFilter) (domain.Stats, error) {
	query := fmt.Sprintf(`SELECT %s($1, $2, $3, $4)`, fn)

	var raw []byte
	err := r.db.QueryRowContext(ctx, query, filter.Month, filter.Year, nullable(filter.Employee), nullable(filter.Referral)).Scan(&raw)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("%s: %w", fn, err)
	}

	var stats domain.Stats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return domain.Stats{}, fmt.Errorf("%s: decode: %w", fn, err)
	}
	return stats, nil
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
