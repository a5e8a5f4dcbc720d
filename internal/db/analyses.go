package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jpierre/resume-insights/internal/types"
)

// AnalysisKind distinguishes the cached blob types per user.
type AnalysisKind string

// The cached analysis kinds.
const (
	KindScoreReport AnalysisKind = "score_report"
	KindMatchReport AnalysisKind = "match_report"
)

// SaveAnalysis upserts a JSON analysis blob for a user. Term is empty for
// score reports, which do not depend on a catalog term.
func (db *DB) SaveAnalysis(ctx context.Context, userID uuid.UUID, term string, kind AnalysisKind, content any) error {
	data, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", kind, err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO analyses (user_id, term, kind, content, updated_at)
		 VALUES ($1, $2, $3, $4, NOW())
		 ON CONFLICT (user_id, term, kind)
		 DO UPDATE SET content = EXCLUDED.content, updated_at = NOW()`,
		userID, term, string(kind), data,
	)
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", kind, err)
	}
	return nil
}

// GetAnalysis loads a JSON analysis blob for a user into out. Returns
// (false, nil) when no blob exists.
func (db *DB) GetAnalysis(ctx context.Context, userID uuid.UUID, term string, kind AnalysisKind, out any) (bool, error) {
	var data []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM analyses WHERE user_id = $1 AND term = $2 AND kind = $3`,
		userID, term, string(kind),
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", kind, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", kind, err)
	}
	return true, nil
}

// GetScoreReport loads a user's cached score report, or nil if absent.
func (db *DB) GetScoreReport(ctx context.Context, userID uuid.UUID) (*types.ScoreReport, error) {
	var report types.ScoreReport
	found, err := db.GetAnalysis(ctx, userID, "", KindScoreReport, &report)
	if err != nil || !found {
		return nil, err
	}
	return &report, nil
}

// GetMatchReport loads a user's cached match report for a term, or nil if
// absent.
func (db *DB) GetMatchReport(ctx context.Context, userID uuid.UUID, term string) (*types.MatchReport, error) {
	var report types.MatchReport
	found, err := db.GetAnalysis(ctx, userID, term, KindMatchReport, &report)
	if err != nil || !found {
		return nil, err
	}
	return &report, nil
}
