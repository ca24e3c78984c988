package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/profiler/internal/domain"
)

// Feedback weight derivation. Accepts push a category's multiplier above
// neutral, rejects pull it below, bounded so a run of identical events
// cannot dominate the scoreboard.
const (
	boostPerAccept   = 0.2
	penaltyPerReject = 0.15
	weightFloor      = 0.1
	weightCeiling    = 3.0
)

// FeedbackRepository persists feedback events and derives the aggregate
// feedback signal the fusion stage consumes.
type FeedbackRepository struct {
	db *sqlx.DB
}

// NewFeedbackRepository creates a new feedback repository.
func NewFeedbackRepository(db *sqlx.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// RecordEvent inserts a feedback event and its category associations in one
// transaction. The event count for the user only ever grows.
func (r *FeedbackRepository) RecordEvent(ctx context.Context, userID, skillID string, categories []string, action domain.FeedbackAction) error {
	if !domain.ValidFeedbackAction(action) {
		return fmt.Errorf("invalid feedback action: %s", action)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	insertEvent := r.db.Rebind(`
		INSERT INTO feedback_events (user_id, skill_id, action)
		VALUES (?, ?, ?)
		RETURNING id
	`)
	if err := tx.QueryRowContext(ctx, insertEvent, userID, skillID, string(action)).Scan(&eventID); err != nil {
		return fmt.Errorf("insert feedback event: %w", err)
	}

	insertCategory := r.db.Rebind(`
		INSERT INTO feedback_event_categories (event_id, category)
		VALUES (?, ?)
	`)
	for _, category := range categories {
		if category == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, insertCategory, eventID, category); err != nil {
			return fmt.Errorf("insert feedback category: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit feedback event: %w", err)
	}
	return nil
}

// Read derives the aggregate feedback signal for a user: total event count,
// per-category multipliers, and the set of rejected skill ids.
func (r *FeedbackRepository) Read(ctx context.Context, userID string) (*domain.FeedbackSignal, error) {
	signal := &domain.FeedbackSignal{}

	countQuery := r.db.Rebind(`SELECT COUNT(*) FROM feedback_events WHERE user_id = ?`)
	if err := r.db.GetContext(ctx, &signal.EventCount, countQuery, userID); err != nil {
		return nil, fmt.Errorf("count feedback events: %w", err)
	}
	if signal.EventCount == 0 {
		return signal, nil
	}

	weights, err := r.categoryWeights(ctx, userID)
	if err != nil {
		return nil, err
	}
	signal.CategoryWeights = weights

	exclusions, err := r.rejectedSkillIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	signal.ExcludeSkillIDs = exclusions

	return signal, nil
}

func (r *FeedbackRepository) categoryWeights(ctx context.Context, userID string) (map[string]float64, error) {
	query := r.db.Rebind(`
		SELECT c.category, e.action, COUNT(*) AS events
		FROM feedback_events e
		JOIN feedback_event_categories c ON c.event_id = e.id
		WHERE e.user_id = ?
		GROUP BY c.category, e.action
	`)

	rows, err := r.db.QueryxContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query category weights: %w", err)
	}
	defer rows.Close()

	weights := make(map[string]float64)
	for rows.Next() {
		var category, action string
		var events int
		if err := rows.Scan(&category, &action, &events); err != nil {
			return nil, fmt.Errorf("scan category weight row: %w", err)
		}

		if _, ok := weights[category]; !ok {
			weights[category] = 1.0
		}
		switch domain.FeedbackAction(action) {
		case domain.FeedbackAccept:
			weights[category] += boostPerAccept * float64(events)
		case domain.FeedbackReject:
			weights[category] -= penaltyPerReject * float64(events)
		case domain.FeedbackSkip:
			// Skips are recorded for the event count but stay neutral.
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category weight rows: %w", err)
	}

	for category, weight := range weights {
		if weight < weightFloor {
			weights[category] = weightFloor
		}
		if weight > weightCeiling {
			weights[category] = weightCeiling
		}
	}
	if len(weights) == 0 {
		return nil, nil
	}
	return weights, nil
}

func (r *FeedbackRepository) rejectedSkillIDs(ctx context.Context, userID string) ([]string, error) {
	query := r.db.Rebind(`
		SELECT DISTINCT skill_id
		FROM feedback_events
		WHERE user_id = ? AND action = ? AND skill_id <> ''
		ORDER BY skill_id
	`)

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, userID, string(domain.FeedbackReject)); err != nil {
		return nil, fmt.Errorf("query rejected skills: %w", err)
	}
	return ids, nil
}
