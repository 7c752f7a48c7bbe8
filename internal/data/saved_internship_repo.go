package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/internmatch/internmatch-api/internal/data/pgxutil"
	"github.com/internmatch/internmatch-api/internal/domain/model"
	apperrors "github.com/internmatch/internmatch-api/internal/errors"
)

// SavedInternshipRepo provides database operations for a student's saved
// internships.
type SavedInternshipRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewSavedInternshipRepo creates a new SavedInternshipRepo with real time provider.
func NewSavedInternshipRepo(db *sql.DB) *SavedInternshipRepo {
	return &SavedInternshipRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewSavedInternshipRepoWithTimeProvider creates a new SavedInternshipRepo with a custom time provider (useful for tests).
func NewSavedInternshipRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *SavedInternshipRepo {
	return &SavedInternshipRepo{DB: db, timeProvider: tp}
}

// Toggle saves the internship if it is not yet saved, otherwise removes the
// save. It returns true when the internship ends up saved. The insert relies
// on ON CONFLICT DO NOTHING so concurrent toggles cannot error.
func (r *SavedInternshipRepo) Toggle(ctx context.Context, userID, internshipID string) (bool, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(internshipID) == "" {
		return false, errors.New("user id and internship id are required")
	}

	var saved bool
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx, `
			INSERT INTO saved_internships (user_id, internship_id, saved_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, internship_id) DO NOTHING`,
			userID, internshipID, r.timeProvider.Now().UTC())
		if err != nil {
			return err
		}
		if tag.RowsAffected() > 0 {
			saved = true
			return nil
		}
		_, err = conn.Exec(ctx,
			`DELETE FROM saved_internships WHERE user_id = $1 AND internship_id = $2`,
			userID, internshipID)
		return err
	})
	if err != nil {
		// The internship may be deleted between the existence check and the
		// insert; map the foreign key violation instead of returning a 500.
		if mapped := apperrors.MapDBError(err); mapped != err {
			return false, mapped
		}
		return false, fmt.Errorf("failed to toggle saved internship: %w", err)
	}
	return saved, nil
}

// isSaved reports whether the user has saved the internship.
func (r *SavedInternshipRepo) isSaved(ctx context.Context, userID, internshipID string) (bool, error) {
	var exists bool
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM saved_internships WHERE user_id = $1 AND internship_id = $2)`,
			userID, internshipID).Scan(&exists)
	})
	if err != nil {
		return false, fmt.Errorf("failed to check saved internship: %w", err)
	}
	return exists, nil
}

// ListSaved retrieves the user's saved internships as listing cards, most
// recently saved first. Cards are served regardless of moderation status so
// a student can see a save whose posting was later rejected.
func (r *SavedInternshipRepo) ListSaved(ctx context.Context, userID string) ([]*model.InternshipCard, error) {
	var rowsOut []model.InternshipCard
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+cardColumns+`
			FROM internship_cards
			JOIN saved_internships s ON s.internship_id = internship_cards.id
			WHERE s.user_id = $1
			ORDER BY s.saved_at DESC, internship_cards.id DESC`, userID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.InternshipCard])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list saved internships: %w", err)
	}

	res := make([]*model.InternshipCard, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}
