package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/internmatch/internmatch-api/internal/data/pgxutil"
	"github.com/internmatch/internmatch-api/internal/domain/model"
	apperrors "github.com/internmatch/internmatch-api/internal/errors"
)

// ApplicationRepo provides database operations for internship applications.
type ApplicationRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewApplicationRepo creates a new ApplicationRepo with real time provider.
func NewApplicationRepo(db *sql.DB) *ApplicationRepo {
	return &ApplicationRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewApplicationRepoWithTimeProvider creates a new ApplicationRepo with a custom time provider (useful for tests).
func NewApplicationRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *ApplicationRepo {
	return &ApplicationRepo{DB: db, timeProvider: tp}
}

// Create inserts a new application in the applied status. The one-application
// rule is enforced by the unique constraint on (internship_id, user_id); a
// duplicate insert surfaces as ErrAlreadyApplied without a prior read.
func (r *ApplicationRepo) Create(ctx context.Context, internshipID, userID string, req *model.SubmitApplicationRequest) (*model.Application, error) {
	if req == nil {
		return nil, errors.New("submit application request is required")
	}
	if strings.TrimSpace(internshipID) == "" || strings.TrimSpace(userID) == "" {
		return nil, errors.New("internship id and user id are required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.Application
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO applications (internship_id, user_id, cover_letter, answers, status, applied_at, updated_at)
			VALUES ($1, $2, $3, $4, 'applied', $5, $5)
			RETURNING `+applicationColumns,
			internshipID, userID, req.CoverLetter, req.Answers, now)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Application])
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrAlreadyApplied
		}
		// A vanished internship surfaces as a foreign key violation here.
		if mapped := apperrors.MapDBError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}
	return &out, nil
}

// GetByID retrieves an application by ID.
func (r *ApplicationRepo) GetByID(ctx context.Context, id string) (*model.Application, error) {
	var app model.Application
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		app, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Application])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to get application by ID: %w", err)
	}
	return &app, nil
}

// exists reports whether the student already applied to the internship.
// Duplicate protection lives in the unique constraint; this is a test helper.
func (r *ApplicationRepo) exists(ctx context.Context, internshipID, userID string) (bool, error) {
	var exists bool
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM applications WHERE internship_id = $1 AND user_id = $2)`,
			internshipID, userID).Scan(&exists)
	})
	if err != nil {
		return false, fmt.Errorf("failed to check application existence: %w", err)
	}
	return exists, nil
}

// ListForStudent retrieves a student's applications joined with the
// internship and company display fields, newest first.
func (r *ApplicationRepo) ListForStudent(ctx context.Context, userID string) ([]*model.ApplicationWithInternship, error) {
	var rowsOut []model.ApplicationWithInternship
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+qualifiedApplicationColumns+`,
			       i.title AS internship_title, c.company_name, c.logo_url
			FROM applications a
			JOIN internships i ON i.id = a.internship_id
			JOIN companies c ON c.id = i.company_id
			WHERE a.user_id = $1
			ORDER BY a.applied_at DESC, a.id DESC`, userID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.ApplicationWithInternship])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list applications for student: %w", err)
	}

	res := make([]*model.ApplicationWithInternship, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// ListForInternship retrieves an internship's applications joined with the
// applicant's profile fields, newest first.
func (r *ApplicationRepo) ListForInternship(ctx context.Context, internshipID string) ([]*model.ApplicationWithApplicant, error) {
	var rowsOut []model.ApplicationWithApplicant
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+qualifiedApplicationColumns+`,
			       u.full_name AS applicant_name, u.email AS applicant_email,
			       u.skills AS applicant_skills, u.resume_url
			FROM applications a
			JOIN users u ON u.id = a.user_id
			WHERE a.internship_id = $1
			ORDER BY a.applied_at DESC, a.id DESC`, internshipID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.ApplicationWithApplicant])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list applications for internship: %w", err)
	}

	res := make([]*model.ApplicationWithApplicant, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Decide moves an application from applied to selected or rejected. The
// UPDATE is guarded by the applied predicate, so an already-decided
// application cannot be moved again.
func (r *ApplicationRepo) Decide(ctx context.Context, id string, status model.ApplicationStatus) (*model.Application, error) {
	if status != model.ApplicationStatusSelected && status != model.ApplicationStatusRejected {
		return nil, errors.New("decision must be selected or rejected")
	}

	var out model.Application
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE applications SET status = $1, updated_at = $2
			WHERE id = $3 AND status = 'applied'
			RETURNING `+applicationColumns,
			status, r.timeProvider.Now().UTC(), id)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Application])
		return e
	})
	if err == nil {
		return &out, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to decide application: %w", err)
	}

	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, ErrApplicationDecided
}

// Column lists for application queries.
const (
	applicationColumns = `id, internship_id, user_id, cover_letter, answers, status, applied_at, updated_at`

	qualifiedApplicationColumns = `a.id, a.internship_id, a.user_id, a.cover_letter, a.answers, a.status, a.applied_at, a.updated_at`
)
