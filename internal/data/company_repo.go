package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jackc/pgerrcode"

	"github.com/internmatch/internmatch-api/internal/data/pgxutil"
	"github.com/internmatch/internmatch-api/internal/domain/model"
)

// CompanyRepo provides database operations for companies.
type CompanyRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewCompanyRepo creates a new CompanyRepo with real time provider.
func NewCompanyRepo(db *sql.DB) *CompanyRepo {
	return &CompanyRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewCompanyRepoWithTimeProvider creates a new CompanyRepo with a custom time provider (useful for tests).
func NewCompanyRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *CompanyRepo {
	return &CompanyRepo{DB: db, timeProvider: tp}
}

// Create inserts a company for a recruiter. The unique constraint on
// recruiter_id is the one-company-per-recruiter rule; a violation maps to
// ErrCompanyExists without any prior existence read.
func (r *CompanyRepo) Create(ctx context.Context, recruiterID string, req *model.CreateCompanyRequest) (*model.Company, error) {
	if req == nil {
		return nil, errors.New("create company request is required")
	}
	if strings.TrimSpace(recruiterID) == "" {
		return nil, errors.New("recruiter id is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.Company
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO companies (
				recruiter_id, company_name, description, website, logo_url, location, industry, company_size, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $9
			) RETURNING `+companyColumns,
			recruiterID,
			req.CompanyName,
			req.Description,
			req.Website,
			req.LogoURL,
			req.Location,
			req.Industry,
			req.CompanySize,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Company])
		return err
	}); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrCompanyExists
		}
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a company by ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*model.Company, error) {
	return r.getByQuery(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
}

// GetByRecruiter retrieves the company owned by a recruiter.
func (r *CompanyRepo) GetByRecruiter(ctx context.Context, recruiterID string) (*model.Company, error) {
	return r.getByQuery(ctx, `SELECT `+companyColumns+` FROM companies WHERE recruiter_id = $1`, recruiterID)
}

// Update updates a recruiter's own company profile fields. The approved flag
// is deliberately outside this path; only SetApproved touches it.
func (r *CompanyRepo) Update(ctx context.Context, recruiterID string, req model.UpdateCompanyRequest) (*model.Company, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	setParts := make([]string, 0, 8)
	args := make([]any, 0, 9)
	nextIdx := func() int { return len(args) + 1 }

	if req.CompanyName != nil {
		setParts = append(setParts, fmt.Sprintf("company_name = $%d", nextIdx()))
		args = append(args, *req.CompanyName)
	}
	if req.Description != nil {
		setParts = append(setParts, fmt.Sprintf("description = $%d", nextIdx()))
		args = append(args, *req.Description)
	}
	if req.Website != nil {
		setParts = append(setParts, fmt.Sprintf("website = $%d", nextIdx()))
		args = append(args, *req.Website)
	}
	if req.LogoURL != nil {
		setParts = append(setParts, fmt.Sprintf("logo_url = $%d", nextIdx()))
		args = append(args, *req.LogoURL)
	}
	if req.Location != nil {
		setParts = append(setParts, fmt.Sprintf("location = $%d", nextIdx()))
		args = append(args, *req.Location)
	}
	if req.Industry != nil {
		setParts = append(setParts, fmt.Sprintf("industry = $%d", nextIdx()))
		args = append(args, *req.Industry)
	}
	if req.CompanySize != nil {
		setParts = append(setParts, fmt.Sprintf("company_size = $%d", nextIdx()))
		args = append(args, *req.CompanySize)
	}
	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	args = append(args, recruiterID)
	query := "UPDATE companies SET " + strings.Join(setParts, ", ") +
		" WHERE recruiter_id = $" + strconv.Itoa(len(args)) +
		" RETURNING " + companyColumns

	var out model.Company
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Company])
		return e
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return &out, nil
}

// SetApproved flips the admin approval flag. Unlike internship moderation
// this is reversible in both directions.
func (r *CompanyRepo) SetApproved(ctx context.Context, id string, approved bool) (*model.Company, error) {
	var out model.Company
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE companies SET approved = $1, updated_at = $2
			WHERE id = $3
			RETURNING `+companyColumns,
			approved, r.timeProvider.Now().UTC(), id)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Company])
		return e
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to set company approval: %w", err)
	}
	return &out, nil
}

// ListUnapproved retrieves companies awaiting admin approval, oldest first.
func (r *CompanyRepo) ListUnapproved(ctx context.Context) ([]*model.Company, error) {
	var rowsOut []model.Company
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+companyColumns+`
			FROM companies
			WHERE approved = false
			ORDER BY created_at ASC`)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Company])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list unapproved companies: %w", err)
	}

	res := make([]*model.Company, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// CountUnapproved returns the number of companies awaiting approval.
func (r *CompanyRepo) CountUnapproved(ctx context.Context) (int64, error) {
	var n int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `SELECT COUNT(*) FROM companies WHERE approved = false`).Scan(&n)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count unapproved companies: %w", err)
	}
	return n, nil
}

func (r *CompanyRepo) getByQuery(ctx context.Context, q string, args ...any) (*model.Company, error) {
	var company model.Company
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		company, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Company])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &company, nil
}

// companyColumns is the standard column list for company queries.
const companyColumns = `id, recruiter_id, company_name, description, website, logo_url, location, industry, company_size, approved, created_at, updated_at`
