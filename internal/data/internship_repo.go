package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/internmatch/internmatch-api/internal/data/database"
	"github.com/internmatch/internmatch-api/internal/data/pgxutil"
	"github.com/internmatch/internmatch-api/internal/domain/model"
)

// InternshipRepo provides database operations for internships, including the
// public listing surface backed by the internship_cards view.
type InternshipRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewInternshipRepo creates a new InternshipRepo with real time provider.
func NewInternshipRepo(db *sql.DB) *InternshipRepo {
	return &InternshipRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewInternshipRepoWithTimeProvider creates a new InternshipRepo with a custom time provider (useful for tests).
func NewInternshipRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *InternshipRepo {
	return &InternshipRepo{DB: db, timeProvider: tp}
}

// Create inserts a new internship. New postings always enter moderation as
// pending regardless of caller input.
func (r *InternshipRepo) Create(ctx context.Context, companyID string, req *model.CreateInternshipRequest) (*model.Internship, error) {
	if req == nil {
		return nil, errors.New("create internship request is required")
	}
	if strings.TrimSpace(companyID) == "" {
		return nil, errors.New("company id is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	skills := req.SkillsRequired
	if skills == nil {
		skills = []string{}
	}

	now := r.timeProvider.Now().UTC()
	var out model.Internship
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO internships (
				company_id, title, category, description, responsibilities,
				stipend_min, stipend_max, location, is_wfh, duration, openings,
				perks, skills_required, questions, status, start_date, apply_by,
				created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, 'pending', $15, $16, $17, $17
			) RETURNING `+internshipColumns,
			companyID,
			req.Title,
			req.Category,
			req.Description,
			req.Responsibilities,
			req.StipendMin,
			req.StipendMax,
			req.Location,
			req.IsWFH,
			req.Duration,
			req.Openings,
			req.Perks,
			skills,
			req.Questions,
			req.StartDate,
			req.ApplyBy,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Internship])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create internship: %w", err)
	}
	return &out, nil
}

// GetByID retrieves an internship by ID.
func (r *InternshipRepo) GetByID(ctx context.Context, id string) (*model.Internship, error) {
	var internship model.Internship
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+internshipColumns+` FROM internships WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		internship, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Internship])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInternshipNotFound
		}
		return nil, fmt.Errorf("failed to get internship by ID: %w", err)
	}
	return &internship, nil
}

// GetCardByID retrieves an internship joined with its company display fields.
func (r *InternshipRepo) GetCardByID(ctx context.Context, id string) (*model.InternshipCard, error) {
	var card model.InternshipCard
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+cardColumns+` FROM internship_cards WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		card, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.InternshipCard])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInternshipNotFound
		}
		return nil, fmt.Errorf("failed to get internship card: %w", err)
	}
	return &card, nil
}

// ListPublic retrieves approved internships for the public listing surface,
// applying the browse filters and fixed page size. Non-approved rows never
// appear here; the status condition is unconditional.
func (r *InternshipRepo) ListPublic(ctx context.Context, opts model.InternshipsListOptions) ([]*model.InternshipCard, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	query, args := database.BuildListQuery(r.buildListingOptions(opts))

	var rowsOut []model.InternshipCard
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.InternshipCard])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list internships: %w", err)
	}

	res := make([]*model.InternshipCard, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// buildListingOptions translates browse filters into query builder options
// over the internship_cards view.
func (r *InternshipRepo) buildListingOptions(opts model.InternshipsListOptions) *database.ListQueryOptions {
	queryOpts := []database.ListQueryOption{
		database.WithColumns(strings.Split(cardColumns, ", ")...),
		database.WithCondition(database.WhereCond("status", database.Equal, string(model.InternshipStatusApproved))),
		database.WithLimit(model.ListingPageSize),
		database.WithOffset((opts.Page - 1) * model.ListingPageSize),
	}

	if opts.Q != nil && strings.TrimSpace(*opts.Q) != "" {
		q := "%" + strings.TrimSpace(*opts.Q) + "%"
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereRawCond("(title ILIKE $1 OR description ILIKE $1)", q),
		))
	}
	if opts.Location != nil && strings.TrimSpace(*opts.Location) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("location", database.ILike, "%"+strings.TrimSpace(*opts.Location)+"%"),
		))
	}
	if opts.StipendMin != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("stipend_min", database.GreaterThanOrEqual, *opts.StipendMin),
		))
	}
	if opts.StipendMax != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("stipend_max", database.LessThanOrEqual, *opts.StipendMax),
		))
	}
	if opts.WFHOnly {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("is_wfh", database.Equal, true),
		))
	}
	if opts.Duration != nil && strings.TrimSpace(*opts.Duration) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("duration", database.Equal, strings.TrimSpace(*opts.Duration)),
		))
	}
	if opts.Skill != nil && strings.TrimSpace(*opts.Skill) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("skills_required", database.Contains, []string{strings.TrimSpace(*opts.Skill)}),
		))
	}
	if opts.Category != nil && strings.TrimSpace(*opts.Category) != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("category", database.Equal, strings.TrimSpace(*opts.Category)),
		))
	}

	switch opts.Sort {
	case model.InternshipSortStipendHigh:
		queryOpts = append(queryOpts, database.WithOrderBy("stipend_max", "DESC"))
	default:
		queryOpts = append(queryOpts, database.WithOrderBy("created_at", "DESC"))
	}
	// id tie-break keeps pagination stable across equal sort keys
	queryOpts = append(queryOpts, database.WithOrderBy("id", "DESC"))

	return database.NewListQueryOptions("internship_cards", queryOpts...)
}

// ListByCompany retrieves a company's internships in any status, newest first.
func (r *InternshipRepo) ListByCompany(ctx context.Context, companyID string) ([]*model.Internship, error) {
	var rowsOut []model.Internship
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+internshipColumns+`
			FROM internships
			WHERE company_id = $1
			ORDER BY created_at DESC, id DESC`, companyID)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Internship])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list internships by company: %w", err)
	}

	res := make([]*model.Internship, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// ListPending retrieves internships awaiting moderation, oldest first.
func (r *InternshipRepo) ListPending(ctx context.Context) ([]*model.InternshipCard, error) {
	var rowsOut []model.InternshipCard
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+cardColumns+`
			FROM internship_cards
			WHERE status = 'pending'
			ORDER BY created_at ASC`)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.InternshipCard])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list pending internships: %w", err)
	}

	res := make([]*model.InternshipCard, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Decide records a moderation decision. The UPDATE is guarded by the
// current-state predicate, so a row that has already left pending cannot be
// moved again; the transition is one-way and atomic.
func (r *InternshipRepo) Decide(ctx context.Context, id string, status model.InternshipStatus) (*model.Internship, error) {
	if status != model.InternshipStatusApproved && status != model.InternshipStatusRejected {
		return nil, errors.New("decision must be approved or rejected")
	}

	var out model.Internship
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE internships SET status = $1, updated_at = $2
			WHERE id = $3 AND status = 'pending'
			RETURNING `+internshipColumns,
			status, r.timeProvider.Now().UTC(), id)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Internship])
		return e
	})
	if err == nil {
		return &out, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to decide internship: %w", err)
	}

	// Guarded update matched nothing: distinguish missing from already-decided.
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, ErrInternshipNotPending
}

// Recommended retrieves approved internships whose required skills overlap
// the given set, newest first. An empty skill set falls back to the newest
// approved internships.
func (r *InternshipRepo) Recommended(ctx context.Context, skills []string, limit int) ([]*model.InternshipCard, error) {
	if limit <= 0 {
		limit = model.ListingPageSize
	}

	queryOpts := []database.ListQueryOption{
		database.WithColumns(strings.Split(cardColumns, ", ")...),
		database.WithCondition(database.WhereCond("status", database.Equal, string(model.InternshipStatusApproved))),
		database.WithOrderBy("created_at", "DESC"),
		database.WithOrderBy("id", "DESC"),
		database.WithLimit(limit),
	}
	if len(skills) > 0 {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("skills_required", database.Overlaps, skills),
		))
	}
	query, args := database.BuildListQuery(database.NewListQueryOptions("internship_cards", queryOpts...))

	var rowsOut []model.InternshipCard
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.InternshipCard])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list recommended internships: %w", err)
	}

	res := make([]*model.InternshipCard, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// CountByStatus returns the number of internships per moderation status.
func (r *InternshipRepo) CountByStatus(ctx context.Context) (map[model.InternshipStatus]int64, error) {
	counts := make(map[model.InternshipStatus]int64)
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT status, COUNT(*) FROM internships GROUP BY status`)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var status model.InternshipStatus
			var n int64
			if scanErr := rows.Scan(&status, &n); scanErr != nil {
				return scanErr
			}
			counts[status] = n
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count internships by status: %w", err)
	}
	return counts, nil
}

// Column lists for internship queries.
const (
	internshipColumns = `id, company_id, title, category, description, responsibilities, stipend_min, stipend_max, location, is_wfh, duration, openings, perks, skills_required, questions, status, start_date, apply_by, created_at, updated_at`

	cardColumns = internshipColumns + `, company_name, logo_url`
)
