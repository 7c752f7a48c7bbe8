package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internmatch/internmatch-api/internal/domain/auth"
	"github.com/internmatch/internmatch-api/internal/domain/model"
	"github.com/internmatch/internmatch-api/internal/testutil"
)

func TestInternshipRepo_CreateAndGet(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewInternshipRepo(db)
		recruiter := createTestUser(t, db, auth.RoleRecruiter)
		company := createTestCompany(t, db, recruiter.ID)

		i, err := repo.Create(ctx, company.ID, &model.CreateInternshipRequest{
			Title:          "Backend Intern",
			Description:    "Build APIs",
			StipendMin:     1000,
			StipendMax:     2000,
			Openings:       2,
			IsWFH:          true,
			SkillsRequired: []string{"go", "postgres"},
		})
		require.NoError(t, err)
		require.NotEmpty(t, i.ID)
		assert.Equal(t, model.InternshipStatusPending, i.Status)
		assert.Equal(t, []string{"go", "postgres"}, i.SkillsRequired)

		got, err := repo.GetByID(ctx, i.ID)
		require.NoError(t, err)
		assert.Equal(t, "Backend Intern", got.Title)

		card, err := repo.GetCardByID(ctx, i.ID)
		require.NoError(t, err)
		assert.Equal(t, company.CompanyName, card.CompanyName)

		_, err = repo.GetByID(ctx, uuid.NewString())
		require.ErrorIs(t, err, ErrInternshipNotFound)
	})
}

func TestInternshipRepo_Create_Validation(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewInternshipRepo(db)
		ctx := context.Background()

		_, err := repo.Create(ctx, "company", &model.CreateInternshipRequest{
			Title: " ", Description: "x", Openings: 1,
		})
		require.Error(t, err)

		// inverted stipend range
		_, err = repo.Create(ctx, "company", &model.CreateInternshipRequest{
			Title: "t", Description: "x", StipendMin: 500, StipendMax: 100, Openings: 1,
		})
		require.Error(t, err)
	})
}

func TestInternshipRepo_ListPublic_OnlyApproved(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewInternshipRepo(db)
		recruiter := createTestUser(t, db, auth.RoleRecruiter)
		company := createTestCompany(t, db, recruiter.ID)

		pending := createTestInternship(t, db, company.ID, nil)
		approved := createTestInternship(t, db, company.ID, nil)
		approveTestInternship(t, db, approved.ID)

		cards, err := repo.ListPublic(ctx, model.InternshipsListOptions{})
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, approved.ID, cards[0].ID)
		assert.NotEqual(t, pending.ID, cards[0].ID)
	})
}

func TestInternshipRepo_ListPublic_Filters(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewInternshipRepo(db)
		recruiter := createTestUser(t, db, auth.RoleRecruiter)
		company := createTestCompany(t, db, recruiter.ID)

		backend := createTestInternship(t, db, company.ID, &model.CreateInternshipRequest{
			Title:          "Backend Engineering Intern",
			Description:    "Work on Go services",
			Category:       testutil.StringPtr("engineering"),
			Location:       testutil.StringPtr("Bengaluru"),
			StipendMin:     2000,
			StipendMax:     4000,
			Openings:       1,
			SkillsRequired: []string{"go"},
		})
		design := createTestInternship(t, db, company.ID, &model.CreateInternshipRequest{
			Title:          "Design Intern",
			Description:    "Figma all day",
			Category:       testutil.StringPtr("design"),
			Location:       testutil.StringPtr("Remote"),
			IsWFH:          true,
			StipendMin:     500,
			StipendMax:     1000,
			Openings:       1,
			SkillsRequired: []string{"figma"},
		})
		approveTestInternship(t, db, backend.ID)
		approveTestInternship(t, db, design.ID)

		// keyword search over title and description
		cards, err := repo.ListPublic(ctx, model.InternshipsListOptions{Q: testutil.StringPtr("go services")})
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, backend.ID, cards[0].ID)

		// skill filter
		cards, err = repo.ListPublic(ctx, model.InternshipsListOptions{Skill: testutil.StringPtr("figma")})
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, design.ID, cards[0].ID)

		// stipend floor
		cards, err = repo.ListPublic(ctx, model.InternshipsListOptions{StipendMin: testutil.IntPtr(1500)})
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, backend.ID, cards[0].ID)

		// WFH only
		cards, err = repo.ListPublic(ctx, model.InternshipsListOptions{WFHOnly: true})
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, design.ID, cards[0].ID)

		// category exact match
		cards, err = repo.ListPublic(ctx, model.InternshipsListOptions{Category: testutil.StringPtr("engineering")})
		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, backend.ID, cards[0].ID)

		// location substring, case-insensitive
		cards, err = repo.ListPublic(ctx, model.InternshipsListOptions{Location: testutil.StringPtr("bengal")})
		require.NoError(t, err)
		require.Len(t, cards, 1)

		// no match
		cards, err = repo.ListPublic(ctx, model.InternshipsListOptions{Skill: testutil.StringPtr("cobol")})
		require.NoError(t, err)
		assert.Empty(t, cards)
	})
}

func TestInternshipRepo_ListPublic_SortAndPaging(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewInternshipRepo(db)
		recruiter := createTestUser(t, db, auth.RoleRecruiter)
		company := createTestCompany(t, db, recruiter.ID)

		low := createTestInternship(t, db, company.ID, &model.CreateInternshipRequest{
			Title: "Low Stipend", Description: "d", StipendMin: 100, StipendMax: 200, Openings: 1,
		})
		high := createTestInternship(t, db, company.ID, &model.CreateInternshipRequest{
			Title: "High Stipend", Description: "d", StipendMin: 5000, StipendMax: 9000, Openings: 1,
		})
		approveTestInternship(t, db, low.ID)
		approveTestInternship(t, db, high.ID)

		cards, err := repo.ListPublic(ctx, model.InternshipsListOptions{Sort: model.InternshipSortStipendHigh})
		require.NoError(t, err)
		require.Len(t, cards, 2)
		assert.Equal(t, high.ID, cards[0].ID)
		assert.Equal(t, low.ID, cards[1].ID)

		// pages beyond the data are empty, not an error
		cards, err = repo.ListPublic(ctx, model.InternshipsListOptions{Page: 5})
		require.NoError(t, err)
		assert.Empty(t, cards)
	})
}

func TestInternshipRepo_Decide_OneWay(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewInternshipRepo(db)
		recruiter := createTestUser(t, db, auth.RoleRecruiter)
		company := createTestCompany(t, db, recruiter.ID)
		i := createTestInternship(t, db, company.ID, nil)

		decided, err := repo.Decide(ctx, i.ID, model.InternshipStatusApproved)
		require.NoError(t, err)
		assert.Equal(t, model.InternshipStatusApproved, decided.Status)

		// a decision cannot be changed
		_, err = repo.Decide(ctx, i.ID, model.InternshipStatusRejected)
		require.ErrorIs(t, err, ErrInternshipNotPending)

		_, err = repo.Decide(ctx, uuid.NewString(), model.InternshipStatusApproved)
		require.ErrorIs(t, err, ErrInternshipNotFound)

		// pending is not a valid decision
		_, err = repo.Decide(ctx, i.ID, model.InternshipStatusPending)
		require.Error(t, err)
	})
}

func TestInternshipRepo_ListByCompanyAndPending(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewInternshipRepo(db)
		recruiter := createTestUser(t, db, auth.RoleRecruiter)
		company := createTestCompany(t, db, recruiter.ID)

		a := createTestInternship(t, db, company.ID, nil)
		b := createTestInternship(t, db, company.ID, nil)
		approveTestInternship(t, db, a.ID)

		// recruiter view includes every status
		mine, err := repo.ListByCompany(ctx, company.ID)
		require.NoError(t, err)
		assert.Len(t, mine, 2)

		pending, err := repo.ListPending(ctx)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, b.ID, pending[0].ID)

		counts, err := repo.CountByStatus(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), counts[model.InternshipStatusApproved])
		assert.Equal(t, int64(1), counts[model.InternshipStatusPending])
	})
}

func TestInternshipRepo_Recommended(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewInternshipRepo(db)
		recruiter := createTestUser(t, db, auth.RoleRecruiter)
		company := createTestCompany(t, db, recruiter.ID)

		goJob := createTestInternship(t, db, company.ID, &model.CreateInternshipRequest{
			Title: "Go Intern", Description: "d", Openings: 1,
			SkillsRequired: []string{"go", "docker"},
		})
		mlJob := createTestInternship(t, db, company.ID, &model.CreateInternshipRequest{
			Title: "ML Intern", Description: "d", Openings: 1,
			SkillsRequired: []string{"python", "pytorch"},
		})
		approveTestInternship(t, db, goJob.ID)
		approveTestInternship(t, db, mlJob.ID)

		// any overlap recommends
		recs, err := repo.Recommended(ctx, []string{"go"}, 10)
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, goJob.ID, recs[0].ID)

		// no skills falls back to newest approved
		recs, err = repo.Recommended(ctx, nil, 10)
		require.NoError(t, err)
		assert.Len(t, recs, 2)
	})
}
