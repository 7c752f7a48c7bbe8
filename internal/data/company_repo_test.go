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

func TestCompanyRepo_CreateAndGet(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewCompanyRepo(db)
		recruiter := createTestUser(t, db, auth.RoleRecruiter)

		c, err := repo.Create(ctx, recruiter.ID, &model.CreateCompanyRequest{
			CompanyName: "Acme Robotics",
			Website:     testutil.StringPtr("https://acme.example.com"),
			Location:    testutil.StringPtr("Berlin"),
		})
		require.NoError(t, err)
		require.NotEmpty(t, c.ID)
		assert.Equal(t, recruiter.ID, c.RecruiterID)
		assert.False(t, c.Approved)

		got, err := repo.GetByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme Robotics", got.CompanyName)

		byRecruiter, err := repo.GetByRecruiter(ctx, recruiter.ID)
		require.NoError(t, err)
		assert.Equal(t, c.ID, byRecruiter.ID)

		_, err = repo.GetByID(ctx, uuid.NewString())
		require.ErrorIs(t, err, ErrCompanyNotFound)
	})
}

func TestCompanyRepo_OneCompanyPerRecruiter(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewCompanyRepo(db)
		recruiter := createTestUser(t, db, auth.RoleRecruiter)

		_, err := repo.Create(ctx, recruiter.ID, &model.CreateCompanyRequest{CompanyName: "First Co"})
		require.NoError(t, err)

		_, err = repo.Create(ctx, recruiter.ID, &model.CreateCompanyRequest{CompanyName: "Second Co"})
		require.ErrorIs(t, err, ErrCompanyExists)
	})
}

func TestCompanyRepo_Update(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewCompanyRepo(db)
		recruiter := createTestUser(t, db, auth.RoleRecruiter)
		createTestCompany(t, db, recruiter.ID)

		updated, err := repo.Update(ctx, recruiter.ID, model.UpdateCompanyRequest{
			Description: testutil.StringPtr("We build robots."),
			Industry:    testutil.StringPtr("robotics"),
		})
		require.NoError(t, err)
		require.NotNil(t, updated.Description)
		assert.Equal(t, "We build robots.", *updated.Description)
		assert.False(t, updated.Approved)

		// updates are keyed by recruiter, not company id
		_, err = repo.Update(ctx, uuid.NewString(), model.UpdateCompanyRequest{
			Description: testutil.StringPtr("x"),
		})
		require.ErrorIs(t, err, ErrCompanyNotFound)
	})
}

func TestCompanyRepo_Approval(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewCompanyRepo(db)
		recruiter := createTestUser(t, db, auth.RoleRecruiter)
		c := createTestCompany(t, db, recruiter.ID)

		unapproved, err := repo.ListUnapproved(ctx)
		require.NoError(t, err)
		require.Len(t, unapproved, 1)
		assert.Equal(t, c.ID, unapproved[0].ID)

		n, err := repo.CountUnapproved(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		approved, err := repo.SetApproved(ctx, c.ID, true)
		require.NoError(t, err)
		assert.True(t, approved.Approved)

		// approval is reversible
		revoked, err := repo.SetApproved(ctx, c.ID, false)
		require.NoError(t, err)
		assert.False(t, revoked.Approved)

		_, err = repo.SetApproved(ctx, uuid.NewString(), true)
		require.ErrorIs(t, err, ErrCompanyNotFound)
	})
}
