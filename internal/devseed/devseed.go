// Package devseed populates a development database with demo accounts and
// postings so a fresh checkout has something to browse. It never runs outside
// dev mode.
package devseed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/internmatch/internmatch-api/internal/data"
	domainauth "github.com/internmatch/internmatch-api/internal/domain/auth"
	"github.com/internmatch/internmatch-api/internal/domain/model"
)

const (
	adminID       = "seed-admin"
	adminEmail    = "admin@internmatch.local"
	recruiterID   = "seed-recruiter"
	recruiterMail = "recruiter@internmatch.local"
	studentID     = "seed-student"
	studentEmail  = "student@internmatch.local"
)

// Seeder owns the repositories used for seeding.
type Seeder struct {
	users       *data.UserRepo
	companies   *data.CompanyRepo
	internships *data.InternshipRepo
	logger      *slog.Logger
}

// New constructs a Seeder over the given database.
func New(db *sql.DB, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{
		users:       data.NewUserRepo(db),
		companies:   data.NewCompanyRepo(db),
		internships: data.NewInternshipRepo(db),
		logger:      logger,
	}
}

// Run seeds the admin account plus a demo recruiter with an approved company
// and one approved posting. Seeding is idempotent: existing rows are left
// alone.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedUsers(ctx); err != nil {
		return err
	}

	company, err := s.seedCompany(ctx)
	if err != nil {
		return err
	}

	if err := s.seedInternship(ctx, company.ID); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "dev data seeded",
		"admin", adminEmail, "recruiter", recruiterMail, "student", studentEmail)
	return nil
}

func (s *Seeder) seedUsers(ctx context.Context) error {
	seeds := []struct {
		id, email, name string
		role            domainauth.Role
	}{
		{adminID, adminEmail, "Seed Admin", domainauth.RoleAdmin},
		{recruiterID, recruiterMail, "Seed Recruiter", domainauth.RoleRecruiter},
		{studentID, studentEmail, "Seed Student", domainauth.RoleStudent},
	}

	for _, u := range seeds {
		if _, err := s.users.Upsert(ctx, u.id, u.email, u.name, u.role); err != nil {
			return fmt.Errorf("seed user %s: %w", u.email, err)
		}
	}

	// Give the student a couple of skills so recommendations have something
	// to match against.
	skills := []string{"go", "sql"}
	if _, err := s.users.UpdateProfile(ctx, studentID, model.UpdateProfileRequest{Skills: skills}); err != nil {
		return fmt.Errorf("seed student skills: %w", err)
	}
	return nil
}

func (s *Seeder) seedCompany(ctx context.Context) (*model.Company, error) {
	company, err := s.companies.GetByRecruiter(ctx, recruiterID)
	if err == nil {
		return company, nil
	}
	if !errors.Is(err, data.ErrCompanyNotFound) {
		return nil, fmt.Errorf("look up seed company: %w", err)
	}

	company, err = s.companies.Create(ctx, recruiterID, &model.CreateCompanyRequest{
		CompanyName: "Acme Robotics",
		Description: ptr("Demo company seeded for development."),
		Website:     ptr("https://acme.example.com"),
		Location:    ptr("Bengaluru"),
		Industry:    ptr("Robotics"),
		CompanySize: ptr("11-50"),
	})
	if err != nil {
		return nil, fmt.Errorf("seed company: %w", err)
	}

	if company, err = s.companies.SetApproved(ctx, company.ID, true); err != nil {
		return nil, fmt.Errorf("approve seed company: %w", err)
	}
	return company, nil
}

func (s *Seeder) seedInternship(ctx context.Context, companyID string) error {
	existing, err := s.internships.ListByCompany(ctx, companyID)
	if err != nil {
		return fmt.Errorf("list seed internships: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	applyBy := time.Now().AddDate(0, 1, 0)
	internship, err := s.internships.Create(ctx, companyID, &model.CreateInternshipRequest{
		Title:          "Backend Engineering Intern",
		Category:       ptr("engineering"),
		Description:    "Work on the services powering the Acme fleet.",
		StipendMin:     15000,
		StipendMax:     25000,
		Location:       ptr("Bengaluru"),
		IsWFH:          true,
		Duration:       ptr("3 months"),
		Openings:       2,
		SkillsRequired: []string{"go", "sql"},
		ApplyBy:        &applyBy,
	})
	if err != nil {
		return fmt.Errorf("seed internship: %w", err)
	}

	if _, err := s.internships.Decide(ctx, internship.ID, model.InternshipStatusApproved); err != nil {
		return fmt.Errorf("approve seed internship: %w", err)
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
