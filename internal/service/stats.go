package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/internmatch/internmatch-api/internal/core"
	"github.com/internmatch/internmatch-api/internal/domain/model"
)

// StatsServiceOptions groups dependencies for StatsService.
type StatsServiceOptions struct {
	Internships core.InternshipRepository
	Companies   core.CompanyRepository
	Users       core.UserRepository
}

// StatsService computes the admin dashboard counters.
type StatsService struct {
	internships core.InternshipRepository
	companies   core.CompanyRepository
	users       core.UserRepository
}

// NewStatsService constructs a new StatsService.
func NewStatsService(opts StatsServiceOptions) *StatsService {
	return &StatsService{
		internships: opts.Internships,
		companies:   opts.Companies,
		users:       opts.Users,
	}
}

// AdminStats gathers the dashboard counters. The three underlying queries
// fan out concurrently; the first failure cancels the rest.
func (s *StatsService) AdminStats(ctx context.Context) (*model.AdminStats, error) {
	var (
		byStatus            map[model.InternshipStatus]int64
		unapprovedCompanies int64
	)

	stats := &model.AdminStats{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		byStatus, err = s.internships.CountByStatus(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		unapprovedCompanies, err = s.companies.CountUnapproved(gctx)
		return err
	})
	g.Go(func() error {
		counts, err := s.users.CountByRole(gctx)
		if err != nil {
			return err
		}
		stats.UsersByRole = counts
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.PendingInternships = byStatus[model.InternshipStatusPending]
	stats.ApprovedInternships = byStatus[model.InternshipStatusApproved]
	stats.RejectedInternships = byStatus[model.InternshipStatusRejected]
	stats.UnapprovedCompanies = unapprovedCompanies

	return stats, nil
}
