package services

import (
	"context"

	"github.com/sooquk/sooquk-dashboard/internal/entities"
	"github.com/sooquk/sooquk-dashboard/internal/pkg/apiclient"
	"github.com/sooquk/sooquk-dashboard/internal/session"
)

type StatisticsService interface {
	// VendorStatistics returns the caller's own figures for a vendor, or those of vendorID for an admin.
	// vendorID 0 asks the backend for the marketplace-wide figures.
	VendorStatistics(ctx context.Context, vendorID int64) (*entities.VendorStatistics, error)
}

type statisticsServiceImpl struct {
	stats *Resource[entities.VendorStatistics, struct{}]
	path  string
}

func NewStatisticsService(deps Deps) StatisticsService {
	path := deps.Client.Endpoints().VendorStatistics
	return &statisticsServiceImpl{
		stats: NewResource[entities.VendorStatistics, struct{}](deps, ResourceVendorStatistics, path),
		path:  path,
	}
}

func (s *statisticsServiceImpl) VendorStatistics(ctx context.Context, vendorID int64) (*entities.VendorStatistics, error) {
	path := s.path
	if sess, ok := session.FromContext(ctx); ok && sess.Role == session.RoleVendor {
		vendorID = 0
	}
	if vendorID > 0 {
		path = apiclient.Item(s.path, vendorID)
	}

	var stats entities.VendorStatistics
	if err := s.stats.Fetch(ctx, path, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
