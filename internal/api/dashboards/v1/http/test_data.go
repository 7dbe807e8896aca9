package http

import (
	"testing"

	repo "github.com/tuolden/health-dashboard-sub003/internal/pkg/repository"
	repo_mock "github.com/tuolden/health-dashboard-sub003/internal/pkg/repository/mock"
	"github.com/tuolden/health-dashboard-sub003/internal/pkg/service"
	"go.uber.org/mock/gomock"
)

func newTestData(t *testing.T) (*API, *repo_mock.MockDashboards, *repo_mock.MockWidgets) {
	ctl := gomock.NewController(t)
	mockedDashboards := repo_mock.NewMockDashboards(ctl)
	mockedWidgets := repo_mock.NewMockWidgets(ctl)
	r := &repo.Repository{
		Dashboards: mockedDashboards,
		Widgets:    mockedWidgets,
	}
	return New(service.New(r)), mockedDashboards, mockedWidgets
}
