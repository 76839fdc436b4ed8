package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

const notAvailable = "N/A"

type appInfoService struct {
	version models.VersionResponse

	logger *logger.Logger
}

// NewAppInfoService serves buildInfo. Empty fields are reported as "N/A".
func NewAppInfoService(buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	v := buildInfo.VersionResponse()
	for _, f := range []*string{&v.Version, &v.Date, &v.Commit} {
		if *f == "" {
			*f = notAvailable
		}
	}

	return &appInfoService{version: v, logger: logger}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) models.VersionResponse {
	return s.version
}
