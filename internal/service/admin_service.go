package service

import (
	"context"

	"movie_tracker/configs"
	"movie_tracker/internal/repository"
	"movie_tracker/pkg/logger"
)

type IAdminService interface {
	FetchDbConfigs(ctx context.Context) error
}

type AdminService struct {
	AdminRepo repository.IAdminRepository
}

// NewAdminService accepts a nil repository when mongodb is not configured.
func NewAdminService(AdminRepo repository.IAdminRepository) *AdminService {
	service := &AdminService{
		AdminRepo: AdminRepo,
	}

	return service
}

//-----------------------------------------
//-----------------------------------------

func (m *AdminService) FetchDbConfigs(ctx context.Context) error {
	if m.AdminRepo == nil {
		return ErrConfigsUnavailable
	}

	data, err := m.AdminRepo.GetServerConfigs(ctx)
	if err != nil {
		return err
	}
	if data == nil {
		logger.Named("configs").Warn("no server configs document, keeping current values", "title", configs.DbConfigsTitle)
		return nil
	}
	if data.CorsAllowedOrigins == nil {
		data.CorsAllowedOrigins = []string{}
	}

	configs.SetDbConfigs(*data)
	return nil
}
