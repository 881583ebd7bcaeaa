package repository

import (
	"context"

	"github.com/akash-insiders/community-hub/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type ProfileRepo interface {
	CreateProfile(ctx context.Context, p *models.Profile) (int64, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
}

type ExpertiseRepo interface {
	CreateExpertise(ctx context.Context, e *models.ExpertiseEntry) (int64, error)
	ListByProfile(ctx context.Context, profileID int64) ([]models.ExpertiseEntry, error)
}

type AdminRepo interface {
	CreateAdmin(ctx context.Context, a *models.Admin) (int64, error)
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
}

type StatsRepo interface {
	Stats(ctx context.Context) (*models.Stats, error)
}
