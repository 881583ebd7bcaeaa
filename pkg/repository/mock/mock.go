package mock

import (
	"context"

	"github.com/akash-insiders/community-hub/pkg/models"
)

// Test helpers and mocks
type Mocks struct {
	Profiles  *ProfileRepo
	Expertise *ExpertiseRepo
	Admins    *AdminRepo
	Stats     *StatsRepo
}

func NewMocks() *Mocks {
	return &Mocks{
		Profiles:  &ProfileRepo{},
		Expertise: &ExpertiseRepo{},
		Admins:    &AdminRepo{},
		Stats:     &StatsRepo{},
	}
}

type ProfileRepo struct {
	Stored    []models.Profile
	NextID    int64
	CreateErr error
	ListErr   error
}

func (m *ProfileRepo) CreateProfile(ctx context.Context, p *models.Profile) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.NextID++
	stored := *p
	stored.ID = m.NextID
	m.Stored = append(m.Stored, stored)
	return m.NextID, nil
}

func (m *ProfileRepo) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]models.Profile, len(m.Stored))
	copy(out, m.Stored)
	return out, nil
}

type ExpertiseRepo struct {
	Stored    []models.ExpertiseEntry
	CreateErr error
}

func (m *ExpertiseRepo) CreateExpertise(ctx context.Context, e *models.ExpertiseEntry) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	stored := *e
	stored.ID = int64(len(m.Stored) + 1)
	m.Stored = append(m.Stored, stored)
	return stored.ID, nil
}

func (m *ExpertiseRepo) ListByProfile(ctx context.Context, profileID int64) ([]models.ExpertiseEntry, error) {
	var out []models.ExpertiseEntry
	for _, e := range m.Stored {
		if e.ProfileID == profileID {
			out = append(out, e)
		}
	}
	return out, nil
}

type AdminRepo struct {
	Stored    *models.Admin
	CreateErr error
	GetErr    error
	Creates   int
}

func (m *AdminRepo) CreateAdmin(ctx context.Context, a *models.Admin) (int64, error) {
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	m.Creates++
	stored := *a
	stored.ID = 1
	m.Stored = &stored
	return 1, nil
}

func (m *AdminRepo) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Stored != nil && m.Stored.Email == email {
		return m.Stored, nil
	}
	return nil, nil
}

type StatsRepo struct {
	Result *models.Stats
	Err    error
}

func (m *StatsRepo) Stats(ctx context.Context) (*models.Stats, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Result != nil {
		return m.Result, nil
	}
	return &models.Stats{
		ByMonth:         []models.MonthCount{},
		ByTech:          []models.TechCount{},
		ByRole:          []models.RoleCount{},
		ByLocation:      []models.LocationCount{},
		ExpertiseLevels: []models.LevelCount{},
	}, nil
}
