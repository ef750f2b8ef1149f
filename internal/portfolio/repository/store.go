package repository

import (
	"context"

	"github.com/saicharan1203/portfolio-backend/internal/portfolio/domain"
)

// Store is the persistence capability set used by the HTTP layer and the seed
// routine. Exactly one implementation is active per process, chosen at startup.
type Store interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	CreateProject(ctx context.Context, in domain.InsertProject) (*domain.Project, error)
	ListSkills(ctx context.Context) ([]domain.Skill, error)
	CreateSkill(ctx context.Context, in domain.InsertSkill) (*domain.Skill, error)
	CreateMessage(ctx context.Context, in domain.InsertMessage) (*domain.Message, error)
}
