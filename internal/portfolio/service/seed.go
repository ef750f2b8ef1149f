package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/saicharan1203/portfolio-backend/internal/portfolio/repository"
)

// Seed fills an empty store with the sample catalog. It does nothing when at
// least one project exists, so restarts against a durable store are no-ops.
//
// The empty check and the inserts are not one transaction: two instances
// starting together against the same database can both seed.
func Seed(ctx context.Context, store repository.Store, log logrus.FieldLogger) (bool, error) {
	existing, err := store.ListProjects(ctx)
	if err != nil {
		return false, fmt.Errorf("seed: list projects: %w", err)
	}
	if len(existing) > 0 {
		log.WithField("projects", len(existing)).Debug("seed skipped, store already has projects")
		return false, nil
	}

	for _, p := range seedProjects {
		if _, err := store.CreateProject(ctx, p); err != nil {
			return false, fmt.Errorf("seed: create project %q: %w", p.Title, err)
		}
	}
	for _, s := range seedSkills {
		if _, err := store.CreateSkill(ctx, s); err != nil {
			return false, fmt.Errorf("seed: create skill %q: %w", s.Name, err)
		}
	}

	log.WithFields(logrus.Fields{
		"projects": len(seedProjects),
		"skills":   len(seedSkills),
	}).Info("seeded sample catalog")
	return true, nil
}
