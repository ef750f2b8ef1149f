package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saicharan1203/portfolio-backend/internal/logging"
	"github.com/saicharan1203/portfolio-backend/internal/portfolio/domain"
	"github.com/saicharan1203/portfolio-backend/internal/portfolio/repository"
)

func TestSeed_EmptyStore(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()

	seeded, err := Seed(ctx, store, logging.Discard())
	require.NoError(t, err)
	assert.True(t, seeded)

	projects, err := store.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, len(seedProjects))
	assert.Equal(t, "FinFraudX", projects[0].Title)
	assert.Nil(t, projects[1].ProjectURL)
	assert.Nil(t, projects[1].GithubURL)

	skills, err := store.ListSkills(ctx)
	require.NoError(t, err)
	assert.Len(t, skills, len(seedSkills))
}

func TestSeed_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()

	_, err := Seed(ctx, store, logging.Discard())
	require.NoError(t, err)

	seeded, err := Seed(ctx, store, logging.Discard())
	require.NoError(t, err)
	assert.False(t, seeded)

	projects, err := store.ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, len(seedProjects))

	skills, err := store.ListSkills(ctx)
	require.NoError(t, err)
	assert.Len(t, skills, len(seedSkills))
}

func TestSeed_SkipsWhenProjectsExist(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	_, err := store.CreateProject(ctx, domain.InsertProject{Title: "mine", Description: "d"})
	require.NoError(t, err)

	seeded, err := Seed(ctx, store, logging.Discard())
	require.NoError(t, err)
	assert.False(t, seeded)

	skills, err := store.ListSkills(ctx)
	require.NoError(t, err)
	assert.Empty(t, skills)
}

type failingStore struct {
	repository.Store
}

func (failingStore) ListProjects(context.Context) ([]domain.Project, error) {
	return nil, domain.ErrStorageUnavailable
}

func TestSeed_StorageFailure(t *testing.T) {
	_, err := Seed(context.Background(), failingStore{}, logging.Discard())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStorageUnavailable))
}
