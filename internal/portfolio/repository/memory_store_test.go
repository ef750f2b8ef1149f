package repository

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saicharan1203/portfolio-backend/internal/portfolio/domain"
)

func strPtr(s string) *string { return &s }

func TestMemoryStore_CreateAndListProjects(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	first, err := store.CreateProject(ctx, domain.InsertProject{
		Title:       "FinFraudX",
		Description: "fraud detection",
		Tags:        []string{"React", "Python"},
		ProjectURL:  strPtr("https://example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, fixed, first.CreatedAt)
	assert.Nil(t, first.ImageURL)
	assert.Nil(t, first.GithubURL)

	second, err := store.CreateProject(ctx, domain.InsertProject{Title: "b", Description: "d"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
	assert.Nil(t, second.Tags)

	list, err := store.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, []int64{1, 2}, []int64{list[0].ID, list[1].ID})
	assert.Equal(t, *first, list[0])

	again, err := store.ListProjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, list, again)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	tags := []string{"Go"}
	created, err := store.CreateProject(ctx, domain.InsertProject{Title: "t", Description: "d", Tags: tags})
	require.NoError(t, err)

	tags[0] = "mutated"
	created.Tags[0] = "mutated"
	created.Title = "mutated"

	list, err := store.ListProjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t", list[0].Title)
	assert.Equal(t, []string{"Go"}, list[0].Tags)
}

func TestMemoryStore_SkillsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for _, name := range []string{"Python", "SQL", "React"} {
		_, err := store.CreateSkill(ctx, domain.InsertSkill{Name: name, Category: "Backend"})
		require.NoError(t, err)
	}

	skills, err := store.ListSkills(ctx)
	require.NoError(t, err)
	require.Len(t, skills, 3)
	assert.Equal(t, "Python", skills[0].Name)
	assert.Equal(t, "React", skills[2].Name)
	assert.Equal(t, int64(3), skills[2].ID)
}

func TestMemoryStore_ConcurrentSkillIDs(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var wg sync.WaitGroup
	ids := make([]int64, 2)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sk, err := store.CreateSkill(ctx, domain.InsertSkill{Name: "Go", Category: "Backend"})
			if assert.NoError(t, err) {
				ids[i] = sk.ID
			}
		}(i)
	}
	wg.Wait()

	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	assert.Equal(t, []int64{1, 2}, ids)
}

func TestMemoryStore_Messages(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	m, err := store.CreateMessage(ctx, domain.InsertMessage{Name: "Ada", Email: "ada@example.com", Message: "Hi there"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), m.ID)
	assert.False(t, m.CreatedAt.IsZero())

	stored := store.Messages()
	require.Len(t, stored, 1)
	assert.Equal(t, *m, stored[0])
}
