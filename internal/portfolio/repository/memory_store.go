package repository

import (
	"context"
	"sync"
	"time"

	"github.com/saicharan1203/portfolio-backend/internal/portfolio/domain"
)

// MemoryStore keeps everything in process. It is used when no database is
// configured; data is lost on restart.
type MemoryStore struct {
	mu sync.Mutex

	projects []domain.Project
	skills   []domain.Skill
	messages []domain.Message

	nextProjectID int64
	nextSkillID   int64
	nextMessageID int64

	now func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store whose id counters start at 1.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextProjectID: 1,
		nextSkillID:   1,
		nextMessageID: 1,
		now:           time.Now,
	}
}

func (s *MemoryStore) ListProjects(_ context.Context) ([]domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = cloneProject(p)
	}
	return out, nil
}

func (s *MemoryStore) CreateProject(_ context.Context, in domain.InsertProject) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := domain.Project{
		ID:          s.nextProjectID,
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    cloneString(in.ImageURL),
		Tags:        cloneTags(in.Tags),
		ProjectURL:  cloneString(in.ProjectURL),
		GithubURL:   cloneString(in.GithubURL),
		CreatedAt:   s.now().UTC(),
	}
	s.nextProjectID++
	s.projects = append(s.projects, p)

	out := cloneProject(p)
	return &out, nil
}

func (s *MemoryStore) ListSkills(_ context.Context) ([]domain.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Skill, len(s.skills))
	copy(out, s.skills)
	return out, nil
}

func (s *MemoryStore) CreateSkill(_ context.Context, in domain.InsertSkill) (*domain.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sk := domain.Skill{
		ID:          s.nextSkillID,
		Name:        in.Name,
		Category:    in.Category,
		Proficiency: in.Proficiency,
	}
	s.nextSkillID++
	s.skills = append(s.skills, sk)
	return &sk, nil
}

func (s *MemoryStore) CreateMessage(_ context.Context, in domain.InsertMessage) (*domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := domain.Message{
		ID:        s.nextMessageID,
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: s.now().UTC(),
	}
	s.nextMessageID++
	s.messages = append(s.messages, m)
	return &m, nil
}

// Messages returns a copy of the stored contact messages. It is not part of
// Store; only operators and tests read messages back.
func (s *MemoryStore) Messages() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func cloneProject(p domain.Project) domain.Project {
	p.ImageURL = cloneString(p.ImageURL)
	p.ProjectURL = cloneString(p.ProjectURL)
	p.GithubURL = cloneString(p.GithubURL)
	p.Tags = cloneTags(p.Tags)
	return p
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
