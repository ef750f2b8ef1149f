package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"

	"github.com/saicharan1203/portfolio-backend/internal/portfolio/domain"
)

// PostgresStore persists portfolio data in PostgreSQL. Concurrency control is
// left entirely to the database.
type PostgresStore struct {
	db *sql.DB
}

var _ Store = (*PostgresStore)(nil)

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ListProjects(ctx context.Context) ([]domain.Project, error) {
	const q = `
select id, title, description, image_url, tags, project_url, github_url, created_at
from projects
order by id asc;
`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, storageErr("list projects", err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var (
			p                               domain.Project
			imageURL, projectURL, githubURL sql.NullString
			tags                            []string
		)
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &imageURL, pq.Array(&tags), &projectURL, &githubURL, &p.CreatedAt); err != nil {
			return nil, storageErr("scan project", err)
		}
		p.ImageURL = nullable(imageURL)
		p.Tags = tags
		p.ProjectURL = nullable(projectURL)
		p.GithubURL = nullable(githubURL)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list projects", err)
	}
	return out, nil
}

func (s *PostgresStore) CreateProject(ctx context.Context, in domain.InsertProject) (*domain.Project, error) {
	const q = `
insert into projects (title, description, image_url, tags, project_url, github_url)
values ($1, $2, $3, $4, $5, $6)
returning id, created_at;
`
	p := domain.Project{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Tags:        in.Tags,
		ProjectURL:  in.ProjectURL,
		GithubURL:   in.GithubURL,
	}
	err := s.db.QueryRowContext(ctx, q,
		in.Title, in.Description, in.ImageURL, pq.Array(in.Tags), in.ProjectURL, in.GithubURL,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return nil, storageErr("create project", err)
	}
	return &p, nil
}

func (s *PostgresStore) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	const q = `
select id, name, category, proficiency
from skills
order by id asc;
`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, storageErr("list skills", err)
	}
	defer rows.Close()

	out := make([]domain.Skill, 0, 16)
	for rows.Next() {
		var sk domain.Skill
		if err := rows.Scan(&sk.ID, &sk.Name, &sk.Category, &sk.Proficiency); err != nil {
			return nil, storageErr("scan skill", err)
		}
		out = append(out, sk)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list skills", err)
	}
	return out, nil
}

func (s *PostgresStore) CreateSkill(ctx context.Context, in domain.InsertSkill) (*domain.Skill, error) {
	const q = `
insert into skills (name, category, proficiency)
values ($1, $2, $3)
returning id;
`
	sk := domain.Skill{Name: in.Name, Category: in.Category, Proficiency: in.Proficiency}
	if err := s.db.QueryRowContext(ctx, q, in.Name, in.Category, in.Proficiency).Scan(&sk.ID); err != nil {
		return nil, storageErr("create skill", err)
	}
	return &sk, nil
}

func (s *PostgresStore) CreateMessage(ctx context.Context, in domain.InsertMessage) (*domain.Message, error) {
	const q = `
insert into messages (name, email, message)
values ($1, $2, $3)
returning id, created_at;
`
	m := domain.Message{Name: in.Name, Email: in.Email, Message: in.Message}
	if err := s.db.QueryRowContext(ctx, q, in.Name, in.Email, in.Message).Scan(&m.ID, &m.CreatedAt); err != nil {
		return nil, storageErr("create message", err)
	}
	return &m, nil
}

// storageErr wraps err with the operation name. Connection loss and missing
// tables additionally match domain.ErrStorageUnavailable.
func storageErr(op string, err error) error {
	if unavailable(err) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func unavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "08", // connection_exception
			"53", // insufficient_resources
			"57": // operator_intervention
			return true
		}
		// undefined_table
		return pqErr.Code == "42P01"
	}
	return false
}

func nullable(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
