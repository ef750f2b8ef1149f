package domain

import "time"

// Project is a portfolio entry shown on the site.
type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	Tags        []string  `json:"tags"`
	ProjectURL  *string   `json:"projectUrl"`
	GithubURL   *string   `json:"githubUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Skill is a tool or technology grouped by a free-form category.
type Skill struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency"`
}

// Message is a contact form submission. It is write-only from the public API.
type Message struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertProject holds the client-supplied project fields. Store-assigned
// fields (id, createdAt) are absent on purpose.
type InsertProject struct {
	Title       string
	Description string
	ImageURL    *string
	Tags        []string
	ProjectURL  *string
	GithubURL   *string
}

type InsertSkill struct {
	Name        string
	Category    string
	Proficiency int
}

type InsertMessage struct {
	Name    string
	Email   string
	Message string
}
