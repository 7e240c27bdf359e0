// Package archive holds the authored artifacts of the corpus: chronicles
// generated from simulation runs and hand-written static articles. Both are
// persisted by internal/store and consumed, already materialized, by the
// wiki core.
package archive

import (
	"strings"
	"time"
)

// ChronicleFormat distinguishes narrative stories from in-world documents.
type ChronicleFormat string

const (
	FormatStory    ChronicleFormat = "story"
	FormatDocument ChronicleFormat = "document"
)

// Chronicle statuses.
const (
	ChronicleStatusPending  = "pending"
	ChronicleStatusComplete = "complete"
	ChronicleStatusFailed   = "failed"
)

// Static article statuses.
const (
	ArticleStatusDraft     = "draft"
	ArticleStatusPublished = "published"
)

// Image kinds and generation statuses for chronicle illustrations.
const (
	ImageKindEntity    = "entity"
	ImageKindGenerated = "generated"

	ImageStatusPending  = "pending"
	ImageStatusComplete = "complete"
)

// RoleAssignment binds an entity to the narrative role it plays in a
// chronicle.
type RoleAssignment struct {
	EntityID string `json:"entity_id"`
	Role     string `json:"role"`
}

// ChronicleImage is an inline illustration reference. Entity images borrow
// the entity's profile image; generated images carry their own path once
// generation completes.
type ChronicleImage struct {
	Kind     string `json:"kind"`
	EntityID string `json:"entity_id,omitempty"`
	Path     string `json:"path,omitempty"`
	Status   string `json:"status,omitempty"`
	Anchor   string `json:"anchor,omitempty"`
	Caption  string `json:"caption,omitempty"`
}

// Chronicle is a generated narrative artifact built from a seed referencing
// entities, events and relationships of one simulation run.
type Chronicle struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Format          ChronicleFormat  `json:"format"`
	EntrypointID    string           `json:"entrypoint_id,omitempty"`
	StyleID         string           `json:"style_id,omitempty"`
	Roles           []RoleAssignment `json:"roles,omitempty"`
	EntityIDs       []string         `json:"entity_ids,omitempty"`
	EventIDs        []string         `json:"event_ids,omitempty"`
	RelationshipIDs []string         `json:"relationship_ids,omitempty"`
	DraftContent    string           `json:"draft_content,omitempty"`
	FinalContent    string           `json:"final_content,omitempty"`
	Summary         string           `json:"summary,omitempty"`
	Images          []ChronicleImage `json:"images,omitempty"`
	Status          string           `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// RenderedContent returns the final rendering when present, falling back to
// the draft.
func (c Chronicle) RenderedContent() string {
	if strings.TrimSpace(c.FinalContent) != "" {
		return c.FinalContent
	}
	return c.DraftContent
}

// Visible reports whether the chronicle is part of the corpus: complete and
// with non-empty rendered content.
func (c Chronicle) Visible() bool {
	return c.Status == ChronicleStatusComplete && strings.TrimSpace(c.RenderedContent()) != ""
}

// StaticArticle is a hand-authored, publishable page not derived from
// simulation state. Titles may carry a namespace prefix: "Cultures:Aurora".
type StaticArticle struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content"`
	Summary   string    `json:"summary,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Visible reports whether the article is part of the corpus.
func (a StaticArticle) Visible() bool {
	return a.Status == ArticleStatusPublished
}

// SplitTitle separates an optional "Namespace:BaseName" title into its
// parts. Titles without a colon have an empty namespace.
func SplitTitle(title string) (namespace, base string) {
	if idx := strings.Index(title, ":"); idx >= 0 {
		return strings.TrimSpace(title[:idx]), strings.TrimSpace(title[idx+1:])
	}
	return "", strings.TrimSpace(title)
}
