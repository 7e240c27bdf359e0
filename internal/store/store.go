package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/chris-arsenault/lorewiki/internal/archive"
)

// Store manages persistence of the authored archive.
type Store struct {
	db *DB
}

// NewStore creates a store over an open database.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveChronicle inserts or replaces a chronicle, minting an id when absent.
func (s *Store) SaveChronicle(ctx context.Context, c archive.Chronicle) (archive.Chronicle, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	if c.Status == "" {
		c.Status = archive.ChronicleStatusPending
	}

	roles, _ := json.Marshal(c.Roles)
	entityIDs, _ := json.Marshal(c.EntityIDs)
	eventIDs, _ := json.Marshal(c.EventIDs)
	relIDs, _ := json.Marshal(c.RelationshipIDs)
	images, _ := json.Marshal(c.Images)

	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO chronicles
		 (id, title, format, entrypoint_id, style_id, roles, entity_ids, event_ids, relationship_ids,
		  draft_content, final_content, summary, images, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Title, string(c.Format), c.EntrypointID, c.StyleID, string(roles),
		string(entityIDs), string(eventIDs), string(relIDs),
		c.DraftContent, c.FinalContent, c.Summary, string(images), c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return archive.Chronicle{}, fmt.Errorf("saving chronicle: %w", err)
	}
	return c, nil
}

// GetChronicle retrieves one chronicle; (nil, nil) when absent.
func (s *Store) GetChronicle(ctx context.Context, id string) (*archive.Chronicle, error) {
	row := s.db.QueryRowContext(ctx, chronicleSelect+` WHERE id = ?`, id)
	c, err := scanChronicle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting chronicle: %w", err)
	}
	return &c, nil
}

// ListChronicles returns all chronicles ordered by creation time.
func (s *Store) ListChronicles(ctx context.Context) ([]archive.Chronicle, error) {
	rows, err := s.db.QueryContext(ctx, chronicleSelect+` ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing chronicles: %w", err)
	}
	defer rows.Close()

	var out []archive.Chronicle
	for rows.Next() {
		c, err := scanChronicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning chronicle: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// DeleteChronicle removes a chronicle by id.
func (s *Store) DeleteChronicle(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM chronicles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting chronicle: %w", err)
	}
	return nil
}

const chronicleSelect = `SELECT id, title, format, entrypoint_id, style_id, roles, entity_ids,
 event_ids, relationship_ids, draft_content, final_content, summary, images, status, created_at, updated_at
 FROM chronicles`

type scanner interface {
	Scan(dest ...any) error
}

func scanChronicle(row scanner) (archive.Chronicle, error) {
	var c archive.Chronicle
	var format, roles, entityIDs, eventIDs, relIDs, images string
	err := row.Scan(&c.ID, &c.Title, &format, &c.EntrypointID, &c.StyleID, &roles,
		&entityIDs, &eventIDs, &relIDs, &c.DraftContent, &c.FinalContent,
		&c.Summary, &images, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return archive.Chronicle{}, err
	}
	c.Format = archive.ChronicleFormat(format)
	_ = json.Unmarshal([]byte(roles), &c.Roles)
	_ = json.Unmarshal([]byte(entityIDs), &c.EntityIDs)
	_ = json.Unmarshal([]byte(eventIDs), &c.EventIDs)
	_ = json.Unmarshal([]byte(relIDs), &c.RelationshipIDs)
	_ = json.Unmarshal([]byte(images), &c.Images)
	return c, nil
}

// SaveArticle inserts or replaces a static article, minting an id and slug
// when absent.
func (s *Store) SaveArticle(ctx context.Context, a archive.StaticArticle) (archive.StaticArticle, error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	if a.Status == "" {
		a.Status = archive.ArticleStatusDraft
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO static_articles (id, title, slug, content, summary, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Title, a.Slug, a.Content, a.Summary, a.Status, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return archive.StaticArticle{}, fmt.Errorf("saving article: %w", err)
	}
	return a, nil
}

// GetArticle retrieves one article; (nil, nil) when absent.
func (s *Store) GetArticle(ctx context.Context, id string) (*archive.StaticArticle, error) {
	var a archive.StaticArticle
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, slug, content, summary, status, created_at, updated_at
		 FROM static_articles WHERE id = ?`, id,
	).Scan(&a.ID, &a.Title, &a.Slug, &a.Content, &a.Summary, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting article: %w", err)
	}
	return &a, nil
}

// ListArticles returns all static articles ordered by creation time.
func (s *Store) ListArticles(ctx context.Context) ([]archive.StaticArticle, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, slug, content, summary, status, created_at, updated_at
		 FROM static_articles ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("listing articles: %w", err)
	}
	defer rows.Close()

	var out []archive.StaticArticle
	for rows.Next() {
		var a archive.StaticArticle
		if err := rows.Scan(&a.ID, &a.Title, &a.Slug, &a.Content, &a.Summary, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning article: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// DeleteArticle removes an article by id.
func (s *Store) DeleteArticle(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM static_articles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting article: %w", err)
	}
	return nil
}
