package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/chris-arsenault/lorewiki/internal/archive"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewStore(db)
}

func TestChronicleRoundtrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	saved, err := s.SaveChronicle(ctx, archive.Chronicle{
		Title:        "The Dawn Road",
		Format:       archive.FormatStory,
		EntityIDs:    []string{"ent-aurora", "ent-bram"},
		Roles:        []archive.RoleAssignment{{EntityID: "ent-aurora", Role: "protagonist"}},
		DraftContent: "A draft.",
		Images: []archive.ChronicleImage{
			{Kind: archive.ImageKindGenerated, Path: "img/x.png", Status: archive.ImageStatusComplete},
		},
	})
	if err != nil {
		t.Fatalf("SaveChronicle: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("expected a minted id")
	}
	if saved.Status != archive.ChronicleStatusPending {
		t.Errorf("default status = %q, want pending", saved.Status)
	}

	got, err := s.GetChronicle(ctx, saved.ID)
	if err != nil {
		t.Fatalf("GetChronicle: %v", err)
	}
	if got == nil {
		t.Fatal("chronicle not found after save")
	}
	if got.Title != "The Dawn Road" || got.Format != archive.FormatStory {
		t.Errorf("got %+v", got)
	}
	if len(got.Roles) != 1 || got.Roles[0].Role != "protagonist" {
		t.Errorf("roles = %v", got.Roles)
	}
	if len(got.Images) != 1 || got.Images[0].Path != "img/x.png" {
		t.Errorf("images = %v", got.Images)
	}
}

func TestGetChronicleMissing(t *testing.T) {
	s := testStore(t)
	got, err := s.GetChronicle(context.Background(), "nope")
	if err != nil {
		t.Fatalf("GetChronicle: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing id, got %+v", got)
	}
}

func TestDeleteChronicle(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	saved, _ := s.SaveChronicle(ctx, archive.Chronicle{Title: "Gone", Format: archive.FormatDocument})
	if err := s.DeleteChronicle(ctx, saved.ID); err != nil {
		t.Fatalf("DeleteChronicle: %v", err)
	}
	if got, _ := s.GetChronicle(ctx, saved.ID); got != nil {
		t.Error("chronicle still present after delete")
	}
}

func TestArticleRoundtrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	saved, err := s.SaveArticle(ctx, archive.StaticArticle{
		Title:   "Cultures:Aurora",
		Slug:    "cultures-aurora",
		Content: "A culture of the dawn.",
	})
	if err != nil {
		t.Fatalf("SaveArticle: %v", err)
	}
	if saved.Status != archive.ArticleStatusDraft {
		t.Errorf("default status = %q, want draft", saved.Status)
	}

	saved.Status = archive.ArticleStatusPublished
	if _, err := s.SaveArticle(ctx, saved); err != nil {
		t.Fatalf("resave: %v", err)
	}

	list, err := s.ListArticles(ctx)
	if err != nil {
		t.Fatalf("ListArticles: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("resave duplicated the article: %d rows", len(list))
	}
	if list[0].Status != archive.ArticleStatusPublished {
		t.Errorf("status = %q after update", list[0].Status)
	}
}

func TestImportArticles(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	dir := t.TempDir()
	write := func(name, content string) {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("guides/trading.md", "# Guides:Trading\n\nHow to trade salt.\n")
	write("untitled.md", "Just a body with no heading.\n")
	write("empty.md", "   \n")

	res, err := s.ImportArticles(ctx, dir, []string{"**/*.md"}, true)
	if err != nil {
		t.Fatalf("ImportArticles: %v", err)
	}
	if res.Imported != 2 || res.Skipped != 1 {
		t.Fatalf("result = %+v, want 2 imported / 1 skipped", res)
	}

	list, _ := s.ListArticles(ctx)
	byTitle := make(map[string]archive.StaticArticle)
	for _, a := range list {
		byTitle[a.Title] = a
	}

	guide, ok := byTitle["Guides:Trading"]
	if !ok {
		t.Fatal("titled article missing")
	}
	if guide.Summary != "How to trade salt." {
		t.Errorf("summary = %q", guide.Summary)
	}
	if guide.Status != archive.ArticleStatusPublished {
		t.Errorf("status = %q, want published", guide.Status)
	}
	if _, ok := byTitle["untitled"]; !ok {
		t.Error("file-name fallback title missing")
	}
}

func TestImportArticlesKeepsIdentityOnReimport(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "note.md")
	if err := os.WriteFile(path, []byte("# Note\n\nFirst version.\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.ImportArticles(ctx, dir, nil, false); err != nil {
		t.Fatal(err)
	}
	first, _ := s.ListArticles(ctx)

	if err := os.WriteFile(path, []byte("# Note\n\nSecond version.\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := s.ImportArticles(ctx, dir, nil, false); err != nil {
		t.Fatal(err)
	}
	second, _ := s.ListArticles(ctx)

	if len(second) != 1 {
		t.Fatalf("reimport duplicated the article: %d rows", len(second))
	}
	if second[0].ID != first[0].ID {
		t.Error("reimport should keep the article id")
	}
	if second[0].Summary != "Second version." {
		t.Errorf("summary not updated: %q", second[0].Summary)
	}
}
