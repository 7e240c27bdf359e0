package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/chris-arsenault/lorewiki/internal/archive"
)

// ImportResult summarizes one article import run.
type ImportResult struct {
	Imported int
	Skipped  int
}

// ImportArticles walks dir for markdown files matching the given patterns
// (doublestar syntax) and saves each as a static article. The title comes
// from the first H1 heading, falling back to the file name; the first
// paragraph after the title becomes the summary. Existing articles with the
// same slug are replaced rather than duplicated.
func (s *Store) ImportArticles(ctx context.Context, dir string, patterns []string, publish bool) (ImportResult, error) {
	if len(patterns) == 0 {
		patterns = []string{"**/*.md"}
	}

	existing, err := s.ListArticles(ctx)
	if err != nil {
		return ImportResult{}, err
	}
	bySlug := make(map[string]archive.StaticArticle)
	for _, a := range existing {
		bySlug[a.Slug] = a
	}

	fsys := os.DirFS(dir)
	var res ImportResult
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return res, fmt.Errorf("bad import pattern %q: %w", pattern, err)
		}
		for _, p := range matches {
			data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(p)))
			if err != nil {
				return res, fmt.Errorf("reading %s: %w", p, err)
			}
			content := string(data)
			if strings.TrimSpace(content) == "" {
				res.Skipped++
				continue
			}

			article := articleFromMarkdown(p, content)
			if publish {
				article.Status = archive.ArticleStatusPublished
			}
			if prev, ok := bySlug[article.Slug]; ok {
				article.ID = prev.ID
				article.CreatedAt = prev.CreatedAt
			}
			if _, err := s.SaveArticle(ctx, article); err != nil {
				return res, err
			}
			res.Imported++
		}
	}
	return res, nil
}

// articleFromMarkdown extracts title and summary from a markdown file.
func articleFromMarkdown(path, content string) archive.StaticArticle {
	title := strings.TrimSuffix(filepath.Base(path), ".md")
	summary := ""

	foundTitle := false
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if !foundTitle && strings.HasPrefix(trimmed, "# ") {
			title = strings.TrimPrefix(trimmed, "# ")
			foundTitle = true
			continue
		}
		if foundTitle && trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			summary = trimmed
			break
		}
	}

	return archive.StaticArticle{
		Title:   title,
		Slug:    slugify(title),
		Content: content,
		Summary: summary,
	}
}

func slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
