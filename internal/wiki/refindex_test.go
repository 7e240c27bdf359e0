package wiki

import (
	"testing"

	"github.com/chris-arsenault/lorewiki/internal/archive"
	"github.com/chris-arsenault/lorewiki/internal/world"
)

func TestResolvePriority(t *testing.T) {
	entities := []world.Entity{
		{ID: "ent-aurora", Name: "Aurora", Aliases: []string{"The Dawnbringer"}},
	}
	articles := []archive.StaticArticle{
		{ID: "art-aurora", Title: "Cultures:Aurora", Status: archive.ArticleStatusPublished},
		{ID: "art-guide", Title: "Guides:Trading", Status: archive.ArticleStatusPublished},
	}
	regions := []world.Region{
		{ID: "rg-coast", Label: "Shattered Coast"},
	}
	r := BuildReferenceIndex(entities, articles, regions)

	cases := []struct {
		name   string
		wantID string
	}{
		{"Aurora", "ent-aurora"},           // entity name outranks article base name
		{"aurora", "ent-aurora"},           // case-insensitive
		{"The Dawnbringer", "ent-aurora"},  // alias
		{"Cultures:Aurora", "art-aurora"},  // full article title
		{"Trading", "art-guide"},           // unclaimed base name
		{"Shattered Coast", "rg-coast"},    // region label
	}
	for _, tc := range cases {
		id, ok := r.Resolve(tc.name)
		if !ok {
			t.Errorf("Resolve(%q): not found", tc.name)
			continue
		}
		if id != tc.wantID {
			t.Errorf("Resolve(%q) = %s, want %s", tc.name, id, tc.wantID)
		}
	}

	if _, ok := r.Resolve("Nonexistent"); ok {
		t.Error("expected unknown name to not resolve")
	}
}

func TestResolveFirstInsertWins(t *testing.T) {
	entities := []world.Entity{
		{ID: "ent-first", Name: "Mirror"},
		{ID: "ent-second", Name: "Mirror"},
	}
	r := BuildReferenceIndex(entities, nil, nil)

	id, ok := r.Resolve("Mirror")
	if !ok {
		t.Fatal("Resolve(Mirror): not found")
	}
	// A name collision keeps the first-inserted binding silently. The later
	// entity stays reachable through the disambiguation group only.
	if id != "ent-first" {
		t.Errorf("Resolve(Mirror) = %s, want ent-first", id)
	}
}

func TestAliasNeverShadowsPrimaryName(t *testing.T) {
	entities := []world.Entity{
		{ID: "ent-bram", Name: "Bram", Aliases: []string{"Aurora"}},
		{ID: "ent-aurora", Name: "Aurora"},
	}
	r := BuildReferenceIndex(entities, nil, nil)

	id, _ := r.Resolve("Aurora")
	if id != "ent-aurora" {
		t.Errorf("Resolve(Aurora) = %s, want ent-aurora", id)
	}
}

func TestEntityIDIgnoresArticlesAndRegions(t *testing.T) {
	articles := []archive.StaticArticle{
		{ID: "art-1", Title: "Guides:Trading", Status: archive.ArticleStatusPublished},
	}
	r := BuildReferenceIndex(nil, articles, nil)

	if _, ok := r.EntityID("Trading"); ok {
		t.Error("EntityID should not resolve article base names")
	}
	if _, ok := r.Resolve("Trading"); !ok {
		t.Error("Resolve should still find the article base name")
	}
}

func TestCandidatesDeduplicateByPriority(t *testing.T) {
	entities := []world.Entity{{ID: "ent-aurora", Name: "Aurora"}}
	regions := []world.Region{{ID: "rg-aurora", Label: "Aurora"}}
	r := BuildReferenceIndex(entities, nil, regions)

	for _, c := range r.Candidates() {
		if c.Name == "aurora" && c.ID != "ent-aurora" {
			t.Errorf("candidate %q bound to %s, want ent-aurora", c.Name, c.ID)
		}
	}
}

func TestCategoryDisplay(t *testing.T) {
	cases := []struct {
		id   string
		want string
	}{
		{"kind-npc", "Kind Npc"},
		{"prominence-3", "Prominence 3"},
		{"era-age-of-embers", "Era Age-of-embers"},
		{"status-active", "Status Active"},
	}
	r := BuildReferenceIndex(nil, nil, nil)
	for _, tc := range cases {
		r.ObserveCategory(tc.id)
		info, ok := r.Category(tc.id)
		if !ok {
			t.Fatalf("Category(%q): not found after observe", tc.id)
		}
		if info.Display != tc.want {
			t.Errorf("display for %q = %q, want %q", tc.id, info.Display, tc.want)
		}
	}
}

func TestObserveCategoryCounts(t *testing.T) {
	r := BuildReferenceIndex(nil, nil, nil)
	r.ObserveCategory("kind-npc")
	r.ObserveCategory("kind-npc")
	r.ObserveCategory("kind-location")

	info, _ := r.Category("kind-npc")
	if info.PageCount != 2 {
		t.Errorf("kind-npc count = %d, want 2", info.PageCount)
	}
	if ids := r.CategoryIDs(); len(ids) != 2 || ids[0] != "kind-location" {
		t.Errorf("CategoryIDs = %v, want sorted [kind-location kind-npc]", ids)
	}
}
