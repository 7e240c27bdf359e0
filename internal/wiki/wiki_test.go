package wiki

import (
	"strings"
	"testing"

	"github.com/chris-arsenault/lorewiki/internal/archive"
)

func testWiki() *Wiki {
	w := New()
	w.ReplaceSnapshot(testSnapshot())
	w.ReplaceChronicles(testChronicles())
	w.ReplaceArticles(testArticles())
	return w
}

func TestWikiEmpty(t *testing.T) {
	w := New()
	if entries := w.Index(); len(entries) != 0 {
		t.Errorf("empty wiki has %d entries", len(entries))
	}
	if _, ok := w.Page("anything"); ok {
		t.Error("empty wiki should have no pages")
	}
}

func TestWikiPageMemoized(t *testing.T) {
	w := testWiki()

	first, ok := w.Page("ent-aurora")
	if !ok {
		t.Fatal("Page(ent-aurora) failed")
	}
	second, _ := w.Page("ent-aurora")
	if first != second {
		t.Error("expected the memoized page pointer on second access")
	}
}

func TestWikiReplaceInvalidatesCache(t *testing.T) {
	w := testWiki()

	before, _ := w.Page("ent-aurora")
	if !strings.Contains(sectionByID(t, before, "overview").Text, "odds with") {
		t.Fatalf("unexpected overview: %q", sectionByID(t, before, "overview").Text)
	}

	snap := testSnapshot()
	snap.Entities[0].Description = "Aurora retired to the hills."
	w.ReplaceSnapshot(snap)

	after, ok := w.Page("ent-aurora")
	if !ok {
		t.Fatal("Page(ent-aurora) failed after replace")
	}
	if after == before {
		t.Fatal("replacement should drop the cached page")
	}
	if !strings.Contains(sectionByID(t, after, "overview").Text, "retired to the hills") {
		t.Errorf("page not rebuilt from new snapshot: %q", sectionByID(t, after, "overview").Text)
	}
}

func TestWikiReplaceChroniclesRebuildsIndex(t *testing.T) {
	w := testWiki()

	if _, ok := w.Entry("ch-dawn-road"); !ok {
		t.Fatal("chronicle missing before replacement")
	}
	w.ReplaceChronicles(nil)
	if _, ok := w.Entry("ch-dawn-road"); ok {
		t.Error("chronicle entry should vanish after replacement")
	}
}

func TestWikiSearchRanking(t *testing.T) {
	w := testWiki()

	results := w.Search("aurora", 0)
	if len(results) == 0 {
		t.Fatal("no results for aurora")
	}
	// Title matches come first, in index order: the entity precedes the
	// namespaced articles.
	if results[0].ID != "ent-aurora" {
		t.Errorf("first result = %s, want ent-aurora", results[0].ID)
	}

	sawStatic := false
	for _, r := range results {
		if r.Type == PageStatic {
			sawStatic = true
		}
	}
	if !sawStatic {
		t.Error("expected namespaced articles among title matches")
	}
}

func TestWikiSearchAliasBeforeSummary(t *testing.T) {
	w := testWiki()

	results := w.Search("dawnbringer", 5)
	if len(results) != 1 || results[0].ID != "ent-aurora" {
		t.Fatalf("alias search = %v", results)
	}

	results = w.Search("merchant princess", 5)
	if len(results) != 1 || results[0].ID != "ent-aurora" {
		t.Fatalf("summary search = %v", results)
	}
}

func TestWikiSearchLimit(t *testing.T) {
	w := testWiki()
	if results := w.Search("a", 2); len(results) > 2 {
		t.Errorf("limit ignored: %d results", len(results))
	}
	if results := w.Search("   ", 5); results != nil {
		t.Errorf("blank query should yield nil, got %v", results)
	}
}

func TestWikiSeeAlso(t *testing.T) {
	w := testWiki()

	seeAlso := w.SeeAlso("art-cult-aurora")
	if len(seeAlso) != 2 {
		t.Fatalf("see-also size = %d, want 2", len(seeAlso))
	}
	for _, cand := range seeAlso {
		if cand.ID == "art-cult-aurora" {
			t.Error("see-also must exclude the page itself")
		}
	}

	if got := w.SeeAlso("ent-bram"); got != nil {
		t.Errorf("singleton title should have no see-also, got %v", got)
	}
}

func TestWikiCategories(t *testing.T) {
	w := testWiki()

	cats := w.Categories()
	byID := make(map[string]CategorySummary)
	for _, c := range cats {
		byID[c.ID] = c
	}
	if c, ok := byID["kind-npc"]; !ok || c.PageCount != 2 {
		t.Errorf("kind-npc summary = %+v", c)
	}
	for i := 1; i < len(cats); i++ {
		if cats[i-1].ID > cats[i].ID {
			t.Fatal("categories not sorted by id")
		}
	}
}

func TestWikiResolve(t *testing.T) {
	w := testWiki()
	id, ok := w.Resolve("The Dawnbringer")
	if !ok || id != "ent-aurora" {
		t.Errorf("Resolve alias = %s, %v", id, ok)
	}
}

func TestWikiVisibilityTransition(t *testing.T) {
	w := testWiki()

	articles := testArticles()
	for i := range articles {
		if articles[i].ID == "art-draft" {
			articles[i].Status = archive.ArticleStatusPublished
		}
	}
	w.ReplaceArticles(articles)

	if _, ok := w.Entry("art-draft"); !ok {
		t.Error("publishing a draft should add it to the index")
	}
	if _, ok := w.Resolve("Trading"); !ok {
		t.Error("published article base name should resolve")
	}
}
