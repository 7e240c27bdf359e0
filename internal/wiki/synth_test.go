package wiki

import (
	"reflect"
	"strings"
	"testing"

	"github.com/chris-arsenault/lorewiki/internal/archive"
	"github.com/chris-arsenault/lorewiki/internal/world"
)

func testSynthesizer() *Synthesizer {
	snap := testSnapshot()
	chronicles := testChronicles()
	articles := testArticles()
	return NewSynthesizer(snap, chronicles, articles, BuildIndex(snap, chronicles, articles))
}

func sectionByID(t *testing.T, page *WikiPage, id string) Section {
	t.Helper()
	for _, sec := range page.Sections {
		if sec.ID == id {
			return sec
		}
	}
	t.Fatalf("page %s has no section %q (sections: %v)", page.ID, id, page.Sections)
	return Section{}
}

func TestSynthesizeUnknownID(t *testing.T) {
	s := testSynthesizer()
	if _, ok := s.Synthesize("no-such-page"); ok {
		t.Error("expected unknown id to yield no page")
	}
}

func TestSynthesizeEntityPage(t *testing.T) {
	s := testSynthesizer()
	page, ok := s.Synthesize("ent-aurora")
	if !ok {
		t.Fatal("Synthesize(ent-aurora) failed")
	}

	overview := sectionByID(t, page, "overview")
	if !strings.Contains(overview.Text, "[[Bram]]") {
		t.Errorf("overview should wikilink Bram: %q", overview.Text)
	}
	if !strings.Contains(overview.Text, "odds with") {
		t.Errorf("unexpected overview text: %q", overview.Text)
	}

	if got := page.Infobox; len(got) == 0 {
		t.Fatal("expected infobox fields")
	}
	fields := make(map[string]string)
	for _, f := range page.Infobox {
		fields[f.Label] = f.Value
	}
	if fields["Prominence"] != "notable" {
		t.Errorf("prominence label = %q, want notable", fields["Prominence"])
	}
	if fields["Region"] != "The Shattered Coast" {
		t.Errorf("region = %q, want resolved label", fields["Region"])
	}
}

func TestSynthesizeEntityRelationships(t *testing.T) {
	s := testSynthesizer()
	page, _ := s.Synthesize("ent-aurora")

	rels := sectionByID(t, page, "relationships")
	// Mutual rivalry collapses to one bidirectional row.
	if !strings.Contains(rels.Text, "**rival** ↔ [[Bram]]") {
		t.Errorf("missing collapsed rival row: %q", rels.Text)
	}
	if strings.Contains(rels.Text, "rival** →") || strings.Contains(rels.Text, "rival** ←") {
		t.Errorf("rivalry should not also appear directional: %q", rels.Text)
	}
	if !strings.Contains(rels.Text, "**resides_in** → [[Emberhold Keep]]") {
		t.Errorf("missing outgoing resides_in row: %q", rels.Text)
	}
}

func TestSynthesizeEntityTimeline(t *testing.T) {
	s := testSynthesizer()
	page, _ := s.Synthesize("ent-bram")

	timeline := sectionByID(t, page, "timeline")
	arrival := strings.Index(timeline.Text, "Bram arrives")
	confrontation := strings.Index(timeline.Text, "confronts")
	if arrival < 0 || confrontation < 0 {
		t.Fatalf("timeline missing events: %q", timeline.Text)
	}
	if arrival > confrontation {
		t.Error("timeline not ordered by tick")
	}
	if !strings.Contains(timeline.Text, "[[Aurora]] confronts [[Bram]]") {
		t.Errorf("participants not wikilinked in headline: %q", timeline.Text)
	}
}

func TestSynthesizeEraPage(t *testing.T) {
	s := testSynthesizer()
	page, ok := s.Synthesize("ent-era-embers")
	if !ok {
		t.Fatal("Synthesize(ent-era-embers) failed")
	}
	if page.Type != PageEra {
		t.Fatalf("type = %s, want era", page.Type)
	}

	chapters := sectionByID(t, page, "chapters")
	if !strings.Contains(chapters.Text, "Tick 2:") || !strings.Contains(chapters.Text, "Tick 5:") {
		t.Errorf("chapters missing era events: %q", chapters.Text)
	}
	if strings.Index(chapters.Text, "Tick 2:") > strings.Index(chapters.Text, "Tick 5:") {
		t.Error("chapters not ordered by tick")
	}
}

func TestSynthesizeChroniclePage(t *testing.T) {
	s := testSynthesizer()
	page, ok := s.Synthesize("ch-dawn-road")
	if !ok {
		t.Fatal("Synthesize(ch-dawn-road) failed")
	}

	// The leading H1 repeats the title and is dropped; the preamble becomes
	// the overview.
	overview := sectionByID(t, page, "overview")
	if strings.Contains(overview.Text, "# The Dawn Road") {
		t.Errorf("title heading should be dropped: %q", overview.Text)
	}
	if !strings.Contains(overview.Text, "[[Aurora]] set out") {
		t.Errorf("overview not linked: %q", overview.Text)
	}

	meeting := sectionByID(t, page, "the-meeting")
	if len(meeting.Images) != 1 {
		t.Fatalf("expected image anchored to the meeting section, got %v", meeting.Images)
	}
	if meeting.Images[0].Path != "img/meeting.png" {
		t.Errorf("image path = %q", meeting.Images[0].Path)
	}
}

func TestChronicleImageVisibility(t *testing.T) {
	snap := testSnapshot()
	snap.Entities[0].ProfileImage = "img/aurora.png"

	chronicles := []archive.Chronicle{{
		ID: "ch-img", Title: "Illustrated", Format: archive.FormatStory,
		Status:       archive.ChronicleStatusComplete,
		FinalContent: "A tale of the coast.",
		Images: []archive.ChronicleImage{
			{Kind: archive.ImageKindEntity, EntityID: "ent-aurora", Caption: "portrait"},
			{Kind: archive.ImageKindEntity, EntityID: "ent-bram"},
			{Kind: archive.ImageKindGenerated, Path: "img/gen.png", Status: archive.ImageStatusComplete},
			{Kind: archive.ImageKindGenerated, Path: "img/pending.png", Status: archive.ImageStatusPending},
		},
	}}

	s := NewSynthesizer(snap, chronicles, nil, BuildIndex(snap, chronicles, nil))
	page, _ := s.Synthesize("ch-img")

	if len(page.Sections) != 1 {
		t.Fatalf("expected one section, got %d", len(page.Sections))
	}
	images := page.Sections[0].Images
	if len(images) != 2 {
		t.Fatalf("expected 2 visible images, got %v", images)
	}
	if images[0].Path != "img/aurora.png" {
		t.Errorf("entity image should borrow the profile image, got %q", images[0].Path)
	}
	if images[1].Path != "img/gen.png" {
		t.Errorf("generated image path = %q", images[1].Path)
	}
}

func TestSynthesizeStaticTemplates(t *testing.T) {
	snap := testSnapshot()
	articles := []archive.StaticArticle{{
		ID: "art-tpl", Title: "Meta:State of the World",
		Status: archive.ArticleStatusPublished,
		Content: "Tick {{current_tick}} of the {{current_era}}. " +
			"Cultures: {{culture_list}}. " +
			"{{entity_count}} entities, {{entity_count:npc}} npcs. " +
			"Featured: {{entity:The Dawnbringer}}. " +
			"Unknown: {{mystery_token}}.",
	}}

	s := NewSynthesizer(snap, nil, articles, BuildIndex(snap, nil, articles))
	page, ok := s.Synthesize("art-tpl")
	if !ok {
		t.Fatal("Synthesize(art-tpl) failed")
	}

	text := page.Sections[0].Text
	// Templates expand before auto-linking, so the era name ends up linked.
	for _, want := range []string{
		"Tick 40 of the [[Age of Embers]].",
		"Cultures: Veldari.",
		"4 entities, 2 npcs.",
		"Featured: A merchant princess of the coast.",
		"Unknown: {{mystery_token}}.",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expanded text missing %q:\n%s", want, text)
		}
	}
}

func TestSynthesizeCategoryPage(t *testing.T) {
	s := testSynthesizer()
	page, ok := s.Synthesize("kind-npc")
	if !ok {
		t.Fatal("Synthesize(kind-npc) failed")
	}

	pages := sectionByID(t, page, "pages")
	want := "- [[Aurora]]\n- [[Bram]]"
	if pages.Text != want {
		t.Errorf("member list = %q, want %q", pages.Text, want)
	}
}

func TestSynthesizeRegionPage(t *testing.T) {
	s := testSynthesizer()
	page, ok := s.Synthesize("the-shattered-coast")
	if !ok {
		t.Fatal("Synthesize(the-shattered-coast) failed")
	}

	npcs := sectionByID(t, page, "npc")
	if !strings.Contains(npcs.Text, "| [[Aurora]] | merchant | active |") {
		t.Errorf("npc table missing Aurora row: %q", npcs.Text)
	}
	if !strings.Contains(npcs.Text, "| [[Bram]] |  | active |") {
		t.Errorf("npc table missing Bram row: %q", npcs.Text)
	}

	locations := sectionByID(t, page, "location")
	if !strings.Contains(locations.Text, "Emberhold Keep") {
		t.Errorf("location table missing secondary member: %q", locations.Text)
	}
}

func TestSynthesizeCollectsLinkedEntities(t *testing.T) {
	s := testSynthesizer()
	page, _ := s.Synthesize("ent-aurora")

	linked := make(map[string]bool)
	for _, id := range page.LinkedEntities {
		linked[id] = true
	}
	if !linked["ent-bram"] {
		t.Errorf("linked entities missing ent-bram: %v", page.LinkedEntities)
	}
	if !linked["ent-keep"] {
		t.Errorf("linked entities missing ent-keep: %v", page.LinkedEntities)
	}
}

func TestSynthesizeIsDeterministic(t *testing.T) {
	s := testSynthesizer()
	for _, id := range []string{"ent-aurora", "ch-dawn-road", "the-shattered-coast", "kind-npc"} {
		a, _ := s.Synthesize(id)
		b, _ := s.Synthesize(id)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("synthesizing %s twice differs", id)
		}
	}
}

func TestUnresolvedHeadlineNameStaysPlain(t *testing.T) {
	snap := testSnapshot()
	snap.Events = append(snap.Events, world.NarrativeEvent{
		ID: "ev-stranger", Tick: 9,
		Subject:      world.EventParticipant{ID: "ent-aurora", Name: "Aurora"},
		Object:       &world.EventParticipant{ID: "ent-gone", Name: "The Vanished One"},
		Significance: 0.5,
		Headline:     "Aurora seeks The Vanished One",
	})

	s := NewSynthesizer(snap, nil, nil, BuildIndex(snap, nil, nil))
	page, _ := s.Synthesize("ent-aurora")

	timeline := sectionByID(t, page, "timeline")
	if strings.Contains(timeline.Text, "[[The Vanished One]]") {
		t.Errorf("unresolved participant should stay plain text: %q", timeline.Text)
	}
	if !strings.Contains(timeline.Text, "The Vanished One") {
		t.Errorf("unresolved participant dropped entirely: %q", timeline.Text)
	}
}
