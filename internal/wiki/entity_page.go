package wiki

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chris-arsenault/lorewiki/internal/world"
)

// prominenceLabels maps the 0–5 prominence scalar to categorical labels.
var prominenceLabels = [...]string{"unknown", "obscure", "local", "notable", "renowned", "legendary"}

// ProminenceLabel returns the categorical label for a prominence value.
func ProminenceLabel(p int) string {
	if p < 0 || p >= len(prominenceLabels) {
		return prominenceLabels[0]
	}
	return prominenceLabels[p]
}

// synthesizeEntity assembles an entity or era page: authored content or a
// plain overview, the optional narrative, era chapters for eras, grouped
// relationships, and the event timeline.
func (s *Synthesizer) synthesizeEntity(page *WikiPage, entry PageIndexEntry, d EntityDetail) {
	e, ok := s.snap.Entity(entry.ID)
	if !ok {
		return
	}

	var sections []Section
	if strings.TrimSpace(e.Content) != "" {
		for _, sec := range splitSections(e.Content, false) {
			sec.Text = s.linker.Link(sec.Text)
			sections = append(sections, sec)
		}
	} else if strings.TrimSpace(e.Description) != "" {
		sections = append(sections, Section{
			ID:      "overview",
			Heading: "Overview",
			Level:   2,
			Text:    s.linker.Link(e.Description),
		})
	}

	if strings.TrimSpace(e.Narrative) != "" {
		sections = append(sections, Section{
			ID:      "narrative",
			Heading: "Narrative",
			Level:   2,
			Text:    s.linker.Link(e.Narrative),
		})
	}

	if entry.Type == PageEra {
		if sec, ok := s.eraChapterSection(e.ID); ok {
			sections = append(sections, sec)
		}
	}

	if sec, ok := s.relationshipSection(e.ID); ok {
		sections = append(sections, sec)
	}
	if sec, ok := s.timelineSection(e.ID); ok {
		sections = append(sections, sec)
	}

	page.Sections = sections
	page.Infobox = entityInfobox(e, s.index)
}

func entityInfobox(e world.Entity, ix *Index) []InfoField {
	var fields []InfoField
	add := func(label, value string) {
		if value != "" {
			fields = append(fields, InfoField{Label: label, Value: value})
		}
	}
	add("Kind", e.Kind)
	add("Subtype", e.Subtype)
	add("Culture", e.Culture)
	add("Prominence", ProminenceLabel(e.Prominence))
	add("Status", e.Status)
	if e.RegionID != "" {
		if entry, ok := ix.Entry(e.RegionID); ok {
			add("Region", entry.Title)
		} else {
			add("Region", e.RegionID)
		}
	}
	if len(e.Tags) > 0 {
		add("Tags", strings.Join(e.Tags, ", "))
	}
	return fields
}

// eraChapterSection lists the narrative events that took place within an
// era, ordered by tick.
func (s *Synthesizer) eraChapterSection(eraID string) (Section, bool) {
	var events []world.NarrativeEvent
	for _, ev := range s.snap.Events {
		if ev.EraID == eraID {
			events = append(events, ev)
		}
	}
	if len(events) == 0 {
		return Section{}, false
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Tick < events[j].Tick })

	var b strings.Builder
	for _, ev := range events {
		fmt.Fprintf(&b, "- Tick %d: %s\n", ev.Tick, s.wikilinkEventHeadline(ev))
	}
	return Section{
		ID:      "chapters",
		Heading: "Chapters",
		Level:   2,
		Text:    strings.TrimSpace(b.String()),
	}, true
}

// relationship direction markers.
const (
	dirOutgoing      = "→"
	dirIncoming      = "←"
	dirBidirectional = "↔"
)

// relationshipSection groups every relationship touching the entity by
// (kind, direction). An outgoing and an incoming relationship of the same
// kind to the same counterpart collapse into a single bidirectional row.
func (s *Synthesizer) relationshipSection(entityID string) (Section, bool) {
	outgoing := make(map[string]map[string]bool) // kind -> counterpart ids
	incoming := make(map[string]map[string]bool)

	for _, rel := range s.snap.Relationships {
		switch entityID {
		case rel.SourceID:
			if outgoing[rel.Kind] == nil {
				outgoing[rel.Kind] = make(map[string]bool)
			}
			outgoing[rel.Kind][rel.TargetID] = true
		case rel.TargetID:
			if incoming[rel.Kind] == nil {
				incoming[rel.Kind] = make(map[string]bool)
			}
			incoming[rel.Kind][rel.SourceID] = true
		}
	}
	if len(outgoing) == 0 && len(incoming) == 0 {
		return Section{}, false
	}

	kinds := make(map[string]bool)
	for k := range outgoing {
		kinds[k] = true
	}
	for k := range incoming {
		kinds[k] = true
	}
	sortedKinds := make([]string, 0, len(kinds))
	for k := range kinds {
		sortedKinds = append(sortedKinds, k)
	}
	sort.Strings(sortedKinds)

	var b strings.Builder
	for _, kind := range sortedKinds {
		out := outgoing[kind]
		in := incoming[kind]

		var both, onlyOut, onlyIn []string
		for id := range out {
			if in[id] {
				both = append(both, id)
			} else {
				onlyOut = append(onlyOut, id)
			}
		}
		for id := range in {
			if !out[id] {
				onlyIn = append(onlyIn, id)
			}
		}

		writeRelationshipRow(&b, s, kind, dirBidirectional, both)
		writeRelationshipRow(&b, s, kind, dirOutgoing, onlyOut)
		writeRelationshipRow(&b, s, kind, dirIncoming, onlyIn)
	}

	return Section{
		ID:      "relationships",
		Heading: "Relationships",
		Level:   2,
		Text:    strings.TrimSpace(b.String()),
	}, true
}

// writeRelationshipRow emits one "kind direction" row with its counterpart
// names alphabetically sorted and wikilinked.
func writeRelationshipRow(b *strings.Builder, s *Synthesizer, kind, direction string, ids []string) {
	if len(ids) == 0 {
		return
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if e, ok := s.snap.Entity(id); ok {
			names = append(names, e.Name)
		} else {
			names = append(names, id)
		}
	}
	sort.Strings(names)
	linked := make([]string, len(names))
	for i, name := range names {
		linked[i] = s.wikilink(name)
	}
	fmt.Fprintf(b, "- **%s** %s %s\n", kind, direction, strings.Join(linked, ", "))
}

// timelineSection renders a table of the narrative events touching the
// entity, ordered by tick ascending, with participant names rewritten as
// wikilinks where they resolve.
func (s *Synthesizer) timelineSection(entityID string) (Section, bool) {
	var events []world.NarrativeEvent
	for _, ev := range s.snap.Events {
		if touchesEntity(ev, entityID) {
			events = append(events, ev)
		}
	}
	if len(events) == 0 {
		return Section{}, false
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Tick < events[j].Tick })

	var b strings.Builder
	b.WriteString("| Tick | Event |\n|---|---|\n")
	for _, ev := range events {
		fmt.Fprintf(&b, "| %d | %s |\n", ev.Tick, s.wikilinkEventHeadline(ev))
	}
	return Section{
		ID:      "timeline",
		Heading: "Timeline",
		Level:   2,
		Text:    strings.TrimSpace(b.String()),
	}, true
}

// wikilinkEventHeadline rewrites the subject and object names inside an
// event headline as wikilinks when they resolve to known pages.
func (s *Synthesizer) wikilinkEventHeadline(ev world.NarrativeEvent) string {
	headline := ev.Headline
	names := []string{ev.Subject.Name}
	if ev.Object != nil {
		names = append(names, ev.Object.Name)
	}
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := s.index.Refs.Resolve(name); !ok {
			continue
		}
		headline = strings.Replace(headline, name, "[["+name+"]]", 1)
	}
	return headline
}
