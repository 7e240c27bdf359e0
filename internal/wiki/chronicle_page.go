package wiki

import (
	"strings"

	"github.com/chris-arsenault/lorewiki/internal/archive"
)

// synthesizeChronicle splits the rendered content into sections and
// attaches inline images to the section whose body contains each image's
// anchor text.
func (s *Synthesizer) synthesizeChronicle(page *WikiPage, entry PageIndexEntry, d ChronicleDetail) {
	c, ok := s.chronicles[entry.ID]
	if !ok {
		return
	}

	sections := splitSections(c.RenderedContent(), true)
	for i := range sections {
		sections[i].Text = s.linker.Link(sections[i].Text)
	}

	for _, img := range c.Images {
		resolved, ok := s.resolveImage(img)
		if !ok {
			continue
		}
		attachImage(sections, img.Anchor, resolved)
	}

	page.Sections = sections
	page.Infobox = chronicleInfobox(c)
}

func chronicleInfobox(c archive.Chronicle) []InfoField {
	var fields []InfoField
	add := func(label, value string) {
		if value != "" {
			fields = append(fields, InfoField{Label: label, Value: value})
		}
	}
	add("Format", string(c.Format))
	add("Style", c.StyleID)
	return fields
}

// resolveImage applies the visibility rules: generated images attach only
// once generation completes; entity images attach only when the entity has
// a profile image, which becomes the image path. Anything else is silently
// dropped.
func (s *Synthesizer) resolveImage(img archive.ChronicleImage) (SectionImage, bool) {
	switch img.Kind {
	case archive.ImageKindGenerated:
		if img.Status != archive.ImageStatusComplete || img.Path == "" {
			return SectionImage{}, false
		}
		return SectionImage{Path: img.Path, Caption: img.Caption}, true
	case archive.ImageKindEntity:
		e, ok := s.snap.Entity(img.EntityID)
		if !ok || e.ProfileImage == "" {
			return SectionImage{}, false
		}
		return SectionImage{Path: e.ProfileImage, Caption: img.Caption}, true
	default:
		if img.Path == "" {
			return SectionImage{}, false
		}
		return SectionImage{Path: img.Path, Caption: img.Caption}, true
	}
}

// attachImage anchors the image to the first section whose body contains
// the anchor text (case-insensitive), defaulting to the first section.
func attachImage(sections []Section, anchor string, img SectionImage) {
	if len(sections) == 0 {
		return
	}
	target := 0
	if anchor != "" {
		needle := strings.ToLower(anchor)
		for i, sec := range sections {
			if strings.Contains(strings.ToLower(sec.Text), needle) {
				target = i
				break
			}
		}
	}
	sections[target].Images = append(sections[target].Images, img)
}
