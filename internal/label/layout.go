// Package label turns translation items into renderer-ready layout data:
// styled text runs with resolved font names plus the page format to draw them
// on. Actual PDF rasterization happens in the rendering host.
package label

import (
	"github.com/google/uuid"

	"labelmedix/internal/domain"
	"labelmedix/internal/script"
)

// Run is one contiguous piece of text rendered with a single font.
type Run struct {
	Text  string       `json:"text"`
	Class script.Class `json:"class"`
	Font  string       `json:"font"`
}

// ItemLayout is the layout of one translation item.
type ItemLayout struct {
	ItemID    uuid.UUID        `json:"item_id"`
	FieldType domain.FieldType `json:"field_type"`
	Runs      []Run            `json:"runs"`
}

// GroupLayout is the layout of one translation group, ready for rendering.
type GroupLayout struct {
	GroupID uuid.UUID      `json:"group_id"`
	Format  PageFormat     `json:"format"`
	Fonts   script.FontMap `json:"fonts"`
	Items   []ItemLayout   `json:"items"`
}

// BuildRuns segments text by script class and resolves each segment's font.
func BuildRuns(text string, fonts script.FontMap) []Run {
	segments := script.Split(text)
	if len(segments) == 0 {
		return nil
	}
	runs := make([]Run, 0, len(segments))
	for _, seg := range segments {
		runs = append(runs, Run{
			Text:  seg.Text,
			Class: seg.Class,
			Font:  fonts.FontFor(seg.Class),
		})
	}
	return runs
}

// BuildGroupLayout lays out all items of a group using the project's label
// settings. Items with empty translated text fall back to their source text
// so untranslated lines still render.
func BuildGroupLayout(groupID uuid.UUID, items []domain.TranslationItem, settings domain.LabelSettings) GroupLayout {
	fonts := script.FontMap{Primary: settings.PrimaryFont, Secondary: settings.SecondaryFont}
	if fonts.Primary == "" {
		fonts.Primary = script.DefaultPrimaryFont
	}
	if fonts.Secondary == "" {
		fonts.Secondary = script.DefaultSecondaryFont
	}

	layout := GroupLayout{
		GroupID: groupID,
		Format:  FormatForPages(settings.PageCount),
		Fonts:   fonts,
		Items:   make([]ItemLayout, 0, len(items)),
	}
	for _, item := range items {
		text := item.TranslatedText
		if text == "" {
			text = item.SourceText
		}
		layout.Items = append(layout.Items, ItemLayout{
			ItemID:    item.ID,
			FieldType: item.FieldType,
			Runs:      BuildRuns(text, fonts),
		})
	}
	return layout
}
