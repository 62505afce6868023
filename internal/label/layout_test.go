package label_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labelmedix/internal/domain"
	"labelmedix/internal/label"
	"labelmedix/internal/script"
)

func TestFormatForPages(t *testing.T) {
	t.Run("known_counts", func(t *testing.T) {
		one := label.FormatForPages(1)
		assert.Equal(t, 1, one.Pages)
		assert.Equal(t, 100.0, one.WidthMM)
		assert.Equal(t, 60.0, one.HeightMM)

		five := label.FormatForPages(5)
		assert.Equal(t, 5, five.Pages)
		assert.Equal(t, 148.0, five.HeightMM)
	})

	t.Run("clamps_below_one", func(t *testing.T) {
		assert.Equal(t, label.FormatForPages(1), label.FormatForPages(0))
		assert.Equal(t, label.FormatForPages(1), label.FormatForPages(-3))
	})

	t.Run("past_table_uses_last_row", func(t *testing.T) {
		f := label.FormatForPages(9)
		assert.Equal(t, 9, f.Pages)
		assert.Equal(t, label.FormatForPages(5).WidthMM, f.WidthMM)
		assert.Equal(t, label.FormatForPages(5).HeightMM, f.HeightMM)
	})
}

func TestBuildRuns(t *testing.T) {
	fonts := script.FontMap{Primary: "Noto Sans CJK", Secondary: "Helvetica"}

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, label.BuildRuns("", fonts))
	})

	t.Run("mixed", func(t *testing.T) {
		runs := label.BuildRuns("药 500mg", fonts)

		require.Len(t, runs, 3)
		assert.Equal(t, label.Run{Text: "药", Class: script.Primary, Font: "Noto Sans CJK"}, runs[0])
		assert.Equal(t, label.Run{Text: " ", Class: script.Punctuation, Font: "Noto Sans CJK"}, runs[1])
		assert.Equal(t, label.Run{Text: "500mg", Class: script.Secondary, Font: "Helvetica"}, runs[2])
	})
}

func TestBuildGroupLayout(t *testing.T) {
	groupID := uuid.New()
	items := []domain.TranslationItem{
		{ID: uuid.New(), FieldType: domain.FieldTypeDrugName, SourceText: "Paracetamol", TranslatedText: "对乙酰氨基酚"},
		{ID: uuid.New(), FieldType: domain.FieldTypeBasicInfo, SourceText: "Dosage:", TranslatedText: ""},
	}
	settings := domain.LabelSettings{
		ProjectID:     uuid.New(),
		PrimaryFont:   "Noto Sans CJK",
		SecondaryFont: "Helvetica",
		PageCount:     2,
	}

	layout := label.BuildGroupLayout(groupID, items, settings)

	assert.Equal(t, groupID, layout.GroupID)
	assert.Equal(t, 2, layout.Format.Pages)
	assert.Equal(t, "Noto Sans CJK", layout.Fonts.Primary)

	require.Len(t, layout.Items, 2)
	assert.Equal(t, items[0].ID, layout.Items[0].ItemID)
	require.Len(t, layout.Items[0].Runs, 1)
	assert.Equal(t, "对乙酰氨基酚", layout.Items[0].Runs[0].Text)

	// Untranslated items render their source text.
	require.NotEmpty(t, layout.Items[1].Runs)
	var joined string
	for _, r := range layout.Items[1].Runs {
		joined += r.Text
	}
	assert.Equal(t, "Dosage:", joined)
}

func TestBuildGroupLayout_EmptyFontsFallBack(t *testing.T) {
	layout := label.BuildGroupLayout(uuid.New(), nil, domain.LabelSettings{PageCount: 1})

	assert.Equal(t, script.DefaultPrimaryFont, layout.Fonts.Primary)
	assert.Equal(t, script.DefaultSecondaryFont, layout.Fonts.Secondary)
	assert.Empty(t, layout.Items)
}
