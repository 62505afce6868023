package label

// PageFormat describes the physical page of a printed label in millimeters.
type PageFormat struct {
	Pages          int     `json:"pages"`
	WidthMM        float64 `json:"width_mm"`
	HeightMM       float64 `json:"height_mm"`
	MarginTopMM    float64 `json:"margin_top_mm"`
	MarginBottomMM float64 `json:"margin_bottom_mm"`
	MarginLeftMM   float64 `json:"margin_left_mm"`
	MarginRightMM  float64 `json:"margin_right_mm"`
}

// pageFormats maps a label's page count to its print dimensions. Widths grow
// with page count because multi-page labels fold out; the last row is the
// catch-all for anything longer.
var pageFormats = []PageFormat{
	{Pages: 1, WidthMM: 100, HeightMM: 60, MarginTopMM: 4, MarginBottomMM: 4, MarginLeftMM: 5, MarginRightMM: 5},
	{Pages: 2, WidthMM: 140, HeightMM: 80, MarginTopMM: 4, MarginBottomMM: 4, MarginLeftMM: 5, MarginRightMM: 5},
	{Pages: 3, WidthMM: 180, HeightMM: 100, MarginTopMM: 5, MarginBottomMM: 5, MarginLeftMM: 6, MarginRightMM: 6},
	{Pages: 4, WidthMM: 210, HeightMM: 120, MarginTopMM: 5, MarginBottomMM: 5, MarginLeftMM: 6, MarginRightMM: 6},
	{Pages: 5, WidthMM: 210, HeightMM: 148, MarginTopMM: 6, MarginBottomMM: 6, MarginLeftMM: 8, MarginRightMM: 8},
}

// FormatForPages returns the print format for a label with the given page
// count. Counts below one clamp to the single-page format; counts past the
// table use the final catch-all row.
func FormatForPages(pages int) PageFormat {
	if pages < 1 {
		pages = 1
	}
	for _, f := range pageFormats {
		if f.Pages == pages {
			return f
		}
	}
	last := pageFormats[len(pageFormats)-1]
	last.Pages = pages
	return last
}
