// Package script partitions label text into maximal runs of characters that
// share a rendering font class, so a PDF layout stage can assign one font per
// run instead of per character. Splitting per character would render
// correctly but defeats kerning within a script and inflates the number of
// text nodes downstream.
package script

import "unicode/utf8"

// Class is the font class of a character or segment.
type Class string

const (
	// Primary covers CJK and the other non-Latin scripts rendered with the
	// CJK-capable primary font.
	Primary Class = "primary"
	// Secondary covers Latin letters and digits rendered with the Latin font.
	Secondary Class = "secondary"
	// Punctuation is the fallback for everything else, including whitespace
	// and symbols. Punctuation renders with the primary font, whose bundled
	// glyphs cover the common punctuation and space characters.
	Punctuation Class = "punctuation"
)

// Segment is a maximal run of characters sharing one class. Concatenating the
// Text of all segments in order reproduces the original input exactly.
type Segment struct {
	Text  string `json:"text"`
	Class Class  `json:"class"`
}

type runeRange struct {
	lo, hi rune
}

// primaryRanges lists the non-Latin script blocks, one entry per block.
// Blocks shared by several languages (Arabic for Urdu, Gurmukhi for Punjabi)
// appear once.
var primaryRanges = []runeRange{
	{0x4E00, 0x9FFF},   // CJK Unified Ideographs
	{0x3400, 0x4DBF},   // CJK Extension A
	{0x20000, 0x2A6DF}, // CJK Extension B
	{0x3040, 0x309F},   // Hiragana
	{0x30A0, 0x30FF},   // Katakana
	{0xAC00, 0xD7AF},   // Hangul Syllables
	{0x1100, 0x11FF},   // Hangul Jamo
	{0x3130, 0x318F},   // Hangul Compatibility Jamo
	{0x0E00, 0x0E7F},   // Thai
	{0x1EA0, 0x1EF9},   // Vietnamese additional diacritics
	{0x0900, 0x097F},   // Devanagari
	{0x0980, 0x09FF},   // Bengali
	{0x0A00, 0x0A7F},   // Gurmukhi
	{0x0A80, 0x0AFF},   // Gujarati
	{0x0B80, 0x0BFF},   // Tamil
	{0x0C00, 0x0C7F},   // Telugu
	{0x0C80, 0x0CFF},   // Kannada
	{0x0D00, 0x0D7F},   // Malayalam
	{0x0600, 0x06FF},   // Arabic
	{0x0750, 0x077F},   // Arabic Supplement
	{0x08A0, 0x08FF},   // Arabic Extended-A
	{0xFB50, 0xFDFF},   // Arabic Presentation Forms-A
	{0xFE70, 0xFEFF},   // Arabic Presentation Forms-B
	{0x0590, 0x05FF},   // Hebrew
	{0xFB1D, 0xFB4F},   // Hebrew Presentation Forms
	{0x10A0, 0x10FF},   // Georgian
	{0x2D00, 0x2D2F},   // Georgian Supplement
}

var secondaryRanges = []runeRange{
	{'A', 'Z'},
	{'a', 'z'},
	{'0', '9'},
	{0x0100, 0x017F}, // Latin Extended-A
	{0x0180, 0x024F}, // Latin Extended-B
	{0x2C60, 0x2C7F}, // Latin Extended-C
}

// ClassifyRune returns the font class of a single code point. Code points
// outside every listed block classify as Punctuation.
func ClassifyRune(r rune) Class {
	for _, rr := range primaryRanges {
		if r >= rr.lo && r <= rr.hi {
			return Primary
		}
	}
	for _, rr := range secondaryRanges {
		if r >= rr.lo && r <= rr.hi {
			return Secondary
		}
	}
	return Punctuation
}

// Split partitions text into maximal same-class runs. It returns nil for the
// empty string and never fails: unknown code points and bytes that do not
// decode as UTF-8 fall through to the Punctuation class. Segment text is
// sliced from the input, so concatenating the segments reproduces it byte for
// byte even when it is not valid UTF-8.
func Split(text string) []Segment {
	if text == "" {
		return nil
	}

	var segments []Segment
	start := 0
	var currentClass Class

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		cls := ClassifyRune(r)
		if r == utf8.RuneError && size == 1 {
			cls = Punctuation
		}
		if i == 0 {
			currentClass = cls
		}
		if cls != currentClass {
			segments = append(segments, Segment{Text: text[start:i], Class: currentClass})
			start = i
			currentClass = cls
		}
		i += size
	}
	segments = append(segments, Segment{Text: text[start:], Class: currentClass})

	return segments
}

// Default font names used when a project has no label settings yet.
const (
	DefaultPrimaryFont   = "STHeiti"
	DefaultSecondaryFont = "Arial"
)

// FontMap resolves a segment class to a registered font name. Font files are
// registered by the rendering host at startup; the service only ever deals in
// names.
type FontMap struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// DefaultFontMap returns the stock CJK/Latin font pairing.
func DefaultFontMap() FontMap {
	return FontMap{Primary: DefaultPrimaryFont, Secondary: DefaultSecondaryFont}
}

// FontFor returns the font name for a class. Punctuation uses the primary
// font.
func (m FontMap) FontFor(cls Class) string {
	if cls == Secondary {
		return m.Secondary
	}
	return m.Primary
}
