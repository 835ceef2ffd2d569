package datemath

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// folded is a lowercased, diacritic-free copy of a string that remembers
// where every byte came from in the original.
type folded struct {
	text string
	// offsets[i] is the byte offset in the original string of folded byte i.
	// It has len(text)+1 entries; the last one is len(original).
	offsets []int
}

func newFolder() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// foldWithOffsets folds s rune by rune so match positions can be mapped back.
func foldWithOffsets(s string) folded {
	t := newFolder()
	var sb strings.Builder
	sb.Grow(len(s))
	offsets := make([]int, 0, len(s)+1)

	for i, r := range s {
		out := string(r)
		if r >= utf8.RuneSelf {
			if f, _, err := transform.String(t, out); err == nil && f != "" {
				out = f
			}
		}
		out = strings.ToLower(out)
		for j := 0; j < len(out); j++ {
			offsets = append(offsets, i)
		}
		sb.WriteString(out)
	}
	offsets = append(offsets, len(s))

	return folded{text: sb.String(), offsets: offsets}
}

// span maps a [start, end) byte range of the folded text back to the original.
func (f folded) span(start, end int) (int, int) {
	return f.offsets[start], f.offsets[end]
}

// Fold lowercases s and strips diacritics ("Miércoles" -> "miercoles").
func Fold(s string) string {
	out, _, err := transform.String(newFolder(), s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
