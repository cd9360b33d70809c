package layout

import "strings"

// LabelMatch is the location of a label on a page: the bounding box of the
// block or word that matched and its original, un-normalized text.
type LabelMatch struct {
	PageIndex int    `json:"page_index"`
	Rect      Rect   `json:"rect"`
	Text      string `json:"text"`
}

// LocateLabel finds the bounding box of a form label on a page given a set
// of keyword aliases. All comparisons are case-insensitive substring tests.
//
// Blocks are scanned first because block segmentation usually keeps a
// printed label together with its cell; only when no block matches does
// the search fall back to individual words. The first match in scan order
// wins, there is no scoring. Returns nil when nothing matches.
func LocateLabel(page Page, keywords []string) *LabelMatch {
	lowered := make([]string, 0, len(keywords))
	for _, k := range keywords {
		lowered = append(lowered, strings.ToLower(k))
	}

	for _, b := range page.Blocks {
		text := strings.TrimSpace(b.Text)
		if containsAny(strings.ToLower(text), lowered) {
			return &LabelMatch{PageIndex: page.Index, Rect: b.Rect, Text: text}
		}
	}

	for _, w := range page.Words {
		text := strings.TrimSpace(w.Text)
		if containsAny(strings.ToLower(text), lowered) {
			return &LabelMatch{PageIndex: page.Index, Rect: w.Rect, Text: text}
		}
	}

	return nil
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if k != "" && strings.Contains(text, k) {
			return true
		}
	}
	return false
}
