// Package layout provides a read-only view of a page's text geometry and
// the spatial operations used to pull field values out of printed forms:
// locating a label, growing its box into a capture region, and rebuilding
// the region's text in reading order.
package layout

// Rect is an axis-aligned box in page space. X grows to the right and Y
// grows downward, so (X0, Y0) is the top-left corner. Invariant:
// X0 <= X1 and Y0 <= Y1.
type Rect struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// NewRect returns a normalized rect, swapping coordinates if needed so the
// invariant holds regardless of argument order.
func NewRect(x0, y0, x1, y1 float64) Rect {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the horizontal extent of the rect.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent of the rect.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Intersects reports whether r and o share a non-empty overlap area.
// Rects that merely touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X0 < o.X1 && o.X0 < r.X1 && r.Y0 < o.Y1 && o.Y0 < r.Y1
}

// Union returns the smallest rect covering both r and o.
func (r Rect) Union(o Rect) Rect {
	out := r
	if o.X0 < out.X0 {
		out.X0 = o.X0
	}
	if o.Y0 < out.Y0 {
		out.Y0 = o.Y0
	}
	if o.X1 > out.X1 {
		out.X1 = o.X1
	}
	if o.Y1 > out.Y1 {
		out.Y1 = o.Y1
	}
	return out
}

// Word is a single token with its own bounding box.
type Word struct {
	Rect Rect   `json:"rect"`
	Text string `json:"text"`
}

// Block is a layout-engine-grouped run of text with one bounding box,
// coarser than a Word. On printed forms a block is usually a whole
// labeled cell.
type Block struct {
	Rect Rect   `json:"rect"`
	Text string `json:"text"`
}

// Page is an immutable snapshot of one page's text geometry. Blocks and
// words keep the order the underlying layout engine emitted them in,
// which is not guaranteed to be reading order.
type Page struct {
	Index  int     `json:"index"`
	Bounds Rect    `json:"bounds"`
	Blocks []Block `json:"blocks"`
	Words  []Word  `json:"words"`
}

// Document is an ordered sequence of pages. It is never mutated after
// load; concurrent readers need no coordination.
type Document struct {
	Pages []Page `json:"pages"`
}

// PageCount returns the number of pages in the document.
func (d Document) PageCount() int {
	return len(d.Pages)
}
