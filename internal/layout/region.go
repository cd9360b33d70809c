package layout

// Slack applied around a label box before padding: the cage reaches a few
// points left and up of the label so words that start slightly before it
// are not cut off, and stops short of the page edge on the far sides.
const (
	cageLeftSlack = 4
	cageTopSlack  = 2
	cageEdgeInset = 5
)

// ExpandCage grows a label's bounding box into the capture region believed
// to contain the label's value. rightPad and downPad are per-field-group
// settings: a short single-line field needs far less reach than a
// multi-row tax summary.
//
// The result is clamped so it never exits the page bounds, whatever the
// input rect or padding.
func ExpandCage(label Rect, page Page, rightPad, downPad float64) Rect {
	x0 := label.X0 - cageLeftSlack
	if x0 < 0 {
		x0 = 0
	}
	y0 := label.Y0 - cageTopSlack
	if y0 < 0 {
		y0 = 0
	}

	x1 := label.X1 + rightPad
	if maxX := page.Bounds.X1 - cageEdgeInset; x1 > maxX {
		x1 = maxX
	}
	y1 := label.Y1 + downPad
	if maxY := page.Bounds.Y1 - cageEdgeInset; y1 > maxY {
		y1 = maxY
	}

	return NewRect(x0, y0, x1, y1)
}
