package layout

import "testing"

func TestExpandCage(t *testing.T) {
	page := Page{Bounds: Rect{X1: 612, Y1: 792}}

	tests := []struct {
		name              string
		label             Rect
		rightPad, downPad float64
		want              Rect
	}{
		{
			name:     "interior label",
			label:    Rect{X0: 100, Y0: 200, X1: 160, Y1: 212},
			rightPad: 80,
			downPad:  50,
			want:     Rect{X0: 96, Y0: 198, X1: 240, Y1: 262},
		},
		{
			name:     "label at page origin clamps to zero",
			label:    Rect{X0: 2, Y0: 1, X1: 60, Y1: 13},
			rightPad: 80,
			downPad:  50,
			want:     Rect{X0: 0, Y0: 0, X1: 140, Y1: 63},
		},
		{
			name:     "padding clamps to page edge inset",
			label:    Rect{X0: 500, Y0: 700, X1: 580, Y1: 712},
			rightPad: 200,
			downPad:  200,
			want:     Rect{X0: 496, Y0: 698, X1: 607, Y1: 787},
		},
		{
			name:     "zero padding still applies slack",
			label:    Rect{X0: 100, Y0: 200, X1: 160, Y1: 212},
			rightPad: 0,
			downPad:  0,
			want:     Rect{X0: 96, Y0: 198, X1: 160, Y1: 212},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandCage(tt.label, page, tt.rightPad, tt.downPad)
			if got != tt.want {
				t.Errorf("ExpandCage() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestExpandCage_NeverExitsPage(t *testing.T) {
	page := Page{Bounds: Rect{X1: 612, Y1: 792}}
	labels := []Rect{
		{X0: -50, Y0: -50, X1: 700, Y1: 900},
		{X0: 0, Y0: 0, X1: 0, Y1: 0},
		{X0: 612, Y0: 792, X1: 612, Y1: 792},
	}

	for _, label := range labels {
		got := ExpandCage(label, page, 1000, 1000)
		if got.X0 < 0 || got.Y0 < 0 {
			t.Errorf("ExpandCage(%+v) top-left out of page: %+v", label, got)
		}
		if got.X1 > page.Bounds.X1 || got.Y1 > page.Bounds.Y1 {
			t.Errorf("ExpandCage(%+v) bottom-right out of page: %+v", label, got)
		}
		if got.X0 > got.X1 || got.Y0 > got.Y1 {
			t.Errorf("ExpandCage(%+v) not normalized: %+v", label, got)
		}
	}
}
