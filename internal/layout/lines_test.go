package layout

import (
	"math/rand"
	"reflect"
	"testing"
)

func word(text string, x0, y0 float64) Word {
	return Word{Rect: Rect{X0: x0, Y0: y0, X1: x0 + 30, Y1: y0 + 10}, Text: text}
}

func TestLinesInCage_ReadingOrder(t *testing.T) {
	page := Page{
		Bounds: Rect{X1: 612, Y1: 792},
		Words: []Word{
			// Emitted out of reading order on purpose.
			word("LTD", 170, 120),
			word("Consignee", 50, 100),
			word("BODYLINE", 50, 120),
			word("PVT", 130, 120),
		},
	}
	cage := Rect{X0: 40, Y0: 90, X1: 300, Y1: 200}

	got := LinesInCage(page, cage)
	want := []string{"Consignee", "BODYLINE PVT LTD"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LinesInCage() = %v, want %v", got, want)
	}
}

func TestLinesInCage_BaselineJitter(t *testing.T) {
	// Tops differing by less than a twentieth of a unit land in the same
	// visual row.
	page := Page{
		Bounds: Rect{X1: 612, Y1: 792},
		Words: []Word{
			word("first", 50, 100.02),
			word("second", 100, 99.98),
		},
	}
	cage := Rect{X0: 0, Y0: 0, X1: 612, Y1: 792}

	got := LinesInCage(page, cage)
	want := []string{"first second"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LinesInCage() = %v, want %v", got, want)
	}
}

func TestLinesInCage_ExcludesOutsideWords(t *testing.T) {
	page := Page{
		Bounds: Rect{X1: 612, Y1: 792},
		Words: []Word{
			word("inside", 50, 100),
			word("below", 50, 500),
			word("right", 500, 100),
		},
	}
	cage := Rect{X0: 40, Y0: 90, X1: 200, Y1: 200}

	got := LinesInCage(page, cage)
	want := []string{"inside"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LinesInCage() = %v, want %v", got, want)
	}
}

func TestLinesInCage_EmptyCage(t *testing.T) {
	page := Page{
		Bounds: Rect{X1: 612, Y1: 792},
		Words:  []Word{word("far", 500, 700)},
	}
	cage := Rect{X0: 0, Y0: 0, X1: 100, Y1: 100}

	if got := LinesInCage(page, cage); len(got) != 0 {
		t.Errorf("LinesInCage() = %v, want empty", got)
	}
}

func TestLinesInCage_PermutationInvariant(t *testing.T) {
	words := []Word{
		word("S", 50, 100),
		word("52194", 80, 100),
		word("30/09/2025", 140, 100),
		word("CBBI2", 50, 130),
		word("Colombo", 100, 130),
	}
	cage := Rect{X0: 0, Y0: 0, X1: 612, Y1: 792}

	base := LinesInCage(Page{Bounds: cage, Words: words}, cage)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]Word, len(words))
		copy(shuffled, words)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := LinesInCage(Page{Bounds: cage, Words: shuffled}, cage)
		if !reflect.DeepEqual(got, base) {
			t.Fatalf("permutation %d changed output: %v, want %v", i, got, base)
		}
	}
}
