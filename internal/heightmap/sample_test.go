package heightmap

import "testing"

func TestAverageExcludesAbsent(t *testing.T) {
	got := average([4]sample{present(5), absent, present(7), absent})
	if got != 6 {
		t.Fatalf("expected 6, got %v", got)
	}
}

func TestAverageAllPresent(t *testing.T) {
	got := average([4]sample{present(1), present(2), present(3), present(6)})
	if got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
}

func TestAverageIncludesNegativeHeights(t *testing.T) {
	// -1 is a legitimate height, not an absence marker.
	got := average([4]sample{present(-1), present(3), absent, absent})
	if got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
}

func TestAverageEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for an empty neighbourhood")
		}
	}()
	average([4]sample{absent, absent, absent, absent})
}
