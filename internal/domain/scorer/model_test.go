package scorer

import "testing"

func TestNormalizeLimit(t *testing.T) {
	tests := map[int]int{0: 20, -5: 20, 10: 10, 100: 100, 500: 100}
	for in, want := range tests {
		if got := NormalizeLimit(in); got != want {
			t.Fatalf("NormalizeLimit(%d)=%d want=%d", in, got, want)
		}
	}
}
