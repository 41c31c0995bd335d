package cachepair

import "testing"

func TestNextPowOf2(t *testing.T) {
	cases := []struct {
		in   uint32
		want uint32
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{5, 8},
		{64, 64},
		{65, 128},
		{1<<30 - 1, 1 << 30},
		{1 << 30, 1 << 30},
	}
	for _, c := range cases {
		if got := nextPowOf2(c.in); got != c.want {
			t.Fatalf("nextPowOf2(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}
