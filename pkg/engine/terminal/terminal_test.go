package terminal

import (
	"reflect"
	"testing"
)

func TestBlocksPerRow(t *testing.T) {
	tests := []struct {
		width, block, gap int
		want              int
	}{
		{80, 31, 3, 2},
		{65, 31, 3, 2},
		{64, 31, 3, 1},
		{10, 31, 3, 1},
		{80, 0, 3, 1},
	}
	for _, tt := range tests {
		if got := BlocksPerRow(tt.width, tt.block, tt.gap); got != tt.want {
			t.Errorf("BlocksPerRow(%d, %d, %d) = %d, want %d", tt.width, tt.block, tt.gap, got, tt.want)
		}
	}
}

func TestVisibleWidth(t *testing.T) {
	if got := VisibleWidth("\x1b[36m▒▒\x1b[0m"); got != 2 {
		t.Errorf("VisibleWidth() = %d, want 2", got)
	}
}

func TestSideBySide(t *testing.T) {
	blocks := [][]string{
		{"ab", "c"},
		{"de", "fg", "h"},
		{"ij"},
	}

	got := SideBySide(blocks, 1, 5)
	want := []string{
		"ab de",
		"c  fg",
		"   h",
		"",
		"ij",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SideBySide() = %q, want %q", got, want)
	}

	got = SideBySide(blocks, 1, 80)
	want = []string{
		"ab de ij",
		"c  fg ",
		"   h  ",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SideBySide() = %q, want %q", got, want)
	}
}
