package render_test

import (
	"testing"

	"github.com/OliverBailey/runelite-timelapse/internal/render"
)

func TestDeriveTitle(t *testing.T) {
	cases := []struct {
		dir  string
		want string
	}{
		{"/home/bob/.runelite/screenshots/Adventurer Bob", "Adventurer Bob Timelapse"},
		{"/shots/iron_man_btw", "Iron Man Btw Timelapse"},
		{"/shots/zezima", "Zezima Timelapse"},
		{"", "Account Timelapse"},
		{"/shots/---", "Account Timelapse"},
	}
	for _, tc := range cases {
		if got := render.DeriveTitle(tc.dir); got != tc.want {
			t.Fatalf("DeriveTitle(%q) = %q, want %q", tc.dir, got, tc.want)
		}
	}
}
