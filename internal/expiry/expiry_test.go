package expiry

import "testing"

func TestSplitYYMM(t *testing.T) {
	month, year, err := SplitYYMM("3009")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if month != "09" || year != "30" {
		t.Fatalf("SplitYYMM(3009) got month=%s year=%s", month, year)
	}

	// layout only: month 13 passes through untouched
	month, _, err = SplitYYMM("3013")
	if err != nil || month != "13" {
		t.Fatalf("SplitYYMM(3013) got month=%s err=%v", month, err)
	}

	for _, in := range []string{"", "123", "12a4", "30091"} {
		if _, _, err := SplitYYMM(in); err == nil {
			t.Fatalf("SplitYYMM(%q) expected error", in)
		}
	}
}

func TestJoinYYMM(t *testing.T) {
	cases := []struct {
		month, year string
		out         string
		ok          bool
	}{
		{"09", "2030", "3009", true},
		{"9", "30", "3009", true},
		{" 12 ", "29", "2912", true},
		{"", "30", "", false},
		{"09", "", "", false},
		{"ab", "30", "", false},
	}
	for _, c := range cases {
		got, err := JoinYYMM(c.month, c.year)
		if (err == nil) != c.ok || got != c.out {
			t.Fatalf("JoinYYMM(%q,%q) = %q err=%v want %q ok=%v", c.month, c.year, got, err, c.out, c.ok)
		}
	}
}

func TestCardFace(t *testing.T) {
	cases := []struct{ month, year, out string }{
		{"09", "2030", "09/30"},
		{"9", "30", "09/30"},
		{"12", "29", "12/29"},
		{"", "2030", ""},
		{"09", "", ""},
	}
	for _, c := range cases {
		if got := CardFace(c.month, c.year); got != c.out {
			t.Fatalf("CardFace(%q,%q) got %q want %q", c.month, c.year, got, c.out)
		}
	}
}
