package slug

import "testing"

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World!!", "hello-world"},
		{"SEO Best Practices 2024", "seo-best-practices-2024"},
		{"  Spaces   everywhere  ", "spaces-everywhere"},
		{"Already-Hyphenated -- Title", "already-hyphenated-title"},
		{"Über Marketing & Görls", "ber-marketing-grls"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Make(tc.in); got != tc.want {
			t.Errorf("Make(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
