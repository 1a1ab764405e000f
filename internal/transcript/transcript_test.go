// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcript

import (
	"fmt"
	"strings"
	"testing"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "blank lines dropped",
			in:   "\n\n   \n\t\n",
			want: "",
		},
		{
			name: "numbered line keeps content verbatim",
			in:   "          1    BY MS. MADSEN:",
			want: "BY MS. MADSEN:",
		},
		{
			name: "indentation after separator preserved",
			in:   "          3         Q    And good morning.",
			want: "     Q    And good morning.",
		},
		{
			name: "two digit number",
			in:   "         10    BY MS. MADSEN:",
			want: "BY MS. MADSEN:",
		},
		{
			name: "extra spaces beyond separator stay with content",
			in:   "          1     indented",
			want: " indented",
		},
		{
			name: "footer dropped",
			in:   strings.Repeat(" ", 71) + "1",
			want: "",
		},
		{
			name: "digit only line dropped mid document",
			in:   "real text\n         12\nmore text",
			want: "real text\nmore text",
		},
		{
			name: "number only padding line dropped",
			in:   "          4",
			want: "",
		},
		{
			name: "form feed line dropped",
			in:   "first\n\f\nsecond",
			want: "first\nsecond",
		},
		{
			name: "numbered line with digit only content kept",
			in:   "          7    42",
			want: "42",
		},
		{
			name: "plain text untouched",
			in:   "     Q    Already stripped?\n     A    Yes.",
			want: "     Q    Already stripped?\n     A    Yes.",
		},
		{
			name: "three spaces is not a separator",
			in:   "1   not numbered",
			want: "1   not numbered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Strip(tt.in)
			if got != tt.want {
				t.Errorf("Strip(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStrip_Idempotent(t *testing.T) {
	once := Strip(Sample())
	twice := Strip(once)
	if once != twice {
		t.Error("stripping already-stripped text should be a no-op")
	}
}

func TestStrip_Sample(t *testing.T) {
	got := Strip(Sample())
	lines := strings.Split(got, "\n")

	if len(lines) != LinesPerPage {
		t.Fatalf("stripped sample has %d lines, want %d", len(lines), LinesPerPage)
	}
	if lines[1] != "BY MS. MADSEN:" {
		t.Errorf("line 2 = %q, want speaker tag", lines[1])
	}
	if !strings.HasPrefix(lines[2], "     Q    ") {
		t.Errorf("line 3 = %q, should keep Q indentation", lines[2])
	}
}

func TestApply(t *testing.T) {
	header := strings.Repeat("\n", HeaderBlankLines)

	t.Run("empty input", func(t *testing.T) {
		got, pages := Apply("")
		if got != header {
			t.Errorf("output = %q, want header only", got)
		}
		if pages != 1 {
			t.Errorf("pages = %d, want 1", pages)
		}
	})

	t.Run("whitespace only input", func(t *testing.T) {
		got, pages := Apply("  \n\t\n\n")
		if got != header {
			t.Errorf("output = %q, want header only", got)
		}
		if pages != 1 {
			t.Errorf("pages = %d, want 1", pages)
		}
	})

	t.Run("line format", func(t *testing.T) {
		got, _ := Apply("     Q    Hello.")
		want := "          1         Q    Hello.\n\n"
		if !strings.HasPrefix(got[HeaderBlankLines:], want) {
			t.Errorf("first formatted line = %q, want prefix %q",
				got[HeaderBlankLines:HeaderBlankLines+len(want)], want)
		}
	})

	t.Run("blank input lines dropped", func(t *testing.T) {
		got, _ := Apply("first\n\n\nsecond")
		if !strings.Contains(got, "          2    second") {
			t.Error("second content line should be numbered 2")
		}
	})

	t.Run("padding to full page", func(t *testing.T) {
		got, pages := Apply("one\ntwo\nthree")
		if pages != 1 {
			t.Fatalf("pages = %d, want 1", pages)
		}
		for _, n := range []int{4, 10, 25} {
			slot := fmt.Sprintf("%*d\n", NumberWidth, n)
			if !strings.Contains(got, slot) {
				t.Errorf("missing number-only padding slot %d", n)
			}
		}
		if !strings.HasSuffix(got, fmt.Sprintf("%*d", FooterWidth, 1)) {
			t.Error("output should end with the page 1 footer")
		}
		if strings.Contains(got, "\f") {
			t.Error("single page output should carry no form feed")
		}
	})

	t.Run("exactly one full page", func(t *testing.T) {
		got, pages := Apply(contentLines(25))
		if pages != 1 {
			t.Errorf("pages = %d, want 1", pages)
		}
		if strings.Contains(got, "\f") {
			t.Error("25-line document should carry no form feed")
		}
		footer := fmt.Sprintf("%*d", FooterWidth, 1)
		if strings.Count(got, footer) != 1 {
			t.Errorf("want exactly one footer, got %d", strings.Count(got, footer))
		}
		// No number-only padding slots: every numbered line has content.
		if strings.Contains(got, fmt.Sprintf("%*d\n", NumberWidth, 2)) {
			t.Error("full page should contain no padding lines")
		}
	})

	t.Run("overflow to second page", func(t *testing.T) {
		got, pages := Apply(contentLines(26))
		if pages != 2 {
			t.Errorf("pages = %d, want 2", pages)
		}
		if strings.Count(got, "\f") != 1 {
			t.Errorf("want exactly one form feed, got %d", strings.Count(got, "\f"))
		}
		// Line 26 restarts the numbering on page 2.
		if !strings.Contains(got, fmt.Sprintf("%*d%sline 26", NumberWidth, 1, strings.Repeat(" ", SeparatorWidth))) {
			t.Error("line 26 should be numbered 1 on page 2")
		}
		if !strings.HasSuffix(got, fmt.Sprintf("%*d", FooterWidth, 2)) {
			t.Error("output should end with the page 2 footer")
		}
	})

	t.Run("two full pages", func(t *testing.T) {
		_, pages := Apply(contentLines(50))
		if pages != 2 {
			t.Errorf("pages = %d, want 2", pages)
		}
	})
}

func TestRoundTrip(t *testing.T) {
	raw := strings.Join([]string{
		"                       EXAMINATION",
		"BY MS. MADSEN:",
		"     Q    And good morning, everybody.",
		"     A    I'm good.",
		"     MS. MADSEN:  Counsel?",
	}, "\n")

	formatted, _ := Apply(raw)
	if got := Strip(formatted); got != raw {
		t.Errorf("Strip(Apply(raw)) = %q, want %q", got, raw)
	}
}

func TestRoundTrip_Sample(t *testing.T) {
	// The sample is a complete formatted page; strip then apply must
	// reproduce it byte for byte.
	formatted, pages := Apply(Strip(Sample()))
	if formatted != Sample() {
		t.Error("Apply(Strip(Sample())) should reproduce the sample exactly")
	}
	if pages != 1 {
		t.Errorf("pages = %d, want 1", pages)
	}
}

// contentLines builds n raw lines "line 1" .. "line n".
func contentLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i+1)
	}
	return strings.Join(lines, "\n")
}
