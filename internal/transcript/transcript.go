// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transcript implements the strip and apply transforms between
// raw deposition text and the court-formatted layout (numbered lines,
// page headers, double spacing, page footers). Both transforms are pure
// functions over in-memory strings; they are exact inverses on input
// free of blank lines and digit-only content lines.
package transcript

import (
	"fmt"
	"regexp"
	"strings"
)

// Court layout constants. These are fixed by the filing format and have
// no runtime configuration surface.
const (
	// LinesPerPage is the number of numbered slots on every page.
	LinesPerPage = 25

	// NumberWidth is the field width of the right-justified line number.
	NumberWidth = 11

	// SeparatorWidth is the count of literal spaces between the line
	// number and the content. Exactly this many; the strip recognizer
	// depends on the exact count.
	SeparatorWidth = 4

	// FooterWidth is the field width of the right-justified page number.
	FooterWidth = 72

	// HeaderBlankLines is the count of blank lines opening every page.
	HeaderBlankLines = 5
)

var (
	separator  = strings.Repeat(" ", SeparatorWidth)
	pageHeader = strings.Repeat("\n", HeaderBlankLines)

	// numberedLine matches a formatted content line: optional leading
	// whitespace, a digit run, exactly SeparatorWidth spaces, then the
	// content. The capture group holds the content verbatim, so Q/A and
	// speaker indentation inside it survives the strip.
	numberedLine = regexp.MustCompile(fmt.Sprintf(`^\s*\d+ {%d}(.*)`, SeparatorWidth))

	// footerLine matches a line whose entire content is a page number.
	footerLine = regexp.MustCompile(`^\s*\d+\s*$`)
)

// Strip removes court formatting from text: line numbers, blank-line
// spacing (which covers page headers), and page footers. Lines that
// carry no formatting are kept verbatim, so stripping already-raw text
// is a no-op. Total; never fails.
//
// Known limitation: a raw content line that happens to begin with digits
// followed by exactly four spaces is indistinguishable from a numbered
// line and loses that prefix. This ambiguity is inherent to the format.
func Strip(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		// Numbered content is checked before footers: a numbered line
		// whose remainder is itself digit-only must keep its remainder.
		if m := numberedLine.FindStringSubmatch(line); m != nil {
			kept = append(kept, m[1])
			continue
		}
		if footerLine.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// Apply renders raw text into the court layout and returns the result
// with the number of pages generated. Blank input lines carry no
// numbering information and are dropped. Every page holds exactly
// LinesPerPage numbered slots; a final partial page is padded with
// number-only lines. Each page ends with a footer; every footer except
// the last is followed by a form feed. Total; never fails.
//
// Empty input still opens page 1 (header only) and reports 1 page.
func Apply(text string) (string, int) {
	var content []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			content = append(content, line)
		}
	}

	var b strings.Builder
	b.WriteString(pageHeader)

	lineNum := 1
	page := 1

	for i, line := range content {
		fmt.Fprintf(&b, "%*d%s%s\n\n", NumberWidth, lineNum, separator, line)

		if lineNum == LinesPerPage && i < len(content)-1 {
			// Page complete with content remaining: footer, form feed,
			// next page's header.
			fmt.Fprintf(&b, "\n%*d\n\f", FooterWidth, page)
			b.WriteString(pageHeader)
			lineNum = 1
			page++
		} else {
			lineNum++
		}
	}

	// Pad the final partial page to LinesPerPage slots and close it.
	if lineNum > 1 {
		for lineNum <= LinesPerPage {
			fmt.Fprintf(&b, "%*d\n\n", NumberWidth, lineNum)
			lineNum++
		}
		fmt.Fprintf(&b, "\n%*d", FooterWidth, page)
	}

	return b.String(), page
}
