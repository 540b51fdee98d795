// Package sanitize converts raw model completions into plain prose suitable
// for direct display. It strips recognized structural markup (headers,
// emphasis, fenced blocks, rules, links, list bullets) and normalizes
// whitespace. It deliberately leaves ordinary punctuation alone: parentheses,
// brackets and quotes inside prose are legitimate content.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	fenceLineRe = regexp.MustCompile("(?mi)^```[a-z]*[ \t]*$\n?")
	headerRe    = regexp.MustCompile(`(?m)^#{1,6}[ \t]+`)
	boldRe      = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRe    = regexp.MustCompile(`\*([^*\n]+)\*`)
	ruleRe      = regexp.MustCompile(`(?m)^[ \t]*(-{3,}|={3,})[ \t]*$\n?`)
	linkRe      = regexp.MustCompile(`\[([^\]]+)\]\([^)]*\)`)
	bulletRe    = regexp.MustCompile(`(?m)^[ \t]*[-*+][ \t]+`)
	orderedRe   = regexp.MustCompile(`(?m)^[ \t]*\d+\.[ \t]+`)
	inlineRe    = regexp.MustCompile("`([^`\n]*)`")
	blankRe     = regexp.MustCompile(`\n{3,}`)
)

// Clean strips recognized structural markup from a raw completion.
// It is idempotent, never fails, and passes unrecognized content through
// unchanged apart from whitespace normalization.
func Clean(s string) string {
	if s == "" {
		return s
	}

	// Stripping one layer of markup can reveal another underneath (bold
	// wrapping a header, a header inside inline code), so the pass repeats
	// until the text stops changing. Every rewrite only removes markup, so
	// the loop terminates.
	out := strings.ReplaceAll(s, "\r\n", "\n")
	for {
		next := cleanOnce(out)
		if next == out {
			return out
		}
		out = next
	}
}

func cleanOnce(s string) string {
	// Fenced blocks: drop the fence markers, keep the inner text.
	out := fenceLineRe.ReplaceAllString(s, "")
	out = strings.ReplaceAll(out, "```", "")

	out = headerRe.ReplaceAllString(out, "")
	out = boldRe.ReplaceAllString(out, "$1")
	out = strings.ReplaceAll(out, "**", "")
	out = italicRe.ReplaceAllString(out, "$1")
	out = ruleRe.ReplaceAllString(out, "")
	out = linkRe.ReplaceAllString(out, "$1")
	out = bulletRe.ReplaceAllString(out, "")
	out = orderedRe.ReplaceAllString(out, "")
	out = inlineRe.ReplaceAllString(out, "$1")

	out = unescape(out)
	out = trimWrappingQuotes(out)
	return normalizeWhitespace(out)
}

// unescape resolves literal escape sequences left over from JSON residue.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	r := strings.NewReplacer(
		`\n`, "\n",
		`\t`, " ",
		`\r`, "",
		`\"`, `"`,
		`\'`, "'",
	)
	return r.Replace(s)
}

// trimWrappingQuotes removes quotes that wrap the whole text, repeatedly,
// so repeated application is a no-op.
func trimWrappingQuotes(s string) string {
	for {
		t := strings.TrimSpace(s)
		if len(t) >= 2 {
			first, last := t[0], t[len(t)-1]
			if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
				s = t[1 : len(t)-1]
				continue
			}
		}
		return t
	}
}

// normalizeWhitespace trims each line and collapses runs of blank lines
// down to a single blank line.
func normalizeWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	out := strings.Join(lines, "\n")
	out = blankRe.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

// ExtractJSONObject locates the first balanced {...} span in a raw
// completion, tolerating code fences and prose around it. The scan is
// string-aware so braces inside JSON strings do not break the balance.
func ExtractJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
