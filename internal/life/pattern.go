package life

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Format is a pattern file format.
type Format uint8

const (
	FormatUnknown Format = iota
	// FormatPlaintext is the .cells format: '!' comment lines, 'O' alive,
	// anything else dead.
	FormatPlaintext
	// FormatRLE is the run length encoded format: '#' comment lines, an
	// "x = m, y = n, rule = ..." header, then a body ending in '!'.
	FormatRLE
)

func (f Format) String() string {
	switch f {
	case FormatPlaintext:
		return "plaintext"
	case FormatRLE:
		return "rle"
	default:
		return "unknown"
	}
}

// FormatOf picks a format from a file name's extension, falling back to
// sniffing the content.
func FormatOf(name, content string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".cells", ".txt":
		return FormatPlaintext
	case ".rle":
		return FormatRLE
	}
	line := strings.TrimSpace(firstLine(skipComments(content, '#')))
	if strings.HasPrefix(line, "x") {
		return FormatRLE
	}
	return FormatPlaintext
}

// Pattern is a decoded pattern file.
type Pattern struct {
	Cells         []Cell
	Width, Height int64
	// Rule is the rulestring from an RLE header, if any.
	Rule string
}

// ErrPattern is returned for malformed pattern files.
var ErrPattern = errors.New("life: malformed pattern")

// ParsePattern decodes content in the given format.
func ParsePattern(f Format, content string) (Pattern, error) {
	switch f {
	case FormatPlaintext:
		return ParsePlaintext(content), nil
	case FormatRLE:
		return ParseRLE(content)
	default:
		return Pattern{}, fmt.Errorf("%w: unknown format", ErrPattern)
	}
}

// ParsePlaintext decodes a .cells pattern. It cannot fail: unknown
// characters are dead cells.
func ParsePlaintext(s string) Pattern {
	var p Pattern
	var x, y int64
	for _, c := range skipComments(s, '!') {
		switch c {
		case '\r':
			continue
		case '\n':
			x = 0
			y++
			continue
		case 'O':
			p.Cells = append(p.Cells, Cell{X: x, Y: y})
			p.Width = max(p.Width, x+1)
			p.Height = y + 1
		}
		x++
	}
	return p
}

// ParseRLE decodes a run length encoded pattern. The header line is
// optional; unknown cell states in the body are skipped without advancing.
func ParseRLE(s string) (Pattern, error) {
	var p Pattern
	s = skipComments(s, '#')
	header := firstLine(s)
	if !strings.Contains(header, "=") {
		header = ""
	}
	s = s[len(header):]

	for _, field := range strings.Split(header, ",") {
		key, val, ok := strings.Cut(field, "=")
		if !ok {
			continue
		}
		key, val = strings.TrimSpace(key), strings.TrimSpace(val)
		switch key {
		case "x", "y":
			n, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return Pattern{}, fmt.Errorf("%w: header %s: %w", ErrPattern, key, err)
			}
			if key == "x" {
				p.Width = n
			} else {
				p.Height = n
			}
		case "rule":
			p.Rule = val
		}
	}

	var x, y, count int64
	for _, c := range s {
		switch {
		case c == '!':
			return p, nil
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
		case '0' <= c && c <= '9':
			count = count*10 + int64(c-'0')
		default:
			run := max(1, count)
			count = 0
			switch c {
			case 'b':
				x += run
			case '$':
				x = 0
				y += run
			case 'o':
				for range run {
					p.Cells = append(p.Cells, Cell{X: x, Y: y})
					x++
				}
			}
		}
	}
	return p, nil
}

// skipComments drops leading lines that start with marker.
func skipComments(s string, marker byte) string {
	for len(s) > 0 && s[0] == marker {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			return ""
		}
		s = s[i+1:]
	}
	return s
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i+1]
	}
	return s
}
