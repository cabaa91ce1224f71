package processor

import (
	"strings"

	"zombiezen.com/go/commonmark"
)

// Part is a slice of a document: either prose or a fenced block.
type Part struct {
	// Text is the raw prose, or the block body without its fences.
	Text string
	// Language is the first word of the fence info string. Empty for prose.
	Language string
	// Fenced reports whether the part is a fenced block.
	Fenced bool
	// Raw is the block including its fence lines, used when no handler is
	// registered for Language.
	Raw string
	// Output is the handler's rendering, when one ran.
	Output []byte
	// Handled reports whether Output replaces the part.
	Handled bool
}

// Scan splits doc into prose and top-level fenced code blocks in document
// order. Block boundaries follow CommonMark; everything between fenced blocks
// is returned byte for byte as prose.
func Scan(doc string) []Part {
	// The parser reads NUL as U+FFFD; its offsets index the substituted text.
	doc = strings.ReplaceAll(doc, "\x00", "\uFFFD")
	blocks, _ := commonmark.Parse([]byte(doc))

	var parts []Part
	pos := 0
	for _, root := range blocks {
		if root.Kind() != commonmark.FencedCodeBlockKind {
			continue
		}
		start := int(root.StartOffset)
		if start < pos || start > len(doc) {
			continue
		}
		end := blockEnd(doc, start, len(root.Source))

		if start > pos {
			parts = append(parts, Part{Text: doc[pos:start]})
		}
		raw := doc[start:end]
		parts = append(parts, Part{
			Text:     fenceBody(raw),
			Language: infoLanguage(root),
			Fenced:   true,
			Raw:      raw,
		})
		pos = end
	}
	if pos < len(doc) {
		parts = append(parts, Part{Text: doc[pos:]})
	}
	return parts
}

// blockEnd returns the offset just past a block of size bytes starting at
// start, including the line ending when the parser left it out.
func blockEnd(doc string, start, size int) int {
	end := min(start+size, len(doc))
	if end > start && doc[end-1] == '\n' {
		return end
	}
	if strings.HasPrefix(doc[end:], "\r\n") {
		return end + 2
	}
	if strings.HasPrefix(doc[end:], "\n") {
		return end + 1
	}
	return end
}

func infoLanguage(root *commonmark.RootBlock) string {
	info := root.InfoString()
	if info == nil {
		return ""
	}
	fields := strings.Fields(info.Text(root.Source))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// fenceBody strips the opening fence line and, when present, the closing
// fence line from a fenced block's source.
func fenceBody(raw string) string {
	lines := strings.SplitAfter(raw, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return ""
	}
	marker, length := fenceMarker(lines[0])
	body := lines[1:]
	if n := len(body); n > 0 && closesFence(body[n-1], marker, length) {
		body = body[:n-1]
	}
	return strings.TrimSuffix(strings.Join(body, ""), "\n")
}

// fenceMarker reports the fence character and run length of an opening line.
func fenceMarker(line string) (byte, int) {
	trimmed := strings.TrimLeft(line, " ")
	if trimmed == "" {
		return 0, 0
	}
	marker := trimmed[0]
	length := 0
	for length < len(trimmed) && trimmed[length] == marker {
		length++
	}
	return marker, length
}

// closesFence reports whether line is a closing fence for an opening run of
// length markers.
func closesFence(line string, marker byte, length int) bool {
	if marker == 0 {
		return false
	}
	column, offset := indentation(line)
	if column > 3 {
		return false
	}
	rest := strings.TrimRight(line[offset:], " \t\r\n")
	if len(rest) < length {
		return false
	}
	for i := 0; i < len(rest); i++ {
		if rest[i] != marker {
			return false
		}
	}
	return true
}

// indentation returns the column of the first non-blank byte of line, with
// tabs advancing to the next multiple of four, and its byte offset.
func indentation(line string) (column, offset int) {
	for offset < len(line) {
		switch line[offset] {
		case ' ':
			column++
		case '\t':
			column += 4 - column%4
		default:
			return column, offset
		}
		offset++
	}
	return column, offset
}
