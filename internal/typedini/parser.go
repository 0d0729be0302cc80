package typedini

import "strings"

// parseResult carries the table plus diagnostics the Reader logs.
type parseResult struct {
	table      *table
	duplicates []string
	lines      int
}

// parse builds a table from decoded source text. source is only used to
// label errors.
func parse(source, text string, st settings) (*parseResult, error) {
	tbl := newTable(st.defaultSection)
	res := &parseResult{table: tbl}
	headers := make(map[string]struct{})

	current := tbl.ensure(st.defaultSection)
	lines := strings.Split(text, "\n")
	res.lines = len(lines)

	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" || hasAnyPrefix(line, st.commentPrefix) {
			continue
		}
		line = strings.TrimSpace(stripInlineComment(line, st.inlinePrefix))
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return nil, &MalformedLineError{Source: source, Line: lineNo, Text: raw, Reason: "unterminated section header"}
			}
			name := strings.TrimSpace(line[1 : len(line)-1])
			if name == "" {
				return nil, &MalformedLineError{Source: source, Line: lineNo, Text: raw, Reason: "empty section name"}
			}
			if _, seen := headers[fold(name)]; seen {
				if st.strictSections {
					return nil, &DuplicateSectionError{Source: source, Line: lineNo, Section: name}
				}
				res.duplicates = append(res.duplicates, name)
			}
			headers[fold(name)] = struct{}{}
			current = tbl.ensure(name)
			continue
		}

		idx, width := indexDelimiter(line, st.delimiters)
		if idx < 0 {
			return nil, &MalformedLineError{Source: source, Line: lineNo, Text: raw, Reason: "missing key/value delimiter"}
		}
		key := strings.TrimSpace(line[:idx])
		if key == "" {
			return nil, &MalformedLineError{Source: source, Line: lineNo, Text: raw, Reason: "empty option name"}
		}
		current.set(fold(key), strings.TrimSpace(line[idx+width:]))
	}

	return res, nil
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// indexDelimiter returns the position and width of the earliest delimiter.
func indexDelimiter(line string, delims []string) (int, int) {
	pos, width := -1, 0
	for _, d := range delims {
		if i := strings.Index(line, d); i >= 0 && (pos < 0 || i < pos) {
			pos, width = i, len(d)
		}
	}
	return pos, width
}

// stripInlineComment cuts line at the first unescaped inline comment prefix.
// A backslash directly before a prefix yields the prefix literally.
func stripInlineComment(line string, prefixes []string) string {
	if len(prefixes) == 0 {
		return line
	}
	var b strings.Builder
	for i := 0; i < len(line); {
		rest := line[i:]
		if rest[0] == '\\' && len(rest) > 1 {
			if p, ok := matchPrefix(rest[1:], prefixes); ok {
				b.WriteString(p)
				i += 1 + len(p)
				continue
			}
		}
		if _, ok := matchPrefix(rest, prefixes); ok {
			break
		}
		b.WriteByte(line[i])
		i++
	}
	return b.String()
}

func matchPrefix(s string, prefixes []string) (string, bool) {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return p, true
		}
	}
	return "", false
}
