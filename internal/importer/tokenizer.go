package importer

import "strings"

// splitLines breaks pasted text into lines, dropping blank ones.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// splitTabs splits a line on tab characters, trimming cells and dropping
// empty ones. Spreadsheet pastes arrive in this shape.
func splitTabs(line string) []string {
	var fields []string
	for _, cell := range strings.Split(line, "\t") {
		cell = strings.TrimSpace(cell)
		if cell != "" {
			fields = append(fields, cell)
		}
	}
	return fields
}

// nameRow is one parsed roster or class-change line.
type nameRow struct {
	Name    string
	Surname string
	Class   string
}

// parseNameRow reads "Name Surname ClassName". Tab fields are preferred;
// lines without enough tabs fall back to whitespace tokens. The last field
// is always the classroom label and the surname is the last remaining word,
// which keeps multi-word given names intact ("Ahmet Can Yılmaz 8/A").
func parseNameRow(line string) (nameRow, bool) {
	fields := splitTabs(line)
	if len(fields) < 2 {
		fields = strings.Fields(line)
	}
	if len(fields) < 2 {
		return nameRow{}, false
	}
	row := nameRow{Class: fields[len(fields)-1]}
	rest := fields[:len(fields)-1]
	if len(rest) == 1 {
		// a single leading cell may still hold "Name Surname"
		rest = strings.Fields(rest[0])
	}
	if len(rest) >= 2 {
		row.Surname = rest[len(rest)-1]
		row.Name = strings.Join(rest[:len(rest)-1], " ")
	} else {
		row.Name = rest[0]
	}
	return row, true
}

// resultRow is one parsed score line. Either Exam and Student came through
// as distinct fields, or Merged holds both and needs to be pulled apart
// against the known exam names.
type resultRow struct {
	Exam      string
	Student   string
	Merged    string
	Correct   string
	Incorrect string
}

// parseResultRow reads "ExamName  StudentName  Correct  Incorrect". Four or
// more tab fields keep exam and student distinct; three tab fields mean the
// first cell carries both. Without tabs the trailing two whitespace tokens
// are taken as the scores and everything before them is the merged field.
func parseResultRow(line string) (resultRow, bool) {
	fields := splitTabs(line)
	switch {
	case len(fields) >= 4:
		return resultRow{Exam: fields[0], Student: fields[1], Correct: fields[2], Incorrect: fields[3]}, true
	case len(fields) == 3:
		return resultRow{Merged: fields[0], Correct: fields[1], Incorrect: fields[2]}, true
	}
	tokens := strings.Fields(line)
	if len(tokens) < 4 {
		return resultRow{}, false
	}
	n := len(tokens)
	return resultRow{
		Merged:    strings.Join(tokens[:n-2], " "),
		Correct:   tokens[n-2],
		Incorrect: tokens[n-1],
	}, true
}
