package render

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/msokolov/rosters/internal/models"
)

func renderLines(t *testing.T, render func(out *bytes.Buffer)) []string {
	t.Helper()
	var buf bytes.Buffer
	render(&buf)
	out := strings.TrimRight(buf.String(), "\n")
	return strings.Split(out, "\n")
}

func TestWorkersEmpty(t *testing.T) {
	var buf bytes.Buffer
	Workers(&buf, nil)
	if got := buf.String(); got != "list is empty\n" {
		t.Fatalf("expected the literal empty message, got %q", got)
	}
}

func TestTrainsEmpty(t *testing.T) {
	var buf bytes.Buffer
	Trains(&buf, nil)
	if got := buf.String(); got != "list is empty\n" {
		t.Fatalf("expected the literal empty message, got %q", got)
	}
}

func TestWorkersTableStructure(t *testing.T) {
	workers := []models.Worker{
		{Name: "Ivanov I.I.", Post: "Engineer", Year: 2015},
		{Name: "Petrov P.P.", Post: "Manager", Year: 2020},
	}
	lines := renderLines(t, func(out *bytes.Buffer) { Workers(out, workers) })

	// Top border, header, border, then (row, border) per record.
	wantLines := 2*len(workers) + 3
	if len(lines) != wantLines {
		t.Fatalf("expected %d lines, got %d:\n%s", wantLines, len(lines), strings.Join(lines, "\n"))
	}

	borders := 0
	for i, line := range lines {
		if i%2 == 0 {
			if !strings.HasPrefix(line, "+") {
				t.Fatalf("line %d: expected border, got %q", i, line)
			}
			if strings.Trim(line, "+-") != "" {
				t.Fatalf("line %d: border must be dashes joined with '+', got %q", i, line)
			}
			borders++
		} else if !strings.HasPrefix(line, "|") {
			t.Fatalf("line %d: expected table row, got %q", i, line)
		}
	}
	if borders != len(workers)+2 {
		t.Fatalf("expected %d border lines, got %d", len(workers)+2, borders)
	}

	header := lines[1]
	for _, label := range []string{"No", "Name", "Post", "Year"} {
		if !strings.Contains(header, label) {
			t.Fatalf("header missing %q: %q", label, header)
		}
	}

	if !strings.Contains(lines[3], "Ivanov I.I.") || !strings.Contains(lines[3], "2015") {
		t.Fatalf("unexpected first data row %q", lines[3])
	}
	if !strings.Contains(lines[5], "Petrov P.P.") || !strings.Contains(lines[5], "2020") {
		t.Fatalf("unexpected second data row %q", lines[5])
	}
}

func TestWorkersRowNumbering(t *testing.T) {
	workers := []models.Worker{
		{Name: "Ivanov I.I.", Post: "Engineer", Year: 2015},
		{Name: "Petrov P.P.", Post: "Manager", Year: 2020},
	}
	lines := renderLines(t, func(out *bytes.Buffer) { Workers(out, workers) })

	for i, lineIdx := range []int{3, 5} {
		cells := strings.Split(lines[lineIdx], "|")
		// cells[0] is the empty string before the leading separator.
		if got := strings.TrimSpace(cells[1]); got != strconv.Itoa(i+1) {
			t.Fatalf("row %d: expected number %d, got %q", i, i+1, got)
		}
	}
}

func TestTrainsRow(t *testing.T) {
	trains := []models.Train{
		{Destination: "Moscow", Type: "Express", Num: 101},
	}
	lines := renderLines(t, func(out *bytes.Buffer) { Trains(out, trains) })

	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), strings.Join(lines, "\n"))
	}

	row := lines[3]
	cells := strings.Split(row, "|")
	if len(cells) != 6 {
		t.Fatalf("expected 4 columns, got %d in %q", len(cells)-2, row)
	}
	want := []string{"1", "Moscow", "Express", "101"}
	for i, cell := range cells[1:5] {
		if got := strings.TrimSpace(cell); got != want[i] {
			t.Fatalf("column %d: expected %q, got %q", i, want[i], got)
		}
	}
}
