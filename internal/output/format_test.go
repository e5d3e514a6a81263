package output_test

import (
	"bytes"
	"testing"

	"tido/internal/output"
	"tido/internal/service"
	"tido/internal/testutil"
)

func TestPrinter_ListRendering(t *testing.T) {
	var buf bytes.Buffer
	p := output.NewPrinter(&buf)

	p.DateHeader("2025-07-11")
	items := []service.Task{
		{ID: "1", Title: "Buy milk", Description: "2%", Date: "2025-07-11"},
		{ID: "2", Title: "Walk dog", IsCompleted: true, Date: "2025-07-11"},
		{ID: "3", Title: "  \n", Date: "2025-07-11"},
	}
	for i, task := range items {
		p.Task(i+1, task)
	}

	testutil.GoldenString(t, "list", buf.String())
}

func TestPrinter_AllDatesHeader(t *testing.T) {
	var buf bytes.Buffer
	p := output.NewPrinter(&buf)

	p.DateHeader("")

	want := "------------\nall dates\n------------\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestPrinter_MultilineTitleFlattened(t *testing.T) {
	var buf bytes.Buffer
	p := output.NewPrinter(&buf)

	p.Task(12, service.Task{Title: "line one\nline two"})

	want := "  12  [ ] line one line two\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}
