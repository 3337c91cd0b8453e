package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-invaders/core"
)

func TestANSISinkSequences(t *testing.T) {
	var buf bytes.Buffer
	sink := NewANSISink(&buf)

	sink.SetCell(4, 2, core.Cell{Rune: 'A', Color: core.ColorEnemy})
	sink.SetCell(5, 2, core.Cell{Rune: 'B', Color: core.ColorEnemy})
	if buf.Len() != 0 {
		t.Fatal("writes escaped before Flush")
	}
	if err := sink.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	want := "\x1b[3;5H\x1b[38;5;10mA\x1b[3;6HB"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestANSISinkClear(t *testing.T) {
	var buf bytes.Buffer
	sink := NewANSISink(&buf)
	sink.Clear()
	sink.SetCell(0, 0, core.Cell{Rune: '↓', Color: core.ColorShot})
	sink.Flush()

	out := buf.String()
	if !strings.HasPrefix(out, "\x1b[44m\x1b[2J\x1b[40m") {
		t.Errorf("clear sequence missing: %q", out)
	}
	if !strings.HasSuffix(out, "\x1b[1;1H\x1b[38;5;11m↓") {
		t.Errorf("cell after clear = %q", out)
	}
}

func TestTcellSinkWritesCells(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	r := NewRenderer(core.DefaultGrid, NewTcellSink(screen))
	f := core.NewFrame(core.DefaultGrid)
	f.Text(10, 5, "HI", core.ColorBanner)
	if _, err := r.Render(f, true); err != nil {
		t.Fatalf("Render: %v", err)
	}

	cells, width, _ := screen.GetContents()
	at := func(x, y int) tcell.SimCell { return cells[y*width+x] }

	if got := at(10, 5); len(got.Runes) == 0 || got.Runes[0] != 'H' {
		t.Errorf("cell (10,5) = %v, want 'H'", got.Runes)
	}
	if got := at(11, 5); len(got.Runes) == 0 || got.Runes[0] != 'I' {
		t.Errorf("cell (11,5) = %v, want 'I'", got.Runes)
	}
	_, bg, _ := at(0, 0).Style.Decompose()
	if bg != FieldBackground {
		t.Errorf("background = %v, want field background", bg)
	}
}
