package render

import (
	"errors"
	"testing"

	"github.com/lixenwraith/vi-invaders/core"
)

type cellWrite struct {
	x, y int
	c    core.Cell
}

// recordSink captures writes per flush
type recordSink struct {
	clears  int
	flushes int
	writes  []cellWrite
	err     error
}

func (s *recordSink) Clear()                        { s.clears++ }
func (s *recordSink) SetCell(x, y int, c core.Cell) { s.writes = append(s.writes, cellWrite{x, y, c}) }
func (s *recordSink) Flush() error {
	s.flushes++
	return s.err
}

var smallGrid = core.Grid{Width: 6, Height: 3}

func TestRenderForceEmitsEveryCell(t *testing.T) {
	sink := &recordSink{}
	r := NewRenderer(smallGrid, sink)

	n, err := r.Render(core.NewFrame(smallGrid), true)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if n != 18 || len(sink.writes) != 18 {
		t.Errorf("forced writes = %d (%d recorded), want 18", n, len(sink.writes))
	}
	if sink.clears != 1 || sink.flushes != 1 {
		t.Errorf("clears=%d flushes=%d, want 1/1", sink.clears, sink.flushes)
	}
}

func TestRenderEmitsOnlyChangedCells(t *testing.T) {
	sink := &recordSink{}
	r := NewRenderer(smallGrid, sink)

	f := core.NewFrame(smallGrid)
	f.Set(2, 1, 'A', core.ColorEnemy)
	f.Set(5, 2, '↑', core.ColorShot)

	n, err := r.Render(f, false)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if n != 2 {
		t.Fatalf("writes = %d, want 2", n)
	}
	if sink.clears != 0 {
		t.Error("differential render cleared the screen")
	}
	want := []cellWrite{
		{2, 1, core.Cell{Rune: 'A', Color: core.ColorEnemy}},
		{5, 2, core.Cell{Rune: '↑', Color: core.ColorShot}},
	}
	for i, w := range want {
		if sink.writes[i] != w {
			t.Errorf("write %d = %+v, want %+v", i, sink.writes[i], w)
		}
	}

	// Moving the shot erases the old cell and paints the new one
	g := core.NewFrame(smallGrid)
	g.Set(2, 1, 'A', core.ColorEnemy)
	g.Set(5, 1, '↑', core.ColorShot)
	sink.writes = nil
	if n, _ := r.Render(g, false); n != 2 {
		t.Errorf("writes after move = %d, want 2", n)
	}
}

func TestRenderColorChangeIsADiff(t *testing.T) {
	sink := &recordSink{}
	r := NewRenderer(smallGrid, sink)

	f := core.NewFrame(smallGrid)
	f.Set(0, 0, 'x', core.ColorEnemy)
	r.Render(f, false)

	g := core.NewFrame(smallGrid)
	g.Set(0, 0, 'x', core.ColorExplosion)
	if n, _ := r.Render(g, false); n != 1 {
		t.Errorf("writes = %d, want 1 for a recolored cell", n)
	}
}

func TestRenderSameFrameTwiceEmitsNothing(t *testing.T) {
	sink := &recordSink{}
	r := NewRenderer(smallGrid, sink)

	f := core.NewFrame(smallGrid)
	f.Text(0, 0, "Score", core.ColorHUD)
	r.Render(f, true)

	sink.writes = nil
	n, err := r.Render(f.Clone(), false)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if n != 0 || len(sink.writes) != 0 {
		t.Errorf("second render wrote %d cells, want 0", n)
	}
}

func TestRenderReplacesPrevious(t *testing.T) {
	r := NewRenderer(smallGrid, &recordSink{})
	f := core.NewFrame(smallGrid)
	f.Set(1, 1, 'z', core.ColorDefault)
	r.Render(f, false)

	prev := r.Previous()
	if prev.At(1, 1).Rune != 'z' {
		t.Error("previous frame not replaced after render")
	}
}

func TestRenderSizeChangeForcesRedraw(t *testing.T) {
	sink := &recordSink{}
	r := NewRenderer(smallGrid, sink)

	n, _ := r.Render(core.NewFrame(core.Grid{Width: 2, Height: 2}), false)
	if n != 4 || sink.clears != 1 {
		t.Errorf("resized render wrote %d cells with %d clears, want 4/1", n, sink.clears)
	}
}

func TestRenderPropagatesFlushError(t *testing.T) {
	boom := errors.New("closed")
	r := NewRenderer(smallGrid, &recordSink{err: boom})
	if _, err := r.Render(core.NewFrame(smallGrid), false); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}
