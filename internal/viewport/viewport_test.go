package viewport

import (
	"math/rand"
	"testing"

	"github.com/aemsenhuber/follow/internal/document"
)

func testDoc(t *testing.T, raw string) document.Document {
	t.Helper()
	doc := document.Layout([]byte(raw))
	if !doc.Decoded {
		t.Fatalf("test document failed to decode: %q", raw)
	}
	return doc
}

func TestClampedDeltasStayInRange(t *testing.T) {
	doc := Extent{Rows: 40, Cols: 120}
	disp := Extent{Rows: 10, Cols: 30}
	navs := []Nav{
		ScrollRows(1), ScrollRows(-1), ScrollRows(10), ScrollRows(-10),
		ScrollRows(5), ScrollCols(1), ScrollCols(-1), ScrollCols(60),
		ScrollCols(-60), Top(), Bottom(),
	}

	rng := rand.New(rand.NewSource(1))
	s := State{}
	for i := 0; i < 500; i++ {
		s = s.Apply(navs[rng.Intn(len(navs))], doc, disp)
		if s.Row < 0 || s.Row > 30 {
			t.Fatalf("step %d: row %d left [0,30]", i, s.Row)
		}
		if s.Col < 0 || s.Col > 90 {
			t.Fatalf("step %d: col %d left [0,90]", i, s.Col)
		}
	}
}

func TestPageScenario(t *testing.T) {
	// Lines a, bb, ccc with a two-row display: one page down shows just the
	// last line; a second clamped page down stays put.
	doc := Extent{Rows: 3, Cols: 3}
	disp := Extent{Rows: 2, Cols: 80}

	s := State{}
	s = s.Apply(ScrollRows(disp.Rows), doc, disp)
	if s.Row != 1 {
		t.Fatalf("after one page down row = %d, want 1", s.Row)
	}
	s = s.Apply(ScrollRows(disp.Rows), doc, disp)
	if s.Row != 1 {
		t.Fatalf("after second page down row = %d, want 1", s.Row)
	}
}

func TestTopIdempotent(t *testing.T) {
	doc := Extent{Rows: 50, Cols: 10}
	disp := Extent{Rows: 10, Cols: 10}
	s := State{Row: 17, Follow: true}
	once := s.Apply(Top(), doc, disp)
	twice := once.Apply(Top(), doc, disp)
	if once != twice {
		t.Fatalf("go-to-top not idempotent: %+v vs %+v", once, twice)
	}
	if once.Row != 0 || once.Follow {
		t.Fatalf("go-to-top state = %+v", once)
	}
}

func TestBottomDisablesFollow(t *testing.T) {
	doc := Extent{Rows: 50, Cols: 10}
	disp := Extent{Rows: 10, Cols: 10}
	s := State{Follow: true}
	s = s.Apply(Bottom(), doc, disp)
	if s.Row != 40 || s.Follow {
		t.Fatalf("bottom state = %+v", s)
	}
}

func TestFollowRepinsOnGrowth(t *testing.T) {
	disp := Extent{Rows: 10, Cols: 10}
	s := State{Row: 3}
	s = s.Apply(ToggleFollow(), Extent{Rows: 25, Cols: 10}, disp)
	if !s.Follow || s.Row != 15 {
		t.Fatalf("engage follow state = %+v", s)
	}

	// The document grows between redraws; reclamping repins from the new
	// extent regardless of any manual delta applied in between.
	s = s.Apply(ScrollRows(-5), Extent{Rows: 25, Cols: 10}, disp)
	s = s.Reclamp(Extent{Rows: 60, Cols: 10}, disp)
	if s.Row != 50 {
		t.Fatalf("follow reclamp row = %d, want 50", s.Row)
	}

	s = s.Apply(ToggleFollow(), Extent{Rows: 60, Cols: 10}, disp)
	if s.Follow {
		t.Fatalf("second toggle should disable follow")
	}
	s = s.Reclamp(Extent{Rows: 80, Cols: 10}, disp)
	if s.Row != 50 {
		t.Fatalf("reclamp without follow moved the view to %d", s.Row)
	}
}

func TestFollowSurvivesSmallDocument(t *testing.T) {
	disp := Extent{Rows: 10, Cols: 10}
	s := State{}
	s = s.Apply(ToggleFollow(), Extent{Rows: 4, Cols: 5}, disp)
	if s.Row != 0 {
		t.Fatalf("follow on short document row = %d, want 0", s.Row)
	}
}

func TestPastDeltasOvershoot(t *testing.T) {
	doc := Extent{Rows: 5, Cols: 5}
	disp := Extent{Rows: 3, Cols: 3}

	s := State{}
	s = s.Apply(ScrollRowsPast(-1), doc, disp)
	if s.Row != -1 {
		t.Fatalf("past up row = %d, want -1", s.Row)
	}
	// A clamped downward move from a negative offset keeps at least the
	// current position and never snaps past the bound.
	s = s.Apply(ScrollRows(1), doc, disp)
	if s.Row != 0 {
		t.Fatalf("clamped down from -1 row = %d, want 0", s.Row)
	}

	s = State{Row: 2}
	s = s.Apply(ScrollRowsPast(3), doc, disp)
	if s.Row != 5 {
		t.Fatalf("past down row = %d, want 5", s.Row)
	}
	// Clamped down from beyond the bound stays put rather than snapping back.
	s = s.Apply(ScrollRows(1), doc, disp)
	if s.Row != 5 {
		t.Fatalf("clamped down from 5 row = %d, want 5", s.Row)
	}
	s = s.Apply(ScrollRows(-1), doc, disp)
	if s.Row != 4 {
		t.Fatalf("clamped up from 5 row = %d, want 4", s.Row)
	}
}

func TestVisibleWindow(t *testing.T) {
	doc := testDoc(t, "a\nbb\nccc\n")
	disp := Extent{Rows: 2, Cols: 80}

	got := Visible(State{Row: 1}, doc, disp)
	if len(got) != 2 || got[0] != "bb" || got[1] != "ccc" {
		t.Fatalf("window at row 1 = %q", got)
	}

	got = Visible(State{Row: 2}, doc, disp)
	if len(got) != 1 || got[0] != "ccc" {
		t.Fatalf("window at row 2 = %q", got)
	}
}

func TestVisibleHorizontal(t *testing.T) {
	doc := testDoc(t, "abcdef\nxy\n")
	disp := Extent{Rows: 5, Cols: 3}

	got := Visible(State{Col: 2}, doc, disp)
	if len(got) != 2 || got[0] != "cde" || got[1] != "" {
		t.Fatalf("window at col 2 = %q", got)
	}
}

func TestVisiblePastOffsetsPad(t *testing.T) {
	doc := testDoc(t, "abc\ndef\n")
	disp := Extent{Rows: 3, Cols: 5}

	got := Visible(State{Row: -1}, doc, disp)
	if len(got) != 3 || got[0] != "" || got[1] != "abc" || got[2] != "def" {
		t.Fatalf("padded window = %q", got)
	}

	got = Visible(State{Col: -2}, doc, disp)
	if len(got) != 2 || got[0] != "  abc" {
		t.Fatalf("col-padded window = %q", got)
	}
}

func TestVisibleDegenerateStates(t *testing.T) {
	doc := testDoc(t, "abc\ndef\n")
	disp := Extent{Rows: 2, Cols: 3}

	cases := []State{
		{Row: -2},  // a full screen above the top
		{Row: 2},   // at or past the height
		{Col: -3},  // a full screen left of the start
		{Col: 3},   // at or past the width
		{Row: 100}, // far out after a shrink
	}
	for _, s := range cases {
		if got := Visible(s, doc, disp); got != nil {
			t.Fatalf("state %+v should render nothing, got %q", s, got)
		}
	}
}

func TestVisibleEmptyDocument(t *testing.T) {
	doc := document.Document{Decoded: true}
	if got := Visible(State{}, doc, Extent{Rows: 5, Cols: 5}); got != nil {
		t.Fatalf("empty document rendered %q", got)
	}
}
