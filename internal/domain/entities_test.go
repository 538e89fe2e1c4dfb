package domain

import (
	"image"
	"testing"
)

type drawCall struct {
	op    string
	text  string
	pos   Point
	scale Scale
	role  TextRole
}

type recordingSurface struct {
	calls []drawCall
}

func (r *recordingSurface) DrawImage(img image.Image, pos Point, scale Scale) {
	r.calls = append(r.calls, drawCall{op: "image", pos: pos, scale: scale})
}

func (r *recordingSurface) DrawText(text string, pos Point, role TextRole) {
	r.calls = append(r.calls, drawCall{op: "text", text: text, pos: pos, role: role})
}

func (r *recordingSurface) DrawOutline(pos Point, size Size) {
	r.calls = append(r.calls, drawCall{op: "outline", pos: pos})
}

func TestNewCatalogItemBaseScale(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	item := NewCatalogItem("Loki", KindSeries, "http://img/loki.jpg", img, 20, 10)

	if !item.HasVisual() {
		t.Fatal("expected visual")
	}
	want := Scale{X: 0.5, Y: 0.5}
	if item.BaseScale() != want {
		t.Errorf("base scale = %+v, want %+v", item.BaseScale(), want)
	}
	if item.Scale() != want {
		t.Errorf("initial scale = %+v, want base %+v", item.Scale(), want)
	}
	if item.IsSelected() {
		t.Error("new item should not be selected")
	}
}

func TestNewCatalogItemEmptyVisual(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	item := NewCatalogItem("Empty", KindVideo, "", img, 20, 10)
	if item.HasVisual() {
		t.Error("zero-sized image should put the item in text fallback")
	}
}

func TestEnhanceAndReset(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 300, 200))
	item := NewCatalogItem("Soul", KindVideo, "", img, 20, 10)
	base := item.BaseScale()

	item.Enhance(Uniform(1.033))
	got := item.Scale()
	if got.X != base.X*1.033 || got.Y != base.Y*1.033 {
		t.Errorf("enhanced scale = %+v, want base*1.033", got)
	}
	if !item.IsSelected() {
		t.Error("enhanced item should be selected")
	}

	// repeated enhance does not compound
	item.Enhance(Uniform(1.033))
	if item.Scale() != got {
		t.Errorf("second enhance compounded: %+v", item.Scale())
	}

	item.ResetScale()
	if item.Scale() != base {
		t.Errorf("reset scale = %+v, want %+v", item.Scale(), base)
	}
	if item.IsSelected() {
		t.Error("reset item should not be selected")
	}
}

func TestDraw(t *testing.T) {
	pos := Point{X: 3, Y: 4}

	t.Run("image", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 20, 10))
		item := NewCatalogItem("Loki", KindSeries, "", img, 20, 10)
		s := &recordingSurface{}
		item.Draw(s, pos)
		if len(s.calls) != 1 || s.calls[0].op != "image" {
			t.Fatalf("calls = %+v, want one image draw", s.calls)
		}
		if s.calls[0].pos != pos || s.calls[0].scale != Uniform(1) {
			t.Errorf("unexpected draw call %+v", s.calls[0])
		}
	})

	t.Run("text fallback", func(t *testing.T) {
		item := NewCatalogItem("Luca", KindVideo, "http://img/broken.jpg", nil, 20, 10)
		s := &recordingSurface{}
		item.Draw(s, pos)
		if len(s.calls) != 1 || s.calls[0].op != "text" {
			t.Fatalf("calls = %+v, want one text draw", s.calls)
		}
		if s.calls[0].text != "Luca" || s.calls[0].role != TextTile {
			t.Errorf("unexpected draw call %+v", s.calls[0])
		}
	})
}

func TestCatalogNodeItem(t *testing.T) {
	items := []*CatalogItem{
		NewCatalogItem("a", KindVideo, "", nil, 1, 1),
		NewCatalogItem("b", KindVideo, "", nil, 1, 1),
	}
	node := NewCatalogNode("Row", "", StateResolvedDirect, items)

	if node.Len() != 2 {
		t.Fatalf("Len = %d, want 2", node.Len())
	}
	if node.Item(1).Title() != "b" {
		t.Errorf("Item(1) = %q", node.Item(1).Title())
	}
	for _, idx := range []int{-1, 2, 100} {
		if node.Item(idx) != nil {
			t.Errorf("Item(%d) should be nil", idx)
		}
	}
}

func TestNodeState(t *testing.T) {
	tests := []struct {
		state    NodeState
		name     string
		terminal bool
	}{
		{StateUnresolved, "unresolved", false},
		{StateResolvingReference, "resolving", false},
		{StateResolved, "resolved", true},
		{StateResolvedDirect, "direct", true},
		{StateResolvedEmpty, "empty", true},
	}
	for _, tt := range tests {
		if tt.state.String() != tt.name {
			t.Errorf("%d.String() = %q, want %q", tt.state, tt.state.String(), tt.name)
		}
		if tt.state.IsTerminal() != tt.terminal {
			t.Errorf("%s.IsTerminal() = %v, want %v", tt.name, tt.state.IsTerminal(), tt.terminal)
		}
	}
}
