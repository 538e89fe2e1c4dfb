package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rjcampbel/DisneyMagic/internal/browser"
	"github.com/rjcampbel/DisneyMagic/internal/config"
	"github.com/rjcampbel/DisneyMagic/internal/domain"
	applog "github.com/rjcampbel/DisneyMagic/internal/log"
)

func testModel(rows ...[]string) Model {
	nodes := make([]*domain.CatalogNode, len(rows))
	for n, titles := range rows {
		items := make([]*domain.CatalogItem, len(titles))
		for i, title := range titles {
			items[i] = domain.NewCatalogItem(title, domain.KindVideo, "", nil, 20, 10)
		}
		nodes[n] = domain.NewCatalogNode(fmt.Sprintf("Row %d", n), "", domain.StateResolvedDirect, items)
	}
	cfg := config.DefaultConfig()
	logger := applog.NullLogger()
	return NewModel(browser.New(nodes, cfg, logger), cfg, logger)
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestNavigationKeys(t *testing.T) {
	m := testModel([]string{"Loki", "Soul", "Luca"}, []string{"Cars", "Up"})

	m, _ = press(t, m, keyRight, runes("l"), keyDown)
	node, item := m.browser.Selected()
	if node.Title() != "Row 1" || item != nil {
		t.Fatalf("selected %v/%v, want Row 1 past its last item", node, item)
	}

	m, _ = press(t, m, runes("h"))
	if _, item := m.browser.Selected(); item == nil || item.Title() != "Up" {
		t.Errorf("after left selected %v, want Up", item)
	}

	view := m.View()
	if !strings.Contains(m.canvas.Plain(), "Row 1 › Up") {
		t.Errorf("status line missing from canvas:\n%s", m.canvas.Plain())
	}
	if !strings.Contains(view, "quit") {
		t.Error("help line should be shown by default")
	}
}

func TestHelpToggle(t *testing.T) {
	m := testModel([]string{"Loki"})
	m, _ = press(t, m, runes("?"))
	if m.showHelp {
		t.Fatal("? should hide help")
	}
	if strings.Contains(m.View(), "quit") {
		t.Error("help should not be rendered")
	}
}

func TestFindRevealsMatch(t *testing.T) {
	m := testModel(
		[]string{"Loki", "Soul", "WandaVision", "Andor", "Bluey"},
		[]string{"Cars", "Up"},
		[]string{"Moana", "Encanto", "Frozen", "Coco", "Elemental", "Wish"},
	)

	m, cmd := press(t, m, runes("/"))
	if !m.finding || cmd == nil {
		t.Fatal("/ should open the find prompt")
	}

	m, _ = press(t, m, runes("e"), runes("l"), runes("e"), runes("m"))
	if len(m.hits) == 0 || m.hits[0].Title != "Elemental" {
		t.Fatalf("hits = %+v, want Elemental first", m.hits)
	}
	if !strings.Contains(m.View(), "Elemental") {
		t.Error("find results should be listed")
	}

	m, _ = press(t, m, keyEnter)
	if m.finding {
		t.Error("enter should close the prompt")
	}
	node, item := m.browser.Selected()
	if node.Title() != "Row 2" || item.Title() != "Elemental" {
		t.Errorf("selected %q/%q, want Row 2/Elemental", node.Title(), item.Title())
	}

	// selection is applied at render time
	m.View()
	if !item.IsSelected() {
		t.Error("revealed tile should be enhanced after a frame")
	}
}

func TestFindCancel(t *testing.T) {
	m := testModel([]string{"Loki", "Soul"})
	m, _ = press(t, m, runes("/"), runes("s"), keyEsc)
	if m.finding {
		t.Fatal("esc should close the prompt")
	}
	if !m.browser.Running() {
		t.Error("esc in the prompt must not quit")
	}
	if _, item := m.browser.Selected(); item.Title() != "Loki" {
		t.Errorf("cancel moved the cursor to %q", item.Title())
	}
}

func TestQuit(t *testing.T) {
	m := testModel([]string{"Loki"})
	m, cmd := press(t, m, keyEsc)
	if m.browser.Running() {
		t.Error("esc should stop the browser")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
