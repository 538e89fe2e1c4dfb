package tui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rjcampbel/DisneyMagic/internal/browser"
	"github.com/rjcampbel/DisneyMagic/internal/config"
	"github.com/rjcampbel/DisneyMagic/internal/service"
	"github.com/rjcampbel/DisneyMagic/internal/tui/styles"
)

// maxFindResults is how many ranked matches the find prompt lists
const maxFindResults = 5

// Model is the bubbletea model for the catalog browser. Each key message is
// one drained input; each View call is one frame.
type Model struct {
	browser *browser.Browser
	canvas  *Canvas
	keys    KeyMap
	help    help.Model
	logger  *slog.Logger

	showHelp bool

	// Find prompt state
	finding   bool
	findInput textinput.Model
	index     *service.SearchIndex
	hits      []service.SearchHit
	hitCursor int

	width  int
	height int
}

// NewModel creates the model for b
func NewModel(b *browser.Browser, cfg *config.Config, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	ti := textinput.New()
	ti.Placeholder = "type a title..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle

	layout := b.Layout()
	return Model{
		browser:   b,
		canvas:    NewCanvas(layout.Extent(), layout.Tile, NewThumbCache(cfg.Grid.Rows*cfg.Grid.Columns*4)),
		keys:      DefaultKeyMap(),
		help:      h,
		logger:    logger,
		showHelp:  cfg.UI.ShowHelp,
		findInput: ti,
		index:     service.NewSearchIndex(b.Nodes()),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.finding {
			return m.handleFindKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.browser.Handle(browser.InputQuit)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		m.browser.Handle(browser.InputLeft)
	case key.Matches(msg, m.keys.Right):
		m.browser.Handle(browser.InputRight)
	case key.Matches(msg, m.keys.Up):
		m.browser.Handle(browser.InputUp)
	case key.Matches(msg, m.keys.Down):
		m.browser.Handle(browser.InputDown)
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.Find):
		m.finding = true
		m.findInput.SetValue("")
		m.hits = nil
		m.hitCursor = 0
		return m, m.findInput.Focus()
	}
	return m, nil
}

func (m Model) handleFindKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeFind()
		return m, nil
	case key.Matches(msg, m.keys.Accept):
		if m.hitCursor < len(m.hits) {
			hit := m.hits[m.hitCursor]
			if m.browser.Reveal(hit.Node, hit.Item) {
				m.logger.Debug("find revealed tile", "query", m.findInput.Value(), "title", hit.Title)
			}
		}
		m.closeFind()
		return m, nil
	case key.Matches(msg, m.keys.Next):
		if m.hitCursor < len(m.hits)-1 {
			m.hitCursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		if m.hitCursor > 0 {
			m.hitCursor--
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.findInput, cmd = m.findInput.Update(msg)
	m.hits = m.index.Find(m.findInput.Value(), maxFindResults)
	m.hitCursor = 0
	return m, cmd
}

func (m *Model) closeFind() {
	m.finding = false
	m.findInput.Blur()
	m.hits = nil
	m.hitCursor = 0
}

// View implements tea.Model
func (m Model) View() string {
	m.canvas.Reset()
	m.browser.Render(m.canvas)

	sections := []string{m.canvas.String()}
	if m.finding {
		sections = append(sections, m.renderFind())
	}
	if m.showHelp {
		if m.finding {
			sections = append(sections, m.help.ShortHelpView(m.keys.FindHelp()))
		} else {
			sections = append(sections, m.help.ShortHelpView(m.keys.ShortHelp()))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderFind() string {
	lines := []string{m.findInput.View()}
	if m.findInput.Value() != "" && len(m.hits) == 0 {
		lines = append(lines, styles.DimStyle.Render("  no matches"))
	}
	for i, hit := range m.hits {
		row := m.browser.Nodes()[hit.Node].Title()
		line := "  " + styles.HighlightMatches(hit.Title, hit.MatchedIndexes, i == m.hitCursor) +
			styles.DimStyle.Render("  "+row)
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
