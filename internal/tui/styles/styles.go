package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	DisneyBlue = lipgloss.Color("#1A3B8F")
	Accent     = lipgloss.Color("#F2F4F8")
	Glow       = lipgloss.Color("#5FB3F9")
	Navy       = lipgloss.Color("#0B1028")
	SlateLight = lipgloss.Color("#2A3152")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Red        = lipgloss.Color("#EF4444")
)

// Text styles
var (
	RowTitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(Glow)
)

// Tile styles
var (
	// Text fallback tile body
	TextTileStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Background(SlateLight)

	// Selection outline
	OutlineStyle = lipgloss.NewStyle().
			Foreground(Glow).
			Bold(true)

	// Rounded corners for the selection outline
	OutlineBorder = lipgloss.RoundedBorder()
)

// Find prompt styles
var (
	FilterStyle = lipgloss.NewStyle().
			Foreground(White)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(Glow).
				Bold(true)

	MatchHighlightStyle = lipgloss.NewStyle().
				Foreground(Glow).
				Bold(true)

	NormalItemStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(DisneyBlue)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Glow)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Spinner frames for the build progress line
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// HighlightMatches renders text with the runes at matchedIndexes emphasised.
// matchedIndexes are byte offsets as reported by sahilm/fuzzy.
func HighlightMatches(text string, matchedIndexes []int, selected bool) string {
	base := NormalItemStyle
	if selected {
		base = SelectedItemStyle
	}
	if len(matchedIndexes) == 0 {
		return base.Render(text)
	}

	matchSet := make(map[int]bool, len(matchedIndexes))
	for _, idx := range matchedIndexes {
		matchSet[idx] = true
	}

	match := MatchHighlightStyle
	if selected {
		match = match.Background(DisneyBlue)
	}

	var out string
	for i, r := range text {
		if matchSet[i] {
			out += match.Render(string(r))
		} else {
			out += base.Render(string(r))
		}
	}
	return out
}
