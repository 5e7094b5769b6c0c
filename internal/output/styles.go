package output

import "github.com/charmbracelet/lipgloss"

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: package names, URLs, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for success confirmations.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for cautionary notes.
	ColorYellow = lipgloss.Color("220")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (package names, URLs, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (commit hashes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleSuccess styles success confirmations.
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorGreen)

	// StyleWarn styles cautionary notes.
	StyleWarn = lipgloss.NewStyle().Foreground(ColorYellow)
)
