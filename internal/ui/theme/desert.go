package theme

import "github.com/charmbracelet/lipgloss"

// Desert palette, after the app's sand-and-palm art.
var (
	Sand     = lipgloss.Color("#DDC59F")
	Dune     = lipgloss.Color("#786C59")
	Clay     = lipgloss.Color("#A0624A")
	Cream    = lipgloss.Color("#F6E5CB")
	Bark     = lipgloss.Color("#593824")
	PalmGold = lipgloss.Color("#C9A227")
	Palm     = lipgloss.Color("#4CAF50")

	App = lipgloss.NewStyle().
		Background(Dune).
		Foreground(Cream).
		Padding(1, 2)

	Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Clay).
		Foreground(Cream).
		Padding(1, 2)

	PanelActive = Panel.BorderForeground(PalmGold)

	Title    = lipgloss.NewStyle().Foreground(PalmGold).Bold(true)
	Muted    = lipgloss.NewStyle().Foreground(Sand)
	Dates    = lipgloss.NewStyle().Foreground(PalmGold).Bold(true)
	Good     = lipgloss.NewStyle().Foreground(Palm).Bold(true)
	Danger   = lipgloss.NewStyle().Foreground(Clay).Bold(true)
	BigTimer = lipgloss.NewStyle().Foreground(Cream).Bold(true).Padding(1, 4)
)
