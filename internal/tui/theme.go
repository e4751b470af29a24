package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name       string
	Base       lipgloss.Style
	Header     lipgloss.Style
	Digits     lipgloss.Style
	DigitsDim  lipgloss.Style
	Unit       lipgloss.Style
	Key        lipgloss.Style
	KeyFocused lipgloss.Style
	Button     lipgloss.Style
	Rule       lipgloss.Style
	Arc        lipgloss.Style
	Track      lipgloss.Style
	Label      lipgloss.Style
	Paused     lipgloss.Style
	Finished   lipgloss.Style
	Error      lipgloss.Style
	Dim        lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:       "Default",
		Base:       lipgloss.NewStyle().Margin(1, 2),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Digits:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		DigitsDim:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Unit:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Key:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true).Padding(0, 2),
		KeyFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("205")).Bold(true).Padding(0, 2),
		Button:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 2),
		Rule:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Arc:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Track:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Paused:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Finished:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	},
	"dracula": {
		Name:       "Dracula",
		Base:       lipgloss.NewStyle().Margin(1, 2),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Digits:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		DigitsDim:  lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Unit:       lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		Key:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Padding(0, 2),
		KeyFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("212")).Bold(true).Padding(0, 2),
		Button:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 2),
		Rule:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Arc:        lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Track:      lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Paused:     lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Finished:   lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
	},
}

// themeOrder is the cycling order for the theme key.
var themeOrder = []string{"default", "dracula"}

// ThemeByName returns the named theme, falling back to default.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}

func nextThemeName(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}
