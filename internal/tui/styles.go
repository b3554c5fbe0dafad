package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(1, 0, 1, 2)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 0, 0, 2)

	activeLabelStyle = labelStyle.
				Foreground(lipgloss.Color("39"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 0, 0, 4)

	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	selectedChipStyle = chipStyle.
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("24"))

	fileNameStyle = lipgloss.NewStyle().
			Padding(0, 0, 0, 4)

	fileSizeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Margin(1, 0, 0, 2).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("24"))

	focusedButtonStyle = buttonStyle.
				Background(lipgloss.Color("39"))

	disabledButtonStyle = buttonStyle.
				Bold(false).
				Foreground(lipgloss.Color("245")).
				Background(lipgloss.Color("237"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Padding(1, 0, 0, 2)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Padding(0, 0, 0, 4)

	loadingStyle = lipgloss.NewStyle().
			Padding(1, 0, 0, 2)

	resultHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(1, 0, 0, 2)

	resultFileStyle = lipgloss.NewStyle().
			Bold(true)

	resultScoreStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15"))

	resultSkillsStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236"))
)
