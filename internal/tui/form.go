package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/shortlist/internal/form"
	"github.com/amishk599/shortlist/internal/model"
	"github.com/amishk599/shortlist/internal/report"
	"github.com/amishk599/shortlist/internal/upload"
)

type focusField int

const (
	focusRole focusField = iota
	focusSkill
	focusFiles
	focusSubmit
	focusCount
)

// analysisDoneMsg carries the outcome of the call started by Begin.
type analysisDoneMsg struct {
	results []model.AnalysisResult
	err     error
}

type formModel struct {
	ctrl *form.Controller

	roleInput  textinput.Model
	skillInput textinput.Model
	fileInput  textinput.Model
	focus      focusField
	chipCursor int // index of the highlighted skill chip, -1 = none

	spinner spinner.Model
	results viewport.Model
	notice  string // rejections from the last file selection

	width  int
	height int
}

func newFormModel(ctrl *form.Controller) formModel {
	role := textinput.New()
	role.Placeholder = "e.g. Backend Engineer"
	role.SetValue(ctrl.JobRole())

	skill := textinput.New()
	skill.Placeholder = "type a skill, enter to add"
	skill.SetValue(ctrl.SkillInput())

	files := textinput.New()
	files.Placeholder = "path or glob, comma-separated, enter to add"

	m := formModel{
		ctrl:       ctrl,
		roleInput:  role,
		skillInput: skill,
		fileInput:  files,
		chipCursor: -1,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		results:    viewport.New(80, 10),
		width:      80,
		height:     24,
	}
	m.roleInput.Focus()
	return m
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.results.Width = max(m.width-4, 20)
		m.results.Height = max(m.height/2-2, 6)
		return m, nil

	case analysisDoneMsg:
		state := m.ctrl.Settle(msg.results, msg.err)
		if s, ok := state.(form.Succeeded); ok {
			m.results.SetContent(renderResults(s.Results))
			m.results.GotoTop()
		} else {
			m.results.SetContent("")
		}
		return m, nil

	case spinner.TickMsg:
		if !m.ctrl.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m formModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "down":
		return m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab", "up":
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	case "ctrl+s":
		return m.submit()
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}

	switch m.focus {
	case focusRole:
		if msg.String() == "enter" {
			return m.setFocus(focusSkill)
		}
		var cmd tea.Cmd
		m.roleInput, cmd = m.roleInput.Update(msg)
		m.ctrl.SetJobRole(m.roleInput.Value())
		return m, cmd

	case focusSkill:
		return m.updateSkill(msg)

	case focusFiles:
		if msg.String() == "enter" {
			m.addFiles()
			return m, nil
		}
		var cmd tea.Cmd
		m.fileInput, cmd = m.fileInput.Update(msg)
		return m, cmd

	case focusSubmit:
		switch msg.String() {
		case "enter", " ":
			return m.submit()
		case "q":
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m formModel) updateSkill(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	skills := m.ctrl.Skills()

	if m.skillInput.Value() == "" && len(skills) > 0 {
		switch msg.String() {
		case "left":
			if m.chipCursor <= 0 {
				m.chipCursor = len(skills) - 1
			} else {
				m.chipCursor--
			}
			return m, nil
		case "right":
			if m.chipCursor < 0 || m.chipCursor >= len(skills)-1 {
				m.chipCursor = 0
			} else {
				m.chipCursor++
			}
			return m, nil
		case "backspace", "delete":
			idx := m.chipCursor
			if idx < 0 {
				idx = len(skills) - 1
			}
			m.ctrl.RemoveSkill(skills[idx])
			m.chipCursor = min(idx, len(skills)-2)
			return m, nil
		}
	}

	if msg.String() == "enter" {
		if m.ctrl.AddSkill(m.ctrl.SkillInput()) {
			m.skillInput.SetValue(m.ctrl.SkillInput())
			m.chipCursor = -1
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.skillInput, cmd = m.skillInput.Update(msg)
	m.ctrl.SetSkillInput(m.skillInput.Value())
	m.chipCursor = -1
	return m, cmd
}

// addFiles runs the file input through the accept filter.
func (m *formModel) addFiles() {
	var patterns []string
	for _, p := range strings.Split(m.fileInput.Value(), ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	if len(patterns) == 0 {
		return
	}

	files, rejected, err := upload.Select(patterns...)
	if err != nil {
		m.notice = err.Error()
		return
	}
	m.ctrl.AddFiles(files...)
	m.fileInput.SetValue("")

	var notes []string
	for _, r := range rejected {
		notes = append(notes, "skipped "+r.String())
	}
	m.notice = strings.Join(notes, "\n")
}

func (m formModel) setFocus(f focusField) (tea.Model, tea.Cmd) {
	m.focus = f
	m.roleInput.Blur()
	m.skillInput.Blur()
	m.fileInput.Blur()
	m.chipCursor = -1

	var cmd tea.Cmd
	switch f {
	case focusRole:
		cmd = m.roleInput.Focus()
	case focusSkill:
		cmd = m.skillInput.Focus()
	case focusFiles:
		cmd = m.fileInput.Focus()
	}
	return m, cmd
}

// submit starts a submission when the trigger is enabled. The blocking call
// runs in a command; its outcome comes back as analysisDoneMsg.
func (m formModel) submit() (tea.Model, tea.Cmd) {
	req, err := m.ctrl.Begin()
	if err != nil {
		return m, nil
	}
	m.results.SetContent("")
	return m, tea.Batch(m.analyzeCmd(req), m.spinner.Tick)
}

func (m formModel) analyzeCmd(req model.AnalysisRequest) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		results, err := ctrl.Analyze(context.Background(), req)
		return analysisDoneMsg{results: results, err: err}
	}
}

func (m formModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Resume Shortlister"))
	b.WriteByte('\n')

	b.WriteString(m.label("Job Role", focusRole) + "\n")
	b.WriteString("  " + m.roleInput.View() + "\n\n")

	b.WriteString(m.label("Required Skills", focusSkill) + "\n")
	b.WriteString("  " + m.skillInput.View() + "\n")
	if chips := m.renderChips(); chips != "" {
		b.WriteString("    " + chips + "\n")
	}
	b.WriteByte('\n')

	exts := strings.ToUpper(strings.ReplaceAll(strings.Join(upload.AcceptedExtensions, ", "), ".", ""))
	b.WriteString(m.label(fmt.Sprintf("Resumes (%s)", exts), focusFiles) + "\n")
	b.WriteString("  " + m.fileInput.View() + "\n")
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice) + "\n")
	}
	if files := m.ctrl.Files(); len(files) > 0 {
		b.WriteString(hintStyle.Render("Uploaded Files:") + "\n")
		for _, f := range files {
			b.WriteString(fileNameStyle.Render(f.Name) + "  " + fileSizeStyle.Render(f.SizeMB()) + "\n")
		}
	}

	b.WriteString(m.renderButton() + "\n")

	switch s := m.ctrl.State().(type) {
	case form.Loading:
		b.WriteString(loadingStyle.Render(m.spinner.View()+" Analyzing resumes...") + "\n")
	case form.Failed:
		b.WriteString(errorStyle.Render(s.Message) + "\n")
	case form.Succeeded:
		b.WriteString(resultHeaderStyle.Render("Analysis Results:") + "\n")
		b.WriteString(lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(m.results.View()) + "\n")
	}

	b.WriteByte('\n')
	status := " tab/shift+tab move  enter add/submit  ←/→ pick skill  backspace remove skill  ctrl+s analyze  pgup/pgdn scroll  ctrl+c quit"
	b.WriteString(statusBarStyle.Width(m.width).Render(status))

	return b.String()
}

func (m formModel) label(text string, f focusField) string {
	if m.focus == f {
		return activeLabelStyle.Render(text)
	}
	return labelStyle.Render(text)
}

func (m formModel) renderChips() string {
	skills := m.ctrl.Skills()
	if len(skills) == 0 {
		return ""
	}
	chips := make([]string, len(skills))
	for i, s := range skills {
		if m.focus == focusSkill && i == m.chipCursor {
			chips[i] = selectedChipStyle.Render(s + " ×")
		} else {
			chips[i] = chipStyle.Render(s)
		}
	}
	return strings.Join(chips, " ")
}

func (m formModel) renderButton() string {
	const text = "Analyze Resumes"
	if !m.ctrl.CanSubmit() {
		return disabledButtonStyle.Render(text)
	}
	if m.focus == focusSubmit {
		return focusedButtonStyle.Render("> " + text)
	}
	return buttonStyle.Render(text)
}

func renderResults(results []model.AnalysisResult) string {
	if len(results) == 0 {
		return "(no results)"
	}

	var b strings.Builder
	for i, r := range results {
		b.WriteString(resultFileStyle.Render(r.FileName))
		b.WriteByte('\n')
		b.WriteString(resultScoreStyle.Render(fmt.Sprintf("Match Score: %s%%", report.FormatScore(r.MatchScore))))
		b.WriteByte('\n')
		b.WriteString(resultSkillsStyle.Render("Matching Skills: " + strings.Join(r.MatchingSkills, ", ")))
		b.WriteByte('\n')
		if d := r.Details; d != nil {
			b.WriteString(resultSkillsStyle.Render(fmt.Sprintf("Skills %s%% · Experience %s%% · Education %s%%",
				report.FormatScore(d.SkillScore),
				report.FormatScore(d.ExperienceScore),
				report.FormatScore(d.EducationScore))))
			b.WriteByte('\n')
		}
		if i < len(results)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// RunForm launches the interactive form on ctrl and blocks until the user quits.
// A submission still in flight at that point is abandoned.
func RunForm(ctrl *form.Controller) error {
	p := tea.NewProgram(newFormModel(ctrl), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
