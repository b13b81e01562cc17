package view

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/fornada/fornada/internal/export"
)

const exportTimeout = 2 * time.Minute

type exportState int

const (
	exportStateForm exportState = iota
	exportStateRunning
	exportStateDone
)

// ExportModel asks for a period and a destination, then writes the
// financial report workbook to disk.
type ExportModel struct {
	exportService *export.Service

	state   exportState
	form    *huh.Form
	choice  *periodChoice
	path    *string
	spinner spinner.Model

	start, end time.Time
	written    string
	size       int
	err        error
}

func NewExportModel(svc *export.Service) ExportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = accentStyle

	m := ExportModel{
		exportService: svc,
		choice:        newPeriodChoice(),
		path:          new(""),
		spinner:       s,
	}
	m.form = m.buildForm()

	return m
}

func (m ExportModel) Title() string { return "Export Financial Report" }

func (m ExportModel) ShortHelp() string {
	switch m.state {
	case exportStateRunning:
		return "Exporting..."
	case exportStateDone:
		return "Esc: back to menu | n: new export"
	}

	return "Esc: back | Enter: next"
}

func (m ExportModel) Init() tea.Cmd {
	return m.form.Init()
}

// defaultReportPath names the file after the window, e.g.
// relatorio_20240501_20240531.xlsx, matching the HTTP download.
func defaultReportPath(start, end time.Time) string {
	return fmt.Sprintf("./relatorio_%s_%s.xlsx", start.Format("20060102"), end.Format("20060102"))
}

func (m ExportModel) buildForm() *huh.Form {
	groups := m.choice.groups()
	groups = append(groups, huh.NewGroup(
		huh.NewInput().
			Title("Output file").
			Description("Leave empty to name it after the period. Missing directories are created.").
			Value(m.path),
	))

	return huh.NewForm(groups...).WithWidth(60).WithShowHelp(false)
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.Type == tea.KeyEsc && m.state != exportStateRunning:
			return m, Back
		case keyMsg.String() == "n" && m.state == exportStateDone:
			fresh := NewExportModel(m.exportService)
			return fresh, fresh.Init()
		}
	}

	switch m.state {
	case exportStateForm:
		return m.updateForm(msg)
	case exportStateRunning:
		if res, ok := msg.(exportResultMsg); ok {
			m.state = exportStateDone
			m.written = res.path
			m.size = res.size
			m.err = res.err

			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m ExportModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	start, end, err := m.choice.Dates(time.Now())
	if err != nil {
		m.state = exportStateDone
		m.err = err

		return m, nil
	}

	path := strings.TrimSpace(*m.path)
	if path == "" {
		path = defaultReportPath(start, end)
	}

	m.start, m.end = start, end
	m.state = exportStateRunning

	return m, tea.Batch(m.spinner.Tick, m.runExportCmd(start, end, path))
}

func (m ExportModel) View() string {
	style := lipgloss.NewStyle().Padding(1)

	switch m.state {
	case exportStateForm:
		return style.Render(m.form.View())
	case exportStateRunning:
		return style.Render(fmt.Sprintf("%s Building report for %s to %s...",
			m.spinner.View(), FormatDate(m.start), FormatDate(m.end)))
	}

	if m.err != nil {
		return style.Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		okStyle.Bold(true).Render("Report saved"),
		"",
		fmt.Sprintf("Period: %s to %s", FormatDate(m.start), FormatDate(m.end)),
		fmt.Sprintf("File:   %s (%d KB)", m.written, (m.size+1023)/1024),
	))
}

type exportResultMsg struct {
	path string
	size int
	err  error
}

// runExportCmd renders the workbook in memory first so a failed report
// never leaves a truncated file behind.
func (m ExportModel) runExportCmd(start, end time.Time, path string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		var buf bytes.Buffer
		if err := m.exportService.FinancialReportXLSX(ctx, start, end, &buf); err != nil {
			return exportResultMsg{err: err}
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return exportResultMsg{err: fmt.Errorf("creating output directory: %w", err)}
		}

		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return exportResultMsg{err: fmt.Errorf("writing report: %w", err)}
		}

		return exportResultMsg{path: path, size: buf.Len()}
	}
}
