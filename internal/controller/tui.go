package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "scanspec.dev/pkg/scanspec/internal/model"
	"scanspec.dev/pkg/scanspec/pkg/strscan"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	headerStyle = lipgloss.NewStyle().Bold(true)
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// headerLines and footerLines frame the scrolling viewport.
const (
	headerLines = 2
	footerLines = 2
)

// TUI implements UI using Bubble Tea. Output is collected while the workflow
// runs and shown on Wait, in a scrollable viewport when it does not fit the
// terminal.
type TUI struct {
	output io.Writer
	mode   StartMode
	lines  []string
	width  int
	height int
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start resets collected output and records the mode.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mode = applyStartOptions(options).mode
	p.lines = nil

	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			p.width = width
			p.height = height
		}
	}

	return nil
}

// Close discards collected output.
func (p *TUI) Close(_ context.Context) {
	p.lines = nil
}

// Wait shows the collected output. Short output is printed directly, longer
// output opens a pager that the user closes with q.
func (p *TUI) Wait(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	content := strings.Join(p.lines, "\n")

	if !p.needsPagination() {
		_, _ = fmt.Fprintln(p.output, content)
		return
	}

	model := newPagerModel(p.title(), content, p.width, p.height)

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		_, _ = fmt.Fprintln(p.output, content)
	}
}

func (p *TUI) needsPagination() bool {
	if p.height == 0 {
		return false
	}

	return len(p.lines) > p.height-headerLines-footerLines
}

func (p *TUI) title() string {
	switch p.mode {
	case ModeList:
		return "scanspec - peek contract"
	case ModeView:
		return "scanspec - saved reports"
	case ModeRun:
		return "scanspec - conformance run"
	}

	return "scanspec"
}

func (p *TUI) add(format string, args ...interface{}) {
	p.lines = append(p.lines, fmt.Sprintf(format, args...))
}

// DisplayContract lists the aliases and every example with its steps.
func (p *TUI) DisplayContract(ctx context.Context, aliases []string, examples []strscan.Example) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.add("%s", headerStyle.Render("Aliases: "+strings.Join(aliases, ", ")))
	p.add("%s", faintStyle.Render(fmt.Sprintf("Buffer: %q", strscan.ContractText)))

	for _, ex := range examples {
		p.add("")
		p.add("  %s", headerStyle.Render(ex.Desc))

		for _, st := range ex.Steps {
			p.add("    %s", st)
		}
	}

	return nil
}

// DisplayRunInfo records the worker count.
func (p *TUI) DisplayRunInfo(ctx context.Context, aliases int, threads int) {
	if ctx.Err() != nil {
		return
	}

	p.add("%s", faintStyle.Render(fmt.Sprintf("Checking %d alias(es) with %d worker(s)", aliases, threads)))
}

// DisplayReports renders every alias with a mark per example.
func (p *TUI) DisplayReports(ctx context.Context, reports []m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(reports) == 0 {
		p.add("No reports found")
		return nil
	}

	for _, report := range reports {
		passed, failed := report.Counts()

		p.add("")
		p.add("%s  %s", headerStyle.Render(report.Alias), faintStyle.Render(fmt.Sprintf("%d passed, %d failed", passed, failed)))

		for _, result := range report.Results {
			p.add("  %s %s", statusMark(result.Status), result.Desc)

			if result.Status != m.Failed {
				continue
			}

			p.add("      step %d: %s", result.Step, failStyle.Render(result.Reason))

			for _, line := range strings.Split(strings.TrimRight(result.Diff, "\n"), "\n") {
				if line != "" {
					p.add("      %s", faintStyle.Render(line))
				}
			}
		}
	}

	return nil
}

func statusMark(status m.Status) string {
	switch status {
	case m.Passed:
		return passStyle.Render("✓")
	case m.Failed:
		return failStyle.Render("✗")
	case m.Skipped:
		return faintStyle.Render("-")
	}

	return "?"
}

// DisplayPassRate records the final pass rate.
func (p *TUI) DisplayPassRate(ctx context.Context, rate float64) {
	if ctx.Err() != nil {
		return
	}

	p.add("")

	label := fmt.Sprintf("Pass rate: %.2f%%", rate*100)
	if rate < 1 {
		p.add("%s", failStyle.Render(label))
		return
	}

	p.add("%s", passStyle.Render(label))
}

// pagerModel is the Bubble Tea model used for long output.
type pagerModel struct {
	title    string
	viewport viewport.Model
	quitting bool
}

func newPagerModel(title, content string, width, height int) pagerModel {
	vp := viewport.New(width, max(height-headerLines-footerLines, 1))
	vp.SetContent(content)

	return pagerModel{title: title, viewport: vp}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(msg.Height-headerLines-footerLines, 1)

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(pm.title))
	b.WriteString("\n\n")
	b.WriteString(pm.viewport.View())
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll • q quit", pm.viewport.ScrollPercent()*100)))

	return b.String()
}
