package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/shunnNet/co/internal/model"
)

const maxTargetResults = 500

// targetResult is one generated target as shown in the results list.
type targetResult struct {
	pass   string
	target string
	kind   string
	status string
	err    string
	took   time.Duration
}

// Implement list.Item interface for targetResult.
func (r targetResult) FilterValue() string {
	return r.target + " " + r.kind + " " + r.status
}

func newTargetResult(pass string, r m.GenerationReport) targetResult {
	result := targetResult{
		pass:   shortID(pass),
		target: string(r.Target),
		kind:   string(r.Kind),
		status: reportStatus(r),
		took:   r.Duration,
	}

	if r.Err != nil {
		result.err = r.Err.Error()
	}

	return result
}

type targetResultDelegate struct {
	offset int
}

func (d targetResultDelegate) Height() int  { return 1 }
func (d targetResultDelegate) Spacing() int { return 0 }
func (d targetResultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d targetResultDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	result, ok := item.(targetResult)
	if !ok {
		return
	}

	selected := index == l.Index()
	targetWidth := l.Width() - 38

	passStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Width(10)
	statusStyle := lipgloss.NewStyle().Foreground(statusColor(result.status)).Bold(true).Width(11)
	kindStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Width(9)
	targetStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	target := truncateText(result.target, targetWidth)

	if selected {
		highlight := func(s lipgloss.Style) lipgloss.Style {
			return s.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
		}
		passStyle, statusStyle, kindStyle, targetStyle = highlight(passStyle), highlight(statusStyle), highlight(kindStyle), highlight(targetStyle)
		target = animateScroll(result.target, targetWidth, d.offset)
	}

	line := fmt.Sprintf("%s  %s  %s  %s",
		passStyle.Render(result.pass),
		statusStyle.Render(result.status),
		kindStyle.Render(result.kind),
		targetStyle.Render(target),
	)
	_, _ = fmt.Fprint(w, line)
}

func statusColor(status string) lipgloss.Color {
	switch status {
	case "written":
		return lipgloss.Color("2")
	case "failed":
		return lipgloss.Color("1")
	default:
		return lipgloss.Color("8")
	}
}

// watchModel is the live view of the watch loop.
type watchModel struct {
	width         int
	height        int
	spinner       spinner.Model
	base          string
	watching      bool
	activePass    string
	activeEvents  int
	passes        int
	failures      int
	lastTook      time.Duration
	results       []targetResult
	resultsList   list.Model
	delegate      targetResultDelegate
	animOffset    int
	lastSelected  int
	showError     bool
	selectedError string
}

func newWatchModel() watchModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	delegate := targetResultDelegate{}
	resultsList := list.New([]list.Item{}, delegate, 80, 20)
	resultsList.SetShowPagination(false)
	resultsList.SetShowFilter(true)
	resultsList.SetShowHelp(false)
	resultsList.SetShowTitle(false)
	resultsList.SetShowStatusBar(false)
	resultsList.FilterInput.Placeholder = "Filter targets…"

	return watchModel{
		spinner:      spin,
		resultsList:  resultsList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (wm watchModel) Init() tea.Cmd {
	return tea.Batch(wm.spinner.Tick, tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (wm watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		wm.width = msg.Width
		wm.height = msg.Height
		wm.resultsList.SetWidth(wm.width - 4)

	case tea.KeyMsg:
		wm, cmd = wm.handleKeyMsg(msg)

	case spinner.TickMsg:
		wm.spinner, cmd = wm.spinner.Update(msg)

	case tickMsg:
		if wm.resultsList.FilterState() != list.Filtering {
			wm.animOffset++
			wm.delegate.offset = wm.animOffset
			wm.resultsList.SetDelegate(wm.delegate)
		}

		cmd = tickCmd()

	case watchingMsg:
		wm.base = msg.base
		wm.watching = true

	case passStartedMsg:
		wm.activePass = msg.id
		wm.activeEvents = msg.events

	case passDoneMsg:
		wm = wm.handlePassDone(msg)

	case reportsMsg:
		wm = wm.appendReports("initial", msg.reports)
	}

	return wm, cmd
}

func (wm watchModel) handlePassDone(msg passDoneMsg) watchModel {
	wm.passes++
	wm.activePass = ""
	wm.activeEvents = 0
	wm.lastTook = msg.took

	return wm.appendReports(msg.id, msg.reports)
}

func (wm watchModel) appendReports(pass string, reports []m.GenerationReport) watchModel {
	if len(reports) == 0 {
		return wm
	}

	fresh := make([]targetResult, 0, len(reports)+len(wm.results))
	for _, r := range reports {
		if r.Failed() {
			wm.failures++
		}

		fresh = append(fresh, newTargetResult(pass, r))
	}

	wm.results = append(fresh, wm.results...)
	if len(wm.results) > maxTargetResults {
		wm.results = wm.results[:maxTargetResults]
	}

	items := make([]list.Item, 0, len(wm.results))
	for _, r := range wm.results {
		items = append(items, r)
	}

	wm.resultsList.SetItems(items)

	return wm
}

func (wm watchModel) handleKeyMsg(msg tea.KeyMsg) (watchModel, tea.Cmd) {
	filtering := wm.resultsList.FilterState() == list.Filtering

	switch msg.String() {
	case "ctrl+c":
		return wm, tea.Quit
	case "q", "esc":
		if !filtering {
			return wm, tea.Quit
		}
	case "enter", " ":
		if !filtering {
			wm.toggleSelectedError()
			return wm, nil
		}
	}

	var cmd tea.Cmd

	wm.resultsList, cmd = wm.resultsList.Update(msg)

	if wm.resultsList.Index() != wm.lastSelected {
		wm.lastSelected = wm.resultsList.Index()
		wm.animOffset = 0
		wm.delegate.offset = 0
		wm.resultsList.SetDelegate(wm.delegate)
		wm.showError = false
		wm.selectedError = ""
	}

	return wm, cmd
}

func (wm *watchModel) toggleSelectedError() {
	result, ok := wm.resultsList.SelectedItem().(targetResult)
	if !ok || result.err == "" || (wm.showError && wm.selectedError == result.err) {
		wm.showError = false
		wm.selectedError = ""

		return
	}

	wm.showError = true
	wm.selectedError = result.err
}

func (wm watchModel) View() string {
	accentColor := lipgloss.Color("6")

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accentColor)

	title := titleStyle.Render("✨ co watch")

	status := "scanning…"
	switch {
	case wm.activePass != "":
		status = fmt.Sprintf("%s reconciling %s (%d events)", wm.spinner.View(), shortID(wm.activePass), wm.activeEvents)
	case wm.watching:
		status = fmt.Sprintf("%s watching %s", wm.spinner.View(), wm.base)
	}

	summary := summaryStyle.Render(fmt.Sprintf(
		"%s\nPasses: %s  •  Targets: %s  •  Failures: %s  •  Last pass: %s",
		status,
		accentStyle.Render(fmt.Sprintf("%d", wm.passes)),
		accentStyle.Render(fmt.Sprintf("%d", len(wm.results))),
		accentStyle.Render(fmt.Sprintf("%d", wm.failures)),
		accentStyle.Render(wm.lastTook.Round(time.Millisecond).String()),
	))

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(wm.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • / filter • enter error • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		wm.renderResultsBox(accentColor),
		footer,
	)
}

func (wm watchModel) renderResultsBox(accentColor lipgloss.Color) string {
	listWidth := wm.width - 4

	errorBox := ""
	if wm.showError {
		errorBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("1")).
			Padding(0, 1).
			Width(listWidth).
			Render(wm.selectedError)
	}

	listHeight := wm.height - 10 - lipgloss.Height(errorBox)
	if listHeight < 5 {
		listHeight = 5
	}

	wm.resultsList.SetHeight(listHeight)
	wm.resultsList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-10s  %-11s  %-9s  %s", "Pass", "Status", "Kind", "Target"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, headers, wm.resultsList.View()))

	if errorBox == "" {
		return box
	}

	return lipgloss.JoinVertical(lipgloss.Left, box, errorBox)
}

// renderReports draws reports without a running program, for one-shot runs.
func renderReports(reports []m.GenerationReport) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	targetStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	lines := []string{titleStyle.Render(fmt.Sprintf("✨ co generated %d target(s)", len(reports)))}

	for _, r := range reports {
		status := reportStatus(r)
		line := fmt.Sprintf("  %s  %s  %s",
			lipgloss.NewStyle().Foreground(statusColor(status)).Bold(true).Width(10).Render(status),
			targetStyle.Render(string(r.Target)),
			dimStyle.Render(fmt.Sprintf("%s, %d source(s), %s", r.Kind, len(r.Sources), r.Duration.Round(time.Millisecond))),
		)
		lines = append(lines, line)

		if r.Err != nil {
			lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render("      "+r.Err.Error()))
		}
	}

	return strings.Join(lines, "\n") + "\n"
}

func renderSources(sources []m.Source) string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	sourceStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	lines := []string{titleStyle.Render(fmt.Sprintf("✨ co found %d source(s)", len(sources)))}

	for _, s := range sources {
		lines = append(lines, sourceStyle.Render(string(s.Path)))

		for _, d := range s.Directives {
			scope := "file"
			if !d.IsFullFile() {
				scope = "fragment"
			}

			lines = append(lines, fmt.Sprintf("  → %s %s", d.TargetPath, dimStyle.Render("("+scope+")")))
		}
	}

	return strings.Join(lines, "\n") + "\n"
}
