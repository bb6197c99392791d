package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	apiv1 "github.com/SanjoDeundiak/inspector-desktop/api/v1"
)

var (
	stderrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	systemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	readyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	exitStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("222"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// useColour reports whether f is an interactive terminal.
func useColour(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type printer struct {
	out    io.Writer
	colour bool
}

func newPrinter(f *os.File) *printer {
	return &printer{out: f, colour: useColour(f)}
}

func (p *printer) style(s lipgloss.Style, text string) string {
	if !p.colour {
		return text
	}
	return s.Render(text)
}

// event writes one event as a single line.
func (p *printer) event(e *apiv1.Event) {
	switch e.GetKind() {
	case apiv1.EventKind_EVENT_KIND_READY:
		fmt.Fprintf(p.out, "%s %s\n", p.style(readyStyle, "ready"), e.GetUrl())
	case apiv1.EventKind_EVENT_KIND_EXITED:
		code := "unknown"
		if e.ExitCode != nil {
			code = fmt.Sprint(e.GetExitCode())
		}
		msg := "exited with code " + code
		if e.GetPremature() {
			msg += " before becoming ready"
		}
		fmt.Fprintln(p.out, p.style(exitStyle, msg))
	default:
		switch e.GetStream() {
		case apiv1.Stream_STREAM_STDERR:
			fmt.Fprintln(p.out, p.style(stderrStyle, e.GetText()))
		case apiv1.Stream_STREAM_SYSTEM:
			fmt.Fprintln(p.out, p.style(systemStyle, "[system] "+e.GetText()))
		default:
			fmt.Fprintln(p.out, e.GetText())
		}
	}
}

func (p *printer) status(st *apiv1.StatusResponse) {
	if !st.Running {
		fmt.Fprintln(p.out, p.style(dimStyle, "Not running"))
		return
	}
	state := "starting"
	if st.Ready {
		state = p.style(readyStyle, "ready")
	}
	rows := [][2]string{
		{"STATE", state},
		{"SESSION", st.GetSessionId()},
		{"URL", st.GetUrl()},
		{"PORTS", fmt.Sprintf("client=%d server=%d", st.ClientPort, st.ServerPort)},
		{"PID", fmt.Sprint(st.Pid)},
	}
	if st.GetProfileId() != "" {
		rows = append(rows, [2]string{"PROFILE", st.GetProfileId()})
	}
	if st.StartTime != nil {
		started := st.StartTime.AsTime()
		rows = append(rows, [2]string{"STARTED", fmt.Sprintf("%s (%s)", humanize.Time(started), started.Local().Format(time.DateTime))})
	}
	for _, r := range rows {
		fmt.Fprintf(p.out, "%-8s %s\n", r[0], r[1])
	}
}

func (p *printer) profiles(profiles []*apiv1.Profile) {
	if len(profiles) == 0 {
		fmt.Fprintln(p.out, p.style(dimStyle, "No saved profiles"))
		return
	}
	rows := [][]string{{"ID", "NAME", "COMMAND", "DIRECTORY", "ENV", "LAST USED"}}
	for _, pr := range profiles {
		lastUsed := ""
		if pr.LastUsedAt != nil {
			lastUsed = humanize.Time(pr.LastUsedAt.AsTime())
		}
		rows = append(rows, []string{pr.GetId(), pr.Name, pr.Command, pr.WorkingDirectory, envSummary(pr.Env), lastUsed})
	}
	p.table(rows)
}

func (p *printer) sessions(sessions []*apiv1.Session) {
	if len(sessions) == 0 {
		fmt.Fprintln(p.out, p.style(dimStyle, "No sessions recorded"))
		return
	}
	rows := [][]string{{"SESSION", "STARTED", "DURATION", "PORTS", "EXIT", "COMMAND"}}
	for _, s := range sessions {
		started, duration := "", "running"
		if s.StartTime != nil {
			started = humanize.Time(s.StartTime.AsTime())
			if s.EndTime != nil {
				duration = s.EndTime.AsTime().Sub(s.StartTime.AsTime()).Round(time.Second).String()
			}
		}
		exit := ""
		switch {
		case s.ExitCode != nil:
			exit = fmt.Sprint(*s.ExitCode)
		case s.EndTime != nil:
			exit = "killed"
		}
		if s.Premature {
			exit += " (not ready)"
		}
		rows = append(rows, []string{s.GetSessionId(), started, duration, fmt.Sprintf("%d/%d", s.ClientPort, s.ServerPort), exit, s.Command})
	}
	p.table(rows)
}

func (p *printer) settings(s *apiv1.Settings) {
	fmt.Fprintf(p.out, "%-11s %s\n", "THEME", s.Theme)
	fmt.Fprintf(p.out, "%-11s %t\n", "AUTO START", s.AutoStart)
	fmt.Fprintf(p.out, "%-11s %s\n", "DEFAULT ENV", envSummary(s.DefaultEnvVars))
}

// table prints rows with the first row as a header.
func (p *printer) table(rows [][]string) {
	widths := make([]int, len(rows[0]))
	for _, r := range rows {
		for i, c := range r {
			widths[i] = maxInt(widths[i], len(c))
		}
	}
	for n, r := range rows {
		cells := make([]string, len(r))
		for i, c := range r {
			cells[i] = pad(c, widths[i])
		}
		line := strings.TrimRight(strings.Join(cells, "  "), " ")
		if n == 0 {
			line = p.style(dimStyle, line)
		}
		fmt.Fprintln(p.out, line)
	}
}

func envSummary(env map[string]string) string {
	if len(env) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ",")
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
