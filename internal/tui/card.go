package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"shotwiz/internal/inspect"
	"shotwiz/pkg/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	cardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

const notAvailable = "N/A"

// InfoCard renders an ImageInfo for the terminal. Unstyled output is plain
// aligned text suitable for pipes.
func InfoCard(info models.ImageInfo, styled bool, now time.Time) string {
	plain := func(strs ...string) string { return strings.Join(strs, " ") }
	label, title, errText := plain, plain, plain
	if styled {
		label = labelStyle.Render
		title = titleStyle.Render
		errText = errorStyle.Render
	}

	rows := [][2]string{
		{"Path:", info.Path},
		{"Dimensions:", orNA(info.Dimensions)},
		{"Format:", orNA(info.Format)},
		{"Mode:", orNA(info.Mode)},
		{"Size:", orNA(info.Size)},
		{"Modified:", modified(info.Modified, now)},
	}
	if info.Created != "" {
		rows = append(rows, [2]string{"Created:", info.Created})
	}

	var b strings.Builder
	b.WriteString(title("Screenshot Information:"))
	b.WriteString("\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "  %s %s\n", label(fmt.Sprintf("%-11s", r[0])), r[1])
	}
	if !info.OK() {
		fmt.Fprintf(&b, "  %s %s\n", label(fmt.Sprintf("%-11s", "Error:")), errText(info.Error))
	}

	out := strings.TrimRight(b.String(), "\n")
	if styled {
		return cardStyle.Render(out)
	}
	return out
}

// Warning formats a non-fatal notice.
func Warning(msg string, styled bool) string {
	if styled {
		return warnStyle.Render("Warning:") + " " + msg
	}
	return "Warning: " + msg
}

func orNA(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}

func modified(v string, now time.Time) string {
	if v == "" {
		return notAvailable
	}
	ts, err := time.ParseInLocation(inspect.ModifiedLayout, v, time.Local)
	if err != nil {
		return v
	}
	return fmt.Sprintf("%s (%s)", v, humanize.RelTime(ts, now, "ago", "from now"))
}
