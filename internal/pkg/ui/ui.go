// Package ui renders terminal output for the status and notify commands.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	accent = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	good   = lipgloss.NewStyle().Foreground(lipgloss.Color("76"))
	muted  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	border = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

func Accent(s string) string { return accent.Render(s) }
func Muted(s string) string  { return muted.Render(s) }

// Status renders s green when active, dimmed otherwise.
func Status(active bool, s string) string {
	if active {
		return good.Render(s)
	}
	return muted.Render(s)
}

func Bool(v bool) string {
	return Status(v, fmt.Sprint(v))
}

func SuccessMsg(format string, a ...any) string {
	return good.Render("✓") + " " + fmt.Sprintf(format, a...)
}

// Pair is one KeyValues line.
type Pair struct {
	key   string
	value string
}

func KV(key, value string) Pair {
	return Pair{key: key, value: value}
}

// KeyValues renders "key: value" lines with the values aligned.
func KeyValues(indent string, pairs ...Pair) string {
	width := 0
	for _, p := range pairs {
		width = max(width, lipgloss.Width(p.key)+1)
	}
	label := muted.Width(width + 1)

	var sb strings.Builder
	for _, p := range pairs {
		sb.WriteString(indent + label.Render(p.key+":") + p.value + "\n")
	}
	return sb.String()
}

// Table renders rows under a bold header inside a rounded border.
func Table(headers []string, rows [][]string) string {
	cell := lipgloss.NewStyle().Padding(0, 1)
	header := cell.Foreground(lipgloss.Color("99")).Bold(true)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}
