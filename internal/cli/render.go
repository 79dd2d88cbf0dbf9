package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"devia/internal/devis"
)

var (
	ColorBorder = lipgloss.Color("#282726")
	ColorMuted  = lipgloss.Color("#6F6E69")
	ColorText   = lipgloss.Color("#FFFCF0")
	ColorAccent = lipgloss.Color("#3AA99F")
	ColorAmount = lipgloss.Color("#879A39")
	ColorWarn   = lipgloss.Color("#DA702C")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorText).Align(lipgloss.Center)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	valueStyle  = lipgloss.NewStyle().Foreground(ColorText)
	amountStyle = lipgloss.NewStyle().Foreground(ColorAmount)
	mutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	warnStyle   = lipgloss.NewStyle().Foreground(ColorWarn)
	dimStyle    = lipgloss.NewStyle().Foreground(ColorBorder)
)

// RenderTitle renders a centered title in a bordered box.
func RenderTitle(title string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(64).
		Align(lipgloss.Center).
		Padding(0, 1)
	return box.Render(titleStyle.Render(title))
}

// RenderLines renders the devis line table. Zero-quantity measured lines
// are highlighted so the user spots quantities the extraction could not
// determine.
func RenderLines(lines []devis.LineItem) string {
	headers := []string{"Désignation", "Qté", "PU", "Total"}
	rows := make([][]string, 0, len(lines))
	flags := make([]bool, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []string{
			l.Label,
			FormatQty(l.Qty, l.Unit),
			FormatEUR(l.UnitPrice),
			FormatEUR(l.Total()),
		})
		flags = append(flags, l.Qty.IsZero() && l.Unit != devis.UnitForfait)
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRule(&b, widths, "╭", "┬", "╮")

	b.WriteString(dimStyle.Render("│"))
	for i, h := range headers {
		b.WriteString(headerStyle.Render(pad(h, widths[i], i == 0)))
		b.WriteString(dimStyle.Render("│"))
	}
	b.WriteString("\n")
	writeRule(&b, widths, "├", "┼", "┤")

	for r, row := range rows {
		style := valueStyle
		if flags[r] {
			style = warnStyle
		}
		b.WriteString(dimStyle.Render("│"))
		for i, cell := range row {
			b.WriteString(style.Render(pad(cell, widths[i], i == 0)))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
	}

	writeRule(&b, widths, "╰", "┴", "╯")
	return strings.TrimSuffix(b.String(), "\n")
}

// RenderTotals renders the subtotal / VAT / total block.
func RenderTotals(t devis.Totals, vatRate int) string {
	label := mutedStyle
	rows := []string{
		fmt.Sprintf("%s %s", label.Render("Sous-total HT :"), valueStyle.Render(FormatEUR(t.Subtotal))),
		fmt.Sprintf("%s %s", label.Render(fmt.Sprintf("TVA (%d%%)     :", vatRate)), valueStyle.Render(FormatEUR(t.VAT))),
		fmt.Sprintf("%s %s", label.Render("Total TTC     :"), amountStyle.Render(FormatEUR(t.Total))),
	}
	return "  " + strings.Join(rows, "\n  ")
}

func pad(s string, width int, left bool) string {
	gap := width - lipgloss.Width(s)
	if gap < 0 {
		gap = 0
	}
	if left {
		return " " + s + strings.Repeat(" ", gap) + " "
	}
	return " " + strings.Repeat(" ", gap) + s + " "
}

func writeRule(b *strings.Builder, widths []int, open, mid, end string) {
	b.WriteString(dimStyle.Render(open))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < len(widths)-1 {
			b.WriteString(dimStyle.Render(mid))
		}
	}
	b.WriteString(dimStyle.Render(end))
	b.WriteString("\n")
}
