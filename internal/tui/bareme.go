// Package tui provides the interactive surfaces of devia: the quote form
// and the barème (catalog price) editor.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"devia/internal/catalog"
	"devia/internal/cli"
	"devia/internal/config"
)

var (
	baremeTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(cli.ColorText)
	baremeCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(cli.ColorAccent)
	baremeLabelStyle  = lipgloss.NewStyle().Foreground(cli.ColorText)
	baremeMutedStyle  = lipgloss.NewStyle().Foreground(cli.ColorMuted)
	baremeEditedStyle = lipgloss.NewStyle().Foreground(cli.ColorWarn)
	baremeHelpStyle   = lipgloss.NewStyle().Foreground(cli.ColorMuted).MarginTop(1)
)

// BaremeModel is the Bubble Tea model of the catalog price editor. It
// edits the override layer of the config; the canonical catalog is never
// touched.
type BaremeModel struct {
	cfg     config.Config
	trade   string
	entries []catalog.Entry

	cursor  int
	editing bool
	input   textinput.Model
	status  string
	saveErr error
	done    bool
}

// NewBareme builds the editor for one trade's catalog.
func NewBareme(cfg config.Config, trade string) (BaremeModel, error) {
	cat, ok := catalog.ForTrade(trade)
	if !ok {
		return BaremeModel{}, fmt.Errorf("unknown trade %q", trade)
	}
	if cat.Len() == 0 {
		return BaremeModel{}, fmt.Errorf("trade %q has no catalog entries", trade)
	}

	return BaremeModel{
		cfg:     cfg,
		trade:   trade,
		entries: cat.Entries(),
	}, nil
}

func newPriceInput(value string) textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 12
	ti.Width = 12
	ti.Placeholder = "0.00"
	ti.SetValue(value)
	ti.Focus()
	return ti
}

// Init implements tea.Model.
func (m BaremeModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m BaremeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		return m.updateEditing(key)
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.done = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "enter", "e":
		m.editing = true
		m.status = ""
		m.input = newPriceInput(m.currentPrice().StringFixed(2))
		return m, textinput.Blink
	case "r":
		// Reset the selected entry to its canonical price.
		entry := m.entries[m.cursor]
		m.cfg.SetPriceOverride(m.trade, entry.Key, entry.UnitPrice)
		m.status = "prix d'origine restauré"
	case "s":
		if err := config.Save(m.cfg); err != nil {
			m.saveErr = err
			m.status = ""
		} else {
			m.saveErr = nil
			m.status = "barème enregistré dans " + config.ConfigPath()
		}
	}
	return m, nil
}

func (m BaremeModel) updateEditing(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.editing = false
		return m, nil
	case "enter":
		raw := strings.ReplaceAll(strings.TrimSpace(m.input.Value()), ",", ".")
		price, err := decimal.NewFromString(raw)
		if err != nil || price.IsNegative() {
			m.status = "prix invalide"
			m.editing = false
			return m, nil
		}
		entry := m.entries[m.cursor]
		m.cfg.SetPriceOverride(m.trade, entry.Key, price.Round(2))
		m.editing = false
		m.status = "modifié — 's' pour enregistrer"
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

// Config returns the possibly edited configuration once the editor quits.
func (m BaremeModel) Config() config.Config { return m.cfg }

// currentPrice resolves the effective price of the selected entry,
// override included.
func (m BaremeModel) currentPrice() decimal.Decimal {
	entry := m.entries[m.cursor]
	if p, ok := m.cfg.PriceOverrides()[entry.Key]; ok {
		return p
	}
	return entry.UnitPrice
}

// View implements tea.Model.
func (m BaremeModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(baremeTitleStyle.Render("Barème — " + m.trade))
	b.WriteString("\n\n")

	overrides := m.cfg.PriceOverrides()
	for i, entry := range m.entries {
		cursor := "  "
		if i == m.cursor {
			cursor = baremeCursorStyle.Render("> ")
		}

		price := entry.UnitPrice
		marker := "  "
		style := baremeLabelStyle
		if p, ok := overrides[entry.Key]; ok {
			price = p
			marker = baremeEditedStyle.Render(" *")
			style = baremeEditedStyle
		}

		line := fmt.Sprintf("%-42s %10s / %-7s%s",
			entry.Label, cli.FormatEUR(price), entry.Unit.Display(), marker)

		if i == m.cursor && m.editing {
			line = fmt.Sprintf("%-42s %s / %-7s", entry.Label, m.input.View(), entry.Unit.Display())
		}

		b.WriteString(cursor + style.Render(line) + "\n")
	}

	switch {
	case m.saveErr != nil:
		b.WriteString("\n" + baremeEditedStyle.Render("erreur : "+m.saveErr.Error()))
	case m.status != "":
		b.WriteString("\n" + baremeMutedStyle.Render(m.status))
	}

	b.WriteString(baremeHelpStyle.Render(
		"\n↑/↓ naviguer · entrée modifier · r rétablir · s enregistrer · q quitter"))
	return b.String()
}

// RunBareme runs the editor until the user quits and returns the edited
// configuration.
func RunBareme(cfg config.Config, trade string) (config.Config, error) {
	m, err := NewBareme(cfg, trade)
	if err != nil {
		return cfg, err
	}

	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return cfg, fmt.Errorf("running barème editor: %w", err)
	}
	if bm, ok := final.(BaremeModel); ok {
		return bm.Config(), nil
	}
	return cfg, nil
}
