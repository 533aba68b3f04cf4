// Package tui implements an interactive terminal front-end for the producer
// engine: an editable request form plus a scrollback of rendered tracks, the
// way the pack's tracker editor drove pattern edits from a bubbletea Model.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/synthline/producer-engine/pkg/engine"
	"github.com/synthline/producer-engine/pkg/plan"
)

// Field identifies which request field is currently being edited.
type Field int

const (
	FieldArtists Field = iota
	FieldMood
	FieldTempo
	FieldUsage
	fieldCount
)

var fieldLabels = [fieldCount]string{
	FieldArtists: "artists",
	FieldMood:    "mood",
	FieldTempo:   "tempo_bpm",
	FieldUsage:   "usage_context",
}

// Take records one completed Generate call for the scrollback.
type Take struct {
	TrackID   string
	Title     string
	AudioPath string
	Err       string
}

// Model is the TUI's bubbletea model: the in-progress request form plus the
// history of takes generated so far.
type Model struct {
	Engine *engine.Engine

	Width, Height int

	Active Field
	Values [fieldCount]string

	Takes     []Take
	StatusMsg string
	Busy      bool
}

var (
	labelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Underline(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("219")).Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// NewModel builds a Model with sensible starting field values, wired against
// e for rendering.
func NewModel(e *engine.Engine) Model {
	m := Model{Engine: e}
	m.Values[FieldArtists] = "Depeche Mode"
	m.Values[FieldMood] = ""
	m.Values[FieldTempo] = ""
	m.Values[FieldUsage] = string(plan.UsageUnspecified)
	m.StatusMsg = "tab: next field  enter: generate  ctrl+c (or q on an empty field): quit"
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

type takeDoneMsg Take

func (m Model) generateCmd() tea.Cmd {
	artists := splitAndTrim(m.Values[FieldArtists])
	tempo, _ := strconv.ParseFloat(strings.TrimSpace(m.Values[FieldTempo]), 64)

	req := plan.MusicRequest{
		ArtistInfluences: artists,
		Mood:             strings.TrimSpace(m.Values[FieldMood]),
		TempoBPM:         tempo,
		UsageContext:     strings.TrimSpace(m.Values[FieldUsage]),
	}

	return func() tea.Msg {
		resp, err := m.Engine.Generate(context.Background(), req)
		if err != nil {
			return takeDoneMsg{Err: err.Error()}
		}
		return takeDoneMsg{
			TrackID:   resp.Blueprint.TrackID,
			Title:     resp.Blueprint.Title,
			AudioPath: resp.AudioPath,
		}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		return m, nil

	case takeDoneMsg:
		m.Busy = false
		m.Takes = append(m.Takes, Take(msg))
		if msg.Err != "" {
			m.StatusMsg = "generate failed: " + msg.Err
		} else {
			m.StatusMsg = "wrote " + msg.AudioPath
		}
		return m, nil

	case tea.KeyMsg:
		if m.Busy {
			return m, nil
		}
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyTab:
			m.Active = (m.Active + 1) % fieldCount
			return m, nil
		case tea.KeyShiftTab:
			m.Active = (m.Active - 1 + fieldCount) % fieldCount
			return m, nil
		case tea.KeyEnter:
			m.Busy = true
			m.StatusMsg = "generating..."
			return m, m.generateCmd()
		case tea.KeyBackspace:
			v := m.Values[m.Active]
			if len(v) > 0 {
				m.Values[m.Active] = v[:len(v)-1]
			}
			return m, nil
		case tea.KeyRunes:
			if string(msg.Runes) == "q" && m.Values[m.Active] == "" {
				return m, tea.Quit
			}
			m.Values[m.Active] += string(msg.Runes)
			return m, nil
		case tea.KeySpace:
			m.Values[m.Active] += " "
			return m, nil
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("producer-engine studio") + "\n\n")

	for f := Field(0); f < fieldCount; f++ {
		label := labelStyle.Render(fmt.Sprintf("%-14s", fieldLabels[f]+":"))
		value := m.Values[f]
		if f == m.Active {
			value = activeStyle.Render(value + "_")
		}
		b.WriteString(label + " " + value + "\n")
	}

	b.WriteString("\n" + dimStyle.Render(m.StatusMsg) + "\n\n")

	if len(m.Takes) > 0 {
		b.WriteString(labelStyle.Render("takes") + "\n")
		for i, t := range m.Takes {
			if t.Err != "" {
				b.WriteString(fmt.Sprintf("  %d. error: %s\n", i+1, t.Err))
				continue
			}
			b.WriteString(fmt.Sprintf("  %d. %s  %s  %s\n", i+1, t.TrackID, t.Title, t.AudioPath))
		}
	}

	return b.String()
}

func splitAndTrim(csv string) []string {
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
