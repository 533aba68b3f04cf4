// Command studio runs the interactive bubbletea front-end over the producer
// engine: an editable request form that renders a track per Enter keypress
// and keeps a scrollback of every take produced in the session.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/synthline/producer-engine/pkg/config"
	"github.com/synthline/producer-engine/pkg/engine"
	"github.com/synthline/producer-engine/pkg/tui"
)

func main() {
	cfg := config.Load()
	eng := engine.New(cfg)

	m := tui.NewModel(eng)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "studio: %v\n", err)
		os.Exit(1)
	}
}
