// Package main starts the CmdKeeper terminal client.
package main

import (
	"cmp"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atinyakov/CmdKeeper/internal/client/api"
	"github.com/atinyakov/CmdKeeper/internal/client/ui"
	"github.com/atinyakov/CmdKeeper/internal/config"
	"github.com/atinyakov/CmdKeeper/internal/logger"
)

var (
	version   string
	buildDate string
)

func main() {
	options := config.Parse()

	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Warn"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}

	client := api.New(options.APIBaseURL)
	app := ui.NewApp(client, log.Log)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}
