package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/surfcheck/surf-terminal/internal/catalog"
	"github.com/surfcheck/surf-terminal/internal/forecast"
	"github.com/surfcheck/surf-terminal/internal/spots"
	"github.com/surfcheck/surf-terminal/internal/ui"
)

func main() {
	dbPath := flag.String("db", spots.DefaultDBPath(), "Path to the surf spots database")
	memory := flag.Bool("memory", false, "Serve the bundled spot catalog from memory instead of the database")
	flag.Parse()

	var source catalog.SpotSource
	if *memory {
		source = spots.SeedSource{}
	} else {
		repo := spots.NewRepository(*dbPath)
		defer repo.Close()
		source = repo
	}

	store := catalog.NewStore(source, forecast.NewGenerator(nil))

	p := tea.NewProgram(ui.NewModel(store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
