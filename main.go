package main

import (
	"fmt"
	"os"
	"path/filepath"

	"metamask-connect-tui/config"

	tea "github.com/charmbracelet/bubbletea"
)

// -------------------- MAIN --------------------

func main() {
	homeDir, _ := os.UserHomeDir()
	configPath := filepath.Join(homeDir, ".metamask-connect.json")

	m := newModel(config.LoadOrCreate(configPath), configPath)
	p := tea.NewProgram(&m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
