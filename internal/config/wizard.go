package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to lorewiki! Let's configure your corpus.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Snapshot directory.
	snapPrompt := promptui.Prompt{
		Label:   "Simulation snapshot directory",
		Default: cfg.SnapshotDir,
		Validate: func(s string) error {
			if s == "" {
				return fmt.Errorf("directory is required")
			}
			return nil
		},
	}
	snapDir, err := snapPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("snapshot directory: %w", err)
	}
	cfg.SnapshotDir = snapDir
	if _, err := os.Stat(snapDir); os.IsNotExist(err) {
		fmt.Printf("Note: %s does not exist yet; it will be read on first build.\n", snapDir)
	}

	// 2. Site title.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.SiteTitle,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}
	cfg.SiteTitle = title

	// 3. Server port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP server port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("server port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 4. Semantic search.
	semanticPrompt := promptui.Select{
		Label: "Enable semantic search (requires an OpenAI API key)",
		Items: []string{"no", "yes"},
	}
	idx, _, err := semanticPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("semantic search selection: %w", err)
	}
	cfg.Search.Semantic = idx == 1

	if err := cfg.Save(path); err != nil {
		return nil, err
	}
	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
