package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// searchFieldChoices are the haystack presets offered by the wizard.
var searchFieldChoices = []struct {
	Label  string
	Fields []string
}{
	{Label: "title, author, description", Fields: []string{"title", "author", "desc"}},
	{Label: "title, author, description, type", Fields: []string{"title", "author", "desc", "type"}},
	{Label: "title, author, description, type, level", Fields: []string{"title", "author", "desc", "type", "level"}},
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to refhub! Let's configure your reference hubs.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site title.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.SiteTitle,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}
	cfg.SiteTitle = title

	// 2. Hubs directory.
	hubsPrompt := promptui.Prompt{
		Label:   "Directory containing hub catalogs",
		Default: cfg.HubsDir,
	}
	hubsDir, err := hubsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("hubs dir: %w", err)
	}
	cfg.HubsDir = hubsDir

	// 3. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the static site",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	// 4. Section change behaviour.
	clearPrompt := promptui.Select{
		Label: "When a tab is selected",
		Items: []string{
			"keep the current search",
			"clear the search",
		},
	}
	clearIdx, _, err := clearPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("section change: %w", err)
	}
	cfg.Search.ClearOnSectionChange = clearIdx == 1

	// 5. Search fields.
	labels := make([]string, len(searchFieldChoices))
	for i, c := range searchFieldChoices {
		labels[i] = c.Label
	}
	fieldsPrompt := promptui.Select{
		Label: "Search matches on",
		Items: labels,
	}
	fieldsIdx, _, err := fieldsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("search fields: %w", err)
	}
	cfg.Search.Fields = searchFieldChoices[fieldsIdx].Fields

	// 6. Server port.
	portPrompt := promptui.Prompt{
		Label:    "Server port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("server port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(strings.TrimSpace(portStr))

	// 7. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	cfg.Exclude = append(cfg.Exclude, splitAndTrim(excludeStr)...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
