package setup

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/vadiminshakov/igsession/config"
)

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(1, 2).
			Bold(true).
			MarginBottom(1)

	stepStyle = lipgloss.NewStyle().
			Foreground(special).
			Bold(true).
			MarginTop(1).
			MarginBottom(0)
)

// RunTUI collects the missing credentials interactively and fills them
// into cfg. Used when the environment does not provide them.
func RunTUI(cfg *config.Config) error {
	gateway := "demo"
	if !cfg.Demo {
		gateway = "live"
	}

	fmt.Print("\033[H\033[2J") // Clear screen
	fmt.Println(headerStyle.Render("IG SESSION SETUP"))
	fmt.Println(lipgloss.NewStyle().Foreground(subtle).Render("Credentials are kept in memory only.\n"))

	fmt.Println(stepStyle.Render("STEP 1: GATEWAY"))
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which gateway?").
				Options(
					huh.NewOption("Demo", "demo"),
					huh.NewOption("Live", "live"),
				).
				Value(&gateway),
		),
	).Run()
	if err != nil {
		return err
	}
	cfg.Demo = gateway == "demo"

	fmt.Print("\033[H\033[2J")
	fmt.Println(headerStyle.Render("IG SESSION SETUP"))
	fmt.Println(stepStyle.Render("STEP 2: CREDENTIALS"))
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Identifier").
				Description("Your IG username").
				Value(&cfg.Identifier).
				Validate(notEmpty("identifier")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.Password).
				Validate(notEmpty("password")),
			huh.NewInput().
				Title("API key").
				Description("From My IG > Settings > API keys").
				Value(&cfg.APIKey).
				Validate(notEmpty("api key")),
		),
	).Run()
	return err
}

func notEmpty(what string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s cannot be empty", what)
		}
		return nil
	}
}
