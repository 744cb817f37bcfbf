package command

import (
	"fmt"

	"github.com/pkg/browser"
	"github.com/urfave/cli/v2"
)

const (
	dashboardURL = "https://sleuren.com/dashboard"
	signupURL    = "https://sleuren.com"
)

// openURL opens a page in the user's browser.
var openURL = browser.OpenURL

// DashboardCommand returns the dashboard command.
func DashboardCommand() *cli.Command {
	return &cli.Command{
		Name:   "dashboard",
		Usage:  "Open the Sleuren dashboard in the browser",
		Action: openAction(dashboardURL),
	}
}

// SignupCommand returns the signup command.
func SignupCommand() *cli.Command {
	return &cli.Command{
		Name:   "signup",
		Usage:  "Open the Sleuren sign up page in the browser",
		Action: openAction(signupURL),
	}
}

func openAction(url string) cli.ActionFunc {
	return func(c *cli.Context) error {
		if err := openURL(url); err != nil {
			return fmt.Errorf("open %s: %w", url, err)
		}
		return nil
	}
}
