package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/rakesh-arrepu/HHH-sub000/internal/api"
	"github.com/rakesh-arrepu/HHH-sub000/internal/cli"
	"github.com/rakesh-arrepu/HHH-sub000/internal/cli/system"
	"github.com/rakesh-arrepu/HHH-sub000/internal/constants"
	errs "github.com/rakesh-arrepu/HHH-sub000/internal/errors"
	"github.com/rakesh-arrepu/HHH-sub000/internal/logger"
	"github.com/rakesh-arrepu/HHH-sub000/internal/session"
)

var CLI struct {
	Version kong.VersionFlag
	Server  string `help:"HHH server base URL." env:"HHH_SERVER" default:"${server}"`
	Auth    string `help:"Credential transport (cookie or bearer)." env:"HHH_AUTH" default:"cookie" enum:"cookie,bearer"`
	Debug   bool   `help:"Enable debug logging." env:"HHH_DEBUG"`

	Login          cli.LoginCmd          `cmd:"" help:"Log in and store the session token."`
	Register       cli.RegisterCmd       `cmd:"" help:"Create an account."`
	Logout         cli.LogoutCmd         `cmd:"" help:"End the current session."`
	Whoami         cli.WhoamiCmd         `cmd:"" help:"Show the logged-in user."`
	ForgotPassword cli.ForgotPasswordCmd `cmd:"" name:"forgot-password" help:"Request a password reset email."`
	ResetPassword  cli.ResetPasswordCmd  `cmd:"" name:"reset-password" help:"Reset a password with a token."`

	Groups  cli.GroupsCmd  `cmd:"" help:"Manage groups and members."`
	Log     cli.LogCmd     `cmd:"" help:"Write a section entry for a day."`
	Day     cli.DayCmd     `cmd:"" help:"Show the entries for a day."`
	History cli.HistoryCmd `cmd:"" help:"Show the completion calendar for a month."`
	Streak  cli.StreakCmd  `cmd:"" help:"Show the current completion streak."`

	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run environment diagnostics."`
	Ver     system.VersionCmd `cmd:"" name:"version" help:"Print the version."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Health, happiness, hela: a shared daily journal"),
		kong.UsageOnError(),
		kong.Vars{
			"version": constants.Version,
			"server":  constants.DefaultServerURL,
		},
	)

	configDir := expandHome(constants.DefaultConfigPath)
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not set up logging: %v\n", err)
		os.Exit(1)
	}

	sess := session.NewManager()
	if ctx.Command() != "tui" {
		// The TUI handles expiry itself by dropping back to the login
		// form; printing here would corrupt the alt screen.
		sess.OnExpired(func() {
			fmt.Fprintln(os.Stderr, "Session expired. Run 'hhh login' to log in again.")
		})
	}

	var creds api.Credentials
	if CLI.Auth == "bearer" {
		creds = api.BearerCredentials{Source: sess}
	} else {
		creds = api.CookieCredentials{Source: sess}
	}

	client := api.New(api.Config{
		BaseURL: strings.TrimRight(CLI.Server, "/"),
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		Creds:   creds,
		Expiry:  sess,
	})

	appCtx := &cli.Context{
		API:       client,
		Session:   sess,
		ConfigDir: configDir,
	}

	if err := ctx.Run(appCtx); err != nil {
		errs.Fatal(err)
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~/"))
}
