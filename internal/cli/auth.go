package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/rakesh-arrepu/HHH-sub000/internal/logger"
	"github.com/rakesh-arrepu/HHH-sub000/internal/session"
)

type LoginCmd struct {
	Email    string `help:"Account email." short:"e"`
	Password string `help:"Account password (prompted when omitted)." short:"p"`
}

func (c *LoginCmd) Run(ctx *Context) error {
	email, password := c.Email, c.Password
	if email == "" || password == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Email").Value(&email),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	user, token, err := ctx.API.Login(context.Background(), email, password)
	if err != nil {
		return err
	}
	if token == "" {
		return fmt.Errorf("server did not issue a session token")
	}
	if err := ctx.Session.SetToken(token); err != nil {
		logger.Warn("session token not persisted", "error", err)
		fmt.Println("Warning: session token could not be stored in the OS keyring; you will need to log in again next time.")
	}

	fmt.Printf("Logged in as %s <%s>\n", user.Name, user.Email)
	return nil
}

type RegisterCmd struct {
	Email    string `help:"Account email." short:"e"`
	Name     string `help:"Display name." short:"n"`
	Password string `help:"Account password (prompted when omitted)." short:"p"`
}

func (c *RegisterCmd) Run(ctx *Context) error {
	email, name, password := c.Email, c.Name, c.Password
	if email == "" || name == "" || password == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Email").Value(&email),
			huh.NewInput().Title("Name").Value(&name),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&password),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}

	user, token, err := ctx.API.Register(context.Background(), email, name, password)
	if err != nil {
		return err
	}
	if token != "" {
		if err := ctx.Session.SetToken(token); err != nil {
			logger.Warn("session token not persisted", "error", err)
		}
	}

	fmt.Printf("Registered %s <%s>\n", user.Name, user.Email)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if err := ctx.API.Logout(context.Background()); err != nil {
		// The local session is cleared regardless; the server-side
		// session expires on its own.
		logger.Warn("server logout failed", "error", err)
	}
	if err := ctx.Session.Clear(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	if ctx.Session.Token() == "" {
		return session.ErrNotLoggedIn
	}
	user, err := ctx.API.Me(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s> (id %d)\n", user.Name, user.Email, user.ID)
	return nil
}

type ForgotPasswordCmd struct {
	Email string `arg:"" help:"Account email."`
}

func (c *ForgotPasswordCmd) Run(ctx *Context) error {
	if err := ctx.API.ForgotPassword(context.Background(), c.Email); err != nil {
		return err
	}
	fmt.Println("If the email is registered, a reset link has been sent.")
	return nil
}

type ResetPasswordCmd struct {
	Token    string `arg:"" help:"Reset token from the email."`
	Password string `help:"New password (prompted when omitted)." short:"p"`
}

func (c *ResetPasswordCmd) Run(ctx *Context) error {
	password := c.Password
	if password == "" {
		form := huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("New password").EchoMode(huh.EchoModePassword).Value(&password),
		))
		if err := form.Run(); err != nil {
			return err
		}
	}
	if err := ctx.API.ResetPassword(context.Background(), c.Token, password); err != nil {
		return err
	}
	fmt.Println("Password reset. Log in with the new password.")
	return nil
}
