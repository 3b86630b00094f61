package cli

import (
	"context"
	"fmt"

	"github.com/civicwatch/civicwatch/internal/stores"
)

func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Enter display name (empty to use username)", a.out)
	if err != nil {
		return err
	}
	phone, err := GetSimpleText(a.reader, "Enter phone (optional)", a.out)
	if err != nil {
		return err
	}

	res := a.auth.Register(ctx, stores.RegisterInput{
		Username: username,
		Password: password,
		Name:     name,
		Phone:    phone,
	})
	if !res.Success {
		fmt.Fprintf(a.out, "Registration failed: %s\n", res.Message)
		return nil
	}

	fmt.Fprintf(a.out, "Registered and logged in as %s\n", username)
	fmt.Fprintln(a.out, "Note: accounts are kept in memory only and disappear on restart")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	res := a.auth.Login(ctx, username, password)
	if !res.Success {
		fmt.Fprintf(a.out, "Login failed: %s\n", res.Message)
		return nil
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", username)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	u, ok := a.auth.CurrentUser()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s (%s), role %s\n", u.Username, u.Name, u.Role)
	return nil
}
