package cli

import (
	"context"
	"fmt"
)

func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	form := loginForm{Username: username, Password: password}
	if err := a.forms.Validate(form); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	resp, err := a.session.Login(ctx, form.request())
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Signed in as %s\n", resp.User.Username)
	return nil
}

func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	form := registerForm{Username: username, Email: email, Password: password}
	if err := a.forms.Validate(form); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if _, err := a.session.Register(ctx, form.request()); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account created. Use 'login' to sign in.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	err := a.session.Logout(ctx)
	if err != nil {
		a.log.Warn(ctx, "logout reported an error", "error", err)
	}
	a.articles.Clear()
	a.notifications.Clear()
	fmt.Fprintln(a.out, "Signed out.")
	return err
}

func (a *App) Whoami(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		if _, err := a.session.FetchCurrentUser(ctx); err != nil {
			return err
		}
		u = a.session.CurrentUser()
	}
	if u == nil {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}

	fmt.Fprintf(a.out, "%s <%s>\n", u.Username, u.Email)
	if info, err := a.session.TokenInfo(); err == nil {
		fmt.Fprintf(a.out, "session expires %s\n", info.ExpiresAt.Format("2006-01-02 15:04"))
	}
	return nil
}
