package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/dmitrijs2005/employeehub/internal/client/client"
	"github.com/dmitrijs2005/employeehub/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for a name, email and password and creates an account.
// Signup does not log in; the password is wiped before returning.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.Signup(ctx, name, email, password); err != nil {
		log.Printf("Signup unsuccessful: %v", err)
		return err
	}

	fmt.Fprintln(a.out, "Success! You can login now.")
	return nil
}

// Login prompts for credentials and keeps the session on success.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.Login(ctx, email, password); err != nil {
		switch {
		case errors.Is(err, client.ErrNotFound):
			log.Printf("Login unsuccessful: no account for %s", email)
		case errors.Is(err, client.ErrUnavailable):
			log.Printf("Login unsuccessful: server unavailable")
		default:
			log.Printf("Login unsuccessful: %v", err)
		}
		return err
	}

	a.email = email
	log.Printf("Login successful")
	return nil
}

// Logout forgets the session token.
func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()
	a.email = ""
	return nil
}

// Whoami prints the identity the server sees for the current token.
func (a *App) Whoami(ctx context.Context) error {
	id, err := a.client.Whoami(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			// token expired
			a.Logout(ctx)
		}
		log.Printf("error: %v", err)
		return err
	}
	fmt.Fprintf(a.out, "%s (%s)\n", id.Email, id.ID)
	return nil
}
