package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/employeehub/internal/client/client"
	"github.com/dmitrijs2005/employeehub/internal/client/config"
)

type App struct {
	config *config.Config
	client client.Client
	reader *bufio.Reader
	out    io.Writer
	email  string
}

func NewApp(c *config.Config) (*App, error) {
	if c.ServerURL == "" {
		return nil, fmt.Errorf("server url is empty")
	}
	api := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	return &App{config: c, client: api, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) isLoggedIn() bool {
	return a.email != ""
}

func (a *App) getStatus() string {
	if a.email == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.email)
}

// Run checks that the server answers and then serves the REPL on the app's
// input until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	log.Println("Welcome to employeehub CLI (type 'help' for commands)")

	if err := a.client.Ping(ctx); err != nil {
		log.Printf("warning: %s is not reachable: %v", a.config.ServerURL, err)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	a.client.Logout()
}
