// Package cli implements the interactive Gatekeeper console. It offers a
// small REPL with commands to register operators, log in, and check whether a
// user has admin rights.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/SteveJRobertson/gatekeeper/internal/client/client"
	"github.com/SteveJRobertson/gatekeeper/internal/client/config"
)

// apiClient is the server surface the CLI needs. *client.GRPCClient
// satisfies it; tests use a fake.
type apiClient interface {
	Ping(ctx context.Context) error
	Register(ctx context.Context, userName string, salt, verifier []byte, admin bool) error
	GetSalt(ctx context.Context, userName string) ([]byte, error)
	Login(ctx context.Context, userName string, key []byte) error
	Verify(ctx context.Context, userName string) (bool, string, error)
	Close() error
}

type App struct {
	config   *config.Config
	api      apiClient
	userName string
	loggedIn bool
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewGatekeeperClientService(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.userName
	}
	return "not logged in"
}
