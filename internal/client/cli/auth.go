package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/SteveJRobertson/gatekeeper/internal/common"
	"github.com/SteveJRobertson/gatekeeper/internal/cryptox"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username, password, and admin flag and creates the
// account. The server never sees the password: a fresh salt is generated and
// only the derived verifier is sent.
//
// The password byte slice is securely wiped before returning. Any I/O or
// service error is returned unchanged.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	adminAnswer, err := getSimpleText(a.reader, "Admin account? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	admin := strings.EqualFold(adminAnswer, "y")

	salt := cryptox.GenerateSalt()
	verifier := cryptox.VerifierFromPassword(password, salt)

	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	if err := a.api.Register(ctx, userName, salt, verifier, admin); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Success!")
	return nil
}

// Login prompts for credentials and authenticates against the server: it
// fetches the user's salt, derives the verifier candidate locally, and sends
// only the candidate. On success the client's token pair is stored inside the
// gRPC wrapper and the session is marked logged in.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	salt, err := a.api.GetSalt(ctx, userName)
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	candidate := cryptox.VerifierFromPassword(password, salt)

	if err := a.api.Login(ctx, userName, candidate); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.userName = userName
	a.loggedIn = true
	log.Printf("Login successful")
	return nil
}
