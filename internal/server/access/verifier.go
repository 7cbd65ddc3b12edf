// Package access holds the admin permission check at the heart of Gatekeeper:
// resolve a username to a status code through a DetailsChecker, grant on
// admin, otherwise deny and route a fixed message to an ErrorReporter.
package access

import "context"

// DetailsChecker resolves a username to a Status. Implementations decide what
// "recognised" means (database lookup, directory query, static table). The
// error return carries transport failure only, not a business outcome.
type DetailsChecker interface {
	Check(ctx context.Context, username string) (Status, error)
}

// ErrorReporter receives the human-readable message for a denied check.
// Implementations display or log it; Verifier does not care which.
type ErrorReporter interface {
	Report(ctx context.Context, message string)
}

// Verifier composes a DetailsChecker and an ErrorReporter. It is stateless
// and safe for concurrent use as long as its collaborators are.
type Verifier struct {
	checker  DetailsChecker
	reporter ErrorReporter
}

// NewVerifier wires the two collaborators. Both are required.
func NewVerifier(checker DetailsChecker, reporter ErrorReporter) *Verifier {
	return &Verifier{checker: checker, reporter: reporter}
}

// Verify checks the given username exactly once against the DetailsChecker
// and returns true only for StatusAdmin. Recognised non-admins and unknown
// users are denied with exactly one report each; any other status code is
// denied silently. A checker failure denies without reporting and is
// propagated to the caller.
func (v *Verifier) Verify(ctx context.Context, username string) (bool, error) {
	status, err := v.checker.Check(ctx, username)
	if err != nil {
		return false, err
	}

	switch status {
	case StatusAdmin:
		return true, nil
	case StatusNotAdmin:
		v.reporter.Report(ctx, MsgNoAdminRights)
		return false, nil
	case StatusUnknownUser:
		v.reporter.Report(ctx, MsgUserNotRecognised)
		return false, nil
	default:
		// Unrecognised status codes deny without a message.
		return false, nil
	}
}
