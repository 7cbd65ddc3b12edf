package access

// Status is the outcome code a DetailsChecker resolves a username to.
type Status int

const (
	// StatusAdmin means the user is a recognised administrator.
	StatusAdmin Status = 1
	// StatusNotAdmin means the user is recognised but has no admin rights.
	StatusNotAdmin Status = 0
	// StatusUnknownUser means the user details could not be matched.
	StatusUnknownUser Status = -1
)

// Messages passed to the ErrorReporter on the denied paths. Fixed strings,
// never interpolated with the username.
const (
	MsgNoAdminRights     = "You do not have admin rights to this system"
	MsgUserNotRecognised = "User details not recognised"
)
