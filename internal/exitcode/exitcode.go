// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, invalid draft, bad ref).
	UserError = 1

	// AuthError indicates an auth/session error (rejected credentials,
	// expired token).
	AuthError = 2

	// BackendError indicates an API/network error.
	BackendError = 3
)
