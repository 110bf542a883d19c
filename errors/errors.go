package errors

import "fmt"

// Fatal setup errors: these abort a run before any target is touched.
var (
	ErrPrivilege     = fmt.Errorf("actor lacks admin privilege over the group")
	ErrGroupNotFound = fmt.Errorf("group not found")
	ErrSessionDown   = fmt.Errorf("gateway session is not connected")
	ErrTokenExpired  = fmt.Errorf("session token expired")
)

// Per-target errors: captured into an Outcome, never propagated past the loop.
var (
	ErrPrimaryAction       = fmt.Errorf("primary action failed")
	ErrVerificationFailed  = fmt.Errorf("mutation not visible on re-query")
	ErrFallbackUnavailable = fmt.Errorf("no fallback configured")
	ErrFallbackAction      = fmt.Errorf("fallback action failed")
	ErrNotification        = fmt.Errorf("notification failed")
)

var (
	ErrEmptyTargets = fmt.Errorf("no targets have been found")
)
