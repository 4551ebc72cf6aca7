// Package git provides a wrapper around the Git CLI commands used by gitclone.
// It handles remote ref probing, clone, checkout and HEAD resolution through
// a Runner, so callers can substitute the process-spawning layer in tests.
package git
