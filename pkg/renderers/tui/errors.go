package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (Ctrl+C) or declined to
	// correct a rejected form.
	ErrAborted = errors.New("tui: aborted")
	// ErrNoMounts is returned by Choose when there is nothing to pick from.
	ErrNoMounts = errors.New("tui: no forms to choose from")
	// ErrUnknownFormat is returned for an unsupported output format name.
	ErrUnknownFormat = errors.New("tui: unknown output format")
)
