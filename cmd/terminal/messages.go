package main

import (
	"time"

	"prwatch/internal/app"
	"prwatch/internal/menu"
)

// Indicates that the core application services have been initialized.
type appInitializedMsg struct {
	app *app.App
	err error
}

// Carries a fresh render of the menu from the poller's latest cycle.
type menuMsg struct {
	menu menu.Menu
}

// Fires periodically so the view follows the background poll loop.
type tickMsg time.Time

// Reports the outcome of opening a pull request in the browser.
type openedMsg struct {
	url string
	err error
}

// A generic error message for reporting failures from commands.
type errorMsg struct{ err error }

func (e errorMsg) Error() string {
	return e.err.Error()
}
