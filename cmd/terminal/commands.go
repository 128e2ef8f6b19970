package main

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"prwatch/internal/app"
	"prwatch/internal/menu"
	"prwatch/internal/util"
	"prwatch/internal/wire"
)

const menuTickInterval = 2 * time.Second

func initializeAppCmd(ctx context.Context, cfgPath string) tea.Cmd {
	return func() tea.Msg {
		application, _, err := wire.InitializeApp(ctx, cfgPath)
		if err != nil {
			return appInitializedMsg{err: err}
		}

		// The TUI is the frontend here, so only the poll loop runs in the
		// background. The control API stays off.
		application.StartBackground(ctx)
		return appInitializedMsg{app: application}
	}
}

func loadMenuCmd(application *app.App) tea.Cmd {
	return func() tea.Msg {
		m := menu.Build(application.Poller().PullRequests(), application.Markers())
		return menuMsg{menu: m}
	}
}

func menuTickCmd() tea.Cmd {
	return tea.Tick(menuTickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func refreshCmd(application *app.App) tea.Cmd {
	return func() tea.Msg {
		application.Poller().RefreshNow()
		m := menu.Build(application.Poller().PullRequests(), application.Markers())
		return menuMsg{menu: m}
	}
}

func markSeenCmd(application *app.App) tea.Cmd {
	return func() tea.Msg {
		application.Markers().MarkAllSeen()
		m := menu.Build(application.Poller().PullRequests(), application.Markers())
		return menuMsg{menu: m}
	}
}

func openCmd(application *app.App, url string) tea.Cmd {
	return func() tea.Msg {
		application.Markers().Acknowledge(url)
		if err := util.OpenBrowser(url); err != nil {
			return openedMsg{url: url, err: err}
		}
		return openedMsg{url: url}
	}
}
