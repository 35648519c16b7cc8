package main

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"healthsurvey/internal/client"
	"healthsurvey/internal/config"
	"healthsurvey/internal/form"
)

func main() {
	cfg := config.Load()
	api := client.New(cfg.APIBaseURL)
	ctrl := form.New(api)

	// One attempt at startup; on failure the form opens with an empty
	// employee list and shows the notice.
	loadNotice := ctrl.LoadEmployees(context.Background())

	m := newModel(ctrl, api)
	if loadNotice.Kind != form.NoticeNone {
		m.notice = loadNotice
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
