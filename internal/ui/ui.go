package ui

import (
	"os"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/hashicorp/go-hclog"
)

// Run launches the Gio UI and blocks until the window closes.
func Run(state *AppState, logger hclog.Logger) error {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if state == nil {
		state = NewState(nil, nil, logger)
	}

	go func() {
		w := new(app.Window)
		w.Option(app.Title("Segbar"), app.Size(unit.Dp(1024), unit.Dp(760)))
		ui := New(w, state, logger)
		if err := ui.Run(); err != nil {
			logger.Error("window closed with error", "error", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()

	app.Main()
	return nil
}
