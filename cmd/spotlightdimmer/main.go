// SpotlightDimmer dims every display that does not contain the focused
// top-level window, spotlighting the active one.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/thomazmoura/spotlight-dimmer/engine"
	"github.com/thomazmoura/spotlight-dimmer/tray"
)

const (
	appName    = "SpotlightDimmer"
	appVersion = "1.0.0"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	debug := flag.Bool("debug", false, "Run with the version tagged +debug (the log level still comes from the configuration file)")
	version := flag.Bool("version", false, "Print version and exit")
	// Recognized so a logon-time autostart launch (which passes this flag,
	// see autostart.RegistryController.Enable) doesn't fail flag.Parse;
	// the process never shows anything beyond the tray icon regardless.
	flag.Bool("tray-only", false, "Start minimized to the system tray")
	flag.Parse()

	if *version {
		fmt.Printf("%s v%s\n", appName, appVersion)
		os.Exit(0)
	}

	appVer := appVersion
	if *debug {
		appVer = appVersion + "+debug"
	}

	eng := engine.New()

	errCh := make(chan error, 1)
	go func() {
		errCh <- eng.Start(engine.Options{
			AppVersion: appVer,
			ConfigPath: *configPath,
		})
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		eng.Stop()
	}()

	t := tray.New(eng.TrayHandlers())
	t.Run()

	eng.Stop()
	if err := <-errCh; err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps the four fatal startup sentinel errors engine.Start
// returns to distinct non-zero exit codes; anything else falls back to a
// generic failure code.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, engine.ErrMonitorEnumerationEmpty):
		return 2
	case errors.Is(err, engine.ErrWindowCreationFailed):
		return 3
	case errors.Is(err, engine.ErrHookRegistrationFailed):
		return 4
	case errors.Is(err, engine.ErrConfigPathUnavailable):
		return 5
	default:
		return 1
	}
}
