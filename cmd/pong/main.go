package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/google/uuid"

	"pong/internal/ansii"
	"pong/internal/config"
	"pong/internal/game"
	"pong/internal/pong"
	"pong/internal/sdlwindow"
	"pong/internal/tcellscreen"
)

// SDL must stay on the thread that initialized it.
func init() {
	runtime.LockOSThread()
}

func main() {
	if len(os.Args) == 1 {
		config.LoadConfig("")
	} else {
		config.LoadConfig(os.Args[1])
	}
	cfg := config.Config

	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Println("ERROR: failed to open log file:", err)
		os.Exit(1)
	}

	field := pong.DefaultField
	rules := pong.DefaultRules(field)
	rules.ResetServe = cfg.ServeResets()

	fmt.Printf("INFO: initialization of %s display...\n", cfg.Display)
	display, closeDisplay, err := openDisplay(cfg, field)
	if err != nil {
		fmt.Println("ERROR:", err)
		closeLog()
		os.Exit(1)
	}

	loop := game.NewDisplayLoop(pong.NewGameState(field, rules), display)
	loop.ShowStats = cfg.ShowStats
	err = loop.Run()
	closeDisplay()

	// A failed frame ends the session the same way quitting does.
	if err != nil {
		fmt.Println("ERROR:", err)
	} else {
		fmt.Println("INFO: quitting...")
	}
	slog.Info("session ended", slog.Any("score", loop.State.Score), slog.Any("frames", loop.State.Frames))
	fmt.Println("INFO: OK.")
	closeLog()
}

// setupLogging points the default logger at the configured file and tags
// every record with a session id. Terminal displays always log to a file
// so records do not land on top of the frame.
func setupLogging(cfg config.Configuration) (func(), error) {
	slog.SetLogLoggerLevel(slog.Level(cfg.LogLevel))

	path := cfg.LogFile
	if path == "" && cfg.TerminalDisplay() {
		path = "pong.log"
	}

	closer := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		closer = func() { f.Close() }
		slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.Level(cfg.LogLevel)})))
	}

	slog.SetDefault(slog.Default().With("session", uuid.NewString()))
	return closer, nil
}

func openDisplay(cfg config.Configuration, field pong.Field) (game.Display, func(), error) {
	switch cfg.Display {
	case config.DisplayTcell:
		s, err := tcellscreen.Open(field)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil

	case config.DisplayANSI:
		t, err := ansii.Open(field)
		if err != nil {
			return nil, nil, err
		}
		return t, func() { t.Close() }, nil
	}

	w, err := sdlwindow.Open(field, sdlwindow.Options{
		Title:    "PONG",
		FontPath: cfg.FontPath,
		FontSize: cfg.FontSize,
	})
	if err != nil {
		return nil, nil, err
	}
	return w, w.Close, nil
}
