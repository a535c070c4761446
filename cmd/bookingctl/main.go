package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/wolfman30/slot-booking/internal/cli"
	appconfig "github.com/wolfman30/slot-booking/internal/config"
	"github.com/wolfman30/slot-booking/internal/scriptendpoint"
	"github.com/wolfman30/slot-booking/pkg/logging"
)

var CLI struct {
	Version  kong.VersionFlag
	LogLevel string `help:"Log level (debug, info, warn, error)." default:"warn" env:"LOG_LEVEL"`

	Options cli.OptionsCmd `cmd:"" help:"List selectable cancellation start times."`
	Cancel  cli.CancelCmd  `cmd:"" help:"Request cancellation of a reservation."`
	Reserve cli.ReserveCmd `cmd:"" help:"Reserve a time slot."`
}

func main() {
	// Load .env file if present
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name("bookingctl"),
		kong.Description("Reserve and cancel appointment slots from the terminal"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	cfg := appconfig.Load()
	logger := logging.NewWithWriter(os.Stderr, CLI.LogLevel, "text")
	client := scriptendpoint.NewClient(scriptendpoint.Config{
		ReservationURL:  cfg.ReservationEndpointURL,
		CancellationURL: cfg.CancellationEndpointURL,
		Timeout:         cfg.EndpointTimeout,
	}, logger, nil)

	appCtx := &cli.Context{
		Sender:   client,
		Client:   client,
		Location: cfg.Location(),
		Logger:   logger,
		Out:      os.Stdout,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
