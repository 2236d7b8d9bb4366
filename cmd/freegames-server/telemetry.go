package main

import (
	"context"
	"log/slog"
	"os"

	"freegames-backend/lib/serviceutil"
	"freegames-backend/lib/telemetry"
)

func InitTelemetry(ctx context.Context, verbose bool) {
	telemetry.InitSlog(verbose)

	if verbose {
		slog.DebugContext(ctx, "verbose logging enabled")
	}

	t, err := telemetry.SetupFromEnv(ctx, "freegames-server")
	if os.IsNotExist(err) {
		slog.Info("no telemetry.json5 found, exporters disabled")
		return
	}
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	go func() {
		<-ctx.Done()
		t.Shutdown(context.Background())
	}()
	telemetry.InstrumentPerfStats(ctx)
}
