package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"scrapingbee-cli/cmd/scrapingbee/commands"
	"scrapingbee-cli/lib/osutil"
	"scrapingbee-cli/lib/telemetry"
)

func main() {
	ctx, stop := osutil.SignalContext(context.Background())
	defer stop()

	tel, err := telemetry.SetupFromEnv(ctx, "scrapingbee-cli")
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to setup telemetry:", err)
	}
	if tel.Enabled() {
		telemetry.InstrumentProcessStats(ctx, telemetry.SlogAPI{}, 5*time.Second)
	}

	code := commands.ExecuteContext(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := tel.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintln(os.Stderr, "failed to flush telemetry:", err)
	}

	if code != 0 {
		stop()
		os.Exit(code)
	}
}
