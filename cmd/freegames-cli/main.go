package main

import (
	"context"

	"freegames-backend/cmd/freegames-cli/commands"
	"freegames-backend/lib/telemetry"
)

func main() {
	telemetry.InitSlog(true)
	commands.ExecuteContext(context.Background())
}
