package logging

import (
	"log/slog"
	"os"
)

// Level picks the stdout log level for the environment: debug in
// development, info everywhere else.
func Level(appEnv string) slog.Level {
	if appEnv == "development" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Setup installs a JSON logger on stdout as the process default.
func Setup(appEnv string) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: Level(appEnv),
	})
	slog.SetDefault(slog.New(handler))
}
