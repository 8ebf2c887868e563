package logging

import (
	"log/slog"
	"os"
)

// Setup installs a JSON stdout logger as the process default. Called before
// the database is up; once it is, main swaps in a tee that also feeds the
// DB sink.
func Setup() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
}
