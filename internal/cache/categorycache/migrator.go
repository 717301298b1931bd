package categorycache

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// runMigrations applies every embedded migration against db, creating
// the schema if it is not present yet.
func runMigrations(db *sql.DB, logger *slog.Logger) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{logger})
	if err := goose.SetDialect("sqlite"); err != nil {
		return fmt.Errorf("categorycache: set dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("categorycache: migrate: %w", err)
	}
	return nil
}

// gooseLogger adapts slog.Logger to goose's logger interface.
type gooseLogger struct {
	logger *slog.Logger
}

func (g gooseLogger) Fatal(v ...any) {
	g.logger.Error("goose fatal", "msg", fmt.Sprint(v...))
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.logger.Error("goose fatal", "msg", fmt.Sprintf(format, v...))
}

func (g gooseLogger) Print(v ...any) {
	g.logger.Info("goose", "msg", fmt.Sprint(v...))
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.logger.Info("goose", "msg", fmt.Sprintf(format, v...))
}
