package migrate

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/goodmem/goodmem/internal/config"
	"github.com/goodmem/goodmem/internal/store/postgres"
	"github.com/urfave/cli/v3"
)

// Command returns the migrate sub-command.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Run database migrations and exit",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "db-url",
				Sources:  cli.EnvVars("GOODMEM_DB_URL"),
				Usage:    "PostgreSQL connection URL",
				Required: true,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.DefaultConfig()
			cfg.DBURL = cmd.String("db-url")
			ctx = config.WithContext(ctx, &cfg)

			log.Info("Running migrations...")
			if err := postgres.Migrate(ctx, &cfg); err != nil {
				return err
			}
			log.Info("All migrations completed successfully")
			return nil
		},
	}
}
