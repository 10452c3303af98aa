package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/accounts/internal/accounts/app"
	"github.com/aussiebroadwan/accounts/internal/accounts/store/drivers/sqlite"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management commands",
	Long:  `Commands for managing the sqlite schema.`,
}

var dbMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openSQLite()
		if err != nil {
			return err
		}
		defer db.Close()

		version, _, err := db.SchemaVersion()
		if err != nil {
			return fmt.Errorf("failed to read schema version: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d\n", version)
		return nil
	},
}

var dbVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the applied schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := sqlite.NewStore(fmt.Sprintf("file:%s", cfg.DatabaseFile))
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		version, dirty, err := db.SchemaVersion()
		if err != nil {
			return fmt.Errorf("failed to read schema version: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "version=%d dirty=%t\n", version, dirty)
		return nil
	},
}

func init() {
	dbCmd.AddCommand(dbMigrateCmd)
	dbCmd.AddCommand(dbVersionCmd)
}

func openSQLite() (*sqlite.Store, error) {
	if cfg.DatabaseDriver != app.DriverSQLite {
		return nil, fmt.Errorf("db commands need DATABASE_DRIVER=%s, got %q", app.DriverSQLite, cfg.DatabaseDriver)
	}

	st, err := app.OpenStore(cfg)
	if err != nil {
		return nil, err
	}
	return st.(*sqlite.Store), nil
}
