package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"campusmind/internal/infrastructure/config"
	"campusmind/internal/infrastructure/database"
	"campusmind/internal/infrastructure/migration"
	"campusmind/internal/infrastructure/persistence/seeds"
	"campusmind/internal/shared/logger"
)

var (
	env      string
	seedPath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the directory from an org chart file",
		Long:  `Create departments, sections and the user hierarchy from a YAML org chart. Re-running is safe; existing records are kept.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&seedPath, "file", "f", "", "Path to the org chart file (default: from config)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, env); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	// Schema must exist before seeding.
	manager := migration.NewManager(env, cfg.Database.Driver)
	if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	path := seedPath
	if path == "" {
		path = cfg.Seed.Path
	}

	chart, err := seeds.LoadOrgChart(path)
	if err != nil {
		return fmt.Errorf("failed to load org chart: %w", err)
	}

	seeder := seeds.NewSeeder(database.Get(), log)
	if err := seeder.Seed(chart); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	fmt.Println("Seeding complete")
	return nil
}
