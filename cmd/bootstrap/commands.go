package bootstrap

import (
	"fmt"
	"io"
	"strings"
	"time"

	"mediconnect/internal/converter"
	"mediconnect/internal/delivery/dto"
	"mediconnect/internal/infrastructure/database"
	"mediconnect/internal/repository"
	"mediconnect/internal/service"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the mediconnect command tree
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "mediconnect",
		Short:         "MediConnect appointment booking service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newSeedCommand(),
		newSlotsCommand(),
	)

	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, loc, err := LoadConfig()
			if err != nil {
				return err
			}

			app, err := New(cmd.Context(), cfg, loc)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			app.Run()
			return nil
		},
	}
}

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := LoadConfig()
			if err != nil {
				return err
			}
			return database.MigrateUp(cfg.DB)
		},
	}

	var steps int
	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1")
			}
			cfg, _, err := LoadConfig()
			if err != nil {
				return err
			}
			return database.MigrateDown(cfg.DB, steps)
		},
	}
	downCmd.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	migrateCmd.AddCommand(upCmd, downCmd)
	return migrateCmd
}

func newSeedCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the doctor directory from a YAML file into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := LoadConfig()
			if err != nil {
				return err
			}
			if file == "" {
				file = cfg.Directory.SeedFile
			}
			if file == "" {
				return fmt.Errorf("no seed file: pass --file or set DIRECTORY_SEED_FILE")
			}

			db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Timezone)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			n, err := database.SeedDoctors(cmd.Context(), db, repository.NewDoctorRepository(), file)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d doctors\n", n)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "YAML seed file (defaults to DIRECTORY_SEED_FILE)")
	return cmd
}

func newSlotsCommand() *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Print the 7-day slot window as patients would see it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, loc, err := LoadConfig()
			if err != nil {
				return err
			}

			now := time.Now()
			if at != "" {
				now, err = time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("--at must be RFC3339: %w", err)
				}
			}

			generator := service.NewSlotGenerator(cfg.Booking.UnavailableSlots, loc)
			writeSlotWindow(cmd.OutOrStdout(), converter.DayBucketsToResponses(generator.Generate(now)))
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "evaluate the window at this RFC3339 time instead of now")
	return cmd
}

// writeSlotWindow prints one line per day; unavailable slots are marked with '*'
func writeSlotWindow(w io.Writer, days []dto.DayBucketResponse) {
	for _, day := range days {
		labels := make([]string, len(day.Slots))
		for i, slot := range day.Slots {
			labels[i] = slot.Time
			if !slot.Available {
				labels[i] += "*"
			}
		}
		fmt.Fprintf(w, "%s %2d  %s  %s\n", day.Weekday, day.Day, day.Date, strings.Join(labels, ", "))
	}
}
