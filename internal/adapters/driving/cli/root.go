// Package cli provides the cobra command-line interface for plume.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plume-labs/plume-cli/internal/adapters/driven/backup"
	configfile "github.com/plume-labs/plume-cli/internal/adapters/driven/config/file"
	"github.com/plume-labs/plume-cli/internal/adapters/driven/notify"
	"github.com/plume-labs/plume-cli/internal/adapters/driven/storage/sqlite"
	"github.com/plume-labs/plume-cli/internal/core/ports/driven"
	"github.com/plume-labs/plume-cli/internal/core/ports/driving"
	"github.com/plume-labs/plume-cli/internal/core/services"
	"github.com/plume-labs/plume-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Config keys.
const (
	keyDataDir         = "storage.data_dir"
	keyBackupDir       = "backup.dir"
	keyDefaultOwner    = "project.owner"
	keyDefaultStrategy = "import.strategy"
)

// Wired services, shared by the command handlers.
var (
	configStore    driven.ConfigStore
	sqliteStore    *sqlite.Store
	store          driven.ProjectStore
	notifier       driven.Notifier
	snapshotter    driven.Snapshotter
	projectService driving.ProjectService
	importer       driving.Importer
)

var (
	verboseFlag bool
	dataDirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "plume",
	Short: "Plan a wedding production from your terminal",
	Long: `plume is a local-first planner for a single wedding production.

A project holds four sections - essential info, timeline, people and photo
requests. Edit one section at a time, or bulk-import planner exports with
merge or replace reconciliation.`,
	SilenceUsage:      true,
	PersistentPreRunE: initApp,
}

// Execute runs the root command.
func Execute() error {
	defer func() {
		if sqliteStore != nil {
			sqliteStore.Close()
		}
	}()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "override the data directory")
}

func initApp(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)
	return initServices()
}

// initServices wires the adapters and core services. Idempotent so tests can
// pre-wire fakes before executing commands.
func initServices() error {
	if store != nil {
		return nil
	}

	var err error
	configStore, err = configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	dataDir := dataDirFlag
	if dataDir == "" {
		dataDir = configStore.GetString(keyDataDir)
	}
	sqliteStore, err = sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	store = sqliteStore.ProjectStore()

	notifier = notify.NewConsoleNotifier()

	snapshotter, err = backup.NewFileSnapshotter(store, configStore.GetString(keyBackupDir))
	if err != nil {
		return fmt.Errorf("opening backup directory: %w", err)
	}

	projectService = services.NewProjectService(store)
	importer = services.NewImportOrchestrator(store, snapshotter, notifier)

	logger.Debug("Services initialised (db: %s)", sqliteStore.Path())
	return nil
}

// defaultOwner returns the configured owner identifier, falling back to "me".
func defaultOwner() string {
	if configStore != nil {
		if owner := configStore.GetString(keyDefaultOwner); owner != "" {
			return owner
		}
	}
	return "me"
}
