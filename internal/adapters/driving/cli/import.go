package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/plume-labs/plume-cli/internal/core/domain"
	"github.com/plume-labs/plume-cli/internal/core/ports/driving"
	"github.com/plume-labs/plume-cli/internal/logger"
)

var (
	importStrategyFlag string
	importNoBackupFlag bool
	importYesFlag      bool
	importWatchFlag    string
)

var importCmd = &cobra.Command{
	Use:   "import <project-id> [file.json]",
	Short: "Import a planner export into a project",
	Long: `Import a JSON export from an external planning tool.

The file is an object mapping section names (timeline, people, photos) to
arrays of records. All sections are merged under one strategy:

  merge    keep existing records, add incoming ones that are not duplicates
  replace  discard existing records, keep the incoming set verbatim

With --watch, plume watches a directory and imports every JSON file dropped
into it until interrupted.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if importer == nil {
			return errors.New("import service not configured")
		}

		strategyName := importStrategyFlag
		if strategyName == "" && configStore != nil {
			strategyName = configStore.GetString(keyDefaultStrategy)
		}
		if strategyName == "" {
			strategyName = domain.StrategyMerge.String()
		}
		strategy, err := domain.ParseMergeStrategy(strategyName)
		if err != nil {
			return err
		}

		opts := driving.ImportOptions{
			Strategy: strategy,
			Backup:   !importNoBackupFlag,
		}

		if importWatchFlag != "" {
			return watchAndImport(cmd, args[0], importWatchFlag, opts)
		}

		if len(args) < 2 {
			return errors.New("a file argument is required unless --watch is set")
		}

		if strategy == domain.StrategyReplace && !importYesFlag {
			ok, err := confirmReplace(cmd)
			if err != nil {
				return err
			}
			if !ok {
				cmd.Println("Import cancelled.")
				return nil
			}
		}

		return importFile(cmd.Context(), cmd, args[0], args[1], opts)
	},
}

// importFile reads and parses one export file and runs the import, printing
// the per-section report.
func importFile(ctx context.Context, cmd *cobra.Command, projectID, path string, opts driving.ImportOptions) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	batch, err := domain.ParseImportBatch(data)
	if err != nil {
		return err
	}

	report, err := importer.Import(ctx, projectID, batch, opts)
	if err != nil {
		return err
	}

	printReport(cmd, report)
	return nil
}

func printReport(cmd *cobra.Command, report *driving.ImportReport) {
	cmd.Printf("Imported into %s (%s strategy)\n", report.ProjectID, report.Strategy)
	for _, section := range report.Sections {
		line := fmt.Sprintf("  %-10s %s", section.Name, section.Summary())
		if section.Dropped > 0 {
			line += fmt.Sprintf(" (%d invalid dropped)", section.Dropped)
		}
		cmd.Println(line)
	}
}

// confirmReplace asks before a destructive replace import. Non-interactive
// runs must pass --yes instead.
func confirmReplace(cmd *cobra.Command) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, errors.New("replace discards existing records; pass --yes to confirm")
	}

	cmd.Print("Replace discards existing records in the imported sections. Continue? [y/N] ")
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

// watchAndImport imports every JSON file written into dir until the context
// is cancelled. Files that fail to import are logged and skipped; the watch
// keeps running.
func watchAndImport(cmd *cobra.Command, projectID, dir string, opts driving.ImportOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	cmd.Printf("Watching %s for JSON exports (ctrl-c to stop)\n", dir)

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if filepath.Ext(event.Name) != ".json" {
				continue
			}
			logger.Info("Importing %s", event.Name)
			if err := importFile(ctx, cmd, projectID, event.Name, opts); err != nil {
				logger.Warn("Import of %s failed: %v", event.Name, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

func init() {
	importCmd.Flags().StringVar(&importStrategyFlag, "strategy", "", "merge strategy: merge or replace (defaults to config, then merge)")
	importCmd.Flags().BoolVar(&importNoBackupFlag, "no-backup", false, "skip the pre-import snapshot")
	importCmd.Flags().BoolVarP(&importYesFlag, "yes", "y", false, "skip the replace confirmation prompt")
	importCmd.Flags().StringVar(&importWatchFlag, "watch", "", "watch a directory and import every JSON file dropped into it")
	rootCmd.AddCommand(importCmd)
}
