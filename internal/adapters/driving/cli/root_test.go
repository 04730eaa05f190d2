package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plume-labs/plume-cli/internal/adapters/driven/backup"
	"github.com/plume-labs/plume-cli/internal/adapters/driven/notify"
	"github.com/plume-labs/plume-cli/internal/adapters/driven/storage/memory"
	"github.com/plume-labs/plume-cli/internal/core/services"
)

// setupTestServices wires the command handlers to in-memory fakes.
// initServices is idempotent, so executing commands afterwards never touches
// the real data directory.
func setupTestServices(t *testing.T) *memory.ProjectStore {
	t.Helper()

	memStore := memory.NewProjectStore()
	snap, err := backup.NewFileSnapshotter(memStore, t.TempDir())
	require.NoError(t, err)

	store = memStore
	notifier = notify.NewConsoleNotifierWithWriters(new(bytes.Buffer), new(bytes.Buffer))
	snapshotter = snap
	projectService = services.NewProjectService(memStore)
	importer = services.NewImportOrchestrator(memStore, snap, notifier)

	// Flag values survive Execute calls, so start each test from defaults.
	resetFlags()

	t.Cleanup(func() {
		store = nil
		notifier = nil
		snapshotter = nil
		projectService = nil
		importer = nil
		configStore = nil
	})
	return memStore
}

func resetFlags() {
	verboseFlag = false
	dataDirFlag = ""
	projectOwnerFlag = ""
	importStrategyFlag = ""
	importNoBackupFlag = false
	importYesFlag = false
	importWatchFlag = ""
	editNewFlag = false
	editSectionFlag = "essentials"
	eventTimeFlag = ""
	eventDescFlag = ""
	eventLocationFlag = ""
	eventOwnerFlag = ""
	personNameFlag = ""
	personRoleFlag = ""
	personPhoneFlag = ""
	personNotifyFlag = ""
	shotTitleFlag = ""
	shotSubjectsFlag = nil
	shotMomentFlag = ""
	shotPriorityFlag = ""
}

// execute runs the root command with the given args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
