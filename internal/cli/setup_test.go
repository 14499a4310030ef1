package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/jakoblorz/rnsetup/internal/filesystem"
	"github.com/jakoblorz/rnsetup/internal/installer"
	"github.com/jakoblorz/rnsetup/internal/models"
	"github.com/jakoblorz/rnsetup/internal/tui"
	"github.com/jakoblorz/rnsetup/internal/workspace"
	"github.com/stretchr/testify/require"
)

const testAppRoot = "/app"

var allCommands = []string{
	"yarn install",
	"npx react-native-asset",
	"bundle install",
	"bundle exec pod install",
}

type setupRun struct {
	fs       *filesystem.MockFileSystem
	runner   *installer.MockRunner
	prompter *tui.StaticPrompter
	terminal bool

	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newSetupRun(t *testing.T, setup func(*workspace.WorkspaceBuilder)) *setupRun {
	t.Helper()

	wb := workspace.NewWorkspaceBuilder(testAppRoot)
	if setup != nil {
		setup(wb)
	}

	return &setupRun{
		fs:       wb.Build(),
		runner:   installer.NewMockRunner(),
		prompter: &tui.StaticPrompter{},
	}
}

func (r *setupRun) execute(args ...string) error {
	cmd := newSetupCommand(r.fs, r.runner, r.prompter, func() bool { return r.terminal })
	cmd.SetOut(&r.stdout)
	cmd.SetErr(&r.stderr)
	return executeArgs(cmd, append([]string{"--root", testAppRoot}, args...))
}

func withApp(wb *workspace.WorkspaceBuilder) {
	wb.AddApp("OldApp", "com.old.app")
}

func TestSetup_NoFlagsOnlyInstalls(t *testing.T) {
	run := newSetupRun(t, withApp)

	require.NoError(t, run.execute())

	require.Equal(t, allCommands, run.runner.Commands())
	require.Equal(t, []installer.Call{
		{Dir: "/app", Command: "yarn install"},
		{Dir: "/app", Command: "npx react-native-asset"},
		{Dir: "/app/ios", Command: "bundle install"},
		{Dir: "/app/ios", Command: "bundle exec pod install"},
	}, run.runner.Calls)
	require.Zero(t, run.fs.TotalWrites())
	require.True(t, run.fs.IsDir("/app/ios/OldApp"))
	require.NotContains(t, run.stderr.String(), "required for renaming")

	snaps.MatchSnapshot(t, run.stdout.String())
}

func TestSetup_PartialFlagsWarnAndInstall(t *testing.T) {
	for _, args := range [][]string{
		{"--project-name", "NewApp"},
		{"--bundle-name", "com.acme.newapp"},
	} {
		run := newSetupRun(t, withApp)

		require.NoError(t, run.execute(args...))

		require.Contains(t, run.stderr.String(), "Both --project-name and --bundle-name are required for renaming")
		require.Zero(t, run.fs.TotalWrites())
		require.True(t, run.fs.IsDir("/app/ios/OldApp"))
		require.Equal(t, allCommands, run.runner.Commands())
	}
}

func TestSetup_RenameThenInstall(t *testing.T) {
	run := newSetupRun(t, withApp)

	require.NoError(t, run.execute("--project-name", "NewApp", "--bundle-name", "com.acme.newapp"))

	require.True(t, run.fs.IsDir("/app/ios/NewApp"))
	require.True(t, run.fs.IsDir("/app/ios/NewApp.xcodeproj"))
	require.False(t, run.fs.Exists("/app/ios/OldApp"))
	require.False(t, run.fs.Exists("/app/ios/Pods"))

	plist, err := run.fs.ReadFile("/app/ios/NewApp/Info.plist")
	require.NoError(t, err)
	require.Contains(t, string(plist), "<string>com.acme.newapp</string>")

	require.Equal(t, allCommands, run.runner.Commands())
	require.Contains(t, run.stderr.String(), "renaming iOS project")

	snaps.MatchSnapshot(t, run.stdout.String())
}

func TestSetup_UnknownFlagsAndArgsIgnored(t *testing.T) {
	run := newSetupRun(t, withApp)

	err := run.execute("--foo", "bar", "stray", "--project-name", "NewApp", "--flavor=dev", "--bundle-name", "com.acme.newapp")
	require.NoError(t, err)

	require.True(t, run.fs.IsDir("/app/ios/NewApp"))
	require.Equal(t, allCommands, run.runner.Commands())
}

func TestSetup_TrailingFlagWithoutValueIsIgnored(t *testing.T) {
	for _, args := range [][]string{
		{"--bundle-name", "com.acme.newapp", "--project-name"},
		{"--project-name", "NewApp", "--bundle-name"},
	} {
		run := newSetupRun(t, withApp)

		require.NoError(t, run.execute(args...))

		require.Contains(t, run.stderr.String(), "Both --project-name and --bundle-name are required for renaming")
		require.Zero(t, run.fs.TotalWrites())
		require.True(t, run.fs.IsDir("/app/ios/OldApp"))
		require.Equal(t, allCommands, run.runner.Commands())
	}
}

func TestSetup_OnlyDanglingFlagRunsSetup(t *testing.T) {
	run := newSetupRun(t, withApp)

	require.NoError(t, run.execute("--project-name"))

	require.NotContains(t, run.stderr.String(), "required for renaming")
	require.Equal(t, allCommands, run.runner.Commands())
}

func TestTrimDanglingNameFlags(t *testing.T) {
	require.Equal(t, []string{"--root", "/app"}, trimDanglingNameFlags([]string{"--root", "/app", "--bundle-name"}))
	require.Equal(t, []string{"--project-name", "--bundle-name"}, trimDanglingNameFlags([]string{"--project-name", "--bundle-name"}))
	require.Equal(t, []string{"--project-name", "NewApp"}, trimDanglingNameFlags([]string{"--project-name", "NewApp", "--bundle-name"}))
	require.Equal(t, []string{"--verbose"}, trimDanglingNameFlags([]string{"--verbose"}))
	require.Empty(t, trimDanglingNameFlags(nil))
}

func TestSetup_InvalidBundleIDFailsBeforeMutation(t *testing.T) {
	run := newSetupRun(t, withApp)

	err := run.execute("--project-name", "NewApp", "--bundle-name", "not a bundle")
	require.Error(t, err)
	require.ErrorIs(t, err, models.ErrInvalidBundleID)
	require.Contains(t, err.Error(), "setup failed")

	require.Zero(t, run.fs.TotalWrites())
	require.True(t, run.fs.IsDir("/app/ios/OldApp"))
	require.Empty(t, run.runner.Calls)
}

func TestSetup_InvalidProjectNameFailsBeforeMutation(t *testing.T) {
	run := newSetupRun(t, withApp)

	err := run.execute("--project-name", "../Escape", "--bundle-name", "com.acme.newapp")
	require.ErrorIs(t, err, models.ErrInvalidProjectName)
	require.Zero(t, run.fs.TotalWrites())
	require.Empty(t, run.runner.Calls)
}

func TestSetup_RenameFailureIsFatal(t *testing.T) {
	run := newSetupRun(t, withApp)
	run.fs.WriteFileErrors["/app"] = errors.New("read-only file system")

	err := run.execute("--project-name", "NewApp", "--bundle-name", "com.acme.newapp")
	require.Error(t, err)
	require.Contains(t, err.Error(), "setup failed")
	require.Contains(t, err.Error(), "read-only file system")
	require.Contains(t, run.stderr.String(), "Error renaming iOS project")
	require.Empty(t, run.runner.Calls)
	require.Empty(t, run.stdout.String())
}

func TestSetup_InstallerFailureIsFatal(t *testing.T) {
	run := newSetupRun(t, withApp)
	run.runner.Errors["npx react-native-asset"] = &installer.ExitError{Command: "npx react-native-asset", Code: 1}

	err := run.execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "setup failed")
	require.Contains(t, err.Error(), "Linking font assets failed")

	var stepErr *installer.StepError
	require.ErrorAs(t, err, &stepErr)
	require.Equal(t, "Linking font assets", stepErr.Step)

	require.Equal(t, []string{"yarn install", "npx react-native-asset"}, run.runner.Commands())
	require.NotContains(t, run.stdout.String(), "Setup completed successfully")
}

func TestSetup_UndetectableProjectStillInstalls(t *testing.T) {
	run := newSetupRun(t, func(wb *workspace.WorkspaceBuilder) {
		wb.AddPackageJSON("OldApp").AddAppJSON("OldApp", "OldApp")
	})

	require.NoError(t, run.execute("--project-name", "NewApp", "--bundle-name", "com.acme.newapp"))

	require.Zero(t, run.fs.TotalWrites())
	require.Contains(t, run.stderr.String(), "Could not detect current iOS project name")
	require.Contains(t, run.stdout.String(), "Rename skipped: project name not detected")
	require.Equal(t, allCommands, run.runner.Commands())
}

func TestSetup_SkipInstall(t *testing.T) {
	run := newSetupRun(t, withApp)

	require.NoError(t, run.execute("--skip-install", "--project-name", "NewApp", "--bundle-name", "com.acme.newapp"))

	require.Empty(t, run.runner.Calls)
	require.True(t, run.fs.IsDir("/app/ios/NewApp"))
	require.Contains(t, run.stdout.String(), "Dependency installation skipped")
}

func TestSetup_ConfigFile(t *testing.T) {
	run := newSetupRun(t, func(wb *workspace.WorkspaceBuilder) {
		wb.AddPackageJSON("OldApp")
	})
	run.fs.AddFile("/app/native/OldApp.xcodeproj/project.pbxproj", []byte("OldApp.app"))
	run.fs.AddFile("/app/.rnsetup.yaml", []byte("platformDir: native\nskipInstall: true\n"))

	require.NoError(t, run.execute("--project-name", "NewApp", "--bundle-name", "com.acme.newapp"))

	require.True(t, run.fs.IsDir("/app/native/NewApp.xcodeproj"))
	require.Empty(t, run.runner.Calls)
}

func TestSetup_ExplicitConfigMustExist(t *testing.T) {
	run := newSetupRun(t, withApp)

	err := run.execute("--config", "/app/missing.yaml")
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading config file")
	require.Empty(t, run.runner.Calls)
}

func TestSetup_RootDiscoveredFromSubdirectory(t *testing.T) {
	run := newSetupRun(t, withApp)
	run.fs.AddDir("/app/src/screens")

	cmd := newSetupCommand(run.fs, run.runner, run.prompter, func() bool { return false })
	cmd.SetArgs([]string{"--root", "/app/src/screens", "--skip-install", "--project-name", "NewApp", "--bundle-name", "com.acme.newapp"})
	cmd.SetOut(&run.stdout)
	cmd.SetErr(&run.stderr)
	require.NoError(t, cmd.Execute())

	require.True(t, run.fs.IsDir("/app/ios/NewApp"))
}

func TestSetup_InteractivePromptsForMissingNames(t *testing.T) {
	run := newSetupRun(t, withApp)
	run.terminal = true
	run.prompter.ProjectName = "Prompted"
	run.prompter.BundleName = "com.prompted.app"

	require.NoError(t, run.execute("-i", "--skip-install"))

	require.Equal(t, 1, run.prompter.Calls)
	require.Equal(t, "OldApp", run.prompter.Current)
	require.True(t, run.fs.IsDir("/app/ios/Prompted"))
	require.Contains(t, run.stdout.String(), "Setup completed successfully")
}

func TestSetup_InteractiveKeepsGivenName(t *testing.T) {
	run := newSetupRun(t, withApp)
	run.terminal = true
	run.prompter.ProjectName = "Ignored"
	run.prompter.BundleName = "com.prompted.app"

	require.NoError(t, run.execute("-i", "--skip-install", "--project-name", "Given"))

	require.True(t, run.fs.IsDir("/app/ios/Given"))
	require.False(t, run.fs.Exists("/app/ios/Ignored"))
}

func TestSetup_InteractiveWithoutTerminal(t *testing.T) {
	run := newSetupRun(t, withApp)
	run.prompter.ProjectName = "Prompted"
	run.prompter.BundleName = "com.prompted.app"

	require.NoError(t, run.execute("--interactive", "--skip-install"))

	require.Zero(t, run.prompter.Calls)
	require.Contains(t, run.stderr.String(), "--interactive needs a terminal")
	require.True(t, run.fs.IsDir("/app/ios/OldApp"))
}

func TestSetup_InteractiveAbort(t *testing.T) {
	run := newSetupRun(t, withApp)
	run.terminal = true
	run.prompter.Aborted = true

	require.NoError(t, run.execute("-i"))

	require.Empty(t, run.runner.Calls)
	require.Zero(t, run.fs.TotalWrites())
	require.Contains(t, run.stderr.String(), "Setup aborted")
}

func TestSetup_InteractivePromptError(t *testing.T) {
	run := newSetupRun(t, withApp)
	run.terminal = true
	run.prompter.Err = errors.New("could not open a new TTY")

	err := run.execute("-i")
	require.Error(t, err)
	require.Contains(t, err.Error(), "prompt failed")
	require.Empty(t, run.runner.Calls)
}

func TestSetup_InteractiveHintFallsBackToPackageName(t *testing.T) {
	run := newSetupRun(t, func(wb *workspace.WorkspaceBuilder) {
		wb.AddPackageJSON("flash-boilerplate")
	})
	run.terminal = true
	run.prompter.Aborted = true

	require.NoError(t, run.execute("-i"))

	require.Equal(t, "flash-boilerplate", run.prompter.Current)
}
