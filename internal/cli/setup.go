package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/jakoblorz/rnsetup/internal/config"
	"github.com/jakoblorz/rnsetup/internal/filesystem"
	"github.com/jakoblorz/rnsetup/internal/installer"
	"github.com/jakoblorz/rnsetup/internal/ios"
	"github.com/jakoblorz/rnsetup/internal/manifest"
	"github.com/jakoblorz/rnsetup/internal/models"
	"github.com/jakoblorz/rnsetup/internal/output"
	"github.com/jakoblorz/rnsetup/internal/project"
	"github.com/jakoblorz/rnsetup/internal/rewrite"
	"github.com/jakoblorz/rnsetup/internal/tui"
	"github.com/jakoblorz/rnsetup/internal/workspace"
	"github.com/spf13/cobra"
)

const renameUsage = "rnsetup --project-name <Name> --bundle-name <com.company.app>"

// SetupCommand renames the app when asked to and installs its dependencies.
type SetupCommand struct {
	fs         filesystem.FileSystem
	runner     installer.Runner
	prompter   tui.Prompter
	isTerminal func() bool
}

func newSetupCommand(fs filesystem.FileSystem, runner installer.Runner, prompter tui.Prompter, isTerminal func() bool) *cobra.Command {
	cmd := &SetupCommand{
		fs:         fs,
		runner:     runner,
		prompter:   prompter,
		isTerminal: isTerminal,
	}

	cobraCmd := &cobra.Command{
		Use:   "rnsetup",
		Short: "Rename and set up a React Native app",
		Long: `Renames the iOS project of a React Native app, updates its manifests and
bundle identifier, then installs JavaScript, font asset and CocoaPods dependencies.

Renaming needs both --project-name and --bundle-name. Without them only the
dependency installation runs.`,
		SilenceUsage:       true,
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE:               cmd.Run,
	}

	flags := cobraCmd.Flags()
	flags.String("project-name", "", "New iOS project name")
	flags.String("bundle-name", "", "New bundle identifier (reverse-DNS, e.g. com.acme.app)")
	flags.String("root", "", "App directory (default: nearest directory with package.json)")
	flags.String("config", "", "Config file (default: <root>/"+config.DefaultConfigFile+")")
	flags.String("platform-dir", models.DefaultPlatformDir, "iOS platform directory, relative to the root")
	flags.String("vendor-dir", models.DefaultVendorDir, "Ruby vendor bundle directory, relative to the root")
	flags.Bool("skip-install", false, "Stop after renaming")
	flags.Bool("respect-gitignore", false, "Do not rewrite files ignored by the platform .gitignore")
	flags.BoolP("interactive", "i", false, "Prompt for missing names")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	return cobraCmd
}

// Run executes the setup command
func (c *SetupCommand) Run(cmd *cobra.Command, args []string) error {
	projectName, _ := cmd.Flags().GetString("project-name")
	bundleName, _ := cmd.Flags().GetString("bundle-name")
	rootFlag, _ := cmd.Flags().GetString("root")
	configFlag, _ := cmd.Flags().GetString("config")
	interactive, _ := cmd.Flags().GetBool("interactive")

	ws := workspace.New(c.fs)
	if err := ws.Detect(rootFlag); err != nil {
		return err
	}

	loader := config.NewLoader()
	if err := loader.BindFlags(cmd); err != nil {
		return err
	}

	configPath := configFlag
	if configPath == "" {
		configPath = filepath.Join(ws.RootPath, config.DefaultConfigFile)
	}
	cfg, err := loader.Load(c.fs, configPath, configFlag != "")
	if err != nil {
		return err
	}

	logger := output.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	if !ws.HasManifest {
		logger.Warn("package.json not found, using start directory as app root", "dir", ws.RootPath)
	}
	if used := loader.ConfigFileUsed(); used != "" {
		logger.Debug("loaded config", "file", used)
	}

	ws.Configure(workspace.WithPlatformDir(cfg.PlatformDir), workspace.WithVendorDir(cfg.VendorDir))
	layout := ws.Layout()

	params := models.InvocationParameters{
		ProjectName: strings.TrimSpace(projectName),
		BundleName:  strings.TrimSpace(bundleName),
	}

	if interactive && !params.ShouldRename() {
		prompted, err := c.prompt(cmd.Context(), logger, layout, params)
		if err != nil {
			return err
		}
		if prompted == nil {
			logger.Warn("Setup aborted")
			return nil
		}
		params = *prompted
	}

	report := output.Report{}

	switch {
	case params.ShouldRename():
		summary, err := c.rename(logger, layout, params, cfg)
		if err != nil {
			logger.Error("Setup failed", "err", err)
			return fmt.Errorf("setup failed: %w", err)
		}
		fillRenameReport(&report, summary, params)
	case params.IsPartial():
		logger.Warn("Both --project-name and --bundle-name are required for renaming", "usage", renameUsage)
	}

	if cfg.SkipInstall {
		logger.Info("Skipping dependency installation")
		report.InstallSkipped = true
	} else {
		steps := installer.DefaultSteps(cfg.PlatformDir)
		if err := installer.New(c.runner, ws.RootPath, logger).Run(cmd.Context(), steps); err != nil {
			logger.Error("Setup failed", "err", err)
			return fmt.Errorf("setup failed: %w", err)
		}
		report.Steps = stepCommands(steps)
	}

	summary, err := output.RenderSummary(report, c.isTerminal())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), summary)

	return nil
}

// prompt asks for the missing names. It returns nil when the user aborted.
func (c *SetupCommand) prompt(ctx context.Context, logger *log.Logger, layout *models.Layout, params models.InvocationParameters) (*models.InvocationParameters, error) {
	if !c.isTerminal() {
		logger.Warn("--interactive needs a terminal, continuing with the given flags")
		return &params, nil
	}

	current, _, err := ios.DetectProjectName(c.fs, layout.PlatformPath)
	if err != nil {
		logger.Debug("could not detect current project name", "err", err)
	}
	if current == "" {
		if current, err = manifest.ReadName(c.fs, layout.PackageJSON()); err != nil {
			logger.Debug("could not read package name", "err", err)
		}
	}

	prompted, err := c.prompter.PromptNames(ctx, params, current)
	if err != nil {
		return nil, fmt.Errorf("prompt failed: %w", err)
	}

	return prompted, nil
}

func (c *SetupCommand) rename(logger *log.Logger, layout *models.Layout, params models.InvocationParameters, cfg *config.Config) (*project.Summary, error) {
	if err := models.ValidateProjectName(params.ProjectName); err != nil {
		return nil, err
	}
	if err := models.ValidateBundleID(params.BundleName); err != nil {
		return nil, err
	}

	walker := rewrite.NewWalker(c.fs, rewrite.WithGitIgnore(cfg.RespectGitignore))
	renamer := project.NewRenamer(c.fs, layout, logger, project.WithWalker(walker))

	return renamer.Rename(params.ProjectName, params.BundleName)
}

func fillRenameReport(report *output.Report, summary *project.Summary, params models.InvocationParameters) {
	if summary.Skipped() {
		report.RenameSkipped = summary.SkipReason
		return
	}

	report.Renamed = true
	report.OldName = summary.Identity.OldName
	report.NewName = summary.Identity.NewName
	report.BundleID = params.BundleName
	report.RenamedFolders = summary.RenamedFolders
	report.RewrittenFiles = len(summary.RewrittenFiles)
	report.RemovedCaches = summary.RemovedCaches
}

func stepCommands(steps []installer.Step) []string {
	var commands []string
	for _, step := range steps {
		for _, argv := range step.Commands {
			commands = append(commands, strings.Join(argv, " "))
		}
	}
	return commands
}
