package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/pystylecheck/internal/configloader"
	"github.com/yaklabco/pystylecheck/internal/logging"
	"github.com/yaklabco/pystylecheck/pkg/config"
	"github.com/yaklabco/pystylecheck/pkg/lint"
	"github.com/yaklabco/pystylecheck/pkg/lint/rules"
	"github.com/yaklabco/pystylecheck/pkg/parser/treesitter"
	"github.com/yaklabco/pystylecheck/pkg/reporter"
	"github.com/yaklabco/pystylecheck/pkg/runner"
)

// ArityMessage is printed when the program is not given exactly one path.
const ArityMessage = "You must provide the program one argument: file or directory"

type checkFlags struct {
	format         string
	ruleFormat     string
	summaryOrder   string
	ignore         []string
	jobs           int
	strict         bool
	summary        bool
	compact        bool
	followSymlinks bool
	detectShebang  bool
	skipVendored   bool
}

const checkLongDescription = `Check a Python file, or every .py file under a directory, for style issues.

Each issue is printed as one line:

  {path}: Line {n}: {rule} {message}

Files are reported in sorted order and issues within a file by line, then rule.

Examples:
  pystylecheck app.py                 Check a single file
  pystylecheck src/                   Check a directory recursively
  pystylecheck src/ --format json     Output as JSON for CI
  pystylecheck src/ --strict          Exit 1 when any issue is found
  pystylecheck src/ --ignore 'build/**' --ignore '**/migrations'`

func newCheckCommand(info BuildInfo) *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check <path>",
		Short: "Check Python files for style issues",
		Long:  checkLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags, info)
		},
	}

	addCheckFlags(cmd, flags)

	return cmd
}

func addCheckFlags(cmd *cobra.Command, flags *checkFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, sarif, summary")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of files checked in parallel (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to skip during discovery")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "exit 1 when any issue is found")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "append a one-line summary to text output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "minify json and sarif output")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "descend into symlinked directories")
	cmd.Flags().BoolVar(&flags.detectShebang, "detect-shebang", false,
		"also check extensionless files with a python shebang")
	cmd.Flags().BoolVar(&flags.skipVendored, "skip-vendored", false,
		"skip vendored paths such as virtualenvs and site-packages")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "",
		"rule identifier format in summary output: id, name, or combined")
	cmd.Flags().StringVar(&flags.summaryOrder, "summary-order", "",
		"order of tables in summary output: rules, files")
}

// cliConfig converts the explicitly set flags into a config layer.
func (f *checkFlags) cliConfig(cmd *cobra.Command) *config.Config {
	cfg := &config.Config{
		FollowSymlinks: f.followSymlinks,
		DetectShebang:  f.detectShebang,
		SkipVendored:   f.skipVendored,
		Summary:        f.summary,
		Strict:         f.strict,
		Jobs:           f.jobs,
		RuleFormat:     config.RuleFormat(f.ruleFormat),
		SummaryOrder:   config.SummaryOrder(f.summaryOrder),
	}

	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(f.format)
	}
	if cmd.Flags().Changed("ignore") {
		cfg.Ignore = f.ignore
	}
	if color, err := cmd.Flags().GetString("color"); err == nil && cmd.Flags().Changed("color") {
		cfg.Color = config.ColorMode(color)
	}

	return cfg
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags, info BuildInfo) error {
	if len(args) != 1 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), ArityMessage)
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	cfg, err := loadConfig(ctx, cmd, flags)
	if err != nil {
		return err
	}

	logger.Debug("configuration loaded",
		logging.FieldFormat, cfg.Format,
		logging.FieldJobs, cfg.Jobs,
		"ignore", cfg.Ignore,
	)

	engine := lint.NewEngine(treesitter.New(), lint.DefaultRegistry)
	checker := runner.New(lint.NewPipeline(engine))

	runOpts := runner.OptionsFromConfig(cfg, args[0])
	logger.Debug("starting run", logging.FieldPaths, runOpts.Paths, logging.FieldJobs, runOpts.Jobs)

	result, err := checker.Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("check %s: %w", args[0], err)
	}

	logger.Debug("run complete",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesErrored, result.Stats.FilesErrored,
		logging.FieldBytesRead, result.Stats.BytesRead,
		logging.FieldDiagnosticsTotal, result.Stats.DiagnosticsTotal,
	)

	if err := report(ctx, cmd, cfg, flags, info, result); err != nil {
		return err
	}

	return outcomeError(result, cfg.Strict)
}

// loadConfig resolves the configuration layers for a run.
func loadConfig(ctx context.Context, cmd *cobra.Command, flags *checkFlags) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    flags.cliConfig(cmd),
	})
	if err != nil {
		return nil, errors.Join(ErrConfig, err)
	}

	logger := logging.FromContext(ctx)
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	return loadResult.Config, nil
}

func report(
	ctx context.Context,
	cmd *cobra.Command,
	cfg *config.Config,
	flags *checkFlags,
	info BuildInfo,
	result *runner.Result,
) error {
	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return errors.Join(ErrConfig, err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:       cmd.OutOrStdout(),
		ErrorWriter:  cmd.ErrOrStderr(),
		Format:       format,
		Color:        cfg.Color,
		ShowSummary:  cfg.Summary,
		Compact:      flags.compact,
		RuleFormat:   cfg.RuleFormat,
		SummaryOrder: cfg.SummaryOrder,
		Version:      info.Version,
		Rules:        rules.RuleInfos(lint.DefaultRegistry),
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	// SARIF has no slot for files that were never analysed.
	if format == reporter.FormatSARIF {
		logFileErrors(cmd.ErrOrStderr(), result)
	}

	return nil
}

func logFileErrors(w io.Writer, result *runner.Result) {
	logger := logging.NewWithWriter(w, "warn")
	for _, file := range result.Files {
		if file.Error != nil {
			logger.Warn("file not checked", logging.FieldPath, file.Path, logging.FieldError, file.Error)
		}
	}
}

// outcomeError turns a finished run into the error that selects the exit code.
func outcomeError(result *runner.Result, strict bool) error {
	if result.HasErrors() {
		return errors.Join(append([]error{ErrFilesFailed}, result.FileErrors()...)...)
	}
	if strict && result.HasIssues() {
		return ErrIssuesFound
	}
	return nil
}
