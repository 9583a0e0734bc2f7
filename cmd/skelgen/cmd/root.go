package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"skelgen/internal/app"
	"skelgen/internal/config"
	"skelgen/internal/fsops"
	"skelgen/internal/layout"
)

var buildVersion = "dev"

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "skelgen [base_path]",
		Short: "skelgen creates a project skeleton of empty directories and files",
		Long: `skelgen creates a project skeleton under base_path (default "project_structure").
Directories are created when missing; files are created or truncated.

Use --from to read a layout in tree(1) format instead of the built-in one.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	addLayoutFlags(c)
	c.Flags().Bool("dry-run", false, "Only log what would be created")
	c.Flags().BoolP("quiet", "q", false, "Suppress the confirmation line")
	c.Flags().BoolP("verbose", "v", false, "Log every directory and file")
	c.Flags().String("dir-perm", "", "Directory permissions, octal (default 0755)")
	c.Flags().String("file-perm", "", "File permissions, octal (default 0644)")

	return c
}

// addLayoutFlags registers the flags that select a layout.
func addLayoutFlags(c *cobra.Command) {
	c.Flags().String("layout", "", fmt.Sprintf("Built-in layout %v", layout.Names()))
	c.Flags().String("from", "", "Read the layout from a tree-format file ('-' for stdin)")
	c.Flags().String("env-dir", ".", "Directory holding .env and .local.env")
}

// Execute runs the CLI and exits non-zero on failure.
func Execute(version string) {
	buildVersion = version

	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}

// runRoot materializes the layout under the optional base_path argument.
func runRoot(cmd *cobra.Command, args []string) error {
	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		opts.BasePath = args[0]
	}

	opts.DryRun, _ = cmd.Flags().GetBool("dry-run")
	opts.Quiet, _ = cmd.Flags().GetBool("quiet")
	opts.Verbose, _ = cmd.Flags().GetBool("verbose")

	return app.Run(opts)
}

// optionsFromFlags reads the env files named by --env-dir and merges them
// with the flags present on cmd.
func optionsFromFlags(cmd *cobra.Command) (app.Options, error) {
	envDir, _ := cmd.Flags().GetString("env-dir")
	conf, err := config.NewEnvFile(envDir)
	if err != nil {
		return app.Options{}, err
	}
	return optionsFromConfig(cmd, conf)
}

// optionsFromConfig builds app.Options from conf; flags set on cmd win.
func optionsFromConfig(cmd *cobra.Command, conf config.Config) (app.Options, error) {
	var err error

	opts := app.Options{
		BasePath: conf.GetOrDefault(config.KeyBasePath, app.DefaultBasePath),
		Layout:   conf.GetOrDefault(config.KeyLayout, layout.DefaultName),
		LogLevel: conf.Get(config.KeyLogLevel),
		Stdin:    cmd.InOrStdin(),
		Stdout:   cmd.OutOrStdout(),
		Stderr:   cmd.ErrOrStderr(),
	}

	if v := flagString(cmd, "layout"); v != "" {
		opts.Layout = v
	}
	opts.LayoutPath = flagString(cmd, "from")

	if cmd.Flags().Lookup("dir-perm") == nil {
		return opts, nil
	}

	dirPerm := conf.Get(config.KeyDirPerm)
	if v := flagString(cmd, "dir-perm"); v != "" {
		dirPerm = v
	}
	if opts.DirPerm, err = config.ParsePerm(dirPerm, fsops.DefaultDirPerm); err != nil {
		return opts, fmt.Errorf("invalid --dir-perm: %w", err)
	}

	filePerm := conf.Get(config.KeyFilePerm)
	if v := flagString(cmd, "file-perm"); v != "" {
		filePerm = v
	}
	if opts.FilePerm, err = config.ParsePerm(filePerm, fsops.DefaultFilePerm); err != nil {
		return opts, fmt.Errorf("invalid --file-perm: %w", err)
	}

	return opts, nil
}

// flagString returns the string flag name, or "" when cmd does not define it.
func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}
