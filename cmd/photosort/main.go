package main

import (
	"fmt"
	"os"
	"time"

	"photosort/internal/app"
	"photosort/internal/config"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates a PhotosortApp. The caller must defer app.Close().
// operation identifies the CLI command being run (e.g. "sort", "history").
func newApp(cmd *cobra.Command, operation string) (*app.PhotosortApp, error) {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	a, err := app.NewPhotosortApp(cfg, operation, verbose)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

// runOptions collects the sort/plan flags. Rename is only set when the flag was given.
func runOptions(cmd *cobra.Command) app.RunOptions {
	opts := app.RunOptions{}
	opts.SourceDir, _ = cmd.Flags().GetString("rootdir")
	opts.TargetDir, _ = cmd.Flags().GetString("targetdir")
	opts.GroupBy, _ = cmd.Flags().GetString("groupby")
	opts.DateFormat, _ = cmd.Flags().GetString("dateformat")
	if cmd.Flags().Changed("rename") {
		rename, _ := cmd.Flags().GetBool("rename")
		opts.Rename = &rename
	}
	return opts
}

var rootCmd = &cobra.Command{
	Use:          "photosort",
	Short:        "Organize photos into folders by creation date",
	SilenceUsage: true,
}

// sort command
var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Copy files into date-named group folders",
	Long: `Copy every file in the source directory into <targetdir>/<group>/.
Groups are named YYYY, YYYY-MM or YYYY-MM-DD after each file's creation time.
Existing files are never overwritten: if any target exists, every file copied
by the run is removed again and the conflicts are listed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, "sort")
		if err != nil {
			return err
		}
		defer a.Close()

		rc, err := a.RunConfig(runOptions(cmd))
		if err != nil {
			return err
		}

		res, err := a.Sort(rc)
		if err != nil {
			return err
		}

		fmt.Printf("Copied %d files to %s (run %s)\n", res.Copied, rc.TargetDir, res.RunID)
		return nil
	},
}

// plan command
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show where sort would copy each file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, "plan")
		if err != nil {
			return err
		}
		defer a.Close()

		rc, err := a.RunConfig(runOptions(cmd))
		if err != nil {
			return err
		}

		plan, err := a.Plan(rc)
		if err != nil {
			return err
		}

		if len(plan.Entries) == 0 {
			fmt.Println("No files to sort.")
			return nil
		}
		for _, e := range plan.Entries {
			fmt.Printf("%s -> %s\n", e.Source.File.String(), e.Target)
		}
		return nil
	},
}

// validate command
var validateCmd = &cobra.Command{
	Use:   "validate [DIR]",
	Short: "Check that every file in a directory has an extension",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, "validate")
		if err != nil {
			return err
		}
		defer a.Close()

		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		if err := a.Validate(dir); err != nil {
			return err
		}
		fmt.Println("OK")
		return nil
	},
}

// history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View recent sort runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		runID, _ := cmd.Flags().GetString("run")

		a, err := newApp(cmd, "history")
		if err != nil {
			return err
		}
		defer a.Close()

		if runID != "" {
			entries, err := a.RunEntries(runID)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Printf("No entries recorded for run %s.\n", runID)
				return nil
			}
			for _, e := range entries {
				fmt.Printf("%-11s  %s -> %s\n", e.Outcome, e.Source, e.Target)
			}
			return nil
		}

		runs, err := a.History(limit)
		if err != nil {
			return err
		}

		if len(runs) == 0 {
			fmt.Println("No runs recorded.")
			return nil
		}

		for _, r := range runs {
			duration := ""
			if !r.FinishedAt.IsZero() {
				duration = r.FinishedAt.Sub(r.StartedAt).Truncate(time.Millisecond).String()
			}
			fmt.Printf("%s  %s  %-8s  %4d files  %3d conflicts  %s -> %s  %s\n",
				r.ID,
				r.StartedAt.Local().Format("2006-01-02 15:04:05"),
				r.Status,
				r.Files,
				r.Conflicts,
				r.SourceDir,
				r.TargetDir,
				duration,
			)
		}
		return nil
	},
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = defaults.ConfigPath
		}

		cfg := config.NewConfig(defaults.BaseDir)
		if err := config.Init(configPath, cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", configPath)
		fmt.Printf("Base Dir: %s\n", cfg.BaseDir)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")

		cfg, err := app.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Base Dir:     %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:      %s\n", cfg.LogDir)
		fmt.Printf("Group By:     %s\n", cfg.Defaults.GroupBy)
		fmt.Printf("Date Format:  %s\n", cfg.Defaults.DateFormat)
		fmt.Printf("Rename:       %t\n", cfg.Defaults.Rename)
		fmt.Printf("Journal:      %s\n", cfg.Database.Type)
		fmt.Printf("Target:       %s\n", cfg.Target.Type)
		if cfg.Target.Type == "s3" {
			fmt.Printf("S3 Location:  s3://%s/%s\n", cfg.Target.S3Bucket, cfg.Target.S3Prefix)
		}
		if len(cfg.Filesystem.Ignore) > 0 {
			fmt.Printf("Ignore:       %v\n", cfg.Filesystem.Ignore)
		}
		return nil
	},
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("rootdir", "r", "", "Source directory (default: current directory)")
	cmd.Flags().StringP("targetdir", "t", "", "Target directory (default: ./_sorted)")
	cmd.Flags().StringP("groupby", "g", "", "Grouping: year, month or date (default from config, else year)")
	cmd.Flags().Bool("rename", false, "Rename files after their creation date")
	cmd.Flags().StringP("dateformat", "f", "", "strftime format for renamed files (default %Y%m%d)")
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default: $PHOTOSORT_CONFIG_PATH or ~/.config/photosort.toml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug messages")

	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	// root commands
	rootCmd.AddCommand(sortCmd)
	addRunFlags(sortCmd)
	rootCmd.AddCommand(planCmd)
	addRunFlags(planCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum number of runs to show")
	historyCmd.Flags().String("run", "", "Show the per-file outcomes of one run")
	rootCmd.AddCommand(configCmd)
}
