package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"reservoirs/cmd/reservoirs/ui"
	"reservoirs/internal/config"
	"reservoirs/internal/logging"
	"reservoirs/internal/messages"
	"reservoirs/internal/reservoir"
)

var (
	// Global flags
	configPath string
	lang       string
	capacity   int
	verbose    bool
	plain      bool

	// config init flags
	force bool

	// Resolved by PersistentPreRunE
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "reservoirs",
	Short: "Reservoir management console",
	Long: `reservoirs keeps an in-memory collection of lakes, seas, pools and ponds.

Run without arguments to start the interactive menu. Records can be added,
removed, listed, searched by type, compared by surface area and copied.
Nothing is written to disk; the "save" menu entries print report summaries.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = resolveConfig(cmd)
		if err != nil {
			return err
		}
		if err := logging.Initialize(cfg.Logging); err != nil {
			return err
		}
		logging.Boot("config resolved",
			zap.String("path", configPath),
			zap.String("lang", cfg.UI.Language),
			zap.Int("capacity", cfg.Collection.Capacity))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConsole(cmd)
	},
}

// versionCmd prints the configured name and version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", cfg.Name, cfg.Version)
	},
}

// configCmd groups config file helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the reservoirs config file",
}

// configInitCmd writes the default config
var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default config file",
	Long: `Writes the default configuration as YAML to path (default: the --config
value). An existing file is left untouched unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file (YAML)")
	rootCmd.PersistentFlags().StringVarP(&lang, "lang", "l", "", "Message language (uk, en)")
	rootCmd.PersistentFlags().IntVar(&capacity, "capacity", reservoir.DefaultCapacity, "Maximum number of reservoirs (<= 0 for unbounded)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Disable colors and styling")

	// Config init flags
	configInitCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	// Config subcommands
	configCmd.AddCommand(configInitCmd)

	// Add commands to root
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveConfig loads the config file and applies explicitly set flags on
// top of it.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	c, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("lang") {
		c.UI.Language = lang
	}
	if flags.Changed("capacity") {
		c.Collection.Capacity = capacity
	}
	if flags.Changed("plain") {
		c.UI.Plain = plain
	}
	if verbose {
		c.Logging.DebugMode = true
		c.Logging.Level = "debug"
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return c, nil
}

// runConsole starts the interactive menu on the command's streams.
func runConsole(cmd *cobra.Command) error {
	coll := reservoir.NewCollection(
		reservoir.WithCapacity(cfg.Collection.Capacity),
		reservoir.WithLimits(cfg.Limits()),
		reservoir.WithLogger(logging.Get(logging.CategoryCollection)),
	)

	styles := ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))
	if cfg.UI.Plain {
		styles = ui.PlainStyles()
	}

	console := NewConsole(cmd.InOrStdin(), cmd.OutOrStdout(), coll,
		messages.For(cfg.UI.Language), styles, logging.Get(logging.CategoryConsole))
	logging.Boot("console starting", zap.String("session", console.SessionID()))
	return console.Run()
}

// runConfigInit writes the default configuration file.
func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if len(args) == 1 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	logging.ConfigEvent("config written", zap.String("path", path))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
