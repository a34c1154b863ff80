// Command dimension opens the animated landing page in a window.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phanxgames/dimension"
	"github.com/phanxgames/dimension/content"
	"github.com/phanxgames/dimension/internal/config"
	"github.com/phanxgames/dimension/landing"
)

var (
	// Global flags
	verbose     bool
	contentPath string
	scriptPath  string
	width       int
	height      int
	debug       bool
	showStats   bool

	// Logger
	logger *zap.Logger
)

// rootCmd opens the window.
var rootCmd = &cobra.Command{
	Use:   "dimension",
	Short: "Animated single-page landing site",
	Long: `dimension renders the landing page in a scrollable window: hero,
feature grid, case studies and contact, each revealed once as it enters
the viewport, over two endlessly drifting background shapes.

Settings come from DIMENSION_* environment variables; flags override them.
Pass --script to drive the page from a YAML test script and exit when it
finishes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = newLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runWindow,
}

// newLogger builds the development config under --verbose and the production
// config otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopmentConfig().Build()
	}
	return zap.NewProductionConfig().Build()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "Content YAML file (default: built-in content)")

	rootCmd.Flags().StringVar(&scriptPath, "script", "", "YAML test script to run")
	rootCmd.Flags().IntVar(&width, "width", 0, "Window width in pixels")
	rootCmd.Flags().IntVar(&height, "height", 0, "Window height in pixels")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable scene debug checks and frame stats")
	rootCmd.Flags().BoolVar(&showStats, "stats", false, "Show the stats overlay")

	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if err := config.ParseEnv(&cfg); err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("content") {
		cfg.ContentPath = contentPath
	}
	if flags.Changed("script") {
		cfg.ScriptPath = scriptPath
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("debug") {
		cfg.Debug = debug
	}
	if flags.Changed("stats") {
		cfg.ShowStats = showStats
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadContent returns the registry at path, or the built-in one when path
// is empty.
func loadContent(path string) (*content.Registry, error) {
	if path == "" {
		return content.Default()
	}
	return content.Load(path)
}

// buildScene composes the page for cfg without opening a window.
func buildScene(cfg config.Config, reg *content.Registry) (*dimension.Scene, *landing.Page, error) {
	scene := dimension.NewScene(float64(cfg.Width), float64(cfg.Height))
	scene.SetLogger(logger)
	scene.SetDebugMode(cfg.Debug)
	scene.ScreenshotDir = cfg.ScreenshotDir

	var assets *dimension.AssetLoader
	if cfg.AssetsDir != "" {
		if _, err := os.Stat(cfg.AssetsDir); err == nil {
			assets = dimension.NewAssetLoader(os.DirFS(cfg.AssetsDir), logger)
		} else {
			logger.Warn("assets directory unavailable, using placeholders",
				zap.String("dir", cfg.AssetsDir), zap.Error(err))
		}
	}

	page, err := landing.Compose(scene, reg, landing.Options{Assets: assets, Logger: logger})
	if err != nil {
		return nil, nil, err
	}

	if cfg.ScriptPath != "" {
		data, err := os.ReadFile(cfg.ScriptPath)
		if err != nil {
			return nil, nil, fmt.Errorf("read script: %w", err)
		}
		runner, err := dimension.LoadTestScript(data)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", cfg.ScriptPath, err)
		}
		scene.SetTestRunner(runner)
	}
	return scene, page, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	reg, err := loadContent(cfg.ContentPath)
	if err != nil {
		return err
	}
	scene, _, err := buildScene(cfg, reg)
	if err != nil {
		return err
	}

	logger.Info("opening window",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("script", cfg.ScriptPath != ""))

	return dimension.Run(scene, dimension.RunConfig{
		Title:     cfg.Title,
		Width:     cfg.Width,
		Height:    cfg.Height,
		ShowStats: cfg.ShowStats,
		TPS:       cfg.TPS,
	})
}
