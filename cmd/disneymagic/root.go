package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/rjcampbel/DisneyMagic/internal/browser"
	"github.com/rjcampbel/DisneyMagic/internal/catalogapi"
	"github.com/rjcampbel/DisneyMagic/internal/config"
	"github.com/rjcampbel/DisneyMagic/internal/log"
	"github.com/rjcampbel/DisneyMagic/internal/service"
	"github.com/rjcampbel/DisneyMagic/internal/store"
	"github.com/rjcampbel/DisneyMagic/internal/tui"
)

// Version is set at build time via -ldflags
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootOptions are the flags shared by every command
type rootOptions struct {
	configFile string
	v          *viper.Viper
}

// load resolves configuration (flags > env > file > defaults) and sets up the
// file logger, falling back to a discard logger when the log file can't be opened
func (o *rootOptions) load() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadWith(o.v, o.configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "disneymagic",
		Short: "Browse the Disney+ home catalog in the terminal.",
		Long: `Fetches the Disney+ home catalog, resolves referenced collections and
shows it as a scrollable grid of tiles. Arrow keys (or hjkl) move the
selection, / finds a title, esc quits.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default "+config.DefaultConfigPath()+"/config.yaml)")
	flags.String("base-url", "", "catalog base URL")
	flags.String("cache-dir", "", "directory for the on-disk image cache (empty = memory only)")
	flags.String("log-level", "", "log level (DEBUG, INFO, WARN, ERROR)")
	cmd.Flags().Int("rows", 0, "visible rows")
	cmd.Flags().Int("columns", 0, "visible columns")

	_ = opts.v.BindPFlag("catalog.base_url", flags.Lookup("base-url"))
	_ = opts.v.BindPFlag("cache.dir", flags.Lookup("cache-dir"))
	_ = opts.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = opts.v.BindPFlag("grid.rows", cmd.Flags().Lookup("rows"))
	_ = opts.v.BindPFlag("grid.columns", cmd.Flags().Lookup("columns"))

	addTree(cmd, opts)
	addCache(cmd, opts)
	addVersion(cmd)
	return cmd
}

func runBrowse(cmd *cobra.Command, opts *rootOptions) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal; use 'disneymagic tree' for plain output")
	}

	cfg, logger, err := opts.load()
	if err != nil {
		return err
	}
	logger.Info("starting disneymagic", "version", Version, "baseUrl", cfg.Catalog.BaseURL)

	cacheDir, err := config.ExpandPath(cfg.Cache.Dir)
	if err != nil {
		return err
	}
	cache, err := store.Open(cacheDir, cfg.Catalog.BaseURL)
	if err != nil {
		return fmt.Errorf("failed to open image cache: %w", err)
	}
	defer cache.Close()

	client := catalogapi.NewClient(cfg.Catalog, logger)
	loader := service.NewImageLoader(client, cache, logger)
	catalogSvc := service.NewCatalogService(client, loader, cfg.Tile, logger)

	progress := newProgressObserver(os.Stderr)
	nodes, err := catalogSvc.Build(cmd.Context(), progress)
	progress.clear()
	if err != nil {
		return err
	}

	b := browser.New(nodes, cfg, logger)
	p := tea.NewProgram(
		tui.NewModel(b, cfg, logger),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)

	logger.Info("starting TUI", "rows", len(nodes))

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
