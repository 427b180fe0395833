// Package main provides the CLI entrypoint for tuicandy.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/tuicandy/internal/catalog"
	"github.com/verte-zerg/tuicandy/internal/config"
	"github.com/verte-zerg/tuicandy/internal/engine"
	"github.com/verte-zerg/tuicandy/internal/generator"
	"github.com/verte-zerg/tuicandy/internal/model"
	"github.com/verte-zerg/tuicandy/internal/stats"
	"github.com/verte-zerg/tuicandy/internal/statsui"
	"github.com/verte-zerg/tuicandy/internal/store"
	"github.com/verte-zerg/tuicandy/internal/tray"
	"github.com/verte-zerg/tuicandy/internal/tui"
)

const (
	defaultStartDay    = 1
	defaultStatsWindow = 5
	maxTrayCapacity    = 40
)

var (
	playDay       int
	playDayLength int
	playPatience  int
	playTrayMax   int
	playCooldown  time.Duration
	playSeed      int64

	statsSince  string
	statsLast   int
	statsWindow int
	statsPlain  bool

	catalogFind string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuicandy",
		Short:         "Terminal candy shop order-fulfilment game",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().IntVar(&playDay, "day", defaultStartDay, "starting day")
	rootCmd.Flags().IntVar(&playDayLength, "day-length", engine.DefaultDayLength, "seconds per day")
	rootCmd.Flags().IntVar(&playPatience, "patience", engine.DefaultPatience, "customer patience in seconds")
	rootCmd.Flags().IntVar(&playTrayMax, "tray-max", tray.DefaultCapacity, "tray capacity")
	rootCmd.Flags().DurationVar(&playCooldown, "cooldown", engine.DefaultCooldown, "delay before the next customer")
	rootCmd.Flags().Int64Var(&playSeed, "seed", 0, "random seed (0 = random)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCatalogCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg, err := resolvePlayConfig(cmd, fileCfg)
	if err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	cat, err := resolveCatalog(fileCfg)
	if err != nil {
		return err
	}

	storePath := config.DefaultDBPath()
	st, err := store.Open(storePath)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	gen := generator.New()
	if cfg.Seed != 0 {
		gen = generator.NewSeeded(cfg.Seed)
	}
	eng := engine.New(cfg, cat, gen)
	model := tui.NewModel(eng, st)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolvePlayConfig overlays config file values on flags the user did not set.
func resolvePlayConfig(cmd *cobra.Command, fileCfg config.FileConfig) (model.Config, error) {
	game := fileCfg.Game
	applyIntConfig(cmd, "day", &playDay, game.Day)
	applyIntConfig(cmd, "day-length", &playDayLength, game.DayLength)
	applyIntConfig(cmd, "patience", &playPatience, game.Patience)
	applyIntConfig(cmd, "tray-max", &playTrayMax, game.TrayMax)
	applyInt64Config(cmd, "seed", &playSeed, game.Seed)
	if err := applyDurationConfig(cmd, "cooldown", &playCooldown, game.Cooldown); err != nil {
		return model.Config{}, err
	}
	return model.Config{
		StartDay:  playDay,
		DayLength: playDayLength,
		Patience:  playPatience,
		TrayMax:   playTrayMax,
		Cooldown:  playCooldown,
		Seed:      playSeed,
	}, nil
}

func resolveCatalog(fileCfg config.FileConfig) (*catalog.Catalog, error) {
	kinds := fileCfg.CatalogKinds()
	if kinds == nil {
		return catalog.Default(), nil
	}
	cat, err := catalog.New(kinds)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog in config: %w", err)
	}
	return cat, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List candies and their keys",
		Args:  cobra.NoArgs,
		RunE:  runCatalogCmd,
	}
	cmd.Flags().StringVar(&catalogFind, "find", "", "look up a candy by id or approximate name")
	return cmd
}

func runCatalogCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cat, err := resolveCatalog(fileCfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if strings.TrimSpace(catalogFind) != "" {
		kind, ok := cat.Find(catalogFind)
		if !ok {
			return fmt.Errorf("no candy matches %q", catalogFind)
		}
		return writeCatalogLine(out, cat, kind)
	}
	for _, kind := range cat.Kinds() {
		if err := writeCatalogLine(out, cat, kind); err != nil {
			return err
		}
	}
	return nil
}

func writeCatalogLine(w io.Writer, cat *catalog.Catalog, kind model.ItemKind) error {
	if _, err := fmt.Fprintf(w, "%s  %-8s %s %s\n", keyLabel(cat, kind.ID), kind.ID, kind.Symbol, kind.Name); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// keyLabel returns the number key bound to a kind, or "-" past the tenth.
func keyLabel(cat *catalog.Catalog, id string) string {
	for i := 0; i < cat.Len() && i < 10; i++ {
		if kind, _ := cat.At(i); kind.ID == id {
			return fmt.Sprintf("[%d]", (i+1)%10)
		}
	}
	return "[-]"
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show play history",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N days")
	cmd.Flags().IntVar(&statsWindow, "window", defaultStatsWindow, "moving average window")
	cmd.Flags().BoolVar(&statsPlain, "plain", false, "print a plain text report")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildStatsConfig(statsSince, statsLast, statsWindow)
	if err != nil {
		return err
	}

	storePath := config.DefaultDBPath()
	st, err := store.Open(storePath)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	if statsPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		report, err := stats.BuildReport(cmd.Context(), st, cfg)
		if err != nil {
			return fmt.Errorf("failed to load stats: %w", err)
		}
		if err := report.Render(cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	model := statsui.NewModel(st, cfg)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func buildStatsConfig(since string, last, window int) (model.StatsConfig, error) {
	if last < 0 {
		return model.StatsConfig{}, fmt.Errorf("--last must be >= 0")
	}
	if window < 1 {
		return model.StatsConfig{}, fmt.Errorf("--window must be > 0")
	}
	cfg := model.StatsConfig{Last: last, Window: window}
	if since != "" {
		parsed, err := time.ParseInLocation("2006-01-02", since, time.Local)
		if err != nil {
			return model.StatsConfig{}, fmt.Errorf("invalid --since value: %w", err)
		}
		cfg.Since = &parsed
	}
	return cfg, nil
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyDurationConfig(cmd *cobra.Command, name string, target *time.Duration, value *string) error {
	if value == nil {
		return nil
	}
	if cmd.Flags().Changed(name) {
		return nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(*value))
	if err != nil {
		return fmt.Errorf("invalid %s in config: %w", name, err)
	}
	*target = d
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tuicandy configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# day = %d                 # Starting day
# day-length = %d         # Seconds per day
# patience = %d            # Customer patience in seconds
# tray-max = %d            # Tray capacity
# cooldown = %q        # Delay before the next customer
# seed = 0                # Random seed (0 = random)

# Replace the candy catalog (at least %d entries, first ten get keys 1-9,0).
# [[catalog]]
# id = "berry"
# name = "Berry Pop"
# symbol = "🍓"
`,
		defaultStartDay,
		engine.DefaultDayLength,
		engine.DefaultPatience,
		tray.DefaultCapacity,
		engine.DefaultCooldown.String(),
		catalog.MinKinds,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.StartDay < 1 {
		return fmt.Errorf("--day must be >= 1")
	}
	if cfg.DayLength <= 0 {
		return fmt.Errorf("--day-length must be > 0")
	}
	if cfg.Patience <= 0 {
		return fmt.Errorf("--patience must be > 0")
	}
	if cfg.TrayMax <= 0 || cfg.TrayMax > maxTrayCapacity {
		return fmt.Errorf("--tray-max must be between 1 and %d", maxTrayCapacity)
	}
	if cfg.Cooldown < 0 {
		return fmt.Errorf("--cooldown must be >= 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
