// Package main provides the CLI entrypoint for dailyquotes.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/dailyquotes/internal/config"
	"github.com/verte-zerg/dailyquotes/internal/controller"
	"github.com/verte-zerg/dailyquotes/internal/instant"
	"github.com/verte-zerg/dailyquotes/internal/model"
	"github.com/verte-zerg/dailyquotes/internal/phrases"
	"github.com/verte-zerg/dailyquotes/internal/prefs"
	"github.com/verte-zerg/dailyquotes/internal/schedule"
	"github.com/verte-zerg/dailyquotes/internal/stats"
	"github.com/verte-zerg/dailyquotes/internal/store"
	"github.com/verte-zerg/dailyquotes/internal/surface"
	"github.com/verte-zerg/dailyquotes/internal/tui"
	"github.com/verte-zerg/dailyquotes/internal/typewriter"
)

const (
	defaultLang     = "en"
	defaultTypeMs   = 40
	defaultDeleteMs = 10
	defaultHoldMs   = 5000
	defaultGapMs    = 500
	defaultFadeMs   = 300
	defaultTop      = 20
)

var (
	appLang       string
	appAnimations bool
	appBlack      bool
	appQuotes     string
	appTypeMs     int
	appDeleteMs   int
	appHoldMs     int
	appGapMs      int
	appFadeMs     int
	appLogFile    string

	langsQuotes string

	historyLang  string
	historySince string
	historyTop   int
)

// runConfig is the resolved configuration of one TUI run.
type runConfig struct {
	Prefs      model.Preferences
	Quotes     string
	Typewriter typewriter.Timings
	Instant    instant.Timings
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dailyquotes",
		Short:         "Rotating quotes with a typewriter",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runAppCmd,
	}

	rootCmd.Flags().StringVar(&appLang, "lang", defaultLang, "language code: en or ru")
	rootCmd.Flags().BoolVar(&appAnimations, "animations", true, "type quotes instead of fading them")
	rootCmd.Flags().BoolVar(&appBlack, "black", true, "use the dark theme")
	rootCmd.Flags().StringVar(&appQuotes, "quotes", "", "quotes JSON file or http(s) URL (default: user file, then built-in)")
	rootCmd.Flags().IntVar(&appTypeMs, "type-ms", defaultTypeMs, "delay per typed character in ms")
	rootCmd.Flags().IntVar(&appDeleteMs, "delete-ms", defaultDeleteMs, "delay per deleted character in ms")
	rootCmd.Flags().IntVar(&appHoldMs, "hold-ms", defaultHoldMs, "time a full quote stays on screen in ms")
	rootCmd.Flags().IntVar(&appGapMs, "gap-ms", defaultGapMs, "pause between typed quotes in ms")
	rootCmd.Flags().IntVar(&appFadeMs, "fade-ms", defaultFadeMs, "fade-out time without animations in ms")
	rootCmd.Flags().StringVar(&appLogFile, "log-file", "", "write debug logs to this file")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newPrefsCmd())

	return rootCmd
}

func runAppCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctx := context.Background()
	cfg, err := resolveRunConfig(ctx, cmd, fileCfg, st)
	if err != nil {
		return err
	}

	set, err := phrases.Load(ctx, config.ResolveQuotesSource(cfg.Quotes))
	if err != nil {
		logErrf("failed to load quotes: %v\n", err)
	}

	if appLogFile != "" {
		f, err := tea.LogToFile(appLogFile, "dailyquotes")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				logErrf("failed to close log file: %v\n", cerr)
			}
		}()
	} else {
		log.SetOutput(io.Discard)
	}

	sched := schedule.NewTea()
	buf := surface.NewBuffer()
	opts := controller.Options{
		Typewriter: cfg.Typewriter,
		Instant:    cfg.Instant,
		OnShown: func(q model.ShownQuote) {
			if _, err := st.InsertShown(ctx, q); err != nil {
				log.Printf("failed to record shown quote: %v", err)
			}
		},
	}
	ctrl := controller.New(set, st, buf, sched, cfg.Prefs.Language, cfg.Prefs.Animations, opts)
	m := tui.NewModel(ctrl, sched, buf, st, cfg.Prefs.DarkTheme)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithReportFocus())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolveRunConfig layers defaults, the config file, persisted preferences and
// changed flags, in increasing priority.
func resolveRunConfig(ctx context.Context, cmd *cobra.Command, fileCfg config.FileConfig, settings prefs.Settings) (runConfig, error) {
	applyStringConfig(cmd, "quotes", &appQuotes, fileCfg.Display.Quotes)
	applyIntConfig(cmd, "type-ms", &appTypeMs, fileCfg.Timing.TypeMs)
	applyIntConfig(cmd, "delete-ms", &appDeleteMs, fileCfg.Timing.DeleteMs)
	applyIntConfig(cmd, "hold-ms", &appHoldMs, fileCfg.Timing.HoldMs)
	applyIntConfig(cmd, "gap-ms", &appGapMs, fileCfg.Timing.GapMs)
	applyIntConfig(cmd, "fade-ms", &appFadeMs, fileCfg.Timing.FadeMs)
	if err := validateTimings(); err != nil {
		return runConfig{}, err
	}

	defaults, err := fileDefaults(fileCfg)
	if err != nil {
		return runConfig{}, err
	}
	p, err := prefs.Load(ctx, settings, defaults)
	if err != nil {
		logErrf("failed to load preferences: %v\n", err)
		p = defaults
	}
	if cmd.Flags().Changed("lang") {
		lang, err := model.ParseLanguage(appLang)
		if err != nil {
			return runConfig{}, fmt.Errorf("invalid --lang value: %w", err)
		}
		p.Language = lang
	}
	if cmd.Flags().Changed("animations") {
		p.Animations = appAnimations
	}
	if cmd.Flags().Changed("black") {
		p.DarkTheme = appBlack
	}

	return runConfig{
		Prefs:  p,
		Quotes: appQuotes,
		Typewriter: typewriter.Timings{
			Type:      millis(appTypeMs),
			Delete:    millis(appDeleteMs),
			HoldFull:  millis(appHoldMs),
			HoldEmpty: millis(appGapMs),
		},
		Instant: instant.Timings{
			Fade: millis(appFadeMs),
			Hold: millis(appHoldMs),
		},
	}, nil
}

func fileDefaults(fileCfg config.FileConfig) (model.Preferences, error) {
	p := model.DefaultPreferences()
	if fileCfg.Display.Lang != nil {
		lang, err := model.ParseLanguage(*fileCfg.Display.Lang)
		if err != nil {
			return p, fmt.Errorf("invalid lang in config: %w", err)
		}
		p.Language = lang
	}
	if fileCfg.Display.Animations != nil {
		p.Animations = *fileCfg.Display.Animations
	}
	if fileCfg.Display.Black != nil {
		p.DarkTheme = *fileCfg.Display.Black
	}
	return p, nil
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

func newLangsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "langs",
		Short: "List quote languages and counts",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
	cmd.Flags().StringVar(&langsQuotes, "quotes", "", "quotes JSON file or http(s) URL")
	return cmd
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	src := config.ResolveQuotesSource(langsQuotes)
	set, err := phrases.Load(context.Background(), src)
	if err != nil {
		return fmt.Errorf("failed to load quotes: %w", err)
	}
	for _, lang := range model.Languages {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", lang, len(set.For(lang))); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the most shown quotes",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historyLang, "lang", "", "language filter")
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyTop, "top", defaultTop, "number of quotes to list (0 for all)")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	cfg := model.HistoryConfig{Top: historyTop}
	if historyLang != "" {
		lang, err := model.ParseLanguage(historyLang)
		if err != nil {
			return fmt.Errorf("invalid --lang value: %w", err)
		}
		cfg.Lang = lang
	}
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		cfg.Since = &parsed
	}
	if cfg.Top < 0 {
		return fmt.Errorf("--top must be >= 0")
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	report, err := stats.BuildReport(context.Background(), st, cfg)
	if err != nil {
		return fmt.Errorf("failed to build history: %w", err)
	}
	out := cmd.OutOrStdout()
	if err := stats.RenderHistory(out, report, stats.TerminalWidth(out)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show saved preferences",
		Args:  cobra.NoArgs,
		RunE:  runPrefsCmd,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "reset [key...]",
		Short: "Forget saved preferences",
		RunE:  runPrefsResetCmd,
	})
	return cmd
}

func runPrefsCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	saved, err := st.ListSettings(context.Background())
	if err != nil {
		return fmt.Errorf("failed to read preferences: %w", err)
	}
	for _, key := range prefs.Keys {
		value, ok := saved[key]
		if !ok {
			value = "(unset)"
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, value); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func runPrefsResetCmd(_ *cobra.Command, args []string) error {
	for _, key := range args {
		if !knownPrefKey(key) {
			return fmt.Errorf("unknown preference %q (available: %s)", key, strings.Join(prefs.Keys, ", "))
		}
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	if err := st.ResetSettings(context.Background(), args...); err != nil {
		return fmt.Errorf("failed to reset preferences: %w", err)
	}
	return nil
}

func knownPrefKey(key string) bool {
	for _, k := range prefs.Keys {
		if k == key {
			return true
		}
	}
	return false
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
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

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# dailyquotes configuration
# Uncomment a value to enable it. CLI flags override config values.
# Toggles made in the app (animations, theme, language) are saved and win
# over the [display] values below.

[display]
# lang = %q               # Language code: en or ru
# animations = true        # Type quotes instead of fading them
# black = true             # Dark theme
# quotes = ""              # Quotes JSON file or http(s) URL

[timing]
# type-ms = %d             # Delay per typed character
# delete-ms = %d           # Delay per deleted character
# hold-ms = %d           # Time a full quote stays on screen
# gap-ms = %d             # Pause between typed quotes
# fade-ms = %d            # Fade-out time without animations
`,
		defaultLang,
		defaultTypeMs,
		defaultDeleteMs,
		defaultHoldMs,
		defaultGapMs,
		defaultFadeMs,
	)
}

func validateTimings() error {
	checks := []struct {
		flag  string
		value int
	}{
		{"type-ms", appTypeMs},
		{"delete-ms", appDeleteMs},
		{"hold-ms", appHoldMs},
		{"gap-ms", appGapMs},
		{"fade-ms", appFadeMs},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return fmt.Errorf("--%s must be > 0", c.flag)
		}
	}
	return nil
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
