package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shotwiz/internal/config"
	"shotwiz/internal/db"
	"shotwiz/internal/logging"
	"shotwiz/internal/screenshot"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "shotwiz",
	Short: "Screenshot Wizard: rename and organize screenshots",
	Long: `shotwiz finds the newest screenshots in your Screenshots directory, copies them
into a categorized tree under a meaningful name, and lists, searches and inspects
screenshots in both places.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// environment holds the components one command invocation works with.
type environment struct {
	cfg       *config.Config
	log       *zap.Logger
	finder    *screenshot.Finder
	catalog   *screenshot.Catalog
	organizer *screenshot.Organizer
	store     *db.Store
}

func setup(cmd *cobra.Command) (*environment, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logging.NewWithWriter(cfg.Logger, verbose, cmd.ErrOrStderr())

	env := &environment{
		cfg:       cfg,
		log:       log,
		finder:    screenshot.NewFinder(cfg, log),
		catalog:   screenshot.NewCatalog(cfg, log),
		organizer: screenshot.NewOrganizer(cfg, log),
	}
	return env, nil
}

// openHistory opens the placement journal and attaches it to the organizer.
// Read-only commands never call it, so they leave no files behind.
func (e *environment) openHistory() {
	if !e.cfg.HistoryEnabled || e.store != nil {
		return
	}
	store, err := db.New(e.cfg.HistoryPath)
	if err != nil {
		e.log.Warn("history unavailable", zap.String("path", e.cfg.HistoryPath), zap.Error(err))
		return
	}
	e.store = store
	e.organizer.WithRecorder(store)
}

func (e *environment) requireStore() (*db.Store, error) {
	if !e.cfg.HistoryEnabled {
		return nil, fmt.Errorf("history is disabled (SHOTWIZ_HISTORY=false)")
	}
	e.openHistory()
	if e.store == nil {
		return nil, fmt.Errorf("history database %s could not be opened", e.cfg.HistoryPath)
	}
	return e.store, nil
}

func (e *environment) Close() {
	if e.store != nil {
		e.store.Close()
	}
	_ = e.log.Sync()
}

// styled reports whether cmd writes to a terminal.
func styled(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && isTerminal(f)
}

// styledErr reports whether cmd writes diagnostics to a terminal.
func styledErr(cmd *cobra.Command) bool {
	f, ok := cmd.ErrOrStderr().(*os.File)
	return ok && isTerminal(f)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
