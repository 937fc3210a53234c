package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nhle/notes/internal/app"
	"github.com/nhle/notes/internal/logging"
	"github.com/nhle/notes/internal/model"
	"github.com/nhle/notes/internal/notes"
	"github.com/nhle/notes/internal/store"
)

var (
	configPath string
	dbPath     string
	verbose    bool
)

// session is what every subcommand works with: the loaded configuration,
// the open database and the note collection read from it.
type session struct {
	cfg   *model.AppConfig
	log   *zap.Logger
	db    *store.SQLiteStore
	notes *notes.Store
}

var current *session

var rootCmd = &cobra.Command{
	Use:   "notes",
	Short: "Keep notes in your terminal",
	Long: `notes keeps a personal collection of notes with tags, label colours,
pinning, archiving and a trash. Run without arguments for the interactive UI;
the subcommands operate on the same local database.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context())
		if err != nil {
			return err
		}
		current = s
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(current)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", model.DefaultConfigPath(), "path to the config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the notes database (overrides storage.path)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
}

func openSession(ctx context.Context) (*session, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := model.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.Storage.Path = dbPath
	}

	log, err := logging.New(cfg.Log, verbose)
	if err != nil {
		return nil, err
	}

	db, err := store.NewSQLiteStore(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	ns := notes.New(db, notes.WithLogger(log))
	if err := ns.Load(ctx); err != nil {
		// Continuing would overwrite the unreadable slot on the first write.
		_ = db.Close()
		return nil, err
	}
	schema, err := db.SchemaVersion(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	log.Debug("session opened",
		zap.String("db", cfg.Storage.Path),
		zap.Int("schema", schema),
		zap.Int("notes", ns.Len()),
	)

	return &session{cfg: cfg, log: log, db: db, notes: ns}, nil
}

// closeSession flushes the logger and closes the database. main calls it
// after Execute, which also covers commands that failed.
func closeSession() error {
	if current == nil {
		return nil
	}
	s := current
	current = nil
	_ = s.log.Sync()
	return s.db.Close()
}

func runTUI(s *session) error {
	color, _ := model.ParseColor(s.cfg.Display.DefaultColor)
	m := app.New(s.notes, s.db, app.Options{
		DefaultColor: color,
		SystemDark:   lipgloss.HasDarkBackground(),
		ConfigPath:   configPath,
		Config:       *s.cfg,
		Logger:       s.log,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}
