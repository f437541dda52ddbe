package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plaroindia/Pearl/internal/config"
	"github.com/plaroindia/Pearl/internal/confidence"
	"github.com/plaroindia/Pearl/internal/journey"
	"github.com/plaroindia/Pearl/internal/llm"
	"github.com/plaroindia/Pearl/internal/pathgen"
	"github.com/plaroindia/Pearl/internal/practice"
	"github.com/plaroindia/Pearl/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "pearl",
	Short: "AI career learning mentor",
	Long:  "Pearl — terminal mentor that turns a career goal into skill-by-skill learning paths with checkpoints.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PEARL_DB env var)")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(checkpointCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(gapsCmd)
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PEARL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// env bundles the dependencies every command needs.
type env struct {
	cfg        *config.Config
	store      *store.Store
	provider   llm.Provider
	confidence *confidence.Service
	journey    *journey.Service
	practice   *practice.Service
}

// openEnv opens the store and wires services. Without a configured LLM
// key, every generator degrades to its deterministic fallback, so the
// CLI stays usable offline.
func openEnv(cmd *cobra.Command) (*env, error) {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.Provider != "" {
		os.Setenv("PEARL_LLM_PROVIDER", cfg.Provider)
	}
	if cfg.DBPath != "" && os.Getenv("PEARL_DB") == "" {
		os.Setenv("PEARL_DB", cfg.DBPath)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Falling back to built-in templates.")
		provider = llm.NewMockProvider()
	}

	conf := confidence.NewService(st.ProfileRepo())
	genCfg := pathgen.DefaultConfig()
	if cfg.PassThreshold > 0 {
		genCfg.PassThreshold = cfg.PassThreshold
	}

	return &env{
		cfg:        cfg,
		store:      st,
		provider:   provider,
		confidence: conf,
		journey:    journey.New(provider, genCfg, st.SessionRepo(), st.PathRepo(), st.EventRepo(), conf),
		practice:   practice.NewService(provider, genCfg, st.EventRepo(), conf),
	}, nil
}

func (e *env) Close() {
	e.store.Close()
}
