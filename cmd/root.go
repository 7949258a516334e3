package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "eleve",
	Short: "Self-practice knowledge engine",
	Long:  "Eleve — adaptive practice sessions, mastery quizzes and progress tracking for the Eleve tutoring platform.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ELEVE_DB env var)")
	rootCmd.PersistentFlags().String("student", "", "Student id (overrides ELEVE_STUDENT env var)")
	rootCmd.PersistentFlags().String("grade", "", "Grade year, e.g. \"9º Ano EF\" (overrides ELEVE_GRADE env var)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(tracksCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then ELEVE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveStudent returns the learner id from --student or ELEVE_STUDENT.
// An empty result degrades mutating commands to "not authenticated".
func resolveStudent(cmd *cobra.Command) string {
	if s, _ := cmd.Flags().GetString("student"); s != "" {
		return s
	}
	return os.Getenv("ELEVE_STUDENT")
}

// resolveGrade returns the grade-year string from --grade or ELEVE_GRADE.
func resolveGrade(cmd *cobra.Command) string {
	if g, _ := cmd.Flags().GetString("grade"); g != "" {
		return g
	}
	return os.Getenv("ELEVE_GRADE")
}

// openGateway opens the SQLite-backed store gateway. The returned cleanup
// closes the database.
func openGateway(cmd *cobra.Command) (*store.Gateway, func(), error) {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	log := zap.NewNop()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		if dev, err := zap.NewDevelopment(); err == nil {
			log = dev
		}
	}

	gw := store.NewGateway(st.Blob(store.DocumentName), log)
	cleanup := func() {
		_ = log.Sync()
		_ = st.Close()
	}
	return gw, cleanup, nil
}
