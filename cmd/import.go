package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/tracks"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import custom units from a JSON file",
	Long:  "Import learner-authored units (with topics) from a JSON file validated against the catalog schema.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	gw, cleanup, err := openGateway(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}

	n, err := tracks.NewService(gw, nil).Import(cmd.Context(), resolveStudent(cmd), raw)
	if err != nil {
		return err
	}
	fmt.Printf("%d unidade(s) importada(s).\n", n)
	return nil
}
