package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all learner data",
	Long:  "Reset wipes sessions, attempts, progress, tracks and profiles. The seeded catalog is untouched.",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, _ []string) error {
	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		fmt.Print("This erases ALL learner data. Type 'yes' to continue: ")
		reader := bufio.NewScanner(os.Stdin)
		if !reader.Scan() || strings.TrimSpace(reader.Text()) != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	gw, cleanup, err := openGateway(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	err = gw.Update(cmd.Context(), func(d *store.Document) error {
		*d = *store.NewDocument()
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Println("Learner data erased.")
	return nil
}
