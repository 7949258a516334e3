package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/catalog"
	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/tracks"
)

var tracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "List and create study tracks",
}

var tracksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your tracks and the curated ones",
	RunE:  runTracksList,
}

var tracksNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a track from a list of units",
	RunE:  runTracksNew,
}

func init() {
	tracksNewCmd.Flags().String("name", "", "Track name")
	tracksNewCmd.Flags().String("subject", "", "Subject key")
	tracksNewCmd.Flags().String("units", "", "Comma-separated unit ids")
	tracksNewCmd.Flags().String("mode", "MIXED", "Focus mode: N1, N2 or MIXED")
	tracksNewCmd.Flags().String("objective", "", "Objective tag, e.g. enem")

	tracksCmd.AddCommand(tracksListCmd)
	tracksCmd.AddCommand(tracksNewCmd)
}

func runTracksList(cmd *cobra.Command, _ []string) error {
	gw, cleanup, err := openGateway(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Println(styleTitle.Render("Trilhas recomendadas"))
	for _, t := range catalog.Tracks() {
		fmt.Printf("  %-24s %s  %s\n", t.ID, t.Name, styleDim.Render(strings.Join(t.UnitIDs, ", ")))
	}

	mine, err := tracks.NewService(gw, nil).List(cmd.Context(), resolveStudent(cmd))
	if err != nil {
		return err
	}
	if len(mine) > 0 {
		fmt.Println()
		fmt.Println(styleTitle.Render("Minhas trilhas"))
		for _, t := range mine {
			fmt.Printf("  %-24s %s  %s\n", t.ID, t.Name, styleDim.Render(strings.Join(t.UnitIDs, ", ")))
		}
	}
	return nil
}

func runTracksNew(cmd *cobra.Command, _ []string) error {
	gw, cleanup, err := openGateway(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	name, _ := cmd.Flags().GetString("name")
	subject, _ := cmd.Flags().GetString("subject")
	units, _ := cmd.Flags().GetString("units")
	mode, _ := cmd.Flags().GetString("mode")
	objective, _ := cmd.Flags().GetString("objective")

	var unitIDs []string
	for _, id := range strings.Split(units, ",") {
		if id = strings.TrimSpace(id); id != "" {
			unitIDs = append(unitIDs, id)
		}
	}

	track, err := tracks.NewService(gw, nil).Create(cmd.Context(), resolveStudent(cmd), tracks.TrackInput{
		Name:       name,
		SubjectKey: subject,
		UnitIDs:    unitIDs,
		Mode:       catalog.FocusMode(strings.ToUpper(mode)),
		Objective:  objective,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Trilha criada: %s (%s)\n", track.Name, track.ID)
	return nil
}
