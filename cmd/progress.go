package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/catalog"
	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/grade"
	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/progress"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show unit progress, weak topics and study insights",
	RunE:  runProgress,
}

func init() {
	progressCmd.Flags().String("subject", "", "Limit to one subject key")
}

func runProgress(cmd *cobra.Command, _ []string) error {
	gw, cleanup, err := openGateway(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	student := resolveStudent(cmd)
	svc := progress.NewService(gw, nil)
	ctx := cmd.Context()
	gradeLevel := grade.Parse(resolveGrade(cmd))

	subjects := catalog.Subjects()
	if key, _ := cmd.Flags().GetString("subject"); key != "" {
		if s, ok := catalog.SubjectByKey(key); ok {
			subjects = []catalog.Subject{s}
		}
	}

	for _, subj := range subjects {
		units := catalog.UnitsForGrade(subj.Key, gradeLevel)
		if len(units) == 0 {
			continue
		}
		fmt.Println(styleTitle.Render(fmt.Sprintf("%s %s", subj.Icon, subj.Name)))
		for _, u := range units {
			p, err := svc.UnitProgress(ctx, student, u.ID)
			if err != nil {
				return err
			}
			fmt.Printf("  %-28s %3d%%  %s\n", u.Title, p.MasteryPercent, styleDim.Render(string(p.Status)))
		}
		fmt.Println()
	}

	weak, err := svc.WeakTopics(ctx, student, progress.DefaultWeakTopicLimit)
	if err != nil {
		return err
	}
	if len(weak) > 0 {
		fmt.Println(styleTitle.Render("Tópicos fracos"))
		for _, w := range weak {
			label := w.TopicID
			if t, ok := catalog.TopicByID(w.TopicID); ok {
				label = t.Title
			}
			fmt.Printf("  %s — %d erros\n", label, w.Count)
		}
		fmt.Println()
	}

	insights, err := svc.Insights(ctx, student, 3)
	if err != nil {
		return err
	}
	if len(insights) > 0 {
		fmt.Println(styleTitle.Render("Dicas de estudo"))
		for _, in := range insights {
			fmt.Printf("  %s\n", styleHighlight.Render(in.Title))
			fmt.Printf("  %s\n", styleDim.Render(in.Body))
		}
	}
	return nil
}
