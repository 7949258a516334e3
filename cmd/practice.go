package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/catalog"
	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/session"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Run an adaptive practice session",
	RunE:  runPractice,
}

func init() {
	practiceCmd.Flags().String("subject", "", "Subject key (matematica, fisica, quimica)")
	practiceCmd.Flags().String("unit", "", "Practice a single unit by id")
	practiceCmd.Flags().String("track", "", "Practice a track by id")
	practiceCmd.Flags().String("source", "", "Unit source: track, unit or errors")
	practiceCmd.Flags().String("mode", "MIXED", "Focus mode: N1, N2 or MIXED")
	practiceCmd.Flags().String("mood", "ok", "Mood: low, ok or high")
	practiceCmd.Flags().Int("time", session.TimeBoxMedium, "Time box in minutes: 5, 15 or 30")
}

func runPractice(cmd *cobra.Command, _ []string) error {
	gw, cleanup, err := openGateway(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	cfg := practiceConfig(cmd)
	svc := session.NewService(gw, nil)
	ctx := cmd.Context()
	student := resolveStudent(cmd)

	sess, items, err := svc.Create(ctx, student, cfg)
	if err != nil {
		return err
	}
	if err := svc.Start(ctx, student, sess.ID); err != nil {
		return err
	}

	fmt.Println(styleTitle.Render(fmt.Sprintf("Sessão de %s — %d questões", sess.SubjectKey, len(items))))
	fmt.Println(styleDim.Render("Digite sua resposta e pressione Enter. Linha vazia pula a questão."))
	fmt.Println()

	reader := bufio.NewScanner(os.Stdin)
	for i, item := range items {
		fmt.Printf("%s %s\n", styleHighlight.Render(fmt.Sprintf("[%d/%d]", i+1, len(items))), item.Prompt)
		for j, opt := range item.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}
		fmt.Print("> ")
		if !reader.Scan() {
			break
		}
		answer := resolveChoice(strings.TrimSpace(reader.Text()), item.Options)
		if answer == "" {
			continue
		}

		fb, err := svc.SaveAttempt(ctx, session.AttemptInput{
			SessionID: sess.ID,
			ItemID:    item.ID,
			Answer:    answer,
		})
		if err != nil {
			return err
		}
		if fb.Correct {
			fmt.Println(styleCorrect.Render("✔ Correto!"))
		} else {
			fmt.Println(styleWrong.Render(fmt.Sprintf("✘ Resposta esperada: %s", fb.CorrectAnswer)))
		}
		if fb.Explanation != "" {
			fmt.Println(styleDim.Render(fb.Explanation))
		}
		fmt.Println()
	}

	summary, err := svc.Complete(ctx, student, sess.ID)
	if err != nil {
		return err
	}
	printSummary(summary)
	return nil
}

func practiceConfig(cmd *cobra.Command) session.Config {
	subject, _ := cmd.Flags().GetString("subject")
	unit, _ := cmd.Flags().GetString("unit")
	track, _ := cmd.Flags().GetString("track")
	source, _ := cmd.Flags().GetString("source")
	mode, _ := cmd.Flags().GetString("mode")
	mood, _ := cmd.Flags().GetString("mood")
	timeBox, _ := cmd.Flags().GetInt("time")

	if source == "" {
		switch {
		case track != "":
			source = string(session.SourceTrack)
		case unit != "":
			source = string(session.SourceUnit)
		}
	}

	return session.Config{
		SubjectKey: subject,
		Source:     session.Source(source),
		TrackID:    track,
		UnitID:     unit,
		Mode:       catalog.FocusMode(strings.ToUpper(mode)),
		Mood:       session.Mood(strings.ToLower(mood)),
		TimeBoxMin: timeBox,
		GradeYear:  resolveGrade(cmd),
	}
}

// resolveChoice maps a numeric multiple-choice pick onto its option text.
func resolveChoice(answer string, options []string) string {
	if len(options) == 0 {
		return answer
	}
	if n := len(answer); n == 1 && answer[0] >= '1' && int(answer[0]-'0') <= len(options) {
		return options[answer[0]-'1']
	}
	return answer
}

func printSummary(sum *session.Summary) {
	fmt.Println(styleTitle.Render("Resumo da sessão"))
	fmt.Printf("  Pontuação: %d%%  (%d certas, %d erradas)\n", sum.ScorePercent, sum.CorrectCount, sum.WrongCount)
	fmt.Printf("  Pontos ganhos: %d  (total %d)\n", sum.GainedPoints, sum.TotalPoints)
	fmt.Printf("  Sequência de dias: %d\n", sum.Streak)
	if len(sum.WeakTopics) > 0 {
		fmt.Println(styleDim.Render("  Tópicos para revisar:"))
		for _, w := range sum.WeakTopics {
			label := w.TopicID
			if t, ok := catalog.TopicByID(w.TopicID); ok {
				label = t.Title
			}
			fmt.Printf("    • %s (%d erros)\n", label, w.Count)
		}
	}
}
