package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/catalog"
	"github.com/elevesuaedicao-rgb/eleve-knowledge/internal/progress"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <unit-id>",
	Short: "Take a formal mastery quiz for a unit",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuiz,
}

func init() {
	quizCmd.Flags().Int("count", progress.DefaultQuizLength, "Number of quiz questions")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	gw, cleanup, err := openGateway(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	unitID := args[0]
	count, _ := cmd.Flags().GetInt("count")
	svc := progress.NewService(gw, nil)

	questions := svc.GenerateMasteryQuestions(unitID, count)
	if len(questions) == 0 {
		return fmt.Errorf("no questions available for unit %q", unitID)
	}

	title := unitID
	if u, ok := catalog.UnitByID(unitID); ok {
		title = u.Title
	}
	fmt.Println(styleTitle.Render(fmt.Sprintf("Prova de domínio — %s (%d questões)", title, len(questions))))
	fmt.Println()

	reader := bufio.NewScanner(os.Stdin)
	answers := make([]string, 0, len(questions))
	for i, q := range questions {
		fmt.Printf("%s %s\n", styleHighlight.Render(fmt.Sprintf("[%d/%d]", i+1, len(questions))), q.Prompt)
		for j, opt := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}
		fmt.Print("> ")
		if !reader.Scan() {
			break
		}
		answers = append(answers, resolveChoice(strings.TrimSpace(reader.Text()), q.Options))
	}

	outcome, err := svc.SubmitMasteryResult(cmd.Context(), resolveStudent(cmd), unitID, questions, answers)
	if err != nil {
		return err
	}

	fmt.Println()
	if outcome.Result.Passed {
		fmt.Println(styleCorrect.Render(fmt.Sprintf("Aprovado! Nota: %d", outcome.Result.Score)))
	} else {
		fmt.Println(styleWrong.Render(fmt.Sprintf("Nota: %d (mínimo para aprovação: %d)", outcome.Result.Score, progress.PassScore)))
	}
	fmt.Printf("Domínio da unidade: %d%% — %s\n", outcome.Progress.MasteryPercent, outcome.Progress.Status)
	for _, w := range outcome.WeakTopics {
		label := w.TopicID
		if t, ok := catalog.TopicByID(w.TopicID); ok {
			label = t.Title
		}
		fmt.Println(styleDim.Render(fmt.Sprintf("  revisar: %s (%d erros)", label, w.Count)))
	}
	return nil
}
