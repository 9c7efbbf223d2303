package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/investlab/investlab"
	"github.com/investlab/investlab/learn"
	"github.com/investlab/investlab/renderer"
)

type quizCmd struct {
	answers string
}

func (*quizCmd) Name() string     { return "quiz" }
func (*quizCmd) Synopsis() string { return "take a quiz" }
func (*quizCmd) Usage() string {
	return `ivl quiz [<quiz-id>] [-answers n,n,...]

  Without argument, lists the quizzes and the latest recorded scores.
  With a quiz id, shows its questions; add -answers to grade them
  (answers are option numbers as displayed, one per question, in order).
`
}

func (p *quizCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.answers, "answers", "", "Comma-separated answers to grade.")
}

func (p *quizCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	progress, err := store.LoadProgress()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 0 {
		printMarkdown(renderer.QuizList(progress))
		return subcommands.ExitSuccess
	}

	quiz, ok := learn.GetQuiz(f.Arg(0))
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown quiz %q, run `ivl quiz` to list them\n", f.Arg(0))
		return subcommands.ExitFailure
	}

	if p.answers == "" {
		printMarkdown(renderer.Quiz(quiz))
		return subcommands.ExitSuccess
	}

	answers, err := parseAnswers(p.answers, len(quiz.Questions))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	score := investlab.Grade(quiz, answers)
	progress.RecordQuizScore(quiz.ID, score)
	if err := store.SaveProgress(progress); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.QuizResult(quiz, answers, score))
	return subcommands.ExitSuccess
}

func parseAnswers(s string, want int) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != want {
		return nil, fmt.Errorf("expected %d answers, got %d", want, len(parts))
	}
	answers := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid answer %q: %w", part, err)
		}
		// Displayed option numbers are 1-based.
		answers[i] = n - 1
	}
	return answers, nil
}
