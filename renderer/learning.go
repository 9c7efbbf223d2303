package renderer

import (
	"fmt"
	"strings"

	"github.com/investlab/investlab"
	"github.com/investlab/investlab/learn"
)

// Tutorials renders the learning track with completion marks.
func Tutorials(progress investlab.Progress) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "# Learn\n\n")
	for _, m := range learn.Modules {
		mark := " "
		if progress.Completed(m.ID) {
			mark = "x"
		}
		fmt.Fprintf(b, "- [%s] **%s. %s** — %s\n", mark, m.ID, m.Title, m.Description)
	}
	fmt.Fprintf(b, "\nCompleted: %d%%\n", progress.Percent(len(learn.Modules)))
	return b.String()
}

// QuizList renders the available quizzes with any recorded score.
func QuizList(progress investlab.Progress) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "# Quizzes\n\n")
	for _, q := range learn.Quizzes {
		if score, ok := progress.QuizScores[q.ID]; ok {
			fmt.Fprintf(b, "- **%s** — %s (last score %d/%d)\n", q.ID, q.Title, score, len(q.Questions))
		} else {
			fmt.Fprintf(b, "- **%s** — %s (not attempted)\n", q.ID, q.Title)
		}
	}
	return b.String()
}

// Quiz renders the questions of a quiz with numbered options.
func Quiz(q learn.Quiz) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "# %s\n\n", q.Title)
	for i, question := range q.Questions {
		fmt.Fprintf(b, "**%d. %s**\n\n", i+1, question.Text)
		for j, opt := range question.Options {
			fmt.Fprintf(b, "%d. %s\n", j+1, opt)
		}
		fmt.Fprintf(b, "\n")
	}
	fmt.Fprintf(b, "Answer with `-answers n,n,...` using option numbers.\n")
	return b.String()
}

// QuizResult renders a graded attempt question by question.
func QuizResult(q learn.Quiz, answers []int, score int) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "# %s — %d/%d\n\n", q.Title, score, len(q.Questions))
	for i, question := range q.Questions {
		verdict := "missed"
		if i < len(answers) {
			if answers[i] == question.Answer {
				verdict = "correct"
			} else {
				verdict = fmt.Sprintf("wrong, answer: %s", question.Options[question.Answer])
			}
		}
		fmt.Fprintf(b, "%d. %s — *%s*\n", i+1, question.Text, verdict)
	}
	return b.String()
}

// Profile renders the logged-in user's summary: identity, learning
// progress, and the simulated portfolio value.
func Profile(user *investlab.User, p investlab.Portfolio, m *investlab.Market, progress investlab.Progress, lang investlab.Language) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "# %s\n\n", user.Name)
	fmt.Fprintf(b, "- Email: %s\n", user.Email)
	fmt.Fprintf(b, "- Language: %s\n", lang.Name)
	fmt.Fprintf(b, "- Learning progress: %d%%\n", progress.Percent(len(learn.Modules)))
	fmt.Fprintf(b, "- Portfolio value: %s\n", p.Value(m))
	fmt.Fprintf(b, "- Simulated P&L: %s\n", p.TotalPL(m).SignedString())
	return b.String()
}
