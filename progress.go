package investlab

import (
	"math"
	"slices"

	"github.com/investlab/investlab/learn"
)

// Progress records what a learner has completed: tutorial ids and the last
// score of each quiz.
type Progress struct {
	CompletedTutorials []string       `json:"completedTutorials"`
	QuizScores         map[string]int `json:"quizScores"`
}

// NewProgress returns an empty learning progress.
func NewProgress() Progress {
	return Progress{
		CompletedTutorials: []string{},
		QuizScores:         map[string]int{},
	}
}

// Completed reports whether a tutorial has been finished.
func (p Progress) Completed(id string) bool {
	return slices.Contains(p.CompletedTutorials, id)
}

// CompleteTutorial marks a tutorial as finished. Completing it twice has no
// effect.
func (p *Progress) CompleteTutorial(id string) {
	if p.Completed(id) {
		return
	}
	p.CompletedTutorials = append(p.CompletedTutorials, id)
}

// RecordQuizScore stores the score of the latest attempt, replacing any
// previous one.
func (p *Progress) RecordQuizScore(id string, score int) {
	if p.QuizScores == nil {
		p.QuizScores = map[string]int{}
	}
	p.QuizScores[id] = score
}

// Percent is the rounded completion percentage over the given number of
// tutorial modules.
func (p Progress) Percent(totalModules int) int {
	if totalModules <= 0 {
		return 0
	}
	return int(math.Round(float64(len(p.CompletedTutorials)) / float64(totalModules) * 100))
}

// Grade scores a quiz attempt: one point per question answered with the
// correct option index. Missing answers count as wrong.
func Grade(quiz learn.Quiz, answers []int) int {
	score := 0
	for i, q := range quiz.Questions {
		if i < len(answers) && answers[i] == q.Answer {
			score++
		}
	}
	return score
}
