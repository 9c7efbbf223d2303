package learn

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestModules(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range Modules {
		if seen[m.ID] {
			t.Errorf("duplicate module id %q", m.ID)
		}
		seen[m.ID] = true

		got, ok := Get(m.ID)
		if !ok || got.Title != m.Title {
			t.Errorf("Get(%q) = %+v, %v", m.ID, got, ok)
		}
	}
	if _, ok := Get("99"); ok {
		t.Error("Get(99) found a module that does not exist")
	}
}

// Every tutorial must load from the embedded FS and open with a level-1
// heading matching its title, so the rendered lesson is self-describing.
func TestTutorialContent(t *testing.T) {
	for _, m := range Modules {
		t.Run(m.ID, func(t *testing.T) {
			content, err := m.Content()
			if err != nil {
				t.Fatalf("Content() error = %v", err)
			}

			source := []byte(content)
			root := goldmark.DefaultParser().Parse(text.NewReader(source))

			var firstHeading string
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering || firstHeading != "" {
					return ast.WalkContinue, nil
				}
				if h, ok := n.(*ast.Heading); ok {
					if h.Level != 1 {
						t.Errorf("first heading is level %d, want 1", h.Level)
					}
					var sb strings.Builder
					for i := 0; i < h.Lines().Len(); i++ {
						line := h.Lines().At(i)
						sb.Write(line.Value(source))
					}
					firstHeading = strings.TrimSpace(sb.String())
					return ast.WalkStop, nil
				}
				return ast.WalkContinue, nil
			})

			if firstHeading == "" {
				t.Fatal("tutorial has no heading")
			}
			if firstHeading != m.Title {
				t.Errorf("heading %q does not match title %q", firstHeading, m.Title)
			}
		})
	}
}

func TestQuizzes(t *testing.T) {
	for _, q := range Quizzes {
		t.Run(q.ID, func(t *testing.T) {
			got, ok := GetQuiz(q.ID)
			if !ok || got.Title != q.Title {
				t.Errorf("GetQuiz(%q) = %+v, %v", q.ID, got, ok)
			}
			if len(q.Questions) == 0 {
				t.Fatal("quiz has no questions")
			}
			for i, question := range q.Questions {
				if len(question.Options) < 2 {
					t.Errorf("question %d has %d options", i, len(question.Options))
				}
				if question.Answer < 0 || question.Answer >= len(question.Options) {
					t.Errorf("question %d answer %d out of range [0,%d)", i, question.Answer, len(question.Options))
				}
			}
		})
	}
	if _, ok := GetQuiz("nope"); ok {
		t.Error("GetQuiz(nope) found a quiz that does not exist")
	}
}
