// Package tutor holds the built-in explanations and the multiple-choice quiz.
package tutor

import (
	"fmt"
	"io"

	"github.com/cwbudde/algo-elec/internal/prompt"
)

// Topic is a short explanation of one formula used by the toolkit.
type Topic struct {
	Title string
	Text  string
}

// Topics lists the explanations in display order.
var Topics = []Topic{
	{Title: "RMS", Text: "Vrms = Vp/sqrt(2) for sine waves"},
	{Title: "ADC", Text: "10-bit ADC ranges from 0 to 1023"},
	{Title: "RC Filter", Text: "fc = 1/(2*pi*R*C)"},
}

// Explain writes every topic to w.
func Explain(w io.Writer) {
	for _, t := range Topics {
		fmt.Fprintf(w, "\n%s:\n %s\n", t.Title, t.Text)
	}
}

// Question is a multiple-choice question. Answer is the 1-based index of
// the correct choice.
type Question struct {
	Prompt  string
	Choices []string
	Answer  int
}

// Quiz is the default question set.
var Quiz = []Question{
	{Prompt: "Vrms of 10 V peak?", Choices: []string{"10", "7.07", "5"}, Answer: 2},
	{Prompt: "Levels in a 10-bit ADC?", Choices: []string{"1000", "1024", "512"}, Answer: 2},
	{Prompt: "If R increases in RC filter, fc will:", Choices: []string{"increase", "decrease", "stay same"}, Answer: 2},
}

// Run asks every question through r and returns the number of correct
// answers. It stops early only when input ends.
func Run(r *prompt.Reader, questions []Question) (int, error) {
	w := r.Out()
	score := 0
	for i, q := range questions {
		fmt.Fprintf(w, "\n%d) %s\n", i+1, q.Prompt)
		for j, c := range q.Choices {
			fmt.Fprintf(w, " %d) %s ", j+1, c)
		}
		fmt.Fprintln(w)

		ans, err := r.Int("Ans: ", 1, len(q.Choices))
		if err != nil {
			return score, err
		}
		if ans == q.Answer {
			score++
			fmt.Fprintln(w, "Correct.")
		} else {
			fmt.Fprintln(w, "Wrong.")
		}
	}
	fmt.Fprintf(w, "\nScore: %d/%d\n", score, len(questions))
	return score, nil
}
