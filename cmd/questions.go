package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/riskready/internal/questionnaire"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the assessment sections and questions",
	Long: "List every section and question with the key and value range to use\n" +
		"in an answers file or with score --answer.",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			return writeQuestionsJSON(cmd.OutOrStdout())
		}
		return writeQuestions(cmd.OutOrStdout())
	},
}

func init() {
	questionsCmd.Flags().Bool("json", false, "Print the questionnaire as JSON")
}

type questionJSON struct {
	Key      string   `json:"key"`
	Text     string   `json:"text"`
	Kind     string   `json:"kind"`
	Options  []string `json:"options,omitempty"`
	Min      *int     `json:"min,omitempty"`
	Max      *int     `json:"max,omitempty"`
	MinLabel string   `json:"min_label,omitempty"`
	MaxLabel string   `json:"max_label,omitempty"`
}

type sectionJSON struct {
	Key         string         `json:"key"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Questions   []questionJSON `json:"questions"`
}

func writeQuestionsJSON(w io.Writer) error {
	var out []sectionJSON
	for _, s := range questionnaire.Sections() {
		sec := sectionJSON{Key: s.Key, Title: s.Title, Description: s.Description}
		for _, q := range s.Questions {
			qj := questionJSON{Key: q.Key.String(), Text: q.Text, Kind: string(q.Kind)}
			switch q.Kind {
			case questionnaire.KindSingleChoice:
				qj.Options = q.Choice.Options
			case questionnaire.KindRatingScale:
				lo, hi := q.Rating.Min, q.Rating.Max
				qj.Min, qj.Max = &lo, &hi
				qj.MinLabel, qj.MaxLabel = q.Rating.MinLabel, q.Rating.MaxLabel
			}
			sec.Questions = append(sec.Questions, qj)
		}
		out = append(out, sec)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}
	return nil
}

func writeQuestions(w io.Writer) error {
	fmt.Fprintln(w, questionnaire.Title)
	for i, s := range questionnaire.Sections() {
		fmt.Fprintf(w, "\n%d. %s\n   %s\n", i+1, s.Title, s.Description)
		for _, q := range s.Questions {
			fmt.Fprintf(w, "\n   %s\n   %s\n", q.Key, q.Text)
			switch q.Kind {
			case questionnaire.KindSingleChoice:
				for j, opt := range q.Choice.Options {
					fmt.Fprintf(w, "     %d = %s\n", j, opt)
				}
			case questionnaire.KindRatingScale:
				fmt.Fprintf(w, "     %d (%s) .. %d (%s)\n",
					q.Rating.Min, q.Rating.MinLabel, q.Rating.Max, q.Rating.MaxLabel)
			}
		}
	}
	return nil
}
