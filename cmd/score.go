package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/riskready/internal/advisor"
	"github.com/abhisek/riskready/internal/answers"
	"github.com/abhisek/riskready/internal/logger"
	"github.com/abhisek/riskready/internal/report"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a set of answers without the interactive UI",
	Long: "Score answers read from a JSON file (use - for stdin) and/or given as\n" +
		"key=value pairs. Unanswered questions take the engine's defaults.",
	Example: "  riskready score --file answers.json\n" +
		"  riskready score --answer interest_finance=8 --answer numerical_reasoning=1 --json",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		pairs, _ := cmd.Flags().GetStringArray("answer")
		asJSON, _ := cmd.Flags().GetBool("json")
		advise, _ := cmd.Flags().GetBool("advise")

		set, err := loadAnswers(file, pairs, cmd.InOrStdin())
		if err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		r := report.Build(set)
		log.Debug("answers scored",
			zap.Int("answered", set.Len()),
			zap.String("recommendation", string(r.Recommendation)),
		)

		out := cmd.OutOrStdout()
		if asJSON {
			return report.NewExport(uuid.New(), set, r, time.Now()).Encode(out)
		}
		if err := report.WriteText(out, r); err != nil {
			return err
		}
		if !advise {
			return nil
		}

		adv, err := newAdvisor(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		if adv == nil {
			return errors.New("--advise needs an LLM provider; set llm.provider or an API key such as ANTHROPIC_API_KEY")
		}
		n, err := adv.Advise(cmd.Context(), r)
		if err != nil {
			return err
		}
		writeNarrative(out, n)
		return nil
	},
}

func init() {
	scoreCmd.Flags().String("file", "", "JSON object of question keys to values (- reads stdin)")
	scoreCmd.Flags().StringArray("answer", nil, "Answer as key=value; repeatable, overrides --file")
	scoreCmd.Flags().Bool("json", false, "Print the schema-validated export instead of text")
	scoreCmd.Flags().Bool("advise", false, "Append coaching notes from the configured LLM provider")
	scoreCmd.MarkFlagsMutuallyExclusive("json", "advise")
}

// loadAnswers reads path (stdin for "-") and overlays the key=value pairs.
func loadAnswers(path string, pairs []string, stdin io.Reader) (answers.Set, error) {
	set := answers.New()
	if path != "" {
		r := stdin
		if path != "-" {
			f, err := os.Open(path)
			if err != nil {
				return nil, fmt.Errorf("open answers: %w", err)
			}
			defer f.Close()
			r = f
		}
		decoded, err := answers.Decode(r)
		if err != nil {
			return nil, err
		}
		set.Merge(decoded)
	}

	if len(pairs) > 0 {
		parsed, err := answers.ParsePairs(pairs)
		if err != nil {
			return nil, err
		}
		set.Merge(parsed)
	}
	return set, nil
}

func writeNarrative(w io.Writer, n *advisor.Narrative) {
	fmt.Fprintf(w, "\nCoaching\n  %s\n\n  %s\n", n.Headline, n.Summary)
	fmt.Fprintf(w, "\n  Strengths\n    - %s\n", strings.Join(n.Strengths, "\n    - "))
	fmt.Fprintf(w, "\n  Focus areas\n    - %s\n", strings.Join(n.FocusAreas, "\n    - "))
}
