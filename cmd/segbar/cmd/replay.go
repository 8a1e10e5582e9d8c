package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/segbar/pkg/render"
	"github.com/OpenTraceLab/segbar/pkg/script"
	"github.com/OpenTraceLab/segbar/pkg/segment"
)

var (
	replayStrict bool
	replayWidth  int
)

var replayCmd = &cobra.Command{
	Use:   "replay <script|->",
	Short: "Apply a scripted editing session",
	Long: `Replay a script of editing operations against a fresh partition and
print the result. Use "-" to read the script from stdin.

Statements are separated by newlines or ';', indices are 0-based and
'//' starts a comment:

  count 5
  resize 0 +10        // pointer, percent delta
  drag 1 -40 400      // pointer, pixel delta, bar width
  color 2 #FF6347
  select 1
  next | prev | clear
  click 1.5708        // radians
  clickdeg 90
  unit currency 2000
  show
  check

Examples:
  segbar replay session.seg
  echo "resize 0 10; show" | segbar replay -
  segbar replay --strict --count 6 session.seg`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	addPartitionFlags(replayCmd)
	replayCmd.Flags().BoolVar(&replayStrict, "strict", false, "check partition invariants after every statement")
	replayCmd.Flags().IntVarP(&replayWidth, "width", "w", 40, "text bar width in characters")
}

func runReplay(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	opts, err := loadOptions(cmd, logger)
	if err != nil {
		return err
	}

	parser, err := script.NewParser()
	if err != nil {
		return err
	}

	var prog *script.Program
	if name := args[0]; name == "-" {
		prog, err = parser.Parse("<stdin>", cmd.InOrStdin())
	} else {
		prog, err = parser.ParseFile(name)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	part := segment.New(opts)
	runner := script.NewRunner(part, out, logger.Named("replay"))
	runner.Strict = replayStrict
	runner.BarWidth = replayWidth
	runner.FallbackTotal = opts.TotalValue

	if err := runner.Run(prog); err != nil {
		return fmt.Errorf("%s: %w", scriptName(args[0]), err)
	}

	fmt.Fprintf(out, "Applied %d statement(s)\n", runner.Steps())
	if err := render.WriteSummary(out, part.Snapshot(), replayWidth); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

func scriptName(arg string) string {
	if arg == "-" {
		return "<stdin>"
	}
	return arg
}
