// Package cli implements the packlens command line.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/packlens/backend/internal/corpus"
	"github.com/packlens/backend/internal/infrastructure/vocabfile"
	"github.com/packlens/backend/internal/logging"
	"github.com/packlens/backend/internal/multipack"
)

// Version is set at build time with -ldflags
var Version = "dev"

// options carries global flag values to subcommands
type options struct {
	verbosity      int
	vocabularyFile string
}

// classifier builds the classifier for this invocation
func (o *options) classifier() (*multipack.Classifier, error) {
	if o.vocabularyFile == "" {
		return multipack.Default(), nil
	}
	v, err := vocabfile.LoadMerged(o.vocabularyFile)
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadVocab, err)
	}
	c, err := multipack.New(v)
	if err != nil {
		return nil, fmt.Errorf(MsgErrBuildClass, err)
	}
	log.Debug().
		Str("file", o.vocabularyFile).
		Int("fragments", c.Matcher().Len()).
		Msg("Loaded extra vocabulary")
	return c, nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "packlens",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupVerbosity(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.vocabularyFile, "vocabulary", "", MsgFlagVocabulary)

	rootCmd.AddCommand(newClassifyCmd(opts))
	rootCmd.AddCommand(newExplainCmd(opts))
	rootCmd.AddCommand(newEvalCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newClassifyCmd(opts *options) *cobra.Command {
	var boolOnly bool

	cmd := &cobra.Command{
		Use:   "classify [title...]",
		Short: MsgClassifyShort,
		Long: MsgClassifyShort + `.

Titles are taken from the arguments, or one per line from stdin when no
arguments are given. A blank stdin line is classified as false, so output
stays line-aligned with input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.classifier()
			if err != nil {
				return err
			}
			titles, err := readTitles(cmd.InOrStdin(), args, true)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, title := range titles {
				result := c.IsMultipack(title)
				if boolOnly {
					fmt.Fprintf(out, MsgBoolLine, result)
				} else {
					fmt.Fprintf(out, MsgClassifyLine, result, title)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&boolOnly, "bool-only", false, MsgFlagBoolOnly)
	return cmd
}

func newExplainCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "explain [title...]",
		Short: MsgExplainShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.classifier()
			if err != nil {
				return err
			}
			titles, err := readTitles(cmd.InOrStdin(), args, false)
			if err != nil {
				return err
			}
			if len(titles) == 0 {
				return errors.New(MsgErrNoTitles)
			}

			out := cmd.OutOrStdout()
			for i, title := range titles {
				if i > 0 {
					fmt.Fprintln(out)
				}
				d := c.Classify(title)
				fmt.Fprintf(out, MsgExplainTitle, d.Title)
				fmt.Fprintf(out, MsgExplainResult, d.Multipack)
				if d.Rule != "" {
					fmt.Fprintf(out, MsgExplainRule, d.Rule)
				}
				if d.Fragment != "" {
					fmt.Fprintf(out, MsgExplainFragment, d.Fragment)
				}
			}
			return nil
		},
	}
}

func newEvalCmd(opts *options) *cobra.Command {
	var corpusFile string

	cmd := &cobra.Command{
		Use:   "eval",
		Short: MsgEvalShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.classifier()
			if err != nil {
				return err
			}
			cases, err := loadCorpus(corpusFile)
			if err != nil {
				return err
			}

			report := corpus.Evaluate(c, cases)

			out := cmd.OutOrStdout()
			fmt.Fprint(out, MsgEvalSeparator)
			for _, r := range report.Results {
				if r.Correct() {
					fmt.Fprintf(out, MsgEvalPass, r.Title, r.Got.Multipack, r.Want)
				} else {
					fmt.Fprintf(out, MsgEvalFail, r.Title, r.Got.Multipack, r.Want, ruleOrNone(r.Got.Rule))
				}
			}
			fmt.Fprint(out, MsgEvalSeparator)
			fmt.Fprintf(out, MsgEvalAccuracy, report.CorrectCount(), report.Total(), report.Accuracy()*100)

			if missed := len(report.Mismatches()); missed > 0 {
				return fmt.Errorf(MsgErrBelowAccuracy, missed, report.Total())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&corpusFile, "file", "f", "", MsgFlagCorpusFile)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, Version)
		},
	}
}

// readTitles returns args, or the trimmed lines of in when args is empty.
// Blank lines are dropped unless keepBlank is set.
func readTitles(in io.Reader, args []string, keepBlank bool) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var titles []string
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" && !keepBlank {
			continue
		}
		titles = append(titles, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf(MsgErrReadInput, err)
	}
	return titles, nil
}

func loadCorpus(path string) ([]corpus.Case, error) {
	if path == "" {
		return corpus.Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf(MsgErrOpenCorpus, err)
	}
	defer f.Close()
	return corpus.Load(f)
}

func ruleOrNone(rule string) string {
	if rule == "" {
		return "no rule"
	}
	return rule
}
