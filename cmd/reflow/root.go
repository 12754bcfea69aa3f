// Command reflow paginates an HTML or plain-text file on a fixed
// character grid and prints the resulting page tree. It exists to
// exercise the reflow engine without a real rendering surface: the grid
// oracle plays the part of the renderer.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pagemill/reflow"
	"github.com/pagemill/reflow/config"
	"github.com/pagemill/reflow/layout"
	"github.com/pagemill/reflow/logger"
	"github.com/pagemill/reflow/model"
	"github.com/pagemill/reflow/txn"
)

var (
	flagConfig       string
	flagCapacity     float64
	flagLineHeight   float64
	flagCharWidth    float64
	flagCharsPerLine int
	flagImageHeight  float64
	flagLogLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "reflow <file>",
	Short: "Paginate a document on a fixed character grid",
	Long: `reflow loads an HTML or plain-text file into a paginated document tree,
runs reflow passes until no page overflows its capacity, and prints the
resulting pages.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "YAML config file with session options")
	rootCmd.Flags().Float64Var(&flagCapacity, "capacity", 320, "page content height budget")
	rootCmd.Flags().Float64Var(&flagLineHeight, "line-height", 16, "rendered height of one text line")
	rootCmd.Flags().Float64Var(&flagCharWidth, "char-width", 8, "advance width of one character cell")
	rootCmd.Flags().IntVar(&flagCharsPerLine, "chars-per-line", 80, "characters per rendered line")
	rootCmd.Flags().Float64Var(&flagImageHeight, "image-height", 96, "rendered height of image blocks")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "warn", "log level (debug, info, warn, error)")
}

func run(cmd *cobra.Command, args []string) error {
	log := logger.New(&logger.Config{Level: flagLogLevel, Output: cmd.ErrOrStderr(), TimeFormat: "15:04:05"})

	opts := reflow.DefaultOptions()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		opts = loaded
	}
	if cmd.Flags().Changed("capacity") || flagConfig == "" {
		opts.PageCapacity = flagCapacity
	}

	blocks, err := loadBlocks(args[0])
	if err != nil {
		return err
	}
	if len(blocks) == 0 {
		return fmt.Errorf("no content found in %s", args[0])
	}

	doc := model.NewDocument(model.NewPage("body", blocks...))
	grid := layout.NewGrid(layout.Metrics{
		LineHeight:   flagLineHeight,
		CharWidth:    flagCharWidth,
		CharsPerLine: flagCharsPerLine,
		ImageHeight:  flagImageHeight,
	})
	grid.SetDocument(doc)

	sess := reflow.NewSession(doc, grid, opts).
		WithLogger(log).
		OnTransaction(func(_ *txn.Transaction, d *model.Document) {
			grid.SetDocument(d)
		})
	defer sess.Close()

	if err := sess.Settle(cmd.Context()); err != nil {
		return err
	}

	final := sess.Document()
	log.Info("document settled", "pages", len(final.Pages))
	fmt.Fprint(cmd.OutOrStdout(), final.Outline())
	return nil
}
