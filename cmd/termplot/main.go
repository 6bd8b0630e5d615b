package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"charm.land/log/v2"
	"github.com/midbel/cli"
)

var (
	summary = "termplot draws charts of tabular data in the terminal"
	help    = `termplot reads numeric columns from files (or stdin when no file is
given) and draws them as text. A file can be replaced by an expression of x
prefixed by "function:", eg function:sin(x)*x.`
)

func main() {
	var (
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "termplot",
		})
		set  = cli.NewFlagSet("termplot")
		root = prepare(logger)
	)
	root.SetSummary(summary)
	root.SetHelp(help)
	if err := set.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			root.Help()
			os.Exit(2)
		}
	}
	err := root.Execute(set.Args())
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		if s, ok := err.(cli.SuggestionError); ok && len(s.Others) > 0 {
			fmt.Fprintln(os.Stderr, "similar command(s)")
			for _, n := range s.Others {
				fmt.Fprintln(os.Stderr, "-", n)
			}
		}
		logger.Error(err)
		os.Exit(1)
	}
}

func prepare(logger *log.Logger) *cli.CommandTrie {
	root := cli.New()
	root.Register([]string{"line"}, &cli.Command{
		Name:    "line",
		Alias:   []string{"lines"},
		Summary: "line chart of one or more series",
		Usage:   "line [-fmt format] [-style style] [-no-points] [file|function:expr...]",
		Handler: &LineCommand{Logger: logger},
	})
	root.Register([]string{"scatter"}, &cli.Command{
		Name:    "scatter",
		Alias:   []string{"points"},
		Summary: "scatter plot of one or more series sharing the first column",
		Usage:   "scatter [-symbol char] [file|function:expr...]",
		Handler: &ScatterCommand{Logger: logger},
	})
	root.Register([]string{"bar"}, &cli.Command{
		Name:    "bar",
		Summary: "bar chart of labels (first column) and values (second column)",
		Usage:   "bar [-order a,b,c] [-char char] [file...]",
		Handler: &BarCommand{Logger: logger},
	})
	root.Register([]string{"count"}, &cli.Command{
		Name:    "count",
		Summary: "bar chart of the occurrences of each value of the first column",
		Usage:   "count [-order a,b,c] [file...]",
		Handler: &CountCommand{Logger: logger},
	})
	root.Register([]string{"hist"}, &cli.Command{
		Name:    "hist",
		Alias:   []string{"histogram"},
		Summary: "histogram of the first column",
		Usage:   "hist [-bins n] [-normalize] [-cumulative] [file...]",
		Handler: &HistogramCommand{Logger: logger},
	})
	root.Register([]string{"density"}, &cli.Command{
		Name:    "density",
		Alias:   []string{"kde"},
		Summary: "estimated density of each column",
		Usage:   "density [-kernel name] [-bandwidth h] [-resolution n] [file...]",
		Handler: &DensityCommand{Logger: logger},
	})
	root.Register([]string{"box"}, &cli.Command{
		Name:    "box",
		Alias:   []string{"boxplot"},
		Summary: "box plot of each column",
		Usage:   "box [-fence iqr|far|none] [-horizontal] [-mean] [file...]",
		Handler: &BoxCommand{Logger: logger},
	})
	return root
}
