package build

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/vocab/models"
)

func sortOptionNames() string {
	names := make([]string, len(models.SortOptions))
	for i, opt := range models.SortOptions {
		names[i] = string(opt)
	}
	return strings.Join(names, ", ")
}

// Flags returns the flags of the build command.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML config file; missing file means defaults",
			Value:   "vocab.yaml",
		},
		&cli.StringFlag{
			Name:  "text",
			Usage: "build from this literal text",
		},
		&cli.StringFlag{
			Name:  "glob",
			Usage: "comma separated doublestar patterns, e.g. \"**/*.txt\"",
		},
		&cli.StringFlag{
			Name:  "root",
			Usage: "directory the --glob patterns are matched under",
			Value: ".",
		},
		&cli.StringFlag{
			Name:  "sqlite",
			Usage: "SQLite database to read rows from (requires --query)",
		},
		&cli.StringFlag{
			Name:  "query",
			Usage: "single-column SELECT run against --sqlite; each row is a line",
		},
		&cli.BoolFlag{
			Name:  "readable",
			Usage: "for HTML inputs, count only the main article",
		},
		&cli.IntFlag{
			Name:    "batch-size",
			Aliases: []string{"b"},
			Usage:   "lines per batch (overrides config)",
		},
		&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"w"},
			Usage:   "concurrent tokenization workers, 0 for one per CPU (overrides config)",
		},
		&cli.BoolFlag{
			Name:  "stopwords",
			Usage: "drop common English stopwords",
		},
		&cli.BoolFlag{
			Name:  "stem",
			Usage: "reduce words to their English stem",
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   fmt.Sprintf("word order: %s (overrides config)", sortOptionNames()),
		},
		&cli.IntFlag{
			Name:    "top",
			Aliases: []string{"n"},
			Usage:   "number of words to print, 0 for all (overrides config)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "output format: yaml, json or text (overrides config)",
		},
		&cli.BoolFlag{
			Name:  "detect-language",
			Usage: "guess the language of the vocabulary",
		},
		&cli.BoolFlag{
			Name:  "progress",
			Usage: "show a progress bar on stderr",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "only log errors",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "log every batch",
		},
	}
}

// applyFlags overrides config values with the flags the user set explicitly.
func applyFlags(c *cli.Context, cfg *models.Config) {
	if c.IsSet("batch-size") {
		cfg.Build.BatchSize = c.Int("batch-size")
	}
	if c.IsSet("workers") {
		cfg.Build.Workers = c.Int("workers")
	}
	if c.IsSet("stopwords") {
		cfg.Build.FilterStopwords = c.Bool("stopwords")
	}
	if c.IsSet("stem") {
		cfg.Build.Stem = c.Bool("stem")
	}
	if c.IsSet("sort") {
		cfg.Output.Sort = c.String("sort")
	}
	if c.IsSet("top") {
		cfg.Output.Top = c.Int("top")
	}
	if c.IsSet("format") {
		cfg.Output.Format = strings.ToLower(c.String("format"))
	}
	if c.IsSet("detect-language") {
		cfg.Output.DetectLanguage = c.Bool("detect-language")
	}
}
