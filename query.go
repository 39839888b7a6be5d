package main

import (
	"fmt"
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"dictionarium/internal/domain"
	"dictionarium/internal/session"
)

var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "look up words once and print the matches",
	ArgsUsage: "WORDS...",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "lang",
			Usage:   "search the dictionary for `NAME`",
			Aliases: []string{"l"},
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("%w: query needs at least one word", ErrDictionarium)
		}

		e, err := setup(c)
		if err != nil {
			return err
		}
		defer e.closeLog()

		lang := e.cfg.StartLanguage()
		if name := c.String("lang"); name != "" {
			var ok bool
			if lang, ok = domain.ParseLanguage(strings.ToLower(name)); !ok {
				return fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
			}
		}

		input := strings.Join(c.Args().Slice(), " ")
		token, matches := session.Lookup(e.store, e.engine, lang, input)
		e.logger.Debug("query", "language", lang, "token", token, "matches", len(matches))
		if len(matches) == 0 {
			return ErrNoMatch
		}

		tbl := table.New("Prefix", "Match", "Suffix").WithWriter(c.App.Writer)
		for _, m := range matches {
			tbl.AddRow(m.Prefix, m.Match, m.Suffix)
		}
		tbl.Print()
		return nil
	},
}
