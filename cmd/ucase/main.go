// Command ucase exposes the case-conversion and regex-support engine from
// a shell: string conversion, single-codepoint canonicalization and
// equivalence-class lookup, and an interactive page-cache inspector.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/urfave/cli"

	"github.com/bdwalton/uncase/unicase"
	"github.com/bdwalton/uncase/uregexp"
)

// parseRune accepts either a single UTF-8 character or a "U+XXXX" /
// "0xXXXX" code point literal, matching the notation spec.md's own test
// vectors use.
func parseRune(s string) (rune, error) {
	if strings.HasPrefix(s, "U+") || strings.HasPrefix(s, "u+") {
		v, err := strconv.ParseInt(s[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid code point %q: %w", s, err)
		}
		return rune(v), nil
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseInt(s[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid code point %q: %w", s, err)
		}
		return rune(v), nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("expected a single code point, got %q", s)
	}
	return runes[0], nil
}

func requireArg(c *cli.Context, what string) (string, error) {
	args := c.Args()
	if len(args) < 1 {
		return "", cli.NewExitError(fmt.Sprintf("missing %s argument", what), 1)
	}
	return args.First(), nil
}

func main() {
	// glog registers its flags (-v, -logtostderr, ...) on the standard
	// flag package at init; parse those first and hand whatever's left
	// to urfave/cli's own parser.
	flag.Parse()
	defer glog.Flush()

	app := cli.NewApp()
	app.Name = "ucase"
	app.Usage = "Unicode case conversion and regex-canonical/equivalence lookups"
	app.Action = func(c *cli.Context) error {
		cli.ShowAppHelp(c)
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:      "upper",
			Usage:     "Upper-case the given text",
			ArgsUsage: "text",
			Action: func(c *cli.Context) error {
				text, err := requireArg(c, "text")
				if err != nil {
					return err
				}
				fmt.Println(unicase.ToUpper(text))
				return nil
			},
		},
		{
			Name:      "lower",
			Usage:     "Lower-case the given text",
			ArgsUsage: "text",
			Action: func(c *cli.Context) error {
				text, err := requireArg(c, "text")
				if err != nil {
					return err
				}
				fmt.Println(unicase.ToLower(text))
				return nil
			},
		},
		{
			Name:      "canon",
			Usage:     "Print a code point's regex-canonical form",
			ArgsUsage: "codepoint",
			Action: func(c *cli.Context) error {
				arg, err := requireArg(c, "codepoint")
				if err != nil {
					return err
				}
				r, err := parseRune(arg)
				if err != nil {
					return cli.NewExitError(err.Error(), 1)
				}
				fmt.Printf("U+%04X %c\n", uregexp.Canonicalize(r), uregexp.Canonicalize(r))
				return nil
			},
		},
		{
			Name:      "equiv",
			Usage:     "Print a code point's case-insensitive equivalence class",
			ArgsUsage: "codepoint",
			Action: func(c *cli.Context) error {
				arg, err := requireArg(c, "codepoint")
				if err != nil {
					return err
				}
				r, err := parseRune(arg)
				if err != nil {
					return cli.NewExitError(err.Error(), 1)
				}
				class := uregexp.EquivalenceClass(r)
				if class == nil {
					fmt.Printf("U+%04X has no equivalence class (singleton)\n", r)
					return nil
				}
				parts := make([]string, len(class))
				for i, x := range class {
					parts[i] = fmt.Sprintf("U+%04X", x)
				}
				fmt.Println(strings.Join(parts, " "))
				return nil
			},
		},
		{
			Name:        "inspect",
			Usage:       "Launch an interactive viewer for the page covering a code point",
			ArgsUsage:   "table codepoint",
			Description: "table is one of: upper, lower, canon, equiv",
			Action: func(c *cli.Context) error {
				args := c.Args()
				if len(args) < 2 {
					return cli.NewExitError("usage: ucase inspect <table> <codepoint>", 1)
				}
				table := args.Get(0)
				r, err := parseRune(args.Get(1))
				if err != nil {
					return cli.NewExitError(err.Error(), 1)
				}
				if err := runInspector(table, r); err != nil {
					return cli.NewExitError(err.Error(), 1)
				}
				return nil
			},
		},
	}

	if err := app.Run(append([]string{os.Args[0]}, flag.Args()...)); err != nil {
		glog.Exitf("ucase: %v", err)
	}
}
