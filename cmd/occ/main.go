package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/urfave/cli/v2"

	occ "github.com/veficos/occ"
)

const (
	appName     = "occ"
	historyFile = ".occ_history"
	prompt      = "occ> "
)

func main() {
	app := &cli.App{
		Name:    appName,
		Usage:   "tokenize C source files",
		Version: occ.Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "warn-backslash-newline-space",
				Usage: "warn when spaces separate a backslash from its newline",
			},
			&cli.BoolFlag{
				Name:  "warn-no-newline-eof",
				Usage: "warn when a backslash-newline splice runs to end of file",
			},
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "dump raw tokens, including SPACE, COMMENT and NEW_LINE",
			},
		},
		ArgsUsage: "[file ...]",
		Action:    run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	opts := &occ.Option{
		WarnBackslashNewlineSpace: c.Bool("warn-backslash-newline-space"),
		WarnNoNewlineEOF:          c.Bool("warn-no-newline-eof"),
	}

	if c.NArg() == 0 {
		return repl(opts, c.Bool("raw"))
	}

	diag := occ.NewConsoleDiag(os.Stderr)
	for _, path := range c.Args().Slice() {
		if err := tokenizeFile(path, opts, diag, c.Bool("raw")); err != nil {
			return err
		}
	}
	if diag.Errors() > 0 {
		return fmt.Errorf("%d error(s)", diag.Errors())
	}
	return nil
}

func tokenizeFile(path string, opts *occ.Option, diag occ.Diag, raw bool) error {
	reader := occ.NewReader(opts, diag, nil)
	if err := reader.PushFile(path); err != nil {
		return err
	}
	dump(occ.NewLexer(reader, opts, diag), raw)
	return nil
}

func dump(lexer *occ.Lexer, raw bool) {
	for {
		var tok *occ.Token
		if raw {
			tok = lexer.Scan()
		} else {
			tok = lexer.Next()
		}
		printToken(tok)
		if tok.Type == occ.End {
			return
		}
	}
}

func printToken(tok *occ.Token) {
	loc := fmt.Sprintf("%s:%d:%d", tok.Loc.FilenameText(), tok.Loc.Line, tok.Loc.Column)
	if tok.Literals != "" {
		fmt.Printf("%-24s %-20s %q\n", loc, tok.Type, tok.Literals)
		return
	}
	fmt.Printf("%-24s %s\n", loc, tok.Type)
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}

// repl tokenizes one line at a time, printing the token stream for each.
func repl(opts *occ.Option, raw bool) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	if f, err := os.Open(historyPath()); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyPath()); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Printf("occ %s tokenizer. Ctrl+D exits.\n", occ.Version)

	diag := occ.NewConsoleDiag(os.Stderr)
	for {
		src, err := line.Prompt(prompt)
		if err != nil {
			fmt.Println()
			return nil
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		line.AppendHistory(src)

		reader := occ.NewReader(opts, diag, nil)
		reader.PushString(src)
		dump(occ.NewLexer(reader, opts, diag), raw)
	}
}
