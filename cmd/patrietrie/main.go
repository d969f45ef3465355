// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

// Command patrietrie is a small demonstration CLI over package stringtrie:
// it loads a newline-delimited word list, then answers neighbor and prefix
// queries against it. Package patrie itself is a library, not a
// daemon or CLI; this binary is a host-string collaborator exercising it
// end to end.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/k33nice/patrie/stringtrie"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck
	sugar := logger.Sugar()

	cmd := &cli.Command{
		Name:  "patrietrie",
		Usage: "query a Patricia trie built from a word list",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "words",
				Aliases:  []string{"w"},
				Usage:    "path to a newline-delimited word list",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "prefix",
				Aliases: []string{"p"},
				Usage:   "list every stored word starting with this prefix",
			},
			&cli.StringFlag{
				Name:    "neighbors-of",
				Aliases: []string{"n"},
				Usage:   "print the predecessor and successor of this word",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, sugar)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		sugar.Errorw("patrietrie failed", "error", err)
		os.Exit(1)
	}
}

func run(_ context.Context, cmd *cli.Command, sugar *zap.SugaredLogger) error {
	path := cmd.String("words")
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()

	trie := stringtrie.New()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := scanner.Text()
		if word == "" {
			continue
		}
		if err := trie.Insert(word); err != nil {
			sugar.Warnw("skipping word", "word", word, "error", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading word list: %w", err)
	}
	sugar.Infow("loaded word list", "path", path, "size", trie.Size())

	if prefix := cmd.String("prefix"); prefix != "" {
		matches, err := trie.PrefixedStrings(prefix)
		if err != nil {
			return err
		}
		printWords(fmt.Sprintf("words with prefix %q", prefix), matches)
	}

	if word := cmd.String("neighbors-of"); word != "" {
		pred, hasPred, err := trie.Predecessor(word)
		if err != nil {
			return err
		}
		succ, hasSucc, err := trie.Successor(word)
		if err != nil {
			return err
		}
		printNeighbors(word, pred, hasPred, succ, hasSucc)
	}

	return nil
}

func printWords(title string, words []string) {
	fmt.Println(title)
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "word"})
	for i, w := range words {
		t.AppendRow(table.Row{i + 1, w})
	}
	t.Render()
}

func printNeighbors(word, pred string, hasPred bool, succ string, hasSucc bool) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"relation", "word"})
	t.AppendRow(table.Row{"target", word})
	t.AppendRow(table.Row{"predecessor", orNone(pred, hasPred)})
	t.AppendRow(table.Row{"successor", orNone(succ, hasSucc)})
	t.Render()
}

func orNone(word string, ok bool) string {
	if !ok {
		return "<none>"
	}
	return word
}
