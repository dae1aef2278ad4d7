// The command "hakkadict" builds the JSON lexicon files consumed by
// the G2P pipeline from tab-separated pronunciation tables.
//
// Input is one entry per line:
//
//	<word>\t<pron1> | <pron2> | ...
//
// Blank lines and lines starting with '#' are ignored. Several input
// files can be given; later files are merged into earlier ones with
// the same semantics the runtime uses for loanword dictionaries: new
// words are copied wholesale, and for words already present, unseen
// pronunciation variants are appended after the existing ones.
//
// Example usages:
//
//	# Convert one table to a lexicon file:
//	hakkadict base.tsv > lexicon/ipa/hak_sx.json
//
//	# Merge a loanword table into a base table:
//	hakkadict base.tsv eng_extra.tsv --out lexicon/ipa/hak_sx.json
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/hungshinlee/formospeech-g2p/pkg/phono"
)

const helpText = `hakkadict - lexicon table converter

Usage:
  hakkadict [flags] <input.tsv> [more.tsv ...]
      Convert tab-separated pronunciation tables to the JSON lexicon
      format, merging later files into earlier ones.

Flags:
  --out PATH
      Write the JSON lexicon to PATH instead of stdout.
`

func main() {
	log.SetPrefix("hakkadict: ")
	log.SetFlags(0)

	outPath := flag.String("out", "", "output file (default stdout)")
	flag.Usage = func() { fmt.Fprint(os.Stderr, helpText) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	dict := phono.Dictionary{}
	for _, path := range flag.Args() {
		next, err := loadTable(path)
		if err != nil {
			log.Fatal(err)
		}
		dict.Merge(next)
	}

	out := io.Writer(os.Stdout)
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dict); err != nil {
		log.Fatal(err)
	}
}

// loadTable reads one tab-separated pronunciation table.
func loadTable(path string) (phono.Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dict := phono.Dictionary{}
	scanner := bufio.NewScanner(f)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		word, prons, ok := parseTableLine(line)
		if !ok {
			return nil, fmt.Errorf("%s:%d: expected <word>\\t<pron> [| <pron> ...]", path, lineNum)
		}
		dict.Merge(phono.Dictionary{word: prons})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return dict, nil
}

// parseTableLine splits "<word>\t<pron1> | <pron2> | ..." into its
// parts. Empty pronunciation chunks are dropped.
func parseTableLine(line string) (string, []string, bool) {
	parts := strings.SplitN(line, "\t", 2)
	if len(parts) != 2 {
		return "", nil, false
	}

	word := strings.TrimSpace(parts[0])
	if word == "" {
		return "", nil, false
	}

	var prons []string
	for _, chunk := range strings.Split(parts[1], "|") {
		if p := strings.TrimSpace(chunk); p != "" {
			prons = append(prons, p)
		}
	}
	if len(prons) == 0 {
		return "", nil, false
	}

	return word, prons, true
}
