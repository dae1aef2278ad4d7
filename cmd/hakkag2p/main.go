// The command "hakkag2p" converts Hakka text into phonetic
// transcriptions from the command line.
//
// It reads text from its arguments (or stdin when none are given),
// normalizes it, segments it against the dialect group's lexicon and
// prints the pronunciation sequence, one run per input line.
//
// Example usages:
//
//	# Sixian IPA, data files under ./data:
//	hakkag2p --data ./data "你好，世界！"
//
//	# Zhao'an romanization with loanword dictionaries merged in:
//	hakkag2p --data ./data --group hak_za --scheme pinyin --loanwords "恁仔細"
//
//	# Replace unknown words and show the word-level detail:
//	echo "食飽吂？" | hakkag2p --data ./data --unknown "?" --details
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hungshinlee/formospeech-g2p/pkg/hakka"
)

const helpText = `hakkag2p - Hakka grapheme-to-phoneme converter

Usage:
  hakkag2p [flags] [text ...]
      Convert the given text (or each line of stdin when no text
      arguments are present) and print one pronunciation line each.

Flags:
  --data DIR
      Directory holding lexicon/<scheme>/<group>.json and the optional
      share/variant_map.json. Default "data".

  --group ID
      Dialect group: hak_sx, hak_nsx, hak_hl, hak_dp, hak_rp, hak_za.
      Default "hak_sx".

  --scheme NAME
      Pronunciation scheme, "ipa" or "pinyin". Default "ipa".

  --unknown TOKEN
      Emit TOKEN in place of unknown words instead of the raw word.

  --drop-unknown
      Omit unknown words from the pronunciation sequence entirely.

  --loanwords
      Merge the auxiliary loanword dictionaries into the lexicon.

  --no-variant-map
      Skip the variant-character substitution during normalization.

  --details
      Print the per-word detail records as JSON instead of the joined
      pronunciation line.

  --oov
      Report out-of-vocabulary words on stderr.
`

func main() {
	log.SetPrefix("hakkag2p: ")
	log.SetFlags(0)

	var (
		dataDir      = flag.String("data", "data", "data directory")
		groupID      = flag.String("group", string(hakka.GroupSixian), "dialect group")
		schemeName   = flag.String("scheme", string(hakka.SchemeIPA), "pronunciation scheme")
		unknownToken = flag.String("unknown", "", "placeholder for unknown words")
		dropUnknown  = flag.Bool("drop-unknown", false, "omit unknown words")
		loanwords    = flag.Bool("loanwords", false, "merge loanword dictionaries")
		noVariantMap = flag.Bool("no-variant-map", false, "skip variant-character substitution")
		details      = flag.Bool("details", false, "print per-word details as JSON")
		reportOOV    = flag.Bool("oov", false, "report out-of-vocabulary words on stderr")
		showHelp     = flag.Bool("help", false, "print help")
	)
	flag.Usage = func() { fmt.Fprint(os.Stderr, helpText) }
	flag.Parse()

	if *showHelp {
		fmt.Print(helpText)
		return
	}

	group := hakka.Group(*groupID)
	if !group.Valid() {
		log.Fatalf("unsupported group %q", *groupID)
	}
	scheme := hakka.Scheme(*schemeName)
	if scheme != hakka.SchemeIPA && scheme != hakka.SchemePinyin {
		log.Fatalf("unsupported scheme %q", *schemeName)
	}

	proc := hakka.New(os.DirFS(*dataDir))
	if err := proc.InitSegmenter(group, scheme, *loanwords); err != nil {
		log.Fatal(err)
	}

	opts := []hakka.G2POption{hakka.WithScheme(scheme)}
	if *unknownToken != "" {
		opts = append(opts, hakka.WithUnknownToken(*unknownToken))
	}
	if *dropUnknown {
		opts = append(opts, hakka.WithoutUnknown())
	}
	if *loanwords {
		opts = append(opts, hakka.WithLoanwords())
	}
	if *noVariantMap {
		opts = append(opts, hakka.WithoutVariantMap())
	}

	run := func(text string) {
		res, err := proc.G2P(text, group, opts...)
		if err != nil {
			log.Fatal(err)
		}

		if *details {
			enc := json.NewEncoder(os.Stdout)
			enc.SetEscapeHTML(false)
			if err := enc.Encode(res.Details); err != nil {
				log.Fatal(err)
			}
		} else {
			fmt.Println(res.String())
		}

		if *reportOOV && res.HasUnknown() {
			fmt.Fprintf(os.Stderr, "oov: %s\n", strings.Join(res.UnknownWords, " "))
		}
	}

	if flag.NArg() > 0 {
		run(strings.Join(flag.Args(), " "))
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		run(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}
