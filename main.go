package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/bent101/wordle-entropy/hint"
	"github.com/bent101/wordle-entropy/scoring"
	"github.com/bent101/wordle-entropy/search"
	"github.com/bent101/wordle-entropy/solver"
	"github.com/bent101/wordle-entropy/word"
	"github.com/bent101/wordle-entropy/wordlist"
)

const usage = `usage: wordle-entropy [flags] [command]

commands:
  demo                  compare a guess read from stdin with the demo answer (default)
  compare GUESS ANSWER  print the mask GUESS gets against ANSWER
  best                  best opening guess
  rank                  top guesses by expected information
  hints WORD            mask buckets WORD splits the solutions into
  play                  solve interactively`

func main() {
	cfg, args, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	setupLogging(cfg.logLevel)

	if err := run(cfg, args, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("wordle-entropy")
	}
}

func run(cfg config, args []string, in io.Reader, out io.Writer) error {
	cmd := "demo"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "demo":
		return runDemo(cfg, in, out)
	case "compare":
		if len(args) != 2 {
			return errors.New("compare needs GUESS and ANSWER")
		}
		return runCompare(args[0], args[1], out)
	case "best", "rank", "hints", "play":
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}

	lang, err := wordlist.ParseLang(cfg.lang)
	if err != nil {
		return err
	}
	guesses, answers, err := wordlist.LoadLang(cfg.dir, lang)
	if err != nil {
		return err
	}
	log.Info().Str("lang", lang.String()).Int("guesses", len(guesses)).Int("answers", len(answers)).Msg("loaded word lists")

	searcher := newSearcher(cfg)
	switch cmd {
	case "best":
		return runBest(searcher, guesses, answers, out)
	case "rank":
		return runRank(searcher, guesses, answers, out)
	case "hints":
		if len(args) != 1 {
			return errors.New("hints needs a WORD")
		}
		return runHints(args[0], answers, out)
	default:
		return runPlay(searcher, guesses, answers, in, out)
	}
}

func newSearcher(cfg config) *search.Searcher {
	opts := []search.Option{
		search.WithWorkers(cfg.workers),
		search.WithLimit(cfg.top),
		search.WithLogger(log.Logger),
	}
	if cfg.progress {
		opts = append(opts, search.WithProgress(os.Stderr))
	}
	return search.New(opts...)
}

func runDemo(cfg config, in io.Reader, out io.Writer) error {
	answer, err := word.Parse(cfg.demoAnswer)
	if err != nil {
		return err
	}

	fmt.Fprint(out, "Guess:  ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	guess, err := word.Parse(strings.TrimSpace(line))
	if err != nil {
		return err
	}

	mask := hint.Compare(guess, answer)
	fmt.Fprintf(out, "Answer: %s\n%s\n", answer, mask)

	if !mask.Matches(answer) {
		return fmt.Errorf("mask %s for %s is inconsistent with its own answer %s", mask, guess, answer)
	}
	return nil
}

func runCompare(guessText, answerText string, out io.Writer) error {
	guess, err := word.Parse(guessText)
	if err != nil {
		return err
	}
	answer, err := word.Parse(answerText)
	if err != nil {
		return err
	}
	mask := hint.Compare(guess, answer)
	fmt.Fprintf(out, "%s\n%s\n", mask.ColoredWord(), mask)
	return nil
}

func runBest(searcher *search.Searcher, guesses, answers []word.Word, out io.Writer) error {
	best, err := searcher.BestGuess(guesses, answers)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %.4f\n", best.Word, best.Bits)
	return nil
}

func runRank(searcher *search.Searcher, guesses, answers []word.Word, out io.Writer) error {
	ranked, err := searcher.BestGuessSet(guesses, answers)
	if err != nil {
		return err
	}
	for i, sc := range ranked {
		fmt.Fprintf(out, "%3d. %s %.4f\n", i+1, sc.Word, sc.Bits)
	}
	return nil
}

// runHints prints the mask buckets of a guess over the answers, largest first.
func runHints(text string, answers []word.Word, out io.Writer) error {
	guess, err := word.Parse(text)
	if err != nil {
		return err
	}

	type bucket struct {
		rank  hint.Rank
		count int
	}
	var buckets []bucket
	for rank, count := range scoring.Partition(guess, answers) {
		buckets = append(buckets, bucket{rank, count})
	}

	// Sort by count in descending order, then by pattern for stable output.
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].count != buckets[j].count {
			return buckets[i].count > buckets[j].count
		}
		return buckets[i].rank < buckets[j].rank
	})

	for _, b := range buckets {
		fmt.Fprintln(out, b.rank.Mask(guess).ColoredWord(), b.count)
	}
	return nil
}

// runPlay reads one line per turn: either a feedback pattern for the
// suggested guess, or "WORD PATTERN" for a different guess.
func runPlay(searcher *search.Searcher, guesses, answers []word.Word, in io.Reader, out io.Writer) error {
	s, err := solver.New(guesses, answers, solver.WithSearcher(searcher), solver.WithLogger(log.Logger))
	if err != nil {
		return err
	}

	sc := bufio.NewScanner(in)
	for !s.Solved() {
		suggestion, err := s.Suggest()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d possible. Try %s (%.2f bits)\nFeedback: ", len(s.Remaining()), suggestion.Word, suggestion.Bits)
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}

		guess := suggestion.Word
		fields := strings.Fields(sc.Text())
		switch len(fields) {
		case 1:
		case 2:
			if guess, err = word.Parse(fields[0]); err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			fields = fields[1:]
		default:
			fmt.Fprintln(out, "enter a pattern like 01020, or WORD PATTERN")
			continue
		}

		mask, err := hint.ParsePattern(guess, fields[0])
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		bits, err := s.Observe(mask)
		if errors.Is(err, scoring.ErrNoCandidates) {
			fmt.Fprintln(out, "no word fits that feedback, try again")
			continue
		} else if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %.2f bits\n", mask.ColoredWord(), bits)
	}

	fmt.Fprintf(out, "Solved: %s in %d guesses (%.2f bits)\n", s.Remaining()[0], len(s.History()), s.Bits())
	return nil
}
