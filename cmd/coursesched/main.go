// Command coursesched loads a scheduling problem from a text file, runs
// the And-tree branch-and-bound search over it, and reports the best
// complete assignment found.
package main

import (
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hallwood-labs/coursesched/internal/loader"
	"github.com/hallwood-labs/coursesched/internal/output"
	"github.com/hallwood-labs/coursesched/internal/search"
)

var (
	inFile     = "input.txt"
	jsonOut    = ""
	wMinFilled = 1
	wPref      = 1
	wPair      = 1
	wSecDiff   = 1
	penLecMin  = 0
	penTutMin  = 0
	penNotPair = 0
	penSection = 0
	breakLimit = 0
	shuffle    = false
	seed       int64
)

func main() {
	rand.Seed(time.Now().UnixNano())
	log.SetFlags(log.Ltime)

	cmdRoot := &cobra.Command{
		Use:   "coursesched",
		Short: "And-tree branch-and-bound course section scheduler",
		Run:   CommandSolve,
	}
	cmdRoot.Flags().StringVar(&inFile, "in", inFile, "input file name")
	cmdRoot.Flags().StringVar(&jsonOut, "json", jsonOut, "if set, also write the result as JSON to this file")
	cmdRoot.Flags().IntVar(&wMinFilled, "w-min-filled", wMinFilled, "weight applied to pen_lec_min and pen_tut_min")
	cmdRoot.Flags().IntVar(&wPref, "w-pref", wPref, "weight applied to preference penalties")
	cmdRoot.Flags().IntVar(&wPair, "w-pair", wPair, "weight applied to pen_not_paired")
	cmdRoot.Flags().IntVar(&wSecDiff, "w-sec-diff", wSecDiff, "weight applied to pen_section")
	cmdRoot.Flags().IntVar(&penLecMin, "pen-lec-min", penLecMin, "base penalty per unfilled lecture slot seat below min_cap")
	cmdRoot.Flags().IntVar(&penTutMin, "pen-tut-min", penTutMin, "base penalty per unfilled tutorial slot seat below min_cap")
	cmdRoot.Flags().IntVar(&penNotPair, "pen-not-paired", penNotPair, "base penalty when a declared pair is not co-scheduled")
	cmdRoot.Flags().IntVar(&penSection, "pen-section", penSection, "base penalty when two sections of a course share a (day, start_time)")
	cmdRoot.Flags().IntVar(&breakLimit, "break-limit", breakLimit, "stop after this many strictly-improving solutions (0 means unlimited)")
	cmdRoot.Flags().BoolVar(&shuffle, "shuffle", shuffle, "pre-shuffle lecture and tutorial ordering before search")
	cmdRoot.Flags().Int64Var(&seed, "seed", seed, "seed for --shuffle")

	if err := cmdRoot.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func CommandSolve(cmd *cobra.Command, args []string) {
	if len(args) > 0 {
		log.Fatalf("unknown option: %s", strings.Join(args, " "))
	}

	cat, err := loader.Load(inFile,
		loader.Weights{MinFilled: wMinFilled, Pref: wPref, Pair: wPair, SecDiff: wSecDiff},
		loader.Penalties{LecMin: penLecMin, TutMin: penTutMin, NotPaired: penNotPair, Section: penSection},
	)
	if err != nil {
		log.Fatalf("%v", err)
	}

	log.Printf("searching with break_limit=%d shuffle=%v", breakLimit, shuffle)
	searcher, err := search.New(cat, search.Options{BreakLimit: breakLimit, Shuffle: shuffle, Seed: seed})
	if err != nil {
		log.Fatalf("%v", err)
	}

	result, err := searcher.Search()
	if err != nil {
		log.Fatalf("%v", err)
	}
	if !result.Found {
		log.Printf("no solution found")
	} else {
		log.Printf("found a solution with eval %d after exploring %d leaves", result.Eval, searcher.LeafCount())
	}

	output.PrintSchedule(os.Stdout, result)

	if jsonOut != "" {
		fp, err := os.Create(jsonOut)
		if err != nil {
			log.Fatalf("%v", err)
		}
		defer fp.Close()
		if err := output.WriteJSON(fp, result); err != nil {
			log.Fatalf("%v", err)
		}
	}
}
