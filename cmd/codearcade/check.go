package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/code-arcade/internal/config"
	"github.com/vovakirdan/code-arcade/internal/quiz"
)

var checkCmd = &cobra.Command{
	Use:   "check <bank.yaml|dir>",
	Short: "Validate question bank files",
	Long: `Parse and validate a question bank file, or every .yaml/.yml bank
under a directory. Exits with status 1 if any bank is invalid.

Examples:
  codearcade check ./banks/go.yaml
  codearcade check ~/.codearcade/banks`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) {
	path, err := config.ExpandHome(args[0])
	if err != nil {
		fail("%v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		fail("%v", err)
	}

	results := map[string]error{}
	if info.IsDir() {
		results, err = quiz.NewLoader(path).Check()
		if err != nil {
			fail("%v", err)
		}
	} else {
		_, results[path] = quiz.LoadBankFile(path)
	}

	if len(results) == 0 {
		fail("no bank files found in %s", path)
	}

	paths := make([]string, 0, len(results))
	for p := range results {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	invalid := 0
	for _, p := range paths {
		if loadErr := results[p]; loadErr != nil {
			invalid++
			fmt.Printf("FAIL  %s\n      %v\n", p, loadErr)
			continue
		}
		fmt.Printf("ok    %s\n", p)
	}

	fmt.Println()
	fmt.Printf("%d bank(s) checked, %d invalid\n", len(paths), invalid)
	if invalid > 0 {
		os.Exit(1)
	}
}
