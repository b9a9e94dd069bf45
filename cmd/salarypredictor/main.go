/*
Package main is the entry point for the salarypredictor CLI.

salarypredictor trains a linear regression model on a dataset of job postings
and predicts a salary from a job title, company name and experience level.

Usage:

	salarypredictor [command]

Available Commands:

	form        Pick values from lists and predict (default)
	predict     Predict one salary from flags
	categories  List the values the model knows
	inspect     Show dataset statistics and the fitted model
	examples    Show usage examples
*/
package main

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/salarypredictor/internal/cli"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, pterm.Error.Sprint(err))
		os.Exit(1)
	}
}
