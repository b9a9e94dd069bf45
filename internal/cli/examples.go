package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewExamplesCmd creates the 'examples' command.
func NewExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Show usage examples",
		Run: func(cmd *cobra.Command, args []string) {
			printExamples(cmd.OutOrStdout())
		},
	}
}

// printExamples displays usage examples for the program
func printExamples(w io.Writer) {
	fmt.Fprintln(w, "\n📋 SalaryPredictor Usage Examples 📋")
	fmt.Fprintln(w, "\n1. Open the interactive form using Job.csv from the current directory:")
	fmt.Fprintln(w, "   salarypredictor")

	fmt.Fprintln(w, "\n2. Predict a single salary without the form:")
	fmt.Fprintln(w, "   salarypredictor predict --job \"Data Analyst\" --company \"Infosys\" --experience \"0-2 yrs\"")

	fmt.Fprintln(w, "\n3. Train on an HTML table downloaded through a proxy, in dollars:")
	fmt.Fprintln(w, "   salarypredictor --dataset https://example.com/jobs.html --proxy http://localhost:8080 --currency \"$\"")

	fmt.Fprintln(w, "\n4. Train on the jobs table of a SQLite database and list the companies:")
	fmt.Fprintln(w, "   salarypredictor categories --dataset jobs.db --field company")

	fmt.Fprintln(w, "\n5. Show how many rows were dropped and the fitted coefficients:")
	fmt.Fprintln(w, "   salarypredictor inspect --debug")

	fmt.Fprintln(w, "\nFor more information, visit: https://github.com/fr4nk3nst1ner/salarypredictor")
}
