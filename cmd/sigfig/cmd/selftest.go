package cmd

import (
	"fmt"
	"io"

	"github.com/msto63/sigfig/foundation/calc"
	"github.com/msto63/sigfig/foundation/utils/mathx"
	"github.com/spf13/cobra"
)

// selfTestCounts pins the counting rules on the classic examples
var selfTestCounts = []struct {
	input string
	want  int
}{
	{"0.004560", 4},
	{"1234", 4},
	{"0.00", 2},
	{"0", 1},
	{"100", 1},
	{"100.", 3},
	{"1.20e3", 3},
	{"1.200E-2", 4},
	{" .0050", 2},
	{"405", 3},
	{"1020", 3},
	{"1000.", 4},
	{"-0.0030", 2},
}

var selfTestExpressions = []struct {
	expr string
	want float64
}{
	{"3.14", 3.14},
	{"2+3*4", 14},
	{"(2+3)*4", 20},
	{"2^3^2", 512},
}

// selfTestResult is one checked case
type selfTestResult struct {
	Case string `json:"case"`
	Want string `json:"want"`
	Got  string `json:"got"`
	OK   bool   `json:"ok"`
}

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Prüft Zählung und Auswertung an Referenzbeispielen",
	Args:  cobra.NoArgs,
	RunE:  runSelfTest,
}

func init() {
	rootCmd.AddCommand(selftestCmd)
}

func runSelfTest(cmd *cobra.Command, args []string) error {
	results := selfTest()

	failed := 0
	for _, r := range results {
		if !r.OK {
			failed++
		}
	}

	err := output(cmd, results, func(w io.Writer) {
		for _, r := range results {
			mark := "OK  "
			if !r.OK {
				mark = "FAIL"
			}
			fmt.Fprintf(w, "%s  %-12q  erwartet %-4s  erhalten %s\n", mark, r.Case, r.Want, r.Got)
		}
		fmt.Fprintf(w, "%d/%d bestanden\n", len(results)-failed, len(results))
	})
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d Selbsttest(s) fehlgeschlagen", failed)
	}
	return nil
}

func selfTest() []selfTestResult {
	var results []selfTestResult
	for _, tc := range selfTestCounts {
		got := mathx.CountSignificantFigures(tc.input)
		results = append(results, selfTestResult{
			Case: tc.input,
			Want: fmt.Sprint(tc.want),
			Got:  fmt.Sprint(got),
			OK:   got == tc.want,
		})
	}
	for _, tc := range selfTestExpressions {
		got, err := calc.Evaluate(tc.expr)
		r := selfTestResult{
			Case: tc.expr,
			Want: mathx.FormatNumber(tc.want),
			OK:   err == nil && got == tc.want,
		}
		if err != nil {
			r.Got = err.Error()
		} else {
			r.Got = mathx.FormatNumber(got)
		}
		results = append(results, r)
	}
	return results
}
