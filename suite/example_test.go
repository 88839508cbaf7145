// File: suite/example_test.go
package suite_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/slants/suite"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ReadAll
////////////////////////////////////////////////////////////////////////////////

// ExampleReadAll demonstrates streaming a suite file: header comments
// and blank lines vanish, records keep their optional columns.
// Scenario:
//
//   - Two records, one carrying an answer and a work-score comment.
func ExampleReadAll() {
	input := strings.Join([]string{
		"# demo file",
		"",
		"mult_demo\t2\t2\t1h",
		"tiny\t1\t1\t1c\t\\\t# work_score=2",
	}, "\n")

	records, err := suite.ReadAll(strings.NewReader(input))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, r := range records {
		fmt.Printf("%s %dx%d givens=%s answer=%q comment=%q\n",
			r.Name, r.Width, r.Height, r.Givens, r.Answer, r.Comment)
	}
	// Output:
	// mult_demo 2x2 givens=1h answer="" comment=""
	// tiny 1x1 givens=1c answer="\\" comment="work_score=2"
}
