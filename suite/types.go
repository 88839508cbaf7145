package suite

import (
	"strconv"
	"strings"
)

// Record is one puzzle line of a suite file. Answer and Comment are
// optional; Comment is stored without its leading '#'.
type Record struct {
	Name    string
	Width   int
	Height  int
	Givens  string
	Answer  string
	Comment string
}

// String re-emits the record as a suite line. The answer column is kept
// whenever a comment follows it, so the fields stay positional.
func (r *Record) String() string {
	fields := []string{r.Name, strconv.Itoa(r.Width), strconv.Itoa(r.Height), r.Givens}
	switch {
	case r.Comment != "":
		fields = append(fields, r.Answer, "# "+r.Comment)
	case r.Answer != "":
		fields = append(fields, r.Answer)
	}
	return strings.Join(fields, "\t")
}
