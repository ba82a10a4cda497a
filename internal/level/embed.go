package level

import (
	_ "embed"
)

//go:embed stages.yaml
var defaultStages []byte

// DefaultSet returns the stage progression compiled into the binary, used
// when no stage file is given on the command line.
func DefaultSet() *Set {
	set, err := Parse(defaultStages)
	if err != nil {
		panic("level: embedded stages are invalid: " + err.Error())
	}
	return set
}
