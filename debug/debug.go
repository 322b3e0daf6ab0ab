// Package debug holds environment controlled debugging switches.
//
// Each switch is read once at startup from a JSONDOC_DEBUG_* variable
// parsed with [strconv.ParseBool].
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Recover bool
	Nest    bool
	Diff    bool
	Myers   bool
	Worker  bool
	Query   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JSONDOC_DEBUG_PARSE")
	d.Recover = boolEnv("JSONDOC_DEBUG_RECOVER")
	d.Nest = boolEnv("JSONDOC_DEBUG_NEST")
	d.Diff = boolEnv("JSONDOC_DEBUG_DIFF")
	d.Myers = boolEnv("JSONDOC_DEBUG_MYERS")
	d.Worker = boolEnv("JSONDOC_DEBUG_WORKER")
	d.Query = boolEnv("JSONDOC_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Recover() bool {
	return d.Recover
}
func Nest() bool {
	return d.Nest
}
func Diff() bool {
	return d.Diff
}
func Myers() bool {
	return d.Myers
}
func Worker() bool {
	return d.Worker
}
func Query() bool {
	return d.Query
}
