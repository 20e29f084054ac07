package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Classify bool
	Affect   bool
	Collect  bool
	Merge    bool
	Subsume  bool
	Factor   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Classify = boolEnv("BRUTUS_DEBUG_CLASSIFY")
	d.Affect = boolEnv("BRUTUS_DEBUG_AFFECT")
	d.Collect = boolEnv("BRUTUS_DEBUG_COLLECT")
	d.Merge = boolEnv("BRUTUS_DEBUG_MERGE")
	d.Subsume = boolEnv("BRUTUS_DEBUG_SUBSUME")
	d.Factor = boolEnv("BRUTUS_DEBUG_FACTOR")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Classify() bool {
	return d.Classify
}
func Affect() bool {
	return d.Affect
}
func Collect() bool {
	return d.Collect
}
func Merge() bool {
	return d.Merge
}
func Subsume() bool {
	return d.Subsume
}
func Factor() bool {
	return d.Factor
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
