package main

import (
	"flag"
	"strconv"
)

// initLogging configures glog. glog only reads its settings from the
// standard flag set, so the values are poked in there.
func initLogging(logToStderr bool, verbose int) {
	if !flag.Parsed() {
		flag.CommandLine.Parse(nil)
	}
	if logToStderr {
		flag.Lookup("logtostderr").Value.Set("true")
	}
	if verbose > 0 {
		flag.Lookup("v").Value.Set(strconv.Itoa(verbose))
	}
}
