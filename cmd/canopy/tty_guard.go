package main

import (
	"os"
	"strings"
)

// init runs before lipgloss first looks at the terminal.
//
// Detecting the background colour makes termenv write OSC/DSR queries to the
// terminal. When canopy's output is consumed by a program (JSON frames, version
// or help text) those replies can end up in the captured stream, so CI=1 is set
// early, which termenv honours by skipping the queries.
func init() {
	if os.Getenv("CI") != "" {
		return
	}
	if !shouldSuppressTTYQueries(os.Args[1:], os.Getenv("CANOPY_TEST_MODE") != "") {
		return
	}
	_ = os.Setenv("CI", "1")
}

func shouldSuppressTTYQueries(args []string, envTest bool) bool {
	if envTest {
		return true
	}
	for i, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		switch name {
		case "version", "help", "h":
			return true
		case "format":
			if !hasValue && i+1 < len(args) {
				value = args[i+1]
			}
			if value == "json" {
				return true
			}
		}
	}
	return false
}
