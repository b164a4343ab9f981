package cmd

import (
	"os"
	"strings"
)

// modulePath reads the module directive from the target's go.mod, so
// generated imports resolve without an explicit --module flag.
func modulePath(goModPath string) string {
	data, err := os.ReadFile(goModPath)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "module ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "module "))
		}
	}
	return ""
}
