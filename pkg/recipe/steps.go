package recipe

import (
	"regexp"
	"strings"
)

var stepMarker = regexp.MustCompile(`\d+\.`)

// ParseInstructionSteps splits a free-form instruction blob on numbered
// markers ("1.", "2.", ...) into individual steps. Text without markers
// comes back as a single step; an empty blob yields no steps.
func ParseInstructionSteps(instructions string) []string {
	if strings.TrimSpace(instructions) == "" {
		return nil
	}

	parts := stepMarker.Split(instructions, -1)
	steps := make([]string, 0, len(parts))
	for _, part := range parts {
		step := strings.TrimSpace(part)
		if step == "" {
			continue
		}
		steps = append(steps, step)
	}
	return steps
}
