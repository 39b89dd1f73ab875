package mealdb

import (
	"regexp"
	"strings"
)

// minStepLength 過短的片段（例如 "Serve."）不算一個步驟
const minStepLength = 8

var (
	lineBreak      = regexp.MustCompile(`\r?\n`)
	numberedPrefix = regexp.MustCompile(`^\d+[.\s\-]+`)
	stepPrefix     = regexp.MustCompile(`^Step \d+[:\s\-]+`)
)

// Steps splits the free-text instructions into cooking steps.
func (r Recipe) Steps() []string {
	if strings.TrimSpace(r.Instructions) == "" {
		return nil
	}

	var steps []string
	for _, line := range lineBreak.Split(r.Instructions, -1) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := []string{line}
		if strings.Contains(line, ". ") {
			parts = strings.Split(line, ". ")
		}
		for _, part := range parts {
			step := numberedPrefix.ReplaceAllString(part, "")
			step = stepPrefix.ReplaceAllString(step, "")
			step = strings.TrimSpace(step)
			if len(step) > minStepLength {
				steps = append(steps, step)
			}
		}
	}
	return steps
}
