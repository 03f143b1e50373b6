package ai

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	scorePattern   = regexp.MustCompile(`\$([0-9]{1,3})\$`)
	numberRegex    = regexp.MustCompile(`[0-9]{1,3}`)
	ErrParseFailed = errors.New("parse_failed")
)

// ParseSuitability extracts the 0-100 suitability score (with optional $...$
// envelope) and any hint lines from the model's answer. It first tries the
// strict $<number>$ format and falls back to the first number in the text.
func ParseSuitability(text string) (int, []string, error) {
	score := -1
	scoreLine := -1

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if m := scorePattern.FindStringSubmatch(line); len(m) >= 2 {
			v, err := strconv.Atoi(m[1])
			if err != nil {
				return 0, nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
			}
			score = v
			scoreLine = i
			break
		}
	}
	if score < 0 {
		// fallback: first bare number anywhere
		for i, line := range lines {
			if m := numberRegex.FindString(line); m != "" {
				v, err := strconv.Atoi(m)
				if err != nil {
					continue
				}
				score = v
				scoreLine = i
				break
			}
		}
	}
	if score < 0 {
		return 0, nil, fmt.Errorf("%w: no score found", ErrParseFailed)
	}
	if score > 100 {
		score = 100
	}

	hints := make([]string, 0, 3)
	for i, line := range lines {
		if i == scoreLine {
			continue
		}
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*• "))
		if line == "" {
			continue
		}
		hints = append(hints, line)
		if len(hints) == 3 {
			break
		}
	}
	return score, hints, nil
}
