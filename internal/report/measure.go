package report

import "strings"

// WrapCount computes how many visual lines text occupies when wrapped at
// width, greedily accumulating words measured by measure. A word wider than
// the width is split by characters onto as many lines as it needs, the way
// the renderer splits it. Embedded line breaks each start a new line. The
// count is deterministic; empty text still occupies one line.
func WrapCount(measure func(string) float64, width float64, text string) int {
	if width <= 0 {
		return 1
	}
	total := 0
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			total++
			continue
		}
		lines := 1
		line := ""
		for _, word := range words {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if measure(candidate) <= width {
				line = candidate
				continue
			}
			if line != "" {
				lines++
			}
			line = word
			for measure(line) > width {
				runes := []rune(line)
				n := len(runes) - 1
				for n > 1 && measure(string(runes[:n])) > width {
					n--
				}
				line = string(runes[n:])
				lines++
			}
		}
		total += lines
	}
	if total < 1 {
		total = 1
	}
	return total
}
