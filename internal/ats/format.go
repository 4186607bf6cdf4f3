package ats

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-analyzer/internal/patterns"
)

// Leadership signals for product roles, English and Portuguese.
var leadershipSignals = patterns.MustSet(
	`\bled\s+(a\s+)?team\b`,
	`\bliderou\s+(o\s+|a\s+)?(time|equipe)\b`,
	`\bstakeholders?\b`,
	`\broadmaps?\b`,
	`\bcross[- ]functional\b`,
	`\bprioriti(z|s)ation\b`,
)

// Glyphs that commonly break ATS text extraction.
var problematicGlyphs = []rune{'•', '▪', '▸', '●', '✓', '→', ' '}

// Format thresholds. A résumé far outside these bounds tends to be a
// conversion artifact rather than deliberate writing.
const (
	maxPipes        = 10
	minWords        = 200
	maxWords        = 1500
	maxDoubleSpaces = 20
)

// FormatIssues scans résumé text for structures that ATS parsers
// mangle. The returned messages are surfaced directly as suggestions.
func FormatIssues(text string) []string {
	var issues []string

	if strings.Count(text, "|") > maxPipes {
		issues = append(issues, "Tables detected - may not parse correctly in ATS systems")
	}

	words := len(strings.Fields(text))
	if words < minWords {
		issues = append(issues, fmt.Sprintf("Resume text is too short (%d words) - may be missing content", words))
	} else if words > maxWords {
		issues = append(issues, fmt.Sprintf("Resume text is too long (%d words) - consider condensing", words))
	}

	if strings.Count(text, "  ") > maxDoubleSpaces {
		issues = append(issues, "Excessive spacing detected - check formatting")
	}

	for _, glyph := range problematicGlyphs {
		if strings.ContainsRune(text, glyph) {
			issues = append(issues, "Special characters detected that may not parse correctly in ATS systems")
			break
		}
	}

	return issues
}
