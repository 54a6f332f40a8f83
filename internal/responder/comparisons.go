package responder

import (
	"fmt"
	"regexp"
	"strings"
)

var comparisonPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\w+)\s+(?:vs|versus)\s+(\w+)`),
	regexp.MustCompile(`(\w+)\s+or\s+(\w+)`),
}

// extractComparisonSubjects pulls the two things being compared out of
// the message. Returns nil when no pattern matches.
func extractComparisonSubjects(text string) []string {
	lower := strings.ToLower(text)
	for _, pat := range comparisonPatterns {
		if m := pat.FindStringSubmatch(lower); m != nil {
			return []string{m[1], m[2]}
		}
	}
	return nil
}

type comparisonSide struct {
	name    string
	bullets []string
}

type comparisonTable struct {
	sides   [2]comparisonSide
	verdict string
}

var comparisonTables = map[string]comparisonTable{
	"react_vue": {
		sides: [2]comparisonSide{
			{
				name: "React",
				bullets: []string{
					"Larger ecosystem and community",
					"More job opportunities",
					"Backed by Facebook/Meta",
					"JSX syntax",
					"Steeper learning curve",
				},
			},
			{
				name: "Vue",
				bullets: []string{
					"Gentler learning curve",
					"Excellent documentation",
					"Template-based syntax",
					"Smaller bundle size",
					"Growing adoption",
				},
			},
		},
		verdict: "Choose **React** for career opportunities and large-scale applications, or **Vue** for rapid development and easier onboarding.",
	},
	"python_javascript": {
		sides: [2]comparisonSide{
			{
				name: "Python",
				bullets: []string{
					"Excellent for AI/ML and data science",
					"Clean, readable syntax",
					"Strong in automation and scripting",
					"Great scientific computing libraries",
					"Slower execution speed",
				},
			},
			{
				name: "JavaScript",
				bullets: []string{
					"Runs everywhere (browser, server, mobile)",
					"Essential for web development",
					"Huge package ecosystem (npm)",
					"Asynchronous programming model",
					"Inconsistent behavior across environments",
				},
			},
		},
		verdict: "Choose **Python** for data work and AI, or **JavaScript** if web development is your focus. Many developers learn both.",
	},
}

// lookupComparisonTable tries both subject orderings against the canned
// tables.
func lookupComparisonTable(subjects []string) (comparisonTable, bool) {
	if len(subjects) < 2 {
		return comparisonTable{}, false
	}
	keys := []string{
		subjects[0] + "_" + subjects[1],
		subjects[1] + "_" + subjects[0],
	}
	for _, key := range keys {
		if table, ok := comparisonTables[key]; ok {
			return table, true
		}
	}
	return comparisonTable{}, false
}

func renderComparison(table comparisonTable) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Great question! Here's a comparison of **%s** and **%s**:\n", table.sides[0].name, table.sides[1].name)
	for _, side := range table.sides {
		fmt.Fprintf(&b, "\n**%s:**\n", side.name)
		for _, bullet := range side.bullets {
			fmt.Fprintf(&b, "• %s\n", bullet)
		}
	}
	b.WriteString("\n**Bottom line:** ")
	b.WriteString(table.verdict)
	return b.String()
}
