package gemini

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Shivakarthikeya23/CultureSense/internal/culture"
)

// affinityLine matches "Indie Music → Vintage Fashion 87%".
var affinityLine = regexp.MustCompile(`(.+?)\s*→\s*(.+?)\s*(\d+)%`)

// bulletPrefix strips leading list markers from section lines.
var bulletPrefix = regexp.MustCompile(`^[-•*]\s*`)

// ParseStrategistText splits the strategist's sectioned reply into the
// conversational response plus its structured lists. Everything before the
// first section header is the response; section lines that still contain a
// colon are treated as stray headers and skipped.
func ParseStrategistText(text string) culture.StrategistReply {
	reply := culture.StrategistReply{
		Data: culture.StrategistData{
			CulturalInsights: []string{},
			QlooAffinities:   []culture.Affinity{},
			Recommendations:  []string{},
		},
	}

	var response strings.Builder
	section := "response"

	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.Contains(line, "Cultural Insights:"):
			section = "insights"
			continue
		case strings.Contains(line, "Qloo Affinities:"):
			section = "affinities"
			continue
		case strings.Contains(line, "Recommendations:"):
			section = "recommendations"
			continue
		}

		trimmed := strings.TrimSpace(line)
		switch section {
		case "response":
			response.WriteString(line)
			response.WriteString("\n")
		case "insights":
			if trimmed != "" && !strings.Contains(line, ":") {
				reply.Data.CulturalInsights = append(reply.Data.CulturalInsights, bulletPrefix.ReplaceAllString(trimmed, ""))
			}
		case "affinities":
			if trimmed != "" && !strings.Contains(line, ":") {
				if m := affinityLine.FindStringSubmatch(line); m != nil {
					score, _ := strconv.Atoi(m[3])
					reply.Data.QlooAffinities = append(reply.Data.QlooAffinities, culture.Affinity{
						Source: strings.TrimSpace(m[1]),
						Target: strings.TrimSpace(m[2]),
						Score:  score,
					})
				}
			}
		case "recommendations":
			if trimmed != "" && !strings.Contains(line, ":") {
				reply.Data.Recommendations = append(reply.Data.Recommendations, bulletPrefix.ReplaceAllString(trimmed, ""))
			}
		}
	}

	reply.Response = strings.TrimSpace(response.String())
	return reply
}
