// Package quantify scans experience and project text for numeric-impact
// phrases: percentages, currency amounts, counts, and time savings.
package quantify

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Detection patterns per metric type. A line yields at most one claim; when
// several metric types appear on the same line the first type in priority
// order (percent > currency > count > duration) wins, keeping the claim count
// bounded.
var (
	percentPattern  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:%|percent\b)|(\d+(?:\.\d+)?)x\b`)
	currencyPattern = regexp.MustCompile(`[$€£]\s*(\d+(?:[,.]\d+)*)\s*([kmbKMB])?`)
	countPattern    = regexp.MustCompile(`(?i)(\d+(?:,\d{3})*(?:\.\d+)?)\s*(k|m|million|billion|thousand)?\s*\+?\s*(users|customers|clients|requests|transactions|records|downloads|queries|deployments|engineers|developers|teams|services|endpoints|tickets|orders)\b`)
	durationPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(hours?|hrs?|minutes?|mins?|seconds?|secs?|days?|weeks?|months?|years?)\b`)
)

// metricChecks pairs each pattern with its type in detection priority order.
var metricChecks = []struct {
	metric  types.MetricType
	pattern *regexp.Regexp
}{
	{types.MetricPercent, percentPattern},
	{types.MetricCurrency, currencyPattern},
	{types.MetricCount, countPattern},
	{types.MetricDuration, durationPattern},
}

// Detect scans only experience and project sections and returns one
// QuantifiedClaim per qualifying line, in document order. It never interprets
// the number's business meaning.
func Detect(doc *types.RawDocument, sections []types.Section) []types.QuantifiedClaim {
	var claims []types.QuantifiedClaim

	for _, section := range sections {
		if section.Kind != types.KindExperience && section.Kind != types.KindProjects {
			continue
		}
		for i := section.BodyStart(); i < section.EndLine; i++ {
			if claim, ok := detectLine(doc.Line(i), i); ok {
				claims = append(claims, claim)
			}
		}
	}

	return claims
}

// detectLine applies the metric patterns in priority order and builds a claim
// from the first one that matches.
func detectLine(line string, index int) (types.QuantifiedClaim, bool) {
	for _, check := range metricChecks {
		match := check.pattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		return types.QuantifiedClaim{
			LineIndex: index,
			Metric:    check.metric,
			Value:     parseValue(match),
			Text:      line,
		}, true
	}
	return types.QuantifiedClaim{}, false
}

// parseValue extracts the first numeric capture group from a pattern match.
func parseValue(match []string) float64 {
	for _, group := range match[1:] {
		if group == "" {
			continue
		}
		cleaned := strings.ReplaceAll(group, ",", "")
		if value, err := strconv.ParseFloat(cleaned, 64); err == nil {
			return value
		}
	}
	return 0
}
