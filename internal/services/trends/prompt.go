package trends

import (
	"fmt"
	"strings"
)

const notSpecified = "not specified"

// BuildPrompt renders the instruction block sent with every query.
func BuildPrompt(req TrendRequest) string {
	var b strings.Builder

	b.WriteString("Act as an expert social media trend analyst. Your task is to simulate web scraping and data aggregation across the requested platforms to identify trending topics.\n\n")

	b.WriteString("Analyze the trends based on these parameters:\n")
	fmt.Fprintf(&b, "- Platforms: %s\n", strings.Join(req.Platforms, ", "))
	fmt.Fprintf(&b, "- Topic/Subject: \"%s\"\n", req.Topic)
	fmt.Fprintf(&b, "- Time Frame: Month: %s, Day: %s\n", orNotSpecified(req.Month), orNotSpecified(req.Day))
	fmt.Fprintf(&b, "- Output Format: %s\n\n", req.OutputFormat)

	b.WriteString("Your goal is to populate a JSON object based on the provided schema.\n")
	b.WriteString("- Identify relevant trending topics.\n")
	b.WriteString("- For each topic, extract key details: main keywords, main hashtags, and popular audio.\n")
	b.WriteString("- For each keyword, compute a 'viral_percentage' (a number between 0 and 100 inclusive) indicating its potential to make content go viral. Base this on historical and current trend signals.\n")
	b.WriteString("- Provide verification resources (links to articles, stats, or relevant posts) that justify why each topic was included.\n")
	b.WriteString("- If data for any platform or topic is unavailable, keep that platform in the result and populate its 'error' field with a clear message; otherwise set 'error' to null.\n")
	if req.OutputFormat == FormatAggregated {
		fmt.Fprintf(&b, "- Combine all platforms into a single result whose 'platform' is %q.\n", AggregatedPlatform)
	} else {
		b.WriteString("- Return one result per requested platform.\n")
	}
	b.WriteString("- Sort all lists (trending_topics, keywords, hashtags, popular_audio) in descending order of popularity or impact.\n")
	b.WriteString("- Your response must be ONLY the JSON object. Do not include any other text, explanations, or markdown.\n")

	return b.String()
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return notSpecified
	}
	return s
}
