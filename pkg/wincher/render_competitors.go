package wincher

import (
	"github.com/tidwall/gjson"
)

func renderCompetitorRankingSummaries(doc gjson.Result, args map[string]any) string {
	out := header("Competitor Ranking Comparison:")

	for _, summary := range items(doc, "data") {
		out.add("Domain: %s", value(summary, "domain", placeholder))
		out.add("Is Your Website: %s", value(summary, "is_tracked_website", "false"))
		out.add("Average Position: %s", value(summary, "ranking.avg_position.value", placeholder))
		out.add("Position Change: %s", value(summary, "ranking.avg_position.change", placeholder))
		out.add("Estimated Traffic: %s", value(summary, "ranking.traffic.value", placeholder))
		out.add("Share of Voice: %s%%", value(summary, "ranking.share_of_voice.value", placeholder))
		out.add("Total Search Volume: %s", value(summary, "ranking.volume.value", placeholder))
		out.blank()
	}

	return out.String()
}

func renderCompetitorKeywordPositions(doc gjson.Result, args map[string]any) string {
	out := header("Keyword Position Comparison:")

	for _, item := range items(doc, "data") {
		out.add("Keyword: %s", value(item, "keyword", placeholder))
		out.add("Search Volume: %s", value(item, "volume", placeholder))

		for _, pos := range items(item, "positions") {
			line := "  • " + value(pos, "domain", placeholder) + ": Position " + value(pos, "position", placeholder)

			if present(pos, "is_tracked_website") {
				line += " (YOUR SITE)"
			}

			out.add("%s", line)
		}

		out.blank()
	}

	return out.String()
}
