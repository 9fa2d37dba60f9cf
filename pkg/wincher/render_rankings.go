package wincher

import (
	"github.com/tidwall/gjson"
)

func renderKeywordRankings(doc gjson.Result, args map[string]any) string {
	out := header("Ranking History for Keyword ID " + arg(args, "keyword_id") + ":")

	for _, series := range items(doc, "data") {
		if present(series, "label") {
			out.add("Series: %s", value(series, "label", ""))
		}

		for _, point := range items(series, "data") {
			out.add("Date: %s", value(point, "date", placeholder))
			out.add("Position: %s", value(point, "position", placeholder))

			if present(point, "url") {
				out.add("URL: %s", value(point, "url", ""))
			}

			out.blank()
		}
	}

	return out.String()
}

func renderBulkRankingHistory(doc gjson.Result, args map[string]any) string {
	out := header("Bulk Ranking History (" + arg(args, "start_at") + " to " + arg(args, "end_at") + "):")

	for _, item := range items(doc, "data") {
		out.add("Keyword ID: %s", value(item, "keyword_id", placeholder))
		out.add("Keyword: %s", value(item, "keyword", placeholder))

		for _, point := range items(item, "data") {
			out.add("  %s: Position %s", value(point, "date", placeholder), value(point, "position", placeholder))
		}

		out.blank()
	}

	return out.String()
}
