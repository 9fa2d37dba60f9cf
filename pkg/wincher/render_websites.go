package wincher

import (
	"strings"

	"github.com/tidwall/gjson"
)

func renderWebsites(doc gjson.Result, args map[string]any) string {
	out := header("Tracked Websites:")

	for _, site := range items(doc, "data") {
		out.add("ID: %s", value(site, "id", placeholder))
		out.add("Domain: %s", value(site, "domain", placeholder))
		out.add("Search Engine: %s", value(site, "search_engine.domain", placeholder))
		out.add("Location: %s (%s)", value(site, "location.name", placeholder), value(site, "location.code", placeholder))
		out.add("Language: %s", value(site, "language", placeholder))
		out.add("Keywords: %s", value(site, "keyword_count", "0"))
		out.add("Competitors: %s", value(site, "competitor_count", "0"))
		out.add("Mobile: %s", value(site, "is_mobile", "false"))

		if competitors := items(site, "competitors"); len(competitors) > 0 {
			var domains []string

			for _, c := range competitors {
				domains = append(domains, value(c, "domain", ""))
			}

			out.add("Tracking: %s", strings.Join(domains, ", "))
		}

		out.blank()
	}

	return out.String()
}

func renderKeywords(doc gjson.Result, args map[string]any) string {
	out := header("Keywords for Website ID " + arg(args, "website_id") + ":")

	for _, kw := range items(doc, "data") {
		out.add("ID: %s", value(kw, "id", placeholder))
		out.add("Keyword: %s", value(kw, "keyword", placeholder))
		out.add("Current Rank: %s", value(kw, "position", placeholder))
		out.add("Previous Rank: %s", value(kw, "previous_position", placeholder))
		out.add("Best Rank: %s", value(kw, "best_position", placeholder))
		out.add("Search Volume: %s", value(kw, "search_volume", placeholder))
		out.add("URL: %s", value(kw, "url", placeholder))
		out.add("Last Updated: %s", value(kw, "updated_at", placeholder))
		out.blank()
	}

	return out.String()
}

func renderKeywordGroups(doc gjson.Result, args map[string]any) string {
	out := header("Keyword Groups:")

	for _, group := range items(doc, "data") {
		out.add("Group: %s", value(group, "name", placeholder))
		out.add("Keywords: %d", len(items(group, "keyword_ids")))
		out.add("Average Position: %s", value(group, "ranking.avg_position.value", placeholder))
		out.add("Estimated Traffic: %s", value(group, "ranking.traffic.value", placeholder))
		out.add("Total Search Volume: %s", value(group, "ranking.volume.value", placeholder))
		out.add("Average Difficulty: %s", value(group, "avg_keyword_difficulty", placeholder))
		out.blank()
	}

	return out.String()
}

func renderAnnotations(doc gjson.Result, args map[string]any) string {
	out := header("Annotations:")

	for _, annotation := range items(doc, "data") {
		out.add("Date: %s", value(annotation, "date", placeholder))
		out.add("Type: %s", value(annotation, "type", placeholder))
		out.add("Description: %s", value(annotation, "description", placeholder))

		if present(annotation, "author.profile") {
			first := value(annotation, "author.profile.first_name", "")
			last := value(annotation, "author.profile.last_name", "")

			out.add("Author: %s", strings.TrimSpace(first+" "+last))
		}

		out.blank()
	}

	return out.String()
}
