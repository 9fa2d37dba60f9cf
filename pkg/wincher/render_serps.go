package wincher

import (
	"strings"

	"github.com/tidwall/gjson"
)

func renderSERPs(doc gjson.Result, args map[string]any) string {
	out := header("SERP Data for Keyword ID " + arg(args, "keyword_id") + ":")

	for _, serp := range items(doc, "data") {
		out.add("Date: %s", value(serp, "date", placeholder))
		out.add("Search Volume: %s", value(serp, "volume.value", placeholder))

		if features := items(serp, "features"); len(features) > 0 {
			var names []string

			for _, f := range features {
				names = append(names, f.String())
			}

			out.add("SERP Features: %s", strings.Join(names, ", "))
		}

		out.blank()
		out.add("Top Rankings:")

		results := items(serp, "results")

		if len(results) > topResults {
			results = results[:topResults]
		}

		for i, res := range results {
			out.add("%d. %s", i+1, value(res, "domain", placeholder))
			out.add("   Title: %s...", truncate(value(res, "title", placeholder), titleLength))

			if present(res, "url") {
				out.add("   URL: %s", value(res, "url", ""))
			}
		}

		out.blank()
	}

	return out.String()
}
