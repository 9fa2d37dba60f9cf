package wincher

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cast"
	"github.com/tidwall/gjson"
)

const (
	OpGetWebsites                   = "get_websites"
	OpGetKeywords                   = "get_keywords"
	OpGetKeywordRankings            = "get_keyword_rankings"
	OpGetCompetitorRankingSummaries = "get_competitor_ranking_summaries"
	OpGetCompetitorKeywordPositions = "get_competitor_keyword_positions"
	OpGetSERPs                      = "get_serps"
	OpGetKeywordGroups              = "get_keyword_groups"
	OpGetBulkRankingHistory         = "get_bulk_ranking_history"
	OpGetAnnotations                = "get_annotations"
)

type renderFn func(doc gjson.Result, args map[string]any) string

// binding maps an operation onto its HTTP request and its renderer.
type binding struct {
	Method string

	// Path may reference arguments as {name}.
	Path string

	Body   func(args map[string]any) any
	Render renderFn
}

var bindings = map[string]binding{
	OpGetWebsites: {
		Method: http.MethodGet,
		Path:   "/v1/websites",
		Render: renderWebsites,
	},

	OpGetKeywords: {
		Method: http.MethodGet,
		Path:   "/v1/websites/{website_id}/keywords",
		Render: renderKeywords,
	},

	OpGetKeywordRankings: {
		Method: http.MethodGet,
		Path:   "/v1/websites/{website_id}/keyword/{keyword_id}/ranking-history",
		Render: renderKeywordRankings,
	},

	OpGetCompetitorRankingSummaries: {
		Method: http.MethodGet,
		Path:   "/v1/websites/{website_id}/competitors/ranking-summaries",
		Render: renderCompetitorRankingSummaries,
	},

	OpGetCompetitorKeywordPositions: {
		Method: http.MethodGet,
		Path:   "/v1/websites/{website_id}/competitors/keyword-positions",
		Render: renderCompetitorKeywordPositions,
	},

	OpGetSERPs: {
		Method: http.MethodGet,
		Path:   "/v1/websites/{website_id}/keywords/{keyword_id}/serps",
		Render: renderSERPs,
	},

	OpGetKeywordGroups: {
		Method: http.MethodGet,
		Path:   "/v1/websites/{website_id}/groups",
		Render: renderKeywordGroups,
	},

	OpGetBulkRankingHistory: {
		Method: http.MethodPost,
		Path:   "/v1/websites/{website_id}/ranking-history",
		Body:   bulkRankingHistoryBody,
		Render: renderBulkRankingHistory,
	},

	OpGetAnnotations: {
		Method: http.MethodGet,
		Path:   "/v1/websites/{website_id}/annotations",
		Render: renderAnnotations,
	},
}

func bulkRankingHistoryBody(args map[string]any) any {
	return map[string]any{
		"keyword_ids": args["keyword_ids"],
		"start_at":    args["start_at"],
		"end_at":      args["end_at"],
	}
}

// expandPath substitutes {name} placeholders with the path-escaped argument values.
func expandPath(path string, args map[string]any) (string, error) {
	for {
		start := strings.Index(path, "{")

		if start < 0 {
			return path, nil
		}

		end := strings.Index(path[start:], "}")

		if end < 0 {
			return "", fmt.Errorf("unterminated placeholder in %q", path)
		}

		name := path[start+1 : start+end]

		value, err := cast.ToStringE(args[name])

		if err != nil {
			return "", &InvalidArgumentError{Name: name, Err: err}
		}

		if value == "" {
			return "", &MissingArgumentError{Name: name}
		}

		path = path[:start] + url.PathEscape(value) + path[start+end+1:]
	}
}
