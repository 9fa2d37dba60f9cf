package wincher

import (
	"slices"

	"github.com/adrianliechti/wincher-mcp/pkg/tool"
)

// Descriptor is the static description of one operation.
type Descriptor struct {
	Name        string
	Description string

	Parameters []tool.Parameter
}

func (d Descriptor) Required() []string {
	var result []string

	for _, p := range d.Parameters {
		if p.Required {
			result = append(result, p.Name)
		}
	}

	return result
}

func (d Descriptor) Schema() tool.Schema {
	return tool.ObjectSchema(d.Parameters...)
}

var (
	websiteID = tool.Parameter{
		Name:        "website_id",
		Type:        "integer",
		Description: "The ID of the website",
		Required:    true,
	}

	keywordID = tool.Parameter{
		Name:        "keyword_id",
		Type:        "integer",
		Description: "The ID of the keyword",
		Required:    true,
	}
)

var catalog = []Descriptor{
	{
		Name:        OpGetWebsites,
		Description: "List all websites tracked in your Wincher account with keyword counts and competitor information",
	},
	{
		Name:        OpGetKeywords,
		Description: "Get all keywords for a specific website with their current rankings, search volume, CPC, competition, and difficulty data",

		Parameters: []tool.Parameter{
			withDescription(websiteID, "The ID of the website (get from get_websites)"),
		},
	},
	{
		Name:        OpGetKeywordRankings,
		Description: "Get detailed ranking history for a specific keyword over time",

		Parameters: []tool.Parameter{
			withDescription(keywordID, "The ID of the keyword (get from get_keywords)"),
			websiteID,
		},
	},
	{
		Name:        OpGetCompetitorRankingSummaries,
		Description: "Get ranking summary comparison between your website and all tracked competitors including traffic, share of voice, and position distribution",

		Parameters: []tool.Parameter{
			websiteID,
		},
	},
	{
		Name:        OpGetCompetitorKeywordPositions,
		Description: "Get detailed keyword-by-keyword position comparison between your website and competitors",

		Parameters: []tool.Parameter{
			websiteID,
		},
	},
	{
		Name:        OpGetSERPs,
		Description: "Get SERP (Search Engine Results Page) data for a keyword showing who ranks in top positions and what SERP features are present",

		Parameters: []tool.Parameter{
			keywordID,
			websiteID,
		},
	},
	{
		Name:        OpGetKeywordGroups,
		Description: "List all keyword groups for a website with their aggregate performance metrics",

		Parameters: []tool.Parameter{
			websiteID,
		},
	},
	{
		Name:        OpGetBulkRankingHistory,
		Description: "Get historical ranking data for multiple keywords at once (more efficient than getting them one by one)",

		Parameters: []tool.Parameter{
			websiteID,
			{
				Name:        "keyword_ids",
				Type:        "array",
				Items:       "integer",
				Description: "Array of keyword IDs to get history for",
				Required:    true,
			},
			{
				Name:        "start_at",
				Type:        "string",
				Description: "Start date in ISO-8601 format (e.g., 2024-01-01T00:00:00Z)",
				Required:    true,
			},
			{
				Name:        "end_at",
				Type:        "string",
				Description: "End date in ISO-8601 format (e.g., 2024-12-31T23:59:59Z)",
				Required:    true,
			},
		},
	},
	{
		Name:        OpGetAnnotations,
		Description: "Get annotations (notes about SEO activities, ranking changes, etc.) for a website",

		Parameters: []tool.Parameter{
			websiteID,
		},
	},
}

// Operations returns the catalog in declaration order. The returned slice is
// a copy and may be modified by the caller.
func Operations() []Descriptor {
	result := make([]Descriptor, len(catalog))

	for i, d := range catalog {
		d.Parameters = slices.Clone(d.Parameters)
		result[i] = d
	}

	return result
}

func Lookup(name string) (Descriptor, bool) {
	for _, d := range catalog {
		if d.Name == name {
			d.Parameters = slices.Clone(d.Parameters)
			return d, true
		}
	}

	return Descriptor{}, false
}

func withDescription(p tool.Parameter, description string) tool.Parameter {
	p.Description = description
	return p
}
