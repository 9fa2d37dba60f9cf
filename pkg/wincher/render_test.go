package wincher

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, name, payload string, args map[string]any) string {
	t.Helper()

	text, err := Render(name, []byte(payload), args)
	require.NoError(t, err)

	return text
}

func TestRenderWebsites(t *testing.T) {
	payload := `{"data":[{"id":1,"domain":"example.com","search_engine":{"domain":"google.com"},"location":{"name":"US","code":"us"},"language":"en","keyword_count":5,"competitor_count":2,"is_mobile":false,"competitors":[{"domain":"rival.com"}]}]}`

	want := strings.Join([]string{
		"Tracked Websites:",
		"",
		"ID: 1",
		"Domain: example.com",
		"Search Engine: google.com",
		"Location: US (us)",
		"Language: en",
		"Keywords: 5",
		"Competitors: 2",
		"Mobile: false",
		"Tracking: rival.com",
		"",
		"",
	}, "\n")

	if diff := cmp.Diff(want, render(t, OpGetWebsites, payload, nil)); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestRenderWebsitesMissingFields(t *testing.T) {
	payload := `{"data":[{"id":2,"search_engine":null,"competitors":[]}]}`

	want := strings.Join([]string{
		"Tracked Websites:",
		"",
		"ID: 2",
		"Domain: N/A",
		"Search Engine: N/A",
		"Location: N/A (N/A)",
		"Language: N/A",
		"Keywords: 0",
		"Competitors: 0",
		"Mobile: false",
		"",
		"",
	}, "\n")

	if diff := cmp.Diff(want, render(t, OpGetWebsites, payload, nil)); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestRenderKeywords(t *testing.T) {
	payload := `{"data":[{"id":10,"keyword":"seo tools","position":3,"previous_position":5,"best_position":1,"search_volume":1200,"url":"https://example.com/seo","updated_at":"2024-05-01T00:00:00Z"},{"id":11,"keyword":"rank tracker","position":null}]}`

	want := strings.Join([]string{
		"Keywords for Website ID 7:",
		"",
		"ID: 10",
		"Keyword: seo tools",
		"Current Rank: 3",
		"Previous Rank: 5",
		"Best Rank: 1",
		"Search Volume: 1200",
		"URL: https://example.com/seo",
		"Last Updated: 2024-05-01T00:00:00Z",
		"",
		"ID: 11",
		"Keyword: rank tracker",
		"Current Rank: N/A",
		"Previous Rank: N/A",
		"Best Rank: N/A",
		"Search Volume: N/A",
		"URL: N/A",
		"Last Updated: N/A",
		"",
		"",
	}, "\n")

	got := render(t, OpGetKeywords, payload, map[string]any{"website_id": float64(7)})

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestRenderKeywordRankings(t *testing.T) {
	t.Run("Series", func(t *testing.T) {
		payload := `{"data":[{"label":"Desktop","data":[{"date":"2024-01-01","position":4,"url":"https://example.com/a"},{"date":"2024-01-02","position":3}]},{"label":"","data":[{"date":"2024-01-03"}]}]}`

		want := strings.Join([]string{
			"Ranking History for Keyword ID 42:",
			"",
			"Series: Desktop",
			"Date: 2024-01-01",
			"Position: 4",
			"URL: https://example.com/a",
			"",
			"Date: 2024-01-02",
			"Position: 3",
			"",
			"Date: 2024-01-03",
			"Position: N/A",
			"",
			"",
		}, "\n")

		got := render(t, OpGetKeywordRankings, payload, map[string]any{"keyword_id": 42, "website_id": 7})

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("unexpected output (-want +got):\n%s", diff)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		got := render(t, OpGetKeywordRankings, `{"data":[]}`, map[string]any{"keyword_id": 42, "website_id": 7})
		assert.Equal(t, "Ranking History for Keyword ID 42:\n\n", got)
	})
}

func TestRenderCompetitorRankingSummaries(t *testing.T) {
	payload := `{"data":[{"domain":"example.com","is_tracked_website":true,"ranking":{"avg_position":{"value":12.5,"change":-1.5},"traffic":{"value":340},"share_of_voice":{"value":18.2},"volume":{"value":5400}}},{"domain":"rival.com","ranking":{}}]}`

	want := strings.Join([]string{
		"Competitor Ranking Comparison:",
		"",
		"Domain: example.com",
		"Is Your Website: true",
		"Average Position: 12.5",
		"Position Change: -1.5",
		"Estimated Traffic: 340",
		"Share of Voice: 18.2%",
		"Total Search Volume: 5400",
		"",
		"Domain: rival.com",
		"Is Your Website: false",
		"Average Position: N/A",
		"Position Change: N/A",
		"Estimated Traffic: N/A",
		"Share of Voice: N/A%",
		"Total Search Volume: N/A",
		"",
		"",
	}, "\n")

	got := render(t, OpGetCompetitorRankingSummaries, payload, map[string]any{"website_id": 7})

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestRenderCompetitorKeywordPositions(t *testing.T) {
	payload := `{"data":[{"keyword":"seo tools","volume":1200,"positions":[{"domain":"example.com","position":3,"is_tracked_website":true},{"domain":"rival.com","position":1,"is_tracked_website":false},{"domain":"other.com"}]}]}`

	want := strings.Join([]string{
		"Keyword Position Comparison:",
		"",
		"Keyword: seo tools",
		"Search Volume: 1200",
		"  • example.com: Position 3 (YOUR SITE)",
		"  • rival.com: Position 1",
		"  • other.com: Position N/A",
		"",
		"",
	}, "\n")

	got := render(t, OpGetCompetitorKeywordPositions, payload, map[string]any{"website_id": 7})

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestRenderSERPs(t *testing.T) {
	t.Run("Results", func(t *testing.T) {
		payload := `{"data":[{"date":"2024-02-01","volume":{"value":880},"features":["featured_snippet","people_also_ask"],"results":[{"domain":"example.com","title":"Best SEO Tools","url":"https://example.com"},{"domain":"rival.com"}]}]}`

		want := strings.Join([]string{
			"SERP Data for Keyword ID 42:",
			"",
			"Date: 2024-02-01",
			"Search Volume: 880",
			"SERP Features: featured_snippet, people_also_ask",
			"",
			"Top Rankings:",
			"1. example.com",
			"   Title: Best SEO Tools...",
			"   URL: https://example.com",
			"2. rival.com",
			"   Title: N/A...",
			"",
			"",
		}, "\n")

		got := render(t, OpGetSERPs, payload, map[string]any{"keyword_id": 42, "website_id": 7})

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("unexpected output (-want +got):\n%s", diff)
		}
	})

	t.Run("TopTenAndTitleLength", func(t *testing.T) {
		title := strings.Repeat("é", 100)

		var results []string

		for i := 0; i < 15; i++ {
			results = append(results, `{"domain":"site.com","title":"`+title+`"}`)
		}

		payload := `{"data":[{"date":"2024-02-01","results":[` + strings.Join(results, ",") + `]}]}`

		got := render(t, OpGetSERPs, payload, map[string]any{"keyword_id": 42, "website_id": 7})

		assert.Contains(t, got, "10. site.com\n")
		assert.NotContains(t, got, "11. site.com")
		assert.Contains(t, got, "   Title: "+strings.Repeat("é", 80)+"...\n")
		assert.NotContains(t, got, strings.Repeat("é", 81))
		assert.NotContains(t, got, "SERP Features:")
		assert.Contains(t, got, "Search Volume: N/A\n")
	})
}

func TestRenderKeywordGroups(t *testing.T) {
	payload := `{"data":[{"name":"Brand","keyword_ids":[1,2,3],"ranking":{"avg_position":{"value":4.2},"traffic":{"value":90},"volume":{"value":3000}},"avg_keyword_difficulty":37},{"name":"Generic"}]}`

	want := strings.Join([]string{
		"Keyword Groups:",
		"",
		"Group: Brand",
		"Keywords: 3",
		"Average Position: 4.2",
		"Estimated Traffic: 90",
		"Total Search Volume: 3000",
		"Average Difficulty: 37",
		"",
		"Group: Generic",
		"Keywords: 0",
		"Average Position: N/A",
		"Estimated Traffic: N/A",
		"Total Search Volume: N/A",
		"Average Difficulty: N/A",
		"",
		"",
	}, "\n")

	got := render(t, OpGetKeywordGroups, payload, map[string]any{"website_id": 7})

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestRenderBulkRankingHistory(t *testing.T) {
	payload := `{"data":[{"keyword_id":1,"keyword":"seo tools","data":[{"date":"2024-01-01","position":4},{"date":"2024-01-02"}]},{"keyword_id":2,"keyword":"rank tracker"}]}`

	want := strings.Join([]string{
		"Bulk Ranking History (2024-01-01T00:00:00Z to 2024-01-31T23:59:59Z):",
		"",
		"Keyword ID: 1",
		"Keyword: seo tools",
		"  2024-01-01: Position 4",
		"  2024-01-02: Position N/A",
		"",
		"Keyword ID: 2",
		"Keyword: rank tracker",
		"",
		"",
	}, "\n")

	args := map[string]any{
		"website_id":  7,
		"keyword_ids": []any{1, 2},
		"start_at":    "2024-01-01T00:00:00Z",
		"end_at":      "2024-01-31T23:59:59Z",
	}

	got := render(t, OpGetBulkRankingHistory, payload, args)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestRenderAnnotations(t *testing.T) {
	payload := `{"data":[{"date":"2024-03-01","type":"content","description":"Rewrote landing page","author":{"profile":{"first_name":"Ada","last_name":""}}},{"date":"2024-03-02","type":"technical","author":{}}]}`

	want := strings.Join([]string{
		"Annotations:",
		"",
		"Date: 2024-03-01",
		"Type: content",
		"Description: Rewrote landing page",
		"Author: Ada",
		"",
		"Date: 2024-03-02",
		"Type: technical",
		"Description: N/A",
		"",
		"",
	}, "\n")

	got := render(t, OpGetAnnotations, payload, map[string]any{"website_id": 7})

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestRenderTolerantPayloads(t *testing.T) {
	payloads := []string{
		``,
		`{}`,
		`{"data":null}`,
		`{"data":{"id":1}}`,
		`{"data":[null,1,"x",[]]}`,
		`[]`,
	}

	for _, op := range Operations() {
		for _, payload := range payloads {
			text, err := Render(op.Name, []byte(payload), map[string]any{})

			require.NoError(t, err)
			assert.NotEmpty(t, text, "%s %q", op.Name, payload)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	payload := []byte(`{"data":[{"domain":"example.com","positions":[{"domain":"a.com","position":1},{"domain":"b.com","position":2}]}]}`)

	for _, op := range Operations() {
		first, err := Render(op.Name, payload, map[string]any{"website_id": 1})
		require.NoError(t, err)

		second, err := Render(op.Name, payload, map[string]any{"website_id": 1})
		require.NoError(t, err)

		assert.Equal(t, first, second, op.Name)
	}
}

func TestRenderUnknown(t *testing.T) {
	_, err := Render("get_backlinks", []byte(`{}`), nil)

	var unknownErr *UnknownOperationError
	assert.ErrorAs(t, err, &unknownErr)
}
