package sdk

// Result is a single search hit returned by the API.
type Result struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Snippet     string `json:"snippet,omitempty"`
	Category    string `json:"category"`
	ContentType string `json:"content_type"`
	Score       int    `json:"score"`
}

// HealthReport is the server's health probe response.
type HealthReport struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type searchResponse struct {
	Results []Result `json:"results"`
	Total   int      `json:"total"`
}
