package feed

// Normalized output types, serialized as-is by the API layer.

type Item struct {
	Title      string   `json:"title"`
	Link       string   `json:"link"`
	Author     string   `json:"author"`
	Published  string   `json:"published,omitempty"`
	Updated    string   `json:"updated,omitempty"`
	Content    string   `json:"content"`
	Categories []string `json:"categories"`
}

type Info struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

type Payload struct {
	Feed  Info   `json:"feed"`
	Count int    `json:"count"`
	Items []Item `json:"items"`
}

// Result is the single response shape for both outcomes. The embedded
// payload pointer is nil on failure, so the success fields disappear from
// the serialized form entirely instead of showing up zero-valued.
type Result struct {
	Success bool `json:"success"`
	*Payload
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}

func Failure(errMsg, details string) Result {
	return Result{
		Success: false,
		Error:   errMsg,
		Details: details,
	}
}
