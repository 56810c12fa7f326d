package oai

// ImagesRequest is the payload for POST {base}/images/generations.
// Compatible with OpenAI API. response_format is intentionally not
// sent: servers answer with either a fetchable URL or inline base64,
// and the batch runner handles both forms.
type ImagesRequest struct {
	Model   string `json:"model"`
	Prompt  string `json:"prompt"`
	N       int    `json:"n"`
	Size    string `json:"size,omitempty"`
	Quality string `json:"quality,omitempty"`
}

// ImageData is a single generated image. Exactly one of URL or B64JSON
// is expected to be populated.
type ImageData struct {
	URL           string `json:"url,omitempty"`
	B64JSON       string `json:"b64_json,omitempty"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

// ImagesResponse is the success payload of the Images API.
type ImagesResponse struct {
	Created int64       `json:"created,omitempty"`
	Data    []ImageData `json:"data"`
	Model   string      `json:"model,omitempty"`
}

// apiErrorEnvelope covers the two error shapes seen from
// OpenAI-compatible servers: {"error":"msg"} and
// {"error":{"message":"msg"}}.
type apiErrorEnvelope struct {
	Error any `json:"error"`
}

func (e apiErrorEnvelope) message() string {
	switch v := e.Error.(type) {
	case string:
		return v
	case map[string]any:
		if m, ok := v["message"].(string); ok {
			return m
		}
	}
	return ""
}
