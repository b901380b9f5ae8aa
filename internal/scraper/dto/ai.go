package dto

// GeminiAPIRequest is the request body of the Gemini generateContent API.
type GeminiAPIRequest struct {
	Contents []Content `json:"contents"`
}

// Content is a single turn in a Gemini conversation.
type Content struct {
	Parts []Part `json:"parts"`
}

// Part is one piece of content in a turn.
type Part struct {
	Text string `json:"text"`
}

// GeminiAPIResponse is the response body of the Gemini generateContent API.
type GeminiAPIResponse struct {
	Candidates []struct {
		Content struct {
			Parts []Part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// OpenAIRequest is the request body of the OpenAI chat completions API.
type OpenAIRequest struct {
	Model    string          `json:"model"`
	Messages []OpenAIMessage `json:"messages"`
}

// OpenAIMessage is one chat message with its role.
type OpenAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// OpenAIResponse is the response body of the OpenAI chat completions API.
type OpenAIResponse struct {
	Choices []struct {
		Message OpenAIMessage `json:"message"`
	} `json:"choices"`
}
