package models

// Choice is one enumerated option offered to the user. The transport
// layer decides how to render it (native button or numbered text line).
type Choice struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Response is the single output of the conversation engine per inbound
// message: the prompt to send back, plus optional choices.
type Response struct {
	Text    string   `json:"text"`
	Choices []Choice `json:"choices,omitempty"`
}
