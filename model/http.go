package model

type ParseRequestBody struct {
	Line          string `json:"line"`
	TimeSignature string `json:"timeSignature,omitempty"`
}

type RenderOptions struct {
	AlignBars             bool   `json:"alignBars"`
	AlignChordsWithLyrics bool   `json:"alignChordsWithLyrics"`
	PrintChordsDuration   bool   `json:"printChordsDuration"`
	PrintBarSeparators    *bool  `json:"printBarSeparators,omitempty"`
	TimeSignature         string `json:"timeSignature,omitempty"`
	Display               string `json:"display,omitempty"`
}

type RenderRequestBody struct {
	Sheet   string        `json:"sheet"`
	Options RenderOptions `json:"options"`
}

type RenderResponse struct {
	Text string `json:"text"`
}

type ErrorResponse struct {
	Error     string `json:"detail"`
	Line      int    `json:"line,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}
