package calculator

// Editing keys handled by the caller side of the engine contract: clearing
// resets the display, delete drops the last character. Every other accepted
// key is a single calculator character fed to the sanitizer.
const (
	ClearKey  = "C"
	DeleteKey = "DEL"
)

// Stable error codes returned to API clients. Clients branch on these, never
// on the human-readable message.
const (
	CodeDivisionByZero    = "division_by_zero"
	CodeInvalidExpression = "invalid_expression"
	CodeInvalidRequest    = "invalid_request"
)

// KeypressRequest is the JSON body for POST /calculator/keypress.
type KeypressRequest struct {
	Display string `json:"display"` // display string before the keystroke
	Key     string `json:"key"`     // one calculator character, or "C"/"DEL"
}

// KeypressResponse reports the display after the keystroke. Accepted is false
// when the sanitizer absorbed the key as a no-op.
type KeypressResponse struct {
	Display  string `json:"display"`
	Accepted bool   `json:"accepted"`
}

// KeysRequest is the JSON body for POST /calculator/keys: a whole keystroke
// sequence replayed one character at a time.
type KeysRequest struct {
	Display string `json:"display"` // optional starting display
	Keys    string `json:"keys"`
}

// KeyResult records one replayed keystroke.
type KeyResult struct {
	Key      string `json:"key"`
	Display  string `json:"display"`
	Accepted bool   `json:"accepted"`
}

// KeysResponse is the JSON response for POST /calculator/keys.
type KeysResponse struct {
	Display string      `json:"display"`
	Steps   []KeyResult `json:"steps"`
}

// EvaluateRequest is the JSON body for POST /calculator/evaluate.
type EvaluateRequest struct {
	Display string `json:"display"`
}

// EvaluateResponse carries both the raw numeric result and its canonical
// display rendering.
type EvaluateResponse struct {
	Display   string  `json:"display"`
	Result    float64 `json:"result"`
	Formatted string  `json:"formatted"`
}
