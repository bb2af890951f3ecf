package gscdomain

// ErrorResponse mirrors the standard Google API error envelope.
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Status  string      `json:"status,omitempty"`
	Errors  []ErrorItem `json:"errors,omitempty"`
}

type ErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// IsTokenExpired reports whether the error indicates an invalid or
// expired access token. Google signals this with HTTP 401, the
// UNAUTHENTICATED status, or an authError reason item.
func (e *ErrorResponse) IsTokenExpired() bool {
	if e.Error.Code == 401 || e.Error.Status == "UNAUTHENTICATED" {
		return true
	}

	for _, item := range e.Error.Errors {
		if item.Reason == "authError" || item.Reason == "invalid_token" {
			return true
		}
	}

	return false
}
