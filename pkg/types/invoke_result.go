package types

// InvokeResult stores the outcome of an API Gateway test invocation.
type InvokeResult struct {
	StatusCode int32  `json:"status_code"`
	Body       string `json:"body"`
	LatencyMS  int64  `json:"latency_ms"`
	Log        string `json:"log,omitempty"`
}
