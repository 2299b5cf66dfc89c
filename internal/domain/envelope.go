package domain

// Envelope is the single wire shape for every reply. Errors travel in-body;
// the HTTP status is always 200.
type Envelope struct {
	Version string    `json:"version"`
	Error   *RPCError `json:"error"`
	Result  any       `json:"result"`
}

type RPCError struct {
	Name    string `json:"name"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}
