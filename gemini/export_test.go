package gemini

// NewWithModels returns a Client backed by m instead of a live SDK client.
func NewWithModels(m models, opts ...Option) *Client {
	c := newClient(opts...)
	c.models = m
	return c
}

// SourceMIME exports sourceMIME for testing.
func SourceMIME(data []byte) string {
	return sourceMIME(data)
}
