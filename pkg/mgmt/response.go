package mgmt

// ResponseMeta is carried by every successful API response.
type ResponseMeta struct {
	RequestID  string `json:"request_id"  yaml:"request_id"`
	StatusCode int    `json:"status_code" yaml:"status_code"`
}

// Meta returns the response metadata. Response types embed ResponseMeta, so
// the request core can fill it in for any of them.
func (m *ResponseMeta) Meta() *ResponseMeta {
	return m
}

// String returns a pointer to v.
func String(v string) *string {
	return &v
}

// Bool returns a pointer to v.
func Bool(v bool) *bool {
	return &v
}

// Int returns a pointer to v.
func Int(v int) *int {
	return &v
}
