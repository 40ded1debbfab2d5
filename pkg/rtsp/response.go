package rtsp

import (
	"maps"
	"strconv"
	"strings"

	"github.com/pion/sdp/v3"
)

// Value is a header field value. Values made only of digits are kept as integers,
// everything else as text.
type Value struct {
	text  string
	num   int64
	isInt bool
}

// IntValue creates an integer field value
func IntValue(n int64) Value {
	return Value{num: n, isInt: true}
}

// TextValue creates a text field value
func TextValue(s string) Value {
	return Value{text: s}
}

// IsInt reports whether the value was coerced to an integer
func (v Value) IsInt() bool {
	return v.isInt
}

// Int returns the integer value, or 0 for text values
func (v Value) Int() int64 {
	return v.num
}

// String returns the text value, or the decimal form of an integer value
func (v Value) String() string {
	if v.isInt {
		return strconv.FormatInt(v.num, 10)
	}
	return v.text
}

// Any returns an int64 or a string
func (v Value) Any() any {
	if v.isInt {
		return v.num
	}
	return v.text
}

// StatusLine is the first line of a response
type StatusLine struct {
	Version string
	Code    int
	Message string
}

// Body is the decoded response body. SDP is set only for application/sdp bodies.
type Body struct {
	Text string
	SDP  *sdp.SessionDescription
}

// IsSDP reports whether the body was decoded as a session description
func (b Body) IsSDP() bool {
	return b.SDP != nil
}

// Response represents a parsed RTSP response. It is not modified after Parse returns.
type Response struct {
	status StatusLine
	fields map[string]Value
	body   Body
}

// Status returns the status line
func (r *Response) Status() StatusLine {
	return r.status
}

// Version returns the protocol version token, e.g. RTSP/1.0
func (r *Response) Version() string {
	return r.status.Version
}

// Code returns the status code
func (r *Response) Code() int {
	return r.status.Code
}

// Message returns the reason phrase of the status line
func (r *Response) Message() string {
	return r.status.Message
}

// Body returns the response body
func (r *Response) Body() Body {
	return r.body
}

// Field looks up a header by name. The name is canonicalized first, so both
// "Content-Type" and "content_type" work.
func (r *Response) Field(name string) (Value, bool) {
	v, ok := r.fields[CanonicalFieldName(name)]
	return v, ok
}

// Has reports whether the header is present
func (r *Response) Has(name string) bool {
	_, ok := r.Field(name)
	return ok
}

// String returns the header value as text, or "" if it is absent
func (r *Response) String(name string) string {
	v, _ := r.Field(name)
	return v.String()
}

// Int returns the header value if it is present and was coerced to an integer
func (r *Response) Int(name string) (int64, bool) {
	v, ok := r.Field(name)
	if !ok || !v.IsInt() {
		return 0, false
	}
	return v.Int(), true
}

// Fields returns a copy of all header fields keyed by canonical name
func (r *Response) Fields() map[string]Value {
	return maps.Clone(r.fields)
}

// CSeq returns the CSeq header
func (r *Response) CSeq() (int64, bool) {
	return r.Int(FieldCSeq)
}

// ContentLength returns the Content-Length header
func (r *Response) ContentLength() (int64, bool) {
	return r.Int(FieldContentLength)
}

// ContentType returns the Content-Type header
func (r *Response) ContentType() string {
	return r.String(FieldContentType)
}

// Session returns the Session header as text, including any parameters
func (r *Response) Session() string {
	return r.String(FieldSession)
}

// Public returns the methods listed in the Public header
func (r *Response) Public() []string {
	raw := r.String(FieldPublic)
	if raw == "" {
		return nil
	}

	var methods []string
	for _, m := range strings.Split(raw, ",") {
		if m = strings.TrimSpace(m); m != "" {
			methods = append(methods, m)
		}
	}
	return methods
}

// CanonicalFieldName lowercases a header name and replaces hyphens with underscores
func CanonicalFieldName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "-", "_")
}
