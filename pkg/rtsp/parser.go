package rtsp

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"braces.dev/errtrace"
)

const (
	crlf       = "\r\n"
	headSepCR  = "\r\n\r\n"
	headSepLF  = "\n\n"
	headerSep  = ": "
	maxLogLine = 64
)

var statusLinePattern = regexp.MustCompile(`(RTSP/1\.0) (\d{3}) ([^\r\n]+)`)

// Parser turns raw response text into a Response. A Parser holds no mutable
// state and may be shared between goroutines.
type Parser struct {
	sdp    SDPDecoder
	logger *slog.Logger
}

// ParserOption configures a Parser
type ParserOption func(*Parser)

// WithSDPDecoder replaces the decoder used for application/sdp bodies
func WithSDPDecoder(d SDPDecoder) ParserOption {
	return func(p *Parser) {
		if d != nil {
			p.sdp = d
		}
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(l *slog.Logger) ParserOption {
	return func(p *Parser) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewParser creates a parser that decodes SDP bodies with PionSDPDecoder
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{sdp: PionSDPDecoder}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = NewParser()

// ParseResponse parses raw with the default parser
func ParseResponse(raw string) (*Response, error) {
	return errtrace.Wrap2(defaultParser.Parse(raw))
}

// Parse parses a complete response. It fails with ErrMalformedStatusLine,
// *BodyDecodeError or *StatusError; a non-200 response is never returned.
func (p *Parser) Parse(raw string) (*Response, error) {
	head, body := splitMessage(raw)

	lines := strings.Split(head, crlf)
	status, err := parseStatusLine(lines[0])
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	resp := &Response{
		status: status,
		fields: parseFields(lines[1:]),
	}

	resp.body, err = p.parseBody(body, resp.ContentType())
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	p.log().Debug("RTSP response parsed", "code", status.Code, "fields", len(resp.fields), "bodyLen", len(resp.body.Text), "sdp", resp.body.IsSDP())

	if status.Code != StatusOK {
		return nil, errtrace.Wrap(&StatusError{Code: status.Code, Message: status.Message})
	}

	return resp, nil
}

func (p *Parser) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return slog.Default()
}

// splitMessage separates head and body. CRLF is tried first; LF only when the
// CRLF split leaves nothing.
func splitMessage(raw string) (head, body string) {
	parts := splitNonEmpty(raw, headSepCR)
	if len(parts) == 0 {
		parts = splitNonEmpty(raw, headSepLF)
	}
	if len(parts) == 0 {
		return "", ""
	}

	head = parts[0]
	if last := parts[len(parts)-1]; len(parts) > 1 && last != head {
		body = last
	}
	return head, body
}

// splitNonEmpty splits s on sep and drops trailing empty segments
func splitNonEmpty(s, sep string) []string {
	parts := strings.Split(s, sep)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

func parseStatusLine(line string) (StatusLine, error) {
	m := statusLinePattern.FindStringSubmatch(line)
	if m == nil {
		return StatusLine{}, fmt.Errorf("%w: %q", ErrMalformedStatusLine, truncate(line, maxLogLine))
	}

	// three digits always fit
	code, _ := strconv.Atoi(m[2])

	return StatusLine{
		Version: m[1],
		Code:    code,
		Message: strings.TrimRight(m[3], crlf),
	}, nil
}

// parseFields builds the field map; later duplicates overwrite earlier ones
func parseFields(lines []string) map[string]Value {
	fields := make(map[string]Value, len(lines))
	for _, line := range lines {
		name, value, ok := strings.Cut(line, headerSep)
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		fields[CanonicalFieldName(name)] = parseValue(strings.TrimSpace(value))
	}
	return fields
}

// parseValue coerces all-digit values, including "", to integers
func parseValue(s string) Value {
	if !isDigits(s) {
		return TextValue(s)
	}
	if s == "" {
		return IntValue(0)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return TextValue(s)
	}
	return IntValue(n)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (p *Parser) parseBody(body, contentType string) (Body, error) {
	if strings.HasPrefix(body, crlf) {
		body = body[len(crlf):]
	} else if strings.HasPrefix(body, "\n") {
		body = body[1:]
	}

	if contentType != ContentTypeSDP {
		return Body{Text: body}, nil
	}

	desc, err := p.sdp.DecodeSDP(body)
	if err != nil {
		return Body{}, &BodyDecodeError{ContentType: contentType, Err: err}
	}
	return Body{Text: body, SDP: desc}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
