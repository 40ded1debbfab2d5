package rtsp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"

	"braces.dev/errtrace"
)

// MaxBodySize bounds the Content-Length accepted by MessageReader
const MaxBodySize = 4 << 20

// MessageReader reads complete raw RTSP responses from a stream. It does no
// parsing beyond finding the end of the head and the body length.
type MessageReader struct {
	reader *bufio.Reader
}

// NewMessageReader creates a new RTSP message reader
func NewMessageReader(r io.Reader) *MessageReader {
	return &MessageReader{
		reader: bufio.NewReader(r),
	}
}

// ReadRaw reads one response: the head up to and including the blank line,
// followed by Content-Length bytes of body. Line endings are kept as received.
// Empty lines ahead of the status line are dropped; io.EOF is returned when
// nothing else is left.
func (mr *MessageReader) ReadRaw() (string, error) {
	var sb strings.Builder
	contentLength := 0

	for {
		line, err := mr.reader.ReadString('\n')
		trimmed := strings.TrimRight(line, "\r\n")
		if err != nil {
			if errors.Is(err, io.EOF) {
				if sb.Len() == 0 && trimmed == "" {
					return "", io.EOF
				}
				return "", errtrace.Wrap(fmt.Errorf("read head: %w", io.ErrUnexpectedEOF))
			}
			return "", errtrace.Wrap(fmt.Errorf("read head: %w", err))
		}

		// blank lines before the status line are skipped
		if sb.Len() == 0 && trimmed == "" {
			continue
		}
		sb.WriteString(line)

		if trimmed == "" {
			// Empty line means end of headers
			break
		}

		name, value, ok := strings.Cut(trimmed, ":")
		if !ok || CanonicalFieldName(strings.TrimSpace(name)) != FieldContentLength {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 || n > MaxBodySize {
			return "", errtrace.Wrap(fmt.Errorf("invalid content length: %q", strings.TrimSpace(value)))
		}
		contentLength = n
	}

	if contentLength > 0 {
		body := make([]byte, contentLength)
		if _, err := io.ReadFull(mr.reader, body); err != nil {
			return "", errtrace.Wrap(fmt.Errorf("read body: %w", err))
		}
		sb.Write(body)
	}

	return sb.String(), nil
}

// ReadResponse reads one response from conn within timeout and parses it with
// p. A timeout <= 0 means DefaultReadTimeout; a nil p means the default parser.
// Bytes buffered past the response are dropped, so use a MessageReader to read
// several responses from one stream.
func ReadResponse(conn net.Conn, timeout time.Duration, p *Parser) (*Response, error) {
	if timeout <= 0 {
		timeout = DefaultReadTimeout
	}
	if p == nil {
		p = defaultParser
	}

	if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return nil, errtrace.Wrap(err)
	}
	raw, err := NewMessageReader(conn).ReadRaw()
	// a reset failure does not affect data already read
	_ = conn.SetReadDeadline(time.Time{})
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	return errtrace.Wrap2(p.Parse(raw))
}
