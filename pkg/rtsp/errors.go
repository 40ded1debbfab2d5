package rtsp

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedStatusLine indicates the first line is not "RTSP/1.0 <code> <message>"
	ErrMalformedStatusLine = errors.New("malformed RTSP status line")
	// ErrNonSuccessStatus is matched by every *StatusError
	ErrNonSuccessStatus = errors.New("non-success RTSP status")
	// ErrBodyDecode is matched by every *BodyDecodeError
	ErrBodyDecode = errors.New("failed to decode RTSP body")
)

// StatusError is returned for a well-formed response whose code is not 200.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNonSuccessStatus
}

// BodyDecodeError wraps a failure of the body decoder.
type BodyDecodeError struct {
	ContentType string
	Err         error
}

func (e *BodyDecodeError) Error() string {
	return fmt.Sprintf("decode %s body: %v", e.ContentType, e.Err)
}

func (e *BodyDecodeError) Unwrap() error {
	return e.Err
}

func (e *BodyDecodeError) Is(target error) bool {
	return target == ErrBodyDecode
}
