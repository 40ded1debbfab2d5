package rtsp

import (
	"errors"
	"io"
	"net"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMessageReader_ReadRaw(t *testing.T) {
	first := "RTSP/1.0 200 OK\r\nCSeq: 1\r\nPublic: OPTIONS, DESCRIBE\r\n\r\n"
	second := describeResponse(testSDP)

	mr := NewMessageReader(strings.NewReader(first + second))

	raw, err := mr.ReadRaw()
	require.NoError(t, err)
	assert.Equal(t, first, raw)

	raw, err = mr.ReadRaw()
	require.NoError(t, err)
	assert.Equal(t, second, raw)

	_, err = mr.ReadRaw()
	assert.ErrorIs(t, err, io.EOF)
}

func TestMessageReader_SkipsBlankLines(t *testing.T) {
	first := "RTSP/1.0 200 OK\r\nCSeq: 1\r\n\r\n"
	second := "RTSP/1.0 200 OK\r\nCSeq: 2\r\n\r\n"

	mr := NewMessageReader(strings.NewReader("\r\n" + first + "\r\n\n" + second + "\r\n\r\n"))

	raw, err := mr.ReadRaw()
	require.NoError(t, err)
	assert.Equal(t, first, raw)

	raw, err = mr.ReadRaw()
	require.NoError(t, err)
	assert.Equal(t, second, raw)

	raw, err = mr.ReadRaw()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "", raw)
}

func TestMessageReader_OnlyBlankLines(t *testing.T) {
	_, err := NewMessageReader(strings.NewReader("\r\n\r\n\n")).ReadRaw()
	assert.ErrorIs(t, err, io.EOF)
}

func TestMessageReader_BareLineFeeds(t *testing.T) {
	msg := "RTSP/1.0 200 OK\nCSeq: 1\ncontent-length: 4\n\nabcdEXTRA"

	raw, err := NewMessageReader(strings.NewReader(msg)).ReadRaw()
	require.NoError(t, err)
	assert.Equal(t, "RTSP/1.0 200 OK\nCSeq: 1\ncontent-length: 4\n\nabcd", raw)
}

func TestMessageReader_Errors(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want error
	}{
		{"truncated head", "RTSP/1.0 200 OK\r\nCSeq: 1\r\n", io.ErrUnexpectedEOF},
		{"partial line", "RTSP/1.0 200", io.ErrUnexpectedEOF},
		{"truncated body", "RTSP/1.0 200 OK\r\nContent-Length: 10\r\n\r\nabc", io.ErrUnexpectedEOF},
		{"bad length", "RTSP/1.0 200 OK\r\nContent-Length: ten\r\n\r\n", nil},
		{"negative length", "RTSP/1.0 200 OK\r\nContent-Length: -1\r\n\r\n", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewMessageReader(strings.NewReader(tc.msg)).ReadRaw()
			require.Error(t, err)
			assert.False(t, errors.Is(err, io.EOF))
			if tc.want != nil {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestReadResponse(t *testing.T) {
	defer goleak.VerifyNone(t)

	client, server := net.Pipe()
	defer client.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer server.Close()
		server.Write([]byte(describeResponse(testSDP)))
	}()

	resp, err := ReadResponse(client, time.Second, nil)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Code())
	assert.True(t, resp.Body().IsSDP())

	<-done
}

func TestReadResponse_StatusError(t *testing.T) {
	defer goleak.VerifyNone(t)

	client, server := net.Pipe()
	defer client.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer server.Close()
		server.Write([]byte("RTSP/1.0 455 Method Not Valid in This State\r\nCSeq: 6\r\n\r\n"))
	}()

	_, err := ReadResponse(client, time.Second, NewParser())
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, StatusMethodNotValidInThisState, statusErr.Code)

	<-done
}

func TestReadResponse_Timeout(t *testing.T) {
	defer goleak.VerifyNone(t)

	client, server := net.Pipe()
	defer server.Close()
	defer client.Close()

	start := time.Now()
	_, err := ReadResponse(client, 50*time.Millisecond, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrDeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}
