package rtsp

import (
	"github.com/pion/sdp/v3"
)

// SDPDecoder turns an application/sdp body into a session description.
type SDPDecoder interface {
	DecodeSDP(body string) (*sdp.SessionDescription, error)
}

// SDPDecoderFunc adapts a function to SDPDecoder
type SDPDecoderFunc func(body string) (*sdp.SessionDescription, error)

func (f SDPDecoderFunc) DecodeSDP(body string) (*sdp.SessionDescription, error) {
	return f(body)
}

// PionSDPDecoder decodes bodies with github.com/pion/sdp/v3
var PionSDPDecoder SDPDecoder = SDPDecoderFunc(func(body string) (*sdp.SessionDescription, error) {
	desc := &sdp.SessionDescription{}
	if err := desc.Unmarshal([]byte(body)); err != nil {
		return nil, err
	}
	return desc, nil
})
