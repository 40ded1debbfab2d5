package rtsp

import "time"

// RTSP Status Codes
const (
	StatusContinue                       = 100
	StatusOK                             = 200
	StatusCreated                        = 201
	StatusLowOnStorageSpace              = 250
	StatusMultipleChoices                = 300
	StatusMovedPermanently               = 301
	StatusMovedTemporarily               = 302
	StatusSeeOther                       = 303
	StatusNotModified                    = 304
	StatusUseProxy                       = 305
	StatusBadRequest                     = 400
	StatusUnauthorized                   = 401
	StatusPaymentRequired                = 402
	StatusForbidden                      = 403
	StatusNotFound                       = 404
	StatusMethodNotAllowed               = 405
	StatusNotAcceptable                  = 406
	StatusProxyAuthRequired              = 407
	StatusRequestTimeout                 = 408
	StatusGone                           = 410
	StatusLengthRequired                 = 411
	StatusPreconditionFailed             = 412
	StatusRequestEntityTooLarge          = 413
	StatusRequestURITooLarge             = 414
	StatusUnsupportedMediaType           = 415
	StatusParameterNotUnderstood         = 451
	StatusConferenceNotFound             = 452
	StatusNotEnoughBandwidth             = 453
	StatusSessionNotFound                = 454
	StatusMethodNotValidInThisState      = 455
	StatusHeaderFieldNotValidForResource = 456
	StatusInvalidRange                   = 457
	StatusParameterIsReadOnly            = 458
	StatusAggregateOperationNotAllowed   = 459
	StatusOnlyAggregateOperationAllowed  = 460
	StatusUnsupportedTransport           = 461
	StatusDestinationUnreachable         = 462
	StatusInternalServerError            = 500
	StatusNotImplemented                 = 501
	StatusBadGateway                     = 502
	StatusServiceUnavailable             = 503
	StatusGatewayTimeout                 = 504
	StatusRTSPVersionNotSupported        = 505
	StatusOptionNotSupported             = 551
)

// Canonical field names of common RTSP headers, as produced by CanonicalFieldName.
const (
	FieldAccept          = "accept"
	FieldAllow           = "allow"
	FieldCacheControl    = "cache_control"
	FieldConnection      = "connection"
	FieldContentBase     = "content_base"
	FieldContentEncoding = "content_encoding"
	FieldContentLength   = "content_length"
	FieldContentLocation = "content_location"
	FieldContentType     = "content_type"
	FieldCSeq            = "cseq"
	FieldDate            = "date"
	FieldExpires         = "expires"
	FieldLastModified    = "last_modified"
	FieldPublic          = "public"
	FieldRange           = "range"
	FieldRetryAfter      = "retry_after"
	FieldRTPInfo         = "rtp_info"
	FieldScale           = "scale"
	FieldSession         = "session"
	FieldServer          = "server"
	FieldSpeed           = "speed"
	FieldTransport       = "transport"
	FieldUnsupported     = "unsupported"
	FieldWWWAuthenticate = "www_authenticate"
)

// ContentTypeSDP is the only body content type decoded into a structured value.
const ContentTypeSDP = "application/sdp"

// RTSP Version
const RTSPVersion = "RTSP/1.0"

// Default Values
const (
	DefaultRTSPPort    = 554
	DefaultReadTimeout = 1 * time.Second
)
