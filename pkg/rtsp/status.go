package rtsp

// StatusText returns the standard reason phrase for a status code
func StatusText(statusCode int) string {
	switch statusCode {
	case StatusContinue:
		return "Continue"
	case StatusOK:
		return "OK"
	case StatusCreated:
		return "Created"
	case StatusLowOnStorageSpace:
		return "Low on Storage Space"
	case StatusMultipleChoices:
		return "Multiple Choices"
	case StatusMovedPermanently:
		return "Moved Permanently"
	case StatusMovedTemporarily:
		return "Moved Temporarily"
	case StatusSeeOther:
		return "See Other"
	case StatusNotModified:
		return "Not Modified"
	case StatusUseProxy:
		return "Use Proxy"
	case StatusBadRequest:
		return "Bad Request"
	case StatusUnauthorized:
		return "Unauthorized"
	case StatusPaymentRequired:
		return "Payment Required"
	case StatusForbidden:
		return "Forbidden"
	case StatusNotFound:
		return "Not Found"
	case StatusMethodNotAllowed:
		return "Method Not Allowed"
	case StatusNotAcceptable:
		return "Not Acceptable"
	case StatusProxyAuthRequired:
		return "Proxy Authentication Required"
	case StatusRequestTimeout:
		return "Request Time-out"
	case StatusGone:
		return "Gone"
	case StatusLengthRequired:
		return "Length Required"
	case StatusPreconditionFailed:
		return "Precondition Failed"
	case StatusRequestEntityTooLarge:
		return "Request Entity Too Large"
	case StatusRequestURITooLarge:
		return "Request-URI Too Large"
	case StatusUnsupportedMediaType:
		return "Unsupported Media Type"
	case StatusParameterNotUnderstood:
		return "Parameter Not Understood"
	case StatusConferenceNotFound:
		return "Conference Not Found"
	case StatusNotEnoughBandwidth:
		return "Not Enough Bandwidth"
	case StatusSessionNotFound:
		return "Session Not Found"
	case StatusMethodNotValidInThisState:
		return "Method Not Valid in This State"
	case StatusHeaderFieldNotValidForResource:
		return "Header Field Not Valid for Resource"
	case StatusInvalidRange:
		return "Invalid Range"
	case StatusParameterIsReadOnly:
		return "Parameter Is Read-Only"
	case StatusAggregateOperationNotAllowed:
		return "Aggregate operation not allowed"
	case StatusOnlyAggregateOperationAllowed:
		return "Only aggregate operation allowed"
	case StatusUnsupportedTransport:
		return "Unsupported transport"
	case StatusDestinationUnreachable:
		return "Destination unreachable"
	case StatusInternalServerError:
		return "Internal Server Error"
	case StatusNotImplemented:
		return "Not Implemented"
	case StatusBadGateway:
		return "Bad Gateway"
	case StatusServiceUnavailable:
		return "Service Unavailable"
	case StatusGatewayTimeout:
		return "Gateway Time-out"
	case StatusRTSPVersionNotSupported:
		return "RTSP Version not supported"
	case StatusOptionNotSupported:
		return "Option not supported"
	default:
		return "Unknown"
	}
}
