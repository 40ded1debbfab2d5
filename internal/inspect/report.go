package inspect

import (
	"errors"
	"strings"
	"unicode/utf8"

	"rtspresp/pkg/rtsp"
)

// Report is the YAML document written for every inspected response
type Report struct {
	Name          string         `yaml:"name"`
	OK            bool           `yaml:"ok"`
	Error         string         `yaml:"error,omitempty"`
	Status        *StatusReport  `yaml:"status,omitempty"`
	Fields        map[string]any `yaml:"fields,omitempty"`
	Body          string         `yaml:"body,omitempty"`
	BodyTruncated bool           `yaml:"body_truncated,omitempty"`
	SDP           *SDPReport     `yaml:"sdp,omitempty"`
}

type StatusReport struct {
	Version string `yaml:"version,omitempty"`
	Code    int    `yaml:"code"`
	Message string `yaml:"message"`
	Reason  string `yaml:"reason"`
}

type SDPReport struct {
	SessionName string        `yaml:"session_name"`
	Origin      string        `yaml:"origin"`
	Control     string        `yaml:"control,omitempty"`
	Media       []MediaReport `yaml:"media,omitempty"`
}

type MediaReport struct {
	Type     string   `yaml:"type"`
	Port     int      `yaml:"port"`
	Protocol string   `yaml:"protocol"`
	Formats  []string `yaml:"formats"`
	Control  string   `yaml:"control,omitempty"`
}

// NewReport summarizes the outcome of parsing one input. Bodies longer than
// maxBody bytes are cut; 0 disables the limit.
func NewReport(name string, resp *rtsp.Response, err error, maxBody int) Report {
	report := Report{Name: name}

	if err != nil {
		report.Error = err.Error()
		var statusErr *rtsp.StatusError
		if errors.As(err, &statusErr) {
			report.Status = &StatusReport{
				Code:    statusErr.Code,
				Message: statusErr.Message,
				Reason:  rtsp.StatusText(statusErr.Code),
			}
		}
		return report
	}

	report.OK = true
	report.Status = &StatusReport{
		Version: resp.Version(),
		Code:    resp.Code(),
		Message: resp.Message(),
		Reason:  rtsp.StatusText(resp.Code()),
	}

	fields := resp.Fields()
	if len(fields) > 0 {
		report.Fields = make(map[string]any, len(fields))
		for name, v := range fields {
			report.Fields[name] = v.Any()
		}
	}

	body := resp.Body()
	report.Body = body.Text
	if maxBody > 0 && len(report.Body) > maxBody {
		report.Body = truncateUTF8(report.Body, maxBody)
		report.BodyTruncated = true
	}

	if body.IsSDP() {
		report.SDP = newSDPReport(body)
	}

	return report
}

// truncateUTF8 cuts s to at most n bytes without splitting a character
func truncateUTF8(s string, n int) string {
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func newSDPReport(body rtsp.Body) *SDPReport {
	desc := body.SDP
	report := &SDPReport{
		SessionName: string(desc.SessionName),
		Origin:      desc.Origin.UnicastAddress,
	}
	if control, ok := desc.Attribute("control"); ok {
		report.Control = control
	}

	for _, md := range desc.MediaDescriptions {
		media := MediaReport{
			Type:     md.MediaName.Media,
			Port:     md.MediaName.Port.Value,
			Protocol: strings.Join(md.MediaName.Protos, "/"),
			Formats:  md.MediaName.Formats,
		}
		if control, ok := md.Attribute("control"); ok {
			media.Control = control
		}
		report.Media = append(report.Media, media)
	}

	return report
}
