package problems

import (
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

//ProblemDetails stores details about a certain problem according to RFC7807
//See https://tools.ietf.org/html/rfc7807
type ProblemDetails interface {
	ContentType() string
	Type() string
	Title() string
	Detail() string
	Instance() string
	MarshalJSON() ([]byte, error)
	WriteResponse(w http.ResponseWriter)
}

//ProblemDetailsImpl is an implementation of the ProblemDetails interface
type ProblemDetailsImpl struct {
	typ      string
	title    string
	detail   string
	instance string
	code     int
}

const (
	//ProblemReportContentType as required by https://tools.ietf.org/html/rfc7807
	ProblemReportContentType string = "application/problem+json"

	problemTypeBase string = "https://github.com/diwise/pubchem/problems/"
)

func newProblem(name, title, detail, instance string, code int) ProblemDetailsImpl {
	if instance == "" {
		instance = "urn:uuid:" + uuid.NewString()
	}

	return ProblemDetailsImpl{
		typ:      problemTypeBase + name,
		title:    title,
		detail:   detail,
		instance: instance,
		code:     code,
	}
}

//InvalidRequest reports that the request is syntactically invalid, such as an unknown
//namespace or property name
type InvalidRequest struct {
	ProblemDetailsImpl
}

func NewInvalidRequest(detail, instance string) *InvalidRequest {
	return &InvalidRequest{newProblem("InvalidRequest", "Invalid Request", detail, instance, http.StatusBadRequest)}
}

//ReportInvalidRequest creates an InvalidRequest instance and sends it to the supplied http.ResponseWriter
func ReportInvalidRequest(w http.ResponseWriter, detail, instance string) {
	NewInvalidRequest(detail, instance).WriteResponse(w)
}

//BadRequest reports that PubChem rejected the request
type BadRequest struct {
	ProblemDetailsImpl
}

func NewBadRequest(detail, instance string) *BadRequest {
	return &BadRequest{newProblem("BadRequest", "Bad Request", detail, instance, http.StatusBadRequest)}
}

func ReportBadRequest(w http.ResponseWriter, detail, instance string) {
	NewBadRequest(detail, instance).WriteResponse(w)
}

//NotFound reports that no compound, or no data, matched the request
type NotFound struct {
	ProblemDetailsImpl
}

func NewNotFound(detail, instance string) *NotFound {
	return &NotFound{newProblem("NotFound", "Not Found", detail, instance, http.StatusNotFound)}
}

//ReportNotFound creates a NotFound instance and sends it to the supplied http.ResponseWriter
func ReportNotFound(w http.ResponseWriter, detail, instance string) {
	NewNotFound(detail, instance).WriteResponse(w)
}

type NotAllowed struct {
	ProblemDetailsImpl
}

func NewNotAllowed(detail, instance string) *NotAllowed {
	return &NotAllowed{newProblem("NotAllowed", "Not Allowed", detail, instance, http.StatusMethodNotAllowed)}
}

func ReportNotAllowed(w http.ResponseWriter, detail, instance string) {
	NewNotAllowed(detail, instance).WriteResponse(w)
}

//Timeout reports that PubChem gave up on the request
type Timeout struct {
	ProblemDetailsImpl
}

func NewTimeout(detail, instance string) *Timeout {
	return &Timeout{newProblem("Timeout", "Gateway Timeout", detail, instance, http.StatusGatewayTimeout)}
}

func ReportTimeout(w http.ResponseWriter, detail, instance string) {
	NewTimeout(detail, instance).WriteResponse(w)
}

//ServerBusy reports that PubChem is throttling requests
type ServerBusy struct {
	ProblemDetailsImpl
}

func NewServerBusy(detail, instance string) *ServerBusy {
	return &ServerBusy{newProblem("ServerBusy", "Server Busy", detail, instance, http.StatusServiceUnavailable)}
}

func ReportServerBusy(w http.ResponseWriter, detail, instance string) {
	NewServerBusy(detail, instance).WriteResponse(w)
}

type Unimplemented struct {
	ProblemDetailsImpl
}

func NewUnimplemented(detail, instance string) *Unimplemented {
	return &Unimplemented{newProblem("Unimplemented", "Not Implemented", detail, instance, http.StatusNotImplemented)}
}

func ReportUnimplemented(w http.ResponseWriter, detail, instance string) {
	NewUnimplemented(detail, instance).WriteResponse(w)
}

//BadGateway reports that the request to PubChem failed, or that its response could not be used
type BadGateway struct {
	ProblemDetailsImpl
}

func NewBadGateway(detail, instance string) *BadGateway {
	return &BadGateway{newProblem("BadGateway", "Bad Gateway", detail, instance, http.StatusBadGateway)}
}

//ReportBadGateway creates a BadGateway instance and sends it to the supplied http.ResponseWriter
func ReportBadGateway(w http.ResponseWriter, detail, instance string) {
	NewBadGateway(detail, instance).WriteResponse(w)
}

//ContentType returns the ContentType to be used when returning this problem
func (p *ProblemDetailsImpl) ContentType() string {
	return ProblemReportContentType
}

func (p *ProblemDetailsImpl) Type() string     { return p.typ }
func (p *ProblemDetailsImpl) Title() string    { return p.title }
func (p *ProblemDetailsImpl) Detail() string   { return p.detail }
func (p *ProblemDetailsImpl) Instance() string { return p.instance }

//MarshalJSON is called when a ProblemDetailsImpl instance should be serialized to JSON
func (p *ProblemDetailsImpl) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string `json:"type"`
		Title    string `json:"title"`
		Status   int    `json:"status"`
		Detail   string `json:"detail"`
		Instance string `json:"instance,omitempty"`
	}{
		Type:     p.typ,
		Title:    p.title,
		Status:   p.ResponseCode(),
		Detail:   p.detail,
		Instance: p.instance,
	})
}

//ResponseCode returns the HTTP response code to be used when returning a specific problem
func (p *ProblemDetailsImpl) ResponseCode() int {

	if p.code != 0 {
		return p.code
	}

	return http.StatusBadRequest
}

//WriteResponse writes the contents of this instance to a http.ResponseWriter
func (p *ProblemDetailsImpl) WriteResponse(w http.ResponseWriter) {
	w.Header().Add("Content-Type", p.ContentType())
	w.Header().Add("Content-Language", "en")
	w.WriteHeader(p.ResponseCode())

	pdbytes, err := json.MarshalIndent(p, "", "  ")
	if err == nil {
		w.Write(pdbytes)
	}
}
