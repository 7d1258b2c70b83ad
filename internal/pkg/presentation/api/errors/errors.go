package errors

import (
	"encoding/json"
	"net/http"
)

//ProblemDetails stores details about a certain problem according to RFC7807
//See https://tools.ietf.org/html/rfc7807
type ProblemDetails interface {
	ContentType() string
	MarshalJSON() ([]byte, error)
	WriteResponse(w http.ResponseWriter)
}

//ProblemDetailsImpl is an implementation of the ProblemDetails interface
type ProblemDetailsImpl struct {
	typ     string
	title   string
	detail  string
	code    int
	traceID string
}

const (
	//ProblemReportContentType as required by https://tools.ietf.org/html/rfc7807
	ProblemReportContentType string = "application/problem+json"
)

//BadRequestData reports that the request includes input data which does not meet the requirements of the operation
type BadRequestData struct {
	ProblemDetailsImpl
}

//NewBadRequestData creates and returns a new instance of a BadRequestData with the supplied problem detail
func NewBadRequestData(detail, traceID string) *BadRequestData {
	return &BadRequestData{
		ProblemDetailsImpl: ProblemDetailsImpl{
			typ:     "https://github.com/openzoo/zoo-registry/errors/BadRequestData",
			title:   "Bad Request Data",
			detail:  detail,
			code:    http.StatusBadRequest,
			traceID: traceID,
		},
	}
}

//ReportNewBadRequestData creates a BadRequestData instance and sends it to the supplied http.ResponseWriter
func ReportNewBadRequestData(w http.ResponseWriter, detail, traceID string) {
	brd := NewBadRequestData(detail, traceID)
	brd.WriteResponse(w)
}

//InternalError reports that there has been an error during the operation execution
type InternalError struct {
	ProblemDetailsImpl
}

//NewInternalError creates and returns a new instance of an InternalError with the supplied problem detail
func NewInternalError(detail, traceID string) *InternalError {
	return &InternalError{
		ProblemDetailsImpl: ProblemDetailsImpl{
			typ:     "https://github.com/openzoo/zoo-registry/errors/InternalError",
			title:   "Internal Error",
			detail:  detail,
			code:    http.StatusInternalServerError,
			traceID: traceID,
		},
	}
}

//ReportNewInternalError creates an InternalError instance and sends it to the supplied http.ResponseWriter
func ReportNewInternalError(w http.ResponseWriter, detail, traceID string) {
	ie := NewInternalError(detail, traceID)
	ie.WriteResponse(w)
}

//NotFound reports that the request failed with a not found error of some kind
type NotFound struct {
	ProblemDetailsImpl
}

//NewNotFound creates and returns a new instance of a NotFound with the supplied problem detail
func NewNotFound(detail, traceID string) *NotFound {
	return &NotFound{
		ProblemDetailsImpl: ProblemDetailsImpl{
			typ:     "https://github.com/openzoo/zoo-registry/errors/ResourceNotFound",
			title:   "Not Found",
			detail:  detail,
			code:    http.StatusNotFound,
			traceID: traceID,
		},
	}
}

//ReportNotFoundError creates a NotFound instance and sends it to the supplied http.ResponseWriter
func ReportNotFoundError(w http.ResponseWriter, detail, traceID string) {
	nf := NewNotFound(detail, traceID)
	nf.WriteResponse(w)
}

//ContentType returns the ContentType to be used when returning this problem
func (p *ProblemDetailsImpl) ContentType() string {
	return ProblemReportContentType
}

//MarshalJSON is called when a ProblemDetailsImpl instance should be serialized to JSON
func (p *ProblemDetailsImpl) MarshalJSON() ([]byte, error) {
	var traceID *string

	if p.traceID != "" {
		traceID = &p.traceID
	}

	j, err := json.Marshal(struct {
		Type    string  `json:"type"`
		Title   string  `json:"title"`
		Detail  string  `json:"detail"`
		TraceID *string `json:"traceID,omitempty"`
	}{
		Type:    p.typ,
		Title:   p.title,
		Detail:  p.detail,
		TraceID: traceID,
	})
	if err != nil {
		return nil, err
	}

	return j, nil
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
