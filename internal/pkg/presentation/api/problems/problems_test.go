package problems

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestProblemReportIsWrittenAsProblemJSON(t *testing.T) {
	is := is.New(t)

	w := httptest.NewRecorder()
	ReportServerBusy(w, "Too many requests", "urn:trace:abc")

	is.Equal(w.Code, http.StatusServiceUnavailable)
	is.Equal(w.Header().Get("Content-Type"), ProblemReportContentType)

	body := w.Body.String()
	is.True(strings.Contains(body, `"type": "https://github.com/diwise/pubchem/problems/ServerBusy"`))
	is.True(strings.Contains(body, `"status": 503`))
	is.True(strings.Contains(body, `"instance": "urn:trace:abc"`))
}

func TestProblemWithoutInstanceGetsAUniqueOne(t *testing.T) {
	is := is.New(t)

	first := NewNotFound("no such compound", "")
	second := NewNotFound("no such compound", "")

	is.True(strings.HasPrefix(first.Instance(), "urn:uuid:"))
	is.True(first.Instance() != second.Instance())
	is.Equal(first.ResponseCode(), http.StatusNotFound)
}
