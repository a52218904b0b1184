// Package apitest provides a recording backend for exercising resource calls.
package apitest

import (
	"assetconsole/apiclient"
	"assetconsole/models"
	sessionprovider "assetconsole/providers/sessionProvider"
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"
)

// Request is one call seen by the Server.
type Request struct {
	Method        string
	Path          string
	Query         url.Values
	Authorization string
	ContentType   string
	Body          string
	FormFields    map[string]string
	FormFiles     map[string]string
}

// Server answers every call with a fixed status and body and records what it got.
type Server struct {
	*httptest.Server
	Store *sessionprovider.MemoryStore

	mu       sync.Mutex
	status   int
	body     string
	requests []Request
}

func NewServer(t *testing.T, status int, body string) *Server {
	t.Helper()
	s := &Server{status: status, body: body, Store: sessionprovider.NewMemoryStore()}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// Client returns an apiclient.Client bound to the server and its memory store.
func (s *Server) Client() *apiclient.Client {
	return apiclient.NewClient(s.URL, s.Store, zap.NewNop())
}

// SignIn stores a token so calls carry an Authorization header.
func (s *Server) SignIn(token string, user *models.User) {
	_ = s.Store.Save(context.Background(), models.Session{Token: token, User: user})
}

func (s *Server) Respond(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status, s.body = status, body
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Last returns the most recent request, or the zero Request.
func (s *Server) Last() Request {
	reqs := s.Requests()
	if len(reqs) == 0 {
		return Request{}
	}
	return reqs[len(reqs)-1]
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	rec := Request{
		Method:        r.Method,
		Path:          r.URL.Path,
		Query:         r.URL.Query(),
		Authorization: r.Header.Get("Authorization"),
		ContentType:   r.Header.Get("Content-Type"),
	}

	mediaType, params, _ := mime.ParseMediaType(rec.ContentType)
	if strings.HasPrefix(mediaType, "multipart/") {
		rec.FormFields, rec.FormFiles = readForm(r.Body, params["boundary"])
	} else {
		raw, _ := io.ReadAll(r.Body)
		rec.Body = string(raw)
	}

	s.mu.Lock()
	s.requests = append(s.requests, rec)
	status, body := s.status, s.body
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

func readForm(body io.Reader, boundary string) (map[string]string, map[string]string) {
	fields := map[string]string{}
	files := map[string]string{}
	mr := multipart.NewReader(body, boundary)
	for {
		part, err := mr.NextPart()
		if err != nil {
			break
		}
		data, _ := io.ReadAll(part)
		if part.FileName() != "" {
			files[part.FormName()] = string(data)
		} else {
			fields[part.FormName()] = string(data)
		}
	}
	return fields, files
}
