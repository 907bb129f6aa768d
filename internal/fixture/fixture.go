// Package fixture holds mock request data and demo handlers used to exercise
// rx observables.
package fixture

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Method is an HTTP method label.
type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

// Valid reports whether m is a known method.
func (m Method) Valid() bool {
	return m == MethodGet || m == MethodPost
}

// Status is an HTTP status code.
type Status int

const (
	StatusOK                  Status = 200
	StatusInternalServerError Status = 500
)

// Response is what a demo handler returns for a request or an error.
type Response struct {
	Status Status `yaml:"status" json:"status"`
}

// User is the body of a user request.
type User struct {
	Name      string    `yaml:"name" json:"name"`
	Age       int       `yaml:"age" json:"age"`
	Roles     []string  `yaml:"roles" json:"roles"`
	CreatedAt time.Time `yaml:"createdAt" json:"createdAt"`
	IsDeleted bool      `yaml:"isDeleted" json:"isDeleted"`
}

// Params are the path parameters of a request.
type Params struct {
	ID string `yaml:"id,omitempty" json:"id,omitempty"`
}

// Request is a mock HTTP request.
type Request struct {
	Method Method `yaml:"method" json:"method"`
	Host   string `yaml:"host" json:"host"`
	Path   string `yaml:"path" json:"path"`
	Body   *User  `yaml:"body,omitempty" json:"body,omitempty"`
	Params Params `yaml:"params" json:"params"`
}

func (r Request) String() string {
	s := string(r.Method) + " " + r.Host + "/" + r.Path
	if r.Params.ID != "" {
		s += "/" + r.Params.ID
	}
	return s
}

// ErrUnknownMethod is returned by LoadRequests for a request whose method is
// neither GET nor POST.
var ErrUnknownMethod = errors.New("fixture: unknown method")

// Requests returns the built-in mock set: a POST creating a user followed by a
// GET for a user id. now stamps the user's creation time.
func Requests(now time.Time) []Request {
	user := &User{
		Name:      "User Name",
		Age:       26,
		Roles:     []string{"user", "admin"},
		CreatedAt: now,
		IsDeleted: false,
	}
	return []Request{
		{
			Method: MethodPost,
			Host:   "service.example",
			Path:   "user",
			Body:   user,
		},
		{
			Method: MethodGet,
			Host:   "service.example",
			Path:   "user",
			Params: Params{ID: "3f5h67s4s"},
		},
	}
}

type document struct {
	Requests []Request `yaml:"requests"`
}

// LoadRequests decodes a YAML document of the form
//
//	requests:
//	  - method: GET
//	    host: service.example
//	    path: user
//	    params:
//	      id: 3f5h67s4s
func LoadRequests(src io.Reader) ([]Request, error) {
	var doc document
	if err := yaml.NewDecoder(src).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("fixture: decode requests: %w", err)
	}
	for i, r := range doc.Requests {
		if !r.Method.Valid() {
			return nil, fmt.Errorf("%w: request %d: %q", ErrUnknownMethod, i, r.Method)
		}
	}
	return doc.Requests, nil
}
