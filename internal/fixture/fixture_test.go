package fixture

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fxsml/rx"
)

func TestRequests(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	reqs := Requests(now)

	if len(reqs) != 2 {
		t.Fatalf("Expected 2 requests, got %d", len(reqs))
	}
	if reqs[0].Method != MethodPost || reqs[0].Body == nil || !reqs[0].Body.CreatedAt.Equal(now) {
		t.Errorf("Expected POST with user body created at %v, got %+v", now, reqs[0])
	}
	if reqs[1].Method != MethodGet || reqs[1].Params.ID != "3f5h67s4s" || reqs[1].Body != nil {
		t.Errorf("Expected GET for id 3f5h67s4s without body, got %+v", reqs[1])
	}
}

func TestRequest_String(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want string
	}{
		{
			name: "without id",
			req:  Request{Method: MethodPost, Host: "service.example", Path: "user"},
			want: "POST service.example/user",
		},
		{
			name: "with id",
			req:  Request{Method: MethodGet, Host: "service.example", Path: "user", Params: Params{ID: "42"}},
			want: "GET service.example/user/42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.req.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadRequests(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		src := strings.NewReader(`
requests:
  - method: POST
    host: service.example
    path: user
    body:
      name: Jane
      age: 31
      roles: [user]
      createdAt: 2024-01-02T03:04:05Z
  - method: GET
    host: service.example
    path: user
    params:
      id: abc
`)
		reqs, err := LoadRequests(src)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(reqs) != 2 {
			t.Fatalf("Expected 2 requests, got %d", len(reqs))
		}
		if reqs[0].Body == nil || reqs[0].Body.Name != "Jane" || reqs[0].Body.Age != 31 {
			t.Errorf("Expected body for Jane, got %+v", reqs[0].Body)
		}
		if want := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC); !reqs[0].Body.CreatedAt.Equal(want) {
			t.Errorf("Expected createdAt %v, got %v", want, reqs[0].Body.CreatedAt)
		}
		if reqs[1].Params.ID != "abc" {
			t.Errorf("Expected id abc, got %q", reqs[1].Params.ID)
		}
	})

	t.Run("empty", func(t *testing.T) {
		reqs, err := LoadRequests(strings.NewReader(""))
		if err != nil || len(reqs) != 0 {
			t.Errorf("Expected no requests and no error, got %v, %v", reqs, err)
		}
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := LoadRequests(strings.NewReader("requests:\n  - method: PATCH\n"))
		if !errors.Is(err, ErrUnknownMethod) {
			t.Errorf("Expected ErrUnknownMethod, got %v", err)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := LoadRequests(strings.NewReader("requests: ["))
		if err == nil {
			t.Error("Expected decode error")
		}
	})
}

func TestHandlers(t *testing.T) {
	var out bytes.Buffer
	reqs := Requests(time.Now())

	sub := rx.From(reqs, rx.Config{DisableLogging: true}).Subscribe(Handlers(&out))
	sub.Unsubscribe()

	want := "POST service.example/user -> 200\n" +
		"GET service.example/user/3f5h67s4s -> 200\n" +
		"complete\n"
	if got := out.String(); got != want {
		t.Errorf("Expected output:\n%s\ngot:\n%s", want, got)
	}
}

func TestHandlers_Error(t *testing.T) {
	var out bytes.Buffer

	rx.Throw[Request](errors.New("upstream down"), rx.Config{DisableLogging: true}).Subscribe(Handlers(&out))

	if got, want := out.String(), "error: upstream down -> 500\n"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestHandleRequest(t *testing.T) {
	if got := HandleRequest(Request{}); got.Status != StatusOK {
		t.Errorf("Expected %d, got %d", StatusOK, got.Status)
	}
	if got := HandleError(errors.New("x")); got.Status != StatusInternalServerError {
		t.Errorf("Expected %d, got %d", StatusInternalServerError, got.Status)
	}
}
