package endpoint

import (
	"net/http/httptest"
	"strings"
	"testing"
)

type sample struct {
	Name string `json:"name"`
}

func TestParseRequestBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"ana"}`))

	got, err := ParseRequestBody[sample](req)
	if err != nil || got.Name != "ana" {
		t.Fatalf("unexpected result %+v %v", got, err)
	}

	empty, err := ParseRequestBody[sample](httptest.NewRequest("POST", "/", strings.NewReader("")))
	if err != nil || empty.Name != "" {
		t.Fatalf("empty body must decode to zero value")
	}

	if _, err := ParseRequestBody[sample](httptest.NewRequest("POST", "/", strings.NewReader("{nope"))); err == nil {
		t.Fatalf("expected malformed json error")
	}
}
