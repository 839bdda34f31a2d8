package client

import (
	"net/http"
	"testing"
)

func TestBodyMap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body Body
		ok   bool
	}{
		{"json object", Body{Class: BodyJSON, JSON: map[string]any{"id": 1.0}}, true},
		{"json array", Body{Class: BodyJSON, JSON: []any{1.0}}, false},
		{"json scalar", Body{Class: BodyJSON, JSON: "hello"}, false},
		{"text", Body{Class: BodyText, Text: "hello"}, false},
		{"bytes", Body{Class: BodyBytes, Bytes: []byte{1}}, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, ok := tt.body.Map()
			if ok != tt.ok {
				t.Errorf("expected ok=%v, got %v", tt.ok, ok)
			}
		})
	}
}

func TestBodyList(t *testing.T) {
	t.Parallel()

	l, ok := Body{Class: BodyJSON, JSON: []any{"a", "b"}}.List()
	if !ok {
		t.Fatal("expected list body")
	}
	if len(l) != 2 {
		t.Errorf("expected 2 elements, got %d", len(l))
	}

	if _, ok := (Body{Class: BodyJSON, JSON: map[string]any{}}).List(); ok {
		t.Error("object body must not report as list")
	}
}

func TestResponseIsError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status  int
		isError bool
	}{
		{http.StatusOK, false},
		{http.StatusCreated, false},
		{http.StatusNoContent, false},
		{http.StatusBadRequest, true},
		{http.StatusUnauthorized, true},
		{http.StatusNotFound, true},
		{http.StatusInternalServerError, true},
	}

	for _, tt := range tests {
		tt := tt
		r := &Response{StatusCode: tt.status}
		if r.IsError() != tt.isError {
			t.Errorf("status %d: expected IsError=%v", tt.status, tt.isError)
		}
	}
}
