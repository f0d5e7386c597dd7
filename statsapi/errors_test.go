package statsapi

import (
	"strings"
	"testing"
)

func TestStatusErrorMessage(t *testing.T) {
	err := &StatusError{URL: "http://example.com/api/v1/schedule", StatusCode: 502}
	if !strings.Contains(err.Error(), "502") || !strings.Contains(err.Error(), "/api/v1/schedule") {
		t.Fatalf("expected status and url in message, got %q", err.Error())
	}
}

func TestShapeErrorMessage(t *testing.T) {
	err := &ShapeError{URL: "http://example.com/api/v1/sports", Key: "sports"}
	if !strings.Contains(err.Error(), `"sports"`) || !strings.Contains(err.Error(), "/api/v1/sports") {
		t.Fatalf("expected key and url in message, got %q", err.Error())
	}
}
