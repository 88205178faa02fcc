package main

import (
	"context"
	"testing"
)

func TestRunRequiresDatabaseURL(t *testing.T) {
	if err := run(context.Background(), ""); err == nil {
		t.Fatalf("expected error for empty database url")
	}
}
