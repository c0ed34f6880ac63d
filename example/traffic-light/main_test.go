package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

func TestTrafficLight(t *testing.T) {
	var buf bytes.Buffer
	if err := run(context.Background(), &buf, zap.NewNop()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	expected := `never go and stop at once  true
stop is always reachable   true
stop always comes again    false
red is followed by green   true
caution can last forever   false
`
	if diff := cmp.Diff(expected, buf.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTrafficLight_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := run(ctx, &bytes.Buffer{}, zap.NewNop()); err == nil {
		t.Fatal("expected an error from a canceled context")
	}
}
