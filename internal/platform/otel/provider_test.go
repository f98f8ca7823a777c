package otel_test

import (
	"context"
	"testing"

	"github.com/omkumar23112003/course-selling-app/internal/platform/otel"
)

func TestSetupShutdownIsClean(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		enabled  string
	}{
		{name: "no endpoint", endpoint: "", enabled: ""},
		{name: "explicitly disabled", endpoint: "http://localhost:4318", enabled: "false"},
		// Non-routable address so nothing is exported.
		{name: "endpoint set", endpoint: "http://192.0.2.1:4318", enabled: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("COURSEMARKET_OTEL_ENDPOINT", tc.endpoint)
			t.Setenv("COURSEMARKET_OTEL_ENABLED", tc.enabled)

			shutdown, err := otel.Setup(context.Background(), "coursemarket-test")
			if err != nil {
				t.Fatalf("setup: %v", err)
			}
			if err := shutdown(context.Background()); err != nil {
				t.Fatalf("shutdown: %v", err)
			}
		})
	}
}

func TestSetupNoopShutdownIgnoresCancelledContext(t *testing.T) {
	t.Setenv("COURSEMARKET_OTEL_ENDPOINT", "")
	t.Setenv("COURSEMARKET_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "noop-test")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}
