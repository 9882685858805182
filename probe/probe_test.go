// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

package probe

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/browsekit/browse-core/browser"
	"github.com/browsekit/browse-core/registry"
)

func TestCalculateSummary(t *testing.T) {
	tests := []struct {
		name    string
		results []Result
		want    Summary
	}{
		{
			name:    "empty",
			results: nil,
			want:    Summary{Overall: StatusMissing},
		},
		{
			name: "browser available",
			results: []Result{
				{Name: "firefox", Kind: KindBrowser, Status: StatusAvailable},
				{Name: "xdg-open", Kind: KindTool, Status: StatusMissing},
			},
			want: Summary{Total: 2, Available: 1, Missing: 1, Overall: StatusAvailable},
		},
		{
			name: "only a tool available",
			results: []Result{
				{Name: "firefox", Kind: KindBrowser, Status: StatusMissing},
				{Name: "xdg-open", Kind: KindTool, Status: StatusAvailable},
			},
			want: Summary{Total: 2, Available: 1, Missing: 1, Overall: StatusMissing},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calculateSummary(tt.results))
		})
	}
}

func TestRunPopulatesReport(t *testing.T) {
	report := New(Config{}).Run(context.Background())

	require.NotNil(t, report)
	assert.False(t, report.Timestamp.IsZero())
	assert.NotEmpty(t, report.Platform)
	assert.NotEmpty(t, report.Desktop)
	assert.Equal(t, len(report.Results), report.Summary.Total)
	assert.Equal(t, report.Summary.Total, report.Summary.Available+report.Summary.Missing)

	// Every built-in browser must be accounted for.
	names := make(map[string]bool)
	for _, result := range report.Results {
		names[result.Name] = true
	}
	for _, b := range browser.ValidBrowsers() {
		assert.True(t, names[string(b)], "missing probe result for %s", b)
	}
}

func TestRunIncludesRegisteredLaunchers(t *testing.T) {
	require.NoError(t, registry.Register(registry.Entry{
		Name:    "probe-test-browser",
		Command: "/nonexistent/probe-test-browser %s",
	}))
	defer registry.Default().Unregister("probe-test-browser")

	report := New(Config{}).Run(context.Background())

	var found *Result
	for i := range report.Results {
		if report.Results[i].Name == "probe-test-browser" {
			found = &report.Results[i]
			break
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, KindBrowser, found.Kind)
	assert.Equal(t, StatusMissing, found.Status)
	assert.NotEmpty(t, found.Detail)
}

func TestRunWithRateLimit(t *testing.T) {
	start := time.Now()
	report := New(Config{RateLimit: 1000}).Run(context.Background())

	assert.NotZero(t, report.Summary.Total)
	// Generous bound: the limiter must not stall the run.
	assert.Less(t, time.Since(start), time.Minute)
}
