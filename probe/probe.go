// Copyright (c) BrowseKit Contributors. All rights reserved.
// Licensed under the MIT License.

// Package probe reports which browsers and launcher tools this system can
// actually use. Every browser check is a dry-run launch, so nothing is
// spawned.
package probe

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/browsekit/browse-core/browser"
	"github.com/browsekit/browse-core/env"
	"github.com/browsekit/browse-core/pathutil"
	"github.com/browsekit/browse-core/registry"
)

// maxConcurrentProbes limits parallel probe execution.
const maxConcurrentProbes = 4

// Status is the availability of a probed browser or tool.
type Status string

const (
	StatusAvailable Status = "available"
	StatusMissing   Status = "missing"
)

// Kind distinguishes what a result describes.
type Kind string

const (
	// KindBrowser is a launchable browser (built-in or registered).
	KindBrowser Kind = "browser"
	// KindTool is a helper command the default-browser chain may use.
	KindTool Kind = "tool"
)

// Result is the outcome of a single probe.
type Result struct {
	Name     string        `json:"name"`
	Kind     Kind          `json:"kind"`
	Status   Status        `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Report aggregates all probe results with environment facts.
type Report struct {
	Timestamp        time.Time `json:"timestamp"`
	Platform         string    `json:"platform"`
	Desktop          string    `json:"desktop"`
	GraphicalSession bool      `json:"graphicalSession"`
	WSL              bool      `json:"wsl"`
	Flatpak          bool      `json:"flatpak"`
	Results          []Result  `json:"results"`
	Summary          Summary   `json:"summary"`
}

// Summary provides overall availability statistics.
type Summary struct {
	Total     int    `json:"total"`
	Available int    `json:"available"`
	Missing   int    `json:"missing"`
	Overall   Status `json:"overall"`
}

// Config holds prober configuration.
type Config struct {
	// RateLimit is the max probes per second (0 = unlimited).
	RateLimit int
}

// Prober runs availability probes.
type Prober struct {
	limiter *rate.Limiter
}

// New creates a Prober from the given config.
func New(config Config) *Prober {
	p := &Prober{}
	if config.RateLimit > 0 {
		p.limiter = rate.NewLimiter(rate.Limit(config.RateLimit), config.RateLimit*2)
	}
	return p
}

// Run probes every built-in browser, every registered launcher, and the
// helper tools for the current platform.
func (p *Prober) Run(ctx context.Context) *Report {
	report := &Report{
		Timestamp:        time.Now(),
		Platform:         runtime.GOOS,
		Desktop:          string(env.GuessDesktop()),
		GraphicalSession: env.HasGraphicalSession(),
		WSL:              env.IsWSL(),
		Flatpak:          env.IsFlatpak(),
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		sem     = make(chan struct{}, maxConcurrentProbes)
		results []Result
	)

	probeOne := func(check func() Result) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if p.limiter != nil {
				if err := p.limiter.Wait(ctx); err != nil {
					return
				}
			}

			result := check()
			mu.Lock()
			results = append(results, result)
			mu.Unlock()
		}()
	}

	for _, b := range browser.ValidBrowsers() {
		b := b
		probeOne(func() Result { return probeBrowser(ctx, b) })
	}
	for _, name := range registry.Default().Names() {
		name := name
		probeOne(func() Result { return probeBrowser(ctx, browser.Browser(name)) })
	}
	for _, tool := range launcherTools() {
		tool := tool
		probeOne(func() Result { return probeTool(tool) })
	}

	wg.Wait()

	sort.Slice(results, func(i, j int) bool {
		if results[i].Kind != results[j].Kind {
			return results[i].Kind < results[j].Kind
		}
		return results[i].Name < results[j].Name
	})

	report.Results = results
	report.Summary = calculateSummary(results)
	return report
}

// probeBrowser dry-runs a launch to see whether the browser is usable.
func probeBrowser(ctx context.Context, b browser.Browser) Result {
	start := time.Now()
	result := Result{
		Name: string(b),
		Kind: KindBrowser,
	}

	opts := browser.NewOptions().WithDryRun(true)
	err := browser.OpenWith(ctx, b, "https://example.com", opts)
	result.Duration = time.Since(start)

	if err != nil {
		result.Status = StatusMissing
		result.Detail = err.Error()
	} else {
		result.Status = StatusAvailable
	}
	return result
}

// probeTool checks a helper command on PATH.
func probeTool(name string) Result {
	start := time.Now()
	result := Result{
		Name: name,
		Kind: KindTool,
	}

	if pathutil.Exists(name) {
		result.Status = StatusAvailable
	} else {
		result.Status = StatusMissing
	}
	result.Duration = time.Since(start)
	return result
}

// launcherTools returns the helper commands the default-browser chain may
// consult on this platform.
func launcherTools() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{"cmd"}
	case "darwin":
		return []string{"open"}
	default:
		return []string{
			"xdg-settings", "xdg-open", "gio", "gvfs-open",
			"kde-open", "exo-open", "x-www-browser",
		}
	}
}

// calculateSummary aggregates availability statistics. Overall availability
// means at least one browser (not merely a helper tool) can be launched.
func calculateSummary(results []Result) Summary {
	summary := Summary{
		Total:   len(results),
		Overall: StatusMissing,
	}

	for _, result := range results {
		switch result.Status {
		case StatusAvailable:
			summary.Available++
			if result.Kind == KindBrowser {
				summary.Overall = StatusAvailable
			}
		case StatusMissing:
			summary.Missing++
		}
	}
	return summary
}
