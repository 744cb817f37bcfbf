package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sleuren/sleurencli/internal/cli/output"
	"github.com/sleuren/sleurencli/internal/core/domain"
	"github.com/sleuren/sleurencli/internal/core/resource"
	"github.com/sleuren/sleurencli/internal/telemetry/logger"
)

// DefaultProtocol is prepended to site URLs given without a scheme.
const DefaultProtocol = "https"

// SiteInput describes a site to add.
type SiteInput struct {
	URL      string
	Name     string
	Protocol string
	// Force skips the duplicate check.
	Force bool
}

// NormalizedURL returns the URL with a scheme.
func (in SiteInput) NormalizedURL() string {
	u := strings.TrimSpace(in.URL)
	if u == "" || strings.Contains(u, "://") {
		return u
	}
	protocol := in.Protocol
	if protocol == "" {
		protocol = DefaultProtocol
	}
	return protocol + "://" + u
}

// AddFailure is one URL of a bulk add that could not be added.
type AddFailure struct {
	URL string
	Err error
}

// AddSummary reports the outcome of a bulk add.
type AddSummary struct {
	Added    int
	Skipped  int
	Failures []AddFailure
}

// SiteService manages monitored sites.
type SiteService struct {
	pipeline *resource.Pipeline
}

// NewSiteService creates a site service over transport.
func NewSiteService(transport resource.Transport, readonly bool) *SiteService {
	return &SiteService{
		pipeline: resource.New(SiteSchema, transport, resource.WithReadonly(readonly)),
	}
}

// List prints the sites selected by q.
func (s *SiteService) List(ctx context.Context, w io.Writer, q resource.Query, opts resource.RenderOptions) error {
	return s.pipeline.List(ctx, w, q, opts)
}

// Add creates a site. It returns false without error when the URL is
// already monitored and Force is not set.
func (s *SiteService) Add(ctx context.Context, in SiteInput) (bool, error) {
	if err := s.pipeline.Mutator().Guard("create"); err != nil {
		return false, err
	}

	u := in.NormalizedURL()
	if u == "" {
		return false, domain.ErrNoTarget.WithDetails("--url is required")
	}

	if !in.Force {
		exists, err := s.exists(ctx, in)
		if err != nil {
			return false, err
		}
		if exists {
			logger.L(ctx).Warn("site already monitored, skipping", "url", u)
			return false, nil
		}
	}

	body := map[string]string{"url": u}
	if in.Name != "" {
		body["name"] = in.Name
	}
	if _, err := s.pipeline.Mutator().Add(ctx, body); err != nil {
		return false, err
	}
	return true, nil
}

// exists reports whether a monitored site matches the URL of in, either
// as typed or normalized. A trailing slash is ignored, and an input typed
// without a scheme matches a site under any scheme.
func (s *SiteService) exists(ctx context.Context, in SiteInput) (bool, error) {
	view, err := s.pipeline.Select(ctx, resource.Query{})
	if err != nil {
		return false, err
	}

	raw := strings.TrimSpace(in.URL)
	norm := trimURL(in.NormalizedURL())
	schemeless := !strings.Contains(raw, "://")
	for _, r := range view.Records {
		site := trimURL(r.Text("url"))
		if strings.EqualFold(site, norm) || strings.EqualFold(site, trimURL(raw)) {
			return true, nil
		}
		if schemeless && strings.EqualFold(stripScheme(site), trimURL(raw)) {
			return true, nil
		}
	}
	return false, nil
}

func trimURL(u string) string {
	return strings.TrimRight(strings.TrimSpace(u), "/")
}

func stripScheme(u string) string {
	if _, rest, ok := strings.Cut(u, "://"); ok {
		return rest
	}
	return u
}

// AddFile adds one site per line of r. Blank lines are skipped, and a
// URL repeated in the file is added once. Progress is drawn on progress
// when it is not nil. Read-only mode and missing credentials abort the
// whole run; other failures are collected in the summary.
func (s *SiteService) AddFile(ctx context.Context, r io.Reader, protocol string, progress io.Writer) (AddSummary, error) {
	var urls []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			urls = append(urls, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return AddSummary{}, fmt.Errorf("read site list: %w", err)
	}

	var bar *output.ProgressBar
	if progress != nil {
		bar = output.NewProgressBar(progress, "Adding sites", len(urls))
	}

	var summary AddSummary
	seen := make(map[string]bool)
	for _, raw := range urls {
		in := SiteInput{URL: raw, Protocol: protocol}
		u := in.NormalizedURL()

		if seen[u] {
			summary.Skipped++
		} else {
			seen[u] = true
			added, err := s.Add(ctx, in)
			switch {
			case errors.Is(err, domain.ErrReadOnly), errors.Is(err, domain.ErrAuthMissing):
				return summary, err
			case err != nil:
				summary.Failures = append(summary.Failures, AddFailure{URL: u, Err: err})
			case added:
				summary.Added++
			default:
				summary.Skipped++
			}
		}

		if bar != nil {
			bar.Increment(1)
		}
	}

	if bar != nil {
		bar.Finish()
	}
	return summary, nil
}

// RemoveInstructions prints how to remove the selected sites. Sites are
// removed from the dashboard, so no request is made.
func (s *SiteService) RemoveInstructions(w io.Writer, c resource.Criteria) {
	var sel []string
	for _, kv := range []struct{ k, v string }{
		{"id", c.ID},
		{"url", c.URL},
		{"name", c.Name},
		{"location", c.Location},
		{"pattern", c.Pattern},
	} {
		if kv.v != "" {
			sel = append(sel, kv.k+"="+kv.v)
		}
	}

	if len(sel) > 0 {
		fmt.Fprintln(w, "Selected sites:", strings.Join(sel, ", "))
	}
	fmt.Fprintln(w, "Sites can only be removed from the dashboard.")
	fmt.Fprintln(w, "Please login at https://sleuren.com/dashboard, open each site you would like to remove and delete it there.")
}
