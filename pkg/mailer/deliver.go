package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidJob marks a job that can never be delivered. Consumers drop it
// instead of requeueing.
var ErrInvalidJob = errors.New("invalid email job")

// RenderFunc renders a named template into subject, text and html.
type RenderFunc func(name string, data any) (string, string, string, error)

// Deliver renders job and hands the result to s. Render and shape problems
// wrap ErrInvalidJob; send failures are returned as is.
func Deliver(ctx context.Context, s Sender, render RenderFunc, job EmailJob) error {
	if strings.TrimSpace(job.To) == "" {
		return fmt.Errorf("%w: missing recipient", ErrInvalidJob)
	}
	if job.Template == "" && job.Subject == "" {
		return fmt.Errorf("%w: template or subject required", ErrInvalidJob)
	}
	subject, text, html, err := job.Rendered(render)
	if err != nil {
		return fmt.Errorf("%w: render %s: %v", ErrInvalidJob, job.Template, err)
	}
	return s.Send(ctx, job.To, subject, text, html)
}
