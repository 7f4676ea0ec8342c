package llm

import (
	"context"
	"log"
	"time"

	"github.com/cindrella-bot/cindrella/pkg/model"
)

const perModelTimeout = 20 * time.Second

// Responder walks an ordered model list and returns the first valid answer.
// A dead upstream is never an error for the caller: Reply always produces
// something sendable, falling back to a canned line when every model fails.
type Responder struct {
	completer Completer
	models    []string
	persona   string
	timeout   time.Duration
}

func NewResponder(completer Completer, models []string) *Responder {
	return &Responder{
		completer: completer,
		models:    models,
		persona:   model.Persona,
		timeout:   perModelTimeout,
	}
}

func (r *Responder) Reply(ctx context.Context, text string) string {
	messages := []Message{
		{Role: "system", Content: r.persona},
		{Role: "user", Content: text},
	}
	for _, m := range r.models {
		callCtx, cancel := context.WithTimeout(ctx, r.timeout)
		answer, err := r.completer.Complete(callCtx, m, messages)
		cancel()
		if err != nil {
			log.Printf("completion via %s: %+v", m, err)
			continue
		}
		return answer
	}
	return model.FallbackReply
}
