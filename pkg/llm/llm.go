//go:generate go run github.com/golang/mock/mockgen -source=llm.go -package=llm -destination=mock.go Completer
package llm

import "context"

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer issues one completion call against one model.
type Completer interface {
	Complete(ctx context.Context, model string, messages []Message) (string, error)
}
