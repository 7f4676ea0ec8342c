// Package audit mirrors qualifying traffic to the operators.
package audit

import (
	"context"
	"fmt"
	"html"
	"log"
	"strings"

	"github.com/cindrella-bot/cindrella/pkg/bot"
	"github.com/cindrella-bot/cindrella/pkg/db"
	"github.com/cindrella-bot/cindrella/pkg/model"
)

type Forwarder struct {
	bot       bot.Interface
	operators db.IOperators
}

func NewForwarder(botAPI bot.Interface, operators db.IOperators) *Forwarder {
	return &Forwarder{
		bot:       botAPI,
		operators: operators,
	}
}

// Mirror sends a provenance note plus a copy of the message to every operator
// except the sender. Per-operator failures are logged and skipped.
func (f *Forwarder) Mirror(ctx context.Context, prov model.Provenance, fromChatID int64, msgID int) {
	ops, err := f.operators.List(ctx)
	if err != nil {
		log.Printf("list operators for audit: %+v", err)
		return
	}
	note := f.provenanceNote(prov)
	for _, op := range ops {
		if op == prov.SenderID {
			continue
		}
		if _, err := f.bot.SendMsg(int64(op), note); err != nil {
			log.Printf("audit note to %d: %+v", op, err)
			continue
		}
		if err := f.bot.ForwardMsg(int64(op), fromChatID, msgID); err != nil {
			log.Printf("audit forward to %d: %+v", op, err)
		}
	}
}

func (f *Forwarder) provenanceNote(prov model.Provenance) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📨 "+model.UserLinkTemplate, prov.SenderID, html.EscapeString(prov.SenderName))
	if prov.Handle != "" {
		fmt.Fprintf(&b, " (@%s)", prov.Handle)
	}
	if prov.Private {
		b.WriteString(" in private")
	} else {
		fmt.Fprintf(&b, " in %s", html.EscapeString(prov.ChatTitle))
	}
	if prov.Link != "" {
		fmt.Fprintf(&b, "\n%s", prov.Link)
	}
	return b.String()
}
