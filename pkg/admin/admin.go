// Package admin is the operator console: an inline-keyboard panel whose
// buttons arm a per-user pending action, completed by the user's next message.
package admin

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/cindrella-bot/cindrella/pkg/bot"
	"github.com/cindrella-bot/cindrella/pkg/broadcast"
	"github.com/cindrella-bot/cindrella/pkg/db"
	"github.com/cindrella-bot/cindrella/pkg/model"
	"github.com/cindrella-bot/cindrella/pkg/session"
	"github.com/cindrella-bot/cindrella/pkg/stats"
)

type Console struct {
	bot         bot.Interface
	operators   db.IOperators
	sessions    *session.Store
	broadcaster *broadcast.Sender
	usage       *stats.Daily
}

func NewConsole(botAPI bot.Interface, operators db.IOperators, sessions *session.Store,
	broadcaster *broadcast.Sender, usage *stats.Daily,
) *Console {
	return &Console{
		bot:         botAPI,
		operators:   operators,
		sessions:    sessions,
		broadcaster: broadcaster,
		usage:       usage,
	}
}

// OpenPanel renders the console. Non-operators are ignored without a reply.
func (c *Console) OpenPanel(ctx context.Context, chatID int64, userID int) {
	if !c.operators.Contains(ctx, userID) {
		return
	}
	keyboard := [][]model.KV{
		{{K: "📣 Broadcast", V: model.CallbackTypeBroadcast}},
	}
	if userID == c.operators.Owner() {
		keyboard = append(keyboard,
			[]model.KV{
				{K: "➕ Add Admin", V: model.CallbackTypeAddAdmin},
				{K: "➖ Remove Admin", V: model.CallbackTypeRemoveAdmin},
			},
			[]model.KV{{K: "📋 List Admins", V: model.CallbackTypeListAdmins}},
		)
	}
	keyboard = append(keyboard, []model.KV{{K: "📊 Usage", V: model.CallbackTypeUsage}})
	if _, err := c.bot.SendKeyboard(chatID, model.AdminPanelMsg, keyboard); err != nil {
		log.Printf("send admin panel: %+v", err)
	}
}

// OnCallback handles a console button press. A press while another action is
// already pending simply overwrites it.
func (c *Console) OnCallback(ctx context.Context, chatID int64, userID int, callbackID, data string) {
	if !c.operators.Contains(ctx, userID) {
		c.bot.AnswerCallback(callbackID, model.NotAllowedMsg)
		return
	}
	switch data {
	case model.CallbackTypeBroadcast:
		c.sessions.SetPending(userID, model.PendingBroadcast)
		c.bot.AnswerCallback(callbackID, "")
		c.send(chatID, model.AskBroadcastMsg)
	case model.CallbackTypeAddAdmin:
		if !c.ownerGate(userID, callbackID) {
			return
		}
		c.sessions.SetPending(userID, model.PendingAddAdmin)
		c.bot.AnswerCallback(callbackID, "")
		c.send(chatID, model.AskAddAdminMsg)
	case model.CallbackTypeRemoveAdmin:
		if !c.ownerGate(userID, callbackID) {
			return
		}
		c.sessions.SetPending(userID, model.PendingRemoveAdmin)
		c.bot.AnswerCallback(callbackID, "")
		c.send(chatID, model.AskRemoveAdminMsg)
	case model.CallbackTypeListAdmins:
		c.bot.AnswerCallback(callbackID, "")
		c.send(chatID, c.renderOperators(ctx))
	case model.CallbackTypeUsage:
		c.bot.AnswerCallback(callbackID, "")
		day, n := c.usage.Today()
		c.send(chatID, fmt.Sprintf(model.UsageMsg, day, n))
	default:
		c.bot.AnswerCallback(callbackID, "")
	}
}

// HandleInput completes a pending action with the user's message body. The
// pending state was already consumed by the dispatcher, so any outcome here
// leaves the session at none.
func (c *Console) HandleInput(ctx context.Context, chatID int64, userID int, action model.PendingAction, text string) {
	switch action {
	case model.PendingBroadcast:
		sent, total := c.broadcaster.Send(ctx, text)
		c.send(chatID, fmt.Sprintf(model.BroadcastDoneMsg, sent, total))
	case model.PendingAddAdmin:
		id, ok := parseUserID(text)
		if !ok {
			c.send(chatID, model.BadUserIDMsg)
			return
		}
		if err := c.operators.Add(ctx, id); err != nil {
			log.Printf("add admin %d: %+v", id, err)
			c.send(chatID, fmt.Sprintf(model.SaveFailMsg, err))
			return
		}
		c.send(chatID, fmt.Sprintf(model.AdminAddedMsg, id))
	case model.PendingRemoveAdmin:
		id, ok := parseUserID(text)
		if !ok {
			c.send(chatID, model.BadUserIDMsg)
			return
		}
		if id == c.operators.Owner() {
			c.send(chatID, model.CantRemoveOwnerMsg)
			return
		}
		if err := c.operators.Remove(ctx, id); err != nil {
			log.Printf("remove admin %d: %+v", id, err)
			c.send(chatID, fmt.Sprintf(model.SaveFailMsg, err))
			return
		}
		c.send(chatID, fmt.Sprintf(model.AdminRemovedMsg, id))
	}
}

func (c *Console) ownerGate(userID int, callbackID string) bool {
	if userID != c.operators.Owner() {
		c.bot.AnswerCallback(callbackID, model.OwnerOnlyMsg)
		return false
	}
	return true
}

func (c *Console) renderOperators(ctx context.Context) string {
	ops, err := c.operators.List(ctx)
	if err != nil {
		log.Printf("list operators: %+v", err)
		return fmt.Sprintf(model.SaveFailMsg, err)
	}
	var b strings.Builder
	b.WriteString(model.AdminListHeader)
	for _, op := range ops {
		b.WriteString("\n• ")
		b.WriteString(strconv.Itoa(op))
		if op == c.operators.Owner() {
			b.WriteString(" (owner)")
		}
	}
	return b.String()
}

func (c *Console) send(chatID int64, text string) {
	if _, err := c.bot.SendMsg(chatID, text); err != nil {
		log.Printf("admin console send: %+v", err)
	}
}

func parseUserID(text string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
