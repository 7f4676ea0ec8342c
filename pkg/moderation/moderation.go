// Package moderation maps privileged chat commands onto single gateway calls.
package moderation

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"golang.org/x/xerrors"

	"github.com/cindrella-bot/cindrella/pkg/bot"
	"github.com/cindrella-bot/cindrella/pkg/db"
	"github.com/cindrella-bot/cindrella/pkg/model"
	"github.com/cindrella-bot/cindrella/pkg/session"
)

type Executor struct {
	bot       bot.Interface
	operators db.IOperators
	sessions  *session.Store
}

func NewExecutor(botAPI bot.Interface, operators db.IOperators, sessions *session.Store) *Executor {
	return &Executor{
		bot:       botAPI,
		operators: operators,
		sessions:  sessions,
	}
}

// Execute runs one moderation command. Unauthorized invocations are dropped
// without any moderation call; gateway failures come back to the invoker as a
// notice and never propagate.
func (e *Executor) Execute(ctx context.Context, cmd string, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if !e.authorized(ctx, chatID, msg.From.ID) {
		return
	}

	switch cmd {
	case model.CmdPin:
		if msg.ReplyToMessage == nil {
			e.notice(msg, fmt.Sprintf(model.NeedReplyMsg, cmd))
			return
		}
		e.report(msg, cmd, e.bot.Pin(chatID, msg.ReplyToMessage.MessageID))
		return
	case model.CmdUnpin:
		e.report(msg, cmd, e.bot.Unpin(chatID))
		return
	case model.CmdPurge:
		e.purge(msg)
		return
	}

	target, err := e.resolveTarget(msg)
	if err != nil {
		e.notice(msg, err.Error())
		return
	}

	switch cmd {
	case model.CmdBan:
		err = e.bot.Ban(chatID, target)
	case model.CmdUnban:
		err = e.bot.Unban(chatID, target)
	case model.CmdKick:
		// ban followed by unban: removal without a lasting ban
		err = e.bot.Ban(chatID, target)
		if err == nil {
			err = e.bot.Unban(chatID, target)
		}
	case model.CmdMute:
		err = e.bot.Restrict(chatID, target, false)
	case model.CmdUnmute:
		err = e.bot.Restrict(chatID, target, true)
	case model.CmdPromote:
		err = e.bot.Promote(chatID, target, true)
	case model.CmdDemote:
		err = e.bot.Promote(chatID, target, false)
	default:
		log.Printf("unknown moderation command %q", cmd)
		return
	}
	e.report(msg, cmd, err)
}

func (e *Executor) authorized(ctx context.Context, chatID int64, userID int) bool {
	if e.operators.Contains(ctx, userID) {
		return true
	}
	return e.bot.IsChatAdmin(chatID, userID)
}

// resolveTarget picks the replied-to user, a numeric id argument, or an
// @handle argument resolved through the seen-user cache.
func (e *Executor) resolveTarget(msg *tgbotapi.Message) (int, error) {
	if msg.ReplyToMessage != nil && msg.ReplyToMessage.From != nil {
		return msg.ReplyToMessage.From.ID, nil
	}
	arg := strings.TrimSpace(msg.CommandArguments())
	if arg == "" {
		return 0, xerrors.New(model.NeedTargetMsg)
	}
	arg = strings.Fields(arg)[0]
	if strings.HasPrefix(arg, "@") {
		id, ok := e.sessions.ResolveHandle(arg)
		if !ok {
			return 0, xerrors.Errorf(model.UnknownHandleMsg, arg)
		}
		return id, nil
	}
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, xerrors.New(model.NeedTargetMsg)
	}
	return id, nil
}

// purge deletes every message between the replied-to message and the command
// itself, inclusive. Each deletion stands alone; gaps are expected.
func (e *Executor) purge(msg *tgbotapi.Message) {
	if msg.ReplyToMessage == nil {
		e.notice(msg, fmt.Sprintf(model.NeedReplyMsg, model.CmdPurge))
		return
	}
	from, to := msg.ReplyToMessage.MessageID, msg.MessageID
	if from > to {
		from, to = to, from
	}
	for id := from; id <= to; id++ {
		e.bot.DeleteMsg(msg.Chat.ID, id)
	}
}

func (e *Executor) report(msg *tgbotapi.Message, cmd string, err error) {
	if err != nil {
		e.notice(msg, fmt.Sprintf(model.ModerationFailMsg, cmd, err))
		return
	}
	e.notice(msg, model.ModerationOKMsg)
}

func (e *Executor) notice(msg *tgbotapi.Message, text string) {
	if _, err := e.bot.ReplyMsg(msg.Chat.ID, msg.MessageID, text); err != nil {
		log.Printf("moderation notice: %+v", err)
	}
}
