// Package dispatch classifies each inbound update into exactly one route:
// callback, membership change, command, pending admin input, or free text.
package dispatch

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/cindrella-bot/cindrella/pkg/admin"
	"github.com/cindrella-bot/cindrella/pkg/audit"
	"github.com/cindrella-bot/cindrella/pkg/bot"
	"github.com/cindrella-bot/cindrella/pkg/db"
	"github.com/cindrella-bot/cindrella/pkg/llm"
	"github.com/cindrella-bot/cindrella/pkg/model"
	"github.com/cindrella-bot/cindrella/pkg/moderation"
	"github.com/cindrella-bot/cindrella/pkg/session"
	"github.com/cindrella-bot/cindrella/pkg/stats"
	"github.com/cindrella-bot/cindrella/pkg/utils"
)

type Dispatcher struct {
	bot       bot.Interface
	operators db.IOperators
	chats     db.IChats
	welcome   db.IWelcome
	sessions  *session.Store
	console   *admin.Console
	moderator *moderation.Executor
	auditor   *audit.Forwarder
	responder *llm.Responder
	usage     *stats.Daily
}

func New(botAPI bot.Interface, operators db.IOperators, chats db.IChats, welcome db.IWelcome,
	sessions *session.Store, console *admin.Console, moderator *moderation.Executor,
	auditor *audit.Forwarder, responder *llm.Responder, usage *stats.Daily,
) *Dispatcher {
	return &Dispatcher{
		bot:       botAPI,
		operators: operators,
		chats:     chats,
		welcome:   welcome,
		sessions:  sessions,
		console:   console,
		moderator: moderator,
		auditor:   auditor,
		responder: responder,
		usage:     usage,
	}
}

// OnUpdate handles one update end to end. Nothing escapes it: a bad event is
// logged and dropped, never allowed to take the process down.
func (d *Dispatcher) OnUpdate(ctx context.Context, update *tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("dispatch panic: %v", r)
		}
	}()

	if update.CallbackQuery != nil {
		cq := update.CallbackQuery
		if cq.Message == nil || cq.From == nil {
			return
		}
		d.console.OnCallback(ctx, cq.Message.Chat.ID, cq.From.ID, cq.ID, cq.Data)
		return
	}

	msg := update.Message
	if msg == nil || msg.From == nil || msg.Chat == nil {
		return
	}
	if time.Since(msg.Time()) > time.Hour {
		return
	}

	if err := d.chats.Add(ctx, msg.Chat.ID); err != nil {
		log.Printf("record chat %d: %+v", msg.Chat.ID, err)
	}
	d.sessions.SeenUser(msg.From.UserName, msg.From.ID)

	if msg.NewChatMembers != nil {
		d.onNewMembers(ctx, msg)
		return
	}

	if msg.IsCommand() {
		d.onCommand(ctx, msg)
		return
	}

	if msg.Text == "" {
		return
	}

	if action := d.sessions.TakePending(msg.From.ID); action != model.PendingNone {
		d.console.HandleInput(ctx, msg.Chat.ID, msg.From.ID, action, msg.Text)
		return
	}

	d.onFreeText(ctx, msg)
}

func (d *Dispatcher) onCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case model.CmdStart:
		d.onStart(msg)
	case model.CmdAdmin:
		d.console.OpenPanel(ctx, msg.Chat.ID, msg.From.ID)
	case model.CmdSetWelcome:
		d.onSetWelcome(ctx, msg)
	case model.CmdBan, model.CmdUnban, model.CmdKick,
		model.CmdMute, model.CmdUnmute,
		model.CmdPromote, model.CmdDemote,
		model.CmdPin, model.CmdUnpin, model.CmdPurge:
		d.moderator.Execute(ctx, msg.Command(), msg)
	}
}

func (d *Dispatcher) onStart(msg *tgbotapi.Message) {
	name := utils.GetFullName(msg.From.FirstName, msg.From.LastName)
	if _, err := d.bot.SendMsg(msg.Chat.ID, fmt.Sprintf(model.StartMsg, name)); err != nil {
		log.Printf("send start reply: %+v", err)
		return
	}
	if !msg.Chat.IsPrivate() {
		return
	}
	link := "https://t.me/" + d.bot.Self()
	img, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		log.Println("encode share qr: ", err)
		return
	}
	if _, err := d.bot.SendImg(msg.Chat.ID, img, model.ShareCaption, nil); err != nil {
		log.Printf("send share qr: %+v", err)
	}
}

func (d *Dispatcher) onSetWelcome(ctx context.Context, msg *tgbotapi.Message) {
	if !d.operators.Contains(ctx, msg.From.ID) && !d.bot.IsChatAdmin(msg.Chat.ID, msg.From.ID) {
		return
	}
	text := strings.TrimSpace(msg.CommandArguments())
	if text == "" {
		d.reply(msg, model.NeedWelcomeMsg)
		return
	}
	if err := d.welcome.Set(ctx, msg.Chat.ID, text); err != nil {
		log.Printf("set welcome for %d: %+v", msg.Chat.ID, err)
		d.reply(msg, fmt.Sprintf(model.SaveFailMsg, err))
		return
	}
	d.reply(msg, model.WelcomeSetMsg)
}

func (d *Dispatcher) onNewMembers(ctx context.Context, msg *tgbotapi.Message) {
	template, err := d.welcome.Get(ctx, msg.Chat.ID)
	if err != nil {
		template = model.DefaultWelcomeMsg
	}
	title := msg.Chat.Title
	if title == "" {
		title = d.bot.ChatTitle(msg.Chat.ID)
	}
	for _, member := range *msg.NewChatMembers {
		if member.IsBot {
			continue
		}
		text := strings.NewReplacer(
			"{name}", utils.GetFullName(member.FirstName, member.LastName),
			"{chat}", title,
		).Replace(template)
		if _, err := d.bot.SendMsg(msg.Chat.ID, text); err != nil {
			log.Printf("send welcome: %+v", err)
		}
	}
}

func (d *Dispatcher) onFreeText(ctx context.Context, msg *tgbotapi.Message) {
	private := msg.Chat.IsPrivate()
	mentioned := utils.MentionsUser(msg.Text, d.bot.Self())
	repliedToBot := msg.ReplyToMessage != nil && msg.ReplyToMessage.From != nil &&
		msg.ReplyToMessage.From.UserName == d.bot.Self()

	if private || mentioned || repliedToBot {
		d.auditor.Mirror(ctx, model.Provenance{
			SenderID:   msg.From.ID,
			SenderName: utils.GetFullName(msg.From.FirstName, msg.From.LastName),
			Handle:     msg.From.UserName,
			ChatTitle:  msg.Chat.Title,
			Private:    private,
			Link:       utils.Permalink(msg.Chat.UserName, msg.MessageID),
		}, msg.Chat.ID, msg.MessageID)
	}

	if private || mentioned || repliedToBot || utils.IsGreeting(msg.Text, model.Greetings) {
		answer := d.responder.Reply(ctx, msg.Text)
		if _, err := d.bot.ReplyMsg(msg.Chat.ID, msg.MessageID, answer); err != nil {
			log.Printf("send ai reply: %+v", err)
			return
		}
		d.usage.Inc()
	}
}

func (d *Dispatcher) reply(msg *tgbotapi.Message, text string) {
	if _, err := d.bot.ReplyMsg(msg.Chat.ID, msg.MessageID, text); err != nil {
		log.Printf("send reply: %+v", err)
	}
}
