package dispatch

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/cindrella-bot/cindrella/pkg/admin"
	"github.com/cindrella-bot/cindrella/pkg/audit"
	"github.com/cindrella-bot/cindrella/pkg/bot"
	"github.com/cindrella-bot/cindrella/pkg/broadcast"
	"github.com/cindrella-bot/cindrella/pkg/db"
	"github.com/cindrella-bot/cindrella/pkg/llm"
	"github.com/cindrella-bot/cindrella/pkg/model"
	"github.com/cindrella-bot/cindrella/pkg/moderation"
	"github.com/cindrella-bot/cindrella/pkg/session"
	"github.com/cindrella-bot/cindrella/pkg/stats"
)

const owner = 99

type deps struct {
	bot       *bot.MockInterface
	operators *db.MockIOperators
	chats     *db.MockIChats
	welcome   *db.MockIWelcome
	completer *llm.MockCompleter
	sessions  *session.Store
	usage     *stats.Daily
}

func newDispatcher(ctrl *gomock.Controller) (*Dispatcher, deps) {
	d := deps{
		bot:       bot.NewMockInterface(ctrl),
		operators: db.NewMockIOperators(ctrl),
		chats:     db.NewMockIChats(ctrl),
		welcome:   db.NewMockIWelcome(ctrl),
		completer: llm.NewMockCompleter(ctrl),
		sessions:  session.NewStore(),
		usage:     stats.NewDaily(),
	}
	d.operators.EXPECT().Owner().Return(owner).AnyTimes()
	d.bot.EXPECT().Self().Return("cindrella_bot").AnyTimes()

	broadcaster := broadcast.NewSender(d.bot, d.chats)
	console := admin.NewConsole(d.bot, d.operators, d.sessions, broadcaster, d.usage)
	moderator := moderation.NewExecutor(d.bot, d.operators, d.sessions)
	auditor := audit.NewForwarder(d.bot, d.operators)
	responder := llm.NewResponder(d.completer, []string{"model-a"})
	return New(d.bot, d.operators, d.chats, d.welcome,
		d.sessions, console, moderator, auditor, responder, d.usage), d
}

func textMsg(chatID int64, chatType string, userID int, text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 5,
		From:      &tgbotapi.User{ID: userID, UserName: "alice", FirstName: "Alice"},
		Chat:      &tgbotapi.Chat{ID: chatID, Type: chatType},
		Text:      text,
		Date:      int(time.Now().Unix()),
	}
}

func cmdMsg(chatID int64, chatType string, userID int, text string) *tgbotapi.Message {
	msg := textMsg(chatID, chatType, userID, text)
	cmdLen := len(text)
	for i, r := range text {
		if r == ' ' {
			cmdLen = i
			break
		}
	}
	msg.Entities = &[]tgbotapi.MessageEntity{{
		Type:   "bot_command",
		Offset: 0,
		Length: cmdLen,
	}}
	return msg
}

func TestFreeText(t *testing.T) {
	ctx := context.Background()

	t.Run("private hi goes to the model and the chat is recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		d, m := newDispatcher(ctrl)
		m.chats.EXPECT().Add(ctx, int64(42)).Return(nil).Times(1)
		m.operators.EXPECT().List(ctx).Return([]int{owner}, nil).Times(1)
		m.bot.EXPECT().SendMsg(int64(owner), gomock.Any()).Return(1, nil).Times(1)
		m.bot.EXPECT().ForwardMsg(int64(owner), int64(42), 5).Return(nil).Times(1)
		m.completer.EXPECT().Complete(gomock.Any(), "model-a", gomock.Any()).
			Return("hello friend", nil).Times(1)
		m.bot.EXPECT().ReplyMsg(int64(42), 5, "hello friend").Return(6, nil).Times(1)

		d.OnUpdate(ctx, &tgbotapi.Update{Message: textMsg(42, "private", 7, "hi")})

		_, n := m.usage.Today()
		assert.Equal(t, 1, n)
	})

	t.Run("model failure still answers with the fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		d, m := newDispatcher(ctrl)
		m.chats.EXPECT().Add(ctx, int64(42)).Return(nil).Times(1)
		m.operators.EXPECT().List(ctx).Return(nil, nil).Times(1)
		m.completer.EXPECT().Complete(gomock.Any(), "model-a", gomock.Any()).
			Return("", fmt.Errorf("down")).Times(1)
		m.bot.EXPECT().ReplyMsg(int64(42), 5, model.FallbackReply).Return(6, nil).Times(1)

		d.OnUpdate(ctx, &tgbotapi.Update{Message: textMsg(42, "private", 7, "hi")})
	})

	t.Run("plain group chatter is neither answered nor mirrored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		d, m := newDispatcher(ctrl)
		m.chats.EXPECT().Add(ctx, int64(-100)).Return(nil).Times(1)

		d.OnUpdate(ctx, &tgbotapi.Update{Message: textMsg(-100, "supergroup", 7, "what a day")})
	})

	t.Run("group greeting wakes the bot but is not mirrored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		d, m := newDispatcher(ctrl)
		m.chats.EXPECT().Add(ctx, int64(-100)).Return(nil).Times(1)
		m.completer.EXPECT().Complete(gomock.Any(), "model-a", gomock.Any()).
			Return("hey!", nil).Times(1)
		m.bot.EXPECT().ReplyMsg(int64(-100), 5, "hey!").Return(6, nil).Times(1)

		d.OnUpdate(ctx, &tgbotapi.Update{Message: textMsg(-100, "supergroup", 7, "hello everyone")})
	})

	t.Run("group mention is answered and mirrored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		d, m := newDispatcher(ctrl)
		m.chats.EXPECT().Add(ctx, int64(-100)).Return(nil).Times(1)
		m.operators.EXPECT().List(ctx).Return([]int{owner}, nil).Times(1)
		m.bot.EXPECT().SendMsg(int64(owner), gomock.Any()).Return(1, nil).Times(1)
		m.bot.EXPECT().ForwardMsg(int64(owner), int64(-100), 5).Return(nil).Times(1)
		m.completer.EXPECT().Complete(gomock.Any(), "model-a", gomock.Any()).
			Return("at your service", nil).Times(1)
		m.bot.EXPECT().ReplyMsg(int64(-100), 5, "at your service").Return(6, nil).Times(1)

		d.OnUpdate(ctx, &tgbotapi.Update{
			Message: textMsg(-100, "supergroup", 7, "@cindrella_bot are you there"),
		})
	})

	t.Run("stale updates are dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		d, _ := newDispatcher(ctrl)
		msg := textMsg(42, "private", 7, "hi")
		msg.Date = int(time.Now().Add(-2 * time.Hour).Unix())
		d.OnUpdate(ctx, &tgbotapi.Update{Message: msg})
	})
}

func TestCommands(t *testing.T) {
	ctx := context.Background()

	t.Run("non-privileged mute triggers no moderation call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		d, m := newDispatcher(ctrl)
		m.chats.EXPECT().Add(ctx, int64(-100)).Return(nil).Times(1)
		m.operators.EXPECT().Contains(ctx, 7).Return(false).Times(1)
		m.bot.EXPECT().IsChatAdmin(int64(-100), 7).Return(false).Times(1)

		d.OnUpdate(ctx, &tgbotapi.Update{Message: cmdMsg(-100, "supergroup", 7, "/mute 555")})
	})

	t.Run("setwelcome stores the template", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		d, m := newDispatcher(ctrl)
		m.chats.EXPECT().Add(ctx, int64(-100)).Return(nil).Times(1)
		m.operators.EXPECT().Contains(ctx, owner).Return(true).Times(1)
		m.welcome.EXPECT().Set(ctx, int64(-100), "hey {name}, welcome to {chat}").
			Return(nil).Times(1)
		m.bot.EXPECT().ReplyMsg(int64(-100), 5, model.WelcomeSetMsg).Return(6, nil).Times(1)

		d.OnUpdate(ctx, &tgbotapi.Update{
			Message: cmdMsg(-100, "supergroup", owner, "/setwelcome hey {name}, welcome to {chat}"),
		})
	})
}

func TestNewMembers(t *testing.T) {
	ctx := context.Background()

	t.Run("custom welcome with placeholders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		d, m := newDispatcher(ctrl)
		m.chats.EXPECT().Add(ctx, int64(-100)).Return(nil).Times(1)
		m.welcome.EXPECT().Get(ctx, int64(-100)).
			Return("hey {name}, welcome to {chat}", nil).Times(1)
		m.bot.EXPECT().SendMsg(int64(-100), "hey Bob, welcome to My Group").
			Return(1, nil).Times(1)

		msg := textMsg(-100, "supergroup", 7, "")
		msg.Chat.Title = "My Group"
		msg.NewChatMembers = &[]tgbotapi.User{{ID: 500, FirstName: "Bob"}}
		d.OnUpdate(ctx, &tgbotapi.Update{Message: msg})
	})

	t.Run("bots are not welcomed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		d, m := newDispatcher(ctrl)
		m.chats.EXPECT().Add(ctx, int64(-100)).Return(nil).Times(1)
		m.welcome.EXPECT().Get(ctx, int64(-100)).Return("", db.ErrNotFound).Times(1)

		msg := textMsg(-100, "supergroup", 7, "")
		msg.Chat.Title = "My Group"
		msg.NewChatMembers = &[]tgbotapi.User{{ID: 501, FirstName: "Spam", IsBot: true}}
		d.OnUpdate(ctx, &tgbotapi.Update{Message: msg})
	})
}

// The full owner journey: pressing "Add Admin" then sending the id, with real
// file-backed repositories.
func TestAddAdminJourney(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir, err := ioutil.TempDir("", "cindrella-dispatch-test")
	assert.NoError(t, err)
	defer os.RemoveAll(dir)

	operators, err := db.NewFileOperators(dir, owner)
	assert.NoError(t, err)
	chats, err := db.NewFileChats(dir)
	assert.NoError(t, err)
	welcome, err := db.NewFileWelcome(dir)
	assert.NoError(t, err)

	mockBot := bot.NewMockInterface(ctrl)
	mockBot.EXPECT().Self().Return("cindrella_bot").AnyTimes()
	completer := llm.NewMockCompleter(ctrl)
	sessions := session.NewStore()
	usage := stats.NewDaily()
	broadcaster := broadcast.NewSender(mockBot, chats)
	console := admin.NewConsole(mockBot, operators, sessions, broadcaster, usage)
	moderator := moderation.NewExecutor(mockBot, operators, sessions)
	auditor := audit.NewForwarder(mockBot, operators)
	responder := llm.NewResponder(completer, []string{"model-a"})
	d := New(mockBot, operators, chats, welcome,
		sessions, console, moderator, auditor, responder, usage)

	const ownerChat = int64(owner)

	mockBot.EXPECT().AnswerCallback("cb1", "").Times(1)
	mockBot.EXPECT().SendMsg(ownerChat, model.AskAddAdminMsg).Return(1, nil).Times(1)
	d.OnUpdate(ctx, &tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb1",
		From:    &tgbotapi.User{ID: owner},
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: ownerChat, Type: "private"}},
		Data:    model.CallbackTypeAddAdmin,
	}})
	assert.Equal(t, model.PendingAddAdmin, sessions.Pending(owner))

	mockBot.EXPECT().SendMsg(ownerChat, fmt.Sprintf(model.AdminAddedMsg, 12345)).
		Return(2, nil).Times(1)
	d.OnUpdate(ctx, &tgbotapi.Update{Message: textMsg(ownerChat, "private", owner, "12345")})

	assert.Equal(t, model.PendingNone, sessions.Pending(owner))
	assert.True(t, operators.Contains(ctx, 12345))

	reloaded, err := db.NewFileOperators(dir, owner)
	assert.NoError(t, err)
	assert.True(t, reloaded.Contains(ctx, 12345))
}
