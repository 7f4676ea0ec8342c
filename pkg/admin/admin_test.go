package admin

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/xerrors"

	"github.com/cindrella-bot/cindrella/pkg/bot"
	"github.com/cindrella-bot/cindrella/pkg/broadcast"
	"github.com/cindrella-bot/cindrella/pkg/db"
	"github.com/cindrella-bot/cindrella/pkg/model"
	"github.com/cindrella-bot/cindrella/pkg/session"
	"github.com/cindrella-bot/cindrella/pkg/stats"
)

const (
	owner   = 99
	adminID = 7
	chatID  = int64(42)
)

type consoleMocks struct {
	bot       *bot.MockInterface
	operators *db.MockIOperators
	chats     *db.MockIChats
	sessions  *session.Store
	usage     *stats.Daily
	console   *Console
}

func newConsole(ctrl *gomock.Controller) consoleMocks {
	mockBot := bot.NewMockInterface(ctrl)
	operators := db.NewMockIOperators(ctrl)
	operators.EXPECT().Owner().Return(owner).AnyTimes()
	chats := db.NewMockIChats(ctrl)
	sessions := session.NewStore()
	usage := stats.NewDaily()
	console := NewConsole(mockBot, operators, sessions,
		broadcast.NewSender(mockBot, chats), usage)
	return consoleMocks{
		bot:       mockBot,
		operators: operators,
		chats:     chats,
		sessions:  sessions,
		usage:     usage,
		console:   console,
	}
}

func TestOpenPanel(t *testing.T) {
	ctx := context.Background()

	t.Run("owner sees operator management", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newConsole(ctrl)
		m.operators.EXPECT().Contains(ctx, owner).Return(true).Times(1)
		m.bot.EXPECT().SendKeyboard(chatID, model.AdminPanelMsg, gomock.Any()).
			DoAndReturn(func(_ int64, _ string, keyboard [][]model.KV) (int, error) {
				assert.Len(t, keyboard, 4)
				return 1, nil
			}).Times(1)

		m.console.OpenPanel(ctx, chatID, owner)
	})

	t.Run("plain admin sees broadcast and usage only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newConsole(ctrl)
		m.operators.EXPECT().Contains(ctx, adminID).Return(true).Times(1)
		m.bot.EXPECT().SendKeyboard(chatID, model.AdminPanelMsg, gomock.Any()).
			DoAndReturn(func(_ int64, _ string, keyboard [][]model.KV) (int, error) {
				assert.Equal(t, [][]model.KV{
					{{K: "📣 Broadcast", V: model.CallbackTypeBroadcast}},
					{{K: "📊 Usage", V: model.CallbackTypeUsage}},
				}, keyboard)
				return 1, nil
			}).Times(1)

		m.console.OpenPanel(ctx, chatID, adminID)
	})

	t.Run("non-operator gets nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newConsole(ctrl)
		m.operators.EXPECT().Contains(ctx, 1000).Return(false).Times(1)
		m.console.OpenPanel(ctx, chatID, 1000)
	})
}

func TestOnCallback(t *testing.T) {
	ctx := context.Background()

	t.Run("broadcast button arms the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newConsole(ctrl)
		m.operators.EXPECT().Contains(ctx, adminID).Return(true).Times(1)
		m.bot.EXPECT().AnswerCallback("cb1", "").Times(1)
		m.bot.EXPECT().SendMsg(chatID, model.AskBroadcastMsg).Return(1, nil).Times(1)

		m.console.OnCallback(ctx, chatID, adminID, "cb1", model.CallbackTypeBroadcast)
		assert.Equal(t, model.PendingBroadcast, m.sessions.Pending(adminID))
	})

	t.Run("add admin is owner-gated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newConsole(ctrl)
		m.operators.EXPECT().Contains(ctx, adminID).Return(true).Times(1)
		m.bot.EXPECT().AnswerCallback("cb1", model.OwnerOnlyMsg).Times(1)

		m.console.OnCallback(ctx, chatID, adminID, "cb1", model.CallbackTypeAddAdmin)
		assert.Equal(t, model.PendingNone, m.sessions.Pending(adminID))
	})

	t.Run("a second press overwrites the pending action", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newConsole(ctrl)
		m.operators.EXPECT().Contains(ctx, owner).Return(true).Times(2)
		m.bot.EXPECT().AnswerCallback(gomock.Any(), "").Times(2)
		m.bot.EXPECT().SendMsg(chatID, model.AskAddAdminMsg).Return(1, nil).Times(1)
		m.bot.EXPECT().SendMsg(chatID, model.AskRemoveAdminMsg).Return(1, nil).Times(1)

		m.console.OnCallback(ctx, chatID, owner, "cb1", model.CallbackTypeAddAdmin)
		m.console.OnCallback(ctx, chatID, owner, "cb2", model.CallbackTypeRemoveAdmin)
		assert.Equal(t, model.PendingRemoveAdmin, m.sessions.Pending(owner))
	})

	t.Run("non-operator press is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newConsole(ctrl)
		m.operators.EXPECT().Contains(ctx, 1000).Return(false).Times(1)
		m.bot.EXPECT().AnswerCallback("cb1", model.NotAllowedMsg).Times(1)

		m.console.OnCallback(ctx, chatID, 1000, "cb1", model.CallbackTypeBroadcast)
	})

	t.Run("list admins renders the set directly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newConsole(ctrl)
		m.operators.EXPECT().Contains(ctx, owner).Return(true).Times(1)
		m.operators.EXPECT().List(ctx).Return([]int{owner, 5}, nil).Times(1)
		m.bot.EXPECT().AnswerCallback("cb1", "").Times(1)
		m.bot.EXPECT().SendMsg(chatID, model.AdminListHeader+"\n• 99 (owner)\n• 5").
			Return(1, nil).Times(1)

		m.console.OnCallback(ctx, chatID, owner, "cb1", model.CallbackTypeListAdmins)
		assert.Equal(t, model.PendingNone, m.sessions.Pending(owner))
	})

	t.Run("usage renders the daily counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newConsole(ctrl)
		m.usage.Inc()
		m.usage.Inc()
		day := time.Now().Format("2006-01-02")
		m.operators.EXPECT().Contains(ctx, adminID).Return(true).Times(1)
		m.bot.EXPECT().AnswerCallback("cb1", "").Times(1)
		m.bot.EXPECT().SendMsg(chatID, fmt.Sprintf(model.UsageMsg, day, 2)).
			Return(1, nil).Times(1)

		m.console.OnCallback(ctx, chatID, adminID, "cb1", model.CallbackTypeUsage)
	})
}

func TestHandleInput(t *testing.T) {
	ctx := context.Background()

	t.Run("broadcast payload fans out and reports the count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newConsole(ctrl)
		m.chats.EXPECT().List(ctx).Return([]int64{101, 102, 103}, nil).Times(1)
		m.bot.EXPECT().SendMsg(int64(101), "hello all").Return(1, nil).Times(1)
		m.bot.EXPECT().SendMsg(int64(102), "hello all").
			Return(-1, xerrors.New("blocked")).Times(1)
		m.bot.EXPECT().SendMsg(int64(103), "hello all").Return(1, nil).Times(1)
		m.bot.EXPECT().SendMsg(chatID, fmt.Sprintf(model.BroadcastDoneMsg, 2, 3)).
			Return(1, nil).Times(1)

		m.console.HandleInput(ctx, chatID, adminID, model.PendingBroadcast, "hello all")
	})

	t.Run("add admin parses and persists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newConsole(ctrl)
		m.operators.EXPECT().Add(ctx, 12345).Return(nil).Times(1)
		m.bot.EXPECT().SendMsg(chatID, fmt.Sprintf(model.AdminAddedMsg, 12345)).
			Return(1, nil).Times(1)

		m.console.HandleInput(ctx, chatID, owner, model.PendingAddAdmin, " 12345 ")
	})

	t.Run("garbage id mutates nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newConsole(ctrl)
		m.bot.EXPECT().SendMsg(chatID, model.BadUserIDMsg).Return(1, nil).Times(1)

		m.console.HandleInput(ctx, chatID, owner, model.PendingAddAdmin, "bob")
	})

	t.Run("removing the owner is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newConsole(ctrl)
		m.bot.EXPECT().SendMsg(chatID, model.CantRemoveOwnerMsg).Return(1, nil).Times(1)

		m.console.HandleInput(ctx, chatID, owner, model.PendingRemoveAdmin, "99")
	})

	t.Run("remove admin persists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newConsole(ctrl)
		m.operators.EXPECT().Remove(ctx, 12345).Return(nil).Times(1)
		m.bot.EXPECT().SendMsg(chatID, fmt.Sprintf(model.AdminRemovedMsg, 12345)).
			Return(1, nil).Times(1)

		m.console.HandleInput(ctx, chatID, owner, model.PendingRemoveAdmin, "12345")
	})

	t.Run("persistence failure is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newConsole(ctrl)
		m.operators.EXPECT().Add(ctx, 12345).
			Return(xerrors.New("disk full")).Times(1)
		m.bot.EXPECT().SendMsg(chatID, gomock.Any()).Return(1, nil).Times(1)

		m.console.HandleInput(ctx, chatID, owner, model.PendingAddAdmin, "12345")
	})
}
