//go:generate go run github.com/golang/mock/mockgen -source=bot.go -package=bot -destination=mock.go Interface
package bot

import (
	"github.com/cindrella-bot/cindrella/pkg/model"
)

type Interface interface {
	SendMsg(chatID int64, msg string) (int, error)
	ReplyMsg(chatID int64, replyTo int, msg string) (int, error)
	SendKeyboard(chatID int64, msg string, keyboard [][]model.KV) (int, error)
	SendImg(chatID int64, img []byte, caption string, keyboard [][]model.KV) (int, error)
	ForwardMsg(toChatID, fromChatID int64, msgID int) error
	DeleteMsg(chatID int64, msgID int)
	AnswerCallback(callbackID, text string)
	SetWebhook(addr string) error

	Ban(chatID int64, userID int) error
	Unban(chatID int64, userID int) error
	Restrict(chatID int64, userID int, canSend bool) error
	Promote(chatID int64, userID int, promote bool) error
	Pin(chatID int64, msgID int) error
	Unpin(chatID int64) error

	IsChatAdmin(chatID int64, userID int) bool
	ChatTitle(chatID int64) string
	Self() string
}
