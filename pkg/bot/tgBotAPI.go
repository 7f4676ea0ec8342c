package bot

import (
	"log"
	"net/http"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"golang.org/x/xerrors"

	"github.com/cindrella-bot/cindrella/pkg/model"
)

type TGBotAPI struct {
	bot *tgbotapi.BotAPI
}

func NewAPI(botToken string) (Interface, error) {
	bot, err := tgbotapi.NewBotAPIWithClient(botToken, &http.Client{
		Timeout: 30 * time.Second,
	})
	if err != nil {
		return nil, xerrors.Errorf("init bot api: %w", err)
	}
	return &TGBotAPI{
		bot: bot,
	}, nil
}

func (b TGBotAPI) SendMsg(chatID int64, msg string) (int, error) {
	m := tgbotapi.NewMessage(chatID, msg)
	m.ParseMode = tgbotapi.ModeHTML
	msgRst, err := b.bot.Send(m)
	if err != nil {
		return -1, xerrors.Errorf("send msg to %d: %w", chatID, err)
	}
	return msgRst.MessageID, nil
}

func (b TGBotAPI) ReplyMsg(chatID int64, replyTo int, msg string) (int, error) {
	m := tgbotapi.NewMessage(chatID, msg)
	m.ParseMode = tgbotapi.ModeHTML
	m.ReplyToMessageID = replyTo
	msgRst, err := b.bot.Send(m)
	if err != nil {
		return -1, xerrors.Errorf("reply msg to %d: %w", chatID, err)
	}
	return msgRst.MessageID, nil
}

func (b TGBotAPI) SendKeyboard(chatID int64, msg string, keyboard [][]model.KV) (int, error) {
	m := tgbotapi.NewMessage(chatID, msg)
	m.ParseMode = tgbotapi.ModeHTML
	m.ReplyMarkup = TransformKeyboard(keyboard)
	msgRst, err := b.bot.Send(m)
	if err != nil {
		return -1, xerrors.Errorf("send keyboard to %d: %w", chatID, err)
	}
	return msgRst.MessageID, nil
}

func (b TGBotAPI) SendImg(chatID int64, img []byte, caption string, keyboard [][]model.KV) (int, error) {
	photoMsg := tgbotapi.NewPhotoUpload(chatID, tgbotapi.FileBytes{
		Name:  strconv.FormatInt(time.Now().UnixNano(), 10),
		Bytes: img,
	})
	photoMsg.Caption = caption
	photoMsg.ParseMode = tgbotapi.ModeHTML
	if keyboard != nil {
		photoMsg.ReplyMarkup = TransformKeyboard(keyboard)
	}
	resp, err := b.bot.Send(photoMsg)
	if err != nil {
		return -1, xerrors.Errorf("send img to %d: %w", chatID, err)
	}
	return resp.MessageID, nil
}

func TransformKeyboard(keyboard [][]model.KV) tgbotapi.InlineKeyboardMarkup {
	inlineKeyboard := make([][]tgbotapi.InlineKeyboardButton, len(keyboard))
	for i, v := range keyboard {
		line := make([]tgbotapi.InlineKeyboardButton, len(v))
		for j, w := range v {
			line[j] = tgbotapi.NewInlineKeyboardButtonData(w.K, w.V)
		}
		inlineKeyboard[i] = line
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: inlineKeyboard}
}

func (b TGBotAPI) ForwardMsg(toChatID, fromChatID int64, msgID int) error {
	_, err := b.bot.Send(tgbotapi.NewForward(toChatID, fromChatID, msgID))
	if err != nil {
		return xerrors.Errorf("forward msg %d from %d to %d: %w", msgID, fromChatID, toChatID, err)
	}
	return nil
}

func (b TGBotAPI) DeleteMsg(chatID int64, msgID int) {
	_, err := b.bot.DeleteMessage(tgbotapi.NewDeleteMessage(chatID, msgID))
	if err != nil {
		log.Printf("delete msg %d %d: %+v", chatID, msgID, err)
	}
}

func (b TGBotAPI) AnswerCallback(callbackID, text string) {
	_, err := b.bot.AnswerCallbackQuery(tgbotapi.NewCallback(callbackID, text))
	if err != nil {
		log.Println("answer callback: ", err)
	}
}

func (b TGBotAPI) SetWebhook(addr string) error {
	_, err := b.bot.SetWebhook(tgbotapi.NewWebhook(addr))
	if err != nil {
		return xerrors.Errorf("set webhook %s: %w", addr, err)
	}
	return nil
}

func (b TGBotAPI) Ban(chatID int64, userID int) error {
	_, err := b.bot.KickChatMember(tgbotapi.KickChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{
			ChatID: chatID,
			UserID: userID,
		},
	})
	if err != nil {
		return xerrors.Errorf("ban %d in %d: %w", userID, chatID, err)
	}
	return nil
}

func (b TGBotAPI) Unban(chatID int64, userID int) error {
	_, err := b.bot.UnbanChatMember(tgbotapi.ChatMemberConfig{
		ChatID: chatID,
		UserID: userID,
	})
	if err != nil {
		return xerrors.Errorf("unban %d in %d: %w", userID, chatID, err)
	}
	return nil
}

func (b TGBotAPI) Restrict(chatID int64, userID int, canSend bool) error {
	v := canSend
	_, err := b.bot.RestrictChatMember(tgbotapi.RestrictChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{
			ChatID: chatID,
			UserID: userID,
		},
		CanSendMessages:       &v,
		CanSendMediaMessages:  &v,
		CanSendOtherMessages:  &v,
		CanAddWebPagePreviews: &v,
	})
	if err != nil {
		return xerrors.Errorf("restrict %d in %d: %w", userID, chatID, err)
	}
	return nil
}

func (b TGBotAPI) Promote(chatID int64, userID int, promote bool) error {
	_, err := b.bot.PromoteChatMember(tgbotapi.PromoteChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{
			ChatID: chatID,
			UserID: userID,
		},
		CanDeleteMessages:  &promote,
		CanInviteUsers:     &promote,
		CanRestrictMembers: &promote,
		CanPinMessages:     &promote,
	})
	if err != nil {
		return xerrors.Errorf("promote %d in %d: %w", userID, chatID, err)
	}
	return nil
}

func (b TGBotAPI) Pin(chatID int64, msgID int) error {
	_, err := b.bot.PinChatMessage(tgbotapi.PinChatMessageConfig{
		ChatID:              chatID,
		MessageID:           msgID,
		DisableNotification: true,
	})
	if err != nil {
		return xerrors.Errorf("pin msg %d in %d: %w", msgID, chatID, err)
	}
	return nil
}

func (b TGBotAPI) Unpin(chatID int64) error {
	_, err := b.bot.UnpinChatMessage(tgbotapi.UnpinChatMessageConfig{
		ChatID: chatID,
	})
	if err != nil {
		return xerrors.Errorf("unpin in %d: %w", chatID, err)
	}
	return nil
}

func (b TGBotAPI) IsChatAdmin(chatID int64, userID int) bool {
	member, err := b.bot.GetChatMember(tgbotapi.ChatConfigWithUser{
		ChatID: chatID,
		UserID: userID,
	})
	if err != nil {
		return false
	}
	return member.IsCreator() || member.IsAdministrator()
}

func (b TGBotAPI) ChatTitle(chatID int64) string {
	chat, err := b.bot.GetChat(tgbotapi.ChatConfig{ChatID: chatID})
	if err != nil {
		log.Printf("get chat %d: %+v", chatID, err)
		return ""
	}
	return chat.Title
}

func (b TGBotAPI) Self() string {
	return b.bot.Self.UserName
}
