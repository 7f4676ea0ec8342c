// Package broadcast fans one message out to every known conversation.
package broadcast

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"github.com/cindrella-bot/cindrella/pkg/bot"
	"github.com/cindrella-bot/cindrella/pkg/db"
)

const workers = 8

type Sender struct {
	bot   bot.Interface
	chats db.IChats
}

func NewSender(botAPI bot.Interface, chats db.IChats) *Sender {
	return &Sender{
		bot:   botAPI,
		chats: chats,
	}
}

// Send delivers text to a snapshot of the known conversations. Every recipient
// is attempted; failures are counted, not retried. Returns (sent, total).
func (s *Sender) Send(ctx context.Context, text string) (int, int) {
	ids, err := s.chats.List(ctx)
	if err != nil {
		log.Printf("list chats for broadcast: %+v", err)
		return 0, 0
	}

	var sent int32
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for _, id := range ids {
		wg.Add(1)
		sem <- struct{}{}
		go func(chatID int64) {
			defer wg.Done()
			defer func() { <-sem }()
			if _, err := s.bot.SendMsg(chatID, text); err != nil {
				log.Printf("broadcast to %d: %+v", chatID, err)
				return
			}
			atomic.AddInt32(&sent, 1)
		}(id)
	}
	wg.Wait()
	return int(atomic.LoadInt32(&sent)), len(ids)
}
