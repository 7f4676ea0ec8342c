package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"

	awssession "github.com/aws/aws-sdk-go/aws/session"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"

	"github.com/cindrella-bot/cindrella/pkg/admin"
	"github.com/cindrella-bot/cindrella/pkg/audit"
	"github.com/cindrella-bot/cindrella/pkg/bot"
	"github.com/cindrella-bot/cindrella/pkg/broadcast"
	"github.com/cindrella-bot/cindrella/pkg/config"
	"github.com/cindrella-bot/cindrella/pkg/db"
	"github.com/cindrella-bot/cindrella/pkg/dispatch"
	"github.com/cindrella-bot/cindrella/pkg/llm"
	"github.com/cindrella-bot/cindrella/pkg/moderation"
	"github.com/cindrella-bot/cindrella/pkg/session"
	"github.com/cindrella-bot/cindrella/pkg/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%+v", err)
	}

	botAPI, err := bot.NewAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	var operators db.IOperators
	var chats db.IChats
	if cfg.UseDynamo() {
		sess, err := awssession.NewSession()
		if err != nil {
			log.Fatalln("init aws session: ", err)
		}
		operators = db.NewDynamoOperators(sess, cfg.OperatorsTable, cfg.OwnerID)
		chats = db.NewDynamoChats(sess, cfg.ChatsTable)
	} else {
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			log.Fatalln("create data dir: ", err)
		}
		operators, err = db.NewFileOperators(cfg.DataDir, cfg.OwnerID)
		if err != nil {
			log.Fatalf("%+v", err)
		}
		chats, err = db.NewFileChats(cfg.DataDir)
		if err != nil {
			log.Fatalf("%+v", err)
		}
	}
	welcome, err := db.NewFileWelcome(cfg.DataDir)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	sessions := session.NewStore()
	usage := stats.NewDaily()
	responder := llm.NewResponder(llm.NewClient(cfg.AIBaseURL, cfg.AIAPIKey), cfg.AIModels)
	broadcaster := broadcast.NewSender(botAPI, chats)
	console := admin.NewConsole(botAPI, operators, sessions, broadcaster, usage)
	moderator := moderation.NewExecutor(botAPI, operators, sessions)
	auditor := audit.NewForwarder(botAPI, operators)
	dispatcher := dispatch.New(botAPI, operators, chats, welcome,
		sessions, console, moderator, auditor, responder, usage)

	hookPath := "/" + cfg.BotToken
	if cfg.WebhookURL != "" {
		if err := botAPI.SetWebhook(strings.TrimRight(cfg.WebhookURL, "/") + hookPath); err != nil {
			log.Fatalf("%+v", err)
		}
	}

	http.HandleFunc(hookPath, func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		update := &tgbotapi.Update{}
		if err := json.NewDecoder(r.Body).Decode(update); err != nil {
			_, _ = w.Write([]byte("True"))
			return
		}
		dispatcher.OnUpdate(r.Context(), update)
		_, _ = w.Write([]byte("True"))
	})

	log.Println("listening on :" + cfg.Port)
	log.Fatalln(http.ListenAndServe(":"+cfg.Port, nil))
}
