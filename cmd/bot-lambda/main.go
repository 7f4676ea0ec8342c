package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
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

var RespOK = &events.APIGatewayProxyResponse{
	Headers:    map[string]string{},
	StatusCode: http.StatusOK,
	Body:       "True",
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%+v", err)
	}
	if !cfg.UseDynamo() {
		log.Fatalln("lambda deployment needs OPERATORS_TABLE_NAME and CHATS_TABLE_NAME")
	}

	botAPI, err := bot.NewAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	sess, err := awssession.NewSession()
	if err != nil {
		log.Fatalln("init aws session: ", err)
	}
	operators := db.NewDynamoOperators(sess, cfg.OperatorsTable, cfg.OwnerID)
	chats := db.NewDynamoChats(sess, cfg.ChatsTable)
	welcome, err := db.NewFileWelcome("/tmp")
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

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
		switch req.Path {
		case "/":
			update := &tgbotapi.Update{}
			if err := json.Unmarshal([]byte(req.Body), update); err != nil {
				return RespOK, nil
			}
			dispatcher.OnUpdate(ctx, update)
			return RespOK, nil
		case "/hook":
			hookAddr := "https://" + req.Headers["Host"] + "/" + req.RequestContext.Stage
			if err := botAPI.SetWebhook(hookAddr); err != nil {
				return &events.APIGatewayProxyResponse{
					Headers:    map[string]string{},
					StatusCode: http.StatusInternalServerError,
					Body:       fmt.Sprintf("set webhook %s failed: %v", hookAddr, err),
				}, nil
			}
			return RespOK, nil
		default:
			return nil, errors.New("path not found")
		}
	})
}
