package db

import (
	"context"
	"log"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"golang.org/x/xerrors"
)

// DynamoOperators is the operator set on a DynamoDB table keyed by userID.
// The owner id never touches the table, same as the file repository.
type DynamoOperators struct {
	db        *dynamodb.DynamoDB
	tableName *string
	owner     int
}

func NewDynamoOperators(p client.ConfigProvider, tableName string, owner int) IOperators {
	return &DynamoOperators{
		db:        dynamodb.New(p),
		tableName: &tableName,
		owner:     owner,
	}
}

func (o DynamoOperators) key(userID int) map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		"userID": {
			N: aws.String(strconv.Itoa(userID)),
		},
	}
}

func (o DynamoOperators) Add(ctx context.Context, userID int) error {
	if userID == o.owner {
		return nil
	}
	_, err := o.db.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: o.tableName,
		Item:      o.key(userID),
	})
	if err != nil {
		return xerrors.Errorf("put operator %d: %w", userID, err)
	}
	return nil
}

func (o DynamoOperators) Remove(ctx context.Context, userID int) error {
	if userID == o.owner {
		return nil
	}
	_, err := o.db.DeleteItemWithContext(ctx, &dynamodb.DeleteItemInput{
		TableName: o.tableName,
		Key:       o.key(userID),
	})
	if err != nil {
		return xerrors.Errorf("delete operator %d: %w", userID, err)
	}
	return nil
}

func (o DynamoOperators) Contains(ctx context.Context, userID int) bool {
	if userID == o.owner {
		return true
	}
	result, err := o.db.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: o.tableName,
		Key:       o.key(userID),
	})
	if err != nil {
		log.Println("get operator: ", err)
		return false
	}
	return len(result.Item) != 0
}

func (o DynamoOperators) List(ctx context.Context) ([]int, error) {
	rst, err := o.db.ScanWithContext(ctx, &dynamodb.ScanInput{
		TableName: o.tableName,
	})
	if err != nil {
		return nil, xerrors.Errorf("scan operators: %w", err)
	}
	out := []int{o.owner}
	for _, item := range rst.Items {
		attr, ok := item["userID"]
		if !ok || attr.N == nil {
			continue
		}
		id, err := strconv.Atoi(*attr.N)
		if err != nil {
			return nil, xerrors.Errorf("parse operator id %s: %w", *attr.N, err)
		}
		out = append(out, id)
	}
	return out, nil
}

func (o DynamoOperators) Owner() int {
	return o.owner
}

// DynamoChats is the known-conversation set on a DynamoDB table keyed by chatID.
type DynamoChats struct {
	db        *dynamodb.DynamoDB
	tableName *string
}

func NewDynamoChats(p client.ConfigProvider, tableName string) IChats {
	return &DynamoChats{
		db:        dynamodb.New(p),
		tableName: &tableName,
	}
}

func (c DynamoChats) Add(ctx context.Context, chatID int64) error {
	_, err := c.db.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: c.tableName,
		Item: map[string]*dynamodb.AttributeValue{
			"chatID": {
				N: aws.String(strconv.FormatInt(chatID, 10)),
			},
		},
	})
	if err != nil {
		return xerrors.Errorf("put chat %d: %w", chatID, err)
	}
	return nil
}

func (c DynamoChats) List(ctx context.Context) ([]int64, error) {
	rst, err := c.db.ScanWithContext(ctx, &dynamodb.ScanInput{
		TableName: c.tableName,
	})
	if err != nil {
		return nil, xerrors.Errorf("scan chats: %w", err)
	}
	out := make([]int64, 0, len(rst.Items))
	for _, item := range rst.Items {
		attr, ok := item["chatID"]
		if !ok || attr.N == nil {
			continue
		}
		id, err := strconv.ParseInt(*attr.N, 10, 64)
		if err != nil {
			return nil, xerrors.Errorf("parse chat id %s: %w", *attr.N, err)
		}
		out = append(out, id)
	}
	return out, nil
}
