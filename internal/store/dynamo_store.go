package store

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"dashd/internal/models"
)

// DynamoAPI is the slice of the DynamoDB client the store uses.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// DynamoStore keeps the append-only item discipline: every Put writes the
// full document as a new item under PK="{TYPE}#{date}",
// SK="TIMESTAMP#{instant}", and Get resolves the latest document with a
// reverse-sorted query limited to one item. This sidesteps the
// read-modify-write race entirely on the storage side.
type DynamoStore struct {
	client DynamoAPI
	table  string
}

func NewDynamoStore(client DynamoAPI, table string) *DynamoStore {
	return &DynamoStore{client: client, table: table}
}

type dynamoItem struct {
	PK   string               `dynamodbav:"PK"`
	SK   string               `dynamodbav:"SK"`
	Data *models.StatDocument `dynamodbav:"data"`
}

func (d *DynamoStore) Get(ctx context.Context, typ models.StatType, date models.DateKey) (*models.StatDocument, error) {
	out, err := d.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(d.table),
		KeyConditionExpression: aws.String("PK = :pk"),
		ExpressionAttributeValues: map[string]ddbtypes.AttributeValue{
			":pk": &ddbtypes.AttributeValueMemberS{Value: PartitionKey(typ, date)},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", PartitionKey(typ, date), err)
	}
	if len(out.Items) == 0 {
		return nil, ErrNotFound
	}

	var item dynamoItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &item); err != nil {
		return nil, fmt.Errorf("decode item %s: %w", PartitionKey(typ, date), err)
	}
	if item.Data == nil {
		return nil, ErrNotFound
	}
	return item.Data, nil
}

func (d *DynamoStore) Put(ctx context.Context, typ models.StatType, date models.DateKey, doc *models.StatDocument) error {
	at := doc.UpdatedAt
	if at.IsZero() {
		at = time.Now()
	}

	item, err := attributevalue.MarshalMap(dynamoItem{
		PK:   PartitionKey(typ, date),
		SK:   SortKey(at),
		Data: doc,
	})
	if err != nil {
		return fmt.Errorf("encode item %s: %w", PartitionKey(typ, date), err)
	}

	_, err = d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put item %s: %w", PartitionKey(typ, date), err)
	}
	return nil
}
