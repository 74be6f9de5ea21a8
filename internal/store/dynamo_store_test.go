package store

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashd/internal/models"
)

// fakeDynamo keeps items per partition key, sorted by sort key on query.
type fakeDynamo struct {
	items    map[string][]map[string]ddbtypes.AttributeValue
	putErr   error
	queryErr error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: make(map[string][]map[string]ddbtypes.AttributeValue)}
}

func itemKey(item map[string]ddbtypes.AttributeValue, attr string) string {
	if v, ok := item[attr].(*ddbtypes.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	pk := itemKey(params.Item, "PK")
	f.items[pk] = append(f.items[pk], params.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	pk := params.ExpressionAttributeValues[":pk"].(*ddbtypes.AttributeValueMemberS).Value
	items := append([]map[string]ddbtypes.AttributeValue(nil), f.items[pk]...)

	descending := params.ScanIndexForward != nil && !*params.ScanIndexForward
	sort.Slice(items, func(i, j int) bool {
		if descending {
			return itemKey(items[i], "SK") > itemKey(items[j], "SK")
		}
		return itemKey(items[i], "SK") < itemKey(items[j], "SK")
	})

	if params.Limit != nil && int(*params.Limit) < len(items) {
		items = items[:*params.Limit]
	}
	return &dynamodb.QueryOutput{Items: items}, nil
}

func dynamoDocAt(at time.Time, total int) *models.StatDocument {
	doc := models.NewStatDocument(models.TypeVisitors, "20240301")
	doc.Append(models.Snapshot{
		CreatedAt: at,
		Period:    models.PeriodOf(at),
		Data:      models.VisitorPayload{TotalVisitors: total},
	}, 24)
	return doc
}

func TestDynamoStore_PutGetRoundtrip(t *testing.T) {
	client := newFakeDynamo()
	d := NewDynamoStore(client, "dashboard-stats")

	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, d.Put(context.Background(), models.TypeVisitors, "20240301", dynamoDocAt(at, 100)))

	got, err := d.Get(context.Background(), models.TypeVisitors, "20240301")
	require.NoError(t, err)
	assert.Equal(t, models.TypeVisitors, got.Type)
	require.Len(t, got.History, 1)
	assert.EqualValues(t, 100, got.Current["total_visitors"])
}

func TestDynamoStore_AppendOnlyItems(t *testing.T) {
	client := newFakeDynamo()
	d := NewDynamoStore(client, "dashboard-stats")

	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, d.Put(context.Background(), models.TypeVisitors, "20240301", dynamoDocAt(at, 100)))
	require.NoError(t, d.Put(context.Background(), models.TypeVisitors, "20240301", dynamoDocAt(at.Add(time.Hour), 200)))

	// no item was overwritten: both writes exist under the partition
	assert.Len(t, client.items["VISITORS#20240301"], 2)
}

func TestDynamoStore_GetResolvesLatest(t *testing.T) {
	client := newFakeDynamo()
	d := NewDynamoStore(client, "dashboard-stats")

	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, d.Put(context.Background(), models.TypeVisitors, "20240301", dynamoDocAt(at, 100)))
	require.NoError(t, d.Put(context.Background(), models.TypeVisitors, "20240301", dynamoDocAt(at.Add(time.Hour), 200)))
	require.NoError(t, d.Put(context.Background(), models.TypeVisitors, "20240301", dynamoDocAt(at.Add(2*time.Hour), 300)))

	got, err := d.Get(context.Background(), models.TypeVisitors, "20240301")
	require.NoError(t, err)
	assert.EqualValues(t, 300, got.Current["total_visitors"])
}

func TestDynamoStore_MissingIsNotFound(t *testing.T) {
	d := NewDynamoStore(newFakeDynamo(), "dashboard-stats")
	_, err := d.Get(context.Background(), models.TypeVisitors, "20240301")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDynamoStore_KeyShape(t *testing.T) {
	client := newFakeDynamo()
	d := NewDynamoStore(client, "dashboard-stats")

	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, d.Put(context.Background(), models.TypeVisitors, "20240301", dynamoDocAt(at, 100)))

	items := client.items["VISITORS#20240301"]
	require.Len(t, items, 1)
	assert.Equal(t, "VISITORS#20240301", itemKey(items[0], "PK"))
	assert.Equal(t, "TIMESTAMP#2024-03-01T10:00:00Z", itemKey(items[0], "SK"))
}

func TestDynamoStore_QueryErrorSurfaces(t *testing.T) {
	client := newFakeDynamo()
	client.queryErr = errors.New("throttled")
	d := NewDynamoStore(client, "dashboard-stats")

	_, err := d.Get(context.Background(), models.TypeVisitors, "20240301")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestDynamoStore_PutErrorSurfaces(t *testing.T) {
	client := newFakeDynamo()
	client.putErr = errors.New("capacity exceeded")
	d := NewDynamoStore(client, "dashboard-stats")

	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	err := d.Put(context.Background(), models.TypeVisitors, "20240301", dynamoDocAt(at, 100))
	assert.Error(t, err)
}
