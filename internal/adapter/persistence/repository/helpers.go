package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"vip_mudancas/internal/infrastructure/database"
	"vip_mudancas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// timeLayout is fixed width so that stored timestamps sort lexicographically
// in index sort keys.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(s string) *time.Time {
	t := parseTime(s)
	if t.IsZero() {
		return nil
	}
	return &t
}

func stringKey(attr, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attr: &types.AttributeValueMemberS{Value: value},
	}
}

func idKey(id string) map[string]types.AttributeValue {
	return stringKey("id", id)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// updateSet accumulates "SET #attr = :attr" clauses for UpdateItem.
type updateSet struct {
	clauses []string
	values  map[string]types.AttributeValue
	names   map[string]string
	err     error
}

func newUpdateSet() *updateSet {
	return &updateSet{
		values: map[string]types.AttributeValue{},
		names:  map[string]string{},
	}
}

func (s *updateSet) set(attr string, v any) {
	if s.err != nil {
		return
	}
	av, err := attributevalue.Marshal(v)
	if err != nil {
		s.err = errors.Wrapf(err, "marshal %s", attr)
		return
	}
	s.clauses = append(s.clauses, "#"+attr+" = :"+attr)
	s.values[":"+attr] = av
	s.names["#"+attr] = attr
}

func (s *updateSet) expression() string {
	return "SET " + strings.Join(s.clauses, ", ")
}

// updateItem applies set to an existing item and decodes the new image into
// out. found is false when no item has that id.
func updateItem(ctx context.Context, api database.DynamoAPI, table, id string, set *updateSet, out any) (found bool, err error) {
	if set.err != nil {
		return false, set.err
	}
	res, err := api.UpdateItem(ctx, set.input(table, id))
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, errors.Wrapf(err, "update %s id=%s", table, id)
	}
	if len(res.Attributes) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Attributes, out); err != nil {
		return false, errors.Wrapf(err, "unmarshal %s", table)
	}
	return true, nil
}

func (s *updateSet) input(table, id string) *dynamodb.UpdateItemInput {
	return &dynamodb.UpdateItemInput{
		TableName:                 aws.String(table),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(s.expression()),
		ExpressionAttributeValues: s.values,
		ExpressionAttributeNames:  mergeNames(s.names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	}
}

func (s *updateSet) transactUpdate(table, id string) types.TransactWriteItem {
	in := s.input(table, id)
	return types.TransactWriteItem{Update: &types.Update{
		TableName:                 in.TableName,
		Key:                       in.Key,
		ConditionExpression:       in.ConditionExpression,
		UpdateExpression:          in.UpdateExpression,
		ExpressionAttributeValues: in.ExpressionAttributeValues,
		ExpressionAttributeNames:  in.ExpressionAttributeNames,
	}}
}

// uniqueKeys guards unique attributes through a dedicated table whose items
// are written in the same transaction as the owning entity.
type uniqueKeys struct {
	ddb   database.DynamoAPI
	table string
}

func uniqueKeyValue(entity, attr, value string) string {
	return entity + "#" + attr + "#" + value
}

func (u uniqueKeys) put(key, ownerID string) types.TransactWriteItem {
	return types.TransactWriteItem{Put: &types.Put{
		TableName: aws.String(u.table),
		Item: map[string]types.AttributeValue{
			database.UniqueKeyAttr: &types.AttributeValueMemberS{Value: key},
			"owner_id":             &types.AttributeValueMemberS{Value: ownerID},
		},
		ConditionExpression:      aws.String("attribute_not_exists(#k)"),
		ExpressionAttributeNames: map[string]string{"#k": database.UniqueKeyAttr},
	}}
}

func (u uniqueKeys) delete(key string) types.TransactWriteItem {
	return types.TransactWriteItem{Delete: &types.Delete{
		TableName: aws.String(u.table),
		Key:       stringKey(database.UniqueKeyAttr, key),
	}}
}

// owner returns the id holding key, or "" when the key is free.
func (u uniqueKeys) owner(ctx context.Context, key string) (string, error) {
	out, err := u.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(u.table),
		Key:            stringKey(database.UniqueKeyAttr, key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", errors.Wrapf(err, "get unique key %s", key)
	}
	var it struct {
		OwnerID string `dynamodbav:"owner_id"`
	}
	if len(out.Item) == 0 {
		return "", nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", errors.Wrap(err, "unmarshal unique key")
	}
	return it.OwnerID, nil
}

// failedConditions returns the positions of the transaction items whose
// condition failed, or nil when err is not a cancelled transaction.
func failedConditions(err error) []int {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return nil
	}
	var idx []int
	for i, r := range tce.CancellationReasons {
		if aws.ToString(r.Code) == "ConditionalCheckFailed" {
			idx = append(idx, i)
		}
	}
	return idx
}

// createWithKeys writes the entity item together with its unique keys.
// A failed unique-key condition maps to interfaces.ErrDuplicateKey.
func createWithKeys(ctx context.Context, ddb database.DynamoAPI, table string, item map[string]types.AttributeValue, keys []types.TransactWriteItem) error {
	putItem := &types.Put{
		TableName:                aws.String(table),
		Item:                     item,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	}
	if len(keys) == 0 {
		_, err := ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:                putItem.TableName,
			Item:                     putItem.Item,
			ConditionExpression:      putItem.ConditionExpression,
			ExpressionAttributeNames: putItem.ExpressionAttributeNames,
		})
		return errors.Wrapf(err, "put %s", table)
	}

	items := append([]types.TransactWriteItem{{Put: putItem}}, keys...)
	_, err := ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err == nil {
		return nil
	}
	if lo.SomeBy(failedConditions(err), func(i int) bool { return i > 0 }) {
		return errors.Mark(errors.Wrapf(err, "create %s", table), interfaces.ErrDuplicateKey)
	}
	return errors.Wrapf(err, "create %s", table)
}

func getItem(ctx context.Context, ddb database.DynamoAPI, table, id string, out any) (found bool, err error) {
	res, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, errors.Wrapf(err, "get %s id=%s", table, id)
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, errors.Wrapf(err, "unmarshal %s", table)
	}
	return true, nil
}

// queryAll runs every page of a query and decodes the items into T.
func queryAll[T any](ctx context.Context, ddb database.DynamoAPI, in *dynamodb.QueryInput) ([]T, error) {
	var out []T
	p := dynamodb.NewQueryPaginator(ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "query %s", aws.ToString(in.TableName))
		}
		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, errors.Wrapf(err, "unmarshal %s", aws.ToString(in.TableName))
		}
		out = append(out, items...)
	}
	return out, nil
}

// queryLimit stops once limit items were read.
func queryLimit[T any](ctx context.Context, ddb database.DynamoAPI, in *dynamodb.QueryInput, limit int) ([]T, error) {
	var out []T
	p := dynamodb.NewQueryPaginator(ddb, in)
	for p.HasMorePages() && len(out) < limit {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "query %s", aws.ToString(in.TableName))
		}
		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, errors.Wrapf(err, "unmarshal %s", aws.ToString(in.TableName))
		}
		out = append(out, items...)
	}
	return lo.Slice(out, 0, limit), nil
}

func scanAll[T any](ctx context.Context, ddb database.DynamoAPI, in *dynamodb.ScanInput) ([]T, error) {
	var out []T
	p := dynamodb.NewScanPaginator(ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "scan %s", aws.ToString(in.TableName))
		}
		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, errors.Wrapf(err, "unmarshal %s", aws.ToString(in.TableName))
		}
		out = append(out, items...)
	}
	return out, nil
}

func countQuery(ctx context.Context, ddb database.DynamoAPI, in *dynamodb.QueryInput) (int64, error) {
	in.Select = types.SelectCount
	var total int64
	p := dynamodb.NewQueryPaginator(ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, errors.Wrapf(err, "count %s", aws.ToString(in.TableName))
		}
		total += int64(page.Count)
	}
	return total, nil
}

func countScan(ctx context.Context, ddb database.DynamoAPI, in *dynamodb.ScanInput) (int64, error) {
	in.Select = types.SelectCount
	var total int64
	p := dynamodb.NewScanPaginator(ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, errors.Wrapf(err, "count %s", aws.ToString(in.TableName))
		}
		total += int64(page.Count)
	}
	return total, nil
}

// newestFirst sorts by a fixed-width timestamp string, descending.
func newestFirst[T any](items []T, key func(T) string) {
	sort.SliceStable(items, func(i, j int) bool { return key(items[i]) > key(items[j]) })
}

func page[T any](items []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		return lo.Slice(items, offset, len(items))
	}
	return lo.Slice(items, offset, offset+limit)
}
