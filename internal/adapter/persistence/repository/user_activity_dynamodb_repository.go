package repository

import (
	"context"
	"time"

	"vip_mudancas/internal/domain/entities"
	"vip_mudancas/internal/infrastructure/database"
	"vip_mudancas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

type userActivityItem struct {
	ID             string         `dynamodbav:"id"`
	UserID         string         `dynamodbav:"user_id"`
	Action         string         `dynamodbav:"action"`
	Description    string         `dynamodbav:"description"`
	Timestamp      string         `dynamodbav:"timestamp"`
	IPAddress      string         `dynamodbav:"ip_address,omitempty"`
	UserAgent      string         `dynamodbav:"user_agent,omitempty"`
	AdditionalData map[string]any `dynamodbav:"additional_data"`
}

// UserActivityDynamoRepository appends audit entries to DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI user_id-index (user_id, timestamp)
//   - GSI action-index (action, timestamp)
type UserActivityDynamoRepository struct {
	ddb       database.DynamoAPI
	tableName string
}

var _ interfaces.IUserActivityRepository = (*UserActivityDynamoRepository)(nil)

func NewUserActivityDynamoRepository(ddb database.DynamoAPI, tableName string) *UserActivityDynamoRepository {
	return &UserActivityDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *UserActivityDynamoRepository) Create(ctx context.Context, a entities.UserActivity) (entities.UserActivity, error) {
	av, err := attributevalue.MarshalMap(toUserActivityItem(a))
	if err != nil {
		return entities.UserActivity{}, errors.Wrap(err, "marshal user activity")
	}
	if err := createWithKeys(ctx, r.ddb, r.tableName, av, nil); err != nil {
		return entities.UserActivity{}, err
	}
	return a, nil
}

func (r *UserActivityDynamoRepository) ListByUserBetween(ctx context.Context, userID string, start, end time.Time) ([]entities.UserActivity, error) {
	items, err := queryAll[userActivityItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(database.IndexActivityUser),
		KeyConditionExpression: aws.String("#user_id = :user_id AND #ts BETWEEN :start AND :end"),
		ExpressionAttributeNames: map[string]string{
			"#user_id": "user_id",
			"#ts":      "timestamp",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
			":start":   &types.AttributeValueMemberS{Value: formatTime(start)},
			":end":     &types.AttributeValueMemberS{Value: formatTime(end)},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return fromUserActivityItems(items), nil
}

func (r *UserActivityDynamoRepository) ListByActionSince(ctx context.Context, action string, since time.Time) ([]entities.UserActivity, error) {
	items, err := queryAll[userActivityItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(database.IndexActivityAction),
		KeyConditionExpression: aws.String("#action = :action AND #ts >= :since"),
		ExpressionAttributeNames: map[string]string{
			"#action": "action",
			"#ts":     "timestamp",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":action": &types.AttributeValueMemberS{Value: action},
			":since":  &types.AttributeValueMemberS{Value: formatTime(since)},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return fromUserActivityItems(items), nil
}

// ListRecent reads the newest entries of every known action from the action
// index and merges them.
func (r *UserActivityDynamoRepository) ListRecent(ctx context.Context, limit int) ([]entities.UserActivity, error) {
	var all []userActivityItem
	for _, action := range entities.Actions {
		items, err := queryLimit[userActivityItem](ctx, r.ddb, &dynamodb.QueryInput{
			TableName:                aws.String(r.tableName),
			IndexName:                aws.String(database.IndexActivityAction),
			KeyConditionExpression:   aws.String("#action = :action"),
			ExpressionAttributeNames: map[string]string{"#action": "action"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":action": &types.AttributeValueMemberS{Value: action},
			},
			ScanIndexForward: aws.Bool(false),
			Limit:            aws.Int32(int32(limit)),
		}, limit)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
	}
	newestFirst(all, func(it userActivityItem) string { return it.Timestamp })
	return fromUserActivityItems(page(all, 0, limit)), nil
}

func toUserActivityItem(a entities.UserActivity) userActivityItem {
	data := a.AdditionalData
	if data == nil {
		data = map[string]any{}
	}
	return userActivityItem{
		ID:             a.ID,
		UserID:         a.UserID,
		Action:         a.Action,
		Description:    a.Description,
		Timestamp:      formatTime(a.Timestamp),
		IPAddress:      a.IPAddress,
		UserAgent:      a.UserAgent,
		AdditionalData: data,
	}
}

func fromUserActivityItems(items []userActivityItem) []entities.UserActivity {
	return lo.Map(items, func(it userActivityItem, _ int) entities.UserActivity {
		return entities.UserActivity{
			ID:             it.ID,
			UserID:         it.UserID,
			Action:         it.Action,
			Description:    it.Description,
			Timestamp:      parseTime(it.Timestamp),
			IPAddress:      it.IPAddress,
			UserAgent:      it.UserAgent,
			AdditionalData: it.AdditionalData,
		}
	})
}
