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

type userItem struct {
	ID           string `dynamodbav:"id"`
	CPF          string `dynamodbav:"cpf"`
	Email        string `dynamodbav:"email"`
	PasswordHash string `dynamodbav:"password_hash"`
	Name         string `dynamodbav:"name"`
	Role         string `dynamodbav:"role"`
	Active       bool   `dynamodbav:"active"`
	LastLogin    string `dynamodbav:"last_login,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// UserDynamoRepository persists User entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The CPF is unique through the unique keys table, which also resolves
// GetByCPF.
type UserDynamoRepository struct {
	ddb       database.DynamoAPI
	tableName string
	keys      uniqueKeys
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb database.DynamoAPI, tableName, uniqueKeysTable string) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		keys:      uniqueKeys{ddb: ddb, table: uniqueKeysTable},
	}
}

func cpfKey(cpf string) string {
	return uniqueKeyValue("users", "cpf", cpf)
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.User{}, errors.Wrap(err, "marshal user")
	}
	keys := []types.TransactWriteItem{r.keys.put(cpfKey(u.CPF), u.ID)}
	if err := createWithKeys(ctx, r.ddb, r.tableName, av, keys); err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	var it userItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) GetByCPF(ctx context.Context, cpf string) (entities.User, error) {
	ownerID, err := r.keys.owner(ctx, cpfKey(cpf))
	if err != nil || ownerID == "" {
		return entities.User{}, err
	}
	return r.GetByID(ctx, ownerID)
}

func (r *UserDynamoRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) (entities.User, error) {
	set := newUpdateSet()
	set.set("last_login", formatTime(at))
	set.set("updated_at", formatTime(at))
	return r.update(ctx, id, set)
}

func (r *UserDynamoRepository) UpdatePassword(ctx context.Context, id string, passwordHash string, at time.Time) (entities.User, error) {
	set := newUpdateSet()
	set.set("password_hash", passwordHash)
	set.set("updated_at", formatTime(at))
	return r.update(ctx, id, set)
}

func (r *UserDynamoRepository) update(ctx context.Context, id string, set *updateSet) (entities.User, error) {
	var it userItem
	found, err := updateItem(ctx, r.ddb, r.tableName, id, set, &it)
	if err != nil || !found {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) ListActive(ctx context.Context) ([]entities.User, error) {
	items, err := scanAll[userItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String("#active = :true"),
		ExpressionAttributeNames: map[string]string{"#active": "active"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, err
	}
	return lo.Map(items, func(it userItem, _ int) entities.User { return fromUserItem(it) }), nil
}

func toUserItem(u entities.User) userItem {
	return userItem{
		ID:           u.ID,
		CPF:          u.CPF,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		Role:         string(u.Role),
		Active:       u.Active,
		LastLogin:    formatTimePtr(u.LastLogin),
		CreatedAt:    formatTime(u.CreatedAt),
		UpdatedAt:    formatTime(u.UpdatedAt),
	}
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		ID:           it.ID,
		CPF:          it.CPF,
		Email:        it.Email,
		PasswordHash: it.PasswordHash,
		Name:         it.Name,
		Role:         entities.UserRole(it.Role),
		Active:       it.Active,
		LastLogin:    parseTimePtr(it.LastLogin),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
