package repository

import (
	"context"
	"testing"
	"time"

	"vip_mudancas/internal/domain/entities"
	"vip_mudancas/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userAV(t *testing.T, u entities.User) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toUserItem(u))
	require.NoError(t, err)
	return av
}

func TestUserRepository_CreateReservesCPF(t *testing.T) {
	fake := &fakeDynamo{}
	repo := NewUserDynamoRepository(fake, "users", "unique_keys")

	u := entities.User{ID: "u1", CPF: "12345678900", Name: "Ana", Role: entities.UserRoleUser, Active: true}
	got, err := repo.Create(context.Background(), u)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)

	require.Len(t, fake.transacts, 1)
	items := fake.transacts[0].TransactItems
	require.Len(t, items, 2)
	assert.Equal(t, "users", aws.ToString(items[0].Put.TableName))
	assert.Equal(t, "users#cpf#12345678900", items[1].Put.Item["key"].(*types.AttributeValueMemberS).Value)
}

func TestUserRepository_CreateDuplicateCPF(t *testing.T) {
	fake := &fakeDynamo{
		transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			return nil, &types.TransactionCanceledException{CancellationReasons: []types.CancellationReason{
				{Code: aws.String("None")},
				{Code: aws.String("ConditionalCheckFailed")},
			}}
		},
	}
	repo := NewUserDynamoRepository(fake, "users", "unique_keys")

	_, err := repo.Create(context.Background(), entities.User{ID: "u1", CPF: "12345678900"})
	assert.True(t, errors.Is(err, interfaces.ErrDuplicateKey))
}

func TestUserRepository_GetByCPFResolvesOwner(t *testing.T) {
	u := entities.User{ID: "u1", CPF: "12345678900", Name: "Ana", Role: entities.UserRoleAdmin, Active: true}
	fake := &fakeDynamo{
		getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			switch aws.ToString(in.TableName) {
			case "unique_keys":
				return &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
					"key":      &types.AttributeValueMemberS{Value: "users#cpf#12345678900"},
					"owner_id": &types.AttributeValueMemberS{Value: "u1"},
				}}, nil
			default:
				return &dynamodb.GetItemOutput{Item: userAV(t, u)}, nil
			}
		},
	}
	repo := NewUserDynamoRepository(fake, "users", "unique_keys")

	got, err := repo.GetByCPF(context.Background(), "12345678900")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
	assert.True(t, got.IsAdmin())
}

func TestUserRepository_GetByCPFUnknown(t *testing.T) {
	repo := NewUserDynamoRepository(&fakeDynamo{}, "users", "unique_keys")

	got, err := repo.GetByCPF(context.Background(), "000")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestUserRepository_UpdateLastLoginMissingUser(t *testing.T) {
	fake := &fakeDynamo{
		updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		},
	}
	repo := NewUserDynamoRepository(fake, "users", "unique_keys")

	got, err := repo.UpdateLastLogin(context.Background(), "ghost", time.Now())
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestUserRepository_UpdateLastLoginReturnsNewImage(t *testing.T) {
	at := time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)
	var update *dynamodb.UpdateItemInput
	fake := &fakeDynamo{
		updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			update = in
			return &dynamodb.UpdateItemOutput{Attributes: userAV(t, entities.User{ID: "u1", LastLogin: &at})}, nil
		},
	}
	repo := NewUserDynamoRepository(fake, "users", "unique_keys")

	got, err := repo.UpdateLastLogin(context.Background(), "u1", at)
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)
	assert.True(t, at.Equal(*got.LastLogin))
	require.NotNil(t, update)
	assert.Contains(t, aws.ToString(update.UpdateExpression), "#last_login = :last_login")
}

func TestUserRepository_ListActiveFiltersInactive(t *testing.T) {
	var scanned *dynamodb.ScanInput
	fake := &fakeDynamo{
		scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			scanned = in
			return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{
				userAV(t, entities.User{ID: "u1", Active: true}),
				userAV(t, entities.User{ID: "u2", Active: true}),
			}}, nil
		},
	}
	repo := NewUserDynamoRepository(fake, "users", "unique_keys")

	got, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "#active = :true", aws.ToString(scanned.FilterExpression))
}
