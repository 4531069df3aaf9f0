package database

import (
	"context"
	"testing"

	"vip_mudancas/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdmin struct {
	existing map[string]bool
	created  []*dynamodb.CreateTableInput
}

func (f *fakeAdmin) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	if !f.existing[aws.ToString(in.TableName)] {
		return nil, &types.ResourceNotFoundException{Message: aws.String("not found")}
	}
	return &dynamodb.DescribeTableOutput{Table: &types.TableDescription{
		TableName:   in.TableName,
		TableStatus: types.TableStatusActive,
	}}, nil
}

func (f *fakeAdmin) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.created = append(f.created, in)
	f.existing[aws.ToString(in.TableName)] = true
	return &dynamodb.CreateTableOutput{}, nil
}

func testDynamoConfig() config.DynamoDBConfig {
	return config.DynamoDBConfig{
		UsersTable:          "users",
		ClientesTable:       "clientes",
		OrcamentosTable:     "orcamentos",
		UserActivitiesTable: "user_activities",
		UniqueKeysTable:     "unique_keys",
	}
}

func TestEnsureTables_CreatesMissing(t *testing.T) {
	admin := &fakeAdmin{existing: map[string]bool{"users": true, "clientes": true}}

	err := EnsureTables(context.Background(), admin, testDynamoConfig())
	require.NoError(t, err)

	require.Len(t, admin.created, 3)
	assert.Equal(t, "orcamentos", aws.ToString(admin.created[0].TableName))
	assert.Len(t, admin.created[0].GlobalSecondaryIndexes, 3)
	// id, status, cliente_id, vendedor_id, data_criacao
	assert.Len(t, admin.created[0].AttributeDefinitions, 5)
	assert.Equal(t, "unique_keys", aws.ToString(admin.created[2].TableName))
	assert.Equal(t, UniqueKeyAttr, aws.ToString(admin.created[2].KeySchema[0].AttributeName))
}

type failingAdmin struct{ fakeAdmin }

func (f *failingAdmin) DescribeTable(context.Context, *dynamodb.DescribeTableInput, ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	return nil, errors.New("access denied")
}

func TestEnsureTables_DescribeError(t *testing.T) {
	err := EnsureTables(context.Background(), &failingAdmin{}, testDynamoConfig())
	assert.ErrorContains(t, err, "access denied")
}
