package database

import (
	"context"
	"time"

	"vip_mudancas/internal/infrastructure/config"
	"vip_mudancas/internal/infrastructure/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cockroachdb/errors"
)

// Index names shared with the repositories.
const (
	IndexOrcamentoStatus   = "status-index"
	IndexOrcamentoCliente  = "cliente_id-index"
	IndexOrcamentoVendedor = "vendedor_id-index"
	IndexActivityUser      = "user_id-index"
	IndexActivityAction    = "action-index"

	// UniqueKeyAttr is the partition key of the unique_keys table.
	UniqueKeyAttr = "key"
)

// TableAdmin is the subset of the DynamoDB client needed to bootstrap tables.
type TableAdmin interface {
	DescribeTable(ctx context.Context, in *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

type gsi struct {
	name    string
	hashKey string
	sortKey string
}

type tableDef struct {
	name    string
	hashKey string
	indexes []gsi
}

// TableDefinitions lists every table the service needs, with the secondary
// indexes used for ordered queries.
func TableDefinitions(cfg config.DynamoDBConfig) []tableDef {
	return []tableDef{
		{name: cfg.UsersTable, hashKey: "id"},
		{name: cfg.ClientesTable, hashKey: "id"},
		{
			name:    cfg.OrcamentosTable,
			hashKey: "id",
			indexes: []gsi{
				{name: IndexOrcamentoStatus, hashKey: "status", sortKey: "data_criacao"},
				{name: IndexOrcamentoCliente, hashKey: "cliente_id", sortKey: "data_criacao"},
				{name: IndexOrcamentoVendedor, hashKey: "vendedor_id", sortKey: "data_criacao"},
			},
		},
		{
			name:    cfg.UserActivitiesTable,
			hashKey: "id",
			indexes: []gsi{
				{name: IndexActivityUser, hashKey: "user_id", sortKey: "timestamp"},
				{name: IndexActivityAction, hashKey: "action", sortKey: "timestamp"},
			},
		},
		{name: cfg.UniqueKeysTable, hashKey: UniqueKeyAttr},
	}
}

// EnsureTables creates the missing tables and waits until they are active.
// Existing tables are left untouched.
func EnsureTables(ctx context.Context, api TableAdmin, cfg config.DynamoDBConfig) error {
	for _, def := range TableDefinitions(cfg) {
		_, err := api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(def.name)})
		if err == nil {
			continue
		}
		var nf *types.ResourceNotFoundException
		if !errors.As(err, &nf) {
			return errors.Wrapf(err, "describe table %s", def.name)
		}

		logger.L.Infof("[database] creating table name=%s", def.name)
		if _, err := api.CreateTable(ctx, def.createInput()); err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return errors.Wrapf(err, "create table %s", def.name)
		}

		waiter := dynamodb.NewTableExistsWaiter(api)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(def.name)}, 2*time.Minute); err != nil {
			return errors.Wrapf(err, "wait table %s", def.name)
		}
	}
	return nil
}

func (d tableDef) createInput() *dynamodb.CreateTableInput {
	attrs := map[string]struct{}{d.hashKey: {}}
	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(d.name),
		BillingMode: types.BillingModePayPerRequest,
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(d.hashKey), KeyType: types.KeyTypeHash},
		},
	}

	for _, idx := range d.indexes {
		attrs[idx.hashKey] = struct{}{}
		schema := []types.KeySchemaElement{
			{AttributeName: aws.String(idx.hashKey), KeyType: types.KeyTypeHash},
		}
		if idx.sortKey != "" {
			attrs[idx.sortKey] = struct{}{}
			schema = append(schema, types.KeySchemaElement{AttributeName: aws.String(idx.sortKey), KeyType: types.KeyTypeRange})
		}
		in.GlobalSecondaryIndexes = append(in.GlobalSecondaryIndexes, types.GlobalSecondaryIndex{
			IndexName:  aws.String(idx.name),
			KeySchema:  schema,
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	for name := range attrs {
		in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(name),
			AttributeType: types.ScalarAttributeTypeS,
		})
	}
	return in
}
