package repository

import (
	"context"
	"strings"

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

type clienteItem struct {
	ID            string         `dynamodbav:"id"`
	Nome          string         `dynamodbav:"nome"`
	Email         string         `dynamodbav:"email"`
	Telefone      string         `dynamodbav:"telefone"`
	CPFCNPJ       string         `dynamodbav:"cpf_cnpj,omitempty"`
	Endereco      map[string]any `dynamodbav:"endereco"`
	Status        string         `dynamodbav:"status"`
	Fonte         string         `dynamodbav:"fonte"`
	Justificativa string         `dynamodbav:"justificativa"`
	Perfil        string         `dynamodbav:"perfil"`
	Empresa       string         `dynamodbav:"empresa"`
	Observacoes   string         `dynamodbav:"observacoes"`
	Ativo         bool           `dynamodbav:"ativo"`

	DataCriacao     string `dynamodbav:"data_criacao"`
	DataAtualizacao string `dynamodbav:"data_atualizacao"`
}

// ClienteDynamoRepository persists Cliente entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// cpf_cnpj, when present, is unique through the unique keys table. Changing
// it swaps the key in the same transaction as the update.
type ClienteDynamoRepository struct {
	ddb       database.DynamoAPI
	tableName string
	keys      uniqueKeys
}

var _ interfaces.IClienteRepository = (*ClienteDynamoRepository)(nil)

func NewClienteDynamoRepository(ddb database.DynamoAPI, tableName, uniqueKeysTable string) *ClienteDynamoRepository {
	return &ClienteDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		keys:      uniqueKeys{ddb: ddb, table: uniqueKeysTable},
	}
}

func cpfCnpjKey(doc string) string {
	return uniqueKeyValue("clientes", "cpf_cnpj", doc)
}

func (r *ClienteDynamoRepository) Create(ctx context.Context, c entities.Cliente) (entities.Cliente, error) {
	av, err := attributevalue.MarshalMap(toClienteItem(c))
	if err != nil {
		return entities.Cliente{}, errors.Wrap(err, "marshal cliente")
	}
	var keys []types.TransactWriteItem
	if c.CPFCNPJ != "" {
		keys = append(keys, r.keys.put(cpfCnpjKey(c.CPFCNPJ), c.ID))
	}
	if err := createWithKeys(ctx, r.ddb, r.tableName, av, keys); err != nil {
		return entities.Cliente{}, err
	}
	return c, nil
}

func (r *ClienteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Cliente, error) {
	var it clienteItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Cliente{}, err
	}
	return fromClienteItem(it), nil
}

func (r *ClienteDynamoRepository) Update(ctx context.Context, id string, c entities.ClienteChanges) (entities.Cliente, error) {
	set := newUpdateSet()
	if c.Nome != nil {
		set.set("nome", *c.Nome)
	}
	if c.Email != nil {
		set.set("email", *c.Email)
	}
	if c.Telefone != nil {
		set.set("telefone", *c.Telefone)
	}
	if c.Endereco != nil {
		set.set("endereco", c.Endereco)
	}
	if c.Status != nil {
		set.set("status", *c.Status)
	}
	if c.Fonte != nil {
		set.set("fonte", *c.Fonte)
	}
	if c.Justificativa != nil {
		set.set("justificativa", *c.Justificativa)
	}
	if c.Perfil != nil {
		set.set("perfil", *c.Perfil)
	}
	if c.Empresa != nil {
		set.set("empresa", *c.Empresa)
	}
	if c.Observacoes != nil {
		set.set("observacoes", *c.Observacoes)
	}
	if c.Ativo != nil {
		set.set("ativo", *c.Ativo)
	}
	set.set("data_atualizacao", formatTime(c.DataAtualizacao))

	if c.CPFCNPJ == nil {
		var it clienteItem
		found, err := updateItem(ctx, r.ddb, r.tableName, id, set, &it)
		if err != nil || !found {
			return entities.Cliente{}, err
		}
		return fromClienteItem(it), nil
	}
	return r.updateDocumento(ctx, id, *c.CPFCNPJ, set)
}

// updateDocumento applies set and moves the cpf_cnpj unique key atomically.
func (r *ClienteDynamoRepository) updateDocumento(ctx context.Context, id, doc string, set *updateSet) (entities.Cliente, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil || current.ID == "" {
		return entities.Cliente{}, err
	}
	set.set("cpf_cnpj", doc)
	if set.err != nil {
		return entities.Cliente{}, set.err
	}

	items := []types.TransactWriteItem{set.transactUpdate(r.tableName, id)}
	if doc != current.CPFCNPJ {
		if current.CPFCNPJ != "" {
			items = append(items, r.keys.delete(cpfCnpjKey(current.CPFCNPJ)))
		}
		if doc != "" {
			items = append(items, r.keys.put(cpfCnpjKey(doc), id))
		}
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		failed := failedConditions(err)
		switch {
		case lo.Contains(failed, 0):
			return entities.Cliente{}, nil
		case len(failed) > 0:
			return entities.Cliente{}, errors.Mark(errors.Wrap(err, "update cliente"), interfaces.ErrDuplicateKey)
		}
		return entities.Cliente{}, errors.Wrapf(err, "update cliente id=%s", id)
	}
	return r.GetByID(ctx, id)
}

// List scans active clients; the text query is matched in memory so that it
// is case-insensitive across all four fields.
func (r *ClienteDynamoRepository) List(ctx context.Context, f interfaces.ClienteFilter) ([]entities.Cliente, error) {
	filter := "#ativo = :true"
	names := map[string]string{"#ativo": "ativo"}
	values := map[string]types.AttributeValue{":true": &types.AttributeValueMemberBOOL{Value: true}}
	if f.Status != "" {
		filter += " AND #status = :status"
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: f.Status}
	}

	items, err := scanAll[clienteItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String(filter),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return nil, err
	}

	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		items = lo.Filter(items, func(it clienteItem, _ int) bool {
			return lo.SomeBy([]string{it.Nome, it.Email, it.Telefone, it.Empresa}, func(v string) bool {
				return strings.Contains(strings.ToLower(v), q)
			})
		})
	}
	newestFirst(items, func(it clienteItem) string { return it.DataCriacao })
	return lo.Map(page(items, f.Offset, f.Limit), func(it clienteItem, _ int) entities.Cliente {
		return fromClienteItem(it)
	}), nil
}

func (r *ClienteDynamoRepository) CountActive(ctx context.Context) (int64, error) {
	return countScan(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String("#ativo = :true"),
		ExpressionAttributeNames: map[string]string{"#ativo": "ativo"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
}

func toClienteItem(c entities.Cliente) clienteItem {
	return clienteItem{
		ID:              c.ID,
		Nome:            c.Nome,
		Email:           c.Email,
		Telefone:        c.Telefone,
		CPFCNPJ:         c.CPFCNPJ,
		Endereco:        c.Endereco,
		Status:          c.Status,
		Fonte:           c.Fonte,
		Justificativa:   c.Justificativa,
		Perfil:          c.Perfil,
		Empresa:         c.Empresa,
		Observacoes:     c.Observacoes,
		Ativo:           c.Ativo,
		DataCriacao:     formatTime(c.DataCriacao),
		DataAtualizacao: formatTime(c.DataAtualizacao),
	}
}

func fromClienteItem(it clienteItem) entities.Cliente {
	return entities.Cliente{
		ID:              it.ID,
		Nome:            it.Nome,
		Email:           it.Email,
		Telefone:        it.Telefone,
		CPFCNPJ:         it.CPFCNPJ,
		Endereco:        it.Endereco,
		Status:          it.Status,
		Fonte:           it.Fonte,
		Justificativa:   it.Justificativa,
		Perfil:          it.Perfil,
		Empresa:         it.Empresa,
		Observacoes:     it.Observacoes,
		Ativo:           it.Ativo,
		DataCriacao:     parseTime(it.DataCriacao),
		DataAtualizacao: parseTime(it.DataAtualizacao),
	}
}
