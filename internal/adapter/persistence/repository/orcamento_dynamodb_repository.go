package repository

import (
	"context"
	"sort"
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
	"github.com/shopspring/decimal"
)

type orcamentoItem struct {
	ID              string `dynamodbav:"id"`
	NumeroOrcamento string `dynamodbav:"numero_orcamento"`

	ClienteID       string `dynamodbav:"cliente_id,omitempty"`
	ClienteNome     string `dynamodbav:"cliente_nome"`
	ClienteEmail    string `dynamodbav:"cliente_email"`
	ClienteTelefone string `dynamodbav:"cliente_telefone"`

	EnderecoOrigem  map[string]any `dynamodbav:"endereco_origem"`
	EnderecoDestino map[string]any `dynamodbav:"endereco_destino"`

	TipoMudanca string `dynamodbav:"tipo_mudanca"`
	DataMudanca string `dynamodbav:"data_mudanca,omitempty"`
	DataVisita  string `dynamodbav:"data_visita,omitempty"`

	Itens              []map[string]any `dynamodbav:"itens"`
	ServicosAdicionais []any            `dynamodbav:"servicos_adicionais"`

	ValorTotal float64 `dynamodbav:"valor_total"`
	Desconto   float64 `dynamodbav:"desconto"`
	ValorFinal float64 `dynamodbav:"valor_final"`

	Observacoes   string `dynamodbav:"observacoes"`
	Status        string `dynamodbav:"status"`
	Validade      string `dynamodbav:"validade,omitempty"`
	PerfilCliente string `dynamodbav:"perfil_cliente,omitempty"`

	VendedorID   string `dynamodbav:"vendedor_id,omitempty"`
	VendedorNome string `dynamodbav:"vendedor_nome"`

	DataCriacao     string `dynamodbav:"data_criacao"`
	DataAtualizacao string `dynamodbav:"data_atualizacao"`
}

// OrcamentoDynamoRepository persists Orcamento entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSIs status-index, cliente_id-index and vendedor_id-index, all sorted
//     by data_criacao
//
// numero_orcamento uniqueness is held by an item in the unique keys table,
// which also serves the lookup by number.
type OrcamentoDynamoRepository struct {
	ddb       database.DynamoAPI
	tableName string
	keys      uniqueKeys
}

var _ interfaces.IOrcamentoRepository = (*OrcamentoDynamoRepository)(nil)

func NewOrcamentoDynamoRepository(ddb database.DynamoAPI, tableName, uniqueKeysTable string) *OrcamentoDynamoRepository {
	return &OrcamentoDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		keys:      uniqueKeys{ddb: ddb, table: uniqueKeysTable},
	}
}

func numeroKey(numero string) string {
	return uniqueKeyValue("orcamentos", "numero_orcamento", numero)
}

func (r *OrcamentoDynamoRepository) Create(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error) {
	av, err := attributevalue.MarshalMap(toOrcamentoItem(o))
	if err != nil {
		return entities.Orcamento{}, errors.Wrap(err, "marshal orcamento")
	}
	keys := []types.TransactWriteItem{r.keys.put(numeroKey(o.NumeroOrcamento), o.ID)}
	if err := createWithKeys(ctx, r.ddb, r.tableName, av, keys); err != nil {
		return entities.Orcamento{}, err
	}
	return o, nil
}

func (r *OrcamentoDynamoRepository) GetByID(ctx context.Context, id string) (entities.Orcamento, error) {
	var it orcamentoItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Orcamento{}, err
	}
	return fromOrcamentoItem(it), nil
}

func (r *OrcamentoDynamoRepository) GetByNumero(ctx context.Context, numero string) (entities.Orcamento, error) {
	ownerID, err := r.keys.owner(ctx, numeroKey(numero))
	if err != nil || ownerID == "" {
		return entities.Orcamento{}, err
	}
	return r.GetByID(ctx, ownerID)
}

func (r *OrcamentoDynamoRepository) Update(ctx context.Context, id string, c entities.OrcamentoChanges) (entities.Orcamento, error) {
	set := newUpdateSet()
	if c.ClienteNome != nil {
		set.set("cliente_nome", *c.ClienteNome)
	}
	if c.ClienteEmail != nil {
		set.set("cliente_email", *c.ClienteEmail)
	}
	if c.ClienteTelefone != nil {
		set.set("cliente_telefone", *c.ClienteTelefone)
	}
	if c.EnderecoOrigem != nil {
		set.set("endereco_origem", c.EnderecoOrigem)
	}
	if c.EnderecoDestino != nil {
		set.set("endereco_destino", c.EnderecoDestino)
	}
	if c.TipoMudanca != nil {
		set.set("tipo_mudanca", string(*c.TipoMudanca))
	}
	if c.DataMudanca != nil {
		set.set("data_mudanca", formatDataFlexivel(*c.DataMudanca))
	}
	if c.DataVisita != nil {
		set.set("data_visita", formatDataFlexivel(*c.DataVisita))
	}
	if c.Itens != nil {
		set.set("itens", c.Itens)
	}
	if c.ServicosAdicionais != nil {
		set.set("servicos_adicionais", c.ServicosAdicionais)
	}
	if c.ValorTotal != nil {
		set.set("valor_total", *c.ValorTotal)
	}
	if c.Desconto != nil {
		set.set("desconto", *c.Desconto)
	}
	if c.ValorFinal != nil {
		set.set("valor_final", *c.ValorFinal)
	}
	if c.Observacoes != nil {
		set.set("observacoes", *c.Observacoes)
	}
	if c.Status != nil {
		set.set("status", string(*c.Status))
	}
	if c.Validade != nil {
		set.set("validade", formatTime(*c.Validade))
	}
	if c.PerfilCliente != nil {
		set.set("perfil_cliente", *c.PerfilCliente)
	}
	set.set("data_atualizacao", formatTime(c.DataAtualizacao))

	var it orcamentoItem
	found, err := updateItem(ctx, r.ddb, r.tableName, id, set, &it)
	if err != nil || !found {
		return entities.Orcamento{}, err
	}
	return fromOrcamentoItem(it), nil
}

// Delete removes the quote and releases its number.
func (r *OrcamentoDynamoRepository) Delete(ctx context.Context, o entities.Orcamento) error {
	items := []types.TransactWriteItem{
		{Delete: &types.Delete{
			TableName: aws.String(r.tableName),
			Key:       idKey(o.ID),
		}},
	}
	if o.NumeroOrcamento != "" {
		items = append(items, r.keys.delete(numeroKey(o.NumeroOrcamento)))
	}
	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	return errors.Wrapf(err, "delete orcamento id=%s", o.ID)
}

func (r *OrcamentoDynamoRepository) List(ctx context.Context, f interfaces.OrcamentoFilter) ([]entities.Orcamento, error) {
	if f.Status != "" {
		items, err := queryLimit[orcamentoItem](ctx, r.ddb, r.byIndex(database.IndexOrcamentoStatus, "status", string(f.Status)), f.Offset+f.Limit)
		if err != nil {
			return nil, err
		}
		return fromOrcamentoItems(page(items, f.Offset, f.Limit)), nil
	}

	items, err := scanAll[orcamentoItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	newestFirst(items, func(it orcamentoItem) string { return it.DataCriacao })
	return fromOrcamentoItems(page(items, f.Offset, f.Limit)), nil
}

func (r *OrcamentoDynamoRepository) ListByCliente(ctx context.Context, clienteID string) ([]entities.Orcamento, error) {
	items, err := queryAll[orcamentoItem](ctx, r.ddb, r.byIndex(database.IndexOrcamentoCliente, "cliente_id", clienteID))
	if err != nil {
		return nil, err
	}
	return fromOrcamentoItems(items), nil
}

func (r *OrcamentoDynamoRepository) ListByVendedor(ctx context.Context, vendedorID string) ([]entities.Orcamento, error) {
	items, err := queryAll[orcamentoItem](ctx, r.ddb, r.byIndex(database.IndexOrcamentoVendedor, "vendedor_id", vendedorID))
	if err != nil {
		return nil, err
	}
	return fromOrcamentoItems(items), nil
}

// ListAgendados returns up to limit quotes carrying the given date, soonest
// first.
func (r *OrcamentoDynamoRepository) ListAgendados(ctx context.Context, campo interfaces.CampoAgenda, limit int) ([]entities.Orcamento, error) {
	items, err := scanAll[orcamentoItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String("attribute_exists(#campo)"),
		ExpressionAttributeNames: map[string]string{"#campo": string(campo)},
	})
	if err != nil {
		return nil, err
	}
	key := func(it orcamentoItem) string { return it.DataVisita }
	if campo == interfaces.CampoDataMudanca {
		key = func(it orcamentoItem) string { return it.DataMudanca }
	}
	sort.SliceStable(items, func(i, j int) bool { return key(items[i]) < key(items[j]) })
	return fromOrcamentoItems(page(items, 0, limit)), nil
}

func (r *OrcamentoDynamoRepository) Count(ctx context.Context, status entities.OrcamentoStatus) (int64, error) {
	if status == "" {
		return countScan(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	}
	return countQuery(ctx, r.ddb, r.byIndex(database.IndexOrcamentoStatus, "status", string(status)))
}

func (r *OrcamentoDynamoRepository) CountPendentesAntesDe(ctx context.Context, before time.Time) (int64, error) {
	return countQuery(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(database.IndexOrcamentoStatus),
		KeyConditionExpression: aws.String("#status = :status AND #data_criacao < :before"),
		ExpressionAttributeNames: map[string]string{
			"#status":       "status",
			"#data_criacao": "data_criacao",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(entities.OrcamentoStatusPendente)},
			":before": &types.AttributeValueMemberS{Value: formatTime(before)},
		},
	})
}

func (r *OrcamentoDynamoRepository) SumValorFinal(ctx context.Context, status entities.OrcamentoStatus) (float64, error) {
	in := r.byIndex(database.IndexOrcamentoStatus, "status", string(status))
	in.ProjectionExpression = aws.String("#valor_final")
	in.ExpressionAttributeNames["#valor_final"] = "valor_final"

	items, err := queryAll[orcamentoItem](ctx, r.ddb, in)
	if err != nil {
		return 0, err
	}
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(decimal.NewFromFloat(it.ValorFinal))
	}
	return sum.InexactFloat64(), nil
}

// byIndex queries one of the data_criacao-sorted indexes, newest first.
func (r *OrcamentoDynamoRepository) byIndex(index, attr, value string) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		IndexName:                aws.String(index),
		KeyConditionExpression:   aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{"#k": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		ScanIndexForward: aws.Bool(false),
	}
}

func formatDataFlexivel(d entities.DataFlexivel) string {
	if d.Time != nil {
		return formatTime(*d.Time)
	}
	return d.Raw
}

func parseDataFlexivel(s string) entities.DataFlexivel {
	if s == "" {
		return entities.DataFlexivel{}
	}
	return entities.NewDataFlexivel(s)
}

func toOrcamentoItem(o entities.Orcamento) orcamentoItem {
	return orcamentoItem{
		ID:                 o.ID,
		NumeroOrcamento:    o.NumeroOrcamento,
		ClienteID:          o.ClienteID,
		ClienteNome:        o.ClienteNome,
		ClienteEmail:       o.ClienteEmail,
		ClienteTelefone:    o.ClienteTelefone,
		EnderecoOrigem:     o.EnderecoOrigem,
		EnderecoDestino:    o.EnderecoDestino,
		TipoMudanca:        string(o.TipoMudanca),
		DataMudanca:        formatDataFlexivel(o.DataMudanca),
		DataVisita:         formatDataFlexivel(o.DataVisita),
		Itens:              o.Itens,
		ServicosAdicionais: o.ServicosAdicionais,
		ValorTotal:         o.ValorTotal,
		Desconto:           o.Desconto,
		ValorFinal:         o.ValorFinal,
		Observacoes:        o.Observacoes,
		Status:             string(o.Status),
		Validade:           formatTimePtr(o.Validade),
		PerfilCliente:      o.PerfilCliente,
		VendedorID:         o.VendedorID,
		VendedorNome:       o.VendedorNome,
		DataCriacao:        formatTime(o.DataCriacao),
		DataAtualizacao:    formatTime(o.DataAtualizacao),
	}
}

func fromOrcamentoItem(it orcamentoItem) entities.Orcamento {
	return entities.Orcamento{
		ID:                 it.ID,
		NumeroOrcamento:    it.NumeroOrcamento,
		ClienteID:          it.ClienteID,
		ClienteNome:        it.ClienteNome,
		ClienteEmail:       it.ClienteEmail,
		ClienteTelefone:    it.ClienteTelefone,
		EnderecoOrigem:     it.EnderecoOrigem,
		EnderecoDestino:    it.EnderecoDestino,
		TipoMudanca:        entities.TipoMudanca(it.TipoMudanca),
		DataMudanca:        parseDataFlexivel(it.DataMudanca),
		DataVisita:         parseDataFlexivel(it.DataVisita),
		Itens:              it.Itens,
		ServicosAdicionais: it.ServicosAdicionais,
		ValorTotal:         it.ValorTotal,
		Desconto:           it.Desconto,
		ValorFinal:         it.ValorFinal,
		Observacoes:        it.Observacoes,
		Status:             entities.OrcamentoStatus(it.Status),
		Validade:           parseTimePtr(it.Validade),
		PerfilCliente:      it.PerfilCliente,
		VendedorID:         it.VendedorID,
		VendedorNome:       it.VendedorNome,
		DataCriacao:        parseTime(it.DataCriacao),
		DataAtualizacao:    parseTime(it.DataAtualizacao),
	}
}

func fromOrcamentoItems(items []orcamentoItem) []entities.Orcamento {
	return lo.Map(items, func(it orcamentoItem, _ int) entities.Orcamento { return fromOrcamentoItem(it) })
}
