package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"importfacil/internal/domain/entities"
	"importfacil/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDownPaymentsTableName = "down_payments"
	downPaymentsImportIDIndex    = "import_id-index"
)

type downPaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	ImportID           string                 `dynamodbav:"import_id"`
	AmountBRL          string                 `dynamodbav:"amount_brl"`
	Date               string                 `dynamodbav:"date"`
	Status             string                 `dynamodbav:"status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// DownPaymentDynamoRepository persists DownPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: import_id-index (PK: import_id)

type DownPaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDownPaymentRepository = (*DownPaymentDynamoRepository)(nil)

func NewDownPaymentDynamoRepository(ddb *dynamodb.Client) *DownPaymentDynamoRepository {
	return &DownPaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DOWN_PAYMENTS_TABLE", defaultDownPaymentsTableName),
	}
}

func (r *DownPaymentDynamoRepository) Create(ctx context.Context, p entities.DownPayment) (entities.DownPayment, error) {
	it := toDownPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.DownPayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.DownPayment{}, err
	}
	return p, nil
}

func (r *DownPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.DownPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DownPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.DownPayment{}, nil
	}

	var it downPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DownPayment{}, err
	}
	return fromDownPaymentItem(it), nil
}

func (r *DownPaymentDynamoRepository) ListByImportID(ctx context.Context, importID string) ([]entities.DownPayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(downPaymentsImportIDIndex),
		KeyConditionExpression: aws.String("import_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: importID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.DownPayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it downPaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromDownPaymentItem(it))
	}
	return items, nil
}

func toDownPaymentItem(p entities.DownPayment) downPaymentItem {
	return downPaymentItem{
		ID:                 p.ID,
		ImportID:           p.ImportID,
		AmountBRL:          floatToString(p.AmountBRL),
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		Status:             string(p.Status),
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromDownPaymentItem(it downPaymentItem) entities.DownPayment {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	amount, _ := strconv.ParseFloat(it.AmountBRL, 64)
	var raw json.RawMessage
	if it.ProviderPayloadRaw != "" {
		raw = json.RawMessage(it.ProviderPayloadRaw)
	}
	return entities.DownPayment{
		ID:                 it.ID,
		ImportID:           it.ImportID,
		AmountBRL:          amount,
		Date:               date,
		Status:             entities.PaymentStatus(it.Status),
		ProviderPayloadRaw: raw,
		ProviderPayload:    it.ProviderPayload,
	}
}
