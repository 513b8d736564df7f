package repository

import (
	"context"
	"errors"
	"time"

	"importfacil/internal/domain/entities"
	"importfacil/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultCreditTableName = "credit_applications"

type creditItem struct {
	ClientID           string  `dynamodbav:"client_id"`
	ApprovedLimit      float64 `dynamodbav:"approved_limit"`
	UsedAmount         float64 `dynamodbav:"used_amount"`
	DownPaymentPercent float64 `dynamodbav:"down_payment_percent"`
	AdminFeePercent    float64 `dynamodbav:"admin_fee_percent"`
	UpdatedAt          string  `dynamodbav:"updated_at,omitempty"`
}

// CreditDynamoRepository reads and reserves against credit applications in
// DynamoDB.
//
// Table requirements:
//   - PK: client_id (string)
//
// used_amount is a number attribute so reservations can condition on the
// exact value the caller read.

type CreditDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICreditRepository = (*CreditDynamoRepository)(nil)

func NewCreditDynamoRepository(ddb *dynamodb.Client) *CreditDynamoRepository {
	return &CreditDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CREDIT_APPLICATIONS_TABLE", defaultCreditTableName),
	}
}

func (r *CreditDynamoRepository) GetByClientID(ctx context.Context, clientID string) (entities.CreditSnapshot, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"client_id": &types.AttributeValueMemberS{Value: clientID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CreditSnapshot{}, err
	}
	if len(out.Item) == 0 {
		return entities.CreditSnapshot{}, nil
	}

	var it creditItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CreditSnapshot{}, err
	}
	return fromCreditItem(it), nil
}

// ReserveCredit adds amount to used_amount only if used_amount still equals
// the value the caller read. A failed condition returns a zero snapshot.
func (r *CreditDynamoRepository) ReserveCredit(ctx context.Context, clientID string, amount, expectedUsed float64) (entities.CreditSnapshot, error) {
	next := decimal.NewFromFloat(expectedUsed).Add(decimal.NewFromFloat(amount)).Round(2).InexactFloat64()
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"client_id": &types.AttributeValueMemberS{Value: clientID},
		},
		ConditionExpression: aws.String("attribute_exists(#cid) AND #used = :expected"),
		UpdateExpression:    aws.String("SET #used = :next, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#cid":        "client_id",
			"#used":       "used_amount",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":   &types.AttributeValueMemberN{Value: floatToString(expectedUsed)},
			":next":       &types.AttributeValueMemberN{Value: floatToString(next)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.CreditSnapshot{}, nil
		}
		return entities.CreditSnapshot{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.CreditSnapshot{}, nil
	}

	var it creditItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.CreditSnapshot{}, err
	}
	return fromCreditItem(it), nil
}

func fromCreditItem(it creditItem) entities.CreditSnapshot {
	return entities.CreditSnapshot{
		ClientID:           it.ClientID,
		ApprovedLimit:      it.ApprovedLimit,
		UsedAmount:         it.UsedAmount,
		DownPaymentPercent: it.DownPaymentPercent,
		AdminFeePercent:    it.AdminFeePercent,
	}
}
