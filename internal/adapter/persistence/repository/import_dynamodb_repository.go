package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"importfacil/internal/domain/entities"
	"importfacil/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultImportsTableName = "imports"

type importItem struct {
	ID             string `dynamodbav:"id"`
	ClientID       string `dynamodbav:"client_id"`
	ShippingMethod string `dynamodbav:"shipping_method"`
	Incoterm       string `dynamodbav:"incoterm"`
	Status         string `dynamodbav:"status"`
	Financials     string `dynamodbav:"financials"`
	FinancedAmount string `dynamodbav:"financed_amount_brl"`
	DownPayment    string `dynamodbav:"down_payment_brl"`
	Pipeline       string `dynamodbav:"pipeline"`
	Version        int64  `dynamodbav:"version"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// ImportDynamoRepository persists Import aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Financials and pipeline state are stored as JSON documents; version is a
// plain number so pipeline writes can condition on it.

type ImportDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IImportRepository = (*ImportDynamoRepository)(nil)

func NewImportDynamoRepository(ddb *dynamodb.Client) *ImportDynamoRepository {
	return &ImportDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("IMPORTS_TABLE", defaultImportsTableName),
	}
}

func (r *ImportDynamoRepository) Create(ctx context.Context, imp entities.Import) (entities.Import, error) {
	it, err := toImportItem(imp)
	if err != nil {
		return entities.Import{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Import{}, err
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
		return entities.Import{}, err
	}
	return imp, nil
}

func (r *ImportDynamoRepository) GetByID(ctx context.Context, id string) (entities.Import, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Import{}, err
	}
	if len(out.Item) == 0 {
		return entities.Import{}, nil
	}

	var it importItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Import{}, err
	}
	return fromImportItem(it), nil
}

// UpdatePipeline writes the new pipeline state only if the stored version
// still matches the one the caller read. A failed condition returns a zero
// Import so the use case can surface the conflict.
func (r *ImportDynamoRepository) UpdatePipeline(ctx context.Context, id string, expectedVersion int64, state entities.ImportPipelineState) (entities.Import, error) {
	pipelineJSON, err := json.Marshal(state)
	if err != nil {
		return entities.Import{}, err
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		UpdateExpression:    aws.String("SET #pipeline = :pipeline, #version = :next, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#pipeline":   "pipeline",
			"#version":    "version",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":   &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
			":next":       &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion+1, 10)},
			":pipeline":   &types.AttributeValueMemberS{Value: string(pipelineJSON)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Import{}, nil
		}
		return entities.Import{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Import{}, nil
	}

	var it importItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Import{}, err
	}
	return fromImportItem(it), nil
}

func (r *ImportDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.ImportStatus) (entities.Import, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Import{}, nil
		}
		return entities.Import{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Import{}, nil
	}

	var it importItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Import{}, err
	}
	return fromImportItem(it), nil
}

func toImportItem(imp entities.Import) (importItem, error) {
	financialsJSON, err := json.Marshal(imp.Financials)
	if err != nil {
		return importItem{}, err
	}
	pipelineJSON, err := json.Marshal(imp.Pipeline)
	if err != nil {
		return importItem{}, err
	}
	return importItem{
		ID:             imp.ID,
		ClientID:       imp.ClientID,
		ShippingMethod: string(imp.ShippingMethod),
		Incoterm:       string(imp.Incoterm),
		Status:         string(imp.Status),
		Financials:     string(financialsJSON),
		FinancedAmount: floatToString(imp.FinancedAmountBRL),
		DownPayment:    floatToString(imp.DownPaymentBRL),
		Pipeline:       string(pipelineJSON),
		Version:        imp.Version,
		CreatedAt:      imp.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      imp.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromImportItem(it importItem) entities.Import {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	financed, _ := strconv.ParseFloat(it.FinancedAmount, 64)
	downPayment, _ := strconv.ParseFloat(it.DownPayment, 64)

	var financials entities.ImportFinancials
	_ = json.Unmarshal([]byte(it.Financials), &financials)
	var pipeline entities.ImportPipelineState
	_ = json.Unmarshal([]byte(it.Pipeline), &pipeline)

	return entities.Import{
		ID:                it.ID,
		ClientID:          it.ClientID,
		ShippingMethod:    entities.ShippingMethod(it.ShippingMethod),
		Incoterm:          entities.Incoterm(it.Incoterm),
		Status:            entities.ImportStatus(it.Status),
		Financials:        financials,
		FinancedAmountBRL: financed,
		DownPaymentBRL:    downPayment,
		Pipeline:          pipeline,
		Version:           it.Version,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}
