package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"aseguraopen/internal/domain/entities"
	"aseguraopen/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type policyPaymentItem struct {
	PolicyID          string `dynamodbav:"policy_id"`
	ID                string `dynamodbav:"id"`
	QuotationID       string `dynamodbav:"quotation_id"`
	Amount            string `dynamodbav:"amount"`
	PreferenceID      string `dynamodbav:"preference_id,omitempty"`
	PaymentLink       string `dynamodbav:"payment_link,omitempty"`
	Status            string `dynamodbav:"payment_status"`
	ProviderPaymentID string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderPayload   string `dynamodbav:"provider_payload,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// PaymentDynamoRepository persists PolicyPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: policy_id (string)
//   - SK: id (string)

type PaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPolicyPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoAPI, tableName string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.PolicyPayment) (entities.PolicyPayment, error) {
	av, err := attributevalue.MarshalMap(toPolicyPaymentItem(p))
	if err != nil {
		return entities.PolicyPayment{}, err
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
		return entities.PolicyPayment{}, conditionFailed(err)
	}
	return p, nil
}

func (r *PaymentDynamoRepository) ListByPolicyID(ctx context.Context, policyID string) ([]entities.PolicyPayment, error) {
	items, err := queryAll[policyPaymentItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#policy_id = :policy_id"),
		ExpressionAttributeNames: map[string]string{
			"#policy_id": "policy_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":policy_id": &types.AttributeValueMemberS{Value: policyID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.PolicyPayment, 0, len(items))
	for _, it := range items {
		out = append(out, fromPolicyPaymentItem(it))
	}
	return out, nil
}

// UpdateStatus returns a zero-value payment when the record does not exist.
func (r *PaymentDynamoRepository) UpdateStatus(ctx context.Context, policyID, id string, status entities.PaymentStatus, providerPaymentID string, payload json.RawMessage) (entities.PolicyPayment, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	expr := "SET #status = :status, #provider_payment_id = :provider_payment_id, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":status":              &types.AttributeValueMemberS{Value: string(status)},
		":provider_payment_id": &types.AttributeValueMemberS{Value: providerPaymentID},
		":updated_at":          &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#status":              "payment_status",
		"#provider_payment_id": "provider_payment_id",
		"#updated_at":          "updated_at",
	}
	if len(payload) > 0 {
		expr += ", #provider_payload = :provider_payload"
		vals[":provider_payload"] = &types.AttributeValueMemberS{Value: string(payload)}
		names["#provider_payload"] = "provider_payload"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"policy_id": &types.AttributeValueMemberS{Value: policyID},
			"id":        &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PolicyPayment{}, nil
		}
		return entities.PolicyPayment{}, err
	}
	var it policyPaymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PolicyPayment{}, err
	}
	return fromPolicyPaymentItem(it), nil
}

func toPolicyPaymentItem(p entities.PolicyPayment) policyPaymentItem {
	return policyPaymentItem{
		PolicyID:          p.PolicyID,
		ID:                p.ID,
		QuotationID:       p.QuotationID,
		Amount:            floatToString(p.Amount),
		PreferenceID:      p.PreferenceID,
		PaymentLink:       p.PaymentLink,
		Status:            string(p.Status),
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderPayload:   string(p.ProviderPayload),
		CreatedAt:         formatTime(p.CreatedAt),
		UpdatedAt:         formatTime(p.UpdatedAt),
	}
}

func fromPolicyPaymentItem(it policyPaymentItem) entities.PolicyPayment {
	p := entities.PolicyPayment{
		ID:                it.ID,
		PolicyID:          it.PolicyID,
		QuotationID:       it.QuotationID,
		Amount:            parseFloat(it.Amount),
		PreferenceID:      it.PreferenceID,
		PaymentLink:       it.PaymentLink,
		Status:            entities.PaymentStatus(it.Status),
		ProviderPaymentID: it.ProviderPaymentID,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
	if it.ProviderPayload != "" {
		p.ProviderPayload = json.RawMessage(it.ProviderPayload)
	}
	return p
}
