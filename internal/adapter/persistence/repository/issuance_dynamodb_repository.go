package repository

import (
	"context"
	"encoding/json"

	"aseguraopen/internal/domain/entities"
	"aseguraopen/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type issuanceItem struct {
	PolicyID          string `dynamodbav:"policy_id"`
	ExternalReference string `dynamodbav:"external_reference"`
	SentTo            string `dynamodbav:"sent_to,omitempty"`
	IssuerResponse    string `dynamodbav:"issuer_response,omitempty"`
	IssuedAt          string `dynamodbav:"issued_at"`
}

// IssuanceDynamoRepository persists issuer receipts.
//
// Table requirements:
//   - PK: policy_id (string)

type IssuanceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPolicyIssuanceRepository = (*IssuanceDynamoRepository)(nil)

func NewIssuanceDynamoRepository(ddb DynamoAPI, tableName string) *IssuanceDynamoRepository {
	return &IssuanceDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *IssuanceDynamoRepository) Create(ctx context.Context, i entities.PolicyIssuance) (entities.PolicyIssuance, error) {
	av, err := attributevalue.MarshalMap(issuanceItem{
		PolicyID:          i.PolicyID,
		ExternalReference: i.ExternalReference,
		SentTo:            i.SentTo,
		IssuerResponse:    string(i.IssuerResponse),
		IssuedAt:          formatTime(i.IssuedAt),
	})
	if err != nil {
		return entities.PolicyIssuance{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#policy_id)"),
		ExpressionAttributeNames: map[string]string{
			"#policy_id": "policy_id",
		},
	})
	if err != nil {
		return entities.PolicyIssuance{}, conditionFailed(err)
	}
	return i, nil
}

func (r *IssuanceDynamoRepository) GetByPolicyID(ctx context.Context, policyID string) (entities.PolicyIssuance, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"policy_id": &types.AttributeValueMemberS{Value: policyID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PolicyIssuance{}, err
	}
	if len(out.Item) == 0 {
		return entities.PolicyIssuance{}, nil
	}
	var it issuanceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PolicyIssuance{}, err
	}
	i := entities.PolicyIssuance{
		PolicyID:          it.PolicyID,
		ExternalReference: it.ExternalReference,
		SentTo:            it.SentTo,
		IssuedAt:          parseTime(it.IssuedAt),
	}
	if it.IssuerResponse != "" {
		i.IssuerResponse = json.RawMessage(it.IssuerResponse)
	}
	return i, nil
}
