package repository

import (
	"context"
	"fmt"
	"time"

	"aseguraopen/internal/domain/entities"
	"aseguraopen/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type clientDataItem struct {
	PolicyID  string `dynamodbav:"policy_id"`
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name,omitempty"`
	Email     string `dynamodbav:"email,omitempty"`
	Phone     string `dynamodbav:"phone,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ClientDataDynamoRepository persists ClientData in DynamoDB.
//
// Table requirements:
//   - PK: policy_id (string)
//
// Fields are written with if_not_exists, so concurrent writers of the same
// field cannot overwrite each other.

type ClientDataDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IClientDataRepository = (*ClientDataDynamoRepository)(nil)

func NewClientDataDynamoRepository(ddb DynamoAPI, tableName string) *ClientDataDynamoRepository {
	return &ClientDataDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ClientDataDynamoRepository) GetByPolicyID(ctx context.Context, policyID string) (entities.ClientData, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"policy_id": &types.AttributeValueMemberS{Value: policyID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ClientData{}, err
	}
	if len(out.Item) == 0 {
		return entities.ClientData{}, nil
	}
	var it clientDataItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ClientData{}, err
	}
	return fromClientDataItem(it), nil
}

func (r *ClientDataDynamoRepository) SetFieldIfAbsent(ctx context.Context, policyID string, f entities.ClientField, value string) (entities.ClientData, error) {
	switch f {
	case entities.ClientFieldName, entities.ClientFieldEmail, entities.ClientFieldPhone:
	default:
		return entities.ClientData{}, fmt.Errorf("unknown client field %q", f)
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"policy_id": &types.AttributeValueMemberS{Value: policyID},
		},
		UpdateExpression: aws.String("SET #field = if_not_exists(#field, :value), #id = if_not_exists(#id, :policy_id), " +
			"#created_at = if_not_exists(#created_at, :now), #updated_at = :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":value":     &types.AttributeValueMemberS{Value: value},
			":policy_id": &types.AttributeValueMemberS{Value: policyID},
			":now":       &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#field":      string(f),
			"#id":         "id",
			"#created_at": "created_at",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.ClientData{}, err
	}
	var it clientDataItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ClientData{}, err
	}
	return fromClientDataItem(it), nil
}

func (r *ClientDataDynamoRepository) List(ctx context.Context) ([]entities.ClientData, error) {
	items, err := scanAll[clientDataItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	out := make([]entities.ClientData, 0, len(items))
	for _, it := range items {
		out = append(out, fromClientDataItem(it))
	}
	return out, nil
}

func fromClientDataItem(it clientDataItem) entities.ClientData {
	return entities.ClientData{
		ID:        it.ID,
		PolicyID:  it.PolicyID,
		Name:      it.Name,
		Email:     it.Email,
		Phone:     it.Phone,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
