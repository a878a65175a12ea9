package repository

import (
	"context"

	"aseguraopen/internal/domain/entities"
	"aseguraopen/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type vehicleDataItem struct {
	PolicyID           string `dynamodbav:"policy_id"`
	ID                 string `dynamodbav:"id"`
	Plate              string `dynamodbav:"plate"`
	Make               string `dynamodbav:"make,omitempty"`
	Model              string `dynamodbav:"model,omitempty"`
	Year               int    `dynamodbav:"year,omitempty"`
	EngineNumber       string `dynamodbav:"engine_number,omitempty"`
	ChassisNumber      string `dynamodbav:"chassis_number,omitempty"`
	EngineDisplacement int    `dynamodbav:"engine_displacement,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// VehicleDataDynamoRepository persists VehicleData in DynamoDB.
//
// Table requirements:
//   - PK: policy_id (string)

type VehicleDataDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IVehicleDataRepository = (*VehicleDataDynamoRepository)(nil)

func NewVehicleDataDynamoRepository(ddb DynamoAPI, tableName string) *VehicleDataDynamoRepository {
	return &VehicleDataDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *VehicleDataDynamoRepository) GetByPolicyID(ctx context.Context, policyID string) (entities.VehicleData, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"policy_id": &types.AttributeValueMemberS{Value: policyID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.VehicleData{}, err
	}
	if len(out.Item) == 0 {
		return entities.VehicleData{}, nil
	}
	var it vehicleDataItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.VehicleData{}, err
	}
	return fromVehicleDataItem(it), nil
}

// Save writes v, refusing to replace a record that carries another vehicle id.
func (r *VehicleDataDynamoRepository) Save(ctx context.Context, v entities.VehicleData) (entities.VehicleData, error) {
	av, err := attributevalue.MarshalMap(toVehicleDataItem(v))
	if err != nil {
		return entities.VehicleData{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#policy_id) OR #id = :id"),
		ExpressionAttributeNames: map[string]string{
			"#policy_id": "policy_id",
			"#id":        "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: v.ID},
		},
	})
	if err != nil {
		return entities.VehicleData{}, conditionFailed(err)
	}
	return v, nil
}

func (r *VehicleDataDynamoRepository) List(ctx context.Context) ([]entities.VehicleData, error) {
	items, err := scanAll[vehicleDataItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	out := make([]entities.VehicleData, 0, len(items))
	for _, it := range items {
		out = append(out, fromVehicleDataItem(it))
	}
	return out, nil
}

func toVehicleDataItem(v entities.VehicleData) vehicleDataItem {
	return vehicleDataItem{
		PolicyID:           v.PolicyID,
		ID:                 v.ID,
		Plate:              v.Plate,
		Make:               v.Make,
		Model:              v.Model,
		Year:               v.Year,
		EngineNumber:       v.EngineNumber,
		ChassisNumber:      v.ChassisNumber,
		EngineDisplacement: v.EngineDisplacement,
		CreatedAt:          formatTime(v.CreatedAt),
		UpdatedAt:          formatTime(v.UpdatedAt),
	}
}

func fromVehicleDataItem(it vehicleDataItem) entities.VehicleData {
	return entities.VehicleData{
		ID:                 it.ID,
		PolicyID:           it.PolicyID,
		Plate:              it.Plate,
		Make:               it.Make,
		Model:              it.Model,
		Year:               it.Year,
		EngineNumber:       it.EngineNumber,
		ChassisNumber:      it.ChassisNumber,
		EngineDisplacement: it.EngineDisplacement,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}
