package repository

import (
	"context"
	"errors"

	"aseguraopen/internal/domain/entities"
	"aseguraopen/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type templateItem struct {
	InsuranceType      string `dynamodbav:"insurance_type"`
	ID                 string `dynamodbav:"id"`
	CoverageType       string `dynamodbav:"coverage_type"`
	CoverageLevel      string `dynamodbav:"coverage_level"`
	BaseMonthlyPremium string `dynamodbav:"base_monthly_premium"`
	Deductible         string `dynamodbav:"deductible"`
	CreatedAt          string `dynamodbav:"created_at"`
}

// TemplateDynamoRepository persists the quotation template catalog.
//
// Table requirements:
//   - PK: insurance_type (string)
//   - SK: id (string)

type TemplateDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ITemplateRepository = (*TemplateDynamoRepository)(nil)

func NewTemplateDynamoRepository(ddb DynamoAPI, tableName string) *TemplateDynamoRepository {
	return &TemplateDynamoRepository{ddb: ddb, tableName: tableName}
}

// Seed puts each template unless its id is already stored.
func (r *TemplateDynamoRepository) Seed(ctx context.Context, templates []entities.QuotationTemplate) (int, error) {
	inserted := 0
	for _, t := range templates {
		av, err := attributevalue.MarshalMap(toTemplateItem(t))
		if err != nil {
			return inserted, err
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
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				continue
			}
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

func (r *TemplateDynamoRepository) ListByInsuranceType(ctx context.Context, t entities.InsuranceType) ([]entities.QuotationTemplate, error) {
	items, err := queryAll[templateItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#insurance_type = :insurance_type"),
		ExpressionAttributeNames: map[string]string{
			"#insurance_type": "insurance_type",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":insurance_type": &types.AttributeValueMemberS{Value: string(t)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.QuotationTemplate, 0, len(items))
	for _, it := range items {
		out = append(out, fromTemplateItem(it))
	}
	return out, nil
}

func toTemplateItem(t entities.QuotationTemplate) templateItem {
	return templateItem{
		InsuranceType:      string(t.InsuranceType),
		ID:                 t.ID,
		CoverageType:       t.CoverageType,
		CoverageLevel:      t.CoverageLevel,
		BaseMonthlyPremium: floatToString(t.BaseMonthlyPremium),
		Deductible:         floatToString(t.Deductible),
		CreatedAt:          formatTime(t.CreatedAt),
	}
}

func fromTemplateItem(it templateItem) entities.QuotationTemplate {
	return entities.QuotationTemplate{
		ID:                 it.ID,
		InsuranceType:      entities.InsuranceType(it.InsuranceType),
		CoverageType:       it.CoverageType,
		CoverageLevel:      it.CoverageLevel,
		BaseMonthlyPremium: parseFloat(it.BaseMonthlyPremium),
		Deductible:         parseFloat(it.Deductible),
		CreatedAt:          parseTime(it.CreatedAt),
	}
}
