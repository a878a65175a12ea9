package repository

import (
	"context"
	"fmt"

	"aseguraopen/internal/domain/entities"
	"aseguraopen/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type quotationOfferItem struct {
	PolicyID       string `dynamodbav:"policy_id"`
	ID             string `dynamodbav:"id"`
	VehicleID      string `dynamodbav:"vehicle_id"`
	TemplateID     string `dynamodbav:"template_id"`
	CoverageType   string `dynamodbav:"coverage_type"`
	CoverageLevel  string `dynamodbav:"coverage_level"`
	MonthlyPremium string `dynamodbav:"monthly_premium"`
	AnnualPremium  string `dynamodbav:"annual_premium"`
	Deductible     string `dynamodbav:"deductible"`
	RiskLevel      string `dynamodbav:"risk_level"`
	Selected       bool   `dynamodbav:"selected"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// QuotationDynamoRepository persists QuotationOffer entities in DynamoDB.
//
// Table requirements:
//   - PK: policy_id (string)
//   - SK: id (string)
//
// Amounts are stored as decimal strings to keep cents exact.

type QuotationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb DynamoAPI, tableName string) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{ddb: ddb, tableName: tableName}
}

// CreateBatch writes all offers in one transaction.
func (r *QuotationDynamoRepository) CreateBatch(ctx context.Context, offers []entities.QuotationOffer) error {
	if len(offers) == 0 {
		return nil
	}
	if len(offers) > maxTransactItems {
		return fmt.Errorf("batch of %d offers exceeds the transaction limit of %d", len(offers), maxTransactItems)
	}
	items := make([]types.TransactWriteItem, 0, len(offers))
	for _, o := range offers {
		av, err := attributevalue.MarshalMap(toQuotationOfferItem(o))
		if err != nil {
			return err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			},
		})
	}
	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		return conditionFailed(err)
	}
	return nil
}

func (r *QuotationDynamoRepository) ListByPolicyID(ctx context.Context, policyID string) ([]entities.QuotationOffer, error) {
	items, err := queryAll[quotationOfferItem](ctx, r.ddb, &dynamodb.QueryInput{
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
	return fromQuotationOfferItems(items), nil
}

func (r *QuotationDynamoRepository) List(ctx context.Context) ([]entities.QuotationOffer, error) {
	items, err := scanAll[quotationOfferItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return fromQuotationOfferItems(items), nil
}

func toQuotationOfferItem(o entities.QuotationOffer) quotationOfferItem {
	return quotationOfferItem{
		PolicyID:       o.PolicyID,
		ID:             o.ID,
		VehicleID:      o.VehicleID,
		TemplateID:     o.TemplateID,
		CoverageType:   o.CoverageType,
		CoverageLevel:  o.CoverageLevel,
		MonthlyPremium: floatToString(o.MonthlyPremium),
		AnnualPremium:  floatToString(o.AnnualPremium),
		Deductible:     floatToString(o.Deductible),
		RiskLevel:      string(o.RiskLevel),
		Selected:       o.Selected,
		CreatedAt:      formatTime(o.CreatedAt),
	}
}

func fromQuotationOfferItems(items []quotationOfferItem) []entities.QuotationOffer {
	out := make([]entities.QuotationOffer, 0, len(items))
	for _, it := range items {
		out = append(out, entities.QuotationOffer{
			ID:             it.ID,
			PolicyID:       it.PolicyID,
			VehicleID:      it.VehicleID,
			TemplateID:     it.TemplateID,
			CoverageType:   it.CoverageType,
			CoverageLevel:  it.CoverageLevel,
			MonthlyPremium: parseFloat(it.MonthlyPremium),
			AnnualPremium:  parseFloat(it.AnnualPremium),
			Deductible:     parseFloat(it.Deductible),
			RiskLevel:      entities.RiskLevel(it.RiskLevel),
			Selected:       it.Selected,
			CreatedAt:      parseTime(it.CreatedAt),
		})
	}
	return out
}
