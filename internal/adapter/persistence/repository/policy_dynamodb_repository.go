package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"aseguraopen/internal/domain/entities"
	"aseguraopen/internal/infrastructure/config"
	"aseguraopen/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type policyItem struct {
	ID            string `dynamodbav:"id"`
	State         string `dynamodbav:"state"`
	Intention     bool   `dynamodbav:"intention"`
	InsuranceType string `dynamodbav:"insurance_type,omitempty"`
	Version       int    `dynamodbav:"version"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// PolicyDynamoRepository persists Policy entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// CommitTransition writes into the transitions and offers tables as well, in
// a single TransactWriteItems call.

type PolicyDynamoRepository struct {
	ddb         DynamoAPI
	tableName   string
	transitions string
	offers      string
}

var _ interfaces.IPolicyRepository = (*PolicyDynamoRepository)(nil)

func NewPolicyDynamoRepository(ddb DynamoAPI, t config.Tables) *PolicyDynamoRepository {
	return &PolicyDynamoRepository{
		ddb:         ddb,
		tableName:   t.Policies,
		transitions: t.Transitions,
		offers:      t.Offers,
	}
}

func (r *PolicyDynamoRepository) Create(ctx context.Context, p entities.Policy) (entities.Policy, error) {
	av, err := attributevalue.MarshalMap(toPolicyItem(p))
	if err != nil {
		return entities.Policy{}, err
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
		return entities.Policy{}, conditionFailed(err)
	}
	return p, nil
}

func (r *PolicyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Policy, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Policy{}, err
	}
	if len(out.Item) == 0 {
		return entities.Policy{}, nil
	}

	var it policyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Policy{}, err
	}
	return fromPolicyItem(it), nil
}

func (r *PolicyDynamoRepository) List(ctx context.Context) ([]entities.Policy, error) {
	items, err := scanAll[policyItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.Policy, 0, len(items))
	for _, it := range items {
		out = append(out, fromPolicyItem(it))
	}
	return out, nil
}

// SetIntention only succeeds while the stored policy is still in intake.
func (r *PolicyDynamoRepository) SetIntention(ctx context.Context, id string, t entities.InsuranceType) (entities.Policy, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #state = :intake"),
		UpdateExpression:    aws.String("SET #intention = :true, #insurance_type = :type, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":intake":     &types.AttributeValueMemberS{Value: string(entities.PolicyStateIntake)},
			":true":       &types.AttributeValueMemberBOOL{Value: true},
			":type":       &types.AttributeValueMemberS{Value: string(t)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#state":          "state",
			"#intention":      "intention",
			"#insurance_type": "insurance_type",
			"#updated_at":     "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Policy{}, conditionFailed(err)
	}
	var it policyItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Policy{}, err
	}
	return fromPolicyItem(it), nil
}

// CommitTransition applies c in one transaction: the conditioned policy
// update, one conditional put per audit record and the offer flag changes.
func (r *PolicyDynamoRepository) CommitTransition(ctx context.Context, c entities.TransitionCommit) error {
	items, err := r.transactItems(c)
	if err != nil {
		return err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return conditionFailed(err)
	}
	return nil
}

func (r *PolicyDynamoRepository) transactItems(c entities.TransitionCommit) ([]types.TransactWriteItem, error) {
	items := []types.TransactWriteItem{{
		Update: &types.Update{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: c.PolicyID},
			},
			ConditionExpression: aws.String("#state = :from_state AND #version = :from_version"),
			UpdateExpression:    aws.String("SET #state = :to_state, #version = :to_version, #updated_at = :updated_at"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":from_state":   &types.AttributeValueMemberS{Value: string(c.FromState)},
				":from_version": &types.AttributeValueMemberN{Value: strconv.Itoa(c.FromVersion)},
				":to_state":     &types.AttributeValueMemberS{Value: string(c.ToState)},
				":to_version":   &types.AttributeValueMemberN{Value: strconv.Itoa(c.ToVersion)},
				":updated_at":   &types.AttributeValueMemberS{Value: formatTime(c.UpdatedAt)},
			},
			ExpressionAttributeNames: map[string]string{
				"#state":      "state",
				"#version":    "version",
				"#updated_at": "updated_at",
			},
		},
	}}

	for _, t := range c.Transitions {
		av, err := attributevalue.MarshalMap(toTransitionItem(t))
		if err != nil {
			return nil, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:                aws.String(r.transitions),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#sequence)"),
				ExpressionAttributeNames: map[string]string{"#sequence": "sequence"},
			},
		})
	}

	for _, id := range c.UnselectOfferIDs {
		items = append(items, r.offerFlag(c.PolicyID, id, false))
	}
	if c.SelectOfferID != "" {
		items = append(items, r.offerFlag(c.PolicyID, c.SelectOfferID, true))
	}
	if len(items) > maxTransactItems {
		return nil, fmt.Errorf("transition commit has %d writes, limit is %d", len(items), maxTransactItems)
	}
	return items, nil
}

func (r *PolicyDynamoRepository) offerFlag(policyID, offerID string, selected bool) types.TransactWriteItem {
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.offers),
			Key: map[string]types.AttributeValue{
				"policy_id": &types.AttributeValueMemberS{Value: policyID},
				"id":        &types.AttributeValueMemberS{Value: offerID},
			},
			ConditionExpression: aws.String("attribute_exists(#id)"),
			UpdateExpression:    aws.String("SET #selected = :selected"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":selected": &types.AttributeValueMemberBOOL{Value: selected},
			},
			ExpressionAttributeNames: map[string]string{
				"#id":       "id",
				"#selected": "selected",
			},
		},
	}
}

func toPolicyItem(p entities.Policy) policyItem {
	return policyItem{
		ID:            p.ID,
		State:         string(p.State),
		Intention:     p.Intention,
		InsuranceType: string(p.InsuranceType),
		Version:       p.Version,
		CreatedAt:     formatTime(p.CreatedAt),
		UpdatedAt:     formatTime(p.UpdatedAt),
	}
}

func fromPolicyItem(it policyItem) entities.Policy {
	return entities.Policy{
		ID:            it.ID,
		State:         entities.PolicyState(it.State),
		Intention:     it.Intention,
		InsuranceType: entities.InsuranceType(it.InsuranceType),
		Version:       it.Version,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
