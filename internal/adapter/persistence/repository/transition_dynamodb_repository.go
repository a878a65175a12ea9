package repository

import (
	"context"

	"aseguraopen/internal/domain/entities"
	"aseguraopen/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type transitionItem struct {
	PolicyID  string `dynamodbav:"policy_id"`
	Sequence  int    `dynamodbav:"sequence"`
	ID        string `dynamodbav:"id"`
	FromState string `dynamodbav:"from_state"`
	ToState   string `dynamodbav:"to_state"`
	Reason    string `dynamodbav:"reason"`
	Actor     string `dynamodbav:"actor"`
	CreatedAt string `dynamodbav:"created_at"`
}

// TransitionDynamoRepository reads the audit trail. Records are written only
// by PolicyDynamoRepository.CommitTransition.
//
// Table requirements:
//   - PK: policy_id (string)
//   - SK: sequence (number)

type TransitionDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ITransitionRepository = (*TransitionDynamoRepository)(nil)

func NewTransitionDynamoRepository(ddb DynamoAPI, tableName string) *TransitionDynamoRepository {
	return &TransitionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *TransitionDynamoRepository) ListByPolicyID(ctx context.Context, policyID string) ([]entities.StateTransition, error) {
	items, err := queryAll[transitionItem](ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#policy_id = :policy_id"),
		ExpressionAttributeNames: map[string]string{
			"#policy_id": "policy_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":policy_id": &types.AttributeValueMemberS{Value: policyID},
		},
		ConsistentRead:   aws.Bool(true),
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return fromTransitionItems(items), nil
}

func (r *TransitionDynamoRepository) List(ctx context.Context) ([]entities.StateTransition, error) {
	items, err := scanAll[transitionItem](ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return fromTransitionItems(items), nil
}

func toTransitionItem(t entities.StateTransition) transitionItem {
	return transitionItem{
		PolicyID:  t.PolicyID,
		Sequence:  t.Sequence,
		ID:        t.ID,
		FromState: string(t.FromState),
		ToState:   string(t.ToState),
		Reason:    t.Reason,
		Actor:     t.Actor,
		CreatedAt: formatTime(t.CreatedAt),
	}
}

func fromTransitionItems(items []transitionItem) []entities.StateTransition {
	out := make([]entities.StateTransition, 0, len(items))
	for _, it := range items {
		out = append(out, entities.StateTransition{
			ID:        it.ID,
			PolicyID:  it.PolicyID,
			Sequence:  it.Sequence,
			FromState: entities.PolicyState(it.FromState),
			ToState:   entities.PolicyState(it.ToState),
			Reason:    it.Reason,
			Actor:     it.Actor,
			CreatedAt: parseTime(it.CreatedAt),
		})
	}
	return out
}
