package database

import (
	"context"
	"errors"
	"testing"

	"aseguraopen/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCreator struct {
	existing map[string]bool
	created  []string
	fail     error
}

func (f *fakeCreator) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	name := aws.ToString(in.TableName)
	if f.existing[name] {
		return nil, &types.ResourceInUseException{Message: aws.String("exists")}
	}
	f.created = append(f.created, name)
	return &dynamodb.CreateTableOutput{}, nil
}

func testTables() config.Tables {
	return config.Tables{
		Policies: "p", Clients: "c", Vehicles: "v", Offers: "o",
		Templates: "t", Transitions: "st", Payments: "pay", Issuances: "i",
	}
}

func TestEnsureTables_SkipsExisting(t *testing.T) {
	f := &fakeCreator{existing: map[string]bool{"p": true, "st": true}}

	err := EnsureTables(context.Background(), f, testTables(), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "v", "o", "t", "pay", "i"}, f.created)
}

func TestEnsureTables_PropagatesErrors(t *testing.T) {
	f := &fakeCreator{fail: errors.New("boom")}

	err := EnsureTables(context.Background(), f, testTables(), zap.NewNop())
	assert.ErrorContains(t, err, "create table p")
}

func TestTableDefinitions_TransitionsUseSequenceRangeKey(t *testing.T) {
	defs := TableDefinitions(testTables())
	require.Len(t, defs, 8)

	var transitions *dynamodb.CreateTableInput
	for _, d := range defs {
		if aws.ToString(d.TableName) == "st" {
			transitions = d
		}
	}
	require.NotNil(t, transitions)
	require.Len(t, transitions.KeySchema, 2)
	assert.Equal(t, "sequence", aws.ToString(transitions.KeySchema[1].AttributeName))
	assert.Equal(t, types.KeyTypeRange, transitions.KeySchema[1].KeyType)
}

func TestTableDefinitions_OffersKeyedByPolicy(t *testing.T) {
	for _, d := range TableDefinitions(testTables()) {
		if aws.ToString(d.TableName) != "o" {
			continue
		}
		require.Len(t, d.KeySchema, 2)
		assert.Equal(t, "policy_id", aws.ToString(d.KeySchema[0].AttributeName))
		assert.Equal(t, "id", aws.ToString(d.KeySchema[1].AttributeName))
		assert.Empty(t, d.GlobalSecondaryIndexes)
	}
}
