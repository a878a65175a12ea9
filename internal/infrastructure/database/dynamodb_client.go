package database

import (
	"context"
	"errors"
	"fmt"

	"aseguraopen/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// ConnectDynamoDB creates a DynamoDB client from cfg.
//
// Endpoint is optional and points the client at DynamoDB Local
// (e.g. http://dynamodb:8000).
func ConnectDynamoDB(ctx context.Context, cfg config.DynamoDB) (*dynamodb.Client, error) {
	awsCfg, err := NewDynamoDBConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb config: %w", err)
	}
	return dynamodb.NewFromConfig(awsCfg), nil
}

func NewDynamoDBConfig(ctx context.Context, cfg config.DynamoDB) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(creds),
	}

	if cfg.Endpoint != "" {
		endpoint := cfg.Endpoint
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, awsconfig.WithEndpointResolverWithOptions(resolver))
	}

	return awsconfig.LoadDefaultConfig(ctx, loadOpts...)
}

// TableCreator is the part of the DynamoDB API EnsureTables needs.
type TableCreator interface {
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// EnsureTables creates every table the repositories use, skipping the ones
// that already exist. Intended for DynamoDB Local and first deploys.
func EnsureTables(ctx context.Context, ddb TableCreator, t config.Tables, log *zap.Logger) error {
	for _, in := range TableDefinitions(t) {
		_, err := ddb.CreateTable(ctx, in)
		if err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				log.Debug("[database] table exists", zap.String("table", aws.ToString(in.TableName)))
				continue
			}
			return fmt.Errorf("create table %s: %w", aws.ToString(in.TableName), err)
		}
		log.Info("[database] table created", zap.String("table", aws.ToString(in.TableName)))
	}
	return nil
}

// TableDefinitions describes the key schema of every table and index.
func TableDefinitions(t config.Tables) []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		hashTable(t.Policies, "id"),
		hashTable(t.Clients, "policy_id"),
		hashTable(t.Vehicles, "policy_id"),
		rangeTable(t.Offers, "policy_id", "id", types.ScalarAttributeTypeS),
		rangeTable(t.Templates, "insurance_type", "id", types.ScalarAttributeTypeS),
		rangeTable(t.Transitions, "policy_id", "sequence", types.ScalarAttributeTypeN),
		rangeTable(t.Payments, "policy_id", "id", types.ScalarAttributeTypeS),
		hashTable(t.Issuances, "policy_id"),
	}
}

func hashTable(name, key string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName:   aws.String(name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(key), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(key), KeyType: types.KeyTypeHash},
		},
	}
}

// rangeTable keys child records under their parent so reads can be strongly
// consistent queries rather than index lookups.
func rangeTable(name, hash, sort string, sortType types.ScalarAttributeType) *dynamodb.CreateTableInput {
	in := hashTable(name, hash)
	in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
		AttributeName: aws.String(sort), AttributeType: sortType,
	})
	in.KeySchema = append(in.KeySchema, types.KeySchemaElement{
		AttributeName: aws.String(sort), KeyType: types.KeyTypeRange,
	})
	return in
}
