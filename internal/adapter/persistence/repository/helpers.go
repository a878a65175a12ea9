package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"aseguraopen/internal/infrastructure/config"
	"aseguraopen/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of *dynamodb.Client the repositories use.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// maxTransactItems is the DynamoDB limit for one TransactWriteItems call.
const maxTransactItems = 100

// Repositories holds one DynamoDB repository per table.
type Repositories struct {
	Policies    *PolicyDynamoRepository
	Clients     *ClientDataDynamoRepository
	Vehicles    *VehicleDataDynamoRepository
	Quotations  *QuotationDynamoRepository
	Templates   *TemplateDynamoRepository
	Transitions *TransitionDynamoRepository
	Payments    *PaymentDynamoRepository
	Issuances   *IssuanceDynamoRepository
}

func NewRepositories(ddb DynamoAPI, t config.Tables) Repositories {
	return Repositories{
		Policies:    NewPolicyDynamoRepository(ddb, t),
		Clients:     NewClientDataDynamoRepository(ddb, t.Clients),
		Vehicles:    NewVehicleDataDynamoRepository(ddb, t.Vehicles),
		Quotations:  NewQuotationDynamoRepository(ddb, t.Offers),
		Templates:   NewTemplateDynamoRepository(ddb, t.Templates),
		Transitions: NewTransitionDynamoRepository(ddb, t.Transitions),
		Payments:    NewPaymentDynamoRepository(ddb, t.Payments),
		Issuances:   NewIssuanceDynamoRepository(ddb, t.Issuances),
	}
}

// conditionFailed converts DynamoDB's conditional-check failures, single
// item or transactional, into interfaces.ErrConditionFailed.
func conditionFailed(err error) error {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return fmt.Errorf("%w: %s", interfaces.ErrConditionFailed, cfe.ErrorMessage())
	}
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, r := range tce.CancellationReasons {
			if r.Code != nil && *r.Code == "ConditionalCheckFailed" {
				return fmt.Errorf("%w: transaction cancelled", interfaces.ErrConditionFailed)
			}
		}
	}
	return err
}

func queryAll[T any](ctx context.Context, ddb DynamoAPI, in *dynamodb.QueryInput) ([]T, error) {
	var out []T
	p := dynamodb.NewQueryPaginator(ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

func scanAll[T any](ctx context.Context, ddb DynamoAPI, in *dynamodb.ScanInput) ([]T, error) {
	var out []T
	p := dynamodb.NewScanPaginator(ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
