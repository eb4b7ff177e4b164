package dynamo

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"vpcd/internal/provisioning"
)

// keyAttr is the table's partition key attribute.
const keyAttr = "vpc_id"

// API is the subset of the DynamoDB client the store uses.
type API interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

// Store reads and writes VPC metadata records.
type Store struct {
	db    API
	table string
}

// NewStore creates a store for the given table from an AWS config.
func NewStore(cfg aws.Config, table string) *Store {
	return &Store{db: dynamodb.NewFromConfig(cfg), table: table}
}

// NewStoreWithClient creates a store with an explicit client. Used by callers
// that already hold a DynamoDB client and by tests.
func NewStoreWithClient(db API, table string) *Store {
	return &Store{db: db, table: table}
}

// Save persists a record keyed by its VPC ID.
func (s *Store) Save(ctx context.Context, record *provisioning.VPCRecord) error {
	if record.VPCID == "" {
		return fmt.Errorf("vpc_id is required")
	}

	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record %s: %w", record.VPCID, err)
	}

	_, err = s.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to save record %s: %w", record.VPCID, err)
	}
	return nil
}

// Get returns the record for the given VPC ID, or nil when absent.
func (s *Store) Get(ctx context.Context, vpcID string) (*provisioning.VPCRecord, error) {
	out, err := s.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key:       recordKey(vpcID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get record %s: %w", vpcID, err)
	}
	if out.Item == nil {
		return nil, nil
	}

	var record provisioning.VPCRecord
	if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record %s: %w", vpcID, err)
	}
	return &record, nil
}

// List returns up to limit records, newest first.
func (s *Store) List(ctx context.Context, limit int32) ([]provisioning.VPCRecord, error) {
	out, err := s.db.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.table),
		Limit:     aws.Int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	var records []provisioning.VPCRecord
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal records: %w", err)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt > records[j].CreatedAt
	})
	return records, nil
}

// Delete removes the record. Returns false when no record existed.
func (s *Store) Delete(ctx context.Context, vpcID string) (bool, error) {
	existing, err := s.Get(ctx, vpcID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	_, err = s.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key:       recordKey(vpcID),
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete record %s: %w", vpcID, err)
	}
	return true, nil
}

// UpdateStatus sets the record's status attribute. Returns false when the
// record does not exist.
func (s *Store) UpdateStatus(ctx context.Context, vpcID, status string) (bool, error) {
	_, err := s.db.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.table),
		Key:                 recordKey(vpcID),
		ConditionExpression: aws.String("attribute_exists(vpc_id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: status},
		},
	})
	if err != nil {
		var condFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condFailed) {
			return false, nil
		}
		return false, fmt.Errorf("failed to update status of %s: %w", vpcID, err)
	}
	return true, nil
}

func recordKey(vpcID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		keyAttr: &types.AttributeValueMemberS{Value: vpcID},
	}
}
