/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/recordkv/logging"
)

var log = logging.For("medium.ddb")

// API is the subset of the DynamoDB client the medium calls.
type API interface {
	sdk.ScanAPIClient
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
}

// ClientConfig holds what NewClient needs to reach DynamoDB.
type ClientConfig struct {
	Region    string
	AccessKey string
	SecretKey string

	// Endpoint overrides the service endpoint, e.g. for DynamoDB Local.
	Endpoint string
}

// NewClient initializes a DynamoDB client. Static credentials are used when
// AccessKey is set, otherwise the default AWS credential chain applies.
func NewClient(ctx context.Context, cc ClientConfig) (*sdk.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cc.Region)}
	if cc.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cc.AccessKey, cc.SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := sdk.NewFromConfig(cfg, func(o *sdk.Options) {
		if cc.Endpoint != "" {
			o.BaseEndpoint = aws.String(cc.Endpoint)
		}
	})
	log.Info("dynamodb client initialized", "region", cc.Region, "endpoint", cc.Endpoint)
	return client, nil
}

// item is the stored shape of one key/value pair.
type item struct {
	Key   string `dynamodbav:"Key"`
	Value string `dynamodbav:"Value"`
}

// Medium implements medium.Medium on a DynamoDB table whose partition key is
// the string attribute "Key".
type Medium struct {
	client API
	table  string
}

// New returns a medium over table.
func New(client API, table string) *Medium {
	return &Medium{client: client, table: table}
}

// Available reports whether a client and table are configured.
func (m *Medium) Available() bool {
	return m.client != nil && m.table != ""
}

func keyOf(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"Key": &types.AttributeValueMemberS{Value: key},
	}
}

func (m *Medium) GetItem(ctx context.Context, key string) (string, bool, error) {
	out, err := m.client.GetItem(ctx, &sdk.GetItemInput{
		TableName:      aws.String(m.table),
		Key:            keyOf(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", false, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return "", false, nil
	}

	var it item
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", false, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return it.Value, true, nil
}

func (m *Medium) SetItem(ctx context.Context, key, value string) error {
	av, err := attributevalue.MarshalMap(item{Key: key, Value: value})
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}
	if _, err := m.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: aws.String(m.table),
		Item:      av,
	}); err != nil {
		return fmt.Errorf("PutItem error: %w", err)
	}
	return nil
}

func (m *Medium) RemoveItem(ctx context.Context, key string) error {
	if _, err := m.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: aws.String(m.table),
		Key:       keyOf(key),
	}); err != nil {
		return fmt.Errorf("DeleteItem error: %w", err)
	}
	return nil
}

// Keys scans the whole table, projecting only the key attribute.
func (m *Medium) Keys(ctx context.Context) ([]string, error) {
	p := sdk.NewScanPaginator(m.client, &sdk.ScanInput{
		TableName:                aws.String(m.table),
		ProjectionExpression:     aws.String("#k"),
		ExpressionAttributeNames: map[string]string{"#k": "Key"},
	})

	var keys []string
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("Scan error: %w", err)
		}
		for _, av := range page.Items {
			var it item
			if err := attributevalue.UnmarshalMap(av, &it); err != nil {
				return nil, fmt.Errorf("failed to unmarshal item: %w", err)
			}
			keys = append(keys, it.Key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}
