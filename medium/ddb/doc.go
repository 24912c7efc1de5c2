/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

/*
Package ddb implements a storage medium on an AWS DynamoDB table.

The table needs a single string partition key named "Key". Values are stored
in the string attribute "Value":

	aws dynamodb create-table --table-name recordkv \
	    --attribute-definitions AttributeName=Key,AttributeType=S \
	    --key-schema AttributeName=Key,KeyType=HASH \
	    --billing-mode PAY_PER_REQUEST

Usage:

	client, err := ddb.NewClient(ctx, ddb.ClientConfig{Region: "us-east-1"})
	if err != nil {
	    return err
	}
	m := ddb.New(client, "recordkv")

Reads are strongly consistent. Keys scans the full table, so reset and
findRecords cost a table scan on this medium.
*/
package ddb
