/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

/*
Package config loads recordkv settings from a YAML or TOML file and the
environment.

Example recordkv.yaml:

	source:
	  namespace: orbit
	  schema: schema.yaml
	bucket:
	  namespace: orbit-bucket
	medium:
	  kind: bolt
	  metered: true
	  bolt:
	    path: /var/lib/recordkv/data.db
	log:
	  level: debug

The same file as TOML:

	[source]
	namespace = "orbit"
	schema = "schema.yaml"

	[medium]
	kind = "dynamodb"

	[medium.dynamodb]
	table = "recordkv"
	region = "us-east-1"

Environment variables override file values, e.g. RECORDKV_MEDIUM,
RECORDKV_NAMESPACE, RECORDKV_BUCKET_NAMESPACE, RECORDKV_SCHEMA,
RECORDKV_BOLT_PATH, RECORDKV_DDB_TABLE, RECORDKV_DDB_REGION,
RECORDKV_DDB_ENDPOINT, RECORDKV_METERED and RECORDKV_LOG_LEVEL. LoadEnvFiles
reads them from .env files first.
*/
package config
