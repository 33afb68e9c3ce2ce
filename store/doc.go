// Package store is the OpenSearch boundary of the system.
//
// VectorSink persists fragment batches into a vector index, embedding them
// through an injected ai.Embedder. Inspector is an independent read-only
// flow that enumerates existing indices with their settings and mappings.
// Requests are signed with SigV4 credentials for OpenSearch Serverless.
package store
