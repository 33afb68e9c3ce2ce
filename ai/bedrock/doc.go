// Package bedrock implements ai.Embedder over AWS Bedrock.
//
// Credentials come from the shared AWS config (profile + region); the
// Bedrock runtime client is constructed once per run and any failure there
// is fatal to the run before a single document is processed. Embedding
// requests go through langchaingo's Bedrock integration.
package bedrock
