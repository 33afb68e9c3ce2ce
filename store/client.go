package store

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	opensearchgo "github.com/opensearch-project/opensearch-go"
	requestsigner "github.com/opensearch-project/opensearch-go/v2/signer/awsv2"
)

// serviceName is the AWS service requests are signed for
// (OpenSearch Serverless).
const serviceName = "aoss"

// NewClient creates an OpenSearch client for the given endpoint, signing
// every request with the AWS config's credentials.
func NewClient(endpoint string, awsCfg aws.Config) (*opensearchgo.Client, error) {
	signer, err := requestsigner.NewSignerWithService(awsCfg, serviceName)
	if err != nil {
		return nil, fmt.Errorf("create request signer: %w", err)
	}

	client, err := opensearchgo.NewClient(opensearchgo.Config{
		Addresses: []string{endpoint},
		Signer:    signer,
	})
	if err != nil {
		return nil, fmt.Errorf("create opensearch client: %w", err)
	}

	return client, nil
}
