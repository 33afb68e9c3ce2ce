package bedrock

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// LoadAWSConfig resolves AWS credentials from the shared configuration for
// the given profile and region. The returned config is also what signs
// OpenSearch requests, so it is loaded once and shared.
func LoadAWSConfig(ctx context.Context, profile, region string) (aws.Config, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithSharedConfigProfile(profile),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config for profile %q: %w", profile, err)
	}
	return cfg, nil
}

// NewRuntimeClient creates a Bedrock runtime client from a resolved AWS config.
func NewRuntimeClient(cfg aws.Config) *bedrockruntime.Client {
	return bedrockruntime.NewFromConfig(cfg)
}
