package aws

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mergepost/mergepost-api/libs/go/logger"
)

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc *secretsmanager.Client
	cfg aws.Config
}

// NewSecretsManagerClient creates and initializes a new Secrets Manager client.
// It uses the default AWS configuration chain (environment variables, shared
// config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load AWS SDK config")
	}

	svc := secretsmanager.NewFromConfig(cfg)

	return &SecretsManagerClient{
		svc: svc,
		cfg: cfg,
	}, nil
}

// GetSecretString fetches a secret string using an ARN named by an
// environment variable. When the ARN variable is unset or the fetch fails,
// it falls back to reading the secret directly from fallbackEnvVar. An error
// is returned only when both paths come up empty.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	secretArn := os.Getenv(secretArnEnvVar)

	if secretArn != "" {
		input := &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(secretArn),
		}

		result, err := c.svc.GetSecretValue(ctx, input)
		if err == nil && result.SecretString != nil && *result.SecretString != "" {
			logger.Debug("Fetched secret from Secrets Manager",
				zap.String("arnEnvVar", secretArnEnvVar))
			return *result.SecretString, nil
		}
		if err != nil {
			logger.Warn("Secrets Manager fetch failed, falling back to environment",
				zap.String("arnEnvVar", secretArnEnvVar),
				zap.Error(err))
		}
	}

	if value := os.Getenv(fallbackEnvVar); value != "" {
		return value, nil
	}

	return "", errors.Errorf("secret not found via %s or %s", secretArnEnvVar, fallbackEnvVar)
}
