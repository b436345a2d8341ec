package awsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// SecretsAPI is the part of the Secrets Manager client used here.
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc    SecretsAPI
	logger *zap.Logger
}

// NewSecretsManagerClient uses the default AWS configuration chain
// (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context, logger *zap.Logger) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load AWS SDK config")
	}
	return NewSecretsManagerClientWithAPI(secretsmanager.NewFromConfig(cfg), logger), nil
}

func NewSecretsManagerClientWithAPI(svc SecretsAPI, logger *zap.Logger) *SecretsManagerClient {
	return &SecretsManagerClient{svc: svc, logger: logger}
}

// GetSecretString fetches a plain text secret.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArn string) (string, error) {
	result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretArn),
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to fetch secret %s", secretArn)
	}
	if result.SecretString == nil || *result.SecretString == "" {
		return "", errors.Errorf("secret %s has no string value", secretArn)
	}
	c.logger.Debug("Fetched secret from Secrets Manager", zap.String("secret_arn", secretArn))
	return *result.SecretString, nil
}

// rdsSecret is the JSON layout RDS writes for managed database credentials.
type rdsSecret struct {
	Username string      `json:"username"`
	Password string      `json:"password"`
	Host     string      `json:"host"`
	Port     json.Number `json:"port"`
	DBName   string      `json:"dbname"`
	SSLMode  string      `json:"sslmode"`
}

// GetDatabaseURL reads a database secret. The secret is either a postgres
// URL or the RDS credentials JSON, which is turned into a URL.
func (c *SecretsManagerClient) GetDatabaseURL(ctx context.Context, secretArn string) (string, error) {
	value, err := c.GetSecretString(ctx, secretArn)
	if err != nil {
		return "", err
	}
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "{") {
		return value, nil
	}

	var secret rdsSecret
	if err := json.Unmarshal([]byte(value), &secret); err != nil {
		return "", errors.Wrapf(err, "secret %s is neither a URL nor RDS credentials", secretArn)
	}
	return secret.url()
}

func (s rdsSecret) url() (string, error) {
	if s.Username == "" || s.Host == "" || s.DBName == "" {
		return "", errors.New("database secret is missing username, host or dbname")
	}
	port := s.Port.String()
	if port == "" {
		port = "5432"
	}
	sslMode := s.SSLMode
	if sslMode == "" {
		sslMode = "require"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(s.Username, s.Password),
		Host:     fmt.Sprintf("%s:%s", s.Host, port),
		Path:     "/" + s.DBName,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}
	return u.String(), nil
}
