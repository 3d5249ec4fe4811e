package aws_handler

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
)

// SecretManager wraps the Secrets Manager client used to fetch the hosted
// database DSN in deployed environments.
type SecretManager struct {
	svc *secretsmanager.SecretsManager
}

func NewSecretManager(region string) (*SecretManager, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region)},
	)
	if err != nil {
		return nil, err
	}

	return &SecretManager{svc: secretsmanager.New(sess)}, nil
}

func (s *SecretManager) GetSecretValue(secretID string) (string, error) {
	input := &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	}

	result, err := s.svc.GetSecretValue(input)
	if err != nil {
		return "", err
	}

	return *result.SecretString, nil
}
