package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sesTypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/diillson/aws-cost-report/internal/domain/entity"
	"github.com/diillson/aws-cost-report/internal/domain/repository"
)

const charsetUTF8 = "UTF-8"

type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// MailRepositoryImpl implementa o MailRepository com Amazon SES (API v2).
type MailRepositoryImpl struct {
	clients *ClientFactory
	region  string
	ses     sesAPI
}

// NewMailRepository cria uma nova implementação do MailRepository.
func NewMailRepository(clients *ClientFactory, region string) repository.MailRepository {
	return &MailRepositoryImpl{clients: clients, region: region}
}

func (r *MailRepositoryImpl) sesClient(ctx context.Context) (sesAPI, error) {
	if r.ses != nil {
		return r.ses, nil
	}
	client, err := r.clients.getServiceClient(ctx, r.region, serviceSES)
	if err != nil {
		return nil, err
	}
	return client.(*sesv2.Client), nil
}

// SendEmail envia um único email HTML. Não há nova tentativa em caso de falha.
func (r *MailRepositoryImpl) SendEmail(ctx context.Context, email entity.Email) (string, error) {
	client, err := r.sesClient(ctx)
	if err != nil {
		return "", err
	}

	result, err := client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(email.From),
		Destination: &sesTypes.Destination{
			ToAddresses: []string{email.To},
		},
		Content: &sesTypes.EmailContent{
			Simple: &sesTypes.Message{
				Subject: &sesTypes.Content{Data: aws.String(email.Subject), Charset: aws.String(charsetUTF8)},
				Body: &sesTypes.Body{
					Html: &sesTypes.Content{Data: aws.String(email.HTMLBody), Charset: aws.String(charsetUTF8)},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("error sending email to %s: %w", email.To, err)
	}

	return aws.ToString(result.MessageId), nil
}
