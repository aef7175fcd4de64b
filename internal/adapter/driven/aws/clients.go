package aws

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/budgets"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

const (
	serviceCostExplorer = "costexplorer"
	serviceBudgets      = "budgets"
	serviceSTS          = "sts"
	serviceSES          = "sesv2"
	serviceS3           = "s3"

	// Cost Explorer e Budgets só respondem em us-east-1
	globalBillingRegion = "us-east-1"
)

// ClientFactory carrega a config AWS uma única vez e mantém um cache de
// clientes por serviço e região, reaproveitado entre invocações.
type ClientFactory struct {
	profile     string
	cfg         *aws.Config
	clientCache map[string]interface{}
	mu          sync.Mutex
}

// NewClientFactory cria uma fábrica de clientes para o perfil informado.
// Um perfil vazio usa a cadeia de credenciais padrão (ex.: role da Lambda).
func NewClientFactory(profile string) *ClientFactory {
	return &ClientFactory{
		profile:     profile,
		clientCache: make(map[string]interface{}),
	}
}

func (f *ClientFactory) getAWSConfig(ctx context.Context) (aws.Config, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cfg != nil {
		return *f.cfg, nil
	}

	var opts []func(*config.LoadOptions) error
	if f.profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(f.profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %q: %w", f.profile, err)
	}

	f.cfg = &cfg
	return cfg, nil
}

func (f *ClientFactory) getServiceClient(ctx context.Context, region, service string) (interface{}, error) {
	cacheKey := fmt.Sprintf("%s-%s", region, service)

	f.mu.Lock()
	if client, ok := f.clientCache[cacheKey]; ok {
		f.mu.Unlock()
		return client, nil
	}
	f.mu.Unlock()

	cfg, err := f.getAWSConfig(ctx)
	if err != nil {
		return nil, err
	}

	regionalCfg := cfg.Copy()
	if region != "" {
		regionalCfg.Region = region
	}

	var client interface{}
	switch service {
	case serviceSTS:
		client = sts.NewFromConfig(regionalCfg)
	case serviceCostExplorer:
		client = costexplorer.NewFromConfig(regionalCfg)
	case serviceBudgets:
		regionalCfg.Region = globalBillingRegion
		client = budgets.NewFromConfig(regionalCfg)
	case serviceSES:
		client = sesv2.NewFromConfig(regionalCfg)
	case serviceS3:
		client = s3.NewFromConfig(regionalCfg)
	default:
		return nil, fmt.Errorf("unsupported service: %s", service)
	}

	f.mu.Lock()
	if cached, ok := f.clientCache[cacheKey]; ok {
		client = cached
	} else {
		f.clientCache[cacheKey] = client
	}
	f.mu.Unlock()

	return client, nil
}
