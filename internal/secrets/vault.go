package secrets

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azsecrets"
	"go.uber.org/zap"
)

// keyVault reads the latest version of secrets from Azure Key Vault
type keyVault struct {
	client *azsecrets.Client
	logger *zap.Logger
}

// newKeyVault authenticates with DefaultAzureCredential, which covers
// environment credentials, managed identity and the Azure CLI
func newKeyVault(vaultName string, logger *zap.Logger) (*keyVault, error) {
	if vaultName == "" {
		return nil, fmt.Errorf("vault name is required")
	}

	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("azure credential: %w", err)
	}

	vaultURL := "https://" + vaultName + ".vault.azure.net/"
	client, err := azsecrets.NewClient(vaultURL, cred, nil)
	if err != nil {
		return nil, fmt.Errorf("key vault client: %w", err)
	}

	logger.Info("Azure Key Vault client initialized", zap.String("vault_url", vaultURL))
	return &keyVault{client: client, logger: logger}, nil
}

func (k *keyVault) GetSecret(ctx context.Context, name string) (string, error) {
	resp, err := k.client.GetSecret(ctx, name, "", nil)
	if err != nil {
		k.logger.Error("Key Vault lookup failed", zap.String("secret_name", name), zap.Error(err))
		return "", fmt.Errorf("secret %q: %w", name, err)
	}
	if resp.Value == nil {
		return "", fmt.Errorf("secret %q has no value", name)
	}
	return *resp.Value, nil
}
