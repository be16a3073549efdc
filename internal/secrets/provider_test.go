package secrets_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sendsafe/sendsafe-api/internal/secrets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeVault map[string]string

func (f fakeVault) GetSecret(_ context.Context, name string) (string, error) {
	if v, ok := f[name]; ok {
		return v, nil
	}
	return "", errors.New("not found")
}

func TestResolveSource(t *testing.T) {
	assert.Equal(t, secrets.SourceEnvironment, secrets.ResolveSource(secrets.SourceAuto, "development"))
	assert.Equal(t, secrets.SourceEnvironment, secrets.ResolveSource(secrets.SourceAuto, ""))
	assert.Equal(t, secrets.SourceVault, secrets.ResolveSource(secrets.SourceAuto, "production"))
	assert.Equal(t, secrets.SourceVault, secrets.ResolveSource(secrets.SourceVault, "development"))
}

func TestProvider_EnvironmentSource(t *testing.T) {
	t.Setenv("SENDSAFE_TEST_SECRET", "s3cret")

	p, err := secrets.NewProvider(&secrets.ProviderConfig{Source: secrets.SourceEnvironment}, zap.NewNop())
	require.NoError(t, err)

	v, err := p.GetSecret(context.Background(), "SENDSAFE_TEST_SECRET")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", v)

	_, err = p.GetSecret(context.Background(), "SENDSAFE_MISSING_SECRET")
	assert.Error(t, err)
	assert.False(t, p.IsVaultEnabled())
}

func TestProvider_VaultWithEnvOverride(t *testing.T) {
	p := secrets.NewProviderWithGetter(fakeVault{"resend-api-key": "from-vault"}, zap.NewNop())

	v, err := p.GetSecretOrEnv(context.Background(), "resend-api-key", "SENDSAFE_RESEND_OVERRIDE")
	require.NoError(t, err)
	assert.Equal(t, "from-vault", v)

	t.Setenv("SENDSAFE_RESEND_OVERRIDE", "from-env")
	v, err = p.GetSecretOrEnv(context.Background(), "resend-api-key", "SENDSAFE_RESEND_OVERRIDE")
	require.NoError(t, err)
	assert.Equal(t, "from-env", v)
}

func TestNewProvider_VaultRequiresName(t *testing.T) {
	_, err := secrets.NewProvider(&secrets.ProviderConfig{Source: secrets.SourceVault}, zap.NewNop())
	assert.Error(t, err)
}

type countingVault struct {
	calls  int
	values map[string]string
}

func (c *countingVault) GetSecret(_ context.Context, name string) (string, error) {
	c.calls++
	if v, ok := c.values[name]; ok {
		return v, nil
	}
	return "", errors.New("not found")
}

func TestCachingGetter(t *testing.T) {
	vault := &countingVault{values: map[string]string{"jwt-secret": "abc"}}
	cache := secrets.NewCachingGetter(vault, time.Hour)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		v, err := cache.GetSecret(ctx, "jwt-secret")
		require.NoError(t, err)
		assert.Equal(t, "abc", v)
	}
	assert.Equal(t, 1, vault.calls)

	// failures are retried on the next lookup
	_, err := cache.GetSecret(ctx, "missing")
	assert.Error(t, err)
	_, err = cache.GetSecret(ctx, "missing")
	assert.Error(t, err)
	assert.Equal(t, 3, vault.calls)
}
