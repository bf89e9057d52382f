package phone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/phonerule/pkg/config"
	"github.com/dmitrymomot/phonerule/pkg/phone"
)

func TestDefaultConfig(t *testing.T) {
	cfg := phone.DefaultConfig()
	assert.True(t, cfg.Strict)
	assert.Equal(t, phone.StyleDefault, cfg.Format)
	assert.False(t, cfg.SkipOnEmpty)
	assert.Empty(t, cfg.Country)
	assert.Empty(t, cfg.CountryAttribute)
	assert.Empty(t, cfg.Message)
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults match DefaultConfig", func(t *testing.T) {
		cfg, err := phone.LoadConfig("PHONE_TEST_EMPTY_")
		require.NoError(t, err)
		assert.Equal(t, phone.DefaultConfig(), cfg)
	})

	t.Run("default prefix", func(t *testing.T) {
		t.Setenv("PHONE_COUNTRY", "DE")
		t.Setenv("PHONE_STRICT", "false")
		t.Setenv("PHONE_FORMAT", "e164")
		t.Setenv("PHONE_MESSAGE", "Bad phone")
		t.Setenv("PHONE_SKIP_ON_EMPTY", "true")
		t.Setenv("PHONE_COUNTRY_ATTRIBUTE", "region")

		cfg, err := phone.LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, phone.Config{
			Strict:           false,
			CountryAttribute: "region",
			Country:          "DE",
			Format:           phone.StyleE164,
			Message:          "Bad phone",
			SkipOnEmpty:      true,
		}, cfg)
	})

	t.Run("custom prefix keeps rules apart", func(t *testing.T) {
		t.Setenv("BILLING_PHONE_COUNTRY", "GB")
		t.Setenv("BILLING_PHONE_FORMAT", "false")
		t.Setenv("SHIPPING_PHONE_COUNTRY", "US")

		billing, err := phone.LoadConfig("BILLING_PHONE_")
		require.NoError(t, err)
		shipping, err := phone.LoadConfig("SHIPPING_PHONE_")
		require.NoError(t, err)

		assert.Equal(t, "GB", billing.Country)
		assert.Equal(t, phone.StyleNone, billing.Format)
		assert.Equal(t, "US", shipping.Country)
		assert.Equal(t, phone.StyleDefault, shipping.Format)
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Setenv("BROKEN_PHONE_FORMAT", "pretty")

		_, err := phone.LoadConfig("BROKEN_PHONE_")
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}
