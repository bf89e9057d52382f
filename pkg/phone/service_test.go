package phone_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/phonerule/pkg/phone"
)

func TestLibService(t *testing.T) {
	t.Parallel()

	svc := phone.NewLibService()

	t.Run("formats a valid number in every style", func(t *testing.T) {
		t.Parallel()

		n, err := svc.Parse("6502530000", "US")
		require.NoError(t, err)
		require.True(t, svc.IsValid(n))

		cases := map[phone.Style]string{
			phone.StyleDefault:       "+1 650-253-0000",
			phone.StyleInternational: "+1 650-253-0000",
			phone.StyleE164:          "+16502530000",
			phone.StyleNational:      "(650) 253-0000",
			phone.StyleRFC3966:       "tel:+1-650-253-0000",
		}
		for style, want := range cases {
			got, err := svc.Format(n, style)
			require.NoError(t, err, style.String())
			assert.Equal(t, want, got, style.String())
		}

		_, err = svc.Format(n, phone.StyleNone)
		assert.ErrorIs(t, err, phone.ErrUnsupportedStyle)
	})

	t.Run("parse errors wrap ErrParse", func(t *testing.T) {
		t.Parallel()

		_, err := svc.Parse("not-a-number", "US")
		assert.ErrorIs(t, err, phone.ErrParse)
	})

	t.Run("short number parses but is invalid", func(t *testing.T) {
		t.Parallel()

		n, err := svc.Parse("123", "US")
		require.NoError(t, err)
		assert.False(t, svc.IsValid(n))
	})

	t.Run("foreign numbers are rejected", func(t *testing.T) {
		t.Parallel()

		assert.False(t, svc.IsValid("6502530000"))
		assert.False(t, svc.IsValid(nil))

		_, err := svc.Format("6502530000", phone.StyleE164)
		assert.ErrorIs(t, err, phone.ErrUnsupportedNumber)
	})
}

func TestRule_WithLibService(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("rewrites with the default service", func(t *testing.T) {
		t.Parallel()

		model := phone.NewMapModel(map[string]any{"country_code": "US", "phone": "6502530000"})
		out := phone.New(phone.DefaultConfig()).Validate(ctx, model, "phone")

		require.True(t, out.Valid)
		assert.Equal(t, "+1 650-253-0000", model.Values["phone"])
	})

	t.Run("reformatting is idempotent", func(t *testing.T) {
		t.Parallel()

		cfg := phone.DefaultConfig()
		cfg.Country = "US"
		rule := phone.New(cfg)

		model := phone.NewMapModel(map[string]any{"phone": "(650) 253-0000"})
		require.True(t, rule.Validate(ctx, model, "phone").Valid)
		first := model.Values["phone"]

		require.True(t, rule.Validate(ctx, model, "phone").Valid)
		assert.Equal(t, first, model.Values["phone"])
		assert.Equal(t, "+1 650-253-0000", first)
	})

	t.Run("country attribute selects the region", func(t *testing.T) {
		t.Parallel()

		cfg := phone.DefaultConfig()
		cfg.CountryAttribute = "region"
		model := phone.NewMapModel(map[string]any{
			"region":       "GB",
			"country_code": "US",
			"phone":        "020 7031 3000",
		})

		out := phone.New(cfg).Validate(ctx, model, "phone")

		require.True(t, out.Valid)
		assert.Equal(t, "GB", out.Country)
		assert.Equal(t, "+44 20 7031 3000", model.Values["phone"])
	})

	t.Run("failures keep the raw value", func(t *testing.T) {
		t.Parallel()

		cfg := phone.DefaultConfig()
		cfg.Country = "US"
		rule := phone.New(cfg)

		cases := map[string]phone.ErrorKind{
			"not-a-number": phone.KindParseFailure,
			"123":          phone.KindInvalidNumber,
		}
		for raw, kind := range cases {
			model := phone.NewMapModel(map[string]any{"phone": raw})
			out := rule.Validate(ctx, model, "phone")

			assert.False(t, out.Valid, raw)
			assert.Equal(t, kind, out.Kind, raw)
			assert.Equal(t, raw, model.Values["phone"])
			assert.Equal(t, []string{kind.DefaultMessage()}, model.Errors.Get("phone"))
		}
	})

	t.Run("format disabled leaves value untouched", func(t *testing.T) {
		t.Parallel()

		cfg := phone.DefaultConfig()
		cfg.Country = "US"
		cfg.Format = phone.StyleNone
		model := phone.NewMapModel(map[string]any{"phone": "650 253 0000"})

		out := phone.New(cfg).Validate(ctx, model, "phone")

		require.True(t, out.Valid)
		assert.False(t, out.Rewritten)
		assert.Equal(t, "650 253 0000", model.Values["phone"])
	})
}
