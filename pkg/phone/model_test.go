package phone_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/phonerule/pkg/phone"
)

func TestMapModel(t *testing.T) {
	t.Parallel()

	m := phone.NewMapModel(nil)

	_, ok := m.Get("phone")
	assert.False(t, ok)

	require.NoError(t, m.Set("phone", "+1 650-253-0000"))
	v, ok := m.Get("phone")
	assert.True(t, ok)
	assert.Equal(t, "+1 650-253-0000", v)

	m.Values["fax"] = nil
	_, ok = m.Get("fax")
	assert.False(t, ok)

	m.AddError("phone", "bad")
	assert.True(t, m.Errors.Has("phone"))
}

type Address struct {
	CountryCode string
}

type contact struct {
	Address
	Region  string  `phone:"region"`
	Mobile  string  `json:"mobile_phone,omitempty"`
	Phone   string
	Fax     *string
	Country *string
	Ext     int
	secret  string
}

func TestStructModel(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-struct pointers", func(t *testing.T) {
		t.Parallel()

		for _, v := range []any{nil, contact{}, (*contact)(nil), new(string)} {
			_, err := phone.NewStructModel(v)
			assert.ErrorIs(t, err, phone.ErrNotStructPointer)
		}
	})

	t.Run("field lookup", func(t *testing.T) {
		t.Parallel()

		c := &contact{
			Address: Address{CountryCode: "US"},
			Region:  "GB",
			Mobile:  "07400 123456",
			Phone:   "6502530000",
			Ext:     42,
			secret:  "x",
		}
		m, err := phone.NewStructModel(c)
		require.NoError(t, err)

		cases := map[string]any{
			"region":       "GB",
			"mobile_phone": "07400 123456",
			"Phone":        "6502530000",
			"phone":        "6502530000",
			"country_code": "US",
			"ext":          42,
		}
		for field, want := range cases {
			got, ok := m.Get(field)
			assert.True(t, ok, field)
			assert.Equal(t, want, got, field)
		}

		for _, field := range []string{"fax", "country", "secret", "missing", ""} {
			_, ok := m.Get(field)
			assert.False(t, ok, field)
		}
	})

	t.Run("set", func(t *testing.T) {
		t.Parallel()

		c := &contact{}
		m, err := phone.NewStructModel(c)
		require.NoError(t, err)

		require.NoError(t, m.Set("phone", "+1 650-253-0000"))
		assert.Equal(t, "+1 650-253-0000", c.Phone)

		require.NoError(t, m.Set("fax", "+1 650-253-0001"))
		require.NotNil(t, c.Fax)
		assert.Equal(t, "+1 650-253-0001", *c.Fax)

		assert.ErrorIs(t, m.Set("missing", "x"), phone.ErrFieldNotFound)
		assert.ErrorIs(t, m.Set("ext", "x"), phone.ErrFieldNotSettable)
		assert.ErrorIs(t, m.Set("phone", 42), phone.ErrFieldNotSettable)
	})

	t.Run("validates and rewrites a struct", func(t *testing.T) {
		t.Parallel()

		c := &contact{Address: Address{CountryCode: "US"}, Phone: "6502530000"}
		m, err := phone.NewStructModel(c)
		require.NoError(t, err)

		out := phone.New(phone.DefaultConfig()).Validate(context.Background(), m, "phone")
		require.True(t, out.Valid)
		assert.Equal(t, "+1 650-253-0000", c.Phone)
		assert.True(t, m.Errors.IsEmpty())
	})

	t.Run("collects errors", func(t *testing.T) {
		t.Parallel()

		country := "US"
		c := &contact{Country: &country, Phone: "123"}
		m, err := phone.NewStructModel(c)
		require.NoError(t, err)

		out := phone.New(phone.DefaultConfig()).Validate(context.Background(), m, "phone")
		assert.Equal(t, phone.KindInvalidNumber, out.Kind)
		assert.Equal(t, "US", out.Country)
		assert.Equal(t, "123", c.Phone)
		assert.Equal(t, []string{phone.KindInvalidNumber.DefaultMessage()}, m.Errors.Get("phone"))
	})
}
