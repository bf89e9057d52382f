package phone_test

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrymomot/phonerule/pkg/i18n"
	"github.com/dmitrymomot/phonerule/pkg/logger"
	"github.com/dmitrymomot/phonerule/pkg/phone"
)

func ExampleRule_Validate() {
	ctx := context.Background()

	model := phone.NewMapModel(map[string]any{
		"country_code": "US",
		"phone":        "6502530000",
	})
	out := phone.New(phone.DefaultConfig()).Validate(ctx, model, "phone")

	fmt.Println(out.Valid, model.Values["phone"])
	// Output: true +1 650-253-0000
}

func ExampleWithTranslator() {
	ctx := context.Background()

	tr, err := i18n.DefaultMessages(ctx)
	if err != nil {
		panic(err)
	}
	log := logger.New(
		logger.WithEnvironment(logger.EnvProduction, "signup"),
		logger.WithOutput(io.Discard),
		logger.WithContextExtractors(i18n.LocaleExtractor),
	)

	cfg := phone.DefaultConfig()
	cfg.Country = "US"
	rule := phone.New(cfg, phone.WithTranslator(tr), phone.WithLogger(log))

	out := rule.Validate(i18n.SetLocale(ctx, "de"), phone.NewMapModel(map[string]any{"phone": "123"}), "phone")

	fmt.Println(out.Kind)
	fmt.Println(out.Message)
	// Output:
	// invalid_number
	// Die Telefonnummer scheint nicht gültig zu sein
}
