// Package validator is the host validation framework the phone rule reports
// into: a small error model and a rule-application helper.
//
// A Rule pairs a boolean Check with the ValidationError it produces. Apply
// evaluates rules in order and aggregates every failure into a
// ValidationErrors slice that satisfies the error interface, so several
// field-level problems travel through a single error return.
//
// # Usage
//
//	err := validator.Apply(
//	    rule.AsValidatorRule(ctx, model, "phone"),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    msgs := verrs.Get("phone")
//	    _ = msgs
//	}
//
// # Error Handling
//
// ValidationErrors implements Error and Is, so errors.Is(err, ErrValidationFailed)
// and errors.As both work on wrapped values. Every ValidationError carries a
// TranslationKey and TranslationValues; Localize swaps messages for their
// translations using any TranslateFunc.
package validator
