// Package config loads configuration structs from the process environment.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tag parsing):
//
//   - Load parses a struct once per type and caches the result.
//   - LoadPrefixed parses without caching and prepends a prefix to every env
//     tag, which is how several phone rules of the same Config type are
//     configured side by side (PHONE_COUNTRY, FAX_COUNTRY, ...).
//   - LoadEnv reads extra .env files; MustLoad panics on failure.
//   - ResetCache clears the cache between tests.
//
// Fields may use any type env supports, including types implementing
// encoding.TextUnmarshaler such as phone.Style.
//
// # Error Handling
//
// Failures wrap the sentinel errors ErrParsingConfig, ErrLoadingEnvFile and
// ErrNilPointer, so callers can use errors.Is.
package config
