package constants

import "errors"

// Command-line errors.
var (
	ErrUnsupportedOutputFormat = errors.New("unsupported output format, expected table, json or yaml")
	ErrUnknownConfigKey        = errors.New("unknown configuration key")
	ErrInvalidChannel          = errors.New("invalid channel, expected sms or whatsapp")
	ErrInvalidVertical         = errors.New("invalid vertical, expected consumer or b2b")
	ErrNoUpdateFields          = errors.New("no fields to update, set at least one flag")
	ErrTemplateContentRequired = errors.New("template content is required (use --content or --content-file)")
	ErrPublicKeyRequired       = errors.New("public key is required (use --public-key or --file)")
	ErrConflictingFlags        = errors.New("flags cannot be used together")
	ErrSecretPromptFailed      = errors.New("failed to read workspace key secret")
)
