// Package env loads environment variables from .env-style files into an
// immutable-by-default store.
//
// File format:
//
//	# full-line comment
//	APP_NAME=swilen
//	export APP_ENV=development   # trailing comment
//	APP_KEY=base64:c2VjcmV0
//	APP_URL="http://${APP_HOST}:8080"
//	APP_DEBUG!=true              # trailing ! marks the key replaceable
//
// Keys already present in the store (including values inherited from the
// process environment) are never overwritten unless the entry's key
// carries the replaceable marker. Values prefixed with "base64:" are
// decoded with standard base64; values prefixed with "swilen:" are
// decoded with URL-safe base64. ${VAR} references resolve against the
// store being built, then the process environment.
package env
