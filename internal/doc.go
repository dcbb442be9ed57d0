// Package internal implements the swilen application kernel: the App
// bootstrapper, the Context request/response abstraction, the chi-backed
// router adapter, and the error handling pipeline. The public surface is
// re-exported from the root swilen package.
package internal
