// Package redis opens go-redis clients with retrying connection logic,
// plus healthcheck and shutdown hooks matching pkg/database.
package redis
