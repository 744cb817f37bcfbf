// Package tlsroots builds the trusted root pool for requests to the
// monitoring service: the system roots plus an optional PEM bundle,
// for endpoints behind a private CA or an intercepting proxy.
package tlsroots
