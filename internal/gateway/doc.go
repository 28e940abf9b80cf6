// Package gateway is the single point of contact with the PostgREST content
// store. Every call returns an Envelope: transport failures, store-reported
// failures and undecodable bodies all come back as data, never as panics or
// Go errors, so callers decide which failures are fatal for their page.
package gateway
