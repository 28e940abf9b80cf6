// Package content exposes the store's tables as typed operations: posts,
// categories, newsletter subscribers and contact messages. Inputs are
// validated before any request; store failures surface as
// *gateway.StoreError values.
package content
