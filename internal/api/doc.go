// Package api implements the HTTP transport for the Voicenotes API:
// authentication headers, JSON encoding, retry with exponential backoff,
// and wire-level error parsing. The public voicenotes package translates
// the errors produced here into its typed taxonomy.
package api
