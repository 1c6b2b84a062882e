// Package atlas is a small client for the MongoDB Atlas management API (v1.0).
//
// Each resource group is a service hanging off *Client, with one method per
// upstream operation. Methods return the JSON body as a generic value
// (json.RawMessage from HTTPDoer) so callers can re-serialize it verbatim.
//
// Requests go through a Doer. The production Doer, HTTPDoer, signs requests with
// HTTP digest authentication and retries transient failures.
package atlas
