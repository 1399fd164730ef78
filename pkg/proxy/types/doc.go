// Package types defines the proxy's wire-level request and response
// shapes: the execute envelope, the success envelope, and the uniform
// error envelope shared by every endpoint and middleware layer.
package types
