// Package forward delivers collected records to a downstream sink.
//
// Forwarding is strictly best-effort: one JSON POST per record, a bounded
// per-request timeout, no retries, and the response body is discarded. The
// collectors call Deliver after a record has already been persisted locally,
// so a delivery failure never affects stored data – callers log the error
// and move on.
//
// The wire format wraps every record in a data envelope:
//
//	{"data": <record>}
//
// sent with Content-Type: application/json to a fixed relative path on the
// configured base URL (VisitorPath or LeadPath).
//
// NoopSink satisfies the same interface for deployments without a backend.
package forward
