// Package audit defines the audit trail for dispatched operations.
//
// Every request produces one event per pipeline stage transition
// (validation, provider_call, provider_response, response_normalization),
// keyed by the request's correlation id. Events are written asynchronously
// so the dispatch path never blocks on storage.
//
// # Architecture
//
// The package is split into focused subpackages:
//
//   - audit (this package): event model, query model, storage contract
//   - audit/recorder: async event recording with bounded buffering
//   - audit/storage: SQLite and in-memory storage backends
//   - audit/retention: scheduled pruning of aged events
//
// # Usage
//
//	store, err := storage.NewSQLiteStorage(nil)
//	if err != nil {
//		return err
//	}
//	rec := recorder.New(store, nil)
//	defer rec.Close()
//
//	registry := dispatch.NewRegistry(limiter, engine, dispatch.WithAudit(rec))
package audit
