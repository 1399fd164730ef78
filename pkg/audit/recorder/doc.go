// Package recorder provides asynchronous audit event recording.
//
// The Recorder accepts stage events from the dispatch pipeline and writes
// them to storage from a background worker. Emission never blocks: when
// the buffer is full the event is dropped and counted, keeping the
// dispatch path free of storage latency.
package recorder
