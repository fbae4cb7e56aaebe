package pipe

// Writer accepts byte buffers for FIFO delivery to an underlying transport
// and supports blocking until everything previously submitted has reached
// the OS. Write takes ownership of nothing; callers must not mutate buf
// after passing it in, since implementations may retain the slice.
type Writer interface {
	// Write enqueues buf for delivery, returning once it is queued (not
	// once it is delivered — call Flush to wait for that).
	Write(buf []byte) error
	// Flush blocks until every buffer submitted to Write before this call
	// has been handed to the OS.
	Flush() error
	// Close stops accepting writes. BlockingWriter delivers the buffers
	// already queued before Close returns; NonBlockingWriter does not wait
	// for its queue to drain.
	Close() error
}
