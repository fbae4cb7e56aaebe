package pipe

import (
	"bufio"
	"bytes"
	"testing"
)

func TestMessageFramingRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	w := NewBlockingWriter(&buf)

	msg1 := []byte(`{"jsonrpc":"2.0","method":"one"}`)
	msg2 := []byte(`{"jsonrpc":"2.0","method":"two"}`)

	if err := WriteMessage(w, msg1); err != nil {
		t.Fatalf("write message 1: %v", err)
	}
	if err := WriteMessage(w, msg2); err != nil {
		t.Fatalf("write message 2: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	w.Close()

	reader := bufio.NewReader(bytes.NewReader(buf.Bytes()))
	got1, err := ReadMessage(reader)
	if err != nil {
		t.Fatalf("read message 1: %v", err)
	}
	got2, err := ReadMessage(reader)
	if err != nil {
		t.Fatalf("read message 2: %v", err)
	}

	if string(got1) != string(msg1) {
		t.Fatalf("unexpected message 1: %s", got1)
	}
	if string(got2) != string(msg2) {
		t.Fatalf("unexpected message 2: %s", got2)
	}
}

func TestReadMessageRequiresContentLength(t *testing.T) {
	reader := bufio.NewReader(bytes.NewReader([]byte("X-Custom: 1\r\n\r\nbody")))
	if _, err := ReadMessage(reader); err == nil {
		t.Fatal("expected an error for a message with no Content-Length header")
	}
}
