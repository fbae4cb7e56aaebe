package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"qljs/internal/pipe"
)

type rpcRequest struct {
	ID     json.RawMessage `json:"id,omitempty"`
	Method string          `json:"method"`
}

type rpcResponse struct {
	ID     json.RawMessage `json:"id,omitempty"`
	Result any             `json:"result"`
}

var lspCmd = &cobra.Command{
	Use:   "lsp",
	Short: "Serve the analyzer over a Content-Length-framed stdio pipe",
	Long: `lsp speaks the Content-Length framing spec.md's Design Notes describe for
the analyzer's pipe writer contract (§9), over stdin/stdout. No request or
response semantics beyond accept-and-acknowledge are in scope for this
module — §6.1 places the parser, and with it any real editor feature
surface, fully outside the analyzer — so this command exists to exercise
the blocking pipe writer end to end rather than to serve a complete
language server.`,
	RunE: runLSP,
}

func runLSP(cmd *cobra.Command, args []string) error {
	writer := pipe.NewBlockingWriter(os.Stdout)
	defer writer.Close()

	reader := bufio.NewReader(os.Stdin)
	for {
		payload, err := pipe.ReadMessage(reader)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return writer.Flush()
			}
			return fmt.Errorf("lsp: %w", err)
		}

		var req rpcRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			continue
		}
		if req.ID == nil {
			continue // notification: no response expected
		}

		resp, err := json.Marshal(rpcResponse{ID: req.ID, Result: nil})
		if err != nil {
			return fmt.Errorf("lsp: %w", err)
		}
		if err := pipe.WriteMessage(writer, resp); err != nil {
			return fmt.Errorf("lsp: %w", err)
		}
	}
}
