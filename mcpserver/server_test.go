// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package mcpserver

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func decodeStructuredContent[T any](t *testing.T, value any) T {
	t.Helper()

	data, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("marshal structured content: %v", err)
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal structured content: %v", err)
	}

	return out
}

func connectClient(t *testing.T) *mcp.ClientSession {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- New("test", nil).ServeTransport(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)

	connectCtx, connectCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer connectCancel()

	session, err := client.Connect(connectCtx, clientTransport, nil)
	if err != nil {
		cancel()
		t.Fatalf("connect client: %v", err)
	}

	t.Cleanup(func() {
		defer session.Close()

		cancel()

		select {
		case err := <-serveErr:
			if err != nil {
				t.Errorf("serve: %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Error("server did not stop")
		}
	})

	return session
}

func TestServerListsTools(t *testing.T) {
	t.Parallel()

	session := connectClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	res, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}

	names := map[string]bool{}
	for _, tool := range res.Tools {
		names[tool.Name] = true
	}

	if !names[CalculateToolName] || !names[RangesToolName] || len(names) != 2 {
		t.Fatalf("unexpected tools: %v", names)
	}
}

func TestServerCalculateRoundTrip(t *testing.T) {
	t.Parallel()

	session := connectClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: CalculateToolName,
		Arguments: map[string]any{
			"age":                 40,
			"albumin":             5,
			"creatinine":          0.8,
			"glucose":             30,
			"crp":                 0.1,
			"lymphocytePercent":   40,
			"meanCellVolume":      85,
			"redCellDistWidth":    11,
			"alkalinePhosphatase": 50,
			"whiteBloodCellCount": 4,
		},
	})
	if err != nil {
		t.Fatalf("call %s: %v", CalculateToolName, err)
	}

	if res.IsError {
		t.Fatalf("%s returned error content: %+v", CalculateToolName, res.Content)
	}

	out := decodeStructuredContent[CalculateOutput](t, res.StructuredContent)
	if !out.Success || out.Result == nil || out.Result.PhenoAge != 81.9 {
		t.Fatalf("unexpected output: %+v", out)
	}
}

func TestServerCalculateValidationFailure(t *testing.T) {
	t.Parallel()

	session := connectClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      CalculateToolName,
		Arguments: map[string]any{"age": 40},
	})
	if err != nil {
		t.Fatalf("call %s: %v", CalculateToolName, err)
	}

	out := decodeFailure(t, res)
	if out.Success || out.Error == "" {
		t.Fatalf("unexpected failure payload: %+v", out)
	}
}

func TestServerRangesRoundTrip(t *testing.T) {
	t.Parallel()

	session := connectClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      RangesToolName,
		Arguments: map[string]any{},
	})
	if err != nil {
		t.Fatalf("call %s: %v", RangesToolName, err)
	}

	out := decodeStructuredContent[RangesOutput](t, res.StructuredContent)
	if !out.Success || len(out.Ranges) != 9 {
		t.Fatalf("unexpected output: %+v", out)
	}
}

func TestServeTransportRequiresServer(t *testing.T) {
	t.Parallel()

	var s *Server
	if err := s.ServeTransport(context.Background(), nil); err != ErrNotConfigured {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
