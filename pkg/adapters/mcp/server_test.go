package mcp

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolamkit/kolam"
	"github.com/kolamkit/kolam/pkg/domain"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gen, err := kolam.New(kolam.WithSeed(42))
	require.NoError(t, err)
	return NewServer(gen, nil)
}

func TestDecodeArgs(t *testing.T) {
	// Tool arguments arrive as generic JSON values, numbers as float64.
	args := map[string]interface{}{
		"size":     float64(7),
		"seed":     float64(11),
		"mutation": "asymmetry",
	}

	var in generateArgs
	require.NoError(t, decodeArgs(args, &in))
	assert.Equal(t, 7, in.Size)
	require.NotNil(t, in.Seed)
	assert.Equal(t, int64(11), *in.Seed)
	assert.Equal(t, "asymmetry", in.Mutation)

	var empty generateArgs
	require.NoError(t, decodeArgs(map[string]interface{}{"size": float64(5)}, &empty))
	assert.Equal(t, 5, empty.Size)
	assert.Nil(t, empty.Seed)
	assert.Empty(t, empty.Mutation)
}

func TestHandleGenerate(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	p, err := s.handleGenerate(ctx, mcp.CallToolRequest{}, map[string]interface{}{"size": float64(5)})
	require.NoError(t, err)
	assert.Equal(t, "kolam-5x5", p.ID)
	assert.Len(t, p.Dots, 25)
}

func TestHandleGenerate_Seeded(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	args := map[string]interface{}{"size": float64(7), "seed": float64(3)}

	a, err := s.handleGenerate(ctx, mcp.CallToolRequest{}, args)
	require.NoError(t, err)
	b, err := s.handleGenerate(ctx, mcp.CallToolRequest{}, args)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestHandleGenerate_Errors(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, err := s.handleGenerate(ctx, mcp.CallToolRequest{}, map[string]interface{}{"size": float64(99)})
	assert.ErrorIs(t, err, domain.ErrInvalidSize)

	_, err = s.handleGenerate(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"size":     float64(5),
		"mutation": "melted",
	})
	assert.ErrorIs(t, err, domain.ErrUnknownMutation)
}
