package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverResolve(t *testing.T) {
	stub := &stubCompleter{response: "- Go\n- Kubernetes\n"}

	got, err := NewResolver(stub, nil).Resolve(context.Background(), "  Backend Engineer ")

	require.NoError(t, err)
	assert.Equal(t, "- Go\n- Kubernetes\n", got)

	require.Len(t, stub.requests, 1)
	req := stub.requests[0]
	assert.Equal(t, "You are a helpful assistant.", req.System)
	assert.False(t, req.JSON)
	assert.Contains(t, req.Prompt, `for the job title: "Backend Engineer".`)
	assert.Contains(t, req.Prompt, "concise list")
}

func TestResolverRejectsEmptyTitle(t *testing.T) {
	stub := &stubCompleter{response: "unused"}

	_, err := NewResolver(stub, nil).Resolve(context.Background(), "   ")

	require.Error(t, err)
	assert.Empty(t, stub.requests)
}

func TestResolverErrors(t *testing.T) {
	callErr := errors.New("boom")

	tests := map[string]*stubCompleter{
		"call failure":   {err: callErr},
		"blank response": {response: " \n "},
	}

	for name, stub := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewResolver(stub, nil).Resolve(context.Background(), "Data Analyst")
			require.Error(t, err)
			if stub.err != nil {
				assert.ErrorIs(t, err, callErr)
			}
		})
	}
}
