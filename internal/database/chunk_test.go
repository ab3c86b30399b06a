package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func docs(n int) []interface{} {
	out := make([]interface{}, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestChunkDocs(t *testing.T) {
	require.Nil(t, chunkDocs(docs(0), 10))

	chunks := chunkDocs(docs(5), 10)
	require.Len(t, chunks, 1)
	require.Len(t, chunks[0], 5)

	chunks = chunkDocs(docs(10), 10)
	require.Len(t, chunks, 1)
	require.Len(t, chunks[0], 10)

	chunks = chunkDocs(docs(25), 10)
	require.Len(t, chunks, 3)
	require.Len(t, chunks[0], 10)
	require.Len(t, chunks[1], 10)
	require.Len(t, chunks[2], 5)

	// every element survives chunking in order
	total := 0
	for _, c := range chunks {
		for _, v := range c {
			require.Equal(t, total, v)
			total++
		}
	}
	require.Equal(t, 25, total)
}
