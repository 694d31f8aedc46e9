package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountingReader(t *testing.T) {
	var counted int64
	r := &countingReader{
		r:      strings.NewReader(strings.Repeat("a", 1000)),
		onRead: func(n int64) { counted += n },
	}

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Len(t, out, 1000)
	assert.Equal(t, int64(1000), counted)
}

func TestCountingReaderNilCallback(t *testing.T) {
	r := &countingReader{r: strings.NewReader("abc")}
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))
}
