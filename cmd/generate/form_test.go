package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"frogjump-go/pkg/uniform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptRequest(t *testing.T) {
	in := strings.NewReader("abc\n10\n0\n100\n1\n5\n100\n10\n-10\n")
	var out bytes.Buffer

	req, err := promptRequest(in, &out)
	require.NoError(t, err)
	assert.Equal(t, uniform.Request{Count: 100, Min: -10, Max: 10}, req)
	assert.Contains(t, out.String(), "please enter valid numeric values")
	assert.Contains(t, out.String(), "minimum must be less than the maximum")
}

func TestPromptRequestEOF(t *testing.T) {
	_, err := promptRequest(strings.NewReader("10\n"), io.Discard)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
