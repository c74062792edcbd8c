package templates

import (
	"go/format"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexedStrings(t *testing.T) {
	assert.Equal(t, "A0, A1, A2", prefixedStrings("A", 3))
	assert.Equal(t, "a0 A0, a1 A1", indexedStrings("a# A#", 2))
	assert.Equal(t, "", indexedStrings("x#", 0))
	assert.Equal(t, "Args3[A0, A1, A2]", argsType(3))
}

func TestArgsGenIsFormatted(t *testing.T) {
	src := ArgsGen(5)

	formatted, err := format.Source([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, src, string(formatted))

	assert.True(t, strings.HasPrefix(src, "// Code generated by cmd/codegen. DO NOT EDIT."))
	for _, want := range []string{
		"type Args2[A0, A1 any] struct {",
		"func Func5[A0, A1, A2, A3, A4 any](fn func(ctx context.Context, a0 A0, a1 A1, a2 A2, a3 A3, a4 A4)) Slot[Args5[A0, A1, A2, A3, A4]] {",
		"\te.Emit(ctx, Args3[A0, A1, A2]{V0: v0, V1: v1, V2: v2})",
	} {
		assert.Contains(t, src, want)
	}
	assert.NotContains(t, src, "Args1[")
	assert.NotContains(t, src, "Args6[")
}
