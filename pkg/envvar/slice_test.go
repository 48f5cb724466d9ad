package envvar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nasraldin/env-x-utils/pkg/envvar"
)

func TestToSlice(t *testing.T) {
	t.Parallel()

	type widget struct{ ID int }

	tests := []struct {
		name  string
		input any
		want  []any
	}{
		{name: "nil", input: nil, want: []any{}},
		{name: "slice as-is", input: []any{1, 2}, want: []any{1, 2}},
		{name: "typed slice", input: []int{1, 2}, want: []any{1, 2}},
		{name: "comma separated with spacing", input: "a, b ,c", want: []any{"a", "b", "c"}},
		{name: "empty segments dropped", input: "a,,b,", want: []any{"a", "b"}},
		{name: "single string", input: "solo", want: []any{"solo"}},
		{name: "string trimmed", input: "  solo  ", want: []any{"solo"}},
		{name: "empty string", input: "", want: []any{}},
		{name: "whitespace string", input: "   ", want: []any{}},
		{name: "struct wrapped", input: widget{ID: 1}, want: []any{widget{ID: 1}}},
		{name: "map wrapped", input: map[string]any{"id": 1}, want: []any{map[string]any{"id": 1}}},
		{name: "number wrapped", input: 7, want: []any{7}},
		{name: "bool wrapped", input: true, want: []any{true}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, envvar.ToSlice(tt.input))
		})
	}
}

func TestToSliceUnprocessable(t *testing.T) {
	t.Parallel()

	got := envvar.ToSlice(func() {})
	assert.Equal(t, []any{"[Unprocessable object: func]"}, got)
}

func TestToStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b"}, envvar.ToStrings("a,b"))
	assert.Equal(t, []string{"1", "2"}, envvar.ToStrings([]int{1, 2}))
	assert.Equal(t, []string{}, envvar.ToStrings(nil))
}
