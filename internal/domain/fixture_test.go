package domain

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFixture(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Fixture
		wantErr error
	}{
		{
			name: "two arguments",
			args: []string{"Parser", "Empty"},
			want: Fixture{ClassName: "Parser", TestName: "Empty"},
		},
		{
			name: "extra arguments are ignored",
			args: []string{"Foo", "Bar", "Baz"},
			want: Fixture{ClassName: "Foo", TestName: "Bar"},
		},
		{
			name:    "no arguments",
			args:    nil,
			wantErr: ErrMissingArguments,
		},
		{
			name:    "one argument",
			args:    []string{"Foo"},
			wantErr: ErrMissingArguments,
		},
		{
			name:    "empty test name",
			args:    []string{"Foo", ""},
			wantErr: ErrMissingArguments,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewFixture(tt.args)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteError(t *testing.T) {
	err := error(&WriteError{Path: "out/TestFoo.cpp", Err: fs.ErrPermission})

	assert.Contains(t, err.Error(), "out/TestFoo.cpp")
	assert.ErrorIs(t, err, fs.ErrPermission)

	var writeErr *WriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, "out/TestFoo.cpp", writeErr.Path)
}
