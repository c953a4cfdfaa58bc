package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkdn/berlin-clock/clock"
)

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run([]string{"23:59:59"}, &buf))
	assert.Equal(t, "O\nRRRR\nRRRO\nYYRYYRYYRYY\nYYYY\n", buf.String())
}

func TestRunErrors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no args", args: nil, wantErr: ErrTimeArgRequired},
		{name: "too many args", args: []string{"12:00:00", "13:00:00"}, wantErr: ErrTimeArgRequired},
		{name: "empty", args: []string{""}, wantErr: clock.ErrEmptyInput},
		{name: "malformed", args: []string{"12:15"}, wantErr: clock.ErrMalformedFormat},
		{name: "out of range", args: []string{"25:00:00"}, wantErr: clock.ErrOutOfRange},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := run(tc.args, &buf)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Zero(t, buf.Len())
		})
	}
}
