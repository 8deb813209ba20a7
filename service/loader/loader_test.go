package loader

import (
	"context"
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	_ "github.com/viant/afs/embed"
)

//go:embed testdata/*
var embedFS embed.FS

func TestService_Load(t *testing.T) {
	srv := New("embed:///testdata", &embedFS)

	processes, err := srv.Load(context.Background(), "workload.txt")
	assert.NoError(t, err)
	if !assert.Len(t, processes, 4) {
		return
	}
	assert.Equal(t, "P1", processes[0].ID)
	assert.Equal(t, 2, processes[0].Priority)
	assert.Equal(t, 14, processes[0].Burst)
	assert.Equal(t, 0, processes[0].Arrival)
	assert.Equal(t, 14, processes[0].Remaining)

	assert.Equal(t, "P4", processes[3].ID)
	assert.Equal(t, 20, processes[3].Arrival)
}

func TestService_LoadMissing(t *testing.T) {
	srv := New("embed:///testdata", &embedFS)
	_, err := srv.Load(context.Background(), "absent.txt")
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expectErr bool
		expectLen int
	}{
		{
			name:      "plain records without header",
			input:     "P1\t1\t5\t0\nP2\t2\t3\t1\n",
			expectLen: 2,
		},
		{
			name:      "header and underline skipped",
			input:     "Process\tPriority\tBurst\tArrival\n-------\t--------\t-----\t-------\nP1\t1\t5\t0\n",
			expectLen: 1,
		},
		{
			name:      "blank lines ignored",
			input:     "\nP1\t1\t5\t0\n\n",
			expectLen: 1,
		},
		{
			name:      "non-numeric priority",
			input:     "P1\thigh\t5\t0\n",
			expectErr: true,
		},
		{
			name:      "missing column",
			input:     "P1\t1\t5\n",
			expectErr: true,
		},
		{
			name:      "zero burst",
			input:     "P1\t1\t0\t0\n",
			expectErr: true,
		},
		{
			name:      "negative arrival",
			input:     "P1\t1\t5\t-2\n",
			expectErr: true,
		},
		{
			name:      "duplicate id",
			input:     "P1\t1\t5\t0\nP1\t2\t3\t1\n",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			processes, err := Parse([]byte(tc.input))
			if tc.expectErr {
				assert.ErrorIs(t, err, ErrMalformedRecord)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, processes, tc.expectLen)
		})
	}
}
