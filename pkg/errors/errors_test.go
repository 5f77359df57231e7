package errors_test

import (
	"fmt"
	"testing"

	"github.com/perfkit/tunectl/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrInvalidSelection, "no such profile")
	assert.Equal(t, "[INVALID_SELECTION] no such profile", err.Error())
	assert.Equal(t, errors.ErrInvalidSelection, errors.GetCode(err))
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		inner    error
		code     errors.ErrorCode
		wantNil  bool
		wantText string
	}{
		{
			name:     "wraps_io_error",
			inner:    fmt.Errorf("permission denied"),
			code:     errors.ErrSnapshotFailure,
			wantText: "[SNAPSHOT_FAILURE] taking snapshot: permission denied",
		},
		{
			name:    "nil_error_returns_nil",
			inner:   nil,
			code:    errors.ErrSnapshotFailure,
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.Wrap(tt.inner, tt.code, "taking snapshot")
			if tt.wantNil {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tt.wantText, err.Error())
			assert.Equal(t, tt.inner, err.Unwrap())
		})
	}
}

func TestIsCode(t *testing.T) {
	inner := errors.New(errors.ErrFileAccess, "stat failed")
	outer := errors.Wrap(inner, errors.ErrWriteFailure, "writing config")

	assert.True(t, errors.IsCode(outer, errors.ErrWriteFailure))
	assert.False(t, errors.IsCode(outer, errors.ErrRestoreFailure))
	assert.Equal(t, errors.ErrUnknown, errors.GetCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrRestoreFailure, "restore failed").
		WithDetail("path", "/etc/sysctl.d/99-tunectl.conf")
	assert.Equal(t, "/etc/sysctl.d/99-tunectl.conf", err.Details["path"])
}
