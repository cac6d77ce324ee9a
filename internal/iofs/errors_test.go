package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/wbcharts/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	origErr := errors.New("permission denied")

	tests := []struct {
		name    string
		err     error
		code    gn.ErrorCode
		path    string
		errText string
	}{
		{"CreateDirError", CreateDirError("/test/dir", origErr),
			errcode.CreateDirError, "/test/dir", "cannot create"},
		{"CopyFileError", CopyFileError("/test/config.yaml", origErr),
			errcode.CopyFileError, "/test/config.yaml", "cannot copy"},
		{"ReadFileError", ReadFileError("/test/data.json", origErr),
			errcode.ReadFileError, "/test/data.json", "cannot read"},
		{"WriteFileError", WriteFileError("/test/figures.json", origErr),
			errcode.WriteFileError, "/test/figures.json", "cannot write"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr, ok := tt.err.(*gn.Error)
			require.True(t, ok, "Error should be of type *gn.Error")

			assert.Equal(t, tt.code, gnErr.Code)
			assert.Contains(t, gnErr.Msg, "%s")
			require.Len(t, gnErr.Vars, 1)
			assert.Equal(t, tt.path, gnErr.Vars[0])

			// caller context comes from runtime.Caller
			assert.Contains(t, gnErr.Err.Error(), "from")
			assert.Contains(t, gnErr.Err.Error(), tt.errText)
			assert.ErrorIs(t, gnErr.Err, origErr)
		})
	}
}
