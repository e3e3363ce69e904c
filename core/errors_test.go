package core

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	err := Error(EINVALID, "unknown casing backend %q", "klingon")
	assert.Equal(t, EINVALID, Code(err))
	assert.Equal(t, `unknown casing backend "klingon"`, UserMessage(err))
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	assert.Equal(t, "internal error", UserMessage(errors.New("plain")))
}

func TestWrapErrorKeepsChain(t *testing.T) {
	err := WrapError(fs.ErrNotExist, EMISSING, "no patterns for %s", "de")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Equal(t, EMISSING, Code(err))
	assert.Contains(t, err.Error(), "no patterns for de")
	//
	err = ErrorWithCode(nil, EIO)
	assert.Equal(t, EIO, Code(err))
	assert.Equal(t, "i/o error", UserMessage(err))
}

func TestSentinels(t *testing.T) {
	err := fmt.Errorf("loading: %w", Error(EMISSING, "no patterns for %s", "eu"))
	assert.True(t, errors.Is(err, ErrMissing))
	assert.False(t, errors.Is(err, ErrInvalid))
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, "no patterns for eu", UserMessage(err))
}

func TestReportError(t *testing.T) {
	var buf bytes.Buffer
	ReportError(&buf, Error(EINVALID, "unknown transformation %q", "rot13"))
	assert.Equal(t, "[123] unknown transformation \"rot13\"\n", buf.String())
	buf.Reset()
	ReportError(&buf, errors.New("plain"))
	assert.Equal(t, "Error: plain\n", buf.String())
	buf.Reset()
	ReportError(&buf, nil)
	assert.Empty(t, buf.String())
}
