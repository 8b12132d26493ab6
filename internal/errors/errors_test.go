package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AliceZed8/zfbv/internal/errors"
)

func TestNilGuardsWithoutArguments(t *testing.T) {
	assert.Error(t, errors.NilParam())
	assert.Error(t, errors.NilReceiver())
}

func TestNilParamDetectsNilArguments(t *testing.T) {
	assert.Error(t, errors.NilParam(nil))
	assert.Error(t, errors.NilParam(1, `a`, nil))
	assert.NoError(t, errors.NilParam(1, `a`))
}

func TestNilParamMissesTypedNilPointer(t *testing.T) {
	// a typed nil pointer boxed into any is not == nil; callers that
	// hold concrete pointer types must test themselves and call
	// NilParam without arguments
	var p *struct{}
	assert.NoError(t, errors.NilParam(p))
}

func TestNewNilIsNil(t *testing.T) {
	assert.Nil(t, errors.New(nil))
}
