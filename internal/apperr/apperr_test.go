package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindSignature, KindOf(Signature("bad signature")))
	assert.Equal(t, KindUpstream, KindOf(Upstream("provider down")))
	assert.Equal(t, KindInternal, KindOf(errors.New("untagged")))
}

func TestKindOf_Wrapped(t *testing.T) {
	// The kind survives fmt.Errorf wrapping.
	err := fmt.Errorf("verifying account: %w", NotFound("no such account"))
	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindUpstream))
}

func TestWithCodes(t *testing.T) {
	err := Upstream("card was declined").
		WithCode("card_declined").
		WithDeclineCode("insufficient_funds")
	assert.Equal(t, "card_declined", err.Code)
	assert.Equal(t, "insufficient_funds", err.DeclineCode)
	assert.Equal(t, "card was declined", err.Error())
}
