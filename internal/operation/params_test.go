package operation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParams_SetPreservesInsertionOrder(t *testing.T) {
	p := NewParams(ActionAttributes)
	p.Set("Identities.member.1", "a.com")
	p.Set("Identities.member.2", "b.com")
	p.Set("NextToken", "t1")

	assert.Equal(t, []string{"Identities.member.1", "Identities.member.2", "NextToken"}, p.Keys())

	// Replacing a value must not move the key.
	p.Set("NextToken", "t2")
	assert.Equal(t, []string{"Identities.member.1", "Identities.member.2", "NextToken"}, p.Keys())
	assert.Equal(t, "t2", p.Get("NextToken"))
	assert.Equal(t, 3, p.Len())
}

func TestParams_Encode(t *testing.T) {
	p := NewParams(ActionList)
	assert.Equal(t, "Action=ListIdentities", p.Encode())

	p.Set("NextToken", "abc 123+/=")
	assert.Equal(t, "Action=ListIdentities&NextToken=abc+123%2B%2F%3D", p.Encode())
}

func TestParams_EncodeOrdersActionFirst(t *testing.T) {
	p := NewParams(ActionAttributes)
	p.Set("Identities.member.1", "a.com")
	p.Set("Identities.member.2", "b@c.com")

	encoded := p.Encode()
	assert.Equal(t,
		"Action=GetIdentityVerificationAttributes"+
			"&Identities.member.1=a.com"+
			"&Identities.member.2=b%40c.com",
		encoded)
}

func TestParams_GetMissingReturnsEmpty(t *testing.T) {
	p := NewParams(ActionList)
	assert.Empty(t, p.Get("NextToken"))
}
