package operation

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyIdentity(t *testing.T) {
	tests := []struct {
		identity string
		expected IdentityKind
	}{
		{"a@b.com", Email},
		{"user@example.com", Email},
		{"example.com", Domain},
		{"mail.sub.example.com", Domain},
		{"@leading", Email},
		{"trailing@", Email},
		{"odd@middle@twice", Email},
		{"", Domain},
	}

	for _, tt := range tests {
		t.Run(tt.identity, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyIdentity(tt.identity))
		})
	}
}

func TestBuildParams(t *testing.T) {
	tests := []struct {
		name           string
		op             Operation
		expectedAction string
		expectedPairs  map[string]string
	}{
		{
			name:           "Verify Email",
			op:             Verify("a@b.com"),
			expectedAction: "VerifyEmailIdentity",
			expectedPairs:  map[string]string{"EmailAddress": "a@b.com"},
		},
		{
			name:           "Verify Domain",
			op:             Verify("example.com"),
			expectedAction: "VerifyDomainIdentity",
			expectedPairs:  map[string]string{"Domain": "example.com"},
		},
		{
			name:           "List",
			op:             List(),
			expectedAction: "ListIdentities",
			expectedPairs:  map[string]string{},
		},
		{
			name:           "Delete",
			op:             Delete("old@example.com"),
			expectedAction: "DeleteIdentity",
			expectedPairs:  map[string]string{"Identity": "old@example.com"},
		},
		{
			name:           "Attributes",
			op:             Attributes([]string{"a.com", "b.com"}),
			expectedAction: "GetIdentityVerificationAttributes",
			expectedPairs: map[string]string{
				"Identities.member.1": "a.com",
				"Identities.member.2": "b.com",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := BuildParams(tt.op)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAction, params.Action)
			assert.Equal(t, len(tt.expectedPairs), params.Len(), "unexpected parameter count")
			for key, expected := range tt.expectedPairs {
				assert.Equal(t, expected, params.Get(key), "parameter %q", key)
			}
		})
	}
}

// Exactly one parameter group may be populated per operation.
func TestBuildParams_SingleGroup(t *testing.T) {
	groupOf := func(key string) string {
		if strings.HasPrefix(key, "Identities.member.") {
			return "Identities.member.*"
		}
		return key
	}

	ops := []Operation{
		Verify("a@b.com"),
		Verify("example.com"),
		Delete("example.com"),
		Attributes([]string{"a.com", "b.com", "c@d.com"}),
	}
	for _, op := range ops {
		params, err := BuildParams(op)
		require.NoError(t, err)
		groups := make(map[string]bool)
		for _, key := range params.Keys() {
			groups[groupOf(key)] = true
		}
		assert.Len(t, groups, 1, "operation %+v populated more than one group", op)
	}

	// List populates no group at all.
	params, err := BuildParams(List())
	require.NoError(t, err)
	assert.Zero(t, params.Len())
}

func TestBuildParams_AttributesIndexing(t *testing.T) {
	identities := []string{"a.com", "b.com", "x@y.com", "z.org"}
	params, err := BuildParams(Attributes(identities))
	require.NoError(t, err)

	require.Equal(t, len(identities), params.Len())
	for i, identity := range identities {
		key := fmt.Sprintf("Identities.member.%d", i+1)
		assert.Equal(t, identity, params.Get(key), "wrong value under %s", key)
	}
	// Input order must survive as key order.
	assert.Equal(t, []string{
		"Identities.member.1",
		"Identities.member.2",
		"Identities.member.3",
		"Identities.member.4",
	}, params.Keys())
}

func TestBuildParams_UnknownKind(t *testing.T) {
	_, err := BuildParams(Operation{Kind: Kind(42)})
	assert.Error(t, err)
}
