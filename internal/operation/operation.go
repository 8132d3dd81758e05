// Package operation defines the four identity operations the tool performs
// and maps each onto the query parameters the remote service expects.
package operation

import (
	"fmt"
	"strings"
)

// Remote action names, one per operation variant. Verify resolves to one of
// two actions depending on the identity's kind.
const (
	ActionVerifyEmail  = "VerifyEmailIdentity"
	ActionVerifyDomain = "VerifyDomainIdentity"
	ActionList         = "ListIdentities"
	ActionDelete       = "DeleteIdentity"
	ActionAttributes   = "GetIdentityVerificationAttributes"
)

// Kind identifies which operation variant is active.
type Kind int

const (
	KindVerify Kind = iota
	KindList
	KindDelete
	KindAttributes
)

// Operation is the selected operation plus its argument(s). Exactly one
// variant is active per invocation; construction goes through Verify, List,
// Delete or Attributes so the payload always matches the kind.
type Operation struct {
	Kind       Kind
	Identity   string   // Verify, Delete
	Identities []string // Attributes
}

// Verify requests verification of a single email address or domain.
func Verify(identity string) Operation {
	return Operation{Kind: KindVerify, Identity: identity}
}

// List requests every registered identity.
func List() Operation {
	return Operation{Kind: KindList}
}

// Delete requests removal of a single identity.
func Delete(identity string) Operation {
	return Operation{Kind: KindDelete, Identity: identity}
}

// Attributes requests verification attributes for the given identities, in
// the given order.
func Attributes(identities []string) Operation {
	return Operation{Kind: KindAttributes, Identities: identities}
}

// IdentityKind distinguishes email addresses from domains. It is derived
// from the identity string, never stored.
type IdentityKind int

const (
	Email IdentityKind = iota
	Domain
)

// ClassifyIdentity returns Email when the identity contains an '@' anywhere,
// Domain otherwise.
func ClassifyIdentity(identity string) IdentityKind {
	if strings.Contains(identity, "@") {
		return Email
	}
	return Domain
}

// BuildParams maps the operation onto the parameter set for one remote call.
// It is pure: the same operation always yields the same parameters.
func BuildParams(op Operation) (*Params, error) {
	switch op.Kind {
	case KindVerify:
		if ClassifyIdentity(op.Identity) == Email {
			p := NewParams(ActionVerifyEmail)
			p.Set("EmailAddress", op.Identity)
			return p, nil
		}
		p := NewParams(ActionVerifyDomain)
		p.Set("Domain", op.Identity)
		return p, nil
	case KindList:
		return NewParams(ActionList), nil
	case KindDelete:
		p := NewParams(ActionDelete)
		p.Set("Identity", op.Identity)
		return p, nil
	case KindAttributes:
		p := NewParams(ActionAttributes)
		// Member keys are 1-based and must stay contiguous and ordered.
		for i, identity := range op.Identities {
			p.Set(fmt.Sprintf("Identities.member.%d", i+1), identity)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown operation kind %d", op.Kind)
	}
}
