// Package render turns successful response bodies into the tool's output.
package render

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"ses-identity-tool/internal/operation"
)

// AttributesHeader precedes the verification attribute rows.
const AttributesHeader = "Identity,Status,VerificationToken"

type verifyDomainResponse struct {
	Token string `xml:"VerifyDomainIdentityResult>VerificationToken"`
}

type listResponse struct {
	Members []string `xml:"ListIdentitiesResult>Identities>member"`
}

type attributeEntry struct {
	Identity string `xml:"key"`
	Status   string `xml:"value>VerificationStatus"`
	Token    string `xml:"value>VerificationToken"`
}

type attributesResponse struct {
	Entries []attributeEntry `xml:"GetIdentityVerificationAttributesResult>VerificationAttributes>entry"`
}

// Renderer writes the user-facing output for each operation kind.
type Renderer struct{}

// New returns a Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render writes the output a successful response calls for. List and
// attribute pages are written as they arrive, so callers see partial output
// before pagination finishes.
func (r *Renderer) Render(op operation.Operation, body []byte, w io.Writer) error {
	switch op.Kind {
	case operation.KindVerify:
		return r.renderVerify(op, body, w)
	case operation.KindList:
		return r.renderList(body, w)
	case operation.KindDelete:
		// The delete response carries no payload.
		return nil
	case operation.KindAttributes:
		return r.renderAttributes(body, w)
	default:
		return fmt.Errorf("no renderer for operation kind %d", op.Kind)
	}
}

func (r *Renderer) renderVerify(op operation.Operation, body []byte, w io.Writer) error {
	if operation.ClassifyIdentity(op.Identity) == operation.Email {
		return nil
	}
	var doc verifyDomainResponse
	if err := xml.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("parsing domain verification response: %w", err)
	}
	_, err := fmt.Fprintln(w, doc.Token)
	return err
}

func (r *Renderer) renderList(body []byte, w io.Writer) error {
	var doc listResponse
	if err := xml.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("parsing identity list response: %w", err)
	}
	for _, member := range doc.Members {
		if _, err := fmt.Fprintln(w, member); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderAttributes(body []byte, w io.Writer) error {
	var doc attributesResponse
	if err := xml.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("parsing verification attributes response: %w", err)
	}
	if _, err := fmt.Fprintln(w, AttributesHeader); err != nil {
		return err
	}
	for _, entry := range doc.Entries {
		row := strings.Join([]string{entry.Identity, entry.Status, entry.Token}, ",")
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}
