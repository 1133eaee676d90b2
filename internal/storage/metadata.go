package storage

import (
	"fmt"

	"github.com/tokentreat/treat-service/internal/adapter"
)

// Attribute is an OpenSea-style trait
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// TreatDocument is the metadata document referenced by a minted treat
type TreatDocument struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Attributes  []Attribute `json:"attributes"`
}

// NewTreatDocument builds the metadata document of a treat
func NewTreatDocument(name, description, imageURI, treatType, validity string) TreatDocument {
	return TreatDocument{
		Name:        name,
		Description: description,
		Image:       imageURI,
		Attributes: []Attribute{
			{TraitType: "type", Value: treatType},
			{TraitType: "validity", Value: validity},
		},
	}
}

// Canonicalize serializes the document with RFC 8785 canonical JSON so equal
// documents always produce the same bytes and therefore the same content hash
func (d TreatDocument) Canonicalize(json adapter.JSON, jcs adapter.JCS) ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	canonical, err := jcs.Transform(data)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize metadata: %w", err)
	}
	return canonical, nil
}
