package adapter

import "github.com/gowebpki/jcs"

// JCS canonicalizes JSON (RFC 8785) so a treat's metadata document and draft
// key are byte-stable regardless of field order
//
//go:generate mockgen -source=jcs.go -destination=../mocks/jcs.go -package=mocks -mock_names=JCS=MockJCS
type JCS interface {
	Transform(data []byte) ([]byte, error)
}

type canonicalJSON struct{}

// NewJCS returns the gowebpki/jcs backed canonicalizer
func NewJCS() JCS {
	return canonicalJSON{}
}

func (canonicalJSON) Transform(data []byte) ([]byte, error) {
	return jcs.Transform(data)
}
