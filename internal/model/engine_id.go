package model

import gonanoid "github.com/matoous/go-nanoid/v2"

// idAlphabet matches the default nanoid alphabet; kept explicit so the id
// shape doesn't silently change if the library's default ever does.
const idAlphabet = "_-0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// EngineID identifies one engine's contribution to a merged result set: a
// stable human name plus a random component that disambiguates two
// TaggedEngine instances sharing that name (e.g. the same engine wired in
// twice with different headers).
type EngineID struct {
	Name string
	ID   string
}

// NewEngineID mints an EngineID for the given engine name with a fresh
// random suffix.
func NewEngineID(name string) EngineID {
	id, err := gonanoid.Generate(idAlphabet, 10)
	if err != nil {
		// gonanoid.Generate only fails if crypto/rand is broken, which
		// leaves the process unable to do much else either.
		panic(err)
	}
	return EngineID{Name: name, ID: id}
}

func (e EngineID) String() string {
	return e.Name + "#" + e.ID
}
