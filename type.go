package ewk

import (
	"fmt"

	"github.com/jmgilman/go/ewk/engine"
)

// ErrorType classifies the engine subsystem an error came from.
type ErrorType int

const (
	// TypeNone is returned for invalid handles.
	TypeNone ErrorType = iota
	// TypeInternal covers every domain not listed below.
	TypeInternal
	TypeNetwork
	TypePolicy
	TypePlugin
	TypeDownload
	TypePrint
)

var typeNames = map[ErrorType]string{
	TypeNone:     "none",
	TypeInternal: "internal",
	TypeNetwork:  "network",
	TypePolicy:   "policy",
	TypePlugin:   "plugin",
	TypeDownload: "download",
	TypePrint:    "print",
}

// domainTypes maps engine domains to their type. Lookups are exact.
var domainTypes = map[string]ErrorType{
	engine.DomainNetwork:  TypeNetwork,
	engine.DomainPolicy:   TypePolicy,
	engine.DomainPlugin:   TypePlugin,
	engine.DomainDownload: TypeDownload,
	engine.DomainPrint:    TypePrint,
}

// String returns the lower-case name of the type.
func (t ErrorType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ErrorType(%d)", int(t))
}

// MarshalText implements encoding.TextMarshaler.
func (t ErrorType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// TypeForDomain classifies an engine domain string. Unrecognised domains,
// including the empty string, are TypeInternal.
func TypeForDomain(domain string) ErrorType {
	if t, ok := domainTypes[domain]; ok {
		return t
	}
	return TypeInternal
}

// Domains returns the recognised engine domain for each specific type.
func Domains() map[ErrorType]string {
	out := make(map[ErrorType]string, len(domainTypes))
	for domain, t := range domainTypes {
		out[t] = domain
	}
	return out
}
