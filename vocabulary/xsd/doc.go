// Package xsd provides IRI constants for the XML Schema datatypes that show
// up in property ranges and typed literals.
package xsd
