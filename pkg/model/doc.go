// Package model defines the field descriptors, widget contract, and path
// representation shared by the renderers, the forms driver, and the built-in
// widget set. Descriptors are owned by the caller's schema layer; nothing in
// this module mutates them.
package model
