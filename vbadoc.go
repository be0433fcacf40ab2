// Package vbadoc resolves VBA libraries for Office applications from a
// remote catalog, fetches their documentation, extracts readable content
// from the raw markup, and renders both into text for humans and LLMs.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, sqlite/, goquery/).
package vbadoc
