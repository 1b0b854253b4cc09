// Package convert wraps the external document-to-text converters used for
// the legacy Chinese .doc archive.
//
// The Converter interface is the only thing the loaders depend on, so the
// segmentation and alignment logic is testable without any external binary.
// CommandConverter is the real implementation: it picks textutil when
// present (macOS), falls back to antiword (Linux), and fails construction
// when neither resolves. Converter output that is not valid UTF-8 is decoded
// as GB18030 before being handed to normalization.
package convert
