// Package deps checks the availability of the external document converters
// the build shells out to. The deps command renders the results; the build
// preflight uses them to pick a converter or fail before touching any source
// document.
package deps
