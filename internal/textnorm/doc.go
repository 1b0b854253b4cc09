// Package textnorm canonicalizes raw script text before it is keyed by
// episode and rendered.
//
// Two normalization policies exist and must stay separate. Block strips all
// leading spaces per line and feeds the plain fenced-block pages. Dedent
// removes only the minimum common indentation so relative indentation
// survives into the side-by-side rendering. Both are pure and idempotent.
package textnorm
