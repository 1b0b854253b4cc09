// Package episode defines the numeric episode identifier used throughout the
// build.
//
// An ID packs season and episode into a single three-digit integer
// (season*100 + episode), matching the naming convention of the source
// archives: "215" is season 2 episode 15. IDs drive page filenames (s02e15),
// display tags (S02E15), and season grouping.
package episode
