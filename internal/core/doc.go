// Package core stages multi-queue mutations so they apply all-or-nothing.
//
// A Batch runs in two phases. Every Step is prepared first; a prepare may
// only validate and must not mutate. Publish callbacks run afterwards, and
// only when all prepares succeeded.
package core
