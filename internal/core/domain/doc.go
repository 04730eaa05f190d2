// Package domain contains the core business entities for plume.
// A wedding production is modelled as a Project aggregate with four named
// sections (essentials, timeline, people, photos). Domain types carry their
// own validation and the pure merge reconciliation algorithm; they have no
// dependencies on storage or UI concerns.
package domain
