// Package driven defines the outbound port interfaces the core services
// depend on: project persistence, snapshots, configuration and user-facing
// notifications. Adapters implement these against concrete infrastructure.
package driven
