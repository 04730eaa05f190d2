// Package services contains the application core: the generic form session
// controller, the import orchestrator and project lifecycle management.
// Services speak to infrastructure only through the driven ports.
package services
