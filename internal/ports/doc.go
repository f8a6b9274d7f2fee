// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by inbound
// adapters (HTTP handlers, CLI commands). Outbound ports (repository, event
// dispatcher, identity generator) are implemented by adapters and called by
// the application layer.
package ports
