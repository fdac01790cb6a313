// Package ports defines the interfaces between the application core and its
// adapters. Inbound adapters call the service ports; outbound adapters
// implement Store and HealthChecker.
package ports
