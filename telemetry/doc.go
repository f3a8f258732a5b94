// Package telemetry bootstraps OpenTelemetry for asset pipeline tooling.
//
// The resolver itself only records against injected otel Tracer/Meter
// instances; this package builds those from a Config, wiring stdout, OTLP
// (gRPC), or Prometheus exporters, and owns provider shutdown.
package telemetry
