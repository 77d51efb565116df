// Package handlers implements the HTTP request handlers for the
// Benkhawiya cosmic reasoning REST API.
//
// # Endpoints
//
//	GET  /                             - Web UI landing page
//	GET  /api                          - API information
//	GET  /health                       - Health check (healthy/degraded)
//	GET  /principles                   - List the 42 principles, ?category= filter
//	POST /council/consult              - Consult the four-aspect council
//	GET  /mathematics/golden-ratio/:n  - Golden ratio progression, n in [0,100]
//
// # Handler structure
//
// Each handler holds its dependencies and exposes gin methods:
//
//	type CouncilHandler struct {
//	    engine    *council.Engine
//	    collector *metrics.Collector
//	    logger    *logrus.Logger
//	}
//
// A nil engine means initialization failed at startup: the council
// endpoints respond 503 and /health reports degraded.
package handlers
