// Package api exposes loaded rulesets over HTTP.
//
//	POST /v1/validate/{ruleset}  204 when the JSON body passes,
//	                             422 {"path","message","error"} on the first failure,
//	                             404 for an unknown ruleset, 400 for a bad body
//	GET  /v1/rulesets            ruleset names with their field bindings
//	GET  /health                 liveness probe
//	GET  /metrics                Prometheus metrics, when WithMetrics is set
//
// Every response carries an X-Request-ID header.
package api
