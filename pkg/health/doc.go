// Package health provides HTTP handlers for liveness and readiness endpoints.
//
// [LivenessHandler] answers OK while the process runs. [ReadinessHandler]
// runs a set of named [Checks] in parallel and reports 503 if any fails.
// For the relay the only readiness check is reachability of the mail
// transport:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "smtp": smtp.Healthcheck("smtp.example.com", 465),
//	}, health.WithTimeout(3*time.Second)))
//
// Responses are plain text ("OK" / "Service Unavailable") unless the client
// sends Accept: application/json or ?format=json:
//
//	{"status":"unhealthy","checks":{"smtp":{"status":"unhealthy","error":"health: check timeout"}}}
package health
