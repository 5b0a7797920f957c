// Package actions catalogs the AWS IAM action names the blueprints grant.
package actions

// ES qualifies an action name with the Elasticsearch service namespace.
func ES(name string) string {
	return "es:" + name
}

// Amazon ES HTTP API actions.
const (
	ESHttpGet    = "es:ESHttpGet"
	ESHttpHead   = "es:ESHttpHead"
	ESHttpPost   = "es:ESHttpPost"
	ESHttpDelete = "es:ESHttpDelete"
)
