// IAM policy document types for domain access policies and role policies.
package intrinsics

// Json is a shorthand for map[string]any, used for inline JSON objects
// such as Condition blocks:
//
//	Condition: Json{
//	    IpAddress: Json{"aws:SourceIp": "10.0.0.0/8"},
//	}
type Json = map[string]any

// PolicyDocument represents an IAM policy document. An absent document and
// an empty one are different things to the Elasticsearch service, so
// callers pass *PolicyDocument and use nil for absence.
type PolicyDocument struct {
	Version   string `json:"Version,omitempty"`
	Statement []any  `json:"Statement"`
}

// PolicyStatement represents a single IAM policy statement.
type PolicyStatement struct {
	Sid       string `json:"Sid,omitempty"`
	Effect    string `json:"Effect"`
	Principal any    `json:"Principal,omitempty"`
	Action    any    `json:"Action,omitempty"`
	Resource  any    `json:"Resource,omitempty"`
	Condition Json   `json:"Condition,omitempty"`
}

// Effect values for policy statements.
const (
	Allow = "Allow"
	Deny  = "Deny"
)

// AllPrincipal is the wildcard principal "*" (anyone, subject to the
// statement's conditions).
const AllPrincipal = "*"

// IAM condition operator keys used in Condition blocks.
const (
	StringEquals = "StringEquals"
	StringLike   = "StringLike"
	Bool         = "Bool"
	IpAddress    = "IpAddress"
	NotIpAddress = "NotIpAddress"
	ArnEquals    = "ArnEquals"
	ArnLike      = "ArnLike"
)
