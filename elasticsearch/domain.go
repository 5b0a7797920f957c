// Package elasticsearch provides a blueprint for an AWS Elasticsearch
// Service domain: the domain resource itself, its IP-restricted access
// policy, an optional security group, an optional internal DNS record, an
// optional service-linked role, and an IAM policy granting the domain's
// HTTP API to a set of roles.
package elasticsearch

import (
	"fmt"
	"strings"

	blueprints "github.com/cloudtools/blueprints-go"
	"github.com/cloudtools/blueprints-go/actions"
	"github.com/cloudtools/blueprints-go/intrinsics"
)

// Logical ids of the resources in the generated stack. Each kind is created
// at most once per build.
const (
	ESDomain      = "ESDomain"
	DNSRecord     = "ESDomainDNSRecord"
	LinkedRole    = "ESLinkedRole"
	PolicyName    = "ESDomainAccessPolicy"
	SecurityGroup = "ESSecurityGroup"
)

// minEncryptionVersion is the lowest Elasticsearch version AWS allows for
// at-rest encryption.
const minEncryptionVersion = "5.1"

// Domain builds a CloudFormation template for an Amazon ES domain.
type Domain struct {
	Variables Variables
}

// New resolves raw variables against the declared specs and returns the
// blueprint. Type errors, unknown names, and missing required variables
// are reported here, before any build step runs.
func New(vars map[string]any) (*Domain, error) {
	resolved, err := blueprints.ResolveVariables(VariableSpecs(), vars)
	if err != nil {
		return nil, err
	}
	d := &Domain{}
	if err := blueprints.DecodeVariables(resolved, &d.Variables); err != nil {
		return nil, err
	}
	return d, nil
}

// Name returns the blueprint name used for registry lookup.
func (d *Domain) Name() string {
	return "elasticsearch"
}

// VariableSpecs returns the variable set the blueprint accepts.
func (d *Domain) VariableSpecs() map[string]blueprints.VarSpec {
	return VariableSpecs()
}

// Build assembles the template in a single pass: security group, linked
// role, the domain itself, DNS record, roles policy. A validation failure
// aborts the pass with no template.
func (d *Domain) Build() (*blueprints.Template, error) {
	t := blueprints.NewTemplate("AWS Elasticsearch Service domain")
	d.createSecurityGroup(t)
	d.createLinkedRole(t)
	if err := d.createDomain(t); err != nil {
		return nil, err
	}
	d.createDNSRecord(t)
	d.createRolesPolicy(t)
	return t, nil
}

// allowedActions returns the domain HTTP API actions granted by both the
// access policy and the roles policy.
func allowedActions() []any {
	return []any{
		actions.ESHttpGet,
		actions.ESHttpHead,
		actions.ESHttpPost,
		actions.ESHttpDelete,
	}
}

// createSecurityGroup creates a security group only when VpcId was given
// and no explicit SecurityGroups were; otherwise the caller is expected to
// supply one.
func (d *Domain) createSecurityGroup(t *blueprints.Template) {
	v := d.Variables
	if v.VpcId == "" || len(v.SecurityGroups) > 0 {
		return
	}
	t.AddResource(SecurityGroup, blueprints.ResourceDef{
		Type: "AWS::EC2::SecurityGroup",
		Properties: map[string]any{
			"GroupDescription": "Security group for ElasticSearch",
			"VpcId":            v.VpcId,
		},
	})
	t.AddOutput("SecurityGroup", blueprints.Output{
		Value: intrinsics.Ref{LogicalName: SecurityGroup},
	})
}

// createLinkedRole creates the IAM service-linked role for the
// Elasticsearch service when requested. The deployment engine is
// responsible for not duplicating linked roles across stacks.
func (d *Domain) createLinkedRole(t *blueprints.Template) {
	if !d.Variables.CreateLinkedRole {
		return
	}
	t.AddResource(LinkedRole, blueprints.ResourceDef{
		Type: "AWS::IAM::ServiceLinkedRole",
		Properties: map[string]any{
			"AWSServiceName": "es.amazonaws.com",
		},
	})
}

// createDomain assembles the Elasticsearch domain resource and its ARN and
// endpoint outputs.
func (d *Domain) createDomain(t *blueprints.Template) error {
	v := d.Variables
	props := map[string]any{
		"ElasticsearchVersion": v.ElasticsearchVersion,
	}

	if policy := d.accessPolicy(); policy != nil {
		props["AccessPolicies"] = policy
	}

	if v.EncryptionAtRestKeyId != "" {
		// Lexical comparison, as the version variable is free-form text.
		// "10.1" sorts below "5.1" here; see DESIGN.md.
		if v.ElasticsearchVersion < minEncryptionVersion {
			return blueprints.Validationf(
				"encryption at rest supported for ES versions >= %s", minEncryptionVersion)
		}
		props["EncryptionAtRestOptions"] = map[string]any{
			"Enabled":  true,
			"KmsKeyId": v.EncryptionAtRestKeyId,
		}
	}

	if v.Subnets != "" {
		if len(v.SecurityGroups) == 0 && v.VpcId == "" {
			return blueprints.Validationf(
				"if no security groups are passed, VpcId must be passed for security group creation")
		}
		groups := make([]any, 0, len(v.SecurityGroups))
		for _, sg := range v.SecurityGroups {
			groups = append(groups, sg)
		}
		if len(groups) == 0 {
			groups = append(groups, intrinsics.Ref{LogicalName: SecurityGroup})
		}
		props["VPCOptions"] = map[string]any{
			"SecurityGroupIds": groups,
			"SubnetIds":        strings.Split(v.Subnets, ","),
		}
	}

	// The ES API treats absent fields differently from explicit empty
	// values, so optional fields are set only when non-empty.
	if len(v.AdvancedOptions) > 0 {
		props["AdvancedOptions"] = v.AdvancedOptions
	}
	if v.DomainName != "" {
		props["DomainName"] = v.DomainName
	}
	if len(v.EBSOptions) > 0 {
		props["EBSOptions"] = v.EBSOptions
	}
	if len(v.ElasticsearchClusterConfig) > 0 {
		props["ElasticsearchClusterConfig"] = v.ElasticsearchClusterConfig
	}
	if len(v.SnapshotOptions) > 0 {
		props["SnapshotOptions"] = v.SnapshotOptions
	}
	if len(v.Tags) > 0 {
		props["Tags"] = v.Tags
	}

	t.AddResource(ESDomain, blueprints.ResourceDef{
		Type:       "AWS::Elasticsearch::Domain",
		Properties: props,
	})
	t.AddOutput("DomainArn", blueprints.Output{
		Value: intrinsics.GetAtt{LogicalName: ESDomain, Attribute: "DomainArn"},
	})
	t.AddOutput("DomainEndpoint", blueprints.Output{
		Value: intrinsics.GetAtt{LogicalName: ESDomain, Attribute: "DomainEndpoint"},
	})
	return nil
}

// accessPolicy returns one Allow statement per trusted network, or nil when
// no trusted networks were supplied. Nil omits the AccessPolicies field
// entirely; the service treats absence differently from an empty document.
func (d *Domain) accessPolicy() *intrinsics.PolicyDocument {
	var statements []any
	for _, cidr := range d.Variables.TrustedNetworks {
		statements = append(statements, intrinsics.PolicyStatement{
			Effect:    intrinsics.Allow,
			Action:    allowedActions(),
			Principal: intrinsics.AllPrincipal,
			Condition: intrinsics.Json{
				intrinsics.IpAddress: intrinsics.Json{"aws:SourceIp": cidr},
			},
		})
	}
	if statements == nil {
		return nil
	}
	return &intrinsics.PolicyDocument{Statement: statements}
}

// createDNSRecord creates an internal CNAME for the domain endpoint, but
// only when the zone id, zone name, and host name were all supplied.
// A partially specified triple skips the record without comment.
func (d *Domain) createDNSRecord(t *blueprints.Template) {
	v := d.Variables
	if v.InternalZoneId == "" || v.InternalZoneName == "" || v.InternalHostName == "" {
		return
	}
	t.AddResource(DNSRecord, blueprints.ResourceDef{
		Type: "AWS::Route53::RecordSet",
		Properties: map[string]any{
			"HostedZoneId": v.InternalZoneId,
			"Comment":      "ES Domain CNAME Record",
			"Name":         fmt.Sprintf("%s.%s", v.InternalHostName, v.InternalZoneName),
			"Type":         "CNAME",
			"TTL":          "120",
			"ResourceRecords": []any{
				intrinsics.GetAtt{LogicalName: ESDomain, Attribute: "DomainEndpoint"},
			},
		},
	})
	t.AddOutput("CNAME", blueprints.Output{
		Value: intrinsics.Ref{LogicalName: DNSRecord},
	})
}

// createRolesPolicy grants the domain HTTP API actions on the domain ARN
// (all sub-resources) to the supplied roles. It always runs; an empty
// Roles list still yields the policy resource with no attachments.
func (d *Domain) createRolesPolicy(t *blueprints.Template) {
	statements := []any{
		intrinsics.PolicyStatement{
			Effect: intrinsics.Allow,
			Action: allowedActions(),
			Resource: []any{intrinsics.Join{
				Delimiter: "/",
				Values: []any{
					intrinsics.GetAtt{LogicalName: ESDomain, Attribute: "DomainArn"},
					"*",
				},
			}},
		},
	}
	t.AddResource(PolicyName, blueprints.ResourceDef{
		Type: "AWS::IAM::Policy",
		Properties: map[string]any{
			"PolicyName":     PolicyName,
			"PolicyDocument": intrinsics.PolicyDocument{Statement: statements},
			"Roles":          d.Variables.Roles,
		},
	})
}
