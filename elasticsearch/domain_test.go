package elasticsearch

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	blueprints "github.com/cloudtools/blueprints-go"
	"github.com/cloudtools/blueprints-go/intrinsics"
)

// build resolves vars, runs the build pass, and fails the test on error.
func build(t *testing.T, vars map[string]any) *blueprints.Template {
	t.Helper()
	d, err := New(vars)
	require.NoError(t, err)
	tmpl, err := d.Build()
	require.NoError(t, err)
	return tmpl
}

// normalize reduces a template to its plain JSON document form.
func normalize(t *testing.T, tmpl *blueprints.Template) map[string]any {
	t.Helper()
	data, err := json.Marshal(tmpl)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func minimalVars() map[string]any {
	return map[string]any{
		"Roles": []any{"role-A"},
	}
}

func TestBuild_NoVpcNoSecurityGroups_SkipsSecurityGroup(t *testing.T) {
	tmpl := build(t, minimalVars())

	assert.NotContains(t, tmpl.Resources, SecurityGroup)
	assert.NotContains(t, tmpl.Outputs, "SecurityGroup")
}

func TestBuild_VpcWithoutSecurityGroups_CreatesSecurityGroup(t *testing.T) {
	tmpl := build(t, map[string]any{
		"Roles": []any{"role-A"},
		"VpcId": "vpc-1234",
	})

	res, ok := tmpl.Resources[SecurityGroup]
	require.True(t, ok)
	assert.Equal(t, "AWS::EC2::SecurityGroup", res.Type)
	assert.Equal(t, "vpc-1234", res.Properties["VpcId"])
	assert.Equal(t, "Security group for ElasticSearch", res.Properties["GroupDescription"])

	out, ok := tmpl.Outputs["SecurityGroup"]
	require.True(t, ok)
	assert.Equal(t, intrinsics.Ref{LogicalName: SecurityGroup}, out.Value)
}

func TestBuild_ExplicitSecurityGroups_SkipsSecurityGroup(t *testing.T) {
	tmpl := build(t, map[string]any{
		"Roles":          []any{"role-A"},
		"VpcId":          "vpc-1234",
		"SecurityGroups": []any{"sg-1234"},
	})

	assert.NotContains(t, tmpl.Resources, SecurityGroup)
}

func TestBuild_LinkedRole(t *testing.T) {
	tmpl := build(t, minimalVars())
	assert.NotContains(t, tmpl.Resources, LinkedRole)

	tmpl = build(t, map[string]any{
		"Roles":            []any{"role-A"},
		"CreateLinkedRole": true,
	})
	res, ok := tmpl.Resources[LinkedRole]
	require.True(t, ok)
	assert.Equal(t, "AWS::IAM::ServiceLinkedRole", res.Type)
	assert.Equal(t, "es.amazonaws.com", res.Properties["AWSServiceName"])
}

func TestBuild_AccessPolicy_OneStatementPerTrustedNetwork(t *testing.T) {
	tmpl := build(t, map[string]any{
		"Roles":           []any{"role-A"},
		"TrustedNetworks": []any{"10.0.0.0/8", "192.168.1.0/24"},
	})

	policy, ok := tmpl.Resources[ESDomain].Properties["AccessPolicies"].(*intrinsics.PolicyDocument)
	require.True(t, ok)
	require.Len(t, policy.Statement, 2)

	stmt, ok := policy.Statement[0].(intrinsics.PolicyStatement)
	require.True(t, ok)
	assert.Equal(t, intrinsics.Allow, stmt.Effect)
	assert.Equal(t, intrinsics.AllPrincipal, stmt.Principal)
	assert.Equal(t, []any{"es:ESHttpGet", "es:ESHttpHead", "es:ESHttpPost", "es:ESHttpDelete"}, stmt.Action)
	assert.Equal(t, intrinsics.Json{
		intrinsics.IpAddress: intrinsics.Json{"aws:SourceIp": "10.0.0.0/8"},
	}, stmt.Condition)
}

func TestBuild_NoTrustedNetworks_OmitsAccessPolicy(t *testing.T) {
	tmpl := build(t, minimalVars())

	// Absence, not an empty policy document.
	assert.NotContains(t, tmpl.Resources[ESDomain].Properties, "AccessPolicies")
}

func TestBuild_EncryptionBelowMinVersion_Fails(t *testing.T) {
	d, err := New(map[string]any{
		"Roles":                 []any{"role-A"},
		"ElasticsearchVersion":  "5.0",
		"EncryptionAtRestKeyId": "key-1234",
	})
	require.NoError(t, err)

	tmpl, err := d.Build()
	assert.Nil(t, tmpl)

	var verr *blueprints.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Reason, ">= 5.1")
}

func TestBuild_EncryptionAtMinVersion_Succeeds(t *testing.T) {
	tmpl := build(t, map[string]any{
		"Roles":                 []any{"role-A"},
		"EncryptionAtRestKeyId": "key-1234",
	})

	opts, ok := tmpl.Resources[ESDomain].Properties["EncryptionAtRestOptions"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, opts["Enabled"])
	assert.Equal(t, "key-1234", opts["KmsKeyId"])
}

func TestBuild_SubnetsWithoutSecurityGroupSource_Fails(t *testing.T) {
	d, err := New(map[string]any{
		"Roles":   []any{"role-A"},
		"Subnets": "subnet-1,subnet-2",
	})
	require.NoError(t, err)

	tmpl, err := d.Build()
	assert.Nil(t, tmpl)

	var verr *blueprints.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestBuild_SubnetsWithVpc_UsesCreatedSecurityGroup(t *testing.T) {
	tmpl := build(t, map[string]any{
		"Roles":   []any{"role-A"},
		"VpcId":   "vpc-1234",
		"Subnets": "subnet-1,subnet-2",
	})

	vpcOpts, ok := tmpl.Resources[ESDomain].Properties["VPCOptions"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{intrinsics.Ref{LogicalName: SecurityGroup}}, vpcOpts["SecurityGroupIds"])
	assert.Equal(t, []string{"subnet-1", "subnet-2"}, vpcOpts["SubnetIds"])
}

func TestBuild_SubnetsWithExplicitSecurityGroups(t *testing.T) {
	tmpl := build(t, map[string]any{
		"Roles":          []any{"role-A"},
		"SecurityGroups": []any{"sg-1", "sg-2"},
		"Subnets":        "subnet-1",
	})

	vpcOpts, ok := tmpl.Resources[ESDomain].Properties["VPCOptions"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"sg-1", "sg-2"}, vpcOpts["SecurityGroupIds"])
	assert.Equal(t, []string{"subnet-1"}, vpcOpts["SubnetIds"])
}

func TestBuild_OptionalFieldsOmittedWhenEmpty(t *testing.T) {
	props := build(t, minimalVars()).Resources[ESDomain].Properties

	for _, key := range []string{
		"AdvancedOptions", "DomainName", "EBSOptions",
		"ElasticsearchClusterConfig", "SnapshotOptions", "Tags",
	} {
		assert.NotContains(t, props, key)
	}
}

func TestBuild_OptionalFieldsIncludedWhenSet(t *testing.T) {
	tmpl := build(t, map[string]any{
		"Roles":      []any{"role-A"},
		"DomainName": "logs",
		"EBSOptions": map[string]any{"EBSEnabled": true, "VolumeSize": 100},
		"ElasticsearchClusterConfig": map[string]any{
			"InstanceCount": 2,
			"InstanceType":  "m4.large.elasticsearch",
		},
		"Tags": []any{map[string]any{"Key": "team", "Value": "search"}},
	})

	props := tmpl.Resources[ESDomain].Properties
	assert.Equal(t, "logs", props["DomainName"])
	assert.Equal(t, map[string]any{"EBSEnabled": true, "VolumeSize": 100}, props["EBSOptions"])
	assert.Equal(t, []Tag{{Key: "team", Value: "search"}}, props["Tags"])
}

func TestBuild_DomainOutputsAlwaysPresent(t *testing.T) {
	tmpl := build(t, minimalVars())

	assert.Equal(t, intrinsics.GetAtt{LogicalName: ESDomain, Attribute: "DomainArn"},
		tmpl.Outputs["DomainArn"].Value)
	assert.Equal(t, intrinsics.GetAtt{LogicalName: ESDomain, Attribute: "DomainEndpoint"},
		tmpl.Outputs["DomainEndpoint"].Value)
}

func TestBuild_DNSRecord(t *testing.T) {
	tmpl := build(t, map[string]any{
		"Roles":            []any{"role-A"},
		"InternalZoneId":   "Z1",
		"InternalZoneName": "example.com",
		"InternalHostName": "es",
	})

	res, ok := tmpl.Resources[DNSRecord]
	require.True(t, ok)
	assert.Equal(t, "AWS::Route53::RecordSet", res.Type)
	assert.Equal(t, "Z1", res.Properties["HostedZoneId"])
	assert.Equal(t, "es.example.com", res.Properties["Name"])
	assert.Equal(t, "CNAME", res.Properties["Type"])
	assert.Equal(t, "120", res.Properties["TTL"])
	assert.Equal(t, []any{
		intrinsics.GetAtt{LogicalName: ESDomain, Attribute: "DomainEndpoint"},
	}, res.Properties["ResourceRecords"])

	out, ok := tmpl.Outputs["CNAME"]
	require.True(t, ok)
	assert.Equal(t, intrinsics.Ref{LogicalName: DNSRecord}, out.Value)
}

func TestBuild_PartialDNSConfig_SkipsRecord(t *testing.T) {
	partials := []map[string]any{
		{"InternalZoneId": "Z1"},
		{"InternalZoneId": "Z1", "InternalZoneName": "example.com"},
		{"InternalZoneName": "example.com", "InternalHostName": "es"},
	}
	for _, partial := range partials {
		vars := minimalVars()
		for k, v := range partial {
			vars[k] = v
		}
		tmpl := build(t, vars)
		assert.NotContains(t, tmpl.Resources, DNSRecord)
		assert.NotContains(t, tmpl.Outputs, "CNAME")
	}
}

func TestBuild_RolesPolicyAlwaysPresent(t *testing.T) {
	tmpl := build(t, map[string]any{
		"Roles": []any{"role-A", "role-B"},
	})

	res, ok := tmpl.Resources[PolicyName]
	require.True(t, ok)
	assert.Equal(t, "AWS::IAM::Policy", res.Type)
	assert.Equal(t, PolicyName, res.Properties["PolicyName"])
	assert.Equal(t, []string{"role-A", "role-B"}, res.Properties["Roles"])

	doc, ok := res.Properties["PolicyDocument"].(intrinsics.PolicyDocument)
	require.True(t, ok)
	require.Len(t, doc.Statement, 1)
	stmt := doc.Statement[0].(intrinsics.PolicyStatement)
	assert.Equal(t, []any{"es:ESHttpGet", "es:ESHttpHead", "es:ESHttpPost", "es:ESHttpDelete"}, stmt.Action)
	assert.Equal(t, []any{intrinsics.Join{
		Delimiter: "/",
		Values: []any{
			intrinsics.GetAtt{LogicalName: ESDomain, Attribute: "DomainArn"},
			"*",
		},
	}}, stmt.Resource)
}

func TestBuild_EmptyRoles_StillCreatesPolicy(t *testing.T) {
	tmpl := build(t, map[string]any{"Roles": []any{}})

	res, ok := tmpl.Resources[PolicyName]
	require.True(t, ok)
	assert.Empty(t, res.Properties["Roles"])
}

func TestBuild_MinimalTemplate_Document(t *testing.T) {
	doc := normalize(t, build(t, minimalVars()))

	want := map[string]any{
		"AWSTemplateFormatVersion": "2010-09-09",
		"Description":              "AWS Elasticsearch Service domain",
		"Resources": map[string]any{
			"ESDomain": map[string]any{
				"Type": "AWS::Elasticsearch::Domain",
				"Properties": map[string]any{
					"ElasticsearchVersion": "5.1",
				},
			},
			"ESDomainAccessPolicy": map[string]any{
				"Type": "AWS::IAM::Policy",
				"Properties": map[string]any{
					"PolicyName": "ESDomainAccessPolicy",
					"PolicyDocument": map[string]any{
						"Statement": []any{
							map[string]any{
								"Effect": "Allow",
								"Action": []any{
									"es:ESHttpGet", "es:ESHttpHead",
									"es:ESHttpPost", "es:ESHttpDelete",
								},
								"Resource": []any{
									map[string]any{
										"Fn::Join": []any{"/", []any{
											map[string]any{"Fn::GetAtt": []any{"ESDomain", "DomainArn"}},
											"*",
										}},
									},
								},
							},
						},
					},
					"Roles": []any{"role-A"},
				},
			},
		},
		"Outputs": map[string]any{
			"DomainArn": map[string]any{
				"Value": map[string]any{"Fn::GetAtt": []any{"ESDomain", "DomainArn"}},
			},
			"DomainEndpoint": map[string]any{
				"Value": map[string]any{"Fn::GetAtt": []any{"ESDomain", "DomainEndpoint"}},
			},
		},
	}

	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("template document mismatch (-want +got):\n%s", diff)
	}
}
