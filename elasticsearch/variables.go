package elasticsearch

import (
	blueprints "github.com/cloudtools/blueprints-go"
)

// Tag is a key/value pair attached to the Amazon ES domain.
type Tag struct {
	Key   string `json:"Key" yaml:"Key"`
	Value string `json:"Value" yaml:"Value"`
}

// Variables is the typed, defaulted variable set for the Domain blueprint.
// Field names match the declared variable names one to one.
type Variables struct {
	Roles                      []string       `yaml:"Roles"`
	CreateLinkedRole           bool           `yaml:"CreateLinkedRole"`
	InternalZoneId             string         `yaml:"InternalZoneId"`
	InternalZoneName           string         `yaml:"InternalZoneName"`
	InternalHostName           string         `yaml:"InternalHostName"`
	AdvancedOptions            map[string]any `yaml:"AdvancedOptions"`
	DomainName                 string         `yaml:"DomainName"`
	EBSOptions                 map[string]any `yaml:"EBSOptions"`
	ElasticsearchClusterConfig map[string]any `yaml:"ElasticsearchClusterConfig"`
	ElasticsearchVersion       string         `yaml:"ElasticsearchVersion"`
	EncryptionAtRestKeyId      string         `yaml:"EncryptionAtRestKeyId"`
	SnapshotOptions            map[string]any `yaml:"SnapshotOptions"`
	SecurityGroups             []string       `yaml:"SecurityGroups"`
	Subnets                    string         `yaml:"Subnets"`
	Tags                       []Tag          `yaml:"Tags"`
	TrustedNetworks            []string       `yaml:"TrustedNetworks"`
	VpcId                      string         `yaml:"VpcId"`
}

// VariableSpecs declares the variable set accepted by the Domain blueprint.
// Supplied values are checked and defaulted against these specs before the
// build pass runs.
func VariableSpecs() map[string]blueprints.VarSpec {
	return map[string]blueprints.VarSpec{
		"Roles": {
			Type:        blueprints.ListType,
			Required:    true,
			Description: "List of roles that should have access to the ES domain.",
		},
		"CreateLinkedRole": {
			Type:        blueprints.BoolType,
			Default:     false,
			Description: "Whether to create an IAM Service Linked Role for Elasticsearch.",
		},
		"InternalZoneId": {
			Type:        blueprints.StringType,
			Default:     "",
			Description: "Internal zone id, if you have one.",
		},
		"InternalZoneName": {
			Type:        blueprints.StringType,
			Default:     "",
			Description: "Internal zone name, if you have one.",
		},
		"InternalHostName": {
			Type:        blueprints.StringType,
			Default:     "",
			Description: "Internal domain name, if you have one.",
		},
		"AdvancedOptions": {
			Type:        blueprints.MapType,
			Default:     map[string]any{},
			Description: "Additional options to specify for the Amazon ES domain.",
		},
		"DomainName": {
			Type:        blueprints.StringType,
			Default:     "",
			Description: "A name for the Amazon ES domain.",
		},
		"EBSOptions": {
			Type:    blueprints.MapType,
			Default: map[string]any{},
			Description: "The configurations of Amazon Elastic Block Store (Amazon EBS) " +
				"volumes that are attached to data nodes in the Amazon ES domain.",
		},
		"ElasticsearchClusterConfig": {
			Type:        blueprints.MapType,
			Default:     map[string]any{},
			Description: "The cluster configuration for the Amazon ES domain.",
		},
		"ElasticsearchVersion": {
			Type:        blueprints.StringType,
			Default:     "5.1",
			Description: "The version of Elasticsearch to use.",
		},
		"EncryptionAtRestKeyId": {
			Type:    blueprints.StringType,
			Default: "",
			Description: "KMS Key id for encrypting at-rest. If specified, " +
				"ElasticsearchVersion must be 5.1 or greater (AWS restriction).",
		},
		"SnapshotOptions": {
			Type:        blueprints.MapType,
			Default:     map[string]any{},
			Description: "The automated snapshot configuration for the Amazon ES domain indices.",
		},
		"SecurityGroups": {
			Type:    blueprints.ListType,
			Default: []any{},
			Description: "VPC security groups to add to the VPC configuration. If empty, " +
				"a security group will be created and output.",
		},
		"Subnets": {
			Type:        blueprints.StringType,
			Default:     "",
			Description: "A comma separated list of subnet ids.",
		},
		"Tags": {
			Type:    blueprints.ListType,
			Default: []any{},
			Description: "An arbitrary set of tags (key-value pairs) to associate with " +
				"the Amazon ES domain.",
		},
		"TrustedNetworks": {
			Type:        blueprints.ListType,
			Default:     []any{},
			Description: "List of CIDR blocks allowed to connect to the ES cluster.",
		},
		"VpcId": {
			Type:    blueprints.StringType,
			Default: "",
			Description: "Vpc id in which to create the security group. Only needed if " +
				"SecurityGroups is empty, for security group creation.",
		},
	}
}
