// Package intrinsics provides the CloudFormation intrinsic functions and
// IAM policy document types used by the blueprints.
//
// The core intrinsic types come from cloudformation-schema-go:
//
//	Ref{LogicalName: "ESSecurityGroup"}
//	    → {"Ref": "ESSecurityGroup"}
//	GetAtt{LogicalName: "ESDomain", Attribute: "DomainArn"}
//	    → {"Fn::GetAtt": ["ESDomain", "DomainArn"]}
//	Join{Delimiter: "/", Values: []any{arn, "*"}}
//	    → {"Fn::Join": ["/", [arn, "*"]]}
package intrinsics

import (
	"github.com/lex00/cloudformation-schema-go/intrinsics"
)

type (
	// Ref represents a CloudFormation Ref intrinsic function.
	Ref = intrinsics.Ref

	// GetAtt represents a CloudFormation Fn::GetAtt intrinsic function.
	GetAtt = intrinsics.GetAtt

	// Join represents a CloudFormation Fn::Join intrinsic function.
	Join = intrinsics.Join

	// Sub represents a CloudFormation Fn::Sub intrinsic function.
	Sub = intrinsics.Sub
)
