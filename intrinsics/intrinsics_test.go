package intrinsics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Ref{LogicalName: "ESSecurityGroup"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Ref": "ESSecurityGroup"}`, string(data))
}

func TestGetAtt_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(GetAtt{LogicalName: "ESDomain", Attribute: "DomainArn"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Fn::GetAtt": ["ESDomain", "DomainArn"]}`, string(data))
}

func TestJoin_MarshalJSON(t *testing.T) {
	join := Join{
		Delimiter: "/",
		Values: []any{
			GetAtt{LogicalName: "ESDomain", Attribute: "DomainArn"},
			"*",
		},
	}
	data, err := json.Marshal(join)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Fn::Join": ["/", [{"Fn::GetAtt": ["ESDomain", "DomainArn"]}, "*"]]}`, string(data))
}
