package dtos

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillList(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		want    SkillList
		wantErr bool
	}{
		{name: "string", body: `{"skills":" Go, React "}`, want: "Go, React"},
		{name: "array", body: `{"skills":["Go"," React",""]}`, want: "Go, React"},
		{name: "absent", body: `{}`, want: ""},
		{name: "number", body: `{"skills":42}`, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var req ProfileRequest
			err := json.Unmarshal([]byte(tc.body), &req)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, req.Skills)
		})
	}
}

func TestProfileRequest_ToModelDropsPro(t *testing.T) {
	var req ProfileRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Asha","skills":["Go"],"isPro":true}`), &req))

	p := req.ToModel()
	assert.Equal(t, "Asha", p.Name)
	assert.Equal(t, "Go", p.Skills)
	assert.False(t, p.IsPro)
}
